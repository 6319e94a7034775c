package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"shopuniverse/internal/auth"
	"shopuniverse/internal/cart"
	"shopuniverse/internal/order"
	"shopuniverse/internal/pricing"
	"shopuniverse/internal/product"
	"shopuniverse/internal/user"

	"github.com/davecgh/go-spew/spew"
	"github.com/shopspring/decimal"
)

var dump = spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}

func (a *app) run(ctx context.Context, args []string, w io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, args := args[0], args[1:]

	switch cmd {
	case "products":
		return a.products(args, w)
	case "product":
		return a.product(args, w)
	case "categories":
		for _, c := range a.catalog.Categories() {
			fmt.Fprintln(w, c)
		}
		return nil
	case "cart":
		return a.showCart(w)
	case "add":
		return a.add(ctx, args, w)
	case "update":
		return a.update(ctx, args, w)
	case "remove":
		if len(args) != 1 {
			return errUsage
		}
		if err := a.container.RemoveFromCart(ctx, args[0]); err != nil {
			return err
		}
		return a.showCart(w)
	case "clear":
		if err := a.container.ClearCart(ctx); err != nil {
			return err
		}
		fmt.Fprintln(w, "cart cleared")
		return nil
	case "register":
		return a.register(ctx, args, w)
	case "login":
		if len(args) != 2 {
			return errUsage
		}
		res, err := a.users.Login(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		printAuth(w, res)
		return nil
	case "logout":
		if err := a.users.Logout(ctx); err != nil {
			return err
		}
		fmt.Fprintln(w, "signed out")
		return nil
	case "whoami":
		return a.whoami(args, w)
	case "checkout":
		return a.checkout(ctx, args, w)
	case "orders":
		return a.history(w)
	case "order":
		return a.orderDetail(args, w)
	case "state":
		dump.Fdump(w, a.container.Snapshot())
		return nil
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func (a *app) products(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("products", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	category := fs.String("category", "", "category filter")
	sortBy := fs.String("sort", string(product.SortName), "sort order")
	minPrice := fs.Float64("min", -1, "minimum price")
	maxPrice := fs.Float64("max", -1, "maximum price")
	where := fs.String("where", "", "expression filter")
	featured := fs.Int("featured", 0, "list the first n catalog products, ignoring filters")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	var ps []product.Product
	if *featured > 0 {
		ps = a.catalog.Featured(*featured)
	} else {
		q := product.Query{Category: *category, Sort: product.SortBy(*sortBy), Where: *where}
		if *minPrice >= 0 {
			q.MinPrice = minPrice
		}
		if *maxPrice >= 0 {
			q.MaxPrice = maxPrice
		}

		var err error
		if ps, err = a.catalog.Search(q); err != nil {
			return err
		}
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE\tRATING")
	for _, p := range ps {
		price := money(p.Price)
		if p.HasDiscount() {
			price = fmt.Sprintf("%s (-%d%%)", price, p.DiscountPercent())
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.1f\n", p.ID, p.Name, p.Category, price, p.Rating)
	}
	return tw.Flush()
}

func (a *app) product(args []string, w io.Writer) error {
	if len(args) != 1 {
		return errUsage
	}
	p, err := a.catalog.Get(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s\n%s\n\n", p.Name, p.Description)
	fmt.Fprintf(w, "price:    %s\n", money(p.Price))
	if p.HasDiscount() {
		fmt.Fprintf(w, "was:      %s (-%d%%)\n", money(*p.OriginalPrice), p.DiscountPercent())
	}
	fmt.Fprintf(w, "rating:   %.1f (%d reviews)\n", p.Rating, p.ReviewCount)
	if p.InStock {
		fmt.Fprintf(w, "stock:    %d available\n", p.StockCount)
	} else {
		fmt.Fprintln(w, "stock:    out of stock")
	}
	for _, f := range p.Features {
		fmt.Fprintf(w, "  - %s\n", f)
	}

	if related := a.catalog.Related(p.ID, 4); len(related) > 0 {
		fmt.Fprintln(w, "\nrelated:")
		for _, r := range related {
			fmt.Fprintf(w, "  %s  %s  %s\n", r.ID, r.Name, money(r.Price))
		}
	}
	return nil
}

func (a *app) add(ctx context.Context, args []string, w io.Writer) error {
	if len(args) < 1 || len(args) > 2 {
		return errUsage
	}
	qty := 1
	if len(args) == 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("%w: quantity %q", errUsage, args[1])
		}
		qty = n
	}

	p, err := a.catalog.Get(args[0])
	if err != nil {
		return err
	}
	if err := a.container.AddToCart(ctx, p, qty); err != nil {
		return err
	}
	return a.showCart(w)
}

func (a *app) update(ctx context.Context, args []string, w io.Writer) error {
	if len(args) != 2 {
		return errUsage
	}
	qty, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: quantity %q", errUsage, args[1])
	}
	if err := a.container.UpdateCartQuantity(ctx, args[0], qty); err != nil {
		return err
	}
	return a.showCart(w)
}

func (a *app) showCart(w io.Writer) error {
	items := a.container.Cart()
	if len(items) == 0 {
		fmt.Fprintln(w, "cart is empty")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tQTY\tLINE")
	for _, it := range items {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", it.Product.ID, it.Product.Name, it.Quantity, money(it.LineTotal()))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	printSummary(w, a.policy.Quote(items))
	if more := a.policy.AmountToFreeShipping(items); more.IsPositive() {
		fmt.Fprintf(w, "add $%s more for free shipping\n", more.StringFixed(2))
	}
	fmt.Fprintf(w, "%d item(s)\n", cart.Count(items))
	return nil
}

func (a *app) register(ctx context.Context, args []string, w io.Writer) error {
	if len(args) < 2 || len(args) > 4 {
		return errUsage
	}
	data := user.RegisterData{Email: args[0], Password: args[1]}
	if len(args) > 2 {
		data.FirstName = args[2]
	}
	if len(args) > 3 {
		data.LastName = args[3]
	}

	res, err := a.users.Register(ctx, data)
	if err != nil {
		return err
	}
	printAuth(w, res)
	return nil
}

func (a *app) checkout(ctx context.Context, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("checkout", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var ship, bill order.Address
	addressFlags(fs, &ship, "", "shipping")
	addressFlags(fs, &bill, "bill-", "billing")
	payment := fs.String("payment", string(order.PaymentCredit), "credit, debit or paypal")
	last4 := fs.String("last4", "", "last four card digits")
	brand := fs.String("brand", "", "card brand")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	method := order.PaymentMethod{Type: order.PaymentType(*payment)}
	if *last4 != "" {
		method.Last4 = last4
	}
	if *brand != "" {
		method.Brand = brand
	}

	id, err := a.orders.Checkout(ctx, order.CheckoutInput{
		ShippingAddress: ship,
		BillingAddress:  bill,
		SameAsShipping:  bill == order.Address{},
		PaymentMethod:   method,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "order %s placed\n", id)
	return nil
}

// addressFlags binds the five address fields to flags named prefix+field.
func addressFlags(fs *flag.FlagSet, addr *order.Address, prefix, usage string) {
	fs.StringVar(&addr.Street, prefix+"street", "", usage+" street")
	fs.StringVar(&addr.City, prefix+"city", "", usage+" city")
	fs.StringVar(&addr.State, prefix+"state", "", usage+" state")
	fs.StringVar(&addr.ZipCode, prefix+"zip", "", usage+" zip code")
	fs.StringVar(&addr.Country, prefix+"country", "", usage+" country")
}

// whoami prints the session user, or with a token argument, verifies the
// token and prints the identity it carries.
func (a *app) whoami(args []string, w io.Writer) error {
	switch len(args) {
	case 0:
		u := a.users.Current()
		if u == nil {
			fmt.Fprintln(w, "not signed in")
			return nil
		}
		fmt.Fprintf(w, "%s <%s> (%s)\n", u.FullName(), u.Email, u.ID)
		return nil
	case 1:
		if a.tokens == nil {
			return auth.ErrMissingSecret
		}
		claims, err := a.tokens.Parse(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "token for <%s> (%s)", claims.Email, claims.UserID)
		if claims.ExpiresAt != nil {
			fmt.Fprintf(w, ", expires %s", claims.ExpiresAt.Time.Format(time.RFC3339))
		}
		fmt.Fprintln(w)
		return nil
	default:
		return errUsage
	}
}

func (a *app) history(w io.Writer) error {
	u := a.users.Current()
	if u == nil {
		return order.ErrUnauthorized
	}

	orders := a.orders.History(u.ID)
	if len(orders) == 0 {
		fmt.Fprintln(w, "no orders yet")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPLACED\tSTATUS\tITEMS\tTOTAL")
	for _, o := range orders {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
			o.ID, o.CreatedAt.Format("2006-01-02 15:04"), o.Status, cart.Count(o.Items), money(o.Total))
	}
	return tw.Flush()
}

func (a *app) orderDetail(args []string, w io.Writer) error {
	if len(args) != 1 {
		return errUsage
	}
	u := a.users.Current()
	if u == nil {
		return order.ErrUnauthorized
	}

	o, err := a.orders.GetOrderDetail(u.ID, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "order %s (%s)\n", o.ID, o.Status)
	for _, it := range o.Items {
		fmt.Fprintf(w, "  %d x %s  %s\n", it.Quantity, it.Product.Name, money(it.LineTotal()))
	}
	fmt.Fprintf(w, "total: %s\n", money(o.Total))
	fmt.Fprintf(w, "ship to: %s\n", formatAddress(o.ShippingAddress))
	if o.BillingAddress != o.ShippingAddress {
		fmt.Fprintf(w, "bill to: %s\n", formatAddress(o.BillingAddress))
	}
	fmt.Fprintf(w, "payment: %s\n", o.PaymentMethod.Type)
	return nil
}

func formatAddress(a order.Address) string {
	return fmt.Sprintf("%s, %s, %s %s, %s", a.Street, a.City, a.State, a.ZipCode, a.Country)
}

func printAuth(w io.Writer, res *user.AuthResult) {
	fmt.Fprintf(w, "signed in as %s <%s>\n", res.User.FullName(), res.User.Email)
	if res.Token != "" {
		fmt.Fprintf(w, "token: %s\n", res.Token)
	}
}

func printSummary(w io.Writer, s pricing.Summary) {
	shipping := "$" + s.Shipping.StringFixed(2)
	if s.FreeShipping() {
		shipping = "free"
	}
	fmt.Fprintf(w, "subtotal: $%s\n", s.Subtotal.StringFixed(2))
	fmt.Fprintf(w, "shipping: %s\n", shipping)
	fmt.Fprintf(w, "tax:      $%s\n", s.Tax.StringFixed(2))
	fmt.Fprintf(w, "total:    $%s\n", s.Total.StringFixed(2))
}

func money(v float64) string {
	return "$" + decimal.NewFromFloat(v).StringFixed(2)
}
