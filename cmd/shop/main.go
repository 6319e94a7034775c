// Command shop is a terminal storefront over the local state container.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"shopuniverse/internal/auth"
	"shopuniverse/internal/config"
	"shopuniverse/internal/logger"
	"shopuniverse/internal/order"
	"shopuniverse/internal/pricing"
	"shopuniverse/internal/product"
	"shopuniverse/internal/remote"
	"shopuniverse/internal/state"
	"shopuniverse/internal/storage"
	"shopuniverse/internal/user"

	"go.uber.org/zap"
)

var errUsage = errors.New("usage")

type app struct {
	catalog   *product.Catalog
	container *state.Container
	policy    pricing.Policy
	caller    *remote.Caller
	tokens    *auth.Issuer
	users     user.Service
	orders    order.Service
}

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	log := logger.L()
	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	store, closer, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatal("failed to open storage", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}
	defer closer.Close()

	a, err := newApp(ctx, cfg, store)
	if err != nil {
		log.Fatal("failed to start storefront", zap.Error(err))
	}

	err = a.run(ctx, os.Args[1:], os.Stdout)
	for _, s := range a.caller.Stats() {
		log.Debug("remote call stats",
			zap.String("call", s.Name),
			zap.Uint64("calls", s.Calls),
			zap.Uint64("failed", s.Failed),
			zap.Uint64("aborted", s.Aborted),
			zap.Duration("total", s.Total),
		)
	}
	if err != nil {
		if errors.Is(err, errUsage) {
			printUsage(os.Stderr)
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newApp(ctx context.Context, cfg *config.Config, store storage.Store) (*app, error) {
	catalog, err := product.NewCatalog(product.Seed())
	if err != nil {
		return nil, err
	}

	keys := storage.Keys(cfg.KeyPrefix)
	container := state.New(ctx, store, catalog, cfg.KeyPrefix)
	caller := remote.CallerFromConfig(cfg)
	policy := pricing.PolicyFromConfig(cfg)

	var (
		issuer *auth.Issuer
		tokens user.TokenIssuer
	)
	if cfg.JWTSecret != "" {
		issuer = auth.IssuerFromConfig(cfg)
		tokens = issuer
	}

	return &app{
		catalog:   catalog,
		container: container,
		policy:    policy,
		caller:    caller,
		tokens:    issuer,
		users:     user.NewService(user.NewRepository(store, keys.RegisteredUsers), container, caller, tokens),
		orders:    order.NewService(container, caller, policy),
	}, nil
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `usage: shop <command> [arguments]

catalog:
  products [-category c] [-sort name|price-low|price-high|rating] [-min n] [-max n] [-where expr]
  products -featured n
  product <id>
  categories

cart:
  cart
  add <id> [qty]
  update <id> <qty>
  remove <id>
  clear

account:
  register <email> <password> [first] [last]
  login <email> <password>
  logout
  whoami [token]

orders:
  checkout -street s -city c -state st -zip z -country co [-payment credit|debit|paypal] [-last4 n] [-brand b]
           [-bill-street s -bill-city c -bill-state st -bill-zip z -bill-country co]
  orders
  order <id>

debug:
  state
`)
}
