package user

import "time"

// User is the session-visible identity. It never carries a password.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Avatar    *string   `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	out := *u
	if u.Avatar != nil {
		a := *u.Avatar
		out.Avatar = &a
	}
	return &out
}

// Credential is one entry of the registered-users collection. The password is
// stored in plaintext; this backend is a local mock.
type Credential struct {
	User
	Password string `json:"password"`
}

// Public strips the password.
func (c Credential) Public() User {
	return *c.User.Clone()
}

type RegisterData struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

func (d RegisterData) Validate() error {
	if d.Email == "" || d.Password == "" {
		return ErrInvalidRegistration
	}
	return nil
}

// AuthResult is the success outcome of login and registration.
type AuthResult struct {
	User  User
	Token string
}
