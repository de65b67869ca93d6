package i

// Authenticator registers new operators and signs existing ones in,
// returning a bearer token on success.
type Authenticator interface {
	Register(username, password string) error
	SignIn(username, password string) (token string, err error)
}
