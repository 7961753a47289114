// Package credstore holds the credentials the tracking API needs: username,
// password and the current bearer token. The token is mutable process-external
// state, so the package exposes it behind a narrow capability instead of
// letting callers touch the environment file directly.
package credstore

// Store is the credential capability the API client works against.
type Store interface {
	Username() string
	Password() string
	Token() string
	SetToken(token string) error
}

// Memory is an in-memory Store for tests.
type Memory struct {
	User string
	Pass string
	Tok  string
}

func (m *Memory) Username() string { return m.User }
func (m *Memory) Password() string { return m.Pass }
func (m *Memory) Token() string    { return m.Tok }

func (m *Memory) SetToken(token string) error {
	m.Tok = token
	return nil
}
