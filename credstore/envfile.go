package credstore

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Keys inside the dotenv file.
const (
	usernameKey = "TRACKER_USERNAME"
	passwordKey = "TRACKER_PASSWORD"
	tokenKey    = "TRACKER_TOKEN"
)

// EnvFile persists credentials in a dotenv-style file. Username and password
// are read-only; SetToken rewrites the file immediately so a fresh token is
// durable before it is ever used.
type EnvFile struct {
	path string
	v    *viper.Viper
}

// OpenEnvFile loads the credential file at path, creating an empty one when
// it does not exist yet.
func OpenEnvFile(path string) (*EnvFile, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, nil, 0o600); err != nil {
			return nil, fmt.Errorf("create %s: %w", path, err)
		}
	}
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return &EnvFile{path: path, v: v}, nil
}

func (e *EnvFile) Username() string { return e.v.GetString(usernameKey) }
func (e *EnvFile) Password() string { return e.v.GetString(passwordKey) }
func (e *EnvFile) Token() string    { return e.v.GetString(tokenKey) }

// SetToken replaces the token entry and rewrites the file.
func (e *EnvFile) SetToken(token string) error {
	e.v.Set(tokenKey, token)
	if err := e.v.WriteConfig(); err != nil {
		return fmt.Errorf("write %s: %w", e.path, err)
	}
	return nil
}
