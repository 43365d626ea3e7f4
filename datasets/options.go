package datasets

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/lunaris-space/lunaris-go/internal/logging"
)

// DefaultURL is the production API endpoint.
const DefaultURL = "api.lunaris.space"

type clientConfig struct {
	URL   string `validate:"required"`
	Token string
	Log   logging.Logger
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (c *clientConfig) check() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid client configuration: %w", err)
	}
	return nil
}

// Option configures a Client.
type Option func(*clientConfig)

// WithURL points the client at a different endpoint, e.g. a dev server
// (localhost:8083) or a unix socket (unix:///tmp/api.sock).
func WithURL(url string) Option {
	return func(c *clientConfig) { c.URL = url }
}

// WithToken authenticates every request with the given API key.
func WithToken(token string) Option {
	return func(c *clientConfig) { c.Token = token }
}

// WithLogger sets the logger the client reports diagnostics to. Without it
// the client stays silent.
func WithLogger(log logging.Logger) Option {
	return func(c *clientConfig) { c.Log = log }
}
