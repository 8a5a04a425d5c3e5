package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HttpPort uint16 `envconfig:"TELEMETRY_HTTP_SERVER_PORT" default:"8080" required:"true"`

	// Comma separated list of kid:secret pairs. The first entry signs new
	// tokens, the rest are kept for verifying tokens issued before a key
	// rotation.
	TokenSigningKeys string        `envconfig:"TELEMETRY_TOKEN_SIGNING_KEYS" default:"primary:super-secret-key"`
	TokenExpiration  time.Duration `envconfig:"TELEMETRY_TOKEN_EXPIRATION" default:"1h"`
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SigningKeys parses TokenSigningKeys into the active key id and the full
// key set.
func (c *Config) SigningKeys() (string, map[string][]byte, error) {
	var activeKid string
	keys := make(map[string][]byte)
	for i, pair := range strings.Split(c.TokenSigningKeys, ",") {
		kid, secret, found := strings.Cut(strings.TrimSpace(pair), ":")
		if !found || kid == "" || secret == "" {
			return "", nil, fmt.Errorf("invalid signing key pair at position %d", i)
		}
		if i == 0 {
			activeKid = kid
		}
		keys[kid] = []byte(secret)
	}
	return activeKid, keys, nil
}
