package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/tourtree/internal/bench"
)

// errUnknownKeys is returned when a config file carries keys Config lacks.
var errUnknownKeys = errors.New("unknown config keys")

// loadConfig decodes the TOML file at path over base. Keys absent from the
// file keep their base value.
func loadConfig(path string, base bench.Config) (bench.Config, error) {
	cfg := base
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return base, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return base, fmt.Errorf("config %s: %w: %s", path, errUnknownKeys, strings.Join(keys, ", "))
	}
	return cfg, nil
}
