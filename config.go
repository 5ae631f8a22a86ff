package template

import (
	"os"

	"github.com/pkg/errors"
	v2 "gopkg.in/yaml.v2"
)

type Config struct {
	TplDir    string `yaml:"TplDir"`
	ExtName   string `yaml:"ExtName"`
	Cache     bool   `yaml:"Cache"`
	CacheSize int    `yaml:"CacheSize"`
}

// DefaultCacheSize bounds the document cache unless a config says otherwise.
const DefaultCacheSize = 1024

func DefaultConfig() *Config {
	return &Config{TplDir: ".", ExtName: ".tpl", Cache: true, CacheSize: DefaultCacheSize}
}

// LoadConfig reads a YAML config file. Fields missing from the file keep
// their DefaultConfig values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	config := DefaultConfig()
	if err = v2.Unmarshal(data, config); err != nil {
		return nil, errors.Wrapf(err, "decoding config %s", path)
	}
	if config.CacheSize < 0 {
		return nil, errors.Errorf("CacheSize can't be negative, got %d", config.CacheSize)
	}

	return config, nil
}
