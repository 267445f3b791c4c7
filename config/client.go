package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ClientConfig holds the settings of the specctl command line client.
type ClientConfig struct {
	APIURL    string        `mapstructure:"api_url"`
	TokenFile string        `mapstructure:"token_file"`
	Timeout   time.Duration `mapstructure:"timeout"`
	PageSize  int           `mapstructure:"page_size"`
	LogLevel  string        `mapstructure:"log_level"`
}

// SetClientDefaults registers the client defaults on v
func SetClientDefaults(v *viper.Viper) {
	v.SetDefault("api_url", "http://localhost:8000")
	v.SetDefault("token_file", "")
	v.SetDefault("timeout", 30*time.Second)
	v.SetDefault("page_size", 10)
	v.SetDefault("log_level", "warn")
}

// LoadClient decodes the client settings from v, which the caller has
// already bound to flags. SPECDASH_* environment variables override the
// optional specctl.yaml file.
func LoadClient(v *viper.Viper) (*ClientConfig, error) {
	v.SetConfigName("specctl")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "specdash"))
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix("SPECDASH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	var cfg ClientConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.APIURL = strings.TrimRight(strings.TrimSpace(cfg.APIURL), "/")
	if cfg.APIURL == "" {
		return nil, fmt.Errorf("api_url is required")
	}
	if cfg.PageSize < 1 {
		cfg.PageSize = 10
	}
	return &cfg, nil
}
