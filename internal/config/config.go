package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds configuration values loaded from flags, env, or config file.
type Config struct {
	NodeURL     string
	Listen      string
	RateRPS     float64
	RateBurst   int
	CacheTTL    time.Duration
	CallTimeout time.Duration
	DialRetries int
	DialBackoff time.Duration
	Out         string
	LogLevel    string
}

// Load merges config file, environment variables, and flags into Config.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("ADAPTER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("listen", ":8080")
	v.SetDefault("rate-rps", float64(10))
	v.SetDefault("rate-burst", 20)
	v.SetDefault("cache-ttl", 5*time.Second)
	v.SetDefault("call-timeout", 30*time.Second)
	v.SetDefault("dial-retries", 3)
	v.SetDefault("dial-backoff", 500*time.Millisecond)
	v.SetDefault("out", "./data/events.jsonl")
	v.SetDefault("log-level", "info")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := Config{
		NodeURL:     v.GetString("node"),
		Listen:      v.GetString("listen"),
		RateRPS:     v.GetFloat64("rate-rps"),
		RateBurst:   v.GetInt("rate-burst"),
		CacheTTL:    v.GetDuration("cache-ttl"),
		CallTimeout: v.GetDuration("call-timeout"),
		DialRetries: v.GetInt("dial-retries"),
		DialBackoff: v.GetDuration("dial-backoff"),
		Out:         v.GetString("out"),
		LogLevel:    v.GetString("log-level"),
	}

	return cfg, nil
}
