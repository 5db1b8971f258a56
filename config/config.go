package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the outfit search service.
type Config struct {
	General GeneralConfig `mapstructure:"general"`
	LLM     LLMConfig     `mapstructure:"llm"`
	Browser BrowserConfig `mapstructure:"browser"`
	Search  SearchConfig  `mapstructure:"search"`
	Cache   CacheConfig   `mapstructure:"cache"`
}

// GeneralConfig contains process-wide settings.
type GeneralConfig struct {
	Debug  bool   `mapstructure:"debug"`
	Listen string `mapstructure:"listen"`
}

// LLMConfig configures the language-understanding provider.
type LLMConfig struct {
	Provider    string        `mapstructure:"provider"` // openai only, for now
	APIKey      string        `mapstructure:"api_key"`
	BaseURL     string        `mapstructure:"base_url"`
	Model       string        `mapstructure:"model"`
	Temperature float64       `mapstructure:"temperature"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

func (c LLMConfig) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" && os.Getenv("OPENAI_API_KEY") == "" {
		return fmt.Errorf("llm.api_key or OPENAI_API_KEY is required")
	}
	if strings.TrimSpace(c.Model) == "" {
		return fmt.Errorf("llm.model is required")
	}
	return nil
}

// BrowserConfig controls the shared headless-browser session.
type BrowserConfig struct {
	Headless    bool          `mapstructure:"headless"`
	UserAgent   string        `mapstructure:"user_agent"`
	NavTimeout  time.Duration `mapstructure:"nav_timeout"`
	WaitTimeout time.Duration `mapstructure:"wait_timeout"`
}

// Normalize applies defaults for unset browser values.
func (c BrowserConfig) Normalize() BrowserConfig {
	if c.NavTimeout <= 0 {
		c.NavTimeout = 30 * time.Second
	}
	if c.WaitTimeout <= 0 {
		c.WaitTimeout = 10 * time.Second
	}
	if strings.TrimSpace(c.UserAgent) == "" {
		c.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	}
	return c
}

// SearchConfig tunes the aggregation pipeline.
type SearchConfig struct {
	Overscan       int `mapstructure:"overscan"`         // raw candidates pulled per page before filtering
	MaxPerCategory int `mapstructure:"max_per_category"` // default cap when the request omits one
}

// Normalize applies defaults for unset search values.
func (c SearchConfig) Normalize() SearchConfig {
	if c.Overscan <= 0 {
		c.Overscan = 10
	}
	if c.MaxPerCategory <= 0 {
		c.MaxPerCategory = 4
	}
	return c
}

// CacheConfig configures the optional redis plan cache. Disabled when the
// address is empty.
type CacheConfig struct {
	RedisAddr string        `mapstructure:"redis_addr"`
	RedisPass string        `mapstructure:"redis_pass"`
	RedisDB   int           `mapstructure:"redis_db"`
	TTL       time.Duration `mapstructure:"ttl"`
}

// Enabled reports whether plan caching is turned on.
func (c CacheConfig) Enabled() bool { return strings.TrimSpace(c.RedisAddr) != "" }

// Normalize applies defaults for unset cache values.
func (c CacheConfig) Normalize() CacheConfig {
	if c.TTL <= 0 {
		c.TTL = time.Hour
	}
	return c
}

// LoadConfig loads config from file, falling back to env vars and defaults
// when no file is present. Env vars use the OUTFITTER_ prefix with "_" in
// place of "." (e.g. OUTFITTER_LLM_API_KEY).
func LoadConfig(path string) *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("json")

	viper.SetDefault("general.listen", ":10002")
	viper.SetDefault("llm.provider", "openai")
	viper.SetDefault("llm.model", "gpt-4o")
	viper.SetDefault("llm.temperature", 0.1)
	viper.SetDefault("llm.max_tokens", 1000)
	viper.SetDefault("llm.timeout", 30*time.Second)
	viper.SetDefault("browser.headless", true)
	viper.SetDefault("search.overscan", 10)
	viper.SetDefault("search.max_per_category", 4)
	viper.SetDefault("cache.ttl", time.Hour)

	if path == "" {
		viper.AddConfigPath("./config")
		viper.AddConfigPath(".")
		exe, _ := os.Executable()
		exeDir := filepath.Dir(exe)
		viper.AddConfigPath(exeDir)
		viper.AddConfigPath(filepath.Join(exeDir, ".."))
	} else {
		viper.SetConfigFile(path)
	}

	viper.SetEnvPrefix("OUTFITTER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
		// no file is fine, env vars and defaults carry the config
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		panic(fmt.Errorf("fatal error config file: %w", err))
	}

	config.Browser = config.Browser.Normalize()
	config.Search = config.Search.Normalize()
	config.Cache = config.Cache.Normalize()

	return &config
}
