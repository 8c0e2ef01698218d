package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

type PredictionConfig struct {
	BaseURL string `toml:"base_url"`
	// Mode is "remote" (prediction service) or "offline" (static catalog).
	Mode string `toml:"mode"`
	// Model is "legacy" or "extended".
	Model   string `toml:"model"`
	TopK    int    `toml:"top_k"`
	Timeout string `toml:"timeout"`
}

type LLMConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
}

type MemgraphConfig struct {
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

type CatalogConfig struct {
	// Source is "static" or "memgraph".
	Source string `toml:"source"`
}

type UIConfig struct {
	PageSize       int    `toml:"page_size"`
	SearchDebounce string `toml:"search_debounce"`
}

type ServerConfig struct {
	Port           int      `toml:"port"`
	AllowedOrigins []string `toml:"allowed_origins"`
}

type LoggerConfig struct {
	Level       string `toml:"level"`
	Format      string `toml:"format"`
	ServiceName string `toml:"service_name"`
	LogFile     string `toml:"log_file"`
	MaxSize     int    `toml:"max_size"`
	MaxBackups  int    `toml:"max_backups"`
	MaxAge      int    `toml:"max_age"`
	Compress    bool   `toml:"compress"`
}

type Config struct {
	Prediction PredictionConfig `toml:"prediction"`
	LLM        LLMConfig        `toml:"llm"`
	Memgraph   MemgraphConfig   `toml:"memgraph"`
	Catalog    CatalogConfig    `toml:"catalog"`
	UI         UIConfig         `toml:"ui"`
	Server     ServerConfig     `toml:"server"`
	Logger     LoggerConfig     `toml:"logger"`
}

func Default() *Config {
	return &Config{
		Prediction: PredictionConfig{
			BaseURL: "http://localhost:5001/api",
			Mode:    "remote",
			Model:   "legacy",
			TopK:    10,
		},
		LLM: LLMConfig{
			Provider: "gemini",
			Model:    "gemini-1.5-flash",
		},
		Catalog: CatalogConfig{Source: "static"},
		UI: UIConfig{
			PageSize:       50,
			SearchDebounce: "300ms",
		},
		Server: ServerConfig{
			Port:           8080,
			AllowedOrigins: []string{"http://localhost:5173"},
		},
		Logger: LoggerConfig{
			Level:       "info",
			Format:      "console",
			ServiceName: "repurpose",
			MaxSize:     100,
			MaxBackups:  3,
			MaxAge:      28,
		},
	}
}

// Load reads a TOML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads path when it exists and falls back to Default otherwise.
// Environment overrides are applied in both cases.
func LoadOrDefault(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			cfg, err = Load(path)
			if err != nil {
				return nil, err
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat config file '%s': %w", path, err)
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from the process environment.
func (c *Config) ApplyEnv() error {
	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}
	setString("PREDICTION_BASE_URL", &c.Prediction.BaseURL)
	setString("PREDICTION_MODE", &c.Prediction.Mode)
	setString("PREDICTION_MODEL", &c.Prediction.Model)
	setString("LLM_PROVIDER", &c.LLM.Provider)
	setString("LLM_MODEL", &c.LLM.Model)
	setString("LLM_API_KEY", &c.LLM.APIKey)
	setString("LLM_BASE_URL", &c.LLM.BaseURL)
	setString("MEMGRAPH_URI", &c.Memgraph.URI)
	setString("MEMGRAPH_USER", &c.Memgraph.User)
	setString("MEMGRAPH_PASSWORD", &c.Memgraph.Password)
	setString("CATALOG_SOURCE", &c.Catalog.Source)
	setString("LOG_LEVEL", &c.Logger.Level)
	setString("LOG_FILE", &c.Logger.LogFile)

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.Server.AllowedOrigins = origins
	}
	return nil
}

func (c *Config) Validate() error {
	var errs []error
	switch c.Prediction.Mode {
	case "remote", "offline":
	default:
		errs = append(errs, fmt.Errorf("prediction.mode must be remote or offline, got %q", c.Prediction.Mode))
	}
	switch c.Prediction.Model {
	case "legacy", "extended":
	default:
		errs = append(errs, fmt.Errorf("prediction.model must be legacy or extended, got %q", c.Prediction.Model))
	}
	if c.Prediction.TopK <= 0 {
		errs = append(errs, fmt.Errorf("prediction.top_k must be positive, got %d", c.Prediction.TopK))
	}
	if _, err := c.Prediction.TimeoutDuration(); err != nil {
		errs = append(errs, err)
	}
	switch c.Catalog.Source {
	case "static":
	case "memgraph":
		if c.Memgraph.URI == "" {
			errs = append(errs, errors.New("catalog.source memgraph requires memgraph.uri"))
		}
	default:
		errs = append(errs, fmt.Errorf("catalog.source must be static or memgraph, got %q", c.Catalog.Source))
	}
	if c.UI.PageSize <= 0 {
		errs = append(errs, fmt.Errorf("ui.page_size must be positive, got %d", c.UI.PageSize))
	}
	if _, err := c.UI.DebounceDuration(); err != nil {
		errs = append(errs, err)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port out of range: %d", c.Server.Port))
	}
	return errors.Join(errs...)
}

// TimeoutDuration parses prediction.timeout. Empty means no timeout.
func (p PredictionConfig) TimeoutDuration() (time.Duration, error) {
	if p.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(p.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid prediction.timeout %q: %w", p.Timeout, err)
	}
	return d, nil
}

func (u UIConfig) DebounceDuration() (time.Duration, error) {
	if u.SearchDebounce == "" {
		return 300 * time.Millisecond, nil
	}
	d, err := time.ParseDuration(u.SearchDebounce)
	if err != nil {
		return 0, fmt.Errorf("invalid ui.search_debounce %q: %w", u.SearchDebounce, err)
	}
	return d, nil
}
