package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Upstream UpstreamConfig
	Render   RenderConfig
	Export   ExportConfig
}

type ServerConfig struct {
	Host string
	Port int
	Mode string
}

type LogConfig struct {
	Level string
	JSON  bool
}

type UpstreamConfig struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

type RenderConfig struct {
	TemplatePath   string
	TemplateURL    string
	FontRegular    string
	FontBold       string
	DefaultQuality int
}

type ExportConfig struct {
	// Concurrency caps parallel fetch/render work per export. Zero means unbounded.
	Concurrency int
}

const defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119.0.0.0 Safari/537.36"

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)

	v.SetDefault("upstream.base_url", "https://www.hackerrank.com")
	v.SetDefault("upstream.timeout", "30s")
	v.SetDefault("upstream.user_agent", defaultUserAgent)

	v.SetDefault("render.template_path", "assets/hackerrank-certificate-template.jpeg")
	v.SetDefault("render.template_url", "https://hrcdn.net/fcore/assets/certificate/certificate_template-9336f189bc.jpg")
	v.SetDefault("render.font_regular", "")
	v.SetDefault("render.font_bold", "")
	v.SetDefault("render.default_quality", 90)

	v.SetDefault("export.concurrency", 8)
}

// Load reads configuration from defaults, an optional config.yaml, an optional
// .env file and the process environment, in increasing precedence.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{}
	var err error

	cfg.Server.Host = v.GetString("server.host")
	if cfg.Server.Port, err = intValue(v, "server.port"); err != nil {
		return nil, err
	}
	cfg.Server.Mode = v.GetString("server.mode")

	cfg.Log.Level = v.GetString("log.level")
	if cfg.Log.JSON, err = boolValue(v, "log.json"); err != nil {
		return nil, err
	}

	cfg.Upstream.BaseURL = strings.TrimRight(v.GetString("upstream.base_url"), "/")
	if cfg.Upstream.Timeout, err = time.ParseDuration(v.GetString("upstream.timeout")); err != nil {
		return nil, fmt.Errorf("invalid upstream.timeout: %w", err)
	}
	cfg.Upstream.UserAgent = v.GetString("upstream.user_agent")

	cfg.Render.TemplatePath = v.GetString("render.template_path")
	cfg.Render.TemplateURL = v.GetString("render.template_url")
	cfg.Render.FontRegular = v.GetString("render.font_regular")
	cfg.Render.FontBold = v.GetString("render.font_bold")
	if cfg.Render.DefaultQuality, err = intValue(v, "render.default_quality"); err != nil {
		return nil, err
	}

	if cfg.Export.Concurrency, err = intValue(v, "export.concurrency"); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535, got %d", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("server.mode must be debug, release or test, got %q", c.Server.Mode)
	}
	if c.Upstream.BaseURL == "" {
		return errors.New("upstream.base_url cannot be empty")
	}
	if c.Upstream.Timeout <= 0 {
		return fmt.Errorf("upstream.timeout must be positive, got %s", c.Upstream.Timeout)
	}
	if c.Render.DefaultQuality < 0 || c.Render.DefaultQuality > 100 {
		return fmt.Errorf("render.default_quality must be in 0..100, got %d", c.Render.DefaultQuality)
	}
	if c.Export.Concurrency < 0 {
		return fmt.Errorf("export.concurrency must be non-negative, got %d", c.Export.Concurrency)
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// viper's GetInt swallows parse errors; a typo in an env var should fail startup instead.
func intValue(v *viper.Viper, key string) (int, error) {
	n, err := cast.ToIntE(v.Get(key))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func boolValue(v *viper.Viper, key string) (bool, error) {
	b, err := cast.ToBoolE(v.Get(key))
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
