package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"netanyaRelay/internal/attachment"
	"netanyaRelay/internal/dispatch"
	"netanyaRelay/internal/downstream"
	"netanyaRelay/pkg/e"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

type Config struct {
	Env        string           `yaml:"env"`
	Http       HttpConfig       `yaml:"http"`
	Dispatch   DispatchConfig   `yaml:"dispatch"`
	Attachment AttachmentConfig `yaml:"attachment"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	CORS       CORSConfig       `yaml:"cors"`
	Redis      RedisConfig      `yaml:"redis"`
	Health     HealthConfig     `yaml:"health"`
}

type HttpConfig struct {
	Port            string        `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type DispatchConfig struct {
	Mode        dispatch.Mode `yaml:"mode"`
	Endpoint    string        `yaml:"endpoint"`
	Timeout     time.Duration `yaml:"timeout"`
	Proxy       ProxyConfig   `yaml:"proxy"`
	DebugErrors bool          `yaml:"debug_errors"`
}

type ProxyConfig struct {
	HTTPURL  string `yaml:"http_url"`
	HTTPSURL string `yaml:"https_url"`
	NoProxy  string `yaml:"no_proxy"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type AttachmentConfig struct {
	MaxBytes      int64    `yaml:"max_bytes"`
	SizeTolerance int64    `yaml:"size_tolerance"`
	AllowedTypes  []string `yaml:"allowed_types"`
}

type RateLimitConfig struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type HealthConfig struct {
	ProbeInterval time.Duration `yaml:"probe_interval"`
	CacheTTL      time.Duration `yaml:"cache_ttl"`
}

func Default() Config {
	return Config{
		Env: EnvLocal,
		Http: HttpConfig{
			Port:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Dispatch: DispatchConfig{
			Endpoint: downstream.DefaultEndpoint,
			Timeout:  downstream.DefaultTimeout,
		},
		Attachment: AttachmentConfig{
			MaxBytes:     attachment.DefaultMaxBytes,
			AllowedTypes: slices.Clone(attachment.SupportedTypes),
		},
		RateLimit: RateLimitConfig{RPS: 5, Burst: 10},
		CORS:      CORSConfig{AllowedOrigins: []string{"https://www.netanya.muni.il"}},
		Health: HealthConfig{
			ProbeInterval: 60 * time.Second,
			CacheTTL:      2 * time.Minute,
		},
	}
}

// Load applies CONFIG_FILE (if set) over the defaults, then the process
// environment, which includes values loaded from .env. Later sources win.
// Any malformed value is an error.
func Load(logger *slog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, e.Wrap("open config file", errors.Join(e.ErrInvalidConfig, err))
		}
		defer f.Close()
		if err := decodeYAML(f, &cfg); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.LogSummary(logger)
	return &cfg, nil
}

func decodeYAML(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return e.Wrap("decode config file", errors.Join(e.ErrInvalidConfig, err))
	}
	return nil
}

// LoadYAML decodes a YAML document over the defaults without touching the
// environment.
func LoadYAML(data []byte) (*Config, error) {
	cfg := Default()
	if err := decodeYAML(bytes.NewReader(data), &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	r := &envReader{lookup: lookup}

	r.str("ENV", &cfg.Env)
	r.str("HTTP_PORT", &cfg.Http.Port)
	r.duration("HTTP_READ_TIMEOUT", &cfg.Http.ReadTimeout)
	r.duration("HTTP_WRITE_TIMEOUT", &cfg.Http.WriteTimeout)
	r.duration("HTTP_SHUTDOWN_TIMEOUT", &cfg.Http.ShutdownTimeout)

	var mode string
	if r.str("DISPATCH_MODE", &mode) {
		cfg.Dispatch.Mode = dispatch.Mode(mode)
	}
	r.str("DOWNSTREAM_ENDPOINT", &cfg.Dispatch.Endpoint)
	r.duration("DOWNSTREAM_TIMEOUT", &cfg.Dispatch.Timeout)
	r.str("HTTP_PROXY_URL", &cfg.Dispatch.Proxy.HTTPURL)
	r.str("HTTPS_PROXY_URL", &cfg.Dispatch.Proxy.HTTPSURL)
	r.str("NO_PROXY_HOSTS", &cfg.Dispatch.Proxy.NoProxy)
	r.str("PROXY_USERNAME", &cfg.Dispatch.Proxy.Username)
	r.str("PROXY_PASSWORD", &cfg.Dispatch.Proxy.Password)
	r.bool("DEBUG_ERRORS", &cfg.Dispatch.DebugErrors)

	r.int64("ATTACHMENT_MAX_BYTES", &cfg.Attachment.MaxBytes)
	r.int64("ATTACHMENT_SIZE_TOLERANCE", &cfg.Attachment.SizeTolerance)
	r.list("ATTACHMENT_ALLOWED_TYPES", &cfg.Attachment.AllowedTypes)

	r.float("RATE_LIMIT_RPS", &cfg.RateLimit.RPS)
	r.int("RATE_LIMIT_BURST", &cfg.RateLimit.Burst)
	r.list("CORS_ALLOWED_ORIGINS", &cfg.CORS.AllowedOrigins)

	r.str("REDIS_ADDR", &cfg.Redis.Addr)
	r.str("REDIS_PASSWORD", &cfg.Redis.Password)
	r.int("REDIS_DB", &cfg.Redis.DB)

	r.duration("HEALTH_PROBE_INTERVAL", &cfg.Health.ProbeInterval)
	r.duration("HEALTH_CACHE_TTL", &cfg.Health.CacheTTL)

	return r.err()
}

func (c *Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		fail("ENV %q must be one of local, dev, prod", c.Env)
	}

	if c.Http.Port == "" || c.Http.Port[0] != ':' {
		fail("HTTP_PORT must start with ':' like ':8080'")
	}

	mode, err := dispatch.ParseMode(string(c.Dispatch.Mode))
	if err != nil {
		fail("DISPATCH_MODE must be simulated or live, got %q", c.Dispatch.Mode)
	}
	c.Dispatch.Mode = mode

	if c.Dispatch.Timeout <= 0 {
		fail("DOWNSTREAM_TIMEOUT must be positive")
	}
	if mode == dispatch.ModeLive {
		u, err := url.Parse(c.Dispatch.Endpoint)
		switch {
		case c.Dispatch.Endpoint == "":
			fail("DOWNSTREAM_ENDPOINT is required in live mode")
		case err != nil || u.Host == "":
			fail("DOWNSTREAM_ENDPOINT %q is not an absolute url", c.Dispatch.Endpoint)
		case c.Env == EnvProd && u.Scheme != "https":
			fail("DOWNSTREAM_ENDPOINT must use https in prod")
		}
		if c.Env == EnvProd && c.Dispatch.DebugErrors {
			fail("DEBUG_ERRORS must be off in prod with live dispatch")
		}
	}

	p := c.Dispatch.Proxy
	for key, raw := range map[string]string{"HTTP_PROXY_URL": p.HTTPURL, "HTTPS_PROXY_URL": p.HTTPSURL} {
		if raw == "" {
			continue
		}
		if _, err := downstream.ParseProxyURL(raw, p.Username, p.Password); err != nil {
			fail("%s: %v", key, err)
		}
	}

	if c.Attachment.MaxBytes <= 0 {
		fail("ATTACHMENT_MAX_BYTES must be positive")
	}
	if c.Attachment.SizeTolerance < 0 {
		fail("ATTACHMENT_SIZE_TOLERANCE must not be negative")
	}
	types := make([]string, 0, len(c.Attachment.AllowedTypes))
	for _, t := range c.Attachment.AllowedTypes {
		full := normalizeImageType(t)
		if !slices.Contains(attachment.SupportedTypes, full) {
			fail("ATTACHMENT_ALLOWED_TYPES: %q is not supported", t)
			continue
		}
		types = append(types, full)
	}
	c.Attachment.AllowedTypes = types

	if c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0 {
		fail("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	if c.Health.ProbeInterval <= 0 || c.Health.CacheTTL <= 0 {
		fail("HEALTH_PROBE_INTERVAL and HEALTH_CACHE_TTL must be positive")
	}

	if len(errs) > 0 {
		return errors.Join(e.ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// DebugErrors reports whether raw downstream text may reach API clients.
func (c *Config) DebugErrors() bool {
	return c.Dispatch.Mode == dispatch.ModeSimulated || c.Dispatch.DebugErrors
}

func (c *Config) DownstreamProxy() downstream.ProxyConfig {
	p := c.Dispatch.Proxy
	return downstream.ProxyConfig{
		HTTPURL:  p.HTTPURL,
		HTTPSURL: p.HTTPSURL,
		NoProxy:  p.NoProxy,
		Username: p.Username,
		Password: p.Password,
	}
}

// LogSummary writes one line describing the effective configuration with
// credentials removed.
func (c *Config) LogSummary(logger *slog.Logger) {
	logger.Info("Config loaded successfully",
		slog.String("env", c.Env),
		slog.String("http_port", c.Http.Port),
		slog.String("dispatch_mode", string(c.Dispatch.Mode)),
		slog.String("downstream_endpoint", c.Dispatch.Endpoint),
		slog.Duration("downstream_timeout", c.Dispatch.Timeout),
		slog.String("http_proxy", redactURL(c.Dispatch.Proxy.HTTPURL)),
		slog.String("https_proxy", redactURL(c.Dispatch.Proxy.HTTPSURL)),
		slog.Bool("proxy_auth", c.Dispatch.Proxy.Username != ""),
		slog.Bool("debug_errors", c.DebugErrors()),
		slog.Int64("attachment_max_bytes", c.Attachment.MaxBytes),
		slog.String("redis_addr", c.Redis.Addr),
	)
}

func redactURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "<invalid>"
	}
	return u.Redacted()
}

func normalizeImageType(t string) string {
	t = strings.ToLower(strings.TrimSpace(t))
	if t == "jpg" {
		t = "jpeg"
	}
	if !strings.Contains(t, "/") {
		t = "image/" + t
	}
	return t
}
