package downstream

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/net/http/httpproxy"
)

type ProxyConfig struct {
	HTTPURL  string
	HTTPSURL string
	NoProxy  string
	Username string
	Password string
}

func (p ProxyConfig) Enabled() bool {
	return p.HTTPURL != "" || p.HTTPSURL != ""
}

// ParseProxyURL accepts http, https and socks5 proxies; Username/Password are
// applied only when the URL has no credentials of its own.
func ParseProxyURL(raw, username, password string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("parse proxy url: %w", err)
	}
	switch u.Scheme {
	case "http", "https", "socks5":
	default:
		return nil, fmt.Errorf("proxy url %q: unsupported scheme %q", u.Redacted(), u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("proxy url %q: missing host", u.Redacted())
	}
	if u.User == nil && username != "" {
		u.User = url.UserPassword(username, password)
	}
	return u, nil
}

// proxyFunc returns nil when no proxy is configured so the transport dials
// directly; the process environment is never consulted.
func proxyFunc(cfg ProxyConfig) (func(*http.Request) (*url.URL, error), error) {
	if !cfg.Enabled() {
		return nil, nil
	}

	pc := httpproxy.Config{NoProxy: cfg.NoProxy}
	if cfg.HTTPURL != "" {
		u, err := ParseProxyURL(cfg.HTTPURL, cfg.Username, cfg.Password)
		if err != nil {
			return nil, err
		}
		pc.HTTPProxy = u.String()
	}
	if cfg.HTTPSURL != "" {
		u, err := ParseProxyURL(cfg.HTTPSURL, cfg.Username, cfg.Password)
		if err != nil {
			return nil, err
		}
		pc.HTTPSProxy = u.String()
	}

	fn := pc.ProxyFunc()
	return func(r *http.Request) (*url.URL, error) {
		return fn(r.URL)
	}, nil
}
