package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Rule limits one method and path. Paths ending in "/" match by prefix.
type Rule struct {
	Method string
	Path   string
	// Limit is requests per Window; 0 means unlimited.
	Limit  int
	Window time.Duration
	// Burst is the bucket capacity; it defaults to Limit.
	Burst int
}

func (r *Rule) burst() int {
	if r.Burst > 0 {
		return r.Burst
	}
	return r.Limit
}

func (r *Rule) matches(method, path string) bool {
	if r.Method != method {
		return false
	}
	if strings.HasSuffix(r.Path, "/") {
		return strings.HasPrefix(path, r.Path)
	}
	return r.Path == path
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled bool
	// Default applies to requests no rule matches.
	Default Rule
	Rules   []Rule
	// Exempt client IDs are never limited.
	Exempt map[string]bool
	// IdleTTL is how long an unused bucket is kept.
	IdleTTL time.Duration
}

// Defaults returns limits sized for the AI-backed endpoints: analysis calls
// the model twice per request, searches call it at most once.
func Defaults() *Config {
	return &Config{
		Enabled: true,
		Default: Rule{Limit: 600, Window: time.Minute},
		Rules: []Rule{
			{Method: "GET", Path: "/health"},
			{Method: "POST", Path: "/analyze", Limit: 20, Window: time.Hour, Burst: 5},
			{Method: "POST", Path: "/analyze/stream", Limit: 20, Window: time.Hour, Burst: 5},
			{Method: "POST", Path: "/skills", Limit: 30, Window: time.Hour, Burst: 5},
			{Method: "POST", Path: "/recommendations", Limit: 30, Window: time.Hour, Burst: 5},
			{Method: "POST", Path: "/search", Limit: 60, Window: time.Minute, Burst: 10},
			{Method: "GET", Path: "/search/", Limit: 60, Window: time.Minute, Burst: 10},
			{Method: "GET", Path: "/search.csv", Limit: 60, Window: time.Minute, Burst: 10},
		},
		Exempt:  map[string]bool{},
		IdleTTL: 30 * time.Minute,
	}
}

// LoadConfig applies RATE_LIMIT_* environment overrides to Defaults().
// Limiting is off unless RATE_LIMIT_ENABLED is true; outbound calls to the
// AI service and job sources are never throttled here.
func LoadConfig() *Config {
	cfg := Defaults()
	cfg.Enabled = false
	if v, err := strconv.ParseBool(os.Getenv("RATE_LIMIT_ENABLED")); err == nil {
		cfg.Enabled = v
	}
	if v, err := strconv.Atoi(os.Getenv("RATE_LIMIT_DEFAULT_LIMIT")); err == nil && v >= 0 {
		cfg.Default.Limit = v
	}
	if v, err := time.ParseDuration(os.Getenv("RATE_LIMIT_DEFAULT_WINDOW")); err == nil && v > 0 {
		cfg.Default.Window = v
	}
	for _, ip := range strings.Split(os.Getenv("RATE_LIMIT_EXEMPT"), ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			cfg.Exempt[ip] = true
		}
	}
	return cfg
}

// Match returns the rule for a request: exact paths first, then prefixes,
// then the default rule.
func (c *Config) Match(method, path string) *Rule {
	for i := range c.Rules {
		if !strings.HasSuffix(c.Rules[i].Path, "/") && c.Rules[i].matches(method, path) {
			return &c.Rules[i]
		}
	}
	for i := range c.Rules {
		if c.Rules[i].matches(method, path) {
			return &c.Rules[i]
		}
	}
	return &c.Default
}
