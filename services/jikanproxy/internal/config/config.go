package config

import (
	"fmt"
	"net/netip"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	JikanBaseURL     string
	JikanMinInterval time.Duration
	JikanTimeout     time.Duration
	JikanMaxAttempts int
	SamplerStrategy  string
	Locale           string

	// Optional collaborators; empty disables them.
	JWTSecret   []byte
	DatabaseURL string
	NATSURL     string

	InboundRPS   float64
	InboundBurst int

	// TrustedProxies are the peers allowed to set X-Forwarded-For.
	TrustedProxies []netip.Prefix
}

func Load() (Config, error) {
	cfg := Config{
		JikanBaseURL:    env("JIKAN_BASE_URL", "https://api.jikan.moe/v4"),
		SamplerStrategy: strings.ToLower(env("SAMPLER_STRATEGY", "probe")),
		Locale:          strings.ToLower(env("LOCALE", "ru")),
		DatabaseURL:     env("DATABASE_URL", ""),
		NATSURL:         env("NATS_URL", ""),
	}
	if s := env("JWT_SECRET", ""); s != "" {
		cfg.JWTSecret = []byte(s)
	}

	var err error
	if cfg.JikanMinInterval, err = durationEnv("JIKAN_MIN_INTERVAL", 340*time.Millisecond); err != nil {
		return Config{}, err
	}
	if cfg.JikanTimeout, err = durationEnv("JIKAN_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.JikanMaxAttempts, err = intEnv("JIKAN_MAX_ATTEMPTS", 3); err != nil {
		return Config{}, err
	}
	if cfg.InboundBurst, err = intEnv("INBOUND_BURST", 10); err != nil {
		return Config{}, err
	}
	if cfg.InboundRPS, err = floatEnv("INBOUND_RPS", 5); err != nil {
		return Config{}, err
	}

	if cfg.TrustedProxies, err = prefixesEnv("TRUSTED_PROXIES"); err != nil {
		return Config{}, err
	}

	switch cfg.SamplerStrategy {
	case "probe", "blind":
	default:
		return Config{}, fmt.Errorf("SAMPLER_STRATEGY must be probe or blind, got %q", cfg.SamplerStrategy)
	}
	switch cfg.Locale {
	case "ru", "en":
	default:
		return Config{}, fmt.Errorf("LOCALE must be ru or en, got %q", cfg.Locale)
	}
	return cfg, nil
}

func env(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := env(key, "")
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s must be a positive duration, got %q", key, v)
	}
	return d, nil
}

func intEnv(key string, def int) (int, error) {
	v := env(key, "")
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, v)
	}
	return n, nil
}

func floatEnv(key string, def float64) (float64, error) {
	v := env(key, "")
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		return 0, fmt.Errorf("%s must be a positive number, got %q", key, v)
	}
	return f, nil
}

// prefixesEnv parses a comma-separated list of CIDRs or bare addresses.
func prefixesEnv(key string) ([]netip.Prefix, error) {
	var out []netip.Prefix
	for _, raw := range strings.Split(env(key, ""), ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if p, err := netip.ParsePrefix(raw); err == nil {
			out = append(out, p.Masked())
			continue
		}
		addr, err := netip.ParseAddr(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid address or CIDR %q", key, raw)
		}
		out = append(out, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return out, nil
}
