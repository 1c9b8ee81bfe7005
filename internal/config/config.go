// Package config loads server configuration from the environment, an
// optional .env file and an optional YAML site file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/evcraddock/agent-site/internal/email"
)

// Defaults for the site identity.
const (
	DefaultPort       = 8080
	DefaultBaseURL    = "https://samcampolorealestate.com"
	DefaultFrom       = "Sam Campolo Website <noreply@samcampolorealestate.com>"
	DefaultOwnerEmail = "sam.campolo@compass.com"
	DefaultSiteName   = "Sam Campolo Real Estate"
)

// Config holds server configuration.
type Config struct {
	Port         int
	DevMode      bool
	SiteName     string
	BaseURL      string
	DBPath       string // optional SQLite catalog; empty uses compiled-in listings
	ResendAPIKey string
	From         string
	OwnerEmail   string
	SMTP         email.SMTPConfig
}

// SiteFile is the YAML site identity file. Set fields override the
// environment.
type SiteFile struct {
	Name       string `yaml:"name"`
	BaseURL    string `yaml:"base_url"`
	From       string `yaml:"from"`
	OwnerEmail string `yaml:"owner_email"`
}

// Load reads envFile (if present) into the process environment, builds a
// Config from SITE_* variables, then applies siteFile (if non-empty).
// A missing envFile is not an error; a missing siteFile is.
func Load(envFile, siteFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	cfg, err := FromEnv()
	if err != nil {
		return Config{}, err
	}

	if siteFile != "" {
		sf, err := ReadSiteFile(siteFile)
		if err != nil {
			return Config{}, err
		}
		cfg.apply(sf)
	}
	return cfg, nil
}

// FromEnv creates a Config from environment variables.
func FromEnv() (Config, error) {
	port := DefaultPort
	if v := os.Getenv("SITE_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil || p <= 0 || p > 65535 {
			return Config{}, fmt.Errorf("invalid SITE_PORT %q", v)
		}
		port = p
	}

	return Config{
		Port:         port,
		DevMode:      os.Getenv("SITE_DEV_MODE") == "true",
		SiteName:     envOrDefault("SITE_NAME", DefaultSiteName),
		BaseURL:      envOrDefault("SITE_BASE_URL", DefaultBaseURL),
		DBPath:       os.Getenv("SITE_DB"),
		ResendAPIKey: os.Getenv("RESEND_API_KEY"),
		From:         envOrDefault("SITE_FROM", DefaultFrom),
		OwnerEmail:   envOrDefault("SITE_OWNER_EMAIL", DefaultOwnerEmail),
		SMTP: email.SMTPConfig{
			Host: os.Getenv("SITE_SMTP_HOST"),
			Port: envOrDefault("SITE_SMTP_PORT", "587"),
			User: os.Getenv("SITE_SMTP_USER"),
			Pass: os.Getenv("SITE_SMTP_PASS"),
			From: os.Getenv("SITE_SMTP_FROM"),
		},
	}, nil
}

// ReadSiteFile parses a YAML site file.
func ReadSiteFile(path string) (SiteFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SiteFile{}, fmt.Errorf("reading site file: %w", err)
	}
	var sf SiteFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return SiteFile{}, fmt.Errorf("parsing site file %s: %w", path, err)
	}
	return sf, nil
}

func (c *Config) apply(sf SiteFile) {
	if sf.Name != "" {
		c.SiteName = sf.Name
	}
	if sf.BaseURL != "" {
		c.BaseURL = sf.BaseURL
	}
	if sf.From != "" {
		c.From = sf.From
	}
	if sf.OwnerEmail != "" {
		c.OwnerEmail = sf.OwnerEmail
	}
}

// Domain returns the host part of BaseURL, used in lead summaries.
func (c Config) Domain() string {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Host == "" {
		return c.BaseURL
	}
	return u.Hostname()
}

// Addr returns the listen address for Port.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
