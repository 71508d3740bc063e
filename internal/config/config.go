package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type Config struct {
	SiteTitle string        `mapstructure:"siteTitle"`
	OutputDir string        `mapstructure:"outputDir"`
	BaseURL   string        `mapstructure:"baseURL"`
	SourceDir string        `mapstructure:"sourceDir"` // empty means the embedded site
	LogLevel  string        `mapstructure:"logLevel"`
	Server    ServerConfig  `mapstructure:"server"`
	Contact   ContactConfig `mapstructure:"contact"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdownTimeout"`
	AllowedOrigins  []string      `mapstructure:"allowedOrigins"`
	TrustedProxies  []string      `mapstructure:"trustedProxies"` // allowed to set X-Forwarded-For
}

type ContactConfig struct {
	SendDelay  time.Duration `mapstructure:"sendDelay"`
	ResetAfter time.Duration `mapstructure:"resetAfter"`
	RatePerMin int           `mapstructure:"ratePerMinute"`
	DedupTTL   time.Duration `mapstructure:"dedupTTL"`
	RedisAddr  string        `mapstructure:"redisAddr"`
	RedisDB    int           `mapstructure:"redisDB"`
}

// Defaults mirrors the values registered with viper in cmd/root.go.
func Defaults() Config {
	return Config{
		SiteTitle: "SilentWatch",
		OutputDir: "public",
		LogLevel:  "info",
		Server: ServerConfig{
			Port:            1313,
			ShutdownTimeout: 5 * time.Second,
		},
		Contact: ContactConfig{
			SendDelay:  2 * time.Second,
			ResetAfter: 5 * time.Second,
			RatePerMin: 5,
			DedupTTL:   10 * time.Minute,
		},
	}
}

func (c Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("outputDir is required")
	}
	if err := checkOutputDir(c.OutputDir, c.SourceDir); err != nil {
		return err
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Contact.SendDelay < 0 || c.Contact.ResetAfter < 0 {
		return fmt.Errorf("contact delays must not be negative")
	}
	return nil
}

// checkOutputDir rejects output directories whose removal at the start of a
// build would also delete the site source or the working directory.
func checkOutputDir(outputDir, sourceDir string) error {
	out, err := filepath.Abs(outputDir)
	if err != nil {
		return fmt.Errorf("invalid outputDir %q: %w", outputDir, err)
	}
	if sourceDir != "" {
		src, err := filepath.Abs(sourceDir)
		if err != nil {
			return fmt.Errorf("invalid sourceDir %q: %w", sourceDir, err)
		}
		if within(out, src) {
			return fmt.Errorf("outputDir %q would contain sourceDir %q and is cleaned on every build", outputDir, sourceDir)
		}
	}
	if wd, err := os.Getwd(); err == nil && within(out, wd) {
		return fmt.Errorf("outputDir %q would contain the working directory and is cleaned on every build", outputDir)
	}
	return nil
}

// within reports whether path is dir itself or lies below it.
func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
