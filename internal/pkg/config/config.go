package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/janmarg/CivicPortal/internal/pkg/env"
)

// Config holds every runtime setting the portal needs. It is built once at
// process start and handed to collaborators explicitly; packages must not
// read environment variables on their own after startup.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Cache    CacheConfig
	SMTP     SMTPConfig
	Upload   UploadConfig
	HCaptcha HCaptchaConfig
}

type AppConfig struct {
	Host string
	Port string
	Env  string
}

type DatabaseConfig struct {
	User     string
	Password string
	Host     string
	Port     string
	Name     string
}

type CacheConfig struct {
	Host     string
	Port     string
	Password string
}

type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Sender   string
}

// HCaptchaConfig enables captcha verification on citizen registration when
// both fields are set.
type HCaptchaConfig struct {
	SiteKey string
	Secret  string
}

func (h HCaptchaConfig) Enabled() bool {
	return h.SiteKey != "" && h.Secret != ""
}

type UploadConfig struct {
	// Dir is the directory complaint images are written to. It is created
	// at startup if missing.
	Dir string
}

// Load reads the .env file (via the env package) and assembles the Config.
func Load() (*Config, error) {
	env.SetupEnvFile()

	cfg := &Config{
		App: AppConfig{
			Host: env.GetEnv("APP_HOST", "localhost"),
			Port: env.GetEnv("APP_PORT", "4000"),
			Env:  env.GetEnv("APP_ENV", "prod"),
		},
		Database: DatabaseConfig{
			User:     env.GetEnv("DB_USER", "civicportal"),
			Password: env.GetEnv("DB_PASSWORD", ""),
			Host:     env.GetEnv("DB_HOST", "127.0.0.1"),
			Port:     env.GetEnv("DB_PORT", "3306"),
			Name:     env.GetEnv("DB_NAME", "civicportal_db"),
		},
		Cache: CacheConfig{
			Host:     env.GetEnv("CACHE_HOST", "localhost"),
			Port:     env.GetEnv("CACHE_PORT", "6379"),
			Password: env.GetEnv("CACHE_PASSWORD", ""),
		},
		SMTP: SMTPConfig{
			Host:     env.GetEnv("SMTP_HOST", ""),
			Port:     env.GetEnv("SMTP_PORT", "587"),
			Username: env.GetEnv("SMTP_USERNAME", ""),
			Password: env.GetEnv("SMTP_PASSWORD", ""),
			Sender:   env.GetEnv("SMTP_SENDER", ""),
		},
		Upload: UploadConfig{
			Dir: env.GetEnv("UPLOAD_DIR", filepath.Join(".", "uploads")),
		},
		HCaptcha: HCaptchaConfig{
			SiteKey: env.GetEnv("HCAPTCHA_SITEKEY", ""),
			Secret:  env.GetEnv("HCAPTCHA_SECRET", ""),
		},
	}

	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %s: %w", cfg.Upload.Dir, err)
	}

	return cfg, nil
}

// DSN returns the MySQL data source name used by GORM.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User, d.Password, d.Host, d.Port, d.Name)
}

// MigrateURL returns the database URL used by golang-migrate.
func (d DatabaseConfig) MigrateURL() string {
	return fmt.Sprintf("mysql://%s:%s@tcp(%s:%s)/%s?multiStatements=true",
		d.User, d.Password, d.Host, d.Port, d.Name)
}

// Addr returns host:port for the cache server.
func (c CacheConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}
