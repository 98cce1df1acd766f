// Package config contains code to set the default values and read
// config files to be used throughout the whole application
package config

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/spf13/pflag"
	v "github.com/spf13/viper"
)

var (
	migrateOnly       = pflag.Bool("migrate-only", false, "Runs database migrations and exits")
	validLogLevels    = []string{"debug", "info", "warn", "error", "fatal"}
	validStorageTypes = []string{"sqlite", "postgres"}
)

// Setup prepares everything config-related so that the app can
// start working. Function will return an error if something
// is critically wrong and the application can't run because of
// that.
func Setup() error {
	pflag.Parse()
	v.BindPFlags(pflag.CommandLine)

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	v.AutomaticEnv()

	//
	// ENVS
	//
	v.BindEnv("app.log_level", "app_log_level")

	v.BindEnv("host.port", "host_port")
	v.BindEnv("host.domain", "host_domain")
	v.BindEnv("host.ssl.enabled", "host_ssl_enabled")

	v.BindEnv("jwt.access_secret", "jwt_access_secret")
	v.BindEnv("jwt.access_expiry", "jwt_access_expiry")
	v.BindEnv("jwt.refresh_secret", "jwt_refresh_secret")
	v.BindEnv("jwt.refresh_expiry", "jwt_refresh_expiry")

	v.BindEnv("reset.token_expiry", "reset_token_expiry")

	v.BindEnv("cleanup.verification_grace", "cleanup_verification_grace")

	v.BindEnv("storage.type", "storage_type")
	v.BindEnv("storage.dsn", "storage_dsn")

	v.BindEnv("mail.enabled", "mail_enabled")
	v.BindEnv("mail.host", "mail_host")
	v.BindEnv("mail.port", "mail_port")
	v.BindEnv("mail.sender_address", "mail_sender_address")
	v.BindEnv("mail.password", "mail_password")

	v.BindEnv("cors.origins", "cors_origins")

	//
	// Defaults
	//
	v.SetDefault("app.log_level", "info")

	v.SetDefault("host.port", 8080)
	v.SetDefault("host.domain", "localhost")
	v.SetDefault("host.ssl.enabled", false)

	v.SetDefault("jwt.access_expiry", 7*24*time.Hour)
	v.SetDefault("jwt.refresh_expiry", 30*24*time.Hour)

	v.SetDefault("reset.token_expiry", 10*time.Minute)

	v.SetDefault("cleanup.verification_grace", 30*24*time.Hour)

	v.SetDefault("storage.type", "sqlite")
	v.SetDefault("storage.dsn", "database.db")

	v.SetDefault("mail.enabled", false)

	v.SetDefault("cors.origins", []string{"http://localhost:5173"})

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(v.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file, %w", err)
		}
	}

	if !slices.Contains(validLogLevels, v.GetString("app.log_level")) {
		return errors.New("invalid log level provided")
	}

	if v.GetInt("host.port") <= 0 {
		return errors.New("invalid port provided")
	}

	if v.GetString("jwt.access_secret") == "" {
		return errors.New("jwt.access_secret is missing")
	}

	if v.GetString("jwt.refresh_secret") == "" {
		return errors.New("jwt.refresh_secret is missing")
	}

	// A shared secret would let a leaked access token mint refresh tokens
	if v.GetString("jwt.access_secret") == v.GetString("jwt.refresh_secret") {
		return errors.New("jwt.access_secret and jwt.refresh_secret must differ")
	}

	if v.GetDuration("jwt.access_expiry") <= 0 || v.GetDuration("jwt.refresh_expiry") <= 0 {
		return errors.New("token expiries must be bigger than 0")
	}

	if v.GetDuration("reset.token_expiry") <= 0 {
		return errors.New("reset.token_expiry must be bigger than 0")
	}

	if v.GetDuration("cleanup.verification_grace") <= 0 {
		return errors.New("cleanup.verification_grace must be bigger than 0")
	}

	if !slices.Contains(validStorageTypes, v.GetString("storage.type")) {
		return errors.New("invalid storage type provided")
	}

	if v.GetString("storage.type") == "postgres" && v.GetString("storage.dsn") == "" {
		return errors.New("storage.dsn can't be empty when using postgres")
	}

	if v.GetBool("mail.enabled") {
		if v.GetString("mail.host") == "" {
			return errors.New("mail.host can't be empty")
		}
		if v.GetString("mail.sender_address") == "" {
			return errors.New("mail.sender_address can't be empty")
		}
	} else {
		fmt.Println("[WARNING]: Mail delivery is disabled. Verification and password reset links will only be logged")
	}

	return nil
}

// MigrateOnly reports whether the app should exit after running migrations.
func MigrateOnly() bool {
	return *migrateOnly
}
