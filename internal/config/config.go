// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// server and the client. It is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds identity token parameters, the acceptable SKU sets and the
	// content locations.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database and the optional Redis relay.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Firebase holds credentials for messaging and ID token verification.
	Firebase Firebase `envPrefix:"FIREBASE_"`

	// Billing holds the Play Developer API and circuit breaker settings.
	Billing Billing `envPrefix:"BILLING_"`

	// Adapter holds the client's view of the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds client background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Push holds the client's push relay subscription.
	Push Push `envPrefix:"PUSH_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Redis holds the push relay connection settings.
	Redis Redis `envPrefix:"REDIS_"`
}

// App holds application-level configuration.
type App struct {
	// TokenSignKey is the HS256 secret used to verify ID tokens in jwt mode.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim of ID tokens in jwt mode.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of tokens issued by go-sub-token.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// BasicSKUs lists the products granting basic content, without the
	// premium ones which are added implicitly.
	// Env: APP_BASIC_SKUS (comma-separated)
	BasicSKUs []string `env:"BASIC_SKUS"`

	// PremiumSKUs lists the products granting premium content.
	// Env: APP_PREMIUM_SKUS (comma-separated)
	PremiumSKUs []string `env:"PREMIUM_SKUS"`

	// Env: APP_BASIC_CONTENT_URL
	BasicContentURL string `env:"BASIC_CONTENT_URL"`

	// Env: APP_PREMIUM_CONTENT_URL
	PremiumContentURL string `env:"PREMIUM_CONTENT_URL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the PostgreSQL connection string on the server and the SQLite
	// file path on the client.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Redis holds the push relay settings. An empty URL disables the relay.
type Redis struct {
	// URL in redis:// form.
	// Env: STORAGE_REDIS_URL
	URL string `env:"URL"`

	// ChannelPrefix is prepended to the user id to name a user's channel.
	// Env: STORAGE_REDIS_CHANNEL_PREFIX
	ChannelPrefix string `env:"CHANNEL_PREFIX"`
}

// Identity verification modes.
const (
	IdentityModeJWT      = "jwt"
	IdentityModeFirebase = "firebase"
)

// Firebase holds Firebase Admin settings.
type Firebase struct {
	// CredentialsFile is the service account JSON used by the Admin SDK.
	// Env: FIREBASE_CREDENTIALS_FILE
	CredentialsFile string `env:"CREDENTIALS_FILE"`

	// Env: FIREBASE_PROJECT_ID
	ProjectID string `env:"PROJECT_ID"`

	// IdentityMode selects how X-FireIDToken is verified: "jwt" or
	// "firebase". Defaults to "jwt".
	// Env: FIREBASE_IDENTITY_MODE
	IdentityMode string `env:"IDENTITY_MODE"`
}

// Billing holds the billing-of-record settings.
type Billing struct {
	// PackageName is the Android application id the purchases belong to.
	// Env: BILLING_PACKAGE_NAME
	PackageName string `env:"PACKAGE_NAME"`

	// ServiceAccountFile grants access to the Play Developer API. Without it
	// application default credentials are used.
	// Env: BILLING_SERVICE_ACCOUNT_FILE
	ServiceAccountFile string `env:"SERVICE_ACCOUNT_FILE"`

	// Env: BILLING_BREAKER_MAX_REQUESTS
	BreakerMaxRequests uint32 `env:"BREAKER_MAX_REQUESTS"`

	// Env: BILLING_BREAKER_INTERVAL
	BreakerInterval time.Duration `env:"BREAKER_INTERVAL"`

	// Env: BILLING_BREAKER_TIMEOUT
	BreakerTimeout time.Duration `env:"BREAKER_TIMEOUT"`

	// BreakerFailureThreshold is the number of consecutive failures that
	// opens the breaker.
	// Env: BILLING_BREAKER_FAILURE_THRESHOLD
	BreakerFailureThreshold uint32 `env:"BREAKER_FAILURE_THRESHOLD"`
}

// Adapter holds the client's connection to the server.
type Adapter struct {
	// HTTPAddress is the base URL or host:port of the server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds one outbound call. Defaults to 60s.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// IDToken is sent as X-FireIDToken on every call.
	// Env: ADAPTER_ID_TOKEN
	IDToken string `env:"ID_TOKEN"`
}

// Workers holds configuration for client background jobs.
type Workers struct {
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Push holds the client's relay subscription.
type Push struct {
	// Channel is the Redis channel carrying this user's payloads. Empty
	// disables the listener.
	// Env: PUSH_CHANNEL
	Channel string `env:"CHANNEL"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (later sources
// override non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, cfg.validate()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Firebase.IdentityMode == "" {
		cfg.Firebase.IdentityMode = IdentityModeJWT
	}
	if cfg.Billing.BreakerMaxRequests == 0 {
		cfg.Billing.BreakerMaxRequests = 1
	}
	if cfg.Billing.BreakerTimeout == 0 {
		cfg.Billing.BreakerTimeout = 30 * time.Second
	}
	if cfg.Billing.BreakerFailureThreshold == 0 {
		cfg.Billing.BreakerFailureThreshold = 5
	}
}
