// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged server configuration is usable.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty HTTP address", ErrInvalidServerConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}

	if len(cfg.App.BasicSKUs) == 0 || len(cfg.App.PremiumSKUs) == 0 {
		return fmt.Errorf("%w: basic and premium SKU sets are required", ErrInvalidAppConfigs)
	}

	switch cfg.Firebase.IdentityMode {
	case IdentityModeJWT:
		if cfg.App.TokenSignKey == "" {
			return fmt.Errorf("%w: token sign key is required in jwt mode", ErrInvalidAppConfigs)
		}
	case IdentityModeFirebase:
	default:
		return fmt.Errorf("%w: unknown identity mode %q", ErrInvalidFirebaseConfigs, cfg.Firebase.IdentityMode)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.RefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
