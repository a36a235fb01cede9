// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from the `env`/`envPrefix` tags of
// [StructuredConfig]. SKU lists are comma separated; blanks around entries
// and empty entries are dropped.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	cfg.App.BasicSKUs = normalizeSKUs(cfg.App.BasicSKUs)
	cfg.App.PremiumSKUs = normalizeSKUs(cfg.App.PremiumSKUs)

	return nil
}

func normalizeSKUs(skus []string) []string {
	if skus == nil {
		return nil
	}

	out := make([]string, 0, len(skus))
	for _, sku := range skus {
		if sku = strings.TrimSpace(sku); sku != "" {
			out = append(out, sku)
		}
	}
	return out
}

// GetTokenConfig reads the identity token parameters (APP_TOKEN_*) from the
// environment for token issuance.
func GetTokenConfig() (App, error) {
	var app App
	if err := env.ParseWithOptions(&app, env.Options{Prefix: "APP_"}); err != nil {
		return App{}, fmt.Errorf("error getting env configs: %w", err)
	}
	return app, nil
}
