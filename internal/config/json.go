package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey      string   `json:"token_sign_key"`
		TokenIssuer       string   `json:"token_issuer"`
		TokenDuration     Duration `json:"token_duration"`
		Version           string   `json:"version"`
		BasicSKUs         []string `json:"basic_skus"`
		PremiumSKUs       []string `json:"premium_skus"`
		BasicContentURL   string   `json:"basic_content_url"`
		PremiumContentURL string   `json:"premium_content_url"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Redis struct {
			URL           string `json:"url"`
			ChannelPrefix string `json:"channel_prefix"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Firebase struct {
		CredentialsFile string `json:"credentials_file"`
		ProjectID       string `json:"project_id"`
		IdentityMode    string `json:"identity_mode"`
	} `json:"firebase,omitempty"`

	Billing struct {
		PackageName             string   `json:"package_name"`
		ServiceAccountFile      string   `json:"service_account_file"`
		BreakerMaxRequests      uint32   `json:"breaker_max_requests"`
		BreakerInterval         Duration `json:"breaker_interval"`
		BreakerTimeout          Duration `json:"breaker_timeout"`
		BreakerFailureThreshold uint32   `json:"breaker_failure_threshold"`
	} `json:"billing,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		IDToken        string   `json:"id_token"`
	} `json:"adapter,omitempty"`

	Workers struct {
		RefreshInterval Duration `json:"refresh_interval"`
	} `json:"workers,omitempty"`

	Push struct {
		Channel string `json:"channel"`
	} `json:"push,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:      jsonCfg.App.TokenSignKey,
			TokenIssuer:       jsonCfg.App.TokenIssuer,
			TokenDuration:     time.Duration(jsonCfg.App.TokenDuration),
			Version:           jsonCfg.App.Version,
			BasicSKUs:         jsonCfg.App.BasicSKUs,
			PremiumSKUs:       jsonCfg.App.PremiumSKUs,
			BasicContentURL:   jsonCfg.App.BasicContentURL,
			PremiumContentURL: jsonCfg.App.PremiumContentURL,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Redis: Redis{
				URL:           jsonCfg.Storage.Redis.URL,
				ChannelPrefix: jsonCfg.Storage.Redis.ChannelPrefix,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Firebase: Firebase{
			CredentialsFile: jsonCfg.Firebase.CredentialsFile,
			ProjectID:       jsonCfg.Firebase.ProjectID,
			IdentityMode:    jsonCfg.Firebase.IdentityMode,
		},
		Billing: Billing{
			PackageName:             jsonCfg.Billing.PackageName,
			ServiceAccountFile:      jsonCfg.Billing.ServiceAccountFile,
			BreakerMaxRequests:      jsonCfg.Billing.BreakerMaxRequests,
			BreakerInterval:         time.Duration(jsonCfg.Billing.BreakerInterval),
			BreakerTimeout:          time.Duration(jsonCfg.Billing.BreakerTimeout),
			BreakerFailureThreshold: jsonCfg.Billing.BreakerFailureThreshold,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			IDToken:        jsonCfg.Adapter.IDToken,
		},
		Workers: Workers{
			RefreshInterval: time.Duration(jsonCfg.Workers.RefreshInterval),
		},
		Push: Push{
			Channel: jsonCfg.Push.Channel,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
