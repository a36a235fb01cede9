package notify

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go"
	"github.com/MKhiriev/go-sub-keeper/internal/config"
	"google.golang.org/api/option"
)

// NewFirebaseApp initialises the Admin SDK. Without a credentials file
// application default credentials are used.
func NewFirebaseApp(ctx context.Context, cfg config.Firebase) (*firebase.App, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	var fbConfig *firebase.Config
	if cfg.ProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase.NewApp: %w", err)
	}
	return app, nil
}
