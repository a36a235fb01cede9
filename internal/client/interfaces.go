// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// ExecuteContext parses the command line and runs the selected command.
	ExecuteContext(ctx context.Context) error
}
