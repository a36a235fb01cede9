// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the go-sub-client command line application.
//
// It wires the local subscription cache, the server adapter and the sync
// engine into [App], and exposes the engine's operations as cobra commands.
// The watch command keeps the process alive with the periodic refresh, the
// push relay listener and busy logging.
package client
