// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyIDTokenHeader is returned by the auth middleware when the
	// request carries no X-FireIDToken header.
	ErrEmptyIDTokenHeader = errors.New("empty `X-FireIDToken` header")

	// ErrNoUserInContext means a protected handler ran without the auth
	// middleware.
	ErrNoUserInContext = errors.New("no user ID in request context")
)
