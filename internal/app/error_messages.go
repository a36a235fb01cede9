// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the application-wide error taxonomy and the message
// strings shared by server handlers, services and the client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries. Keeping them in one place ensures
// consistent wording between the server and what the client logs.
package app

const (
	// MsgUnauthorizedAccess is returned when the identity header is absent.
	MsgUnauthorizedAccess = "Unauthorized Access"

	// MsgInvalidIDToken is returned when the identity header does not verify.
	MsgInvalidIDToken = "Invalid Firebase ID token"

	// MsgInternalServerError is returned when the billing-of-record source or
	// storage fails.
	MsgInternalServerError = "Internal server error"

	// MsgValidSubscriptionNotFound is returned by gated content endpoints when
	// no acceptable record is entitled.
	MsgValidSubscriptionNotFound = "Valid subscription not found"

	// MsgInvalidInstanceID is returned when a device token fails the dry-run
	// check or is empty.
	MsgInvalidInstanceID = "Invalid instanceId"

	// MsgMissingPurchaseFields is returned when a register or transfer body
	// lacks productId or purchaseToken.
	MsgMissingPurchaseFields = "Missing productId or purchaseToken"

	// MsgInvalidPurchase is returned when the billing-of-record source does
	// not recognise the purchase token.
	MsgInvalidPurchase = "Purchase token could not be verified"

	// MsgPurchaseAlreadyOwned is returned when a registration targets a
	// purchase owned by a different account.
	MsgPurchaseAlreadyOwned = "Purchase token already registered to another user"

	// MsgInvalidJSON is returned when a request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgNoErrorBody is the client-side placeholder for a non-2xx response
	// that carried no readable body.
	MsgNoErrorBody = "No error body received"

	// MsgNoResponse is the client-side placeholder for a transport failure
	// without a message.
	MsgNoResponse = "request failed without a response"
)
