// Package http implements the HTTP surface of the subscription server.
//
// It exposes the subscription, content and device token endpoints used by
// the client. Identity verification, request tracing, access logging and
// response compression are handled here before requests reach the service
// layer. Failures are written as {"status", "error", "message"} bodies.
package http
