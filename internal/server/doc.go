// Package server runs the entitlement HTTP API and handles graceful shutdown
// on SIGTERM, SIGINT and SIGQUIT.
package server
