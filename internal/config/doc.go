// Package config assembles the server and client configuration.
//
// The server reads, in increasing priority, environment variables, the
// command-line flags of [ParseFlags] and the JSON file named by CONFIG or -c.
// Fields left zero by a later source keep the earlier value. Defaults for the
// identity mode and the billing circuit breaker are applied last.
//
// The client has no flag layer of its own: its command parser hands the
// --config path to [GetClientConfig].
package config
