package server

// Server is the entitlement API process.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT, then drains
	// in-flight requests and returns.
	RunServer()

	// Shutdown stops accepting requests and waits for in-flight ones.
	Shutdown()
}
