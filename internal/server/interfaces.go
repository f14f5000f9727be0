package server

// Server owns the listeners built by [NewServer].
type Server interface {
	// RunServer blocks until a stop signal arrives or a listener fails, and
	// returns once every listener is drained.
	RunServer()

	// Shutdown drains in-flight requests and marks the health service as
	// not serving.
	Shutdown()
}
