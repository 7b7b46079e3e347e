package server

// A Server owns one listening transport of the service.
//
// RunServer blocks until the listener stops, whether through Shutdown or a
// fatal serve error. Shutdown drains in-flight requests before closing the
// listener; calling it on a stopped server is harmless.
type Server interface {
	RunServer()
	Shutdown()
}
