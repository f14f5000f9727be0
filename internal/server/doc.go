// Package server runs the notes API over HTTP and, when an address is
// configured, the gRPC health service next to it. Both stop together on
// SIGINT, SIGTERM or SIGQUIT.
package server
