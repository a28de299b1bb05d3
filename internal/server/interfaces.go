// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle of the API process.
//
// RunServer blocks until a stop signal arrives or the listener fails.
type Server interface {
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
