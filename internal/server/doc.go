// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP API and its background workers.
//
// It handles startup, stop signals and graceful shutdown: in-flight requests
// get a bounded amount of time to finish before the listener is closed.
package server
