// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the recipe API.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as request tracing, access logging, rate limiting, CORS,
// response compression and caller identity are handled in this package
// before requests are delegated to the service layer.
package http
