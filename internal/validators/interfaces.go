// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks client payloads before the services act on them.
// Validators report every rejected field at once through [ValidationError].
package validators

import "context"

// Validator validates a payload, optionally restricted to the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
