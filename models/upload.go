// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Upload records who stored an image through the upload endpoint. Only the
// owner's recipes may delete it.
type Upload struct {
	URL       string `json:"url"`
	OwnerID   string `json:"ownerId"`
	CreatedAt string `json:"createdAt"`
}
