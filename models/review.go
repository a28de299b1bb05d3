// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Review is a single user's rating of a recipe. A recipe holds at most one
// review per user. CreatedAt is refreshed on every write.
type Review struct {
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"createdAt"`
}

// ReviewInput is the body of review create and update requests.
type ReviewInput struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}
