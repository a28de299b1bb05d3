// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"math"

	"github.com/MKhiriev/miam-miam/models"
)

// AggregateRating returns the mean review rating rounded to one decimal,
// or 0 when there are no reviews.
func AggregateRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return math.Round(float64(sum)/float64(len(reviews))*10) / 10
}
