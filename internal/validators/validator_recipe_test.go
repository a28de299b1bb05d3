// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/miam-miam/models"
)

const uploadBase = "http://localhost:4000/uploads"

func validRecipeInput() models.RecipeInput {
	return models.RecipeInput{
		Name:        "Tarte Tatin",
		ImageURL:    "https://example.com/tarte.jpg",
		Country:     "France",
		Type:        models.Dessert,
		Diet:        "Végétarien",
		Ingredients: []string{"pommes", "beurre"},
		Steps:       []string{"caraméliser", "cuire"},
		Time:        60,
		Difficulty:  3,
		Visibility:  models.Public,
	}
}

func fieldsOf(t *testing.T, err error) []string {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
	fields := make([]string, 0, len(verr.Errors))
	for _, fe := range verr.Errors {
		fields = append(fields, fe.Field)
	}
	return fields
}

func TestRecipeValidator_ValidRecipe(t *testing.T) {
	v := NewRecipeValidator(uploadBase)
	assert.NoError(t, v.Validate(context.Background(), validRecipeInput()))

	in := validRecipeInput()
	assert.NoError(t, v.Validate(context.Background(), &in))
}

func TestRecipeValidator_RecipeFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *models.RecipeInput)
		field  string
	}{
		{name: "short name", mutate: func(in *models.RecipeInput) { in.Name = "ab" }, field: FieldName},
		{name: "short country", mutate: func(in *models.RecipeInput) { in.Country = "F" }, field: FieldCountry},
		{name: "unknown type", mutate: func(in *models.RecipeInput) { in.Type = "Apéro" }, field: FieldType},
		{name: "no ingredients", mutate: func(in *models.RecipeInput) { in.Ingredients = nil }, field: FieldIngredients},
		{name: "no steps", mutate: func(in *models.RecipeInput) { in.Steps = []string{} }, field: FieldSteps},
		{name: "zero time", mutate: func(in *models.RecipeInput) { in.Time = 0 }, field: FieldTime},
		{name: "too long", mutate: func(in *models.RecipeInput) { in.Time = 1441 }, field: FieldTime},
		{name: "difficulty too low", mutate: func(in *models.RecipeInput) { in.Difficulty = 0 }, field: FieldDifficulty},
		{name: "difficulty too high", mutate: func(in *models.RecipeInput) { in.Difficulty = 6 }, field: FieldDifficulty},
		{name: "bad visibility", mutate: func(in *models.RecipeInput) { in.Visibility = "friends" }, field: FieldVisibility},
		{name: "http image", mutate: func(in *models.RecipeInput) { in.ImageURL = "http://example.com/a.jpg" }, field: FieldImageURL},
		{name: "not an image", mutate: func(in *models.RecipeInput) { in.ImageURL = "https://example.com/page.html" }, field: FieldImageURL},
		{name: "not a url", mutate: func(in *models.RecipeInput) { in.ImageURL = "tarte.jpg" }, field: FieldImageURL},
	}

	v := NewRecipeValidator(uploadBase)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validRecipeInput()
			tt.mutate(&in)

			err := v.Validate(context.Background(), in)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, []string{tt.field}, fieldsOf(t, err))
		})
	}
}

func TestRecipeValidator_ImageURLAccepted(t *testing.T) {
	urls := []string{
		"",
		"https://example.com/a.JPG?w=200",
		"https://images.unsplash.com/photo-1565299624946-b28f40a0ae38",
		"https://cdn.test/x.webp",
		uploadBase + "/0190f7c2.png",
	}

	v := NewRecipeValidator(uploadBase + "/")
	for _, u := range urls {
		in := validRecipeInput()
		in.ImageURL = u
		assert.NoError(t, v.Validate(context.Background(), in), u)
	}
}

func TestRecipeValidator_ReportsEveryField(t *testing.T) {
	v := NewRecipeValidator(uploadBase)

	err := v.Validate(context.Background(), models.RecipeInput{})
	fields := fieldsOf(t, err)
	assert.ElementsMatch(t, []string{
		FieldName, FieldCountry, FieldType, FieldIngredients, FieldSteps,
		FieldTime, FieldDifficulty, FieldVisibility,
	}, fields)
	assert.Contains(t, err.Error(), "invalid data")
}

func TestRecipeValidator_SelectedFields(t *testing.T) {
	v := NewRecipeValidator(uploadBase)

	assert.NoError(t, v.Validate(context.Background(), models.RecipeInput{Name: "Soupe"}, FieldName))
	assert.ErrorIs(t, v.Validate(context.Background(), models.RecipeInput{}, "unknown"), ErrUnknownField)
}

func TestRecipeValidator_Review(t *testing.T) {
	v := NewRecipeValidator(uploadBase)
	ctx := context.Background()

	for rating := 1; rating <= 5; rating++ {
		assert.NoError(t, v.Validate(ctx, models.ReviewInput{Rating: rating}))
	}
	for _, rating := range []int{-1, 0, 6} {
		err := v.Validate(ctx, &models.ReviewInput{Rating: rating})
		assert.Equal(t, []string{FieldRating}, fieldsOf(t, err))
	}
}

func TestRecipeValidator_UnsupportedType(t *testing.T) {
	v := NewRecipeValidator(uploadBase)
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}
