// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/miam-miam/internal/validators"
	"github.com/MKhiriev/miam-miam/models"
)

func TestReviewService_Scenario(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	x := env.createRecipe(t, alice, "Recipe X", models.Public)

	_, err := env.reviewService.Add(ctx, bob, x.ID, models.ReviewInput{Rating: 4, Comment: "nice"})
	require.NoError(t, err)

	_, err = env.reviewService.Add(ctx, bob, x.ID, models.ReviewInput{Rating: 2})
	assert.ErrorIs(t, err, ErrReviewAlreadyExists)

	got, err := env.recipeService.Get(ctx, models.Anonymous{}, x.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, got.Rating)

	_, err = env.reviewService.Add(ctx, carol, x.ID, models.ReviewInput{Rating: 5})
	require.NoError(t, err)

	got, err = env.recipeService.Get(ctx, models.Anonymous{}, x.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.5, got.Rating)
	assert.Len(t, got.Reviews, 2)
}

func TestReviewService_Add(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	public := env.createRecipe(t, alice, "Public", models.Public)
	private := env.createRecipe(t, alice, "Private", models.Private)

	tests := []struct {
		name      string
		requester models.Requester
		recipeID  string
		rating    int
		wantErr   error
	}{
		{name: "anonymous", requester: models.Anonymous{}, recipeID: public.ID, rating: 3, wantErr: ErrUnauthenticated},
		{name: "rating too low", requester: bob, recipeID: public.ID, rating: 0, wantErr: validators.ErrValidation},
		{name: "rating too high", requester: bob, recipeID: public.ID, rating: 6, wantErr: validators.ErrValidation},
		{name: "rating checked before lookup", requester: bob, recipeID: "missing", rating: 9, wantErr: validators.ErrValidation},
		{name: "unknown recipe", requester: bob, recipeID: "missing", rating: 3, wantErr: ErrRecipeNotFound},
		{name: "private recipe", requester: alice, recipeID: private.ID, rating: 3, wantErr: ErrForbidden},
		{name: "valid", requester: bob, recipeID: public.ID, rating: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			review, err := env.reviewService.Add(ctx, tt.requester, tt.recipeID, models.ReviewInput{Rating: tt.rating, Comment: "c"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, bob.ID, review.UserID)
			assert.Equal(t, bob.Name, review.UserName)
			assert.NotEmpty(t, review.CreatedAt)
		})
	}
}

func TestReviewService_Update(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	r := env.createRecipe(t, alice, "Quiche", models.Public)

	_, err := env.reviewService.Update(ctx, bob, r.ID, models.ReviewInput{Rating: 3})
	assert.ErrorIs(t, err, ErrReviewNotFound)

	_, err = env.reviewService.Update(ctx, bob, "missing", models.ReviewInput{Rating: 3})
	assert.ErrorIs(t, err, ErrRecipeNotFound)

	_, err = env.reviewService.Add(ctx, bob, r.ID, models.ReviewInput{Rating: 2, Comment: "meh"})
	require.NoError(t, err)
	_, err = env.reviewService.Add(ctx, carol, r.ID, models.ReviewInput{Rating: 5})
	require.NoError(t, err)

	_, err = env.reviewService.Update(ctx, bob, r.ID, models.ReviewInput{Rating: 7})
	assert.ErrorIs(t, err, validators.ErrValidation)

	review, err := env.reviewService.Update(ctx, bob, r.ID, models.ReviewInput{Rating: 4, Comment: "better"})
	require.NoError(t, err)
	assert.Equal(t, 4, review.Rating)
	assert.Equal(t, "better", review.Comment)

	got, err := env.recipeService.Get(ctx, bob, r.ID)
	require.NoError(t, err)
	assert.Len(t, got.Reviews, 2)
	assert.Equal(t, 4.5, got.Rating)
	assert.Contains(t, env.publisher.types(), models.ReviewUpdated)
}

func TestReviewService_Delete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	r := env.createRecipe(t, alice, "Quiche", models.Public)

	assert.ErrorIs(t, env.reviewService.Delete(ctx, bob, r.ID), ErrReviewNotFound)
	assert.ErrorIs(t, env.reviewService.Delete(ctx, bob, "missing"), ErrRecipeNotFound)

	_, err := env.reviewService.Add(ctx, bob, r.ID, models.ReviewInput{Rating: 1})
	require.NoError(t, err)
	_, err = env.reviewService.Add(ctx, carol, r.ID, models.ReviewInput{Rating: 4})
	require.NoError(t, err)

	require.NoError(t, env.reviewService.Delete(ctx, bob, r.ID))
	got, err := env.recipeService.Get(ctx, bob, r.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, got.Rating)

	require.NoError(t, env.reviewService.Delete(ctx, carol, r.ID))
	got, err = env.recipeService.Get(ctx, bob, r.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Reviews)
	assert.Zero(t, got.Rating)
}

func TestReviewService_WritesInvalidateListingCache(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	r := env.createRecipe(t, alice, "Quiche", models.Public)

	_, err := env.recipeService.List(ctx, models.Anonymous{}, models.ListingQuery{})
	require.NoError(t, err)
	require.Equal(t, 1, env.cache.Len())

	_, err = env.reviewService.Add(ctx, bob, r.ID, models.ReviewInput{Rating: 5})
	require.NoError(t, err)
	assert.Equal(t, 0, env.cache.Len())

	listing, err := env.recipeService.List(ctx, models.Anonymous{}, models.ListingQuery{})
	require.NoError(t, err)
	require.Len(t, listing, 1)
	assert.Equal(t, 5.0, listing[0].Rating)
}
