// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/miam-miam/internal/logger"
	"github.com/MKhiriev/miam-miam/internal/store"
	"github.com/MKhiriev/miam-miam/internal/validators"
	"github.com/MKhiriev/miam-miam/models"
)

type reviewService struct {
	recipes   store.RecordStore[models.Recipe]
	notifier  *changeNotifier
	validator validators.Validator
	now       func() time.Time

	logger *logger.Logger
}

func NewReviewService(recipes store.RecordStore[models.Recipe], notifier *changeNotifier, validator validators.Validator, logger *logger.Logger) ReviewService {
	return &reviewService{
		recipes:   recipes,
		notifier:  notifier,
		validator: validator,
		now:       time.Now,
		logger:    logger,
	}
}

// Add appends the requester's review to a public recipe. Checks run in
// order: rating, recipe existence, visibility, duplicate review.
func (s *reviewService) Add(ctx context.Context, requester models.Requester, recipeID string, in models.ReviewInput) (models.Review, error) {
	user, err := authenticated(requester)
	if err != nil {
		return models.Review{}, err
	}
	if err = s.validator.Validate(ctx, in); err != nil {
		return models.Review{}, err
	}

	review := models.Review{
		UserID:    user.ID,
		UserName:  user.Name,
		Rating:    in.Rating,
		Comment:   in.Comment,
		CreatedAt: timestamp(s.now()),
	}

	err = s.mutateRecipe(ctx, recipeID, func(recipe *models.Recipe) error {
		if !recipe.IsPublic() {
			return ErrForbidden
		}
		if recipe.ReviewBy(user.ID) >= 0 {
			return ErrReviewAlreadyExists
		}
		recipe.Reviews = append(recipe.Reviews, review)
		return nil
	})
	if err != nil {
		return models.Review{}, s.logged(ctx, "reviewService.Add", err)
	}

	s.notifier.recipesChanged(ctx, models.ReviewCreated, recipeID, user.ID)
	return review, nil
}

// Update overwrites the requester's existing review in place.
func (s *reviewService) Update(ctx context.Context, requester models.Requester, recipeID string, in models.ReviewInput) (models.Review, error) {
	user, err := authenticated(requester)
	if err != nil {
		return models.Review{}, err
	}
	if err = s.validator.Validate(ctx, in); err != nil {
		return models.Review{}, err
	}

	var review models.Review
	err = s.mutateRecipe(ctx, recipeID, func(recipe *models.Recipe) error {
		i := recipe.ReviewBy(user.ID)
		if i < 0 {
			return ErrReviewNotFound
		}
		recipe.Reviews[i].Rating = in.Rating
		recipe.Reviews[i].Comment = in.Comment
		recipe.Reviews[i].CreatedAt = timestamp(s.now())
		review = recipe.Reviews[i]
		return nil
	})
	if err != nil {
		return models.Review{}, s.logged(ctx, "reviewService.Update", err)
	}

	s.notifier.recipesChanged(ctx, models.ReviewUpdated, recipeID, user.ID)
	return review, nil
}

func (s *reviewService) Delete(ctx context.Context, requester models.Requester, recipeID string) error {
	user, err := authenticated(requester)
	if err != nil {
		return err
	}

	err = s.mutateRecipe(ctx, recipeID, func(recipe *models.Recipe) error {
		i := recipe.ReviewBy(user.ID)
		if i < 0 {
			return ErrReviewNotFound
		}
		recipe.Reviews = append(recipe.Reviews[:i], recipe.Reviews[i+1:]...)
		return nil
	})
	if err != nil {
		return s.logged(ctx, "reviewService.Delete", err)
	}

	s.notifier.recipesChanged(ctx, models.ReviewDeleted, recipeID, user.ID)
	return nil
}

// mutateRecipe applies fn to one recipe under the collection lock and
// recomputes its rating before saving.
func (s *reviewService) mutateRecipe(ctx context.Context, recipeID string, fn func(recipe *models.Recipe) error) error {
	return s.recipes.Mutate(ctx, func(recipes []models.Recipe) ([]models.Recipe, error) {
		i := findRecipe(recipes, recipeID)
		if i < 0 {
			return nil, ErrRecipeNotFound
		}

		recipe := recipes[i]
		if recipe.Reviews == nil {
			recipe.Reviews = []models.Review{}
		}
		if err := fn(&recipe); err != nil {
			return nil, err
		}

		recipe.Rating = AggregateRating(recipe.Reviews)
		recipes[i] = recipe
		return recipes, nil
	})
}

var expectedReviewErrors = []error{ErrRecipeNotFound, ErrReviewNotFound, ErrReviewAlreadyExists, ErrForbidden}

func (s *reviewService) logged(ctx context.Context, fn string, err error) error {
	for _, expected := range expectedReviewErrors {
		if errors.Is(err, expected) {
			return err
		}
	}
	logger.FromContext(ctx).Err(err).Str("func", fn).Msg("error saving review")
	return err
}
