// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sahilm/fuzzy"

	"github.com/MKhiriev/miam-miam/internal/cache"
	"github.com/MKhiriev/miam-miam/internal/logger"
	"github.com/MKhiriev/miam-miam/internal/store"
	"github.com/MKhiriev/miam-miam/internal/utils"
	"github.com/MKhiriev/miam-miam/internal/validators"
	"github.com/MKhiriev/miam-miam/models"
)

const (
	DefaultSuggestLimit = 5
	MaxSuggestLimit     = 20
)

type recipeService struct {
	recipes   store.RecordStore[models.Recipe]
	images    store.ImageStorage
	uploads   store.RecordStore[models.Upload]
	cache     cache.ListingCache
	notifier  *changeNotifier
	validator validators.Validator
	ids       *utils.UUIDGenerator
	now       func() time.Time

	logger *logger.Logger
}

func NewRecipeService(
	recipes store.RecordStore[models.Recipe],
	images store.ImageStorage,
	uploads store.RecordStore[models.Upload],
	listingCache cache.ListingCache,
	notifier *changeNotifier,
	validator validators.Validator,
	logger *logger.Logger,
) RecipeService {
	if listingCache == nil {
		listingCache = cache.Nop()
	}
	return &recipeService{
		recipes:   recipes,
		images:    images,
		uploads:   uploads,
		cache:     listingCache,
		notifier:  notifier,
		validator: validator,
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
		logger:    logger,
	}
}

// List returns the recipes readable by requester that match query. Results
// are cached per requester and query until the next write.
func (s *recipeService) List(ctx context.Context, requester models.Requester, query models.ListingQuery) ([]models.Recipe, error) {
	key := cache.NewKey(requester, query)
	if listing, ok := s.cache.Get(ctx, key); ok {
		return listing, nil
	}

	gen := s.notifier.listingGeneration()
	recipes, err := s.recipes.Load(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "recipeService.List").Msg("error loading recipes")
		return nil, fmt.Errorf("error loading recipes: %w", err)
	}

	listing := filterRecipes(recipes, requester, query)
	s.notifier.cacheListing(ctx, gen, key, listing)

	return listing, nil
}

// filterRecipes applies the read predicate, then the text query, then the
// type filter. The result is never nil.
func filterRecipes(recipes []models.Recipe, requester models.Requester, query models.ListingQuery) []models.Recipe {
	q := strings.ToLower(query.Q)
	listing := make([]models.Recipe, 0, len(recipes))

	for _, r := range recipes {
		if !CanRead(requester, r) {
			continue
		}
		if q != "" && !matchesQuery(r, q) {
			continue
		}
		if query.Type != "" && !strings.EqualFold(string(r.Type), query.Type) {
			continue
		}
		listing = append(listing, r)
	}

	return listing
}

func matchesQuery(r models.Recipe, lowerQuery string) bool {
	if strings.Contains(strings.ToLower(r.Name), lowerQuery) ||
		strings.Contains(strings.ToLower(r.Country), lowerQuery) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing), lowerQuery) {
			return true
		}
	}
	return false
}

// recipeNames is a fuzzy.Source over readable recipe names.
type recipeNames []string

func (n recipeNames) String(i int) string { return n[i] }

func (n recipeNames) Len() int { return len(n) }

// Suggest ranks the names of readable recipes by fuzzy match against query.
func (s *recipeService) Suggest(ctx context.Context, requester models.Requester, query string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = DefaultSuggestLimit
	}
	limit = min(limit, MaxSuggestLimit)

	query = strings.TrimSpace(query)
	if query == "" {
		return []string{}, nil
	}

	recipes, err := s.recipes.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading recipes: %w", err)
	}

	names := make(recipeNames, 0, len(recipes))
	seen := make(map[string]struct{}, len(recipes))
	for _, r := range recipes {
		if !CanRead(requester, r) {
			continue
		}
		if _, dup := seen[r.Name]; dup {
			continue
		}
		seen[r.Name] = struct{}{}
		names = append(names, r.Name)
	}

	matches := fuzzy.FindFrom(query, names)
	suggestions := make([]string, 0, min(limit, len(matches)))
	for _, m := range matches {
		if len(suggestions) == limit {
			break
		}
		suggestions = append(suggestions, names[m.Index])
	}

	return suggestions, nil
}

// Get returns one recipe. A private recipe of another user is
// ErrForbidden, not ErrRecipeNotFound.
func (s *recipeService) Get(ctx context.Context, requester models.Requester, id string) (models.Recipe, error) {
	recipes, err := s.recipes.Load(ctx)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("error loading recipes: %w", err)
	}

	i := findRecipe(recipes, id)
	if i < 0 {
		return models.Recipe{}, ErrRecipeNotFound
	}
	if !CanRead(requester, recipes[i]) {
		return models.Recipe{}, ErrForbidden
	}

	return recipes[i], nil
}

func (s *recipeService) Create(ctx context.Context, requester models.Requester, in models.RecipeInput) (models.Recipe, error) {
	user, err := authenticated(requester)
	if err != nil {
		return models.Recipe{}, err
	}
	if err = s.validator.Validate(ctx, in); err != nil {
		return models.Recipe{}, err
	}

	recipe := models.Recipe{
		ID:         s.ids.Generate(),
		AuthorID:   user.ID,
		Rating:     0,
		CreatedAt:  timestamp(s.now()),
		Reviews:    []models.Review{},
		Visibility: in.Visibility,
	}
	applyInput(&recipe, in)

	err = s.recipes.Mutate(ctx, func(recipes []models.Recipe) ([]models.Recipe, error) {
		return append(recipes, recipe), nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "recipeService.Create").Msg("error saving recipe")
		return models.Recipe{}, fmt.Errorf("error saving recipe: %w", err)
	}

	s.notifier.recipesChanged(ctx, models.RecipeCreated, recipe.ID, user.ID)
	return recipe, nil
}

// Update replaces the editable fields of a recipe owned by requester.
// Turning a public recipe private drops its reviews and rating.
func (s *recipeService) Update(ctx context.Context, requester models.Requester, id string, in models.RecipeInput) (models.Recipe, error) {
	user, err := authenticated(requester)
	if err != nil {
		return models.Recipe{}, err
	}
	if err = s.validator.Validate(ctx, in); err != nil {
		return models.Recipe{}, err
	}

	var updated models.Recipe
	var oldImageURL string

	err = s.recipes.Mutate(ctx, func(recipes []models.Recipe) ([]models.Recipe, error) {
		i := findRecipe(recipes, id)
		if i < 0 {
			return nil, ErrRecipeNotFound
		}

		current := recipes[i]
		if !CanWrite(user, current) {
			return nil, ErrForbidden
		}
		oldImageURL = current.ImageURL

		next := current
		applyInput(&next, in)
		next.Visibility = in.Visibility
		if current.IsPublic() && !next.IsPublic() {
			next.Reviews = []models.Review{}
			next.Rating = 0
		}
		if next.Reviews == nil {
			next.Reviews = []models.Review{}
		}

		recipes[i] = next
		updated = next
		return recipes, nil
	})
	if err != nil {
		if !errors.Is(err, ErrRecipeNotFound) && !errors.Is(err, ErrForbidden) {
			logger.FromContext(ctx).Err(err).Str("func", "recipeService.Update").Msg("error updating recipe")
		}
		return models.Recipe{}, err
	}

	if oldImageURL != updated.ImageURL {
		s.removeImage(ctx, oldImageURL, updated.AuthorID)
	}

	s.notifier.recipesChanged(ctx, models.RecipeUpdated, updated.ID, user.ID)
	return updated, nil
}

// Delete removes a recipe owned by requester together with its uploaded
// image.
func (s *recipeService) Delete(ctx context.Context, requester models.Requester, id string) error {
	user, err := authenticated(requester)
	if err != nil {
		return err
	}

	var removed models.Recipe
	err = s.recipes.Mutate(ctx, func(recipes []models.Recipe) ([]models.Recipe, error) {
		i := findRecipe(recipes, id)
		if i < 0 {
			return nil, ErrRecipeNotFound
		}
		if !CanWrite(user, recipes[i]) {
			return nil, ErrForbidden
		}

		removed = recipes[i]
		return append(recipes[:i], recipes[i+1:]...), nil
	})
	if err != nil {
		if !errors.Is(err, ErrRecipeNotFound) && !errors.Is(err, ErrForbidden) {
			logger.FromContext(ctx).Err(err).Str("func", "recipeService.Delete").Msg("error deleting recipe")
		}
		return err
	}

	s.removeImage(ctx, removed.ImageURL, removed.AuthorID)
	s.notifier.recipesChanged(ctx, models.RecipeDeleted, removed.ID, user.ID)
	return nil
}

// removeImage deletes an image this server stored for ownerID. Images
// uploaded by someone else, external links and failures are ignored apart
// from a log line.
func (s *recipeService) removeImage(ctx context.Context, url, ownerID string) {
	if url == "" || s.images == nil || s.uploads == nil || !s.images.Owns(url) {
		return
	}
	log := logger.FromContext(ctx)

	err := s.uploads.Mutate(ctx, func(uploads []models.Upload) ([]models.Upload, error) {
		for i, u := range uploads {
			if u.URL != url {
				continue
			}
			if u.OwnerID != ownerID {
				return nil, errImageNotOwned
			}
			return append(uploads[:i], uploads[i+1:]...), nil
		}
		return nil, errImageNotOwned
	})
	if errors.Is(err, errImageNotOwned) {
		log.Debug().Str("url", url).Str("owner", ownerID).Msg("image kept, not uploaded by recipe owner")
		return
	}
	if err != nil {
		log.Warn().Err(err).Str("url", url).Msg("error releasing upload record")
		return
	}

	if err = s.images.Delete(ctx, url); err != nil {
		log.Warn().Err(err).Str("url", url).Msg("error removing image")
	}
}

func applyInput(r *models.Recipe, in models.RecipeInput) {
	r.Name = in.Name
	r.ImageURL = in.ImageURL
	r.Country = in.Country
	r.Type = in.Type
	r.Diet = in.Diet
	r.Ingredients = in.Ingredients
	r.Steps = in.Steps
	r.Time = in.Time
	r.Difficulty = in.Difficulty
}

func findRecipe(recipes []models.Recipe, id string) int {
	for i, r := range recipes {
		if r.ID == id {
			return i
		}
	}
	return -1
}
