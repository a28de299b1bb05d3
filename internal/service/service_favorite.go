// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"slices"

	"github.com/MKhiriev/miam-miam/internal/logger"
	"github.com/MKhiriev/miam-miam/internal/store"
	"github.com/MKhiriev/miam-miam/models"
)

type favoriteService struct {
	users    store.RecordStore[models.User]
	notifier *changeNotifier

	logger *logger.Logger
}

func NewFavoriteService(users store.RecordStore[models.User], notifier *changeNotifier, logger *logger.Logger) FavoriteService {
	return &favoriteService{
		users:    users,
		notifier: notifier,
		logger:   logger,
	}
}

// Toggle does not check that recipeID names an existing recipe.
func (s *favoriteService) Toggle(ctx context.Context, requester models.Requester, recipeID string) ([]string, error) {
	user, err := authenticated(requester)
	if err != nil {
		return nil, err
	}

	var favorites []string
	err = s.users.Mutate(ctx, func(users []models.User) ([]models.User, error) {
		i := findUserByID(users, user.ID)
		if i < 0 {
			return nil, ErrUserNotFound
		}

		current := users[i].Favorites
		if idx := slices.Index(current, recipeID); idx >= 0 {
			favorites = slices.Delete(slices.Clone(current), idx, idx+1)
		} else {
			favorites = append(slices.Clone(current), recipeID)
		}

		users[i].Favorites = favorites
		return users, nil
	})
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "favoriteService.Toggle").Msg("error saving favorites")
		}
		return nil, err
	}

	if favorites == nil {
		favorites = []string{}
	}

	s.notifier.publish(ctx, models.FavoriteToggled, recipeID, user.ID)
	return favorites, nil
}
