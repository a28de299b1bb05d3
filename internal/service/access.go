// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/miam-miam/models"

// CanRead reports whether requester may see recipe: public recipes are
// readable by anyone, private ones by their author only.
func CanRead(requester models.Requester, recipe models.Recipe) bool {
	if recipe.IsPublic() {
		return true
	}
	user, ok := models.AsAuthenticated(requester)
	return ok && user.ID == recipe.AuthorID
}

// CanWrite reports whether requester may update or delete recipe.
func CanWrite(requester models.Requester, recipe models.Recipe) bool {
	user, ok := models.AsAuthenticated(requester)
	return ok && user.ID == recipe.AuthorID
}

func authenticated(requester models.Requester) (models.Authenticated, error) {
	user, ok := models.AsAuthenticated(requester)
	if !ok {
		return models.Authenticated{}, ErrUnauthenticated
	}
	return user, nil
}
