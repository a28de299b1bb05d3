// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrEmailTaken          = errors.New("email is already in use")
	ErrInvalidCredentials  = errors.New("wrong email or password")
	ErrPasswordTooLong     = errors.New("password must be at most 72 bytes")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrUnauthenticated         = errors.New("login required")
	ErrForbidden               = errors.New("forbidden")

	ErrRecipeNotFound      = errors.New("recipe not found")
	ErrReviewNotFound      = errors.New("review not found")
	ErrReviewAlreadyExists = errors.New("recipe already reviewed by this user")
	ErrUserNotFound        = errors.New("user not found")

	ErrInvalidImage  = errors.New("file is not a supported image")
	ErrImageTooLarge = errors.New("image is too large")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	errImageNotOwned = errors.New("image not uploaded by recipe owner")
)
