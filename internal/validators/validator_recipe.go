// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/url"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/miam-miam/models"
)

const (
	FieldName        = "name"
	FieldImageURL    = "imageUrl"
	FieldCountry     = "country"
	FieldType        = "type"
	FieldDiet        = "diet"
	FieldIngredients = "ingredients"
	FieldSteps       = "steps"
	FieldTime        = "time"
	FieldDifficulty  = "difficulty"
	FieldVisibility  = "visibility"
	FieldRating      = "rating"
)

var recipeFields = []string{
	FieldName, FieldImageURL, FieldCountry, FieldType, FieldIngredients,
	FieldSteps, FieldTime, FieldDifficulty, FieldVisibility,
}

var imageExtension = regexp.MustCompile(`\.(jpg|jpeg|png|webp|avif|gif|svg)$`)

const unsplashPhoto = "images.unsplash.com/photo-"

// RecipeValidator validates recipe and review payloads. Images uploaded to
// this server are accepted under uploadBaseURL in addition to external HTTPS
// image links.
type RecipeValidator struct {
	uploadBaseURL string
}

func NewRecipeValidator(uploadBaseURL string) Validator {
	return &RecipeValidator{uploadBaseURL: strings.TrimRight(uploadBaseURL, "/")}
}

func (v *RecipeValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RecipeInput:
		return v.validateRecipe(ctx, value, fields...)
	case *models.RecipeInput:
		return v.validateRecipe(ctx, *value, fields...)

	case models.ReviewInput:
		return v.validateReview(ctx, value, fields...)
	case *models.ReviewInput:
		return v.validateReview(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RecipeValidator) validateRecipe(_ context.Context, in models.RecipeInput, fields ...string) error {
	if len(fields) == 0 {
		fields = recipeFields
	}

	verr := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldName:
			if utf8.RuneCountInString(in.Name) < 3 {
				verr.add(FieldName, "name must be at least 3 characters long")
			}
		case FieldImageURL:
			if msg := v.checkImageURL(in.ImageURL); msg != "" {
				verr.add(FieldImageURL, msg)
			}
		case FieldCountry:
			if utf8.RuneCountInString(in.Country) < 2 {
				verr.add(FieldCountry, "country is required")
			}
		case FieldType:
			if !slices.Contains(models.RecipeTypes, in.Type) {
				verr.add(FieldType, "type must be Entrée, Plat or Dessert")
			}
		case FieldDiet:
		case FieldIngredients:
			if len(in.Ingredients) < 1 {
				verr.add(FieldIngredients, "at least 1 ingredient is required")
			}
		case FieldSteps:
			if len(in.Steps) < 1 {
				verr.add(FieldSteps, "at least 1 step is required")
			}
		case FieldTime:
			if in.Time < 1 || in.Time > 1440 {
				verr.add(FieldTime, "time must be between 1 and 1440 minutes")
			}
		case FieldDifficulty:
			if in.Difficulty < 1 || in.Difficulty > 5 {
				verr.add(FieldDifficulty, "difficulty must be between 1 and 5")
			}
		case FieldVisibility:
			if in.Visibility != models.Public && in.Visibility != models.Private {
				verr.add(FieldVisibility, "visibility must be 'public' or 'private'")
			}
		default:
			return ErrUnknownField
		}
	}

	return verr.orNil()
}

func (v *RecipeValidator) validateReview(_ context.Context, in models.ReviewInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRating}
	}

	verr := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldRating:
			if in.Rating < 1 || in.Rating > 5 {
				verr.add(FieldRating, "rating must be an integer between 1 and 5")
			}
		default:
			return ErrUnknownField
		}
	}

	return verr.orNil()
}

// checkImageURL returns an empty string for an acceptable image URL and the
// rejection message otherwise. An empty URL means "no image".
func (v *RecipeValidator) checkImageURL(raw string) string {
	if raw == "" {
		return ""
	}

	if v.uploadBaseURL != "" && strings.HasPrefix(raw, v.uploadBaseURL+"/") {
		return ""
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "image URL is invalid"
	}
	if u.Scheme != "https" {
		return "image URL must use HTTPS"
	}

	clean := strings.ToLower(strings.SplitN(raw, "?", 2)[0])
	if imageExtension.MatchString(clean) || strings.Contains(raw, unsplashPhoto) {
		return ""
	}

	return "image URL must point directly to an image (.jpg, .png) or be an Unsplash photo link"
}
