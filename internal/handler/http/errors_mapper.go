// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/miam-miam/internal/logger"
	"github.com/MKhiriev/miam-miam/internal/service"
	"github.com/MKhiriev/miam-miam/internal/utils"
	"github.com/MKhiriev/miam-miam/internal/validators"
	"github.com/MKhiriev/miam-miam/models"
)

const internalErrorMessage = "internal server error"

var errorStatusMap = map[error]int{
	ErrInvalidJSON: http.StatusBadRequest,
	ErrNoFileSent:  http.StatusBadRequest,

	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrEmailTaken:          http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusBadRequest,
	service.ErrPasswordTooLong:     http.StatusBadRequest,
	service.ErrReviewAlreadyExists: http.StatusBadRequest,
	service.ErrInvalidImage:        http.StatusBadRequest,
	service.ErrImageTooLarge:       http.StatusBadRequest,

	service.ErrUnauthenticated:         http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusForbidden,
	service.ErrForbidden:               http.StatusForbidden,

	service.ErrRecipeNotFound: http.StatusNotFound,
	service.ErrReviewNotFound: http.StatusNotFound,
	service.ErrUserNotFound:   http.StatusNotFound,
}

// statusFromError returns the status for err and the sentinel it matched.
// Unknown errors map to 500 and a nil sentinel.
func statusFromError(err error) (int, error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target
		}
	}
	return http.StatusInternalServerError, nil
}

// writeError answers with the status mapped from err. Validation failures
// carry their field errors; unexpected failures only a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *validators.ValidationError
	if errors.As(err, &verr) {
		utils.WriteJSON(w, models.ValidationErrorResponse{
			Message: validators.ErrValidation.Error(),
			Errors:  verr.Errors,
		}, http.StatusBadRequest)
		return
	}

	status, target := statusFromError(err)
	if target == nil {
		logger.FromRequest(r).Err(err).Str("uri", r.RequestURI).Msg("unexpected error")
		utils.WriteMessage(w, internalErrorMessage, status)
		return
	}

	utils.WriteMessage(w, target.Error(), status)
}
