// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/miam-miam/internal/service"
	"github.com/MKhiriev/miam-miam/internal/utils"
	"github.com/MKhiriev/miam-miam/models"
)

const (
	uploadFormField = "image"
	// multipartOverhead leaves room for boundaries and part headers on top
	// of the image itself.
	multipartOverhead = 64 << 10
)

func (h *Handler) uploadImage(w http.ResponseWriter, r *http.Request) {
	if h.maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+multipartOverhead)
	}

	file, header, err := r.FormFile(uploadFormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, service.ErrImageTooLarge)
			return
		}
		writeError(w, r, fmt.Errorf("%w: %w", ErrNoFileSent, err))
		return
	}
	defer file.Close()

	url, err := h.services.UploadService.Upload(r.Context(), utils.GetRequesterFromContext(r.Context()), models.ImageUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ImageResponse{ImageURL: url}, http.StatusOK)
}
