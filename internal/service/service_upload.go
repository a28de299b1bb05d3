// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/MKhiriev/miam-miam/internal/config"
	"github.com/MKhiriev/miam-miam/internal/logger"
	"github.com/MKhiriev/miam-miam/internal/store"
	"github.com/MKhiriev/miam-miam/internal/utils"
	"github.com/MKhiriev/miam-miam/models"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

var allowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

// contentTypes maps decoded image formats to the type the image is stored
// with.
var contentTypes = map[string]string{
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"webp": "image/webp",
}

const jpegQuality = 85

type uploadService struct {
	images   store.ImageStorage
	uploads  store.RecordStore[models.Upload]
	maxBytes int64
	maxWidth int
	ids      *utils.UUIDGenerator

	// maxPixels bounds width*height so decoding cannot exhaust memory.
	maxPixels int64

	now func() time.Time

	logger *logger.Logger
}

func NewUploadService(images store.ImageStorage, uploads store.RecordStore[models.Upload], cfg config.Upload, logger *logger.Logger) UploadService {
	return &uploadService{
		images:    images,
		uploads:   uploads,
		maxBytes:  cfg.MaxBytes,
		maxWidth:  cfg.MaxWidth,
		maxPixels: cfg.MaxPixels,
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
		logger:    logger,
	}
}

// Upload checks the file name, the declared content type and the decoded
// content, downscales wide JPEG and PNG images and stores the result as
// <uuid><ext>, recorded as owned by the requester.
func (s *uploadService) Upload(ctx context.Context, requester models.Requester, upload models.ImageUpload) (string, error) {
	log := logger.FromContext(ctx)

	user, err := authenticated(requester)
	if err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(upload.Filename))
	contentType := strings.ToLower(strings.TrimSpace(strings.SplitN(upload.ContentType, ";", 2)[0]))
	if !allowedImageExtensions[ext] || !allowedContentTypes[contentType] {
		return "", fmt.Errorf("%w: only jpeg, jpg, png and webp are accepted", ErrInvalidImage)
	}
	if upload.Body == nil {
		return "", ErrInvalidImage
	}
	if s.maxBytes > 0 && upload.Size > s.maxBytes {
		return "", ErrImageTooLarge
	}

	data, err := s.read(upload.Body)
	if err != nil {
		return "", err
	}

	imgCfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		log.Warn().Err(err).Str("filename", upload.Filename).Msg("uploaded file is not an image")
		return "", fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}
	storedType, ok := contentTypes[format]
	if !ok {
		return "", fmt.Errorf("%w: unsupported format %s", ErrInvalidImage, format)
	}
	if s.maxPixels > 0 && int64(imgCfg.Width)*int64(imgCfg.Height) > s.maxPixels {
		log.Warn().Int("width", imgCfg.Width).Int("height", imgCfg.Height).Msg("uploaded image has too many pixels")
		return "", fmt.Errorf("%w: image dimensions %dx%d exceed %d pixels", ErrInvalidImage, imgCfg.Width, imgCfg.Height, s.maxPixels)
	}

	if s.maxWidth > 0 && imgCfg.Width > s.maxWidth && (format == "jpeg" || format == "png") {
		data, err = downscale(data, format, s.maxWidth)
		if err != nil {
			log.Err(err).Str("func", "uploadService.Upload").Msg("error resizing image")
			return "", fmt.Errorf("%w: %w", ErrInvalidImage, err)
		}
	}

	url, err := s.images.Save(ctx, s.ids.Generate()+ext, storedType, data)
	if err != nil {
		log.Err(err).Str("func", "uploadService.Upload").Msg("error saving image")
		return "", err
	}

	err = s.uploads.Mutate(ctx, func(uploads []models.Upload) ([]models.Upload, error) {
		return append(uploads, models.Upload{URL: url, OwnerID: user.ID, CreatedAt: timestamp(s.now())}), nil
	})
	if err != nil {
		log.Err(err).Str("func", "uploadService.Upload").Str("url", url).Msg("error recording upload owner")
		if delErr := s.images.Delete(ctx, url); delErr != nil {
			log.Warn().Err(delErr).Str("url", url).Msg("error removing unrecorded image")
		}
		return "", fmt.Errorf("error recording upload: %w", err)
	}

	return url, nil
}

func (s *uploadService) read(body io.Reader) ([]byte, error) {
	if s.maxBytes <= 0 {
		return io.ReadAll(body)
	}

	data, err := io.ReadAll(io.LimitReader(body, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("error reading upload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return nil, ErrImageTooLarge
	}
	return data, nil
}

// downscale resizes the image to maxWidth keeping its aspect ratio and
// re-encodes it in its original format.
func downscale(data []byte, format string, maxWidth int) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	height := bounds.Dy() * maxWidth / bounds.Dx()
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	var buf bytes.Buffer
	switch format {
	case "png":
		err = png.Encode(&buf, dst)
	default:
		err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality})
	}
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
