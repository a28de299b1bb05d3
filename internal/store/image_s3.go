// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/MKhiriev/miam-miam/internal/config"
	"github.com/MKhiriev/miam-miam/internal/logger"
)

// s3ImageStorage stores images as objects of one bucket. Object keys equal
// the file names, so the public URL is the bucket URL plus the name.
type s3ImageStorage struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewS3ImageStorage builds an S3 client from cfg. Static credentials are used
// when an access key is configured, otherwise the default AWS chain.
func NewS3ImageStorage(ctx context.Context, cfg config.Upload, log *logger.Logger) (ImageStorage, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3Region),
	}
	if cfg.S3AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		log.Err(err).Str("func", "NewS3ImageStorage").Msg("error loading aws config")
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		}
		o.UsePathStyle = cfg.S3PathStyle
	})

	log.Info().Str("bucket", cfg.S3Bucket).Msg("using s3 image storage")

	return &s3ImageStorage{
		client:    client,
		bucket:    cfg.S3Bucket,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
	}, nil
}

func (s *s3ImageStorage) Save(ctx context.Context, name, contentType string, body []byte) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(name),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrImageNotSaved, err)
	}

	return s.publicURL + "/" + name, nil
}

func (s *s3ImageStorage) Delete(ctx context.Context, url string) error {
	name, ok := imageName(s.publicURL, url)
	if !ok {
		return nil
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(name),
	})
	if err != nil {
		return fmt.Errorf("error removing image: %w", err)
	}
	return nil
}

func (s *s3ImageStorage) Owns(url string) bool {
	_, ok := imageName(s.publicURL, url)
	return ok
}
