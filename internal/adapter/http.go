// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/miam-miam/internal/config"
	"github.com/MKhiriev/miam-miam/internal/logger"
	"github.com/MKhiriev/miam-miam/internal/utils"
	"github.com/MKhiriev/miam-miam/models"
)

const (
	recipesPath  = "/api/recettes"
	recipePath   = "/api/recettes/{id}"
	favoritePath = "/api/recettes/{id}/favorite"
	reviewsPath  = "/api/recettes/{id}/reviews"
)

type httpAPIClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAPIClient returns an [APIClient] for the server at cfg.Address.
// The token from cfg, if any, is used for authenticated calls.
func NewHTTPAPIClient(cfg *config.ClientConfig, logger *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid api address: %w", err)
	}

	c := &httpAPIClient{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	c.SetToken(cfg.Token)

	return c, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (c *httpAPIClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

func (c *httpAPIClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// request starts a request that carries the bearer token when one is set.
func (c *httpAPIClient) request(ctx context.Context) *resty.Request {
	req := c.client.R().SetContext(ctx)
	if token := c.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func (c *httpAPIClient) Register(ctx context.Context, in models.RegisterRequest) error {
	resp, err := c.request(ctx).
		SetBody(in).
		Post("/api/auth/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}
	return mapHTTPError(resp)
}

func (c *httpAPIClient) Login(ctx context.Context, in models.LoginRequest) (models.LoginResponse, error) {
	var out models.LoginResponse

	resp, err := c.request(ctx).
		SetBody(in).
		SetResult(&out).
		Post("/api/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	c.SetToken(out.Token)
	c.logger.Debug().Str("user_id", out.User.ID).Msg("logged in")
	return out, nil
}

func (c *httpAPIClient) ListRecipes(ctx context.Context, query models.ListingQuery) ([]models.Recipe, error) {
	var out []models.Recipe

	req := c.request(ctx).SetResult(&out)
	if query.Q != "" {
		req.SetQueryParam("q", query.Q)
	}
	if query.Type != "" {
		req.SetQueryParam("type", query.Type)
	}

	resp, err := req.Get(recipesPath)
	if err != nil {
		return nil, fmt.Errorf("list recipes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if out == nil {
		out = []models.Recipe{}
	}
	return out, nil
}

func (c *httpAPIClient) SuggestRecipes(ctx context.Context, query string, limit int) ([]string, error) {
	var out models.SuggestionsResponse

	req := c.request(ctx).
		SetQueryParam("q", query).
		SetResult(&out)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}

	resp, err := req.Get(recipesPath + "/suggest")
	if err != nil {
		return nil, fmt.Errorf("suggest recipes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return out.Suggestions, nil
}

func (c *httpAPIClient) GetRecipe(ctx context.Context, id string) (models.Recipe, error) {
	var out models.Recipe

	resp, err := c.request(ctx).
		SetPathParam("id", id).
		SetResult(&out).
		Get(recipePath)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("get recipe request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Recipe{}, err
	}
	return out, nil
}

func (c *httpAPIClient) CreateRecipe(ctx context.Context, in models.RecipeInput) (models.Recipe, error) {
	var out models.Recipe

	resp, err := c.request(ctx).
		SetBody(in).
		SetResult(&out).
		Post(recipesPath)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("create recipe request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Recipe{}, err
	}
	return out, nil
}

func (c *httpAPIClient) UpdateRecipe(ctx context.Context, id string, in models.RecipeInput) (models.Recipe, error) {
	var out models.Recipe

	resp, err := c.request(ctx).
		SetPathParam("id", id).
		SetBody(in).
		SetResult(&out).
		Put(recipePath)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("update recipe request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Recipe{}, err
	}
	return out, nil
}

func (c *httpAPIClient) DeleteRecipe(ctx context.Context, id string) error {
	resp, err := c.request(ctx).
		SetPathParam("id", id).
		Delete(recipePath)
	if err != nil {
		return fmt.Errorf("delete recipe request: %w", err)
	}
	return mapHTTPError(resp)
}

func (c *httpAPIClient) ToggleFavorite(ctx context.Context, recipeID string) ([]string, error) {
	var out models.FavoritesResponse

	resp, err := c.request(ctx).
		SetPathParam("id", recipeID).
		SetResult(&out).
		Post(favoritePath)
	if err != nil {
		return nil, fmt.Errorf("toggle favorite request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if out.Favorites == nil {
		out.Favorites = []string{}
	}
	return out.Favorites, nil
}

func (c *httpAPIClient) AddReview(ctx context.Context, recipeID string, in models.ReviewInput) (models.Review, error) {
	return c.writeReview(ctx, recipeID, in, resty.MethodPost)
}

func (c *httpAPIClient) UpdateReview(ctx context.Context, recipeID string, in models.ReviewInput) (models.Review, error) {
	return c.writeReview(ctx, recipeID, in, resty.MethodPut)
}

func (c *httpAPIClient) writeReview(ctx context.Context, recipeID string, in models.ReviewInput, method string) (models.Review, error) {
	var out models.Review

	resp, err := c.request(ctx).
		SetPathParam("id", recipeID).
		SetBody(in).
		SetResult(&out).
		Execute(method, reviewsPath)
	if err != nil {
		return models.Review{}, fmt.Errorf("review request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Review{}, err
	}
	return out, nil
}

func (c *httpAPIClient) DeleteReview(ctx context.Context, recipeID string) error {
	resp, err := c.request(ctx).
		SetPathParam("id", recipeID).
		Delete(reviewsPath)
	if err != nil {
		return fmt.Errorf("delete review request: %w", err)
	}
	return mapHTTPError(resp)
}

func (c *httpAPIClient) UploadImage(ctx context.Context, path string) (string, error) {
	var out models.ImageResponse

	resp, err := c.request(ctx).
		SetFile("image", path).
		SetResult(&out).
		Post("/api/upload")
	if err != nil {
		return "", fmt.Errorf("upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return out.ImageURL, nil
}

func (c *httpAPIClient) Version(ctx context.Context) (string, error) {
	resp, err := c.request(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return resp.String(), nil
}
