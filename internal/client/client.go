// Package client is a Go consumer of the books API. It is used by cmd/seed
// and is suitable for any program that talks to a running server.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/smoretta/books-api/models"
)

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client wraps a resty client preconfigured with the base URL and the
// Authorization header every protected route requires.
type Client struct {
	client *resty.Client
}

func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Authorization", cfg.APIKey)

	return &Client{client: cli}
}

// Create posts a new book. A 400 response is decoded into
// [*ValidationFailedError] so callers can inspect the violated rules.
func (c *Client) Create(ctx context.Context, book models.Book) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(book).
		Post("/books")
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	return mapResponseError(resp)
}

// GetByISBN fetches a single book; (nil, nil) signals absence.
func (c *Client) GetByISBN(ctx context.Context, isbn string) (*models.Book, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/books/" + isbn)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if err = mapResponseError(resp); err != nil {
		return nil, err
	}

	var book models.Book
	if err = json.Unmarshal(resp.Body(), &book); err != nil {
		return nil, fmt.Errorf("decoding book: %w", err)
	}

	return &book, nil
}

// List fetches every stored book; a non-blank term turns the listing into a
// substring title search.
func (c *Client) List(ctx context.Context, term string) ([]models.Book, error) {
	req := c.client.R().SetContext(ctx)
	if term != "" {
		req.SetQueryParam("searchTerm", term)
	}

	resp, err := req.Get("/books")
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapResponseError(resp); err != nil {
		return nil, err
	}

	var books []models.Book
	if err = json.Unmarshal(resp.Body(), &books); err != nil {
		return nil, fmt.Errorf("decoding books: %w", err)
	}

	return books, nil
}

// Update overwrites the book stored under isbn.
func (c *Client) Update(ctx context.Context, isbn string, book models.Book) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(book).
		Put("/books/" + isbn)
	if err != nil {
		return fmt.Errorf("update request: %w", err)
	}

	return mapResponseError(resp)
}

// Delete removes the book stored under isbn.
func (c *Client) Delete(ctx context.Context, isbn string) error {
	resp, err := c.client.R().
		SetContext(ctx).
		Delete("/books/" + isbn)
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}

	return mapResponseError(resp)
}
