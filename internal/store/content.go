// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dexit/custom-schema-box-generator/internal/models"
)

const contentColumns = `id, type, title, slug, body, excerpt, status,
       featured_image_url, categories, tags, custom_schema, author_id,
       published_at, created_at, updated_at`

// ContentStore handles all content-related database operations. Posts,
// pages, and custom content types share the unified content table.
type ContentStore struct {
	db *sql.DB
}

// NewContentStore creates a new ContentStore with the given database connection.
func NewContentStore(db *sql.DB) *ContentStore {
	return &ContentStore{db: db}
}

func scanContent(row interface{ Scan(...any) error }) (*models.Content, error) {
	c := &models.Content{}
	err := row.Scan(
		&c.ID, &c.Type, &c.Title, &c.Slug, &c.Body, &c.Excerpt, &c.Status,
		&c.FeaturedImageURL, &c.Categories, &c.Tags, &c.CustomSchema,
		&c.AuthorID, &c.PublishedAt, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// FindByID retrieves a content item by its numeric ID. Returns nil if not found.
func (s *ContentStore) FindByID(id int64) (*models.Content, error) {
	c, err := scanContent(s.db.QueryRow(
		`SELECT `+contentColumns+` FROM content WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find content by id: %w", err)
	}
	return c, nil
}

// FindBySlug retrieves a published content item by its slug. Used for
// public page rendering.
func (s *ContentStore) FindBySlug(slug string) (*models.Content, error) {
	c, err := scanContent(s.db.QueryRow(
		`SELECT `+contentColumns+` FROM content WHERE slug = $1 AND status = 'published'`, slug))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find content by slug: %w", err)
	}
	return c, nil
}

// ListByType returns all content items of the given type, newest first.
func (s *ContentStore) ListByType(contentType models.ContentType) ([]models.Content, error) {
	rows, err := s.db.Query(
		`SELECT `+contentColumns+` FROM content WHERE type = $1 ORDER BY created_at DESC`,
		contentType)
	if err != nil {
		return nil, fmt.Errorf("list content by type: %w", err)
	}
	defer rows.Close()

	var items []models.Content
	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan content: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// Create inserts a new content item and returns it with the generated ID.
func (s *ContentStore) Create(c *models.Content) (*models.Content, error) {
	if c.Status == models.ContentStatusPublished && c.PublishedAt == nil {
		now := time.Now()
		c.PublishedAt = &now
	}

	result, err := scanContent(s.db.QueryRow(`
		INSERT INTO content (type, title, slug, body, excerpt, status,
		                     featured_image_url, categories, tags,
		                     custom_schema, author_id, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING `+contentColumns,
		c.Type, c.Title, c.Slug, c.Body, c.Excerpt, c.Status,
		c.FeaturedImageURL, c.Categories, c.Tags, c.CustomSchema,
		c.AuthorID, c.PublishedAt,
	))
	if err != nil {
		return nil, fmt.Errorf("create content: %w", err)
	}
	return result, nil
}

// Update modifies an existing content item.
func (s *ContentStore) Update(c *models.Content) error {
	if c.Status == models.ContentStatusPublished && c.PublishedAt == nil {
		now := time.Now()
		c.PublishedAt = &now
	}

	_, err := s.db.Exec(`
		UPDATE content SET
			title = $1, slug = $2, body = $3, excerpt = $4, status = $5,
			featured_image_url = $6, categories = $7, tags = $8,
			published_at = $9, updated_at = NOW()
		WHERE id = $10`,
		c.Title, c.Slug, c.Body, c.Excerpt, c.Status,
		c.FeaturedImageURL, c.Categories, c.Tags, c.PublishedAt, c.ID,
	)
	if err != nil {
		return fmt.Errorf("update content: %w", err)
	}
	return nil
}

// CustomSchema returns the item's stored individual JSON-LD source,
// empty when the item has none or doesn't exist.
func (s *ContentStore) CustomSchema(id int64) (string, error) {
	var raw string
	err := s.db.QueryRow(`SELECT custom_schema FROM content WHERE id = $1`, id).Scan(&raw)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read custom schema: %w", err)
	}
	return raw, nil
}

// SetCustomSchema replaces the item's individual JSON-LD source. Callers
// validate before writing; this store does not.
func (s *ContentStore) SetCustomSchema(id int64, raw string) error {
	res, err := s.db.Exec(
		`UPDATE content SET custom_schema = $1, updated_at = NOW() WHERE id = $2`, raw, id)
	if err != nil {
		return fmt.Errorf("set custom schema: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("set custom schema: content %d not found", id)
	}
	return nil
}

// Delete removes a content item by ID.
func (s *ContentStore) Delete(id int64) error {
	_, err := s.db.Exec(`DELETE FROM content WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete content: %w", err)
	}
	return nil
}
