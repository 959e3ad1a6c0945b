// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ContentType tags a content item. Posts and pages are built in; any other
// value is treated as a custom type sharing one per-item schema bucket.
type ContentType string

const (
	ContentTypePost ContentType = "post"
	ContentTypePage ContentType = "page"
)

// ContentStatus represents the publishing state of a content item.
type ContentStatus string

const (
	ContentStatusDraft     ContentStatus = "draft"
	ContentStatusPublished ContentStatus = "published"
)

// Content represents a post, page, or custom content item. All types share
// the same table, differentiated by the Type field. Categories and Tags are
// stored as comma-joined term names, which is the shape the placeholder
// resolver consumes. CustomSchema holds the item's own JSON-LD source for
// individual mode; it is empty until an administrator saves one.
type Content struct {
	ID               int64         `json:"id"`
	Type             ContentType   `json:"type"`
	Title            string        `json:"title"`
	Slug             string        `json:"slug"`
	Body             string        `json:"body"`
	Excerpt          *string       `json:"excerpt,omitempty"`
	Status           ContentStatus `json:"status"`
	FeaturedImageURL *string       `json:"featured_image_url,omitempty"`
	Categories       string        `json:"categories"`
	Tags             string        `json:"tags"`
	CustomSchema     string        `json:"custom_schema"`
	AuthorID         uuid.UUID     `json:"author_id"`
	PublishedAt      *time.Time    `json:"published_at,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// IsPublished returns true if the content item is in published status.
func (c *Content) IsPublished() bool {
	return c.Status == ContentStatusPublished
}
