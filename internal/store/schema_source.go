// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/dexit/custom-schema-box-generator/internal/models"
	"github.com/dexit/custom-schema-box-generator/internal/schema"
)

// SchemaSource adapts the content, user, and site-setting stores to the
// schema package's Source interface. It assembles the flat field view the
// placeholder resolver and feature generators consume.
type SchemaSource struct {
	contents *ContentStore
	users    *UserStore
	settings *SiteSettingStore
}

// NewSchemaSource wires a SchemaSource over the given stores.
func NewSchemaSource(contents *ContentStore, users *UserStore, settings *SiteSettingStore) *SchemaSource {
	return &SchemaSource{contents: contents, users: users, settings: settings}
}

// ItemFields loads a content item and projects it into the read-model
// shape. Returns nil (no error) when the item does not exist.
func (s *SchemaSource) ItemFields(id int64) (*schema.ItemFields, error) {
	c, err := s.contents.FindByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}

	site, err := s.SiteFields()
	if err != nil {
		return nil, fmt.Errorf("site fields: %w", err)
	}

	fields := &schema.ItemFields{
		ID:         c.ID,
		Type:       string(c.Type),
		Title:      c.Title,
		ModifiedAt: c.UpdatedAt.Format(time.RFC3339),
		URL:        joinURL(site.URL, c.Slug),
		Categories: splitTerms(c.Categories),
		Tags:       splitTerms(c.Tags),
	}
	if c.Excerpt != nil {
		fields.Excerpt = *c.Excerpt
	} else {
		fields.Excerpt = summarize(c.Body)
	}
	if c.PublishedAt != nil {
		fields.PublishedAt = c.PublishedAt.Format(time.RFC3339)
	}
	if c.FeaturedImageURL != nil {
		fields.ImageURL = *c.FeaturedImageURL
	}

	author, err := s.users.FindByID(c.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("author lookup: %w", err)
	}
	if author != nil {
		fields.AuthorName = author.DisplayName
		fields.AuthorURL = joinURL(site.URL, "author/"+author.Slug)
	}

	return fields, nil
}

// ItemSchema returns the item's stored individual JSON-LD source.
func (s *SchemaSource) ItemSchema(id int64) (string, error) {
	return s.contents.CustomSchema(id)
}

// SiteFields reads the site-level values from settings.
func (s *SchemaSource) SiteFields() (*schema.SiteFields, error) {
	all, err := s.settings.All()
	if err != nil {
		return nil, err
	}
	return &schema.SiteFields{
		Name:    all.Get(models.SettingSiteName, ""),
		URL:     strings.TrimRight(all.Get(models.SettingSiteURL, ""), "/"),
		Tagline: all.Get(models.SettingSiteTagline, ""),
		LogoURL: all.Get(models.SettingSiteLogoURL, ""),
	}, nil
}

// splitTerms splits a comma-joined term list into trimmed names.
func splitTerms(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	terms := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			terms = append(terms, p)
		}
	}
	return terms
}

// joinURL appends a path segment to a base URL.
func joinURL(base, path string) string {
	if base == "" {
		return ""
	}
	return base + "/" + strings.TrimLeft(path, "/")
}

// summarizeWords caps the derived excerpt length for items without one.
const summarizeWords = 55

// summarize derives a short plain-text summary from a content body.
func summarize(body string) string {
	words := strings.Fields(body)
	if len(words) <= summarizeWords {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:summarizeWords], " ") + "..."
}
