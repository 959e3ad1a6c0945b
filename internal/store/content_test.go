// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"

	"github.com/google/uuid"

	"github.com/dexit/custom-schema-box-generator/internal/models"
)

func TestContentStoreCreateAndFind(t *testing.T) {
	db := testDB(t)
	s := NewContentStore(db)
	author := testAuthor(t, db)

	slug := "test-create-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanContent(t, db, slug) })

	created, err := s.Create(&models.Content{
		Type:     models.ContentTypePost,
		Title:    "Test Post",
		Slug:     slug,
		Body:     "<p>Test body</p>",
		Status:   models.ContentStatusDraft,
		AuthorID: author.ID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected a generated ID")
	}
	if created.PublishedAt != nil {
		t.Error("expected nil published_at for draft")
	}

	found, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found == nil || found.Slug != slug {
		t.Fatalf("FindByID = %+v", found)
	}

	// Drafts are invisible on the public slug lookup.
	if got, err := s.FindBySlug(slug); err != nil || got != nil {
		t.Errorf("FindBySlug(draft) = %+v, %v; want nil", got, err)
	}
}

func TestContentStorePublishedBySlug(t *testing.T) {
	db := testDB(t)
	s := NewContentStore(db)
	author := testAuthor(t, db)

	slug := "test-pub-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanContent(t, db, slug) })

	created, err := s.Create(&models.Content{
		Type:     models.ContentTypePage,
		Title:    "Published Page",
		Slug:     slug,
		Body:     "body",
		Status:   models.ContentStatusPublished,
		AuthorID: author.ID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.PublishedAt == nil {
		t.Error("expected published_at to be set on publish")
	}

	found, err := s.FindBySlug(slug)
	if err != nil {
		t.Fatalf("FindBySlug: %v", err)
	}
	if found == nil || found.ID != created.ID {
		t.Fatalf("FindBySlug = %+v", found)
	}
}

func TestContentStoreCustomSchema(t *testing.T) {
	db := testDB(t)
	s := NewContentStore(db)
	author := testAuthor(t, db)

	slug := "test-schema-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanContent(t, db, slug) })

	created, err := s.Create(&models.Content{
		Type:     models.ContentTypePost,
		Title:    "Schema Holder",
		Slug:     slug,
		Body:     "body",
		Status:   models.ContentStatusPublished,
		AuthorID: author.ID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// No schema yet.
	if got, err := s.CustomSchema(created.ID); err != nil || got != "" {
		t.Fatalf("CustomSchema before write = %q, %v", got, err)
	}

	src := `{"@type": "Article", "headline": "{{post_title}}"}`
	if err := s.SetCustomSchema(created.ID, src); err != nil {
		t.Fatalf("SetCustomSchema: %v", err)
	}
	if got, _ := s.CustomSchema(created.ID); got != src {
		t.Errorf("CustomSchema = %q", got)
	}

	// A missing item reads back empty without error...
	if got, err := s.CustomSchema(999999999); err != nil || got != "" {
		t.Errorf("CustomSchema(missing) = %q, %v", got, err)
	}
	// ...but writing to one fails loudly.
	if err := s.SetCustomSchema(999999999, "{}"); err == nil {
		t.Error("SetCustomSchema(missing) must fail")
	}
}
