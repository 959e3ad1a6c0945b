// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package schema

import (
	"sort"
	"testing"
)

func testItemContext() *ItemContext {
	return &ItemContext{
		Item: ItemFields{
			ID:          1,
			Type:        "post",
			Title:       "A Post",
			Excerpt:     "Summary.",
			PublishedAt: "2026-01-02T15:04:05Z",
			ModifiedAt:  "2026-01-03T15:04:05Z",
			URL:         "https://example.com/a-post",
			AuthorName:  "Alex",
			AuthorURL:   "https://example.com/author/alex",
			Categories:  []string{"News"},
			Tags:        []string{"go"},
		},
		Site: SiteFields{
			Name:    "Example",
			URL:     "https://example.com",
			Tagline: "An example site",
			LogoURL: "https://example.com/logo.png",
		},
	}
}

func TestFeatureRegistryLookupIsCaseInsensitive(t *testing.T) {
	r := NewFeatureRegistry()
	ctx := testItemContext()

	for _, name := range []string{"article", "Article", "ARTICLE", "aRtIcLe"} {
		doc, ok := r.Generate(name, ctx)
		if !ok {
			t.Fatalf("Generate(%q) not found", name)
		}
		if doc["@type"] != "Article" {
			t.Errorf("Generate(%q) @type = %v", name, doc["@type"])
		}
	}
}

func TestFeatureRegistryUnknownName(t *testing.T) {
	r := NewFeatureRegistry()
	if _, ok := r.Generate("not_a_feature", testItemContext()); ok {
		t.Error("unknown feature name must report not found")
	}
}

func TestFeatureRegistryCatalog(t *testing.T) {
	r := NewFeatureRegistry()
	names := r.Names()

	if len(names) != 29 {
		t.Errorf("catalog holds %d features, want 29", len(names))
	}
	if !sort.StringsAreSorted(names) {
		t.Error("Names() must be sorted")
	}

	// Every cataloged generator must produce a document with schema.org
	// context for an ordinary published post.
	ctx := testItemContext()
	for _, name := range names {
		doc, ok := r.Generate(name, ctx)
		if !ok {
			t.Errorf("feature %q did not generate", name)
			continue
		}
		if doc["@context"] != schemaContext {
			t.Errorf("feature %q @context = %v", name, doc["@context"])
		}
		if doc["@type"] == nil || doc["@type"] == "" {
			t.Errorf("feature %q has no @type", name)
		}
	}
}

func TestFeatureImageFallsBackToSiteLogo(t *testing.T) {
	r := NewFeatureRegistry()
	ctx := testItemContext()
	ctx.Item.ImageURL = ""

	doc, ok := r.Generate("article", ctx)
	if !ok {
		t.Fatal("article feature missing")
	}
	if doc["image"] != ctx.Site.LogoURL {
		t.Errorf("image = %v, want site logo fallback", doc["image"])
	}
}
