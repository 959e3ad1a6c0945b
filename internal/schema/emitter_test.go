// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package schema

import (
	"encoding/json"
	"strings"
	"testing"
)

// fakeSource serves one in-memory item for emitter tests.
type fakeSource struct {
	item    *ItemFields
	schemas map[int64]string
	site    SiteFields
}

func (f *fakeSource) ItemFields(id int64) (*ItemFields, error) {
	if f.item == nil || f.item.ID != id {
		return nil, nil
	}
	return f.item, nil
}

func (f *fakeSource) ItemSchema(id int64) (string, error) {
	return f.schemas[id], nil
}

func (f *fakeSource) SiteFields() (*SiteFields, error) {
	return &f.site, nil
}

func testSource() *fakeSource {
	return &fakeSource{
		item: &ItemFields{
			ID:    1,
			Type:  "post",
			Title: `Hello "World"`,
			URL:   "https://example.com/hello-world",
		},
		schemas: map[int64]string{},
		site:    SiteFields{Name: "Example", URL: "https://example.com"},
	}
}

func TestEmitterRendersDynamicTemplate(t *testing.T) {
	cfg := newFakeConfig()
	cfg.maps[KeyEnabledTypes] = map[string]string{"post": "1"}
	cfg.maps[KeyModeByType] = map[string]string{"post": ModeDynamicValue}
	cfg.maps[KeyDynamicTemplates] = map[string]string{
		"post": `{"@type": "Article", "headline": "{{post_title}}", "url": "{{post_url}}"}`,
	}

	e := NewEmitter(testSource(), cfg, NewFeatureRegistry())
	docs := e.EmitFor(1)

	if len(docs) != 1 {
		t.Fatalf("emitted %d documents, want 1", len(docs))
	}

	var doc map[string]any
	if err := json.Unmarshal(docs[0], &doc); err != nil {
		t.Fatalf("emitted document is not JSON: %v", err)
	}
	if doc["headline"] != "Hello &quot;World&quot;" {
		t.Errorf("headline = %q, want escaped title", doc["headline"])
	}
	if doc["url"] != "https://example.com/hello-world" {
		t.Errorf("url = %q, want the item URL untouched", doc["url"])
	}
}

func TestEmitterIndividualMode(t *testing.T) {
	cfg := newFakeConfig()
	cfg.maps[KeyEnabledTypes] = map[string]string{"post": "1"}

	src := testSource()
	src.schemas[1] = `{"@type": "BlogPosting", "url": "{{post_url}}"}`

	e := NewEmitter(src, cfg, NewFeatureRegistry())
	docs := e.EmitFor(1)

	if len(docs) != 1 {
		t.Fatalf("emitted %d documents, want 1", len(docs))
	}
	var doc map[string]any
	if err := json.Unmarshal(docs[0], &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc["url"] != "https://example.com/hello-world" {
		t.Errorf("url = %q", doc["url"])
	}
}

func TestEmitterMissingItem(t *testing.T) {
	e := NewEmitter(testSource(), newFakeConfig(), NewFeatureRegistry())
	if docs := e.EmitFor(404); docs != nil {
		t.Errorf("emitted %d documents for a missing item, want none", len(docs))
	}
}

// An invalid rendered template is dropped without taking the feature
// documents down with it.
func TestEmitterSkipsInvalidTemplate(t *testing.T) {
	cfg := newFakeConfig()
	cfg.maps[KeyEnabledTypes] = map[string]string{"post": "1"}
	cfg.maps[KeyModeByType] = map[string]string{"post": ModeDynamicValue}
	cfg.maps[KeyDynamicTemplates] = map[string]string{"post": `{not json`}
	cfg.maps[KeyEnabledFeatures] = map[string]string{"article": "1"}

	e := NewEmitter(testSource(), cfg, NewFeatureRegistry())
	docs := e.EmitFor(1)

	if len(docs) != 1 {
		t.Fatalf("emitted %d documents, want only the feature document", len(docs))
	}
	var doc map[string]any
	if err := json.Unmarshal(docs[0], &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc["@type"] != "Article" {
		t.Errorf("@type = %v, want the article feature", doc["@type"])
	}
}

func TestEmitterFeatureOrderIsDeterministic(t *testing.T) {
	cfg := newFakeConfig()
	cfg.maps[KeyEnabledFeatures] = map[string]string{
		"recipe":  "1",
		"article": "1",
		"event":   "1",
		"movie":   "0",
		"bogus":   "1", // unknown names are skipped silently
	}

	e := NewEmitter(testSource(), cfg, NewFeatureRegistry())

	wantTypes := []string{"Article", "Event", "Recipe"}
	for i := 0; i < 5; i++ {
		docs := e.EmitFor(1)
		if len(docs) != len(wantTypes) {
			t.Fatalf("emitted %d documents, want %d", len(docs), len(wantTypes))
		}
		for j, raw := range docs {
			var doc map[string]any
			if err := json.Unmarshal(raw, &doc); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if doc["@type"] != wantTypes[j] {
				t.Errorf("doc[%d] @type = %v, want %s", j, doc["@type"], wantTypes[j])
			}
		}
	}
}

func TestEmitterTemplateDocumentComesFirst(t *testing.T) {
	cfg := newFakeConfig()
	cfg.maps[KeyEnabledTypes] = map[string]string{"post": "1"}
	cfg.maps[KeyModeByType] = map[string]string{"post": ModeDynamicValue}
	cfg.maps[KeyDynamicTemplates] = map[string]string{"post": `{"@type": "WebPage"}`}
	cfg.maps[KeyEnabledFeatures] = map[string]string{"article": "1"}

	e := NewEmitter(testSource(), cfg, NewFeatureRegistry())
	docs := e.EmitFor(1)

	if len(docs) != 2 {
		t.Fatalf("emitted %d documents, want 2", len(docs))
	}
	var first map[string]any
	if err := json.Unmarshal(docs[0], &first); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if first["@type"] != "WebPage" {
		t.Errorf("first document @type = %v, want the template document", first["@type"])
	}
}

func TestHeadBlocks(t *testing.T) {
	docs := []json.RawMessage{
		json.RawMessage(`{"a":1}`),
		json.RawMessage(`{"b":2}`),
	}
	got := HeadBlocks(docs)

	want := `<script type="application/ld+json">{"a":1}</script>` + "\n" +
		`<script type="application/ld+json">{"b":2}</script>` + "\n"
	if got != want {
		t.Errorf("HeadBlocks = %q, want %q", got, want)
	}

	if HeadBlocks(nil) != "" {
		t.Error("HeadBlocks(nil) must be empty")
	}
	if strings.Count(got, "<script") != 2 {
		t.Errorf("expected one script element per document")
	}
}
