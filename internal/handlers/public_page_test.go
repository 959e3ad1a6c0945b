// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/dexit/custom-schema-box-generator/internal/schema"
)

func publicRouter(env *testEnv) chi.Router {
	r := chi.NewRouter()
	r.Get("/", env.Public.Homepage)
	r.Get("/{slug}", env.Public.Page)
	return r
}

func TestPublicPageEmitsHeadBlocks(t *testing.T) {
	env := newTestEnv(t)
	t.Cleanup(func() { cleanSettings(t, env.DB) })
	content := testContent(t, env)

	if err := schema.ApplyTemplate(env.SettingStore, "article", "post"); err != nil {
		t.Fatalf("apply template: %v", err)
	}

	r := publicRouter(env)
	req := httptest.NewRequest(http.MethodGet, "/"+content.Slug, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `<script type="application/ld+json">`) {
		t.Error("page is missing the JSON-LD head block")
	}
	if !strings.Contains(body, "Schema Test Post") {
		t.Error("page is missing the content title")
	}
}

func TestPublicPageWithoutConfigurationStillRenders(t *testing.T) {
	env := newTestEnv(t)
	t.Cleanup(func() { cleanSettings(t, env.DB) })
	content := testContent(t, env)

	r := publicRouter(env)
	req := httptest.NewRequest(http.MethodGet, "/"+content.Slug, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d — structured data must never break the page", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "application/ld+json") {
		t.Error("no head blocks expected with schema disabled")
	}
}

func TestPublicPageCached(t *testing.T) {
	env := newTestEnv(t)
	t.Cleanup(func() { cleanSettings(t, env.DB) })
	content := testContent(t, env)

	r := publicRouter(env)
	req := httptest.NewRequest(http.MethodGet, "/"+content.Slug, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	// Second request must be served from the page cache.
	if _, ok := env.PageCache.Get(req.Context(), content.Slug); !ok {
		t.Fatal("rendered page was not cached")
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/"+content.Slug, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("cached status = %d", rec.Code)
	}
}

func TestPublicPageNotFound(t *testing.T) {
	env := newTestEnv(t)
	r := publicRouter(env)

	req := httptest.NewRequest(http.MethodGet, "/no-such-slug-ever", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
