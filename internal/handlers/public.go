// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dexit/custom-schema-box-generator/internal/cache"
	"github.com/dexit/custom-schema-box-generator/internal/models"
	"github.com/dexit/custom-schema-box-generator/internal/schema"
	"github.com/dexit/custom-schema-box-generator/internal/store"
)

// pageShell is the minimal HTML document for public content. The head
// receives the emitted JSON-LD script blocks; everything else is plain
// markup so the structured data is the page's main payload.
var pageShell = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
{{.HeadBlocks}}</head>
<body>
<header><h1>{{.SiteName}}</h1><p>{{.Tagline}}</p></header>
<main>
<article>
<h2>{{.Title}}</h2>
{{.Body}}
</article>
</main>
</body>
</html>
`))

type pageData struct {
	Title      string
	SiteName   string
	Tagline    string
	Body       template.HTML
	HeadBlocks template.HTML
}

// Public groups the visitor-facing handlers.
type Public struct {
	contents  *store.ContentStore
	settings  *store.SiteSettingStore
	emitter   *schema.Emitter
	pageCache *cache.PageCache
}

// NewPublic creates a new Public handler group.
func NewPublic(contents *store.ContentStore, settings *store.SiteSettingStore, emitter *schema.Emitter, pageCache *cache.PageCache) *Public {
	return &Public{
		contents:  contents,
		settings:  settings,
		emitter:   emitter,
		pageCache: pageCache,
	}
}

// Page serves a published content item by slug, with its JSON-LD head
// blocks. Rendered pages are cached in Valkey; structured-data failures
// never take the page down — the worst case is a page without markup.
func (p *Public) Page(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	if html, ok := p.pageCache.Get(r.Context(), cache.SlugKey(slug)); ok {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(html)
		return
	}

	content, err := p.contents.FindBySlug(slug)
	if err != nil {
		slog.Error("page lookup failed", "slug", slug, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if content == nil {
		http.NotFound(w, r)
		return
	}

	p.render(w, r, content, cache.SlugKey(slug))
}

// Homepage serves the most recent published post, or a bare site page
// when nothing is published yet.
func (p *Public) Homepage(w http.ResponseWriter, r *http.Request) {
	if html, ok := p.pageCache.Get(r.Context(), cache.HomepageKey()); ok {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(html)
		return
	}

	posts, err := p.contents.ListByType(models.ContentTypePost)
	if err != nil {
		slog.Error("homepage lookup failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	for i := range posts {
		if posts[i].IsPublished() {
			p.render(w, r, &posts[i], cache.HomepageKey())
			return
		}
	}

	settings, err := p.settings.All()
	if err != nil {
		slog.Error("homepage settings failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	pageShell.Execute(w, &pageData{
		Title:    settings.Get(models.SettingSiteName, "Home"),
		SiteName: settings.Get(models.SettingSiteName, ""),
		Tagline:  settings.Get(models.SettingSiteTagline, ""),
	})
}

// render executes the page shell with the item's emitted head blocks and
// stores the result in the page cache.
func (p *Public) render(w http.ResponseWriter, r *http.Request, content *models.Content, cacheKey string) {
	settings, err := p.settings.All()
	if err != nil {
		slog.Error("settings lookup failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	blocks := schema.HeadBlocks(p.emitter.EmitFor(content.ID))

	var buf bytes.Buffer
	if err := pageShell.Execute(&buf, &pageData{
		Title:      content.Title,
		SiteName:   settings.Get(models.SettingSiteName, ""),
		Tagline:    settings.Get(models.SettingSiteTagline, ""),
		Body:       template.HTML(content.Body),
		HeadBlocks: template.HTML(blocks),
	}); err != nil {
		slog.Error("page render failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p.pageCache.Set(r.Context(), cacheKey, buf.Bytes())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}
