// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/dexit/custom-schema-box-generator/internal/cache"
	"github.com/dexit/custom-schema-box-generator/internal/schema"
	"github.com/dexit/custom-schema-box-generator/internal/store"
)

// Admin groups the structured-data configuration handlers. All writes go
// through validation first; unlike the public emission path, failures
// here are reported to the caller, never swallowed.
type Admin struct {
	settings  *store.SiteSettingStore
	contents  *store.ContentStore
	emitter   *schema.Emitter
	features  *schema.FeatureRegistry
	pageCache *cache.PageCache
	validate  *validator.Validate
}

// NewAdmin creates a new Admin handler group.
func NewAdmin(settings *store.SiteSettingStore, contents *store.ContentStore, emitter *schema.Emitter, features *schema.FeatureRegistry, pageCache *cache.PageCache) *Admin {
	return &Admin{
		settings:  settings,
		contents:  contents,
		emitter:   emitter,
		features:  features,
		pageCache: pageCache,
		validate:  validator.New(),
	}
}

// SchemaSettings returns every configuration map, keyed by short name.
func (a *Admin) SchemaSettings(w http.ResponseWriter, r *http.Request) {
	out := make(map[string]map[string]string, len(settingsMaps))
	for name, key := range settingsMaps {
		m, err := a.settings.Map(key)
		if err != nil {
			slog.Error("settings read failed", "key", key, "error", err)
			respondError(w, http.StatusInternalServerError, "unexpected error")
			return
		}
		out[name] = m
	}
	respondJSON(w, http.StatusOK, out)
}

// SchemaSetting returns a single configuration map.
func (a *Admin) SchemaSetting(w http.ResponseWriter, r *http.Request) {
	key, ok := settingsMaps[chi.URLParam(r, "map")]
	if !ok {
		respondError(w, http.StatusNotFound, "unknown settings map")
		return
	}
	m, err := a.settings.Map(key)
	if err != nil {
		slog.Error("settings read failed", "key", key, "error", err)
		respondError(w, http.StatusInternalServerError, "unexpected error")
		return
	}
	respondJSON(w, http.StatusOK, m)
}

// UpdateSchemaSetting replaces a single configuration map. The submitted
// body is the complete new map; an empty object clears it, which for the
// per-item buckets means "allow every item of an enabled type".
func (a *Admin) UpdateSchemaSetting(w http.ResponseWriter, r *http.Request) {
	key, ok := settingsMaps[chi.URLParam(r, "map")]
	if !ok {
		respondError(w, http.StatusNotFound, "unknown settings map")
		return
	}

	var m map[string]string
	if err := decodeJSON(r, &m); err != nil {
		respondError(w, http.StatusBadRequest, "body must be a string map")
		return
	}

	normalized, problem := normalizeSettingMap(key, m)
	if problem != "" {
		respondError(w, http.StatusUnprocessableEntity, problem)
		return
	}

	if err := a.settings.SetMap(key, normalized); err != nil {
		slog.Error("settings write failed", "key", key, "error", err)
		respondError(w, http.StatusInternalServerError, "unexpected error")
		return
	}

	// Any map change can alter what pages emit.
	a.pageCache.InvalidateAll(r.Context())

	slog.Info("schema settings updated", "map", key, "entries", len(normalized))
	respondJSON(w, http.StatusOK, normalized)
}

type contentSchemaRequest struct {
	Schema string `json:"schema"`
}

// UpdateContentSchema saves an item's individual JSON-LD source. Unlike
// the emission path, a malformed document is rejected here (422) so bad
// input is caught at write time. An empty string clears the schema.
func (a *Admin) UpdateContentSchema(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid content id")
		return
	}

	var req contentSchemaRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Placeholder tokens live inside JSON string values, so a source
	// like {"name": "{{post_title}}"} validates as-is.
	if strings.TrimSpace(req.Schema) != "" {
		if _, err := schema.Validate(req.Schema); err != nil {
			respondError(w, http.StatusUnprocessableEntity, "schema is not valid JSON")
			return
		}
	}

	content, err := a.contents.FindByID(id)
	if err != nil {
		slog.Error("content lookup failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "unexpected error")
		return
	}
	if content == nil {
		respondError(w, http.StatusNotFound, "content not found")
		return
	}

	if err := a.contents.SetCustomSchema(id, req.Schema); err != nil {
		slog.Error("schema write failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "unexpected error")
		return
	}

	a.pageCache.InvalidatePage(r.Context(), cache.SlugKey(content.Slug))
	a.pageCache.InvalidateHomepage(r.Context())

	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type applyTemplateRequest struct {
	TemplateID  string `json:"template_id" validate:"required,max=64"`
	ContentType string `json:"content_type" validate:"required,max=64"`
}

// ApplyTemplate activates a catalog template for a content type: the
// type switches to dynamic mode, the template source becomes its per-type
// template, and the type is enabled.
func (a *Admin) ApplyTemplate(w http.ResponseWriter, r *http.Request) {
	var req applyTemplateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, "template_id and content_type are required")
		return
	}

	if err := schema.ApplyTemplate(a.settings, req.TemplateID, req.ContentType); err != nil {
		if errors.Is(err, schema.ErrUnknownTemplate) {
			respondError(w, http.StatusBadRequest, "unknown template: "+req.TemplateID)
			return
		}
		slog.Error("apply template failed", "template", req.TemplateID, "type", req.ContentType, "error", err)
		respondError(w, http.StatusInternalServerError, "unexpected error")
		return
	}

	a.pageCache.InvalidateAll(r.Context())

	slog.Info("schema template applied", "template", req.TemplateID, "type", req.ContentType)
	respondJSON(w, http.StatusOK, map[string]string{
		"template_id":  req.TemplateID,
		"content_type": req.ContentType,
		"mode":         schema.ModeDynamicValue,
	})
}

// templateSummary is one catalog entry in the list response.
type templateSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Templates lists the catalog, sorted by ID.
func (a *Admin) Templates(w http.ResponseWriter, r *http.Request) {
	out := make([]templateSummary, 0, len(schema.Templates))
	for id, t := range schema.Templates {
		out = append(out, templateSummary{
			ID:          id,
			Name:        t.Name,
			Type:        t.Type,
			Description: t.Description,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	respondJSON(w, http.StatusOK, out)
}

// Template returns one catalog entry with its full JSON-LD source.
func (a *Admin) Template(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	t, ok := schema.Templates[id]
	if !ok {
		respondError(w, http.StatusNotFound, "unknown template")
		return
	}
	source, err := t.JSON()
	if err != nil {
		slog.Error("template encode failed", "template", id, "error", err)
		respondError(w, http.StatusInternalServerError, "unexpected error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"id":          id,
		"name":        t.Name,
		"type":        t.Type,
		"description": t.Description,
		"schema":      source,
	})
}

// Features lists the canned feature generators and their current flags.
func (a *Admin) Features(w http.ResponseWriter, r *http.Request) {
	flags, err := a.settings.Map(schema.KeyEnabledFeatures)
	if err != nil {
		slog.Error("feature flags read failed", "error", err)
		respondError(w, http.StatusInternalServerError, "unexpected error")
		return
	}

	names := a.features.Names()
	out := make([]map[string]any, 0, len(names))
	for _, name := range names {
		out = append(out, map[string]any{
			"name":    name,
			"enabled": flags[name] == "1",
		})
	}
	respondJSON(w, http.StatusOK, out)
}

// PreviewContentSchema runs the full emission pipeline for one item and
// returns the documents it would emit. Admin-only diagnostic; the public
// path never exposes errors like this.
func (a *Admin) PreviewContentSchema(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid content id")
		return
	}

	content, err := a.contents.FindByID(id)
	if err != nil {
		slog.Error("content lookup failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "unexpected error")
		return
	}
	if content == nil {
		respondError(w, http.StatusNotFound, "content not found")
		return
	}

	docs := a.emitter.EmitFor(id)
	respondJSON(w, http.StatusOK, map[string]any{
		"content_id": id,
		"documents":  docs,
		"count":      len(docs),
	})
}
