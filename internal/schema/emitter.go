// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package schema

import (
	"encoding/json"
	"log/slog"
	"sort"
	"strings"
)

// Source is the content-item read model the emitter consumes. A nil item
// result (no error) means the item does not exist.
type Source interface {
	ItemFields(id int64) (*ItemFields, error)
	ItemSchema(id int64) (string, error)
	SiteFields() (*SiteFields, error)
}

// Emitter runs the per-request emission pipeline for one content item:
// mode resolution, field substitution, validation, and the canned feature
// pass. It holds no per-request state; configuration and content are
// re-read fresh on every call.
type Emitter struct {
	source   Source
	config   ConfigStore
	modes    *ModeResolver
	features *FeatureRegistry
}

// NewEmitter wires an emitter over the given source, configuration store,
// and feature registry.
func NewEmitter(source Source, config ConfigStore, features *FeatureRegistry) *Emitter {
	return &Emitter{
		source:   source,
		config:   config,
		modes:    NewModeResolver(config, source),
		features: features,
	}
}

// EmitFor returns the ordered JSON-LD documents for a content item: the
// template-derived document first (when the mode resolver allows one and
// it validates), then one document per enabled canned feature. Every
// failure mode degrades to omitting that document — this path must never
// break page rendering for a visitor.
func (e *Emitter) EmitFor(itemID int64) []json.RawMessage {
	item, err := e.source.ItemFields(itemID)
	if err != nil {
		slog.Warn("schema emit: item lookup failed", "item", itemID, "error", err)
		return nil
	}
	if item == nil {
		return nil
	}

	site, err := e.source.SiteFields()
	if err != nil {
		slog.Warn("schema emit: site lookup failed", "error", err)
		site = &SiteFields{}
	}

	var docs []json.RawMessage

	if doc := e.templateDocument(item, site, itemID); doc != nil {
		docs = append(docs, doc)
	}

	docs = append(docs, e.featureDocuments(item, site)...)
	return docs
}

// templateDocument resolves the item's mode and renders + validates the
// applicable template. Returns nil when the item is disabled, has no
// template, or the rendered result is not valid JSON.
func (e *Emitter) templateDocument(item *ItemFields, site *SiteFields, itemID int64) json.RawMessage {
	res, err := e.modes.Resolve(item.Type, itemID)
	if err != nil {
		slog.Warn("schema emit: mode resolution failed", "item", itemID, "error", err)
		return nil
	}
	if res.Mode == ModeDisabled || res.Template == "" {
		return nil
	}

	rendered := Render(res.Template, ResolveFields(item, site))
	doc, err := Validate(rendered)
	if err != nil {
		slog.Debug("schema emit: rendered template is not valid JSON, skipping",
			"item", itemID, "mode", res.Mode.String(), "error", err)
		return nil
	}
	return doc
}

// featureDocuments generates one document per enabled canned feature,
// independent of the template path. Unknown feature keys are skipped
// silently; keys are visited in sorted order so output is deterministic.
func (e *Emitter) featureDocuments(item *ItemFields, site *SiteFields) []json.RawMessage {
	flags, err := e.config.Map(KeyEnabledFeatures)
	if err != nil {
		slog.Warn("schema emit: feature flags lookup failed", "error", err)
		return nil
	}
	if len(flags) == 0 {
		return nil
	}

	names := make([]string, 0, len(flags))
	for name, enabled := range flags {
		if enabled == "1" {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	ctx := &ItemContext{Item: *item, Site: *site}

	var docs []json.RawMessage
	for _, name := range names {
		data, ok := e.features.Generate(name, ctx)
		if !ok {
			continue
		}
		doc, err := json.Marshal(data)
		if err != nil {
			slog.Warn("schema emit: feature marshal failed", "feature", name, "error", err)
			continue
		}
		docs = append(docs, doc)
	}
	return docs
}

// HeadBlocks wraps each document in a <script type="application/ld+json">
// element, one per line, ready for injection into a page head.
func HeadBlocks(docs []json.RawMessage) string {
	if len(docs) == 0 {
		return ""
	}
	var b strings.Builder
	for _, doc := range docs {
		b.WriteString(`<script type="application/ld+json">`)
		b.Write(doc)
		b.WriteString("</script>\n")
	}
	return b.String()
}
