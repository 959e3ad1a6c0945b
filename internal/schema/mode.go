// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package schema

import (
	"fmt"
	"strconv"
)

// Configuration map keys in the settings store. Each value is a
// string→string map: flag maps hold "0"/"1", the mode map holds
// "individual"/"dynamic", and the template map holds raw JSON-LD source.
const (
	KeyEnabledTypes     = "schema_enabled_types"
	KeyModeByType       = "schema_mode_by_type"
	KeyDynamicTemplates = "schema_dynamic_templates"
	KeyEnabledPages     = "schema_enabled_pages"
	KeyEnabledPosts     = "schema_enabled_posts"
	KeyEnabledItems     = "schema_enabled_items"
	KeyEnabledFeatures  = "schema_enabled_features"
)

// Mode values stored in the mode-by-type map.
const (
	ModeIndividualValue = "individual"
	ModeDynamicValue    = "dynamic"
)

// ConfigStore reads and writes the named configuration maps. A map that
// was never written reads back as an empty (non-nil) map.
type ConfigStore interface {
	Map(key string) (map[string]string, error)
	SetMap(key string, m map[string]string) error
}

// ItemSchemas provides the per-item stored raw schema string, empty when
// the item has none.
type ItemSchemas interface {
	ItemSchema(id int64) (string, error)
}

// Mode is the outcome kind of a resolution.
type Mode int

const (
	// ModeDisabled means the item contributes no template-derived document.
	ModeDisabled Mode = iota
	// ModeDynamic means the per-type template applies.
	ModeDynamic
	// ModeIndividual means the item's own stored schema applies.
	ModeIndividual
)

// String returns a human-readable mode name for logs.
func (m Mode) String() string {
	switch m {
	case ModeDynamic:
		return "dynamic"
	case ModeIndividual:
		return "individual"
	default:
		return "disabled"
	}
}

// Resolution is the decision for one item: which mode applies and, when
// not disabled, the raw template to render.
type Resolution struct {
	Mode     Mode
	Template string
}

// ModeResolver decides, per content type and item, whether schema markup
// applies and in which mode. Every call re-reads configuration fresh;
// there is no cached state.
type ModeResolver struct {
	config  ConfigStore
	schemas ItemSchemas
}

// NewModeResolver returns a ModeResolver over the given stores.
func NewModeResolver(config ConfigStore, schemas ItemSchemas) *ModeResolver {
	return &ModeResolver{config: config, schemas: schemas}
}

// bucketKey returns the enabled-items map key for a content type. Pages
// and posts have their own buckets; every other type shares one.
func bucketKey(contentType string) string {
	switch contentType {
	case "page":
		return KeyEnabledPages
	case "post":
		return KeyEnabledPosts
	default:
		return KeyEnabledItems
	}
}

// Resolve runs the per-type state machine:
//
//  1. Type absent from the enabled-types map, or present without "1",
//     resolves Disabled.
//  2. Mode defaults to individual when the mode map has no entry.
//  3. Dynamic mode with an empty or missing per-type template resolves
//     Disabled — this is also the safety net for a partially applied
//     template write.
//  4. Individual mode consults the type's item bucket. An empty bucket
//     allows every item (enabling a type without touching per-item
//     checkboxes shows the feature everywhere); once any item is toggled
//     the bucket is authoritative and unlisted items are excluded.
func (r *ModeResolver) Resolve(contentType string, itemID int64) (Resolution, error) {
	enabled, err := r.config.Map(KeyEnabledTypes)
	if err != nil {
		return Resolution{}, fmt.Errorf("read enabled types: %w", err)
	}
	if enabled[contentType] != "1" {
		return Resolution{Mode: ModeDisabled}, nil
	}

	modes, err := r.config.Map(KeyModeByType)
	if err != nil {
		return Resolution{}, fmt.Errorf("read modes: %w", err)
	}
	mode := modes[contentType]
	if mode == "" {
		mode = ModeIndividualValue
	}

	if mode == ModeDynamicValue {
		templates, err := r.config.Map(KeyDynamicTemplates)
		if err != nil {
			return Resolution{}, fmt.Errorf("read dynamic templates: %w", err)
		}
		tmpl := templates[contentType]
		if tmpl == "" {
			return Resolution{Mode: ModeDisabled}, nil
		}
		return Resolution{Mode: ModeDynamic, Template: tmpl}, nil
	}

	bucket, err := r.config.Map(bucketKey(contentType))
	if err != nil {
		return Resolution{}, fmt.Errorf("read item bucket: %w", err)
	}
	if len(bucket) > 0 && bucket[strconv.FormatInt(itemID, 10)] != "1" {
		return Resolution{Mode: ModeDisabled}, nil
	}

	tmpl, err := r.schemas.ItemSchema(itemID)
	if err != nil {
		return Resolution{}, fmt.Errorf("read item schema: %w", err)
	}
	return Resolution{Mode: ModeIndividual, Template: tmpl}, nil
}
