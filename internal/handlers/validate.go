// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"github.com/dexit/custom-schema-box-generator/internal/schema"
)

// settingsMaps names the configuration maps the admin API exposes, keyed
// by the short name used in the URL.
var settingsMaps = map[string]string{
	"enabled-types":     schema.KeyEnabledTypes,
	"mode-by-type":      schema.KeyModeByType,
	"dynamic-templates": schema.KeyDynamicTemplates,
	"enabled-pages":     schema.KeyEnabledPages,
	"enabled-posts":     schema.KeyEnabledPosts,
	"enabled-items":     schema.KeyEnabledItems,
	"enabled-features":  schema.KeyEnabledFeatures,
}

// flagMaps holds the maps whose values are on/off flags.
var flagMaps = map[string]bool{
	schema.KeyEnabledTypes:    true,
	schema.KeyEnabledPages:    true,
	schema.KeyEnabledPosts:    true,
	schema.KeyEnabledItems:    true,
	schema.KeyEnabledFeatures: true,
}

// normalizeSettingMap coerces submitted values into the stored form and
// reports the first invalid entry. Flag maps store "1" or "0"; the mode
// map accepts only the two known mode values; template sources are kept
// verbatim (placeholders make them invalid JSON until rendered, so no
// JSON check applies here).
func normalizeSettingMap(storageKey string, m map[string]string) (map[string]string, string) {
	out := make(map[string]string, len(m))

	if flagMaps[storageKey] {
		for k, v := range m {
			switch v {
			case "1", "true", "on", "yes":
				out[k] = "1"
			default:
				out[k] = "0"
			}
		}
		return out, ""
	}

	if storageKey == schema.KeyModeByType {
		for k, v := range m {
			if v != schema.ModeIndividualValue && v != schema.ModeDynamicValue {
				return nil, "mode for " + k + " must be \"individual\" or \"dynamic\""
			}
			out[k] = v
		}
		return out, ""
	}

	for k, v := range m {
		out[k] = v
	}
	return out, ""
}
