// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"testing"

	"github.com/dexit/custom-schema-box-generator/internal/schema"
)

func TestNormalizeSettingMapFlags(t *testing.T) {
	in := map[string]string{
		"post":    "true",
		"page":    "1",
		"product": "on",
		"event":   "yes",
		"movie":   "0",
		"junk":    "whatever",
	}

	out, problem := normalizeSettingMap(schema.KeyEnabledTypes, in)
	if problem != "" {
		t.Fatalf("unexpected problem: %s", problem)
	}

	want := map[string]string{
		"post": "1", "page": "1", "product": "1", "event": "1",
		"movie": "0", "junk": "0",
	}
	for k, v := range want {
		if out[k] != v {
			t.Errorf("%s = %q, want %q", k, out[k], v)
		}
	}
}

func TestNormalizeSettingMapModes(t *testing.T) {
	out, problem := normalizeSettingMap(schema.KeyModeByType, map[string]string{
		"post": "dynamic",
		"page": "individual",
	})
	if problem != "" {
		t.Fatalf("unexpected problem: %s", problem)
	}
	if out["post"] != "dynamic" || out["page"] != "individual" {
		t.Errorf("modes mangled: %v", out)
	}

	if _, problem := normalizeSettingMap(schema.KeyModeByType, map[string]string{
		"post": "automatic",
	}); problem == "" {
		t.Error("unknown mode value must be rejected")
	}
}

func TestNormalizeSettingMapTemplatesKeptVerbatim(t *testing.T) {
	src := `{"headline": "{{post_title}}"}`
	out, problem := normalizeSettingMap(schema.KeyDynamicTemplates, map[string]string{"post": src})
	if problem != "" {
		t.Fatalf("unexpected problem: %s", problem)
	}
	if out["post"] != src {
		t.Errorf("template text altered: %q", out["post"])
	}
}

func TestSettingsMapsCoverEveryConfigKey(t *testing.T) {
	want := map[string]bool{
		schema.KeyEnabledTypes:     false,
		schema.KeyModeByType:       false,
		schema.KeyDynamicTemplates: false,
		schema.KeyEnabledPages:     false,
		schema.KeyEnabledPosts:     false,
		schema.KeyEnabledItems:     false,
		schema.KeyEnabledFeatures:  false,
	}
	for _, storageKey := range settingsMaps {
		if _, ok := want[storageKey]; !ok {
			t.Errorf("unexpected storage key %q", storageKey)
		}
		want[storageKey] = true
	}
	for key, seen := range want {
		if !seen {
			t.Errorf("config key %q is not exposed by the admin API", key)
		}
	}
}
