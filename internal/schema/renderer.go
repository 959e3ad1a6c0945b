// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package schema

import "strings"

// Render replaces every literal {{token}} occurrence in the template with
// its resolved value. Substitution is a single non-overlapping left-to-right
// pass: replaced values are never re-scanned, so a field value that happens
// to contain {{other_token}} text stays inert. Unknown {{...}} sequences
// pass through unchanged, and no conditionals, loops, or nesting exist —
// the template language is exactly the sixteen catalog tokens.
func Render(template string, fields Fields) string {
	if len(fields) == 0 || !strings.Contains(template, "{{") {
		return template
	}

	pairs := make([]string, 0, len(fields)*2)
	for token, value := range fields {
		pairs = append(pairs, "{{"+token+"}}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
