// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package schema implements the JSON-LD structured data pipeline: a closed
// catalog of {{token}} placeholders, field resolution from content and site
// data, literal template substitution, JSON validation, per-type mode
// resolution, and the per-request emission orchestrator.
package schema

import (
	"net/url"
	"strings"
)

// Placeholder token names. The set is closed: templates may only reference
// these sixteen tokens, and anything else between double braces is passed
// through untouched.
const (
	TokenPostTitle         = "post_title"
	TokenPostExcerpt       = "post_excerpt"
	TokenPostDate          = "post_date"
	TokenPostModified      = "post_modified"
	TokenPostURL           = "post_url"
	TokenAuthorName        = "author_name"
	TokenAuthorURL         = "author_url"
	TokenFeaturedImage     = "featured_image"
	TokenSiteName          = "site_name"
	TokenSiteURL           = "site_url"
	TokenSiteDescription   = "site_description"
	TokenSiteLogo          = "site_logo"
	TokenPostCategory      = "post_category"
	TokenPostCategoryFirst = "post_category_first"
	TokenPostTags          = "post_tags"
	TokenPostID            = "post_id"
)

// Tokens lists every recognized placeholder token.
var Tokens = []string{
	TokenPostTitle,
	TokenPostExcerpt,
	TokenPostDate,
	TokenPostModified,
	TokenPostURL,
	TokenAuthorName,
	TokenAuthorURL,
	TokenFeaturedImage,
	TokenSiteName,
	TokenSiteURL,
	TokenSiteDescription,
	TokenSiteLogo,
	TokenPostCategory,
	TokenPostCategoryFirst,
	TokenPostTags,
	TokenPostID,
}

// Fields maps placeholder token names to their resolved, escaped values.
// A resolved Fields always carries every catalog token; missing source
// data resolves to the empty string, never to an absent key.
type Fields map[string]string

// htmlEscaper escapes the five characters that must not appear raw inside
// a JSON string destined for an HTML document. Entity names match the
// output the admin sees from typical CMS escaping, so "Hello \"World\""
// becomes "Hello &quot;World&quot;".
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML escapes a text value for a JSON string position.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// EscapeURL normalizes a value destined for a URL position. Only http and
// https URLs survive; anything unparseable or with another scheme resolves
// to the empty string so a bad value can never smuggle markup into output.
func EscapeURL(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	u, err := url.Parse(s)
	if err != nil {
		return ""
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	return u.String()
}
