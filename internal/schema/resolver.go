// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package schema

import (
	"strconv"
	"strings"
)

// ItemFields is the read-only view of a content item consumed by the
// resolver. Timestamps are ISO-8601 strings; Categories and Tags hold
// term names in display order.
type ItemFields struct {
	ID          int64
	Type        string
	Title       string
	Excerpt     string
	PublishedAt string
	ModifiedAt  string
	URL         string
	AuthorName  string
	AuthorURL   string
	ImageURL    string // empty when the item has no featured image
	Categories  []string
	Tags        []string
}

// SiteFields is the read-only view of site-level data.
type SiteFields struct {
	Name    string
	URL     string
	Tagline string
	LogoURL string
}

// ResolveFields produces the value for every catalog token from the given
// item and site data. Text values are HTML-escaped and URL values are
// normalized; data the item doesn't have resolves to the empty string.
// The function is pure: same inputs, same output, no side effects.
func ResolveFields(item *ItemFields, site *SiteFields) Fields {
	if item == nil {
		item = &ItemFields{}
	}
	if site == nil {
		site = &SiteFields{}
	}

	first := ""
	if len(item.Categories) > 0 {
		first = item.Categories[0]
	}

	return Fields{
		TokenPostTitle:         EscapeHTML(item.Title),
		TokenPostExcerpt:       EscapeHTML(item.Excerpt),
		TokenPostDate:          item.PublishedAt,
		TokenPostModified:      item.ModifiedAt,
		TokenPostURL:           EscapeURL(item.URL),
		TokenAuthorName:        EscapeHTML(item.AuthorName),
		TokenAuthorURL:         EscapeURL(item.AuthorURL),
		TokenFeaturedImage:     EscapeURL(item.ImageURL),
		TokenSiteName:          EscapeHTML(site.Name),
		TokenSiteURL:           EscapeURL(site.URL),
		TokenSiteDescription:   EscapeHTML(site.Tagline),
		TokenSiteLogo:          EscapeURL(site.LogoURL),
		TokenPostCategory:      EscapeHTML(strings.Join(item.Categories, ", ")),
		TokenPostCategoryFirst: EscapeHTML(first),
		TokenPostTags:          EscapeHTML(strings.Join(item.Tags, ", ")),
		TokenPostID:            strconv.FormatInt(item.ID, 10),
	}
}
