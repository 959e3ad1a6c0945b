// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package schema

import (
	"sort"
	"strings"
)

const schemaContext = "https://schema.org"

// ItemContext carries the raw (unescaped) item and site fields handed to
// feature generators. Generators build Go values that are JSON-marshalled
// on emission, so JSON encoding handles all escaping.
type ItemContext struct {
	Item ItemFields
	Site SiteFields
}

// Generator derives a JSON-LD document from the current item context.
// Returning nil means the feature has nothing to contribute.
type Generator func(ctx *ItemContext) map[string]any

// FeatureRegistry maps feature names to their generators. Lookup is
// case-insensitive; registration lower-cases the key.
type FeatureRegistry struct {
	generators map[string]Generator
}

// Register adds or replaces a generator under the given name.
func (r *FeatureRegistry) Register(name string, fn Generator) {
	r.generators[strings.ToLower(name)] = fn
}

// Generate invokes the generator registered under name. The second return
// is false for unknown or retired feature names, which callers skip
// silently.
func (r *FeatureRegistry) Generate(name string, ctx *ItemContext) (map[string]any, bool) {
	fn, ok := r.generators[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	doc := fn(ctx)
	if doc == nil {
		return nil, false
	}
	return doc, true
}

// Names returns the registered feature names in sorted order, for the
// admin catalog listing.
func (r *FeatureRegistry) Names() []string {
	names := make([]string, 0, len(r.generators))
	for name := range r.generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// image returns the item's featured image, falling back to the site logo.
func image(ctx *ItemContext) string {
	if ctx.Item.ImageURL != "" {
		return ctx.Item.ImageURL
	}
	return ctx.Site.LogoURL
}

// organization builds the site's Organization node, reused by several
// generators as publisher or provider.
func organization(ctx *ItemContext) map[string]any {
	return map[string]any{
		"@context": schemaContext,
		"@type":    "Organization",
		"name":     ctx.Site.Name,
		"url":      ctx.Site.URL,
		"logo": map[string]any{
			"@type": "ImageObject",
			"url":   ctx.Site.LogoURL,
		},
	}
}

// person builds the author Person node.
func person(ctx *ItemContext) map[string]any {
	return map[string]any{
		"@type": "Person",
		"name":  ctx.Item.AuthorName,
	}
}

// NewFeatureRegistry returns a registry pre-populated with the full canned
// feature catalog. Each generator maps current item and site fields into
// one Google rich-result type; none of them reads template text.
func NewFeatureRegistry() *FeatureRegistry {
	r := &FeatureRegistry{generators: make(map[string]Generator)}

	r.Register("Article", func(ctx *ItemContext) map[string]any {
		return map[string]any{
			"@context":      schemaContext,
			"@type":         "Article",
			"headline":      ctx.Item.Title,
			"description":   ctx.Item.Excerpt,
			"image":         image(ctx),
			"datePublished": ctx.Item.PublishedAt,
			"dateModified":  ctx.Item.ModifiedAt,
			"author": map[string]any{
				"@type": "Person",
				"name":  ctx.Item.AuthorName,
				"url":   ctx.Item.AuthorURL,
			},
			"publisher": organization(ctx),
		}
	})

	r.Register("Book", func(ctx *ItemContext) map[string]any {
		return map[string]any{
			"@context": schemaContext,
			"@type":    "Book",
			"name":     ctx.Item.Title,
			"author":   person(ctx),
			"image":    image(ctx),
		}
	})

	r.Register("Breadcrumb", func(ctx *ItemContext) map[string]any {
		items := []map[string]any{{
			"@type":    "ListItem",
			"position": 1,
			"name":     "Home",
			"item":     ctx.Site.URL,
		}}
		if ctx.Item.URL != "" {
			items = append(items, map[string]any{
				"@type":    "ListItem",
				"position": 2,
				"name":     ctx.Item.Title,
				"item":     ctx.Item.URL,
			})
		}
		return map[string]any{
			"@context":        schemaContext,
			"@type":           "BreadcrumbList",
			"itemListElement": items,
		}
	})

	r.Register("Carousel", func(ctx *ItemContext) map[string]any {
		return map[string]any{
			"@context":        schemaContext,
			"@type":           "ItemList",
			"itemListElement": []any{},
		}
	})

	r.Register("Course", func(ctx *ItemContext) map[string]any {
		return map[string]any{
			"@context":    schemaContext,
			"@type":       "Course",
			"name":        ctx.Item.Title,
			"description": ctx.Item.Excerpt,
			"provider":    organization(ctx),
		}
	})

	r.Register("Dataset", func(ctx *ItemContext) map[string]any {
		return map[string]any{
			"@context":    schemaContext,
			"@type":       "Dataset",
			"name":        ctx.Item.Title,
			"description": ctx.Item.Excerpt,
			"license":     "https://creativecommons.org/licenses/by/4.0/",
		}
	})

	r.Register("DiscussionForumPosting", func(ctx *ItemContext) map[string]any {
		return map[string]any{
			"@context":      schemaContext,
			"@type":         "DiscussionForumPosting",
			"headline":      ctx.Item.Title,
			"author":        person(ctx),
			"datePublished": ctx.Item.PublishedAt,
		}
	})

	r.Register("Quiz", func(ctx *ItemContext) map[string]any {
		return map[string]any{
			"@context": schemaContext,
			"@type":    "Quiz",
			"name":     ctx.Item.Title,
			"hasPart":  []any{},
		}
	})

	r.Register("EmployerAggregateRating", func(ctx *ItemContext) map[string]any {
		return map[string]any{
			"@context":     schemaContext,
			"@type":        "EmployerAggregateRating",
			"itemReviewed": organization(ctx),
			"ratingValue":  "4.5",
			"ratingCount":  "10",
		}
	})

	r.Register("FactCheck", func(ctx *ItemContext) map[string]any {
		return map[string]any{
			"@context":      schemaContext,
			"@type":         "ClaimReview",
			"url":           ctx.Item.URL,
			"claimReviewed": ctx.Item.Title,
			"reviewRating": map[string]any{
				"@type":         "Rating",
				"ratingValue":   "3",
				"bestRating":    "5",
				"alternateName": "Mostly True",
			},
		}
	})

	r.Register("Event", func(ctx *ItemContext) map[string]any {
		return map[string]any{
			"@context":  schemaContext,
			"@type":     "Event",
			"name":      ctx.Item.Title,
			"startDate": ctx.Item.PublishedAt,
			"location": map[string]any{
				"@type": "VirtualLocation",
				"url":   ctx.Item.URL,
			},
			"image": image(ctx),
		}
	})

	r.Register("FAQPage", func(ctx *ItemContext) map[string]any {
		return map[string]any{
			"@context":   schemaContext,
			"@type":      "FAQPage",
			"mainEntity": []any{},
		}
	})

	r.Register("ImageObject", func(ctx *ItemContext) map[string]any {
		return map[string]any{
			"@context":   schemaContext,
			"@type":      "ImageObject",
			"contentUrl": image(ctx),
			"creator":    person(ctx),
			"creditText": ctx.Site.Name,
		}
	})

	r.Register("JobPosting", func(ctx *ItemContext) map[string]any {
		return map[string]any{
			"@context":           schemaContext,
			"@type":              "JobPosting",
			"title":              ctx.Item.Title,
			"datePosted":         ctx.Item.PublishedAt,
			"hiringOrganization": organization(ctx),
		}
	})

	r.Register("LocalBusiness", func(ctx *ItemContext) map[string]any {
		return map[string]any{
			"@context":  schemaContext,
			"@type":     "LocalBusiness",
			"name":      ctx.Site.Name,
			"image":     image(ctx),
			"url":       ctx.Site.URL,
			"telephone": "",
		}
	})

	r.Register("MathSolver", func(ctx *ItemContext) map[string]any {
		return map[string]any{
			"@context": schemaContext,
			"@type":    "MathSolver",
			"name":     ctx.Item.Title,
		}
	})

	r.Register("Movie", func(ctx *ItemContext) map[string]any {
		return map[string]any{
			"@context": schemaContext,
			"@type":    "Movie",
			"name":     ctx.Item.Title,
			"image":    image(ctx),
		}
	})

	r.Register("Organization", organization)

	r.Register("Product", func(ctx *ItemContext) map[string]any {
		return map[string]any{
			"@context":    schemaContext,
			"@type":       "Product",
			"name":        ctx.Item.Title,
			"image":       image(ctx),
			"description": ctx.Item.Excerpt,
		}
	})

	r.Register("ProfilePage", func(ctx *ItemContext) map[string]any {
		return map[string]any{
			"@context": schemaContext,
			"@type":    "ProfilePage",
			"mainEntity": map[string]any{
				"@type": "Person",
				"name":  ctx.Item.AuthorName,
				"url":   ctx.Item.AuthorURL,
			},
		}
	})

	r.Register("QAPage", func(ctx *ItemContext) map[string]any {
		return map[string]any{
			"@context": schemaContext,
			"@type":    "QAPage",
			"mainEntity": map[string]any{
				"@type":           "Question",
				"name":            ctx.Item.Title,
				"suggestedAnswer": []any{},
			},
		}
	})

	r.Register("Recipe", func(ctx *ItemContext) map[string]any {
		return map[string]any{
			"@context": schemaContext,
			"@type":    "Recipe",
			"name":     ctx.Item.Title,
			"image":    image(ctx),
			"author":   person(ctx),
		}
	})

	r.Register("Review", func(ctx *ItemContext) map[string]any {
		return map[string]any{
			"@context": schemaContext,
			"@type":    "Review",
			"itemReviewed": map[string]any{
				"@type": "Thing",
				"name":  ctx.Item.Title,
			},
			"author": person(ctx),
			"reviewRating": map[string]any{
				"@type":       "Rating",
				"ratingValue": "5",
			},
		}
	})

	r.Register("SoftwareApplication", func(ctx *ItemContext) map[string]any {
		return map[string]any{
			"@context":            schemaContext,
			"@type":               "SoftwareApplication",
			"name":                ctx.Item.Title,
			"operatingSystem":     "Windows, OSX, Linux",
			"applicationCategory": "BusinessApplication",
			"offers": map[string]any{
				"@type":         "Offer",
				"price":         "0",
				"priceCurrency": "USD",
			},
		}
	})

	r.Register("SpeakableSpecification", func(ctx *ItemContext) map[string]any {
		return map[string]any{
			"@context": schemaContext,
			"@type":    "WebPage",
			"speakable": map[string]any{
				"@type": "SpeakableSpecification",
				"xpath": []any{
					"/html/head/title",
					"/html/body/h1",
				},
			},
		}
	})

	r.Register("Subscription", func(ctx *ItemContext) map[string]any {
		return map[string]any{
			"@context":            schemaContext,
			"@type":               "NewsArticle",
			"headline":            ctx.Item.Title,
			"isAccessibleForFree": "False",
			"hasPart": map[string]any{
				"@type":               "WebPageElement",
				"isAccessibleForFree": "False",
				"cssSelector":         ".paywall",
			},
		}
	})

	r.Register("VacationRental", func(ctx *ItemContext) map[string]any {
		return map[string]any{
			"@context": schemaContext,
			"@type":    "VacationRental",
			"name":     ctx.Item.Title,
			"image":    image(ctx),
		}
	})

	r.Register("VideoObject", func(ctx *ItemContext) map[string]any {
		return map[string]any{
			"@context":     schemaContext,
			"@type":        "VideoObject",
			"name":         ctx.Item.Title,
			"description":  ctx.Item.Excerpt,
			"thumbnailUrl": image(ctx),
			"uploadDate":   ctx.Item.PublishedAt,
		}
	})

	r.Register("MedicalCondition", func(ctx *ItemContext) map[string]any {
		return map[string]any{
			"@context":    schemaContext,
			"@type":       "MedicalCondition",
			"name":        ctx.Item.Title,
			"description": ctx.Item.Excerpt,
			"possibleTreatment": map[string]any{
				"@type": "MedicalTherapy",
				"name":  "See a Doctor",
			},
		}
	})

	return r
}
