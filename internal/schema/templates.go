// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package schema

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownTemplate reports an apply-template request for a catalog ID
// that does not exist.
var ErrUnknownTemplate = errors.New("unknown schema template")

// Template is one entry of the named schema template catalog. Schema holds
// the JSON-LD structure with {{token}} placeholders in its string values;
// administrators apply it to a content type or load it into an item's
// individual schema box as a starting point.
type Template struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Type        string         `json:"type"`
	Description string         `json:"description"`
	Schema      map[string]any `json:"schema"`
}

// JSON returns the template's schema as indented JSON text, the form
// stored into the dynamic-template configuration map.
func (t *Template) JSON() (string, error) {
	out, err := json.MarshalIndent(t.Schema, "", "    ")
	if err != nil {
		return "", fmt.Errorf("encode template %s: %w", t.ID, err)
	}
	return string(out), nil
}

// ApplyTemplate switches a content type to dynamic mode using the named
// catalog template. It performs three configuration writes in a fixed
// order: mode, then template, then the enabled flag. Should a failure
// interrupt the sequence, a type left in dynamic mode without a template
// resolves Disabled, so a partial write never emits broken markup.
func ApplyTemplate(config ConfigStore, templateID, contentType string) error {
	tmpl, ok := Templates[templateID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTemplate, templateID)
	}

	text, err := tmpl.JSON()
	if err != nil {
		return err
	}

	if err := setMapEntry(config, KeyModeByType, contentType, ModeDynamicValue); err != nil {
		return fmt.Errorf("apply template: set mode: %w", err)
	}
	if err := setMapEntry(config, KeyDynamicTemplates, contentType, text); err != nil {
		return fmt.Errorf("apply template: set template: %w", err)
	}
	if err := setMapEntry(config, KeyEnabledTypes, contentType, "1"); err != nil {
		return fmt.Errorf("apply template: enable type: %w", err)
	}
	return nil
}

// setMapEntry reads a configuration map, updates one entry, and writes the
// map back.
func setMapEntry(config ConfigStore, key, entry, value string) error {
	m, err := config.Map(key)
	if err != nil {
		return err
	}
	if m == nil {
		m = make(map[string]string)
	}
	m[entry] = value
	return config.SetMap(key, m)
}

// Templates is the named schema template catalog, keyed by template ID.
var Templates = map[string]*Template{
	"article": {
		ID:          "article",
		Name:        "Article",
		Type:        "Article",
		Description: "For blog posts, news articles, and editorial content.",
		Schema: map[string]any{
			"@context":    schemaContext,
			"@type":       "Article",
			"headline":    "{{post_title}}",
			"description": "{{post_excerpt}}",
			"image":       "{{featured_image}}",
			"author": map[string]any{
				"@type": "Person",
				"name":  "{{author_name}}",
				"url":   "{{author_url}}",
			},
			"publisher": map[string]any{
				"@type": "Organization",
				"name":  "{{site_name}}",
				"logo": map[string]any{
					"@type": "ImageObject",
					"url":   "{{site_logo}}",
				},
			},
			"datePublished": "{{post_date}}",
			"dateModified":  "{{post_modified}}",
			"mainEntityOfPage": map[string]any{
				"@type": "WebPage",
				"@id":   "{{post_url}}",
			},
		},
	},
	"product": {
		ID:          "product",
		Name:        "Product",
		Type:        "Product",
		Description: "For e-commerce product pages with pricing and availability.",
		Schema: map[string]any{
			"@context":    schemaContext,
			"@type":       "Product",
			"name":        "{{post_title}}",
			"image":       "{{featured_image}}",
			"description": "{{post_excerpt}}",
			"brand": map[string]any{
				"@type": "Brand",
				"name":  "Brand Name",
			},
			"offers": map[string]any{
				"@type":         "Offer",
				"url":           "{{post_url}}",
				"priceCurrency": "USD",
				"price":         "99.99",
				"availability":  "https://schema.org/InStock",
			},
		},
	},
	"local_business": {
		ID:          "local_business",
		Name:        "Local Business",
		Type:        "LocalBusiness",
		Description: "For local businesses with physical location and contact info.",
		Schema: map[string]any{
			"@context": schemaContext,
			"@type":    "LocalBusiness",
			"name":     "Business Name",
			"image":    "{{featured_image}}",
			"address": map[string]any{
				"@type":           "PostalAddress",
				"streetAddress":   "123 Main Street",
				"addressLocality": "City",
				"addressRegion":   "State",
				"postalCode":      "12345",
				"addressCountry":  "US",
			},
			"telephone":    "+1-555-555-5555",
			"url":          "{{post_url}}",
			"openingHours": "Mo-Fr 09:00-17:00",
		},
	},
	"faq": {
		ID:          "faq",
		Name:        "FAQ",
		Type:        "FAQPage",
		Description: "For FAQ pages with questions and answers.",
		Schema: map[string]any{
			"@context": schemaContext,
			"@type":    "FAQPage",
			"mainEntity": []any{
				map[string]any{
					"@type": "Question",
					"name":  "What is your return policy?",
					"acceptedAnswer": map[string]any{
						"@type": "Answer",
						"text":  "We offer a 30-day return policy on all products.",
					},
				},
				map[string]any{
					"@type": "Question",
					"name":  "How long does shipping take?",
					"acceptedAnswer": map[string]any{
						"@type": "Answer",
						"text":  "Standard shipping takes 5-7 business days.",
					},
				},
			},
		},
	},
	"howto": {
		ID:          "howto",
		Name:        "How-To",
		Type:        "HowTo",
		Description: "For step-by-step guides and tutorials.",
		Schema: map[string]any{
			"@context":    schemaContext,
			"@type":       "HowTo",
			"name":        "{{post_title}}",
			"description": "{{post_excerpt}}",
			"image":       "{{featured_image}}",
			"totalTime":   "PT30M",
			"step": []any{
				map[string]any{
					"@type": "HowToStep",
					"name":  "Step 1",
					"text":  "Description of step 1",
					"image": "{{featured_image}}",
				},
				map[string]any{
					"@type": "HowToStep",
					"name":  "Step 2",
					"text":  "Description of step 2",
					"image": "{{featured_image}}",
				},
			},
		},
	},
	"recipe": {
		ID:          "recipe",
		Name:        "Recipe",
		Type:        "Recipe",
		Description: "For cooking recipes with ingredients and instructions.",
		Schema: map[string]any{
			"@context": schemaContext,
			"@type":    "Recipe",
			"name":     "{{post_title}}",
			"image":    "{{featured_image}}",
			"author": map[string]any{
				"@type": "Person",
				"name":  "{{author_name}}",
				"url":   "{{author_url}}",
			},
			"datePublished":  "{{post_date}}",
			"dateModified":   "{{post_modified}}",
			"description":    "{{post_excerpt}}",
			"prepTime":       "PT20M",
			"cookTime":       "PT30M",
			"totalTime":      "PT50M",
			"recipeYield":    "4 servings",
			"recipeCategory": "{{post_category_first}}",
			"keywords":       "{{post_tags}}",
			"recipeIngredient": []any{
				"2 cups flour",
				"1 cup sugar",
				"3 eggs",
			},
			"recipeInstructions": []any{
				map[string]any{"@type": "HowToStep", "text": "Mix flour and sugar"},
				map[string]any{"@type": "HowToStep", "text": "Add eggs and mix well"},
			},
		},
	},
	"event": {
		ID:          "event",
		Name:        "Event",
		Type:        "Event",
		Description: "For events, conferences, and webinars.",
		Schema: map[string]any{
			"@context":    schemaContext,
			"@type":       "Event",
			"name":        "{{post_title}}",
			"description": "{{post_excerpt}}",
			"image":       "{{featured_image}}",
			"startDate":   "2025-12-01T19:00:00",
			"endDate":     "2025-12-01T22:00:00",
			"location": map[string]any{
				"@type": "Place",
				"name":  "Event Venue",
				"address": map[string]any{
					"@type":           "PostalAddress",
					"streetAddress":   "123 Event Street",
					"addressLocality": "City",
					"addressRegion":   "State",
					"postalCode":      "12345",
					"addressCountry":  "US",
				},
			},
			"offers": map[string]any{
				"@type":         "Offer",
				"url":           "{{post_url}}",
				"price":         "50.00",
				"priceCurrency": "USD",
				"availability":  "https://schema.org/InStock",
			},
		},
	},
	"video": {
		ID:          "video",
		Name:        "Video",
		Type:        "VideoObject",
		Description: "For video content with duration and thumbnail.",
		Schema: map[string]any{
			"@context":     schemaContext,
			"@type":        "VideoObject",
			"name":         "{{post_title}}",
			"description":  "{{post_excerpt}}",
			"thumbnailUrl": "{{featured_image}}",
			"uploadDate":   "{{post_date}}",
			"duration":     "PT5M30S",
			"contentUrl":   "YOUR_VIDEO_URL",
			"embedUrl":     "YOUR_EMBED_URL",
		},
	},
	"organization": {
		ID:          "organization",
		Name:        "Organization",
		Type:        "Organization",
		Description: "For company/organization information.",
		Schema: map[string]any{
			"@context":    schemaContext,
			"@type":       "Organization",
			"name":        "{{site_name}}",
			"url":         "{{site_url}}",
			"logo":        "{{site_logo}}",
			"description": "{{site_description}}",
			"contactPoint": map[string]any{
				"@type":       "ContactPoint",
				"telephone":   "+1-555-555-5555",
				"contactType": "Customer Service",
			},
			"sameAs": []any{
				"https://facebook.com/yourpage",
				"https://twitter.com/yourhandle",
				"https://linkedin.com/company/yourcompany",
			},
		},
	},
	"breadcrumb": {
		ID:          "breadcrumb",
		Name:        "Breadcrumb",
		Type:        "BreadcrumbList",
		Description: "For navigation breadcrumbs.",
		Schema: map[string]any{
			"@context": schemaContext,
			"@type":    "BreadcrumbList",
			"itemListElement": []any{
				map[string]any{
					"@type":    "ListItem",
					"position": 1,
					"name":     "Home",
					"item":     "{{site_url}}",
				},
				map[string]any{
					"@type":    "ListItem",
					"position": 2,
					"name":     "Category",
					"item":     "{{site_url}}/category",
				},
				map[string]any{
					"@type":    "ListItem",
					"position": 3,
					"name":     "{{post_title}}",
					"item":     "{{post_url}}",
				},
			},
		},
	},
	"review": {
		ID:          "review",
		Name:        "Review",
		Type:        "Review",
		Description: "For product or service reviews with ratings.",
		Schema: map[string]any{
			"@context": schemaContext,
			"@type":    "Review",
			"itemReviewed": map[string]any{
				"@type": "Thing",
				"name":  "{{post_title}}",
			},
			"reviewRating": map[string]any{
				"@type":       "Rating",
				"ratingValue": "4.5",
				"bestRating":  "5",
			},
			"author": map[string]any{
				"@type": "Person",
				"name":  "{{author_name}}",
			},
			"publisher": map[string]any{
				"@type": "Organization",
				"name":  "{{site_name}}",
			},
		},
	},
	"course": {
		ID:          "course",
		Name:        "Course",
		Type:        "Course",
		Description: "For online courses and educational content.",
		Schema: map[string]any{
			"@context":    schemaContext,
			"@type":       "Course",
			"description": "{{post_excerpt}}",
			"name":        "{{post_title}}",
			"provider": map[string]any{
				"@type": "Organization",
				"name":  "{{site_name}}",
				"url":   "{{site_url}}",
			},
			"offers": map[string]any{
				"@type":         "Offer",
				"price":         "0",
				"priceCurrency": "USD",
			},
			"hasCourseInstance": map[string]any{
				"@type":      "CourseInstance",
				"courseMode": "online",
			},
		},
	},
	"job_posting": {
		ID:          "job_posting",
		Name:        "Job Posting",
		Type:        "JobPosting",
		Description: "For job listings and career pages.",
		Schema: map[string]any{
			"@context":    schemaContext,
			"@type":       "JobPosting",
			"title":       "{{post_title}}",
			"description": "{{post_excerpt}}",
			"datePosted":  "{{post_date}}",
			"hiringOrganization": map[string]any{
				"@type": "Organization",
				"name":  "{{site_name}}",
				"url":   "{{site_url}}",
			},
			"jobLocation": map[string]any{
				"@type": "Place",
				"address": map[string]any{
					"@type":           "PostalAddress",
					"streetAddress":   "123 Work Street",
					"addressLocality": "City",
					"addressRegion":   "State",
					"postalCode":      "12345",
					"addressCountry":  "US",
				},
			},
			"employmentType": "FULL_TIME",
			"baseSalary": map[string]any{
				"@type":    "MonetaryAmount",
				"currency": "USD",
				"value": map[string]any{
					"@type":    "QuantitativeValue",
					"value":    "50000",
					"unitText": "YEAR",
				},
			},
		},
	},
	"book": {
		ID:          "book",
		Name:        "Book",
		Type:        "Book",
		Description: "For book pages and reviews.",
		Schema: map[string]any{
			"@context": schemaContext,
			"@type":    "Book",
			"name":     "{{post_title}}",
			"author": map[string]any{
				"@type": "Person",
				"name":  "{{author_name}}",
			},
			"image": "{{featured_image}}",
			"publisher": map[string]any{
				"@type": "Organization",
				"name":  "Publisher Name",
			},
		},
	},
	"software": {
		ID:          "software",
		Name:        "Software Application",
		Type:        "SoftwareApplication",
		Description: "For software, apps, and digital tools.",
		Schema: map[string]any{
			"@context":            schemaContext,
			"@type":               "SoftwareApplication",
			"name":                "{{post_title}}",
			"operatingSystem":     "Windows, OSX, Linux",
			"applicationCategory": "BusinessApplication",
			"offers": map[string]any{
				"@type":         "Offer",
				"price":         "0",
				"priceCurrency": "USD",
			},
			"aggregateRating": map[string]any{
				"@type":       "AggregateRating",
				"ratingValue": "4.5",
				"ratingCount": "100",
			},
		},
	},
	"restaurant": {
		ID:          "restaurant",
		Name:        "Restaurant",
		Type:        "Restaurant",
		Description: "For restaurants and food businesses.",
		Schema: map[string]any{
			"@context": schemaContext,
			"@type":    "Restaurant",
			"name":     "{{post_title}}",
			"image":    "{{featured_image}}",
			"address": map[string]any{
				"@type":           "PostalAddress",
				"streetAddress":   "123 Food Street",
				"addressLocality": "City",
				"addressRegion":   "State",
				"postalCode":      "12345",
				"addressCountry":  "US",
			},
			"servesCuisine": "Italian",
			"priceRange":    "$$",
			"telephone":     "+1-555-555-5555",
			"url":           "{{post_url}}",
		},
	},
	"music": {
		ID:          "music",
		Name:        "Music Recording",
		Type:        "MusicRecording",
		Description: "For songs and music recordings.",
		Schema: map[string]any{
			"@context": schemaContext,
			"@type":    "MusicRecording",
			"name":     "{{post_title}}",
			"byArtist": map[string]any{
				"@type": "MusicGroup",
				"name":  "Artist Name",
			},
			"inAlbum": map[string]any{
				"@type": "MusicAlbum",
				"name":  "Album Name",
			},
			"duration": "PT3M30S",
		},
	},
	"podcast": {
		ID:          "podcast",
		Name:        "Podcast",
		Type:        "PodcastEpisode",
		Description: "For podcast episodes.",
		Schema: map[string]any{
			"@context":      schemaContext,
			"@type":         "PodcastEpisode",
			"name":          "{{post_title}}",
			"description":   "{{post_excerpt}}",
			"url":           "{{post_url}}",
			"datePublished": "{{post_date}}",
			"partOfSeries": map[string]any{
				"@type": "PodcastSeries",
				"name":  "YOUR_PODCAST_SERIES_NAME",
				"url":   "{{site_url}}",
			},
			"associatedMedia": map[string]any{
				"@type":      "MediaObject",
				"contentUrl": "YOUR_AUDIO_URL",
			},
		},
	},
	"news_article": {
		ID:          "news_article",
		Name:        "News Article",
		Type:        "NewsArticle",
		Description: "For news and journalism content.",
		Schema: map[string]any{
			"@context":      schemaContext,
			"@type":         "NewsArticle",
			"headline":      "{{post_title}}",
			"description":   "{{post_excerpt}}",
			"image":         "{{featured_image}}",
			"datePublished": "{{post_date}}",
			"dateModified":  "{{post_modified}}",
			"author": map[string]any{
				"@type": "Person",
				"name":  "{{author_name}}",
			},
			"publisher": map[string]any{
				"@type": "Organization",
				"name":  "{{site_name}}",
				"logo": map[string]any{
					"@type": "ImageObject",
					"url":   "{{site_logo}}",
				},
			},
			"mainEntityOfPage": "{{post_url}}",
		},
	},
	"medical": {
		ID:          "medical",
		Name:        "Medical Condition",
		Type:        "MedicalCondition",
		Description: "For health and medical condition pages.",
		Schema: map[string]any{
			"@context":    schemaContext,
			"@type":       "MedicalCondition",
			"name":        "{{post_title}}",
			"description": "{{post_excerpt}}",
			"possibleTreatment": map[string]any{
				"@type": "MedicalTherapy",
				"name":  "Treatment Name",
			},
		},
	},
	"profile": {
		ID:          "profile",
		Name:        "Profile Page (Person)",
		Type:        "ProfilePage",
		Description: "For author and team member profile pages.",
		Schema: map[string]any{
			"@context": schemaContext,
			"@type":    "ProfilePage",
			"mainEntity": map[string]any{
				"@type": "Person",
				"name":  "{{author_name}}",
				"url":   "{{author_url}}",
				"image": "{{featured_image}}",
				"sameAs": []any{
					"https://twitter.com/yourhandle",
				},
			},
		},
	},
	"dataset": {
		ID:          "dataset",
		Name:        "Dataset",
		Type:        "Dataset",
		Description: "For downloadable datasets and research data.",
		Schema: map[string]any{
			"@context":    schemaContext,
			"@type":       "Dataset",
			"name":        "{{post_title}}",
			"description": "{{post_excerpt}}",
			"url":         "{{post_url}}",
			"license":     "https://creativecommons.org/licenses/by/4.0/",
		},
	},
	"movie": {
		ID:          "movie",
		Name:        "Movie",
		Type:        "Movie",
		Description: "For film and movie pages.",
		Schema: map[string]any{
			"@context": schemaContext,
			"@type":    "Movie",
			"name":     "{{post_title}}",
			"image":    "{{featured_image}}",
			"director": map[string]any{
				"@type": "Person",
				"name":  "Director Name",
			},
			"dateCreated": "{{post_date}}",
		},
	},
	"qa": {
		ID:          "qa",
		Name:        "Q&A Page",
		Type:        "QAPage",
		Description: "For question-and-answer pages.",
		Schema: map[string]any{
			"@context": schemaContext,
			"@type":    "QAPage",
			"mainEntity": map[string]any{
				"@type": "Question",
				"name":  "{{post_title}}",
				"text":  "{{post_excerpt}}",
				"acceptedAnswer": map[string]any{
					"@type": "Answer",
					"text":  "Your answer here.",
				},
			},
		},
	},
	"about": {
		ID:          "about",
		Name:        "About Page",
		Type:        "AboutPage",
		Description: "For about-us pages.",
		Schema: map[string]any{
			"@context": schemaContext,
			"@type":    "AboutPage",
			"mainEntity": map[string]any{
				"@type":       "Organization",
				"name":        "{{site_name}}",
				"url":         "{{site_url}}",
				"description": "{{site_description}}",
			},
		},
	},
	"contact": {
		ID:          "contact",
		Name:        "Contact Page",
		Type:        "ContactPage",
		Description: "For contact pages.",
		Schema: map[string]any{
			"@context": schemaContext,
			"@type":    "ContactPage",
			"mainEntity": map[string]any{
				"@type": "Organization",
				"name":  "{{site_name}}",
				"url":   "{{site_url}}",
				"contactPoint": map[string]any{
					"@type":       "ContactPoint",
					"telephone":   "+1-555-555-5555",
					"contactType": "Customer Service",
				},
			},
		},
	},
}
