package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/dexit/custom-schema-box-generator/internal/slug"
)

// Seed populates the database with initial development data: a default
// admin user, the site-level fields the placeholder resolver reads, and a
// couple of published content items to try schema settings against.
func Seed(db *sql.DB) error {
	// Check if any users exist already.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	// Hash the default admin password.
	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	var adminID string
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, display_name, slug, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, "admin@schemabox.local", string(hash), "Admin", "admin", "admin").Scan(&adminID)
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	// Site fields consumed by the {{site_*}} placeholders.
	for key, value := range map[string]string{
		"site_name":    "Schema Box",
		"site_url":     "http://localhost:8080",
		"site_tagline": "Structured data for every page",
	} {
		if _, err := db.Exec(`
			INSERT INTO site_settings (key, value) VALUES ($1, $2)
			ON CONFLICT (key) DO NOTHING`, key, value); err != nil {
			return fmt.Errorf("seed site setting %s: %w", key, err)
		}
	}

	// A published post and page to exercise the emission path.
	items := []struct {
		typ, title, body, categories, tags string
	}{
		{"post", "Hello World",
			"This is the first post. Edit or delete it, then start writing.",
			"General", "welcome, first"},
		{"page", "About",
			"This site uses Schema Box to attach JSON-LD structured data to content.",
			"", ""},
	}
	for _, it := range items {
		if _, err := db.Exec(`
			INSERT INTO content (type, title, slug, body, status, categories, tags, author_id, published_at)
			VALUES ($1, $2, $3, $4, 'published', $5, $6, $7, NOW())
		`, it.typ, it.title, slug.Generate(it.title), it.body, it.categories, it.tags, adminID); err != nil {
			return fmt.Errorf("seed content %s: %w", it.title, err)
		}
	}

	slog.Info("database seeded with default admin user",
		"email", "admin@schemabox.local",
		"password", "admin",
	)

	return nil
}
