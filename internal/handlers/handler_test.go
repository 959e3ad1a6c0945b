// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler integration
// tests. Tests are skipped when PostgreSQL or Valkey are unavailable.
package handlers

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"github.com/dexit/custom-schema-box-generator/internal/cache"
	"github.com/dexit/custom-schema-box-generator/internal/database"
	"github.com/dexit/custom-schema-box-generator/internal/schema"
	"github.com/dexit/custom-schema-box-generator/internal/session"
	"github.com/dexit/custom-schema-box-generator/internal/store"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "schemabox")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "schemabox")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testValkeyClient returns a Redis client for handler tests on DB 15.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		for _, pattern := range []string{"session:*", "page:*"} {
			keys, _ := client.Keys(ctx, pattern).Result()
			if len(keys) > 0 {
				client.Del(ctx, keys...)
			}
		}
		client.Close()
	})

	return client
}

// testEnv holds all dependencies for handler integration tests.
type testEnv struct {
	DB           *sql.DB
	Valkey       *redis.Client
	Sessions     *session.Store
	ContentStore *store.ContentStore
	UserStore    *store.UserStore
	SettingStore *store.SiteSettingStore
	Emitter      *schema.Emitter
	PageCache    *cache.PageCache
	Admin        *Admin
	Auth         *Auth
	Public       *Public
}

// newTestEnv creates a complete test environment with all handler dependencies.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)
	vk := testValkeyClient(t)

	sessions := session.NewStore(vk, false)
	contentStore := store.NewContentStore(db)
	userStore := store.NewUserStore(db)
	settingStore := store.NewSiteSettingStore(db)
	pageCache := cache.NewPageCache(vk, 1*time.Minute)

	source := store.NewSchemaSource(contentStore, userStore, settingStore)
	features := schema.NewFeatureRegistry()
	emitter := schema.NewEmitter(source, settingStore, features)

	admin := NewAdmin(settingStore, contentStore, emitter, features, pageCache)
	auth := NewAuth(sessions, userStore)
	public := NewPublic(contentStore, settingStore, emitter, pageCache)

	return &testEnv{
		DB:           db,
		Valkey:       vk,
		Sessions:     sessions,
		ContentStore: contentStore,
		UserStore:    userStore,
		SettingStore: settingStore,
		Emitter:      emitter,
		PageCache:    pageCache,
		Admin:        admin,
		Auth:         auth,
		Public:       public,
	}
}

// cleanSettings removes schema configuration keys written by a test.
func cleanSettings(t *testing.T, db *sql.DB) {
	t.Helper()
	db.Exec("DELETE FROM site_settings WHERE key LIKE 'schema_%'")
}

// cleanContent removes test content by slug. Call in t.Cleanup().
func cleanContent(t *testing.T, db *sql.DB, slugs ...string) {
	t.Helper()
	for _, slug := range slugs {
		db.Exec("DELETE FROM content WHERE slug = $1", slug)
	}
}
