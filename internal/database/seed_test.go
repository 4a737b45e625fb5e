package database

import (
	"os"
	"testing"
)

func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "chimkin")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "chimkin")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestSeedIdempotent(t *testing.T) {
	db, err := Connect(testDSN())
	if err != nil {
		t.Skipf("skipping: DB not available: %v", err)
	}
	defer db.Close()

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	// Seed creates data only when the categories table is empty, so calling
	// it twice must not duplicate anything. We don't clear the database
	// first because other test packages may be running concurrently against
	// the same database.
	if err := Seed(db); err != nil {
		t.Fatalf("first Seed: %v", err)
	}

	var before int
	if err := db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&before); err != nil {
		t.Fatalf("count categories: %v", err)
	}
	if before < 1 {
		t.Errorf("expected at least 1 category after seed, got %d", before)
	}

	if err := Seed(db); err != nil {
		t.Fatalf("second Seed: %v", err)
	}

	var after int
	if err := db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&after); err != nil {
		t.Fatalf("count categories: %v", err)
	}
	if after != before {
		t.Errorf("second seed changed category count: %d -> %d", before, after)
	}

	// Every seeded product must reference an existing category.
	var orphans int
	err = db.QueryRow(`
		SELECT COUNT(*) FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE c.id IS NULL
	`).Scan(&orphans)
	if err != nil {
		t.Fatalf("count orphans: %v", err)
	}
	if orphans != 0 {
		t.Errorf("expected 0 orphaned products, got %d", orphans)
	}
}
