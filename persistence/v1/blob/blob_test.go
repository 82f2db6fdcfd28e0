package blob

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/proullon/ramsql/driver"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	if _, ok, err := m.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("missing key: ok=%v err=%v", ok, err)
	}

	if err := m.Set(ctx, "k", "v1"); err != nil {
		t.Fatal(err)
	}
	if err := m.Set(ctx, "k", "v2"); err != nil {
		t.Fatal(err)
	}
	if v, ok, err := m.Get(ctx, "k"); err != nil || !ok || v != "v2" {
		t.Fatalf("expected overwrite to win: v=%q ok=%v err=%v", v, ok, err)
	}

	if err := m.Del(ctx, "k"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := m.Get(ctx, "k"); ok {
		t.Fatal("deleted key still present")
	}
	// deleting again is a no-op
	if err := m.Del(ctx, "k"); err != nil {
		t.Fatal(err)
	}
}

func TestMemoryStoreTTL(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	base := time.Now()
	m.now = func() time.Time { return base }

	if err := m.SetTTL(ctx, "k", "v", time.Hour); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := m.Get(ctx, "k"); !ok {
		t.Fatal("key should be readable before expiry")
	}

	m.now = func() time.Time { return base.Add(2 * time.Hour) }
	if _, ok, _ := m.Get(ctx, "k"); ok {
		t.Fatal("key should be gone after expiry")
	}
}

func TestSQLStore(t *testing.T) {
	ctx := context.Background()

	db, err := sql.Open("ramsql", "TestSQLStore")
	if err != nil {
		t.Fatalf("sql.Open: %s", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if _, err := db.Exec(`CREATE TABLE kvstore (k VARCHAR(255) PRIMARY KEY, v TEXT, expires BIGINT)`); err != nil {
		t.Fatalf("create table: %s", err)
	}

	s := NewSQL(db, 2*time.Second)

	if _, ok, err := s.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("missing key: ok=%v err=%v", ok, err)
	}

	if err := s.Set(ctx, "k", "v1"); err != nil {
		t.Fatal(err)
	}
	if err := s.Set(ctx, "k", "v2"); err != nil {
		t.Fatal(err)
	}
	if v, ok, err := s.Get(ctx, "k"); err != nil || !ok || v != "v2" {
		t.Fatalf("expected overwrite to win: v=%q ok=%v err=%v", v, ok, err)
	}

	if err := s.Del(ctx, "k"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := s.Get(ctx, "k"); ok {
		t.Fatal("deleted key still present")
	}
}

func TestSQLStoreTTL(t *testing.T) {
	ctx := context.Background()

	db, err := sql.Open("ramsql", "TestSQLStoreTTL")
	if err != nil {
		t.Fatalf("sql.Open: %s", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if _, err := db.Exec(`CREATE TABLE kvstore (k VARCHAR(255) PRIMARY KEY, v TEXT, expires BIGINT)`); err != nil {
		t.Fatalf("create table: %s", err)
	}

	s := NewSQL(db, 2*time.Second)

	base := time.Now()
	s.now = func() time.Time { return base }

	if err := s.SetTTL(ctx, "k", "v", time.Hour); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := s.Get(ctx, "k"); !ok {
		t.Fatal("key should be readable before expiry")
	}

	s.now = func() time.Time { return base.Add(2 * time.Hour) }
	if _, ok, _ := s.Get(ctx, "k"); ok {
		t.Fatal("key should be gone after expiry")
	}
}
