package migrations_test

import (
	"testing"

	"github.com/JaimeStill/offer-board/internal/migrations"
)

func TestSource(t *testing.T) {
	src, err := migrations.Source()
	if err != nil {
		t.Fatalf("Source() error = %v", err)
	}
	defer src.Close()

	first, err := src.First()
	if err != nil {
		t.Fatalf("First() error = %v", err)
	}
	if first != 1 {
		t.Errorf("First() = %d, want 1", first)
	}

	up, name, err := src.ReadUp(first)
	if err != nil {
		t.Fatalf("ReadUp() error = %v", err)
	}
	defer up.Close()
	if name != "create_offers" {
		t.Errorf("ReadUp() identifier = %q, want create_offers", name)
	}

	down, _, err := src.ReadDown(first)
	if err != nil {
		t.Fatalf("ReadDown() error = %v", err)
	}
	down.Close()

	if _, err := src.Next(first); err == nil {
		t.Error("Next() should report no further migrations")
	}
}
