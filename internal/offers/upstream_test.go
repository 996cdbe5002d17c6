package offers_test

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/JaimeStill/offer-board/internal/offers"
)

func TestDecodeUpstream(t *testing.T) {
	f, err := os.Open("testdata/search.json")
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	defer f.Close()

	got, err := offers.DecodeUpstream(f)
	if err != nil {
		t.Fatalf("DecodeUpstream() error = %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("DecodeUpstream() returned %d offers, want 2", len(got))
	}

	first := got[0]
	if first.ID != "194DZZT" || first.Title != "Développeur Go (H/F)" {
		t.Errorf("first = %q %q", first.ID, first.Title)
	}
	if first.Company != "ACME" || first.Location != "69 - LYON 03" {
		t.Errorf("company/location = %q %q", first.Company, first.Location)
	}
	if first.ContractType != "Contrat à durée indéterminée" {
		t.Errorf("ContractType = %q", first.ContractType)
	}
	if first.RomeCode != "M1805" || first.URL == "" {
		t.Errorf("rome/url = %q %q", first.RomeCode, first.URL)
	}

	want := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	if first.PublishedAt == nil || !first.PublishedAt.Equal(want) {
		t.Errorf("PublishedAt = %v, want %v", first.PublishedAt, want)
	}

	second := got[1]
	if second.ContractType != "CDD" {
		t.Errorf("ContractType = %q, want CDD fallback", second.ContractType)
	}
	if second.PublishedAt != nil {
		t.Errorf("PublishedAt = %v, want nil", second.PublishedAt)
	}
}

func TestDecodeUpstream_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed", body: `{"resultats": [`},
		{name: "bad date", body: `{"resultats": [{"id": "1", "intitule": "x", "dateCreation": "hier"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := offers.DecodeUpstream(strings.NewReader(tt.body)); err == nil {
				t.Error("DecodeUpstream() should fail")
			}
		})
	}
}

func TestDecodeUpstream_Empty(t *testing.T) {
	got, err := offers.DecodeUpstream(strings.NewReader(`{}`))
	if err != nil {
		t.Fatalf("DecodeUpstream() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("DecodeUpstream() = %v, want empty slice", got)
	}
}
