package services_test

import (
	"testing"

	"github.com/meraki-social/meraki/pkg/internal/services"
)

func TestGetTagOrCreateNormalizes(t *testing.T) {
	first, err := services.GetTagOrCreate("  GoLang  ")
	if err != nil {
		t.Fatalf("unable to create tag: %v", err)
	}
	if first.Name != "golang" {
		t.Errorf("tag name should be lowercased and trimmed, got %q", first.Name)
	}

	second, err := services.GetTagOrCreate("golang")
	if err != nil {
		t.Fatalf("unable to fetch tag: %v", err)
	}
	if second.ID != first.ID {
		t.Error("the same name should resolve to the existing tag, not a new row")
	}
}
