package blocks_test

import (
	"testing"

	"github.com/vojtechokenka/nokturo/internal/blocks"
)

// TestParseDescriptionArray verifies a stored block array decodes as-is
func TestParseDescriptionArray(t *testing.T) {
	raw := `[{"id":"h1","type":"heading","level":1,"text":"Coat"}]`
	doc := blocks.ParseDescription(raw)
	if len(doc) != 1 || doc[0].Kind != blocks.KindHeading {
		t.Fatalf("Expected one heading block, got %v", doc)
	}
	if doc[0].Heading.Text != "Coat" {
		t.Errorf("Expected heading text 'Coat', got %q", doc[0].Heading.Text)
	}
}

// TestParseDescriptionLegacyText verifies plain text upgrades to a single
// paragraph
func TestParseDescriptionLegacyText(t *testing.T) {
	doc := blocks.ParseDescription("Hand woven wool scarf.")
	if len(doc) != 1 || doc[0].Kind != blocks.KindParagraph {
		t.Fatalf("Expected one paragraph, got %v", doc)
	}
	if doc[0].Paragraph.Content != "Hand woven wool scarf." {
		t.Errorf("Expected legacy text kept verbatim, got %q", doc[0].Paragraph.Content)
	}
	if doc[0].ID == "" {
		t.Error("Expected a generated id on the upgraded paragraph")
	}
}

// TestParseDescriptionJSONString verifies a legacy value stored as a JSON
// string literal unwraps before the upgrade
func TestParseDescriptionJSONString(t *testing.T) {
	doc := blocks.ParseDescription(`"Hand woven wool scarf."`)
	if len(doc) != 1 || doc[0].Kind != blocks.KindParagraph {
		t.Fatalf("Expected one paragraph, got %v", doc)
	}
	if doc[0].Paragraph.Content != "Hand woven wool scarf." {
		t.Errorf("Expected the quotes unwrapped, got %q", doc[0].Paragraph.Content)
	}
}

// TestParseDescriptionEmpty verifies blank input yields an empty document
func TestParseDescriptionEmpty(t *testing.T) {
	if doc := blocks.ParseDescription(""); len(doc) != 0 {
		t.Errorf("Expected empty document for empty input, got %v", doc)
	}
	if doc := blocks.ParseDescription("   "); len(doc) != 0 {
		t.Errorf("Expected empty document for whitespace input, got %v", doc)
	}
}

// TestParseDescriptionMalformedArray verifies a broken array falls back to
// the legacy upgrade instead of dropping content
func TestParseDescriptionMalformedArray(t *testing.T) {
	raw := `[{"id":"x","type":`
	doc := blocks.ParseDescription(raw)
	if len(doc) != 1 || doc[0].Kind != blocks.KindParagraph {
		t.Fatalf("Expected a fallback paragraph, got %v", doc)
	}
	if doc[0].Paragraph.Content != raw {
		t.Errorf("Expected the raw value preserved, got %q", doc[0].Paragraph.Content)
	}
}

// TestEncodeDescription verifies a nil document encodes as an empty array
func TestEncodeDescription(t *testing.T) {
	raw, err := blocks.EncodeDescription(nil)
	if err != nil {
		t.Fatalf("Failed to encode nil document: %v", err)
	}
	if string(raw) != "[]" {
		t.Errorf("Expected empty array, got %s", raw)
	}
}
