package comments_test

import (
	"testing"

	"github.com/vojtechokenka/nokturo/internal/comments"
)

var viewport = comments.Rect{X: 0, Y: 0, Width: 1200, Height: 800}

// TestPlacePrefersMostSpace verifies the direction with the most room wins
func TestPlacePrefersMostSpace(t *testing.T) {
	// Anchor near the top: below has far more space than above.
	anchor := comments.Rect{X: 500, Y: 40, Width: 100, Height: 20}
	popover := comments.Size{Width: 300, Height: 200}

	p := comments.Place(anchor, popover, viewport)
	if p.Direction != comments.Below {
		t.Errorf("Expected Below, got %s", p.Direction)
	}
	if p.Y != anchor.Y+anchor.Height+8 {
		t.Errorf("Expected the popover 8px under the anchor, got y=%f", p.Y)
	}

	// Anchor near the bottom: above wins.
	anchor.Y = 740
	p = comments.Place(anchor, popover, viewport)
	if p.Direction != comments.Above {
		t.Errorf("Expected Above, got %s", p.Direction)
	}
}

// TestPlaceSideways verifies horizontal placement for a tall popover
func TestPlaceSideways(t *testing.T) {
	// Popover taller than the space above or below the centered anchor.
	anchor := comments.Rect{X: 100, Y: 380, Width: 60, Height: 40}
	popover := comments.Size{Width: 280, Height: 700}

	p := comments.Place(anchor, popover, viewport)
	if p.Direction != comments.Right {
		t.Errorf("Expected Right for a left-side anchor, got %s", p.Direction)
	}
	if p.X != anchor.X+anchor.Width+8 {
		t.Errorf("Expected the popover to the right of the anchor, got x=%f", p.X)
	}
}

// TestPlaceNoFitDefaultsBelow verifies the fallback when nothing fits
func TestPlaceNoFitDefaultsBelow(t *testing.T) {
	anchor := comments.Rect{X: 550, Y: 380, Width: 100, Height: 40}
	popover := comments.Size{Width: 1400, Height: 900}

	p := comments.Place(anchor, popover, viewport)
	if p.Direction != comments.Below {
		t.Errorf("Expected the Below fallback, got %s", p.Direction)
	}
}

// TestPlaceClampsToViewport verifies the resolved position never leaves the
// viewport
func TestPlaceClampsToViewport(t *testing.T) {
	// Anchor hugging the left edge: centering would push x negative.
	anchor := comments.Rect{X: 0, Y: 40, Width: 20, Height: 20}
	popover := comments.Size{Width: 300, Height: 200}

	p := comments.Place(anchor, popover, viewport)
	if p.X < viewport.X {
		t.Errorf("Expected x clamped to the viewport, got %f", p.X)
	}

	// Anchor hugging the right edge.
	anchor.X = 1180
	p = comments.Place(anchor, popover, viewport)
	if p.X+popover.Width > viewport.X+viewport.Width {
		t.Errorf("Expected the popover kept inside the right edge, got x=%f", p.X)
	}
}
