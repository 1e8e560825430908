package comments

// Thread popover placement: from the anchor's center point, pick whichever
// direction has the most available viewport space, clamp to the viewport,
// and default to below when no direction fits.

// Rect is an axis-aligned rectangle in viewport coordinates.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Size is a popover's measured dimensions.
type Size struct {
	Width, Height float64
}

// Direction of popover placement relative to its anchor.
type Direction string

const (
	Below Direction = "below"
	Above Direction = "above"
	Right Direction = "right"
	Left  Direction = "left"
)

// Placement is the resolved popover position.
type Placement struct {
	Direction Direction
	X, Y      float64
}

const anchorGap = 8

// Place resolves where the thread popover opens for the given anchor.
func Place(anchor Rect, popover Size, viewport Rect) Placement {
	centerX := anchor.X + anchor.Width/2
	centerY := anchor.Y + anchor.Height/2

	space := map[Direction]float64{
		Below: viewport.Y + viewport.Height - (anchor.Y + anchor.Height),
		Above: anchor.Y - viewport.Y,
		Right: viewport.X + viewport.Width - (anchor.X + anchor.Width),
		Left:  anchor.X - viewport.X,
	}
	need := map[Direction]float64{
		Below: popover.Height + anchorGap,
		Above: popover.Height + anchorGap,
		Right: popover.Width + anchorGap,
		Left:  popover.Width + anchorGap,
	}

	best := Below
	fits := false
	// Fixed evaluation order makes ties deterministic.
	for _, d := range []Direction{Below, Above, Right, Left} {
		if space[d] < need[d] {
			continue
		}
		if !fits || space[d] > space[best] {
			best = d
			fits = true
		}
	}
	if !fits {
		best = Below
	}

	var x, y float64
	switch best {
	case Below:
		x = centerX - popover.Width/2
		y = anchor.Y + anchor.Height + anchorGap
	case Above:
		x = centerX - popover.Width/2
		y = anchor.Y - popover.Height - anchorGap
	case Right:
		x = anchor.X + anchor.Width + anchorGap
		y = centerY - popover.Height/2
	case Left:
		x = anchor.X - popover.Width - anchorGap
		y = centerY - popover.Height/2
	}

	x = clamp(x, viewport.X, viewport.X+viewport.Width-popover.Width)
	y = clamp(y, viewport.Y, viewport.Y+viewport.Height-popover.Height)

	return Placement{Direction: best, X: x, Y: y}
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
