package nav

// Lookahead shifts the probe point below the viewport top so the highlight
// switches slightly before a section's top edge reaches it.
const Lookahead = 100

// Bounds is the vertical extent of a rendered section, in CSS pixels.
type Bounds struct {
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// Contains reports whether y falls in [Top, Top+Height).
func (b Bounds) Contains(y float64) bool {
	return y >= b.Top && y < b.Top+b.Height
}

// Layout holds the measured bounds of the sections currently on the page.
// Sections missing from the layout are skipped.
type Layout map[SectionID]Bounds

// Locate returns the first section, in page order, whose bounds contain
// offset+Lookahead.
func Locate(offset float64, layout Layout) (SectionID, bool) {
	pos := offset + Lookahead
	for _, id := range Sections {
		b, ok := layout[id]
		if !ok {
			continue
		}
		if b.Contains(pos) {
			return id, true
		}
	}
	return "", false
}

// Track computes the next active section. When no section contains the
// probe point the current one is kept.
func Track(active SectionID, offset float64, layout Layout) SectionID {
	if id, ok := Locate(offset, layout); ok {
		return id
	}
	return active
}
