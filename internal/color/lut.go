package color

// maxPaletteEntries caps the lookup table so a huge budget does not
// allocate more than 1 MiB of colors; larger counts fall back to Scale.
const maxPaletteEntries = 1 << 18

// Palette is a per-budget lookup table from escape count to color.
//
// Counts are bounded by the budget they were computed under, so a colorize
// pass builds one table for the current budget and replaces a log and a
// ramp evaluation per pixel with an array lookup. Counts beyond the table
// (left over from a larger budget, or above maxPaletteEntries) are
// computed directly, giving the same colors as Colorize.
type Palette struct {
	scale Scale
	lut   []ColorU8
}

// NewPalette builds the lookup table for budget.
func NewPalette(budget int) *Palette {
	n := budget
	if n < 1 {
		n = 1
	}
	if n > maxPaletteEntries {
		n = maxPaletteEntries
	}

	p := &Palette{
		scale: NewScale(budget),
		lut:   make([]ColorU8, n),
	}
	for count := 1; count < n; count++ {
		p.lut[count] = p.scale.Color(count)
	}
	return p
}

// At returns the color for count. It matches Colorize(count, budget).
func (p *Palette) At(count int) ColorU8 {
	if count < 0 {
		return Transparent
	}
	if count > 0 && count < len(p.lut) {
		return p.lut[count]
	}
	return p.scale.Color(count)
}

// Len returns the number of precomputed entries.
func (p *Palette) Len() int {
	return len(p.lut)
}
