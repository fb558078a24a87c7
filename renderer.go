package mandel

// PanDirection is the direction the view moves on the plane.
type PanDirection int

// Pan directions. Up and down follow pixel rows: up shows rows above the
// current top edge.
const (
	PanUp PanDirection = iota
	PanDown
	PanLeft
	PanRight
)

// ZoomDirection selects magnification or demagnification.
type ZoomDirection int

// Zoom directions.
const (
	ZoomIn ZoomDirection = iota
	ZoomOut
)

// BudgetDirection selects raising or lowering the iteration budget.
type BudgetDirection int

// Budget directions.
const (
	BudgetIncrease BudgetDirection = iota
	BudgetDecrease
)

// Renderer is the capability a host drives: read the image, and issue one
// of the directional commands. Engine implements it; other fractal families
// are selected at construction rather than by a different Renderer.
type Renderer interface {
	// Image returns the current color grid as row-major RGBA8.
	Image() []byte

	Pan(PanDirection)
	Zoom(ZoomDirection)
	AdjustBudget(BudgetDirection)
}

var _ Renderer = (*Engine)(nil)
