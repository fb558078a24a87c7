package plane

// Unresolved is returned by escape evaluation when the orbit stayed bounded
// for the whole iteration budget.
const Unresolved = -1

// escapeRadiusSq is the squared escape radius.
const escapeRadiusSq = 4

// Family is a fractal family evaluated per point.
type Family[F Float] interface {
	// Escape returns the escape count of p in [1, budget), or Unresolved.
	Escape(p Point[F], budget int) int

	// Name returns a short identifier used in logs.
	Name() string
}

// Escape iterates z₀ = c, zᵢ₊₁ = zᵢ² + c and returns the smallest i in
// [1, budget) with |zᵢ|² > 4. It returns Unresolved when no such i exists,
// which includes every budget <= 1.
func Escape[F Float](c Point[F], budget int) int {
	return orbit(c, c, budget)
}

// orbit runs the quadratic iteration from z with additive constant c.
func orbit[F Float](z, c Point[F], budget int) int {
	zr, zi := z.Re, z.Im
	zr2, zi2 := zr*zr, zi*zi
	for count := 1; count < budget; count++ {
		zi = 2*zr*zi + c.Im
		zr = zr2 - zi2 + c.Re
		zr2, zi2 = zr*zr, zi*zi
		if zr2+zi2 > escapeRadiusSq {
			return count
		}
	}
	return Unresolved
}

// Mandelbrot is the Mandelbrot family: the evaluated point is both the
// starting value and the additive constant.
type Mandelbrot[F Float] struct{}

var _ Family[float64] = Mandelbrot[float64]{}

// Escape implements Family.
func (Mandelbrot[F]) Escape(p Point[F], budget int) int {
	return Escape(p, budget)
}

// Name implements Family.
func (Mandelbrot[F]) Name() string { return "mandelbrot" }

// Julia is the filled Julia set for constant C: the evaluated point is the
// starting value and C is added on every step.
type Julia[F Float] struct {
	C Point[F]
}

var _ Family[float64] = Julia[float64]{}

// Escape implements Family.
func (j Julia[F]) Escape(p Point[F], budget int) int {
	return orbit(p, j.C, budget)
}

// Name implements Family.
func (Julia[F]) Name() string { return "julia" }
