// Package plane maps pixels onto the complex plane and evaluates escape-time
// iteration for points on it.
//
// Every function here is generic over the real type used for coordinates so a
// wider type can be substituted without touching the grid or engine code. The
// mapper and the evaluator must always be instantiated with the same type.
package plane

// Float is the set of real types the mapper and evaluator can work in.
type Float interface {
	~float32 | ~float64
}

// Point is a point on the complex plane.
type Point[F Float] struct {
	Re, Im F
}

// Pt is shorthand for Point{re, im}.
func Pt[F Float](re, im F) Point[F] {
	return Point[F]{Re: re, Im: im}
}

// FromComplex converts a complex128 into a Point of type F.
func FromComplex[F Float](c complex128) Point[F] {
	return Point[F]{Re: F(real(c)), Im: F(imag(c))}
}

// Complex converts the point to complex128.
func (p Point[F]) Complex() complex128 {
	return complex(float64(p.Re), float64(p.Im))
}

// Add returns p + q.
func (p Point[F]) Add(q Point[F]) Point[F] {
	return Point[F]{Re: p.Re + q.Re, Im: p.Im + q.Im}
}

// Sub returns p - q.
func (p Point[F]) Sub(q Point[F]) Point[F] {
	return Point[F]{Re: p.Re - q.Re, Im: p.Im - q.Im}
}

// Mul returns the complex product p * q.
func (p Point[F]) Mul(q Point[F]) Point[F] {
	return Point[F]{
		Re: p.Re*q.Re - p.Im*q.Im,
		Im: p.Re*q.Im + p.Im*q.Re,
	}
}

// Norm returns the squared magnitude |p|².
func (p Point[F]) Norm() F {
	return p.Re*p.Re + p.Im*p.Im
}

// View is the pixel-to-plane mapping for a fixed-size pixel grid.
type View[F Float] struct {
	// Center is the plane point shown at pixel (Width/2, Height/2).
	Center Point[F]

	// Zoom is the number of pixels per unit of plane distance. Always > 0.
	Zoom F

	// Width and Height are the grid dimensions in pixels.
	Width, Height int
}

// At maps pixel (x, y) to its point on the plane:
//
//	Center + ((x - Width/2)/Zoom, (y - Height/2)/Zoom)
//
// Width/2 and Height/2 use integer division.
func (v View[F]) At(x, y int) Point[F] {
	return Point[F]{
		Re: v.Center.Re + F(x-v.Width/2)/v.Zoom,
		Im: v.Center.Im + F(y-v.Height/2)/v.Zoom,
	}
}

// PixelSize returns the plane distance covered by one pixel.
func (v View[F]) PixelSize() F {
	return 1 / v.Zoom
}
