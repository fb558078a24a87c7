package mandel

import "errors"

// Construction errors. New wraps them with the offending value; test with
// errors.Is.
var (
	// ErrInvalidSize is returned when width or height is not positive.
	ErrInvalidSize = errors.New("mandel: invalid grid size")

	// ErrInvalidZoom is returned when the zoom is not a positive finite number.
	ErrInvalidZoom = errors.New("mandel: invalid zoom")

	// ErrInvalidBudget is returned when the initial budget is below the
	// budget floor or does not fit an iteration cell.
	ErrInvalidBudget = errors.New("mandel: invalid iteration budget")

	// ErrInvalidCenter is returned when the center is not finite.
	ErrInvalidCenter = errors.New("mandel: invalid center")

	// ErrInvalidOption is returned when an option carries an unusable value.
	ErrInvalidOption = errors.New("mandel: invalid option")
)
