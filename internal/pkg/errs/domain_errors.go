package errs

// Sentinel errors shared by the usecase layer. Attach them with Mark and test with Is.
var (
	ErrNotFound            = New("not found")
	ErrPropertyNotFound    = New("property not found")
	ErrReservationNotFound = New("reservation not found")

	ErrConcurrentModification = New("reservation was modified concurrently")
	ErrForbidden              = New("operation not permitted")
	ErrInvalidCursor          = New("invalid cursor")
)

func IsNotFound(err error) bool {
	return Is(err, ErrNotFound) || Is(err, ErrPropertyNotFound) || Is(err, ErrReservationNotFound)
}
