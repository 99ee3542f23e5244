package errs

// Error categories. Domain errors carry one of these as a mark so the
// handler layer can pick an HTTP status without knowing every sentinel.
var (
	ErrNotFound   = New("category: not found")
	ErrBadRequest = New("category: bad request")
	ErrForbidden  = New("category: forbidden")
)

func NotFound(msg string) error {
	return Mark(New(msg), ErrNotFound)
}

func BadRequest(msg string) error {
	return Mark(New(msg), ErrBadRequest)
}

func Forbidden(msg string) error {
	return Mark(New(msg), ErrForbidden)
}
