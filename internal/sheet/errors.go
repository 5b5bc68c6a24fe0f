package sheet

import "errors"

var (
	// ErrUnavailable indicates the spreadsheet backend is unreachable.
	ErrUnavailable = errors.New("sheet backend unavailable")

	// ErrTimeout indicates the request exceeded the configured deadline.
	ErrTimeout = errors.New("sheet request timed out")

	// ErrBadPayload indicates the backend response does not carry the
	// expected log or record shape. Callers must fail closed on it.
	ErrBadPayload = errors.New("unexpected sheet payload")

	// ErrRejected indicates the backend answered with success=false.
	ErrRejected = errors.New("sheet backend rejected the request")
)
