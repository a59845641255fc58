package httputil

// HTTPError is an error that carries the status code and a message that is
// safe to show to the client.
type HTTPError struct {
	error
	HTTPStatus  int
	SafeMessage string
}

// NewHTTPError creates a new HTTPError.
//
// The err is intended to be a detailed error to be internally logged, while
// safeMessage is a message that can be safely shown to the client without
// revealing too much information.
//
// If no safeMessage is provided, the textual representation of the status
// code will be used.
func NewHTTPError(status int, err error, safeMessage ...string) HTTPError {
	pickedSafeMessage := ""
	if len(safeMessage) > 0 {
		pickedSafeMessage = safeMessage[0]
	}

	return HTTPError{
		error:       err,
		HTTPStatus:  status,
		SafeMessage: pickedSafeMessage,
	}
}

// Unwrap returns the underlying error.
func (e HTTPError) Unwrap() error {
	return e.error
}
