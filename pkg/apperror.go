package pkg

// AppError is the single error shape handlers translate domain errors into
// before writing an HTTP response.

type AppError struct {
	Code       string
	Message    string
	Details    []string
	Err        error
	HTTPStatus int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// WithDetails attaches the per-field breakdown surfaced in validation
// responses.
func (e *AppError) WithDetails(details ...string) *AppError {
	e.Details = details
	return e
}

// HTTPError is the JSON body written to clients. The wire shape keeps the
// `{error, message, details}` contract of the public API.

type HTTPError struct {
	Error   string   `json:"error"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{
		Error:   e.Code,
		Message: e.Message,
		Details: e.Details,
	}
}
