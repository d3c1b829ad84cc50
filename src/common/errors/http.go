package errors

// Response is the API failure envelope. Every EMS endpoint answers with
// {status, message} plus an optional data payload on success; failures
// always carry status 0.
type Response struct {
	// Status is 0 for failures, 1 for successes
	Status int `json:"status"`

	// Message contains a human-readable error message
	Message string `json:"message"`
}

// ToResponse converts an Error to a failure envelope
func (e *Error) ToResponse() Response {
	return Response{
		Status:  0,
		Message: e.Message,
	}
}

// NewResponse creates a failure envelope from an error.
// If the error is an *Error, its message is used directly.
// Otherwise a generic internal error response is returned.
func NewResponse(err error) Response {
	if e, ok := err.(*Error); ok {
		return e.ToResponse()
	}

	return Response{
		Status:  0,
		Message: "Internal server error.",
	}
}

// NewResponseWithMessage creates a failure envelope with a custom message
func NewResponseWithMessage(message string) Response {
	return Response{
		Status:  0,
		Message: message,
	}
}
