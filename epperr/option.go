package epperr

// ParseOption is a ParseError option function
type ParseOption func(*ParseError)

// WithRawResponse attaches the raw response payload for diagnostics.
func WithRawResponse(raw []byte) ParseOption {
	return func(e *ParseError) { e.RawResponse = raw }
}

// WithCause attaches the underlying error.
func WithCause(err error) ParseOption {
	return func(e *ParseError) { e.Err = err }
}
