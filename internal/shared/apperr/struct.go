package apperr

type Kind string

type AppError struct {
	Kind      Kind
	PublicMsg string            // operator facing message
	Fields    map[string]string // form/validation details (optional), e.g. "section"
	Code      int               // backend envelope code for Rejected errors
	Err       error             // internal error (for logs)
}
