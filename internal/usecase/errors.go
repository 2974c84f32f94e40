package usecase

// DomainError is a client-correctable failure (missing field, bad status,
// wrong credentials). Handlers map it to a 4xx response.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError is a dependency failure (store or mail collaborator).
// Handlers log it and answer with a generic 500.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

// Error codes shared between usecases and handlers.
const (
	CodeMissingFields      = "MISSING_FIELDS"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeInvalidStatus      = "INVALID_STATUS"
	CodeMailError          = "MAIL_ERROR"
	CodeDatabaseError      = "DATABASE_ERROR"
)
