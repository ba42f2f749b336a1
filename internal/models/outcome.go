package models

// OutcomeStatus classifies the result of a mutating service operation.
type OutcomeStatus int

const (
	StatusOK OutcomeStatus = iota
	StatusValidationError
	StatusNotFound
	StatusFailure
)

// Outcome is the transport-agnostic result of a mutation. Controllers map the
// status to an HTTP code; the services never deal in HTTP concepts.
type Outcome struct {
	Status  OutcomeStatus `json:"-"`
	Message string        `json:"message,omitempty"`
}

// Success reports whether the operation completed.
func (o Outcome) Success() bool {
	return o.Status == StatusOK
}

// Ok returns a successful outcome.
func Ok() Outcome {
	return Outcome{Status: StatusOK}
}

// OkMessage returns a successful outcome carrying a descriptive message.
func OkMessage(message string) Outcome {
	return Outcome{Status: StatusOK, Message: message}
}

// ValidationError returns an outcome for a request rejected before any write.
func ValidationError(message string) Outcome {
	return Outcome{Status: StatusValidationError, Message: message}
}

// NotFound returns an outcome for an update or delete whose target is absent.
func NotFound(message string) Outcome {
	return Outcome{Status: StatusNotFound, Message: message}
}

// Failure returns an outcome for a persistence step that did not take effect.
func Failure(message string) Outcome {
	return Outcome{Status: StatusFailure, Message: message}
}
