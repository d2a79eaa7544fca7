package errs

import "fmt"

// AlreadyExistsError reports a violated uniqueness rule, e.g. a taken slug or username.
type AlreadyExistsError struct {
	ParamName string
	Value     any
}

func NewAlreadyExistsError(paramName string, value any) *AlreadyExistsError {
	return &AlreadyExistsError{
		ParamName: paramName,
		Value:     value,
	}
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrAlreadyExists, e.ParamName, sanitize(e.Value))
}

func (e *AlreadyExistsError) Unwrap() error {
	return ErrAlreadyExists
}
