package constants

import "net/http"

// CodedError is an error that knows which HTTP status it should be reported with.
type CodedError struct {
	msg  string
	code int
}

func NewCodedError(msg string, code int) *CodedError {
	return &CodedError{msg: msg, code: code}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrDBNotFound       = NewCodedError("not found", http.StatusNotFound)
	ErrAlreadyExists    = NewCodedError("already exists", http.StatusConflict)
	ErrReferenced       = NewCodedError("referenced by existing projects", http.StatusConflict)
	ErrInvalidReference = NewCodedError("invalid reference", http.StatusBadRequest)
	ErrBadRequest       = NewCodedError("bad request", http.StatusBadRequest)
)
