package service

import "errors"

var (
	ErrValidation = errors.New("validation") // 400
	ErrNotFound   = errors.New("not found")  // 404
	ErrConflict   = errors.New("conflict")   // 409
)

// Fail pairs an error class with the message shown to the API caller.
// errors.Is against the class sentinels still works through Unwrap.
type Fail struct {
	Class   error
	Message string
}

func (f *Fail) Error() string { return f.Message }

func (f *Fail) Unwrap() error { return f.Class }

func fail(class error, message string) error {
	return &Fail{Class: class, Message: message}
}
