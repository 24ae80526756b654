package utils

import (
	"errors"
	"net/http"
)

type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindNotFound
	KindInternal
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "ValidationError"
	case KindNotFound:
		return "NotFoundError"
	case KindInternal:
		return "InternalError"
	}
	return "UnknownError"
}

// AppError adalah error yang sudah diklasifikasikan untuk dikirim ke client.
type AppError struct {
	Kind    ErrorKind
	Message string
	// Required diisi untuk validasi field yang hilang pada inventory
	Required []string
	Err      error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Status memetakan jenis error ke kode HTTP.
func (e *AppError) Status() int {
	switch e.Kind {
	case KindValidation, KindNotFound:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func ValidationError(msg string) *AppError {
	return &AppError{Kind: KindValidation, Message: msg}
}

func NotFoundError(msg string) *AppError {
	return &AppError{Kind: KindNotFound, Message: msg}
}

// InternalError membungkus error store; pesan aslinya diteruskan ke caller.
func InternalError(err error) *AppError {
	if err == nil {
		err = errors.New("internal error")
	}
	return &AppError{Kind: KindInternal, Message: err.Error(), Err: err}
}

// AsAppError mengklasifikasikan err; error yang belum dikenal menjadi InternalError.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return InternalError(err)
}

func IsKind(err error, kind ErrorKind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}
