package utils

import "errors"

var (
	ErrValidation      = errors.New("validation failed")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrCommentNotFound = errors.New("comment not found")
	ErrGateway         = errors.New("catalog gateway error")
	ErrCaptcha         = errors.New("captcha verification failed")
	ErrDatabaseError   = errors.New("database error")
)
