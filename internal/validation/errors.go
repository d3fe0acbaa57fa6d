package validation

import "errors"

var (
	ErrEmptyURL            = errors.New("url is required")
	ErrInvalidURLFormat    = errors.New("invalid url format")
	ErrUnsafeProtocol      = errors.New("url protocol not allowed")
	ErrURLTooLong          = errors.New("url exceeds maximum length")
	ErrPrivateIPNotAllowed = errors.New("private ip addresses not allowed")

	ErrAliasLength   = errors.New("alias length must be between 5 and 32 characters")
	ErrAliasCharset  = errors.New("alias may only contain letters, digits, '_' and '-'")
	ErrAliasReserved = errors.New("alias is reserved")
	ErrInvalidCount  = errors.New("count must be between 1 and 10")
)
