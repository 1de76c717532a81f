package domain

import "errors"

// ErrorKind classifies a failure for the transport layer.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindAuthentication
	KindNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// Error is an expected domain failure. Its Message is safe to show to clients.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrDuplicateAccount   = &Error{Kind: KindValidation, Message: "User already exists"}
	ErrInvalidInput       = &Error{Kind: KindValidation, Message: "Invalid request"}
	ErrPasswordTooLong    = &Error{Kind: KindValidation, Message: "password must be at most 72 bytes"}
	ErrEmptyContent       = &Error{Kind: KindValidation, Message: "Post content is required"}
	ErrContentTooLong     = &Error{Kind: KindValidation, Message: "Post content is too long"}
	ErrInvalidCredentials = &Error{Kind: KindAuthentication, Message: "Invalid credentials"}
	ErrUserNotFound       = &Error{Kind: KindNotFound, Message: "User not found"}
	ErrPostNotFound       = &Error{Kind: KindNotFound, Message: "Post not found"}
)

// KindOf reports the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}
