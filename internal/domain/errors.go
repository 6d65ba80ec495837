package domain

import "errors"

// Определение бизнес-ошибок
var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrDepartmentNotFound = errors.New("department not found")
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrRequestNotFound    = errors.New("request not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrNoAccountForEmail  = errors.New("no account with that email exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailNotVerified   = errors.New("email is not verified")
	ErrNothingToVerify    = errors.New("no email is pending verification")
	ErrSelfDelete         = errors.New("cannot delete your own account")
	ErrNotAuthenticated   = errors.New("authentication required")
	ErrAccessDenied       = errors.New("access denied, admins only")
	ErrEmptyItems         = errors.New("request must contain at least one item")
)
