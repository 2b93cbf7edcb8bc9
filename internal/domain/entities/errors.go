package entities

import "errors"

// Domain errors
var (
	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidUsername   = errors.New("invalid username")
	ErrInvalidPassword   = errors.New("invalid password")

	// Blog errors
	ErrBlogNotFound  = errors.New("blog not found")
	ErrEmptyContent  = errors.New("article content is empty")
	ErrMissingOwner  = errors.New("article has no owner")
	ErrMissingSource = errors.New("article has no source link")
)
