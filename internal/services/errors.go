package services

import "errors"

// Service errors, mapped to HTTP statuses at the handler boundary. Every
// failure is terminal for its request; there is no retry policy.
var (
	ErrComplaintNotFound = errors.New("complaint not found")
	ErrCommentNotFound   = errors.New("comment not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrCategoryNotFound  = errors.New("category does not exist")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrNotCommentAuthor  = errors.New("only the comment author can delete it")
	ErrLikeConflict      = errors.New("like was modified concurrently")
)
