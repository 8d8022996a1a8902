package errors

import "errors"

var (
	ErrInvalidRequest   = errors.New("invalid request")
	ErrInvalidStartup   = errors.New("invalid startup")
	ErrInvalidFeedback  = errors.New("invalid feedback")
	ErrStartupNotFound  = errors.New("startup not found")
	ErrFounderNotFound  = errors.New("founder not found")
	ErrNotFounder       = errors.New("only founders can own startups")
	ErrNotStartupOwner  = errors.New("not authorized to view this feedback")
	ErrAdopterNotFound  = errors.New("adopter not found")
	ErrStoreTimeout     = errors.New("store timeout")
	ErrRepositoryBroken = errors.New("repository invariant broken")
)
