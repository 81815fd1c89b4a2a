package utils

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrInvalidPage            = errors.New("invalid page parameter")
	ErrInvalidPageSize        = errors.New("invalid page size parameter")
	ErrAccountNotFound        = errors.New("account not found")
	ErrEmailAlreadyExists     = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrTripNotFound           = errors.New("trip not found")
	ErrTripNotOwned           = errors.New("trip belongs to another account")
	ErrRouteNotFound          = errors.New("route option not found")
	ErrUnroutableTrip         = errors.New("trip cannot be routed")
	ErrUnexpectedBehaviorOfAI = errors.New("unexpected AI provider behavior")
	ErrDatabaseError          = errors.New("database error")
)
