package service

import "errors"

// Sentinel errors the controllers translate into HTTP statuses. Raw
// persistence errors never cross this boundary; they are logged and
// replaced with ErrInternal.
var (
	ErrNotFound          = errors.New("resource not found")
	ErrSlotTaken         = errors.New("table is already reserved for that slot")
	ErrReservationExists = errors.New("reservation id already exists")
	ErrEmailTaken        = errors.New("email is already registered")
	ErrUsernameTaken     = errors.New("username is already taken")
	ErrInvalidLogin      = errors.New("invalid email or password")
	ErrInvalidToken      = errors.New("invalid or expired token")
	ErrAlreadyProcessed  = errors.New("refund has already been processed")
	ErrNotOwner          = errors.New("resource does not belong to the requester")
	ErrInvalidSignature  = errors.New("invalid webhook signature")
	ErrNotPaid           = errors.New("reservation has no settled payment")
	ErrInternal          = errors.New("internal server error")
)
