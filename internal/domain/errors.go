package domain

import "errors"

var (
	// ErrInvalidSettings indicates the reminder settings failed validation.
	ErrInvalidSettings = errors.New("invalid reminder settings")

	// ErrInvalidTask indicates the task failed validation.
	ErrInvalidTask = errors.New("invalid task")

	// ErrScheduleFailed indicates the platform rejected a schedule call.
	ErrScheduleFailed = errors.New("failed to schedule notification")

	// ErrCancelFailed indicates the platform rejected a cancel call.
	ErrCancelFailed = errors.New("failed to cancel notifications")

	// ErrDeliveryFailed indicates a fired reminder could not be delivered.
	ErrDeliveryFailed = errors.New("delivery failed")
)
