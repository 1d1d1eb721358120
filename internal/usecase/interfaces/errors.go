package interfaces

import "errors"

var (
	// ErrConflict is returned by repositories when a uniqueness rule rejects a write.
	ErrConflict = errors.New("conflicting record")
	// ErrInvalidCallbackSignature is returned by gateways for unverifiable callbacks.
	ErrInvalidCallbackSignature = errors.New("invalid callback signature")
)
