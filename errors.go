package encore

import "errors"

// Sentinel errors for the encore package.
// Use errors.Is to check: errors.Is(err, encore.ErrNoAnimation)
var (
	ErrNoActiveEntity  = errors.New("encore: no entity designated")
	ErrNoAnimation     = errors.New("encore: source has no animation on any channel")
	ErrInvalidRange    = errors.New("encore: zero-length frame range")
	ErrResourceCleanup = errors.New("encore: best-effort cleanup incomplete")
)
