package mscfb

import (
	"errors"
)

var (
	ErrorInvalidCFB     = errors.New("invalid cfb layout")
	ErrorInvalidName    = errors.New("invalid stream name")
	ErrorStreamTooLarge = errors.New("stream too large")
	ErrorTooManySectors = errors.New("too many sectors")
	ErrorPlanDiverged   = errors.New("sector plan did not converge")
	ErrorWriteTooLarge  = errors.New("write too large for sink")
)
