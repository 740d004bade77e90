package renderer

import "errors"

var (
	ErrSceneNotDefined   = errors.New("renderer: no scene defined")
	ErrAdapterNotDefined = errors.New("renderer: no adapter defined")
	ErrInvalidFrameRate  = errors.New("renderer: frame rate must be positive")
	ErrStackUnderflow    = errors.New("renderer: matrix stack underflow")
	ErrUnbalancedStack   = errors.New("renderer: unbalanced matrix stack push/pop calls")
)
