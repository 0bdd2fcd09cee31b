package paint

import "errors"

var (
	ErrInvalidStyle     = errors.New("invalid style")
	ErrUnknownShapeKind = errors.New("unknown shape kind")
	ErrUnknownLineJoin  = errors.New("unknown line join")
	ErrUnknownColor     = errors.New("unknown color")
)
