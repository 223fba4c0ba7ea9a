package identifier

import "errors"

var (
	ErrUnknownCategory  = errors.New("unknown identifier category")
	ErrInvalidNamespace = errors.New("invalid namespace")
	ErrInvalidID        = errors.New("invalid identifier")
)
