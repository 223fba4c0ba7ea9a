package project

import "errors"

var (
	ErrNotFound          = errors.New("project file not found")
	ErrExists            = errors.New("project file already exists")
	ErrInvalidNamespace  = errors.New("invalid project namespace")
	ErrUnsupportedFormat = errors.New("unsupported project file format")
)
