package idgen

import "github.com/google/uuid"

// NewFunc returns a fresh random (version 4) UUID. Override in tests for determinism.
var NewFunc = uuid.New

// New returns a new globally unique namespace.
func New() uuid.UUID { return NewFunc() }
