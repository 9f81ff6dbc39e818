package extend

import "github.com/pkg/errors"

// ErrSeedOutOfRange is returned when a seed offset falls outside its sequence
var ErrSeedOutOfRange error = errors.New("seed offset is outside the sequence")

// ErrPoolDestroyed is returned when a context is requested from a destroyed ContextPool
var ErrPoolDestroyed error = errors.New("context pool has been destroyed")
