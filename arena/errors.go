package arena

import "github.com/pkg/errors"

// ErrInconsistentArena is returned by Validate when the arena's bookkeeping does not match its blocks
var ErrInconsistentArena error = errors.New("arena bookkeeping is inconsistent")
