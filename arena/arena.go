package arena

import (
	"context"

	cerrors "github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"golang.org/x/exp/slog"
)

const (
	// DefaultBlockCells is the number of cells in a block when New is called with a non-positive
	// block size. It matches the block size of BLAST's greedy aligner.
	DefaultBlockCells int = 1000000
)

type block[T any] struct {
	cells []T
	used  int
}

// Arena is a pool of cells of type T handed out as contiguous slices. Cells are drawn from a list
// of fixed-capacity blocks; when the current block cannot satisfy a request the arena moves on
// to the next retained block, or allocates a new block of at least the configured block size.
//
// Acquired cells are not zeroed. After Reset, previously acquired slices alias the cells that
// will be handed out next, so callers must write every cell they intend to read.
//
// An Arena is not safe for concurrent use.
type Arena[T any] struct {
	logger     *slog.Logger
	blockCells int

	blocks     []*block[T]
	current    int
	generation int

	// usage tracks acquisitions since the last Reset; its block fields are unused
	usage DetailedStatistics

	poison    T
	hasPoison bool
}

var _ Validatable = &Arena[int32]{}

// New creates an empty Arena. No memory is allocated until the first call to Acquire.
//
// blockCells - the minimum number of cells in each block. Values below 1 are replaced by
// DefaultBlockCells
func New[T any](logger *slog.Logger, blockCells int) *Arena[T] {
	if blockCells < 1 {
		blockCells = DefaultBlockCells
	}
	if logger == nil {
		logger = slog.Default()
	}

	a := &Arena[T]{
		logger:     logger,
		blockCells: blockCells,
	}
	a.clearCounters()
	return a
}

// SetPoison sets the value written over acquired cells in builds with the debug_greedy build tag.
// Without the tag the value is recorded but never written.
func (a *Arena[T]) SetPoison(value T) {
	a.poison = value
	a.hasPoison = true
}

// BlockCells returns the minimum block size of the arena
func (a *Arena[T]) BlockCells() int { return a.blockCells }

// Generation returns the number of times Reset has been called
func (a *Arena[T]) Generation() int { return a.generation }

// Acquire returns a slice of n cells. The slice's capacity is n, so appending to it never
// overwrites cells handed out by a later call. Requests for fewer than one cell return nil.
func (a *Arena[T]) Acquire(n int) []T {
	if n < 1 {
		return nil
	}

	for a.current < len(a.blocks) {
		b := a.blocks[a.current]
		if len(b.cells)-b.used >= n {
			return a.take(b, n)
		}
		a.current++
	}

	size := a.blockCells
	if n > size {
		size = n
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "Arena::Acquire allocating block",
		slog.Int("BlockIndex", len(a.blocks)),
		slog.Int("Cells", size),
		slog.Int("Requested", n))

	b := &block[T]{cells: make([]T, size)}
	a.blocks = append(a.blocks, b)
	a.current = len(a.blocks) - 1

	return a.take(b, n)
}

func (a *Arena[T]) take(b *block[T], n int) []T {
	cells := b.cells[b.used : b.used+n : b.used+n]
	b.used += n

	a.usage.AddAcquisition(n)

	debugPoison(a, cells)
	return cells
}

// Reset makes every cell of every retained block available again without releasing memory
func (a *Arena[T]) Reset() {
	for _, b := range a.blocks {
		b.used = 0
	}
	a.current = 0
	a.generation++
	a.clearCounters()
}

// Free releases every block held by the arena
func (a *Arena[T]) Free() {
	a.blocks = nil
	a.current = 0
	a.clearCounters()
}

func (a *Arena[T]) clearCounters() {
	a.usage.Clear()
}

// Validate performs internal consistency checks on the arena's block list
func (a *Arena[T]) Validate() error {
	if len(a.blocks) == 0 {
		if a.current != 0 || a.usage.AcquiredCells != 0 {
			return cerrors.Wrapf(ErrInconsistentArena, "arena holds no blocks but reports current block %d and %d acquired cells", a.current, a.usage.AcquiredCells)
		}
		return nil
	}

	if a.current >= len(a.blocks) {
		return cerrors.Wrapf(ErrInconsistentArena, "current block %d is past the end of %d blocks", a.current, len(a.blocks))
	}

	var used int
	for index, b := range a.blocks {
		if len(b.cells) < a.blockCells {
			return cerrors.Wrapf(ErrInconsistentArena, "block %d holds %d cells, fewer than the block size %d", index, len(b.cells), a.blockCells)
		}
		if b.used < 0 || b.used > len(b.cells) {
			return cerrors.Wrapf(ErrInconsistentArena, "block %d reports %d used cells out of %d", index, b.used, len(b.cells))
		}
		if index > a.current && b.used != 0 {
			return cerrors.Wrapf(ErrInconsistentArena, "block %d is past the current block %d but has %d used cells", index, a.current, b.used)
		}
		used += b.used
	}

	if used != a.usage.AcquiredCells {
		return cerrors.Wrapf(ErrInconsistentArena, "blocks hold %d used cells, but %d cells were acquired", used, a.usage.AcquiredCells)
	}

	return nil
}

// AddStatistics sums this arena's usage into the provided Statistics
func (a *Arena[T]) AddStatistics(stats *Statistics) {
	stats.BlockCount += len(a.blocks)
	for _, b := range a.blocks {
		stats.BlockCells += len(b.cells)
	}
	stats.AcquisitionCount += a.usage.AcquisitionCount
	stats.AcquiredCells += a.usage.AcquiredCells
}

// AddDetailedStatistics sums this arena's usage into the provided DetailedStatistics
func (a *Arena[T]) AddDetailedStatistics(stats *DetailedStatistics) {
	a.AddStatistics(&stats.Statistics)

	if a.usage.AcquisitionSizeMin < stats.AcquisitionSizeMin {
		stats.AcquisitionSizeMin = a.usage.AcquisitionSizeMin
	}
	if a.usage.AcquisitionSizeMax > stats.AcquisitionSizeMax {
		stats.AcquisitionSizeMax = a.usage.AcquisitionSizeMax
	}

	for _, b := range a.blocks {
		if tail := len(b.cells) - b.used; tail > 0 {
			stats.AddUnusedTail(tail)
		}
	}
}

// WriteJSON populates a json object with the arena's block usage
func (a *Arena[T]) WriteJSON(json jwriter.ObjectState) {
	json.Name("Generation").Int(a.generation)
	json.Name("BlockCells").Int(a.blockCells)
	json.Name("Acquisitions").Int(a.usage.AcquisitionCount)
	json.Name("AcquiredCells").Int(a.usage.AcquiredCells)

	blocks := json.Name("Blocks").Array()
	defer blocks.End()

	for _, b := range a.blocks {
		obj := blocks.Object()
		obj.Name("Cells").Int(len(b.cells))
		obj.Name("Used").Int(b.used)
		obj.End()
	}
}
