package greedy

import (
	"context"

	"github.com/bioarsenal/greedy/arena"
	"github.com/bioarsenal/greedy/edit"
	cerrors "github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"golang.org/x/exp/slog"
)

// Context owns the scratch memory of the greedy drivers: the arenas that wavefront cells are
// drawn from, the per-round wavefront index and the per-round best scores. A Context is created
// once and reused across any number of alignments, each of which starts by rewinding the arenas
// without releasing their blocks.
//
// A Context is not safe for concurrent use. Parallel callers should hold one Context per worker.
type Context struct {
	logger    *slog.Logger
	config    Config
	unreached int32

	rows    *arena.Arena[int32]
	triples *arena.Arena[CostTriple]

	waves       []wave
	affineWaves []affineWave
	// best[d] is the highest score found in rounds 0 through d
	best []int

	alignments int
	destroyed  bool
}

var _ arena.Validatable = &Context{}

// NewContext creates a Context. The zero Config selects DefaultConfig.
//
// logger - receives debug messages about arena growth and aborted alignments. A nil logger is
// replaced by slog.Default
func NewContext(logger *slog.Logger, cfg Config) (*Context, error) {
	cfg = cfg.withDefaults()
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	unreached := int32(-cfg.Large)
	triples := arena.New[CostTriple](logger, cfg.MaxSpace)
	triples.SetPoison(CostTriple{Insertion: unreached, Match: unreached, Deletion: unreached})
	rows := arena.New[int32](logger, cfg.MaxSpace)
	rows.SetPoison(unreached)

	return &Context{
		logger:    logger,
		config:    cfg,
		unreached: unreached,
		rows:      rows,
		triples:   triples,
	}, nil
}

// Config returns the configuration the Context was created with, with defaults applied
func (c *Context) Config() Config { return c.config }

// Alignments returns the number of alignments the Context has started
func (c *Context) Alignments() int { return c.alignments }

// Destroy releases the Context's memory. Any later alignment request fails with
// ErrContextDestroyed.
func (c *Context) Destroy() {
	c.logger.Debug("Context::Destroy")

	c.rows.Free()
	c.triples.Free()
	c.waves = nil
	c.affineWaves = nil
	c.best = nil
	c.destroyed = true
}

// Statistics reports the arena usage of the most recent alignment and the blocks retained
// across alignments
func (c *Context) Statistics() arena.DetailedStatistics {
	var stats arena.DetailedStatistics
	stats.Clear()
	c.rows.AddDetailedStatistics(&stats)
	c.triples.AddDetailedStatistics(&stats)
	return stats
}

// Validate performs internal consistency checks on the Context's arenas and wavefront index
func (c *Context) Validate() error {
	err := c.rows.Validate()
	if err != nil {
		return cerrors.Wrap(err, "linear wavefront arena")
	}
	err = c.triples.Validate()
	if err != nil {
		return cerrors.Wrap(err, "affine wavefront arena")
	}

	for d, w := range c.waves {
		if !w.empty() && len(w.rows) != w.upper-w.lower+1 {
			return cerrors.AssertionFailedf("wave %d covers diagonals [%d, %d] but holds %d rows", d, w.lower, w.upper, len(w.rows))
		}
	}
	for d, w := range c.affineWaves {
		if !w.empty() && len(w.cells) != w.upper-w.lower+1 {
			return cerrors.AssertionFailedf("affine row %d covers diagonals [%d, %d] but holds %d cells", d, w.lower, w.upper, len(w.cells))
		}
	}
	return nil
}

// WriteJSON populates a json object with the Context's configuration and arena usage
func (c *Context) WriteJSON(json jwriter.ObjectState) {
	json.Name("Large").Int(c.config.Large)
	json.Name("MaxSpace").Int(c.config.MaxSpace)
	json.Name("ErrorFraction").Int(c.config.ErrorFraction)
	json.Name("Alignments").Int(c.alignments)
	json.Name("Destroyed").Bool(c.destroyed)

	rows := json.Name("Rows").Object()
	c.rows.WriteJSON(rows)
	rows.End()

	triples := json.Name("Triples").Object()
	c.triples.WriteJSON(triples)
	triples.End()
}

// begin validates the inputs shared by both drivers and rewinds the Context
func (c *Context) begin(seq1, seq2 []byte) error {
	if c.destroyed {
		return ErrContextDestroyed
	}
	if len(seq1) >= c.config.Large || len(seq2) >= c.config.Large {
		return cerrors.Wrapf(ErrInvalidParams, "sequence lengths (%d, %d) must be below %d", len(seq1), len(seq2), c.config.Large)
	}

	c.alignments++
	c.rows.Reset()
	c.triples.Reset()
	c.waves = c.waves[:0]
	c.affineWaves = c.affineWaves[:0]
	c.best = c.best[:0]

	arena.DebugValidate(c)
	return nil
}

// bestBefore returns the best score found in rounds 0 through d, treating rounds before the
// first as scoring zero
func (c *Context) bestBefore(d int) int {
	if d < 0 {
		return 0
	}
	return c.best[d]
}

func (c *Context) acquireRows(n int) ([]int32, error) {
	if n > c.config.MaxSpace {
		return nil, cerrors.Wrapf(ErrSpaceExhausted, "round needs %d diagonals, limit is %d", n, c.config.MaxSpace)
	}
	return c.rows.Acquire(n), nil
}

func (c *Context) acquireTriples(n int) ([]CostTriple, error) {
	if n > c.config.MaxSpace {
		return nil, cerrors.Wrapf(ErrSpaceExhausted, "round needs %d diagonals, limit is %d", n, c.config.MaxSpace)
	}
	return c.triples.Acquire(n), nil
}

// abort builds the error returned when an alignment stops before completing. reason is either
// a wrapped ErrSpaceExhausted or the error of a cancelled context.Context.
func (c *Context) abort(ctx context.Context, reason error, point bestPoint, s scoring) error {
	c.logger.LogAttrs(ctx, slog.LevelDebug, "Context::abort",
		slog.String("Reason", reason.Error()),
		slog.Int("End1", point.i),
		slog.Int("End2", point.i-point.k),
		slog.Int("Cost", point.d))

	return &AbortError{
		Reason: reason,
		End1:   point.i,
		End2:   point.i - point.k,
		Score:  point.score / s.factor,
	}
}

// bestPoint is the highest scoring wavefront point seen so far. d is the difference count of
// the linear driver or the cost row of the affine driver.
type bestPoint struct {
	d     int
	k     int
	i     int
	score int
}

// trivial is the result of an alignment that ends at its origin
func trivial() *Result {
	return &Result{Script: edit.NewScript()}
}
