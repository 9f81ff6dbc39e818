package extend

import (
	"context"

	"github.com/bioarsenal/greedy/arena"
	"github.com/bioarsenal/greedy/greedy"
	"github.com/bioarsenal/greedy/internal/utils"
	"golang.org/x/exp/slog"
)

// PoolOptions configures a ContextPool. It is valid to leave all the fields blank.
type PoolOptions struct {
	// Config is passed to every greedy.Context the pool creates
	Config greedy.Config
	// ExternallySynchronized disables the pool's internal locking. Only set it when every call
	// to the pool is already serialized by the caller.
	ExternallySynchronized bool
}

// ContextPool hands out greedy.Context values so that parallel workers each own one. Contexts
// returned with Put keep their arenas and are handed out again before new ones are created.
type ContextPool struct {
	logger  *slog.Logger
	options PoolOptions
	mutex   utils.OptionalMutex

	idle      []*greedy.Context
	created   int
	destroyed bool
}

// NewContextPool creates a ContextPool holding one idle Context. The Context is created up front
// so that an unusable Config is reported here rather than by the first Get.
func NewContextPool(logger *slog.Logger, options PoolOptions) (*ContextPool, error) {
	if logger == nil {
		logger = slog.Default()
	}

	first, err := greedy.NewContext(logger, options.Config)
	if err != nil {
		return nil, err
	}

	return &ContextPool{
		logger:  logger,
		options: options,
		mutex:   utils.OptionalMutex{UseMutex: !options.ExternallySynchronized},
		idle:    []*greedy.Context{first},
		created: 1,
	}, nil
}

// Get returns an idle Context, creating one if none is available
func (p *ContextPool) Get() (*greedy.Context, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.destroyed {
		return nil, ErrPoolDestroyed
	}

	if last := len(p.idle) - 1; last >= 0 {
		c := p.idle[last]
		p.idle = p.idle[:last]
		return c, nil
	}

	p.logger.LogAttrs(context.Background(), slog.LevelDebug, "ContextPool::Get creating context",
		slog.Int("Created", p.created+1))

	c, err := greedy.NewContext(p.logger, p.options.Config)
	if err != nil {
		return nil, err
	}
	p.created++
	return c, nil
}

// Put returns a Context obtained from Get. Contexts put into a destroyed pool are destroyed.
func (p *ContextPool) Put(c *greedy.Context) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.destroyed {
		c.Destroy()
		return
	}
	p.idle = append(p.idle, c)
}

// Created returns the number of contexts the pool has created
func (p *ContextPool) Created() int {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	return p.created
}

// Idle returns the number of contexts waiting in the pool
func (p *ContextPool) Idle() int {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	return len(p.idle)
}

// Statistics sums the arena statistics of the idle contexts
func (p *ContextPool) Statistics() arena.DetailedStatistics {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	var stats arena.DetailedStatistics
	stats.Clear()
	for _, c := range p.idle {
		contextStats := c.Statistics()
		stats.AddDetailedStatistics(&contextStats)
	}
	return stats
}

// Destroy destroys every idle context. Contexts still checked out are destroyed when they are
// returned.
func (p *ContextPool) Destroy() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.logger.Debug("ContextPool::Destroy")
	for _, c := range p.idle {
		c.Destroy()
	}
	p.idle = nil
	p.destroyed = true
}
