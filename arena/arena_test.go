package arena_test

import (
	"math"
	"testing"

	"github.com/bioarsenal/greedy/arena"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestArenaAcquireWithinBlock(t *testing.T) {
	a := arena.New[int32](slog.Default(), 10)

	first := a.Acquire(4)
	require.Len(t, first, 4)
	require.Equal(t, 4, cap(first))

	second := a.Acquire(6)
	require.Len(t, second, 6)

	for i := range first {
		first[i] = 1
	}
	for i := range second {
		second[i] = 2
	}
	// Appending to an acquired slice must not clobber the next acquisition
	first = append(first, 99)
	require.Equal(t, []int32{2, 2, 2, 2, 2, 2}, second)

	var stats arena.Statistics
	a.AddStatistics(&stats)
	require.Equal(t, arena.Statistics{
		BlockCount:       1,
		AcquisitionCount: 2,
		BlockCells:       10,
		AcquiredCells:    10,
	}, stats)

	require.NoError(t, a.Validate())
}

func TestArenaGrowsNewBlocks(t *testing.T) {
	a := arena.New[int32](slog.Default(), 8)

	require.Len(t, a.Acquire(5), 5)
	require.Len(t, a.Acquire(5), 5)
	require.Len(t, a.Acquire(20), 20)
	require.Len(t, a.Acquire(1), 1)

	var stats arena.DetailedStatistics
	stats.Clear()
	a.AddDetailedStatistics(&stats)

	// Blocks are bump allocated, so the tail of a passed-over block is not revisited until Reset
	require.Equal(t, arena.DetailedStatistics{
		Statistics: arena.Statistics{
			BlockCount:       4,
			AcquisitionCount: 4,
			BlockCells:       44,
			AcquiredCells:    31,
		},
		UnusedTailCount:    3,
		AcquisitionSizeMin: 1,
		AcquisitionSizeMax: 20,
		UnusedTailSizeMin:  3,
		UnusedTailSizeMax:  7,
	}, stats)

	require.NoError(t, a.Validate())
}

func TestArenaResetRetainsBlocks(t *testing.T) {
	a := arena.New[int32](slog.Default(), 8)

	cells := a.Acquire(8)
	for i := range cells {
		cells[i] = int32(i)
	}
	a.Acquire(8)
	require.Equal(t, 0, a.Generation())

	a.Reset()
	require.Equal(t, 1, a.Generation())
	require.NoError(t, a.Validate())

	// The first block is handed out again, with its previous contents intact
	reused := a.Acquire(3)
	if !arena.DebugEnabled {
		require.Equal(t, []int32{0, 1, 2}, reused)
	}

	var stats arena.Statistics
	a.AddStatistics(&stats)
	require.Equal(t, arena.Statistics{
		BlockCount:       2,
		AcquisitionCount: 1,
		BlockCells:       16,
		AcquiredCells:    3,
	}, stats)

	// Acquisition sizes only cover the current generation
	var detailed arena.DetailedStatistics
	detailed.Clear()
	a.AddDetailedStatistics(&detailed)
	require.Equal(t, 3, detailed.AcquisitionSizeMin)
	require.Equal(t, 3, detailed.AcquisitionSizeMax)
}

func TestArenaSkipsRetainedBlocksThatAreTooSmall(t *testing.T) {
	a := arena.New[int32](slog.Default(), 4)
	a.Acquire(4)
	a.Acquire(4)
	a.Reset()

	big := a.Acquire(6)
	require.Len(t, big, 6)

	var stats arena.Statistics
	a.AddStatistics(&stats)
	require.Equal(t, 3, stats.BlockCount)
	require.Equal(t, 14, stats.BlockCells)
	require.NoError(t, a.Validate())
}

func TestArenaFree(t *testing.T) {
	a := arena.New[int32](nil, 0)
	require.Equal(t, arena.DefaultBlockCells, a.BlockCells())

	require.Nil(t, a.Acquire(0))
	require.Nil(t, a.Acquire(-3))

	a.Acquire(1)
	a.Free()

	var stats arena.DetailedStatistics
	stats.Clear()
	a.AddDetailedStatistics(&stats)
	require.Equal(t, 0, stats.BlockCount)
	require.Equal(t, 0, stats.AcquisitionCount)
	require.Equal(t, math.MaxInt, stats.AcquisitionSizeMin)
	require.NoError(t, a.Validate())
}

func TestArenaPoison(t *testing.T) {
	type triple struct{ A, B, C int32 }

	a := arena.New[triple](slog.Default(), 4)
	a.SetPoison(triple{A: -7, B: -7, C: -7})

	cells := a.Acquire(2)
	cells[0] = triple{A: 1, B: 2, C: 3}
	cells[1] = triple{A: 4, B: 5, C: 6}
	a.Reset()

	cells = a.Acquire(2)
	if arena.DebugEnabled {
		require.Equal(t, []triple{{-7, -7, -7}, {-7, -7, -7}}, cells)
	} else {
		require.Equal(t, []triple{{1, 2, 3}, {4, 5, 6}}, cells)
	}
}

func TestArenaWriteJSON(t *testing.T) {
	a := arena.New[int32](slog.Default(), 4)
	a.Acquire(3)

	writer := jwriter.NewWriter()
	obj := writer.Object()
	a.WriteJSON(obj)
	obj.End()

	require.NoError(t, writer.Error())
	require.JSONEq(t, `{
		"Generation": 0,
		"BlockCells": 4,
		"Acquisitions": 1,
		"AcquiredCells": 3,
		"Blocks": [{"Cells": 4, "Used": 3}]
	}`, string(writer.Bytes()))
}

func TestStatisticsAccumulate(t *testing.T) {
	var total arena.DetailedStatistics
	total.Clear()

	var first arena.DetailedStatistics
	first.Clear()
	first.Statistics.BlockCount = 1
	first.AddAcquisition(5)
	first.AddUnusedTail(9)

	var second arena.DetailedStatistics
	second.Clear()
	second.Statistics.BlockCount = 2
	second.AddAcquisition(2)
	second.AddAcquisition(7)

	total.AddDetailedStatistics(&first)
	total.AddDetailedStatistics(&second)

	require.Equal(t, arena.DetailedStatistics{
		Statistics: arena.Statistics{
			BlockCount:       3,
			AcquisitionCount: 3,
			AcquiredCells:    14,
		},
		UnusedTailCount:    1,
		AcquisitionSizeMin: 2,
		AcquisitionSizeMax: 7,
		UnusedTailSizeMin:  9,
		UnusedTailSizeMax:  9,
	}, total)
}
