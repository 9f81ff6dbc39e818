package arena

import "math"

// Statistics summarizes the blocks held by one or more arenas and the cells handed out from them
type Statistics struct {
	BlockCount       int
	AcquisitionCount int
	BlockCells       int
	AcquiredCells    int
}

func (s *Statistics) Clear() {
	s.BlockCount = 0
	s.AcquisitionCount = 0
	s.BlockCells = 0
	s.AcquiredCells = 0
}

func (s *Statistics) AddStatistics(other *Statistics) {
	s.BlockCount += other.BlockCount
	s.AcquisitionCount += other.AcquisitionCount
	s.BlockCells += other.BlockCells
	s.AcquiredCells += other.AcquiredCells
}

// DetailedStatistics extends Statistics with the size range of acquisitions and of the unused
// tails of blocks
type DetailedStatistics struct {
	Statistics
	UnusedTailCount    int
	AcquisitionSizeMin int
	AcquisitionSizeMax int
	UnusedTailSizeMin  int
	UnusedTailSizeMax  int
}

func (s *DetailedStatistics) Clear() {
	s.Statistics.Clear()
	s.UnusedTailCount = 0
	s.AcquisitionSizeMin = math.MaxInt
	s.AcquisitionSizeMax = 0
	s.UnusedTailSizeMin = math.MaxInt
	s.UnusedTailSizeMax = 0
}

func (s *DetailedStatistics) AddUnusedTail(size int) {
	s.UnusedTailCount++

	if size < s.UnusedTailSizeMin {
		s.UnusedTailSizeMin = size
	}

	if size > s.UnusedTailSizeMax {
		s.UnusedTailSizeMax = size
	}
}

func (s *DetailedStatistics) AddAcquisition(size int) {
	s.AcquisitionCount++
	s.AcquiredCells += size

	if size < s.AcquisitionSizeMin {
		s.AcquisitionSizeMin = size
	}

	if size > s.AcquisitionSizeMax {
		s.AcquisitionSizeMax = size
	}
}

func (s *DetailedStatistics) AddDetailedStatistics(other *DetailedStatistics) {
	s.Statistics.AddStatistics(&other.Statistics)
	s.UnusedTailCount += other.UnusedTailCount

	if other.UnusedTailSizeMin < s.UnusedTailSizeMin {
		s.UnusedTailSizeMin = other.UnusedTailSizeMin
	}

	if other.UnusedTailSizeMax > s.UnusedTailSizeMax {
		s.UnusedTailSizeMax = other.UnusedTailSizeMax
	}

	if other.AcquisitionSizeMin < s.AcquisitionSizeMin {
		s.AcquisitionSizeMin = other.AcquisitionSizeMin
	}

	if other.AcquisitionSizeMax > s.AcquisitionSizeMax {
		s.AcquisitionSizeMax = other.AcquisitionSizeMax
	}
}
