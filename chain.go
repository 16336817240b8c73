package mscfb

import (
	"fmt"
)

// Chain is the ordered list of sectors holding one stream.
type Chain struct {
	Allocator *Allocator
	SectorIds []int32
}

func NewChain(allocator *Allocator, startingSectorId int32) (*Chain, error) {
	sectorIds := make([]int32, 0)
	seen := make(map[int32]bool)
	currentSectorId := startingSectorId

	var err error
	for currentSectorId != END_OF_CHAIN {
		if seen[currentSectorId] {
			return nil, fmt.Errorf("chain contained duplicate sector id %v: %w", currentSectorId, ErrorInvalidCFB)
		}
		seen[currentSectorId] = true

		sectorIds = append(sectorIds, currentSectorId)
		currentSectorId, err = allocator.Next(currentSectorId)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", err, ErrorInvalidCFB)
		}
	}

	return &Chain{
		Allocator: allocator,
		SectorIds: sectorIds,
	}, nil
}

func (c *Chain) NumSectors() int {
	return len(c.SectorIds)
}
