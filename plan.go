package mscfb

import (
	"fmt"
	"math"
)

// MaxPlannedSectors bounds the sectors after the header. SIDs are int32, so
// the format's own MAX_REGULAR_SECTOR is out of reach.
const MaxPlannedSectors = min(MAX_REGULAR_SECTOR, math.MaxInt32)

// Plan holds the sector counts of every region of the file, excluding the
// header sector.
type Plan struct {
	BookSectors int
	MsatSectors int
	SatSectors  int
	DirSectors  int
}

// PlanSectors sizes the SAT and MSAT for a padded stream of streamLen bytes
// and a directory stream of dirLen bytes.
//
// Every SAT sector added must itself be described by the SAT, and once the
// SAT outgrows the 109 slots of the header MSAT every extra MSAT sector must
// be described too, so the counts are grown until they cover themselves.
func PlanSectors(streamLen, dirLen int) (*Plan, error) {
	if streamLen <= 0 || streamLen%SECTOR_LEN != 0 {
		return nil, fmt.Errorf("stream length %v is not a positive multiple of %v: %w", streamLen, SECTOR_LEN, ErrorInvalidCFB)
	}
	if dirLen <= 0 || dirLen%SECTOR_LEN != 0 {
		return nil, fmt.Errorf("directory length %v is not a positive multiple of %v: %w", dirLen, SECTOR_LEN, ErrorInvalidCFB)
	}

	bookSectors := streamLen / SECTOR_LEN
	dirSectors := dirLen / SECTOR_LEN

	total := bookSectors + dirSectors
	if err := checkSectorCount(total); err != nil {
		return nil, err
	}
	satCount := 0
	msatCount := 0
	satLimit := NUM_MSAT_ENTRIES_IN_HEADER

	slack := SAT_ENTRIES_PER_SECTOR*satCount - total
	for total > SAT_ENTRIES_PER_SECTOR*satCount || satCount > satLimit {
		satCount++
		total++
		if satCount > satLimit {
			msatCount++
			total++
			satLimit += MSAT_ENTRIES_PER_SECTOR
		}

		next := SAT_ENTRIES_PER_SECTOR*satCount - total
		if err := checkSlack(slack, next, satCount); err != nil {
			return nil, err
		}
		slack = next
	}

	if err := checkSectorCount(total); err != nil {
		return nil, err
	}

	return &Plan{
		BookSectors: bookSectors,
		MsatSectors: msatCount,
		SatSectors:  satCount,
		DirSectors:  dirSectors,
	}, nil
}

func checkSectorCount(total int) error {
	if int64(total) > MaxPlannedSectors {
		return fmt.Errorf("file needs %v sectors, max is %v: %w", total, MaxPlannedSectors, ErrorTooManySectors)
	}
	return nil
}

// checkSlack fails unless a planner pass grew the free SAT capacity. Each
// pass adds 128 slots for at most 2 new sectors.
func checkSlack(prev, next, satCount int) error {
	if next <= prev {
		return fmt.Errorf("slack went from %v to %v at %v SAT sectors: %w", prev, next, satCount, ErrorPlanDiverged)
	}
	return nil
}

// TotalSectors returns the number of allocated sectors after the header.
func (p *Plan) TotalSectors() int {
	return p.BookSectors + p.MsatSectors + p.SatSectors + p.DirSectors
}

// SatEntries returns the length of the SAT, including free slots.
func (p *Plan) SatEntries() int {
	return p.SatSectors * SAT_ENTRIES_PER_SECTOR
}
