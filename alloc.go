package mscfb

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Allocator owns the sector allocation table and the SID ranges handed out
// to each region of the file.
type Allocator struct {
	Plan          *Plan
	BookSectorIds []int32
	MsatSectorIds []int32
	SatSectorIds  []int32
	DirSectorIds  []int32
	Sat           []int32
}

// NewAllocator lays the regions out back to back in the order payload, MSAT,
// SAT, directory and fills the SAT accordingly.
func NewAllocator(plan *Plan) *Allocator {
	sat := make([]int32, plan.SatEntries())
	for i := range sat {
		sat[i] = FREE_SECTOR
	}

	alloc := Allocator{
		Plan: plan,
		Sat:  sat,
	}

	var sect int32
	alloc.BookSectorIds = alloc.chain(&sect, plan.BookSectors)
	alloc.MsatSectorIds = alloc.mark(&sect, plan.MsatSectors, MSAT_SECTOR)
	alloc.SatSectorIds = alloc.mark(&sect, plan.SatSectors, SAT_SECTOR)
	alloc.DirSectorIds = alloc.chain(&sect, plan.DirSectors)

	return &alloc
}

// chain allocates count sectors starting at *sect, linked in order.
func (a *Allocator) chain(sect *int32, count int) []int32 {
	ids := make([]int32, 0, count)
	for i := 0; i < count; i++ {
		ids = append(ids, *sect)
		if i == count-1 {
			a.Sat[*sect] = END_OF_CHAIN
		} else {
			a.Sat[*sect] = *sect + 1
		}
		*sect++
	}
	return ids
}

// mark allocates count sectors starting at *sect, each tagged with value.
func (a *Allocator) mark(sect *int32, count int, value int32) []int32 {
	ids := make([]int32, 0, count)
	for i := 0; i < count; i++ {
		ids = append(ids, *sect)
		a.Sat[*sect] = value
		*sect++
	}
	return ids
}

func (a *Allocator) FirstBookSector() int32 {
	return firstOrEnd(a.BookSectorIds)
}

func (a *Allocator) FirstDirSector() int32 {
	return firstOrEnd(a.DirSectorIds)
}

func (a *Allocator) FirstMsatSector() int32 {
	return firstOrEnd(a.MsatSectorIds)
}

func firstOrEnd(ids []int32) int32 {
	if len(ids) == 0 {
		return END_OF_CHAIN
	}
	return ids[0]
}

func (a *Allocator) Next(index int32) (int32, error) {
	if index < 0 || int(index) >= len(a.Sat) {
		return 0, fmt.Errorf("invalid index: %v", index)
	}

	nextId := a.Sat[index]
	if nextId != END_OF_CHAIN && (nextId < 0 || int(nextId) >= len(a.Sat)) {
		return 0, fmt.Errorf("invalid next index: %v", nextId)
	}

	return nextId, nil
}

func (a *Allocator) Validate() error {
	if len(a.Sat) != a.Plan.SatEntries() {
		return fmt.Errorf("SAT has %v entries, but %v SAT sectors hold %v: %w",
			len(a.Sat), a.Plan.SatSectors, a.Plan.SatEntries(), ErrorInvalidCFB)
	}

	for _, msatSector := range a.MsatSectorIds {
		if int(msatSector) >= len(a.Sat) {
			return fmt.Errorf("SAT has %v entries, but %v is listed as an MSAT sector: %w",
				len(a.Sat), msatSector, ErrorInvalidCFB)
		}
		if a.Sat[msatSector] != MSAT_SECTOR {
			return fmt.Errorf("MSAT sector %v is not marked as such in the SAT: %w", msatSector, ErrorInvalidCFB)
		}
	}

	for _, satSector := range a.SatSectorIds {
		if int(satSector) >= len(a.Sat) {
			return fmt.Errorf("SAT has %v entries, but %v is listed as a SAT sector: %w",
				len(a.Sat), satSector, ErrorInvalidCFB)
		}
		if a.Sat[satSector] != SAT_SECTOR {
			return fmt.Errorf("SAT sector %v is not marked as such in the SAT: %w", satSector, ErrorInvalidCFB)
		}
	}

	used := 0
	pointees := make(map[int32]bool)
	for satIdx, next := range a.Sat {
		switch {
		case next >= 0:
			if int(next) >= len(a.Sat) {
				return fmt.Errorf("SAT entry %v points to sector %v, but the SAT has only %v entries: %w",
					satIdx, next, len(a.Sat), ErrorInvalidCFB)
			}
			if pointees[next] {
				return fmt.Errorf("SAT entry %v points to sector %v, which is already pointed to by another entry: %w",
					satIdx, next, ErrorInvalidCFB)
			}
			pointees[next] = true
		case next < MSAT_SECTOR:
			return fmt.Errorf("SAT entry %v holds unknown value %v: %w", satIdx, next, ErrorInvalidCFB)
		}
		if next != FREE_SECTOR {
			used++
		}
	}

	if used != a.Plan.TotalSectors() {
		return fmt.Errorf("SAT marks %v sectors used, plan allocates %v: %w", used, a.Plan.TotalSectors(), ErrorInvalidCFB)
	}

	book, err := NewChain(a, a.FirstBookSector())
	if err != nil {
		return err
	}
	if book.NumSectors() != a.Plan.BookSectors {
		return fmt.Errorf("stream chain has %v sectors, expected %v: %w", book.NumSectors(), a.Plan.BookSectors, ErrorInvalidCFB)
	}

	dir, err := NewChain(a, a.FirstDirSector())
	if err != nil {
		return err
	}
	if dir.NumSectors() != a.Plan.DirSectors {
		return fmt.Errorf("directory chain has %v sectors, expected %v: %w", dir.NumSectors(), a.Plan.DirSectors, ErrorInvalidCFB)
	}

	return nil
}

// Bytes packs the SAT as little-endian int32 values.
func (a *Allocator) Bytes() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, len(a.Sat)*4))
	_ = binary.Write(buf, binary.LittleEndian, a.Sat)
	return buf.Bytes()
}
