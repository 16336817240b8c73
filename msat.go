package mscfb

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// MasterSAT lists the SAT sectors. The first 109 entries are embedded in the
// header; the rest live in overflow sectors whose last slot links to the next
// overflow sector, or END_OF_CHAIN in the final one.
type MasterSAT struct {
	Header        [NUM_MSAT_ENTRIES_IN_HEADER]int32
	Overflow      []int32
	MsatSectorIds []int32
}

func NewMasterSAT(satSectorIds, msatSectorIds []int32) (*MasterSAT, error) {
	overflowCount := 0
	if len(satSectorIds) > NUM_MSAT_ENTRIES_IN_HEADER {
		overflowCount = len(satSectorIds) - NUM_MSAT_ENTRIES_IN_HEADER
	}

	needed := (overflowCount + MSAT_ENTRIES_PER_SECTOR - 1) / MSAT_ENTRIES_PER_SECTOR
	if needed != len(msatSectorIds) {
		return nil, fmt.Errorf("%v SAT sectors need %v MSAT sectors, got %v: %w",
			len(satSectorIds), needed, len(msatSectorIds), ErrorInvalidCFB)
	}

	msat := MasterSAT{
		Overflow:      make([]int32, SAT_ENTRIES_PER_SECTOR*len(msatSectorIds)),
		MsatSectorIds: msatSectorIds,
	}

	for i := range msat.Header {
		if i < len(satSectorIds) {
			msat.Header[i] = satSectorIds[i]
		} else {
			msat.Header[i] = FREE_SECTOR
		}
	}

	remaining := satSectorIds[len(satSectorIds)-overflowCount:]
	for sect := range msatSectorIds {
		slots := msat.Overflow[sect*SAT_ENTRIES_PER_SECTOR : (sect+1)*SAT_ENTRIES_PER_SECTOR]
		for i := 0; i < MSAT_ENTRIES_PER_SECTOR; i++ {
			if idx := sect*MSAT_ENTRIES_PER_SECTOR + i; idx < len(remaining) {
				slots[i] = remaining[idx]
			} else {
				slots[i] = FREE_SECTOR
			}
		}

		if sect+1 < len(msatSectorIds) {
			slots[MSAT_ENTRIES_PER_SECTOR] = msatSectorIds[sect+1]
		} else {
			slots[MSAT_ENTRIES_PER_SECTOR] = END_OF_CHAIN
		}
	}

	return &msat, nil
}

// FirstSector returns the first overflow sector, or END_OF_CHAIN if the
// header holds the whole MSAT.
func (m *MasterSAT) FirstSector() int32 {
	return firstOrEnd(m.MsatSectorIds)
}

// HeaderBytes packs the 109 header entries, 436 bytes.
func (m *MasterSAT) HeaderBytes() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, NUM_MSAT_ENTRIES_IN_HEADER*4))
	_ = binary.Write(buf, binary.LittleEndian, m.Header[:])
	return buf.Bytes()
}

// OverflowBytes packs the overflow sectors; empty when there are none.
func (m *MasterSAT) OverflowBytes() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, len(m.Overflow)*4))
	_ = binary.Write(buf, binary.LittleEndian, m.Overflow)
	return buf.Bytes()
}
