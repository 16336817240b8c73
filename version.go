package mscfb

import "fmt"

// V3 is the only version written: 512-byte sectors and 32-bit stream sizes.
const V3 Version = 3

type Version int

func (v Version) String() string {
	return fmt.Sprintf("v%d", int(v))
}

// Returns the major version number stored in the header.
func (v Version) Number() uint16 {
	return uint16(v)
}

// Returns the sector shift used in this version.
func (v Version) SectorShift() uint16 {
	return uint16(v * 3)
}

// Returns the largest stream length a directory entry can record.
func (v Version) MaxStreamLen() uint64 {
	switch v {
	case V3:
		return 0xffffffff
	default:
		return 0xffffffffffffffff
	}
}
