package mscfb

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
)

const dirEntryNameLen = 64

type DirEntry struct {
	Name           string
	ObjType        ObjectType
	Color          Color
	LeftSibling    int32
	RightSibling   int32
	Child          int32
	CLSID          uuid.UUID
	StateBits      uint32
	CreationTime   uint64
	ModifiedTime   uint64
	StartingSector int32
	StreamSize     uint32
}

func NewDirEntry(name string, objType ObjectType) *DirEntry {
	return &DirEntry{
		Name:           name,
		ObjType:        objType,
		Color:          Black,
		LeftSibling:    NO_STREAM,
		RightSibling:   NO_STREAM,
		Child:          NO_STREAM,
		CLSID:          uuid.Nil,
		StartingSector: END_OF_CHAIN,
		StreamSize:     0,
	}
}

// MarshalBinary packs the entry into its 128-byte on-disk form. The name is
// stored as null-terminated UTF-16LE; an empty name is stored with length 0.
func (d *DirEntry) MarshalBinary() ([]byte, error) {
	var name [dirEntryNameLen]byte
	var nameLen uint16
	if d.Name != "" {
		encoded, err := encodeName(d.Name)
		if err != nil {
			return nil, fmt.Errorf("encode name %q: %w", d.Name, ErrorInvalidName)
		}
		// room for the terminator
		if len(encoded)+2 > dirEntryNameLen {
			return nil, fmt.Errorf("name %q does not fit in %v bytes: %w", d.Name, dirEntryNameLen, ErrorInvalidName)
		}
		copy(name[:], encoded)
		nameLen = uint16(len(encoded) + 2)
	}

	buf := bytes.NewBuffer(make([]byte, 0, DIR_ENTRY_LEN))
	fields := []interface{}{
		name,
		nameLen,
		d.ObjType.AsByte(),
		d.Color.AsByte(),
		d.LeftSibling,
		d.RightSibling,
		d.Child,
		[16]byte(d.CLSID),
		d.StateBits,
		d.CreationTime,
		d.ModifiedTime,
		d.StartingSector,
		d.StreamSize,
		uint32(0),
	}
	for _, field := range fields {
		if err := binary.Write(buf, binary.LittleEndian, field); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}
