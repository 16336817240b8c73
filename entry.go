package mscfb

import (
	"fmt"

	"github.com/google/uuid"
)

// Entry is a read-only summary of a directory entry as it was written.
type Entry struct {
	Name        string
	Path        string
	ObjType     ObjectType
	CLSID       uuid.UUID
	StartSector int32
	StreamLen   uint64
}

func NewEntry(dirEntry *DirEntry, path string) *Entry {
	return &Entry{
		Name:        dirEntry.Name,
		Path:        path,
		ObjType:     dirEntry.ObjType,
		CLSID:       dirEntry.CLSID,
		StartSector: dirEntry.StartingSector,
		StreamLen:   uint64(dirEntry.StreamSize),
	}
}

func (e *Entry) String() string {
	if e.CLSID != uuid.Nil {
		return fmt.Sprintf("%-8v %v len=%v start=%v clsid=%v", e.ObjType, e.Path, e.StreamLen, e.StartSector, e.CLSID)
	}
	return fmt.Sprintf("%-8v %v len=%v start=%v", e.ObjType, e.Path, e.StreamLen, e.StartSector)
}
