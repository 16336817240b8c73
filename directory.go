package mscfb

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
)

// Directory is the flat list of entries written to the directory stream:
// the root storage, the one stream and unallocated entries filling out the
// last sector.
type Directory struct {
	DirEntries []*DirEntry
}

// NewDirectory builds the entries for a root holding a single stream whose
// data starts at startSector and is streamSize bytes long.
func NewDirectory(streamName string, startSector int32, streamSize uint32, rootCLSID uuid.UUID) (*Directory, error) {
	if err := ValidateName(streamName); err != nil {
		return nil, err
	}

	root := NewDirEntry(ROOT_DIR_NAME, ObjRoot)
	root.Child = 1
	root.CLSID = rootCLSID

	stream := NewDirEntry(streamName, ObjStream)
	stream.StartingSector = startSector
	stream.StreamSize = streamSize

	entries := []*DirEntry{root, stream}
	for len(entries)%DIR_ENTRIES_PER_SECTOR != 0 {
		entries = append(entries, NewDirEntry("", ObjUnallocated))
	}

	return &Directory{DirEntries: entries}, nil
}

func (d *Directory) RootDirEntry() *DirEntry {
	return d.DirEntries[ROOT_STREAM_ID]
}

// StreamDirEntry returns the entry of the payload stream.
func (d *Directory) StreamDirEntry() *DirEntry {
	return d.DirEntries[d.RootDirEntry().Child]
}

// Len returns the length of the directory stream in bytes.
func (d *Directory) Len() int {
	return len(d.DirEntries) * DIR_ENTRY_LEN
}

func (d *Directory) Validate() error {
	if len(d.DirEntries) == 0 {
		return fmt.Errorf("directory has no entries: %w", ErrorInvalidCFB)
	}

	if len(d.DirEntries)%DIR_ENTRIES_PER_SECTOR != 0 {
		return fmt.Errorf("directory has %v entries, not a multiple of %v: %w",
			len(d.DirEntries), DIR_ENTRIES_PER_SECTOR, ErrorInvalidCFB)
	}

	if d.RootDirEntry().ObjType != ObjRoot {
		return fmt.Errorf("root entry has object type: %v: %w", d.RootDirEntry().ObjType, ErrorInvalidCFB)
	}

	for id, dirEntry := range d.DirEntries {
		if id != int(ROOT_STREAM_ID) && dirEntry.ObjType == ObjRoot {
			return fmt.Errorf("non-root entry %v with object type: %v: %w", id, dirEntry.ObjType, ErrorInvalidCFB)
		}

		for _, link := range []int32{dirEntry.LeftSibling, dirEntry.RightSibling, dirEntry.Child} {
			if link != NO_STREAM && (link < 0 || int(link) >= len(d.DirEntries)) {
				return fmt.Errorf("entry %v links to %v, but directory entry count is %v: %w",
					id, link, len(d.DirEntries), ErrorInvalidCFB)
			}
			if link == int32(id) {
				return fmt.Errorf("entry %v links to itself: %w", id, ErrorInvalidCFB)
			}
		}
	}

	return nil
}

// Bytes packs every entry back to back.
func (d *Directory) Bytes() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, d.Len()))
	for id, dirEntry := range d.DirEntries {
		b, err := dirEntry.MarshalBinary()
		if err != nil {
			return nil, fmt.Errorf("directory entry %v: %w", id, err)
		}
		buf.Write(b)
	}
	return buf.Bytes(), nil
}
