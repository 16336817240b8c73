package mscfb

import (
	"bytes"
	"fmt"
	"io"
)

// meaningfulDirEntries counts the Root Entry and the payload stream.
const meaningfulDirEntries = 2

// CompoundFile is a fully laid out compound file holding one stream. It is
// built once and never mutated.
type CompoundFile struct {
	Stream    *Stream
	Plan      *Plan
	Allocator *Allocator
	Directory *Directory
	MSAT      *MasterSAT
	Header    *Header

	headerBytes []byte
	dirBytes    []byte
	opts        *options
}

// Build lays out a compound file holding data as a stream called name.
// Nothing is written; all layout errors are reported here.
func Build(name string, data []byte, opts ...Option) (*CompoundFile, error) {
	o := newOptions(opts)

	stream, err := NewStream(name, data)
	if err != nil {
		return nil, err
	}

	plan, err := PlanSectors(stream.PaddedLen(), dirStreamLen(meaningfulDirEntries))
	if err != nil {
		return nil, err
	}
	o.logger.Debug("planned compound file",
		"stream", name,
		"stream_len", stream.Len(),
		"padded_len", stream.PaddedLen(),
		"book_sectors", plan.BookSectors,
		"msat_sectors", plan.MsatSectors,
		"sat_sectors", plan.SatSectors,
		"dir_sectors", plan.DirSectors,
		"validation", o.validation.String())

	allocator := NewAllocator(plan)

	streamSize, err := stream.SizeField(o.paddedSize)
	if err != nil {
		return nil, err
	}
	directory, err := NewDirectory(name, allocator.FirstBookSector(), streamSize, o.classID)
	if err != nil {
		return nil, err
	}
	if directory.Len() != plan.DirSectors*SECTOR_LEN {
		return nil, fmt.Errorf("directory is %v bytes, planned %v: %w", directory.Len(), plan.DirSectors*SECTOR_LEN, ErrorInvalidCFB)
	}

	if o.validation.IsStrict() {
		if err := allocator.Validate(); err != nil {
			return nil, err
		}
		if err := directory.Validate(); err != nil {
			return nil, err
		}
	}

	msat, err := NewMasterSAT(allocator.SatSectorIds, allocator.MsatSectorIds)
	if err != nil {
		return nil, err
	}

	header := NewHeader(plan.SatSectors, allocator.FirstDirSector(), msat.FirstSector(), plan.MsatSectors)

	headerBytes, err := header.MarshalBinary()
	if err != nil {
		return nil, err
	}
	if len(headerBytes)+NUM_MSAT_ENTRIES_IN_HEADER*4 != HEADER_LEN {
		return nil, fmt.Errorf("header is %v bytes, expected %v: %w", len(headerBytes), HEADER_FIELDS_LEN, ErrorInvalidCFB)
	}

	dirBytes, err := directory.Bytes()
	if err != nil {
		return nil, err
	}

	return &CompoundFile{
		Stream:    stream,
		Plan:      plan,
		Allocator: allocator,
		Directory: directory,
		MSAT:      msat,
		Header:    header,

		headerBytes: headerBytes,
		dirBytes:    dirBytes,
		opts:        o,
	}, nil
}

func dirStreamLen(entries int) int {
	sectors := (entries + DIR_ENTRIES_PER_SECTOR - 1) / DIR_ENTRIES_PER_SECTOR
	return sectors * SECTOR_LEN
}

// Len returns the size of the assembled file in bytes.
func (c *CompoundFile) Len() int {
	return HEADER_LEN + c.Plan.TotalSectors()*SECTOR_LEN
}

// Bytes assembles the file: header, header MSAT, padded stream, MSAT
// overflow sectors, SAT and directory, in sector order.
func (c *CompoundFile) Bytes() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, c.Len()))
	buf.Write(c.headerBytes)
	buf.Write(c.MSAT.HeaderBytes())
	_ = c.Stream.writePadded(buf)
	buf.Write(c.MSAT.OverflowBytes())
	buf.Write(c.Allocator.Bytes())
	buf.Write(c.dirBytes)
	return buf.Bytes()
}

// WriteTo writes the assembled file to w. Either every byte is written or an
// error is returned; a partially written sink is not a valid file.
func (c *CompoundFile) WriteTo(w io.Writer) (int64, error) {
	data := c.Bytes()
	c.opts.logger.Debug("writing compound file", "stream", c.Stream.Name, "size", len(data))
	return writeAll(w, data, c.opts.chunkSize, c.opts.logger)
}

// Entries lists the root storage and the stream.
func (c *CompoundFile) Entries() []*Entry {
	root := c.Directory.RootDirEntry()
	stream := c.Directory.StreamDirEntry()
	return []*Entry{
		NewEntry(root, "/"),
		NewEntry(stream, "/"+stream.Name),
	}
}

// Write builds a compound file holding data as a stream called name and
// writes it to w.
func Write(w io.Writer, name string, data []byte, opts ...Option) error {
	cf, err := Build(name, data, opts...)
	if err != nil {
		return err
	}

	_, err = cf.WriteTo(w)
	return err
}

// WriteStream is Write for a payload read from r. The whole payload is read
// into memory first since every table depends on its final length.
func WriteStream(w io.Writer, name string, r io.Reader, opts ...Option) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read stream %q: %w", name, err)
	}

	return Write(w, name, data, opts...)
}
