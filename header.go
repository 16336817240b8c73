package mscfb

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/google/uuid"
)

// Header holds the fields of the 76-byte header preamble. The embedded MSAT
// that completes the header sector is owned by MasterSAT.
type Header struct {
	Version            Version
	ClassID            uuid.UUID
	NumSatSectors      uint32
	FirstDirSector     int32
	FirstMinisatSector int32
	NumMinisatSectors  uint32
	FirstMsatSector    int32
	NumMsatSectors     uint32
}

const (
	reservedAfterMiniShift = 10 // 6 reserved bytes plus the v3 directory sector count
	transactionSignature   = 0
)

func NewHeader(numSatSectors int, firstDirSector int32, firstMsatSector int32, numMsatSectors int) *Header {
	return &Header{
		Version:            V3,
		ClassID:            uuid.Nil,
		NumSatSectors:      uint32(numSatSectors),
		FirstDirSector:     firstDirSector,
		FirstMinisatSector: END_OF_CHAIN,
		NumMinisatSectors:  0,
		FirstMsatSector:    firstMsatSector,
		NumMsatSectors:     uint32(numMsatSectors),
	}
}

func (h *Header) MarshalBinary() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, HEADER_FIELDS_LEN))
	if err := h.writeTo(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (h *Header) writeTo(writer io.Writer) error {
	_, err := writer.Write(MAGIC_NUMBER)
	if err != nil {
		return err
	}

	_, err = writer.Write(h.ClassID[:])
	if err != nil {
		return err
	}

	err = binary.Write(writer, binary.LittleEndian, MINOR_VERSION)
	if err != nil {
		return err
	}

	err = binary.Write(writer, binary.LittleEndian, h.Version.Number())
	if err != nil {
		return err
	}

	err = binary.Write(writer, binary.LittleEndian, BYTE_ORDER_MARK)
	if err != nil {
		return err
	}

	err = binary.Write(writer, binary.LittleEndian, h.Version.SectorShift())
	if err != nil {
		return err
	}

	err = binary.Write(writer, binary.LittleEndian, MINI_SECTOR_SHIFT)
	if err != nil {
		return err
	}

	_, err = writer.Write(make([]byte, reservedAfterMiniShift))
	if err != nil {
		return err
	}

	fields := []interface{}{
		h.NumSatSectors,
		h.FirstDirSector,
		uint32(transactionSignature),
		MINI_STREAM_CUTOFF,
		h.FirstMinisatSector,
		h.NumMinisatSectors,
		h.FirstMsatSector,
		h.NumMsatSectors,
	}
	for _, field := range fields {
		err = binary.Write(writer, binary.LittleEndian, field)
		if err != nil {
			return err
		}
	}

	return nil
}
