package mscfb

import (
	"fmt"
	"io"
)

// Stream is the single named payload carried by the compound file.
type Stream struct {
	Name string
	Data []byte
}

func NewStream(name string, data []byte) (*Stream, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	if _, err := streamSizeField(uint64(len(data)), false); err != nil {
		return nil, err
	}

	return &Stream{
		Name: name,
		Data: data,
	}, nil
}

// Len returns the unpadded payload length.
func (s *Stream) Len() int {
	return len(s.Data)
}

// PaddedLen returns the length the payload occupies on disk.
func (s *Stream) PaddedLen() int {
	return PaddedStreamLen(len(s.Data))
}

// PaddedStreamLen rounds n up to the next STREAM_ALIGN boundary. An empty
// stream still occupies one full alignment unit.
func PaddedStreamLen(n int) int {
	if n <= 0 {
		return STREAM_ALIGN
	}

	return (n + STREAM_ALIGN - 1) / STREAM_ALIGN * STREAM_ALIGN
}

// SizeField returns the length recorded in the stream's directory entry:
// the padded length when padded is set, the payload length otherwise.
func (s *Stream) SizeField(padded bool) (uint32, error) {
	return streamSizeField(uint64(len(s.Data)), padded)
}

func streamSizeField(n uint64, padded bool) (uint32, error) {
	size := n
	if padded {
		align := uint64(STREAM_ALIGN)
		size = max(align, (n+align-1)/align*align)
	}

	if size > V3.MaxStreamLen() {
		if padded {
			return 0, fmt.Errorf("stream of %v bytes pads to %v, max is %v: %w", n, size, V3.MaxStreamLen(), ErrorStreamTooLarge)
		}
		return 0, fmt.Errorf("stream is %v bytes, max is %v: %w", n, V3.MaxStreamLen(), ErrorStreamTooLarge)
	}

	return uint32(size), nil
}

// writePadded writes the payload followed by zero padding up to PaddedLen.
func (s *Stream) writePadded(w io.Writer) error {
	if _, err := w.Write(s.Data); err != nil {
		return err
	}

	padding := make([]byte, s.PaddedLen()-len(s.Data))
	if _, err := w.Write(padding); err != nil {
		return err
	}

	return nil
}
