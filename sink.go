package mscfb

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"syscall"
)

// IsWriteTooLarge reports whether err means the sink refused a write because
// of its size, as opposed to any other I/O failure.
func IsWriteTooLarge(err error) bool {
	return errors.Is(err, ErrorWriteTooLarge) || errors.Is(err, syscall.EINVAL)
}

// writeAll writes data to w in one call. If the sink rejects the call as too
// large, the same data is written again in chunkSize pieces.
func writeAll(w io.Writer, data []byte, chunkSize int, logger *slog.Logger) (int64, error) {
	n, err := writeFull(w, data)
	if err == nil {
		return n, nil
	}
	if !IsWriteTooLarge(err) {
		return n, fmt.Errorf("write compound file: %w", err)
	}

	logger.Warn("sink rejected single write, retrying in chunks",
		"size", len(data), "chunk_size", chunkSize, "error", err)

	var written int64
	for offset := 0; offset < len(data); offset += chunkSize {
		end := offset + chunkSize
		if end > len(data) {
			end = len(data)
		}

		n, err := writeFull(w, data[offset:end])
		written += n
		if err != nil {
			return written, fmt.Errorf("write compound file chunk at offset %v: %w", offset, err)
		}
	}

	logger.Debug("chunked write complete", "size", written)
	return written, nil
}

func writeFull(w io.Writer, p []byte) (int64, error) {
	n, err := w.Write(p)
	if err != nil {
		return int64(n), err
	}
	if n != len(p) {
		return int64(n), io.ErrShortWrite
	}
	return int64(n), nil
}
