// mscfb wraps a single payload, typically a BIFF workbook stream, in an OLE2
// compound file so that legacy spreadsheet readers can open it.
//
//	mscfb -o book.xls workbook.bin
//	mscfb -n Book -o book.xls --checksum workbook.bin.zst
package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/spf13/pflag"
	"github.com/zeebo/blake3"

	mscfb "github.com/asalih/go-cfbwrite"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type config struct {
	name       string
	output     string
	decompress string
	chunkSize  int
	classID    string
	paddedSize bool
	checksum   bool
	verbose    bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var cfg config

	flagSet := pflag.NewFlagSet("mscfb", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&cfg.name, "name", "n", mscfb.DEFAULT_STREAM_NAME, "name of the stream inside the compound file")
	flagSet.StringVarP(&cfg.output, "output", "o", "", "output path, or - for stdout")
	flagSet.StringVar(&cfg.decompress, "decompress", "auto", "input compression: none, zstd, gzip, lz4 or auto (by extension)")
	flagSet.IntVar(&cfg.chunkSize, "chunk-size", mscfb.DEFAULT_WRITE_CHUNK, "chunk size used when the sink rejects one large write")
	flagSet.StringVar(&cfg.classID, "class-id", "", "CLSID stored in the root entry")
	flagSet.BoolVar(&cfg.paddedSize, "padded-size", false, "record the padded stream length in the directory")
	flagSet.BoolVar(&cfg.checksum, "checksum", false, "print the BLAKE3 digest of the output")
	flagSet.BoolVarP(&cfg.verbose, "verbose", "v", false, "log layout details")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(stderr, flagSet)
			return nil
		}
		return err
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stderr, flagSet)
		return nil
	}

	rest := flagSet.Args()
	if len(rest) != 1 {
		return fmt.Errorf("expected exactly one input path, got %d", len(rest))
	}
	if cfg.output == "" {
		return errors.New("--output is required")
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	opts := []mscfb.Option{
		mscfb.WithLogger(logger),
		mscfb.WithChunkSize(cfg.chunkSize),
	}
	if cfg.classID != "" {
		id, err := uuid.Parse(cfg.classID)
		if err != nil {
			return fmt.Errorf("invalid --class-id %q: %w", cfg.classID, err)
		}
		opts = append(opts, mscfb.WithClassID(id))
	}
	if cfg.paddedSize {
		opts = append(opts, mscfb.WithPaddedStreamSize())
	}

	data, err := readInput(rest[0], cfg.decompress, stdin)
	if err != nil {
		return err
	}

	cf, err := mscfb.Build(cfg.name, data, opts...)
	if err != nil {
		return err
	}
	for _, entry := range cf.Entries() {
		logger.Debug("entry", "entry", entry.String())
	}

	digest, err := writeOutput(cfg.output, cf, stdout)
	if err != nil {
		return err
	}

	if cfg.checksum {
		report := stdout
		if cfg.output == "-" {
			report = stderr
		}
		fmt.Fprintf(report, "blake3:%s  %s\n", hex.EncodeToString(digest), cfg.output)
	}

	return nil
}

// writeOutput writes cf to path and returns the BLAKE3 digest of what was
// written. A partially written output file is removed.
func writeOutput(path string, cf *mscfb.CompoundFile, stdout io.Writer) ([]byte, error) {
	hasher := blake3.New()

	if path == "-" {
		if _, err := cf.WriteTo(io.MultiWriter(stdout, hasher)); err != nil {
			return nil, err
		}
		return hasher.Sum(nil), nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}

	_, err = cf.WriteTo(io.MultiWriter(f, hasher))
	if closeErr := f.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("close output: %w", closeErr)
	}
	if err != nil {
		_ = os.Remove(path)
		return nil, err
	}

	return hasher.Sum(nil), nil
}

func readInput(path, compression string, stdin io.Reader) ([]byte, error) {
	var src io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		src = f
	}

	if compression == "auto" {
		compression = compressionForPath(path)
	}

	r, err := decompressor(src, compression)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input %s: %w", path, err)
	}
	return data, nil
}

func compressionForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		return "zstd"
	case ".gz":
		return "gzip"
	case ".lz4":
		return "lz4"
	default:
		return "none"
	}
}

func decompressor(r io.Reader, compression string) (io.ReadCloser, error) {
	switch compression {
	case "none":
		return io.NopCloser(r), nil
	case "zstd":
		decoder, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("zstd reader: %w", err)
		}
		return decoder.IOReadCloser(), nil
	case "gzip":
		reader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("gzip reader: %w", err)
		}
		return reader, nil
	case "lz4":
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("unknown compression %q", compression)
	}
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `mscfb wraps one payload stream in an OLE2 compound file.

The input is read fully into memory, padded to a 4096-byte boundary and
written as the only stream of the file. Use - as the input path to read
from stdin.

Usage:
  mscfb [flags] INPUT

Flags:
%s`, flagSet.FlagUsages())
}
