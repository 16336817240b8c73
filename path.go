package mscfb

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

const MAX_NAME_LEN int = 31

var nameEncoding = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// ValidateName reports whether name can be stored in a directory entry:
// non-empty valid UTF-8, at most 31 UTF-16 code units and free of NUL and
// path separators.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("name is empty: %w", ErrorInvalidName)
	}

	// the encoder would silently substitute U+FFFD
	if !utf8.ValidString(name) {
		return fmt.Errorf("name %q is not valid UTF-8: %w", name, ErrorInvalidName)
	}

	// readers stop at the first NUL
	if strings.ContainsRune(name, 0) {
		return fmt.Errorf("name %q contains NUL: %w", name, ErrorInvalidName)
	}

	if strings.ContainsAny(name, "/\\:!") {
		return fmt.Errorf("name contains one of /\\:! characters: %v: %w", name, ErrorInvalidName)
	}

	encoded, err := encodeName(name)
	if err != nil {
		return fmt.Errorf("name %q is not encodable: %w", name, ErrorInvalidName)
	}

	if n := len(encoded) / 2; n > MAX_NAME_LEN {
		return fmt.Errorf("name %q is %v UTF-16 code units, max is %v: %w", name, n, MAX_NAME_LEN, ErrorInvalidName)
	}

	return nil
}

// encodeName returns name as UTF-16LE without a terminator.
func encodeName(name string) ([]byte, error) {
	return nameEncoding.NewEncoder().Bytes([]byte(name))
}
