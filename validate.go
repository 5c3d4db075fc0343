package html2mark

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 reports invalid UTF-8 input.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports input that appears to be binary.
	ErrBinaryInput = errors.New("binary input detected")
)

const (
	minBinarySample = 64
	maxControlPct   = 2
)

// InputError locates a problem found by ValidateInput.
type InputError struct {
	Offset int
	Err    error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("byte %d: %v", e.Offset, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// ValidateInput returns an *InputError if src is not valid UTF-8 or appears
// to be binary. The converter itself accepts any input; callers that read
// untrusted bytes use this to report encoding problems instead of rendering
// replacement characters.
func ValidateInput(src []byte) error {
	var control int
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRune(src[i:])
		if r == utf8.RuneError && size == 1 {
			return &InputError{Offset: i, Err: ErrInvalidUTF8}
		}
		if r == 0 {
			return &InputError{Offset: i, Err: ErrBinaryInput}
		}
		if isControlRune(r) {
			control++
		}
		i += size
	}
	if len(src) >= minBinarySample && control*100 >= len(src)*maxControlPct {
		return &InputError{Offset: 0, Err: ErrBinaryInput}
	}
	return nil
}

func isControlRune(r rune) bool {
	switch r {
	case '\n', '\r', '\t', '\f':
		return false
	}
	return r < 0x20 || r == 0x7F
}
