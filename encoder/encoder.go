// Package encoder turns a binary image file into a base64 payload suitable
// for JSON transport. It is deliberately a dumb transport encoder: no size or
// MIME-type validation happens here, that is the server's concern.
package encoder

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadError reports a failure to read the source image. The underlying
// cause is available via Unwrap.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("could not read image: %v", e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// Encode reads r fully and returns its base64 text representation. Content
// that is already a data-URI string (e.g. "data:image/png;base64,...") is
// recognized and only the raw base64 payload after the prefix is kept.
func Encode(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", &ReadError{Err: err}
	}
	if s := string(data); strings.HasPrefix(s, "data:") && strings.Contains(s, "base64,") {
		return StripDataURI(s), nil
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// EncodeFile encodes the file at path. The file is read fully into memory;
// a failed open or read is reported as a ReadError, without retry.
func EncodeFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", &ReadError{Err: err}
	}
	defer f.Close()
	return Encode(f)
}

// StripDataURI removes a leading "data:<mime>;base64," scheme prefix from an
// encoded payload, returning the input unchanged when no prefix is present.
func StripDataURI(s string) string {
	if !strings.HasPrefix(s, "data:") {
		return s
	}
	if idx := strings.Index(s, "base64,"); idx >= 0 {
		return s[idx+len("base64,"):]
	}
	return s
}
