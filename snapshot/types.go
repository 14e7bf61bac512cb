// Package snapshot reads and writes the binary interaction-network files
// consumed by every analysis task.
//
// A snapshot is a MessagePack stream:
//
//	header  map  {"format": "netex-graph", "version": 1, "nodes": N, "edges": M}
//	N x     array [type string, external_id string, status string]
//	M x     array [source uint32, target uint32, type string]
//
// The stream may be wrapped in a snappy framed stream or a zstd frame. Load
// sniffs the leading magic bytes, so callers never pass the compression.
//
// Errors:
//
//	Every failure of Load/Read is a *LoadError carrying the path; the wrapped
//	cause is one of the sentinels below, a core parse error or an I/O error.
package snapshot

import (
	"errors"
	"fmt"
	"strings"
)

// FormatName is the value of the header "format" key.
const FormatName = "netex-graph"

// FormatVersion is the only snapshot layout version understood by Read.
const FormatVersion = 1

// Sentinel errors wrapped by LoadError.
var (
	// ErrBadHeader indicates a missing or malformed header map.
	ErrBadHeader = errors.New("snapshot: bad header")

	// ErrUnsupportedVersion indicates a header version other than FormatVersion.
	ErrUnsupportedVersion = errors.New("snapshot: unsupported version")

	// ErrBadRecord indicates a node or edge record with the wrong shape.
	ErrBadRecord = errors.New("snapshot: bad record")

	// ErrEndpointOutOfRange indicates an edge referencing a missing node.
	ErrEndpointOutOfRange = errors.New("snapshot: edge endpoint out of range")

	// ErrUnknownCompression indicates an unsupported compression name.
	ErrUnknownCompression = errors.New("snapshot: unknown compression")
)

// LoadError reports a missing or corrupt snapshot.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("snapshot: load: %v", e.Err)
	}

	return fmt.Sprintf("snapshot: load %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error { return e.Err }

// Compression identifies the outer framing of a snapshot stream.
type Compression uint8

const (
	// CompressionNone is a bare MessagePack stream.
	CompressionNone Compression = iota

	// CompressionSnappy is a snappy framed stream.
	CompressionSnappy

	// CompressionZstd is a single zstd frame.
	CompressionZstd
)

// String returns the flag spelling of c.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionSnappy:
		return "snappy"
	case CompressionZstd:
		return "zstd"
	default:
		return fmt.Sprintf("Compression(%d)", uint8(c))
	}
}

// ParseCompression converts a flag spelling to a Compression.
func ParseCompression(s string) (Compression, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return CompressionNone, nil
	case "snappy":
		return CompressionSnappy, nil
	case "zstd":
		return CompressionZstd, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownCompression, s)
}

// Info summarizes a loaded snapshot.
type Info struct {
	Nodes       int
	Edges       int
	Bytes       int64 // on-disk size; 0 when read from a stream
	Compression Compression
}

// magic prefixes used for sniffing.
var (
	snappyMagic = []byte("\xff\x06\x00\x00sNaPpY")
	zstdMagic   = []byte{0x28, 0xb5, 0x2f, 0xfd}
)
