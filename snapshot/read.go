package snapshot

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/tinylib/msgp/msgp"

	"github.com/katalvlaran/netex/core"
)

// Load reads the snapshot at path into a new Graph.
//
// The returned graph permits self-loops because snapshots may contain them;
// the query filter removes them.
//
// Errors: always *LoadError.
func Load(path string) (*core.Graph, Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Info{}, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	var size int64
	if st, statErr := f.Stat(); statErr == nil {
		size = st.Size()
	}

	g, info, err := Read(f)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
		}
		return nil, info, err
	}
	info.Bytes = size

	return g, info, nil
}

// Read decodes a snapshot stream from r.
//
// Errors: always *LoadError with an empty Path.
func Read(r io.Reader) (*core.Graph, Info, error) {
	br := bufio.NewReader(r)
	comp, err := sniff(br)
	if err != nil {
		return nil, Info{}, &LoadError{Err: err}
	}
	info := Info{Compression: comp}

	var src io.Reader = br
	switch comp {
	case CompressionSnappy:
		src = snappy.NewReader(br)
	case CompressionZstd:
		dec, derr := zstd.NewReader(br)
		if derr != nil {
			return nil, info, &LoadError{Err: derr}
		}
		defer dec.Close()
		src = dec
	}

	g, err := decode(msgp.NewReader(src), &info)
	if err != nil {
		return nil, info, &LoadError{Err: err}
	}

	return g, info, nil
}

// sniff peeks at the leading bytes without consuming them.
func sniff(br *bufio.Reader) (Compression, error) {
	head, err := br.Peek(len(snappyMagic))
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return CompressionNone, err
	}
	switch {
	case bytes.HasPrefix(head, snappyMagic):
		return CompressionSnappy, nil
	case bytes.HasPrefix(head, zstdMagic):
		return CompressionZstd, nil
	case len(head) == 0:
		return CompressionNone, fmt.Errorf("%w: empty stream", ErrBadHeader)
	}

	return CompressionNone, nil
}

// maxPrealloc caps the capacity hint taken from a snapshot header.
const maxPrealloc = 1 << 20

type header struct {
	format  string
	version int
	nodes   int
	edges   int
}

func readHeader(r *msgp.Reader) (header, error) {
	var h header
	sz, err := r.ReadMapHeader()
	if err != nil {
		return h, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	h.nodes, h.edges = -1, -1
	for i := uint32(0); i < sz; i++ {
		key, err := r.ReadString()
		if err != nil {
			return h, fmt.Errorf("%w: %v", ErrBadHeader, err)
		}
		switch key {
		case "format":
			h.format, err = r.ReadString()
		case "version":
			h.version, err = r.ReadInt()
		case "nodes":
			h.nodes, err = r.ReadInt()
		case "edges":
			h.edges, err = r.ReadInt()
		default:
			err = r.Skip()
		}
		if err != nil {
			return h, fmt.Errorf("%w: key %q: %v", ErrBadHeader, key, err)
		}
	}
	if h.format != FormatName {
		return h, fmt.Errorf("%w: format %q", ErrBadHeader, h.format)
	}
	if h.version != FormatVersion {
		return h, fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.version)
	}
	if h.nodes < 0 || h.edges < 0 {
		return h, fmt.Errorf("%w: missing or negative counts", ErrBadHeader)
	}

	return h, nil
}

func decode(r *msgp.Reader, info *Info) (*core.Graph, error) {
	h, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	info.Nodes, info.Edges = h.nodes, h.edges

	// Counts are untrusted until the records are read; the graph grows past the hint.
	g := core.NewGraph(core.WithLoops(), core.WithCapacity(min(h.nodes, maxPrealloc), min(h.edges, maxPrealloc)))
	for i := 0; i < h.nodes; i++ {
		n, err := readNode(r)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		if _, err = g.AddNode(n); err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
	}
	for i := 0; i < h.edges; i++ {
		if err = readEdge(r, g); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
	}

	return g, nil
}

func readNode(r *msgp.Reader) (core.Node, error) {
	var n core.Node
	sz, err := r.ReadArrayHeader()
	if err != nil {
		return n, err
	}
	if sz != 3 {
		return n, fmt.Errorf("%w: node array of length %d", ErrBadRecord, sz)
	}
	typ, err := r.ReadString()
	if err != nil {
		return n, err
	}
	if n.Type, err = core.ParseNodeType(typ); err != nil {
		return n, err
	}
	if n.ExternalID, err = r.ReadString(); err != nil {
		return n, err
	}
	if n.Status, err = r.ReadString(); err != nil {
		return n, err
	}

	return n, nil
}

func readEdge(r *msgp.Reader, g *core.Graph) error {
	sz, err := r.ReadArrayHeader()
	if err != nil {
		return err
	}
	if sz != 3 {
		return fmt.Errorf("%w: edge array of length %d", ErrBadRecord, sz)
	}
	from, err := r.ReadUint32()
	if err != nil {
		return err
	}
	to, err := r.ReadUint32()
	if err != nil {
		return err
	}
	typ, err := r.ReadString()
	if err != nil {
		return err
	}
	et, err := core.ParseEdgeType(typ)
	if err != nil {
		return err
	}
	if int(from) >= g.Order() || int(to) >= g.Order() {
		return fmt.Errorf("%w: %d-%d", ErrEndpointOutOfRange, from, to)
	}
	_, err = g.AddEdge(int(from), int(to), et)

	return err
}
