package snapshot

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/tinylib/msgp/msgp"

	"github.com/katalvlaran/netex/core"
)

// Write encodes the visible part of g to w using compression c.
// Hidden nodes and edges are compacted away first, so indices in the stream
// are always dense.
func Write(w io.Writer, g *core.Graph, c Compression) error {
	if g.Order() != g.NodeCount() || g.Size() != g.EdgeCount() {
		g = g.Clone()
	}

	var (
		sink   io.Writer = w
		closer io.Closer
	)
	switch c {
	case CompressionNone:
	case CompressionSnappy:
		sw := snappy.NewBufferedWriter(w)
		sink, closer = sw, sw
	case CompressionZstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return fmt.Errorf("snapshot: zstd writer: %w", err)
		}
		sink, closer = zw, zw
	default:
		return fmt.Errorf("%w: %d", ErrUnknownCompression, uint8(c))
	}

	mw := msgp.NewWriter(sink)
	if err := encode(mw, g); err != nil {
		return err
	}
	if err := mw.Flush(); err != nil {
		return fmt.Errorf("snapshot: flush: %w", err)
	}
	if closer != nil {
		if err := closer.Close(); err != nil {
			return fmt.Errorf("snapshot: close compressor: %w", err)
		}
	}

	return nil
}

// WriteFile writes g to path, replacing any existing file.
func WriteFile(path string, g *core.Graph, c Compression) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: create %s: %w", path, err)
	}
	bw := bufio.NewWriter(f)
	if err = Write(bw, g, c); err != nil {
		f.Close()
		return err
	}
	if err = bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("snapshot: write %s: %w", path, err)
	}

	return f.Close()
}

func encode(w *msgp.Writer, g *core.Graph) error {
	if err := w.WriteMapHeader(4); err != nil {
		return err
	}
	fields := []struct {
		key string
		put func() error
	}{
		{"format", func() error { return w.WriteString(FormatName) }},
		{"version", func() error { return w.WriteInt(FormatVersion) }},
		{"nodes", func() error { return w.WriteInt(g.NodeCount()) }},
		{"edges", func() error { return w.WriteInt(g.EdgeCount()) }},
	}
	for _, f := range fields {
		if err := w.WriteString(f.key); err != nil {
			return err
		}
		if err := f.put(); err != nil {
			return err
		}
	}

	for u := 0; u < g.Order(); u++ {
		n := g.Node(u)
		if err := w.WriteArrayHeader(3); err != nil {
			return err
		}
		if err := w.WriteString(n.Type.String()); err != nil {
			return err
		}
		if err := w.WriteString(n.ExternalID); err != nil {
			return err
		}
		if err := w.WriteString(n.Status); err != nil {
			return err
		}
	}
	for _, e := range g.Edges() {
		if err := w.WriteArrayHeader(3); err != nil {
			return err
		}
		if err := w.WriteUint32(uint32(e.From)); err != nil {
			return err
		}
		if err := w.WriteUint32(uint32(e.To)); err != nil {
			return err
		}
		if err := w.WriteString(e.Type.String()); err != nil {
			return err
		}
	}

	return nil
}
