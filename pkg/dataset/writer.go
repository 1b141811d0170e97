package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const writeBufferSize = 1 << 20

// FileName returns the dataset filename for a (distribution, size) pair.
func FileName(distribution string, size int64) string {
	return fmt.Sprintf("%s_%d.txt", distribution, size)
}

// countingWriter tracks bytes written through it.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// WriteDataset creates (or truncates) dir/{distribution}_{size}.txt and
// writes exactly size sampled lines in emission order. The file is closed
// on every exit path. progress, if non-nil, receives every line as it is
// written; the CLI hangs its progress bar there. Returns the number of
// bytes written to the file.
func WriteDataset(dir, distribution string, size int64, s Sampler, progress io.Writer) (int64, error) {
	path := filepath.Join(dir, FileName(distribution, size))

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	bw := bufio.NewWriterSize(f, writeBufferSize)
	cw := &countingWriter{w: bw}

	var w io.Writer = cw
	if progress != nil {
		w = io.MultiWriter(cw, progress)
	}

	for i := int64(0); i < size; i++ {
		if err := s.WriteValue(w); err != nil {
			return cw.n, fmt.Errorf("write %s: %w", path, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return cw.n, fmt.Errorf("flush %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return cw.n, fmt.Errorf("close %s: %w", path, err)
	}
	return cw.n, nil
}
