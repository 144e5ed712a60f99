package input

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"go.dw1.io/mmapfile"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// StdinName names a Source read from standard input.
const StdinName = "(standard input)"

// Source is the content of one input.
type Source struct {
	name string
	data []byte
	mm   *mmapfile.MmapFile
}

// Open reads the file name from fs. On the OS filesystem the file is
// memory-mapped when possible; every other case, including other afero
// filesystems, reads the content into memory.
func Open(fs afero.Fs, name string) (*Source, error) {
	if _, ok := fs.(*afero.OsFs); ok {
		if mf, err := mmapfile.Open(name); err == nil {
			if mf.Len() > 0 {
				return &Source{name: name, data: mf.Bytes(), mm: mf}, nil
			}
			mf.Close()
		}
	}

	data, err := afero.ReadFile(fs, name)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}

	return &Source{name: name, data: data}, nil
}

// Read consumes r and returns it as a Source called name.
func Read(name string, r io.Reader) (*Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	return &Source{name: name, data: data}, nil
}

// Name returns the name the Source was opened with.
func (s *Source) Name() string { return s.name }

// Mapped reports whether the content is memory-mapped.
func (s *Source) Mapped() bool { return s.mm != nil }

// Bytes returns the whole content. It must not be used after Close.
func (s *Source) Bytes() []byte { return s.data }

// Lines calls fn for each line with its 1-based number, without the trailing
// "\n" or "\r\n". Iteration stops at the first error returned by fn.
func (s *Source) Lines(fn func(n int, line string) error) error {
	sc := bufio.NewScanner(bytes.NewReader(s.data))
	sc.Buffer(make([]byte, 0, 64*1024), len(s.data)+1)

	n := 0
	for sc.Scan() {
		n++
		if err := fn(n, sc.Text()); err != nil {
			return err
		}
	}

	return sc.Err()
}

// Close releases the mapping, if any.
func (s *Source) Close() error {
	s.data = nil
	if s.mm != nil {
		err := s.mm.Close()
		s.mm = nil
		return err
	}

	return nil
}
