package table

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/afero"
	"golang.org/x/sys/unix"
)

// Writer appends chain records to a table file. One Writer is shared
// by every generator worker; Append serialises them, and workers keep
// contention low by flushing in large batches.
type Writer struct {
	mu   sync.Mutex
	f    afero.File
	path string
}

func NewWriter(fs afero.Fs, path string) (*Writer, error) {
	f, err := fs.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create table %s: %w", path, err)
	}

	return &Writer{f: f, path: path}, nil
}

func (w *Writer) Append(chains []Chain) error {
	buf := chainsToBytes(chains)

	w.mu.Lock()
	defer w.mu.Unlock()

	n, err := w.f.Write(buf)
	if err != nil {
		return fmt.Errorf("append to table %s: %w", w.path, err)
	}

	if n != len(buf) {
		return fmt.Errorf("append to table %s: short write (%d of %d bytes)", w.path, n, len(buf))
	}

	return nil
}

func (w *Writer) Close() error {
	if err := w.f.Close(); err != nil {
		return fmt.Errorf("close table %s: %w", w.path, err)
	}

	return nil
}

// Table is a memory-mapped chain file. Chains aliases the mapping
// directly and is valid until Close.
type Table struct {
	f      *os.File
	mapped []byte

	Chains []Chain
}

// Open maps path read-only, for lookups.
func Open(path string) (*Table, error) {
	return openTable(path, os.O_RDONLY, unix.PROT_READ)
}

// OpenRW maps path for in-place mutation, i.e. sorting. The mapping is
// shared, so dirty pages reach the file when the region is unmapped;
// no separate write-back happens on Close.
func OpenRW(path string) (*Table, error) {
	return openTable(path, os.O_RDWR, unix.PROT_READ|unix.PROT_WRITE)
}

func openTable(path string, flag, prot int) (*Table, error) {
	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, fmt.Errorf("open table %s: %w", path, err)
	}

	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("stat table %s: %w", path, err)
	}

	size := st.Size()
	if size == 0 || size%int64(ChainSize) != 0 {
		_ = f.Close()
		return nil, fmt.Errorf(
			"table %s: size %d is not a whole number of %d-byte records",
			path, size, ChainSize,
		)
	}

	mapped, err := unix.Mmap(int(f.Fd()), 0, int(size), prot, unix.MAP_SHARED)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("mmap table %s: %w", path, err)
	}

	return &Table{f: f, mapped: mapped, Chains: chainsFromBytes(mapped)}, nil
}

func (t *Table) Close() error {
	t.Chains = nil

	if err := unix.Munmap(t.mapped); err != nil {
		_ = t.f.Close()
		return fmt.Errorf("munmap table %s: %w", t.f.Name(), err)
	}

	t.mapped = nil

	if err := t.f.Close(); err != nil {
		return fmt.Errorf("close table %s: %w", t.f.Name(), err)
	}

	return nil
}
