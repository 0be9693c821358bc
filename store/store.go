// SPDX-License-Identifier: MIT

// Package store persists Dense matrices as memory-mapped snapshot files.
//
// File layout (little-endian):
//
//	offset 0   [4]byte  magic "PMX1"
//	offset 4   [4]byte  reserved (zero)
//	offset 8   int64    rows
//	offset 16  int64    cols
//	offset 24  float64  rows*cols values, row-major
//
// A snapshot is a copy: loading never aliases the mapped file.
package store

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/katalvlaran/parmatrix/matrix"
)

const (
	headSize  = 24
	valueSize = 8
	magic     = "PMX1"
)

var (
	// ErrBadMagic indicates the file is not a matrix snapshot.
	ErrBadMagic = errors.New("store: bad magic")

	// ErrCorrupt indicates a header whose shape disagrees with the file size.
	ErrCorrupt = errors.New("store: corrupt snapshot")
)

// Save writes m to path, creating or truncating the file.
// Implementation:
//   - Stage 1: size the file to header + rows*cols*8 bytes.
//   - Stage 2: map it read-write, encode header and values, flush, unmap.
func Save(path string, m *matrix.Dense) (err error) {
	if err = matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("store: Save %s: %w", path, err)
	}
	rows, cols := m.Shape()
	values := m.RawData()

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err = f.Truncate(int64(headSize + valueSize*len(values))); err != nil {
		return
	}

	data, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		return
	}
	defer func() {
		if uerr := data.Unmap(); err == nil {
			err = uerr
		}
	}()

	copy(data[0:4], magic)
	binary.LittleEndian.PutUint64(data[8:16], uint64(rows))
	binary.LittleEndian.PutUint64(data[16:24], uint64(cols))
	off := headSize
	for _, v := range values {
		binary.LittleEndian.PutUint64(data[off:off+valueSize], math.Float64bits(v))
		off += valueSize
	}

	return data.Flush()
}

// Load reads a snapshot from path into a freshly allocated Dense.
// Errors: ErrBadMagic, ErrCorrupt, or the underlying I/O error.
func Load(path string) (m *matrix.Dense, err error) {
	f, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return
	}
	if info.Size() < headSize {
		return nil, fmt.Errorf("store: Load %s: file too small: %w", path, ErrCorrupt)
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return
	}
	defer func() {
		if uerr := data.Unmap(); err == nil {
			err = uerr
		}
	}()

	if string(data[0:4]) != magic {
		return nil, fmt.Errorf("store: Load %s: %w", path, ErrBadMagic)
	}
	rows := int64(binary.LittleEndian.Uint64(data[8:16]))
	cols := int64(binary.LittleEndian.Uint64(data[16:24]))
	payload := int64(len(data) - headSize)
	if rows < 0 || cols < 0 || payload%valueSize != 0 {
		return nil, fmt.Errorf("store: Load %s: shape %dx%d: %w", path, rows, cols, ErrCorrupt)
	}
	n := payload / valueSize
	if (rows == 0 || cols == 0) && n != 0 || rows != 0 && cols != 0 && (n%rows != 0 || n/rows != cols) {
		return nil, fmt.Errorf("store: Load %s: shape %dx%d for %d values: %w", path, rows, cols, n, ErrCorrupt)
	}

	values := make([]float64, n)
	off := headSize
	for i := range values {
		values[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[off : off+valueSize]))
		off += valueSize
	}

	return matrix.NewDenseFromData(int(rows), int(cols), values)
}
