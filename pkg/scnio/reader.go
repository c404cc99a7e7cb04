// Package scnio provides the sequential little-endian cursor the scenario
// and data-file decoders read from. All multi-byte integers in the genie
// formats are little-endian, and every structure is read strictly forward;
// the cursor never seeks.
package scnio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Reader is a sequential cursor over a byte stream. A failed read leaves the
// cursor in an undefined position; callers abort the whole decode on the
// first error.
type Reader struct {
	src io.Reader
	buf [8]byte
}

// NewReader returns a cursor reading from src.
func NewReader(src io.Reader) *Reader {
	return &Reader{src: src}
}

// fill reads exactly len(b) bytes. Running out of input mid-field is always
// a truncation, so a clean EOF is reported as io.ErrUnexpectedEOF too.
func (r *Reader) fill(b []byte) error {
	_, err := io.ReadFull(r.src, b)
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

// Uint8 reads a single byte.
func (r *Reader) Uint8() (uint8, error) {
	b := r.buf[:1]
	if err := r.fill(b); err != nil {
		return 0, err
	}
	return b[0], nil
}

// Uint16 reads a little-endian u16.
func (r *Reader) Uint16() (uint16, error) {
	b := r.buf[:2]
	if err := r.fill(b); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// Uint32 reads a little-endian u32.
func (r *Reader) Uint32() (uint32, error) {
	b := r.buf[:4]
	if err := r.fill(b); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// Int32 reads a little-endian i32.
func (r *Reader) Int32() (int32, error) {
	v, err := r.Uint32()
	return int32(v), err
}

// Float32 reads a little-endian IEEE 754 single.
func (r *Reader) Float32() (float32, error) {
	v, err := r.Uint32()
	return math.Float32frombits(v), err
}

// SizedString reads exactly n bytes and returns them as a string, cut at the
// first NUL byte. Fixed-width name fields pad with NUL and may carry garbage
// after the terminator.
func (r *Reader) SizedString(n int) (string, error) {
	if n == 0 {
		return "", nil
	}
	b := make([]byte, n)
	if err := r.fill(b); err != nil {
		return "", err
	}
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b), nil
}

// Skip discards n bytes.
func (r *Reader) Skip(n int) error {
	_, err := io.CopyN(io.Discard, r.src, int64(n))
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

// ReadArray reads count records with decode, in ascending order. The first
// record error aborts the read; there is no partial-list recovery.
func ReadArray[T any](r *Reader, count int, decode func(*Reader) (T, error)) ([]T, error) {
	if count < 0 {
		return nil, fmt.Errorf("negative record count %d", count)
	}
	// Capacity is capped so a corrupt count fails on the first short read
	// instead of a huge up-front allocation.
	out := make([]T, 0, min(count, 4096))
	for i := 0; i < count; i++ {
		rec, err := decode(r)
		if err != nil {
			return nil, fmt.Errorf("record %d of %d: %w", i, count, err)
		}
		out = append(out, rec)
	}
	return out, nil
}
