package lz

import (
	"bytes"
	"io"
)

// Frame wraps an already-encoded LZ frame (the output of Encode) so it can
// be written to and read from an io.Writer/io.Reader and satisfies the
// standard binary marshal interfaces, the same WriteTo/ReadFrom/
// MarshalBinary/UnmarshalBinary surface the teacher's symbol table exposes
// for its own serialized form.
type Frame struct {
	data []byte
}

// NewFrame wraps the result of Encode for serialization.
func NewFrame(encoded []byte) *Frame { return &Frame{data: encoded} }

// Bytes returns the wrapped frame bytes.
func (f *Frame) Bytes() []byte { return f.data }

// Decode decompresses the wrapped frame, the counterpart of Decode(f.Bytes()).
func (f *Frame) Decode() ([]byte, error) { return Decode(f.data) }

// WriteTo writes the frame's length-prefixed bytes to w.
func (f *Frame) WriteTo(w io.Writer) (int64, error) {
	header := make([]byte, 8)
	putUint64LE(header, uint64(len(f.data)))
	n1, err := w.Write(header)
	if err != nil {
		return int64(n1), err
	}
	n2, err := w.Write(f.data)
	return int64(n1 + n2), err
}

// ReadFrom replaces f's contents by reading a length-prefixed frame from r.
func (f *Frame) ReadFrom(r io.Reader) (int64, error) {
	header := make([]byte, 8)
	if _, err := io.ReadFull(r, header); err != nil {
		return 0, err
	}
	n := getUint64LE(header)
	buf := make([]byte, n)
	read, err := io.ReadFull(r, buf)
	f.data = buf[:read]
	return int64(8 + read), err
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (f *Frame) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (f *Frame) UnmarshalBinary(data []byte) error {
	_, err := f.ReadFrom(bytes.NewReader(data))
	return err
}

func putUint64LE(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * uint(i)))
	}
}

func getUint64LE(b []byte) uint64 {
	var v uint64
	for i := 0; i < 8; i++ {
		v |= uint64(b[i]) << (8 * uint(i))
	}
	return v
}
