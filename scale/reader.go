package scale

import "fmt"

// Reader is a forward-only cursor over a byte slice. Every read is bounds
// checked and fails with ErrTruncated instead of panicking.
//
// A Reader never copies or retains more than the slice it was given and is
// not safe for concurrent use.
type Reader struct {
	buf []byte
	off int
}

// NewReader returns a Reader positioned at the start of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int {
	return len(r.buf) - r.off
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int {
	return r.off
}

// Remaining returns the unread bytes without consuming them.
// The returned slice aliases the underlying buffer.
func (r *Reader) Remaining() []byte {
	return r.buf[r.off:]
}

// ReadByte reads a single byte.
func (r *Reader) ReadByte() (byte, error) {
	if r.Len() < 1 {
		return 0, fmt.Errorf("%w: need 1 byte at offset %d", ErrTruncated, r.off)
	}
	b := r.buf[r.off]
	r.off++
	return b, nil
}

// ReadBytes reads the next n bytes. The returned slice aliases the
// underlying buffer; callers that keep it must copy.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("scale: negative read length %d", n)
	}
	if r.Len() < n {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			ErrTruncated, n, r.off, r.Len())
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

// ReadArray32 reads a fixed 32-byte value such as an account id.
func (r *Reader) ReadArray32() ([32]byte, error) {
	var out [32]byte
	b, err := r.ReadBytes(len(out))
	if err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}
