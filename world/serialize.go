package world

import (
	"bytes"
	"compress/flate"
	"encoding/binary"
	"fmt"
	"io"
)

// Serialize writes data, which must have a fixed size (see encoding/binary).
// Writing to a bytes.Buffer cannot fail except for a bad type, which is a
// programming error.
func Serialize(w io.Writer, data any) {
	Check(binary.Write(w, binary.LittleEndian, data))
}

// SerializeSlice writes the length of the slice and then its elements.
func SerializeSlice[T any](w io.Writer, s []T) {
	Serialize(w, int64(len(s)))
	Serialize(w, s)
}

func Deserialize(r io.Reader, data any) error {
	return binary.Read(r, binary.LittleEndian, data)
}

// maxSliceLen protects DeserializeSlice from allocating absurd amounts of
// memory for a corrupted length.
const maxSliceLen = 100_000_000

func DeserializeSlice[T any](r io.Reader, s *[]T) error {
	var n int64
	if err := Deserialize(r, &n); err != nil {
		return err
	}
	if n < 0 || n > maxSliceLen {
		return fmt.Errorf("invalid slice length %d", n)
	}
	*s = make([]T, n)
	return Deserialize(r, *s)
}

func Zip(data []byte) []byte {
	buf := new(bytes.Buffer)
	zw, err := flate.NewWriter(buf, flate.BestCompression)
	Check(err)
	_, err = zw.Write(data)
	Check(err)
	Check(zw.Close())
	return buf.Bytes()
}

func Unzip(data []byte) ([]byte, error) {
	zr := flate.NewReader(bytes.NewReader(data))
	defer func() { _ = zr.Close() }()
	return io.ReadAll(zr)
}
