/*
Package serialization provides the little-endian wire helpers shared by
the layout cache files. Records are plain fixed-size values and
length-prefixed strings; there is no framing beyond what the callers
write themselves.
*/
package serialization

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Strings longer than this are rejected on read as corrupt input.
const maxStringBytes = 1 << 20

// WritePod writes a fixed-size value in little-endian byte order.
func WritePod[T any](w io.Writer, v T) error {
	return binary.Write(w, binary.LittleEndian, v)
}

// ReadPod reads a fixed-size value written by WritePod.
func ReadPod[T any](r io.Reader) (T, error) {
	var v T
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return v, err
	}
	return v, nil
}

// WriteString writes a uint32 byte count followed by the raw bytes.
func WriteString(w io.Writer, s string) error {
	if err := WritePod(w, uint32(len(s))); err != nil {
		return err
	}
	if _, err := io.WriteString(w, s); err != nil {
		return err
	}
	return nil
}

// ReadString reads a string written by WriteString.
func ReadString(r io.Reader) (string, error) {
	n, err := ReadPod[uint32](r)
	if err != nil {
		return "", err
	}
	if n > maxStringBytes {
		return "", fmt.Errorf("string length %d exceeds %d bytes", n, maxStringBytes)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}
