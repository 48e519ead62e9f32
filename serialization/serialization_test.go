package serialization

import (
	"bytes"
	"testing"
)

func TestPodByteOrder(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePod(&buf, uint32(0x01020304)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0x04, 0x03, 0x02, 0x01}) {
		t.Fatalf("expected little-endian bytes, got % x", buf.Bytes())
	}
	v, err := ReadPod[uint32](&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if v != 0x01020304 {
		t.Fatalf("round trip gave %#x", v)
	}
}

func TestStringRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteString(&buf, "привет"); err != nil {
		t.Fatalf("write: %v", err)
	}
	s, err := ReadString(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if s != "привет" {
		t.Fatalf("round trip gave %q", s)
	}
}

func TestReadStringRejectsAbsurdLength(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePod(&buf, uint32(0xFFFFFFFF)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := ReadString(&buf); err == nil {
		t.Error("expected an error for an oversized length prefix")
	}
}
