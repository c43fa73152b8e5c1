package uuidgen

import (
	"bytes"
	"testing"
)

func TestNodeBufferLayout(t *testing.T) {

	tests := []struct {
		src      []byte
		expected []byte
	}{
		// 6-byte hardware address fills bytes 2-7
		{[]byte{0xb4, 0xd5, 0xbd, 0xe5, 0x0d, 0xd3},
			[]byte{0x80, 0x00, 0xb4, 0xd5, 0xbd, 0xe5, 0x0d, 0xd3}},
		// 4-byte host address is right-aligned, gap left zero
		{[]byte{192, 168, 1, 10},
			[]byte{0x80, 0x00, 0x00, 0x00, 192, 168, 1, 10}},
		// longer sources keep their trailing 6 bytes
		{[]byte{1, 2, 3, 4, 5, 6, 7, 8},
			[]byte{0x80, 0x00, 3, 4, 5, 6, 7, 8}},
		{nil,
			[]byte{0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
	}

	for _, test := range tests {
		node := newNodeBuffer(test.src)

		if !bytes.Equal(node[:], test.expected) {
			t.Fatalf("Source % x packed as % x, expected % x", test.src, node, test.expected)
		}
	}
}

func TestNodeBufferInvariants(t *testing.T) {

	// Whatever the resolver came up with, the variant marker and the
	// sequence placeholder must survive packing
	node := newNodeBuffer(resolveNodeBytes())

	if node[0] != 0x80 {
		t.Fatalf("byte0 must be 0x80, got %02x", node[0])
	}

	if node[1] != 0 {
		t.Fatalf("byte1 must be 0, got %02x", node[1])
	}
}

func TestResolveNodeBytesNotEmpty(t *testing.T) {

	nodeBytes := resolveNodeBytes()

	if len(nodeBytes) == 0 {
		t.Fatal("Resolver returned no bytes despite the random fallback")
	}
}
