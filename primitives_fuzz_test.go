package mqtt

import (
	"context"
	"testing"
)

func FuzzRemainingLengthRoundTrip(f *testing.F) {
	for _, seed := range []uint32{0, 1, 127, 128, 16383, 16384, 2097151, 2097152, 268435455} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, value uint32) {
		value %= maxRemainingLengthValue + 1
		var buf [maxRemainingLengthSize]byte
		n := encodeRemainingLength(value, buf[:])
		got, consumed, status := decodeRemainingLength(buf[:n])
		if status != StatusSuccess {
			t.Fatalf("decode(%d) failed: %v", value, status)
		}
		if got != value || consumed != n {
			t.Fatalf("round trip mismatch for %d: got %d consuming %d bytes, encoded %d bytes", value, got, consumed, n)
		}
	})
}

func FuzzGetIncomingPacketTypeAndLength(f *testing.F) {
	f.Add([]byte{0x20, 0x02, 0x00, 0x00})       // CONNACK
	f.Add([]byte{0x30, 0x05, 0x00, 0x01, 'a'})  // PUBLISH
	f.Add([]byte{0x20, 0x80, 0x00})             // non-minimal remaining length
	f.Add([]byte{0xC0, 0x00})                   // PINGREQ
	f.Add([]byte{})
	f.Fuzz(func(t *testing.T, data []byte) {
		r := newFakeReader(data)
		// A malformed or short stream must always resolve to a Status, never panic.
		_, _ = GetIncomingPacketTypeAndLength(context.Background(), r)
	})
}
