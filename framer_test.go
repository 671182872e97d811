package mqtt

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"golang.org/x/sync/errgroup"
)

// fakeReader implements PacketReader over an in-memory byte slice, handing
// back bytes one Read call at a time up to len(dst), and reporting 0 once
// exhausted -- mirroring a transport with no more data available rather than
// an error.
type fakeReader struct {
	data []byte
	pos  int
}

func newFakeReader(data []byte) *fakeReader { return &fakeReader{data: data} }

func (r *fakeReader) Read(_ context.Context, dst []byte) int32 {
	if r.pos >= len(r.data) {
		return 0
	}
	n := copy(dst, r.data[r.pos:])
	r.pos += n
	return int32(n)
}

func TestGetIncomingPacketTypeAndLength(t *testing.T) {
	cases := []struct {
		name       string
		data       []byte
		wantType   PacketType
		wantRemLen uint32
		wantStatus Status
	}{
		{"connack", []byte{0x20, 0x02}, PacketConnack, 2, StatusSuccess},
		{"pingresp", []byte{0xD0, 0x00}, PacketPingresp, 0, StatusSuccess},
		{"pubrel", []byte{0x62, 0x02}, PacketPubrel, 2, StatusSuccess},
		{"pubrel-bad-flags", []byte{0x60, 0x02}, 0, 0, StatusBadResponse},
		{"invalid-type", []byte{0x00, 0x00}, 0, 0, StatusBadResponse},
		{"nonminimal-remlen", []byte{0x20, 0x80, 0x00}, 0, 0, StatusBadResponse},
		{"empty-stream", []byte{}, 0, 0, StatusNoDataAvailable},
		{"max-remaining-length", append([]byte{0x30}, 0xFF, 0xFF, 0xFF, 0x7F), PacketPublish, 268435455, StatusSuccess},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pkt, status := GetIncomingPacketTypeAndLength(context.Background(), newFakeReader(c.data))
			if status != c.wantStatus {
				t.Fatalf("status = %v, want %v", status, c.wantStatus)
			}
			if status != StatusSuccess {
				return
			}
			if pkt.Type != c.wantType || pkt.RemainingLength != c.wantRemLen {
				t.Fatalf("got PacketInfo{%v, %d}, want {%v, %d}", pkt.Type, pkt.RemainingLength, c.wantType, c.wantRemLen)
			}
		})
	}
}

// TestGetIncomingPacketTypeAndLengthConcurrent exercises the framer from many
// goroutines at once against independent readers, checking the purely
// functional, no-shared-state claim in the package's concurrency model.
func TestGetIncomingPacketTypeAndLengthConcurrent(t *testing.T) {
	const n = 64
	group, ctx := errgroup.WithContext(context.Background())
	var mu sync.Mutex
	failures := 0
	for i := 0; i < n; i++ {
		group.Go(func() error {
			r := newFakeReader([]byte{0x40, 0x02})
			pkt, status := GetIncomingPacketTypeAndLength(ctx, r)
			if status != StatusSuccess || pkt.Type != PacketPuback || pkt.RemainingLength != 2 {
				mu.Lock()
				failures++
				mu.Unlock()
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		t.Fatal(err)
	}
	if failures != 0 {
		t.Fatalf("%d/%d concurrent framer calls produced an unexpected result", failures, n)
	}
}

func TestReadPacketRoundTrip(t *testing.T) {
	var buf [4]byte
	if status := SerializeAck(buf[:], PacketPuback, 42); status != StatusSuccess {
		t.Fatalf("SerializeAck: %v", status)
	}
	pkt, status := ReadPacket(context.Background(), bytes.NewReader(buf[:]))
	if status != StatusSuccess {
		t.Fatalf("ReadPacket: %v", status)
	}
	id, status := DeserializeAck(pkt)
	if status != StatusSuccess || id != 42 {
		t.Fatalf("DeserializeAck: id=%d status=%v, want 42 success", id, status)
	}
}
