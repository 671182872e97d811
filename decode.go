package mqtt

import (
	"context"
	"io"
)

// readerPacketReader adapts a standard io.Reader to the PacketReader
// capability interface the framer expects: a negative result signals an
// error, zero signals EOF/no data, and a positive result is the byte count
// actually read.
type readerPacketReader struct {
	r io.Reader
}

// NewPacketReader wraps r so it can be passed to GetIncomingPacketTypeAndLength.
func NewPacketReader(r io.Reader) PacketReader {
	return readerPacketReader{r: r}
}

func (rr readerPacketReader) Read(ctx context.Context, dst []byte) int32 {
	n, err := io.ReadFull(rr.r, dst)
	if err != nil {
		if n == 0 {
			return 0
		}
		return -1
	}
	return int32(n)
}

// ReadPacket frames the next incoming packet on r, reads exactly its
// Remaining Length worth of bytes into a freshly allocated buffer, and
// returns the fully populated PacketInfo ready for one of the Deserialize*
// functions. This is the adapted, complete counterpart to
// MQTT_GetIncomingPacket, which is left as an unfinished stub in the
// reference implementation (see DESIGN.md); unlike the core
// GetIncomingPacketTypeAndLength, ReadPacket allocates, so it is offered here
// as an io.Reader convenience rather than part of the zero-allocation core API.
func ReadPacket(ctx context.Context, r io.Reader) (PacketInfo, Status) {
	pr := NewPacketReader(r)
	pkt, status := GetIncomingPacketTypeAndLength(ctx, pr)
	if status != StatusSuccess {
		return pkt, status
	}
	if pkt.RemainingLength == 0 {
		return pkt, StatusSuccess
	}
	data := make([]byte, pkt.RemainingLength)
	got := pr.Read(ctx, data)
	if got != int32(pkt.RemainingLength) {
		return PacketInfo{}, StatusNoDataAvailable
	}
	pkt.Data = data
	return pkt, StatusSuccess
}
