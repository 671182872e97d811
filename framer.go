package mqtt

import "context"

// PacketReader is a minimal pull-style byte source: Read attempts to fill
// dst and reports how many bytes it actually placed there. A negative return
// value indicates a reader-internal error, zero indicates no data was
// available (including a clean EOF), and a positive value is the count of
// bytes read. This mirrors the MQTTGetNextByte/TransportRecv_t capability
// shape from mqtt_lightweight.c rather than Go's io.Reader: the framer never
// folds reader errors into a Status beyond StatusNoDataAvailable, leaving the
// caller's transport to decide what a negative count means.
type PacketReader interface {
	Read(ctx context.Context, dst []byte) int32
}

// GetIncomingPacketTypeAndLength pulls the fixed header (one type/flags byte
// plus a 1-4 byte Remaining Length varint) off r and returns a PacketInfo
// describing the packet that follows. It never reads the packet body: the
// caller is expected to allocate a buffer of exactly RemainingLength bytes,
// read that many bytes from r itself, and attach the result as PacketInfo.Data
// before calling one of the Deserialize* functions.
//
// This function, together with the caller-driven read-and-attach step it
// assumes, replaces MQTT_GetIncomingPacket from the reference implementation,
// which is an unfinished stub there (see DESIGN.md).
func GetIncomingPacketTypeAndLength(ctx context.Context, r PacketReader) (PacketInfo, Status) {
	var typeByte [1]byte
	n := r.Read(ctx, typeByte[:])
	if n != 1 {
		return PacketInfo{}, StatusNoDataAvailable
	}
	tp := PacketType(typeByte[0] >> 4)
	flags := typeByte[0] & 0b1111
	if !incomingPacketValid(tp, flags) {
		return PacketInfo{}, StatusBadResponse
	}

	var lenBuf [maxRemainingLengthSize]byte
	read := 0
	for read < maxRemainingLengthSize {
		var b [1]byte
		got := r.Read(ctx, b[:])
		if got != 1 {
			return PacketInfo{}, StatusBadResponse
		}
		lenBuf[read] = b[0]
		read++
		if b[0]&0x80 == 0 {
			break
		}
	}
	remaining, _, status := decodeRemainingLength(lenBuf[:read])
	if status != StatusSuccess {
		return PacketInfo{}, StatusBadResponse
	}
	return PacketInfo{Type: tp, Flags: PacketFlags(flags), RemainingLength: remaining}, StatusSuccess
}
