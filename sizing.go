package mqtt

// packetSize turns a Remaining Length into the total on-wire packet size
// (1 fixed-header type/flags byte + the Remaining Length varint + Remaining
// Length bytes of content), returning StatusBadParameter if remainingLength
// itself exceeds the protocol maximum, or if a non-zero maxTotal is given and
// the computed total exceeds it (used only for CONNECT's tighter 327,700
// byte cap; pass 0 for no additional cap beyond the protocol maximum).
func packetSize(remainingLength uint32, maxTotal uint32) (total uint32, status Status) {
	if remainingLength > maxRemainingLengthValue {
		return 0, StatusBadParameter
	}
	total = 1 + uint32(remainingLengthEncodedSize(remainingLength)) + remainingLength
	if maxTotal != 0 && total > maxTotal {
		return 0, StatusBadParameter
	}
	return total, StatusSuccess
}

// SizeConnect computes the Remaining Length and total packet size of a CONNECT
// packet built from vc. Returns StatusBadParameter if vc is nil, the client ID
// is empty, a Will is flagged without a topic set, or the
// computed size exceeds the CONNECT-specific maximum of 327,700 bytes.
func SizeConnect(vc *VariablesConnect) (remaining uint32, total uint32, status Status) {
	if vc == nil {
		return 0, 0, StatusBadParameter
	}
	if len(vc.ClientID) == 0 || len(vc.ClientID) > 65535 {
		return 0, 0, StatusBadParameter
	}
	if vc.WillFlagSet && (len(vc.WillTopic) == 0) {
		return 0, 0, StatusBadParameter
	}
	if len(vc.Password) != 0 && len(vc.Username) == 0 {
		return 0, 0, StatusBadParameter
	}
	const connectVariableHeaderSize = 10
	remaining = connectVariableHeaderSize + uint32(2+len(vc.ClientID))
	if vc.WillFlag() {
		remaining += uint32(2 + len(vc.WillTopic))
		remaining += uint32(2 + len(vc.WillMessage))
	}
	if len(vc.Username) != 0 {
		remaining += uint32(2 + len(vc.Username))
		if len(vc.Password) != 0 {
			remaining += uint32(2 + len(vc.Password))
		}
	}
	total, status = packetSize(remaining, maxConnectPacketSize)
	return remaining, total, status
}

// SizePublish computes the Remaining Length and total packet size of a PUBLISH
// packet built from vp at the given QoS. The payload bound is checked twice,
// matching calculatePublishPacketSize's two-pass approach in
// mqtt_lightweight.c: the Remaining Length varint's own encoded size (1-4
// bytes) depends on the Remaining Length value, which in turn depends on the
// payload length being checked — so the first pass bounds the payload against
// an optimistic 1-byte varint, and once the real Remaining Length is known the
// bound is tightened against its actual encoded size and rechecked. Skipping
// the second pass would let a payload within a few bytes of the protocol
// maximum silently overflow once the longer varint encoding is accounted for.
func SizePublish(vp *VariablesPublish, qos QoSLevel) (remaining uint32, total uint32, status Status) {
	if vp == nil {
		return 0, 0, StatusBadParameter
	}
	if len(vp.TopicName) == 0 || len(vp.TopicName) > 65535 {
		return 0, 0, StatusBadParameter
	}
	if !qos.IsValid() {
		return 0, 0, StatusBadParameter
	}
	header := uint64(2 + len(vp.TopicName))
	if qos != QoS0 {
		header += 2
	}
	payload := uint64(len(vp.Payload))

	limit := uint64(maxRemainingLengthValue) - header - 1
	if payload > limit {
		return 0, 0, StatusBadParameter
	}
	r := header + payload
	limit -= uint64(remainingLengthEncodedSize(uint32(r)))
	if payload > limit {
		return 0, 0, StatusBadParameter
	}

	remaining = uint32(r)
	total, status = packetSize(remaining, 0)
	return remaining, total, status
}

// SizeSubscribe computes the Remaining Length and total packet size of a
// SUBSCRIBE packet built from vs. Returns StatusBadParameter if vs is nil or
// TopicFilters is empty, per spec.md's "at least one filter" invariant.
func SizeSubscribe(vs *VariablesSubscribe) (remaining uint32, total uint32, status Status) {
	if vs == nil || len(vs.TopicFilters) == 0 {
		return 0, 0, StatusBadParameter
	}
	remaining = 2
	for _, f := range vs.TopicFilters {
		if len(f.TopicFilter) == 0 || len(f.TopicFilter) > 65535 {
			return 0, 0, StatusBadParameter
		}
		remaining += uint32(2+len(f.TopicFilter)) + 1
	}
	total, status = packetSize(remaining, 0)
	return remaining, total, status
}

// SizeUnsubscribe computes the Remaining Length and total packet size of an
// UNSUBSCRIBE packet built from vu. Unlike SUBSCRIBE, UNSUBSCRIBE's payload
// carries no per-filter QoS byte; this deliberately does not reproduce
// mqtt_lightweight.c's MQTT_GetUnsubscribePacketSize, which mistakenly
// delegates to the SUBSCRIBE sizing routine and over-counts by one byte per
// filter (see DESIGN.md).
func SizeUnsubscribe(vu *VariablesUnsubscribe) (remaining uint32, total uint32, status Status) {
	if vu == nil || len(vu.Topics) == 0 {
		return 0, 0, StatusBadParameter
	}
	remaining = 2
	for _, topic := range vu.Topics {
		if len(topic) == 0 || len(topic) > 65535 {
			return 0, 0, StatusBadParameter
		}
		remaining += uint32(2 + len(topic))
	}
	total, status = packetSize(remaining, 0)
	return remaining, total, status
}

// SizeDisconnect returns the constant total packet size of a DISCONNECT packet.
func SizeDisconnect() uint32 { return 2 }

// SizePingreq returns the constant total packet size of a PINGREQ packet.
func SizePingreq() uint32 { return 2 }
