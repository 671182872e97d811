package mqtt

// incomingPacketValid reports whether tp is a packet type the client is ever
// allowed to receive from a server, and whether flags carries a legal value
// for that type. Mirrors incomingPacketValid/PUBREL's flag check in
// mqtt_lightweight.c: PUBREL is only valid with bit 1 of its flags set.
func incomingPacketValid(tp PacketType, flags byte) bool {
	switch tp {
	case PacketConnack, PacketPublish, PacketPuback, PacketPubrec,
		PacketPubcomp, PacketSuback, PacketUnsuback, PacketPingresp:
		return tp.ValidateFlags(flags) == StatusSuccess
	case PacketPubrel:
		return flags&0b0010 != 0
	default:
		return false
	}
}
