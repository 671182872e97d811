package cmd

import (
	"bufio"
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/driftwave/mqttwire"
	"github.com/driftwave/mqttwire/internal/logx"
)

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Read hex-encoded packets from stdin, one per line, and print their decoded fields",
	RunE:  runDecode,
}

func runDecode(_ *cobra.Command, _ []string) error {
	log := logx.New(slog.LevelInfo, os.Stderr)
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		raw, err := hex.DecodeString(line)
		if err != nil {
			log.Error("not valid hex", "line", line, "err", err)
			continue
		}
		pkt, status := mqtt.ReadPacket(context.Background(), bytes.NewReader(raw))
		if status != mqtt.StatusSuccess {
			log.Error("framing failed", "status", status)
			continue
		}
		describe(log, pkt)
	}
	return scanner.Err()
}

func describe(log *slog.Logger, pkt mqtt.PacketInfo) {
	switch pkt.Type {
	case mqtt.PacketConnack:
		vc, status := mqtt.DeserializeConnack(pkt)
		log.Info("CONNACK", "status", status, "sessionPresent", vc.SessionPresent(), "returnCode", vc.ReturnCode)
	case mqtt.PacketSuback:
		vs, status := mqtt.DeserializeSuback(pkt)
		log.Info("SUBACK", "status", status, "id", vs.PacketIdentifier, "codes", vs.ReturnCodes)
	case mqtt.PacketPingresp:
		status := mqtt.DeserializePingresp(pkt)
		log.Info("PINGRESP", "status", status)
	case mqtt.PacketPuback, mqtt.PacketPubrec, mqtt.PacketPubrel, mqtt.PacketPubcomp, mqtt.PacketUnsuback:
		id, status := mqtt.DeserializeAck(pkt)
		log.Info(pkt.Type.String(), "status", status, "id", id)
	case mqtt.PacketPublish:
		flags, id, vp, status := mqtt.DeserializePublish(pkt)
		log.Info("PUBLISH", "status", status, "qos", flags.QoS(), "dup", flags.Dup(), "retain", flags.Retain(),
			"id", id, "topic", string(vp.TopicName), "payloadLen", len(vp.Payload))
	default:
		log.Info(fmt.Sprintf("%s not supported by decode (client-bound only)", pkt.Type))
	}
}
