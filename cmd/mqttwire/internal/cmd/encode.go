package cmd

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/driftwave/mqttwire"
)

var (
	encClientID  string
	encKeepAlive uint16
	encTopic     string
	encPayload   string
	encQoS       uint8
	encID        uint16
	encFilters   []string
)

var encodeCmd = &cobra.Command{
	Use:   "encode {connect|publish|subscribe|unsubscribe|pingreq|disconnect}",
	Short: "Serialize a packet and print it as hex",
	Args:  cobra.ExactArgs(1),
	RunE:  runEncode,
}

func init() {
	encodeCmd.Flags().StringVar(&encClientID, "client-id", "mqttwire", "CONNECT client identifier")
	encodeCmd.Flags().Uint16Var(&encKeepAlive, "keepalive", 60, "CONNECT keep-alive seconds")
	encodeCmd.Flags().StringVar(&encTopic, "topic", "", "PUBLISH topic name")
	encodeCmd.Flags().StringVar(&encPayload, "payload", "", "PUBLISH payload")
	encodeCmd.Flags().Uint8Var(&encQoS, "qos", 0, "PUBLISH/SUBSCRIBE QoS (0, 1 or 2)")
	encodeCmd.Flags().Uint16Var(&encID, "id", 1, "packet identifier")
	encodeCmd.Flags().StringSliceVar(&encFilters, "filter", nil, "SUBSCRIBE/UNSUBSCRIBE topic filters (repeatable)")
}

func runEncode(_ *cobra.Command, args []string) error {
	var buf []byte
	switch args[0] {
	case "connect":
		vc := &mqtt.VariablesConnect{KeepAlive: encKeepAlive, CleanSession: true}
		vc.SetClientID(encClientID)
		remaining, total, status := mqtt.SizeConnect(vc)
		if status != mqtt.StatusSuccess {
			return status
		}
		buf = make([]byte, total)
		if status := mqtt.SerializeConnect(vc, remaining, buf); status != mqtt.StatusSuccess {
			return status
		}
	case "publish":
		vp := mqtt.NewPublish(encTopic, []byte(encPayload))
		flags, err := mqtt.NewPublishFlags(mqtt.QoSLevel(encQoS), false, false)
		if err != nil {
			return err
		}
		remaining, total, status := mqtt.SizePublish(vp, flags.QoS())
		if status != mqtt.StatusSuccess {
			return status
		}
		buf = make([]byte, total)
		if status := mqtt.SerializePublish(vp, flags, encID, remaining, buf); status != mqtt.StatusSuccess {
			return status
		}
	case "subscribe":
		vs := &mqtt.VariablesSubscribe{}
		for _, f := range encFilters {
			vs.TopicFilters = append(vs.TopicFilters, mqtt.NewSubscribeRequest(f, mqtt.QoSLevel(encQoS)))
		}
		remaining, total, status := mqtt.SizeSubscribe(vs)
		if status != mqtt.StatusSuccess {
			return status
		}
		buf = make([]byte, total)
		if status := mqtt.SerializeSubscribe(vs, encID, remaining, buf); status != mqtt.StatusSuccess {
			return status
		}
	case "unsubscribe":
		vu := &mqtt.VariablesUnsubscribe{Topics: mqtt.NewUnsubscribeTopics(encFilters...)}
		remaining, total, status := mqtt.SizeUnsubscribe(vu)
		if status != mqtt.StatusSuccess {
			return status
		}
		buf = make([]byte, total)
		if status := mqtt.SerializeUnsubscribe(vu, encID, remaining, buf); status != mqtt.StatusSuccess {
			return status
		}
	case "pingreq":
		buf = make([]byte, mqtt.SizePingreq())
		if status := mqtt.SerializePingreq(buf); status != mqtt.StatusSuccess {
			return status
		}
	case "disconnect":
		buf = make([]byte, mqtt.SizeDisconnect())
		if status := mqtt.SerializeDisconnect(buf); status != mqtt.StatusSuccess {
			return status
		}
	default:
		return fmt.Errorf("unknown packet kind %q", args[0])
	}
	_, err := fmt.Fprintln(os.Stdout, hex.EncodeToString(buf))
	return err
}
