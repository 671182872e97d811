// Package cmd implements the mqttwire command-line tool: a thin
// encode/decode/dump demonstration of the mqtt package's public API. It owns
// no session state and answers no packets back; it is a protocol inspector,
// not a client or a broker.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "mqttwire",
	Short:         "Encode, decode and dump MQTT v3.1.1 control packets",
	Long:          "mqttwire is a command-line inspector built on top of the mqtt wire codec package. It never opens a session, acknowledges a packet, or matches a topic filter: it only encodes, decodes and dumps the bytes.",
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(dumpCmd)
}
