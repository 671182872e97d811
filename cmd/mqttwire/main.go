// Command mqttwire is a small encode/decode/dump inspector built on the mqtt
// wire codec package.
package main

import (
	"fmt"
	"os"

	"github.com/driftwave/mqttwire/cmd/mqttwire/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
