package cmd

import (
	"context"
	"log/slog"
	"net"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/driftwave/mqttwire"
	"github.com/driftwave/mqttwire/internal/logx"
)

var dumpListenAddrs []string

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Accept connections on one or more addresses and log every decoded packet",
	Long:  "dump never writes a response packet: it only frames, decodes and logs what each connection sends. Useful for observing what a real client or broker puts on the wire without standing up either.",
	RunE:  runDump,
}

func init() {
	dumpCmd.Flags().StringSliceVar(&dumpListenAddrs, "listen", []string{"127.0.0.1:1883"}, "addresses to listen on (repeatable)")
}

func runDump(cmd *cobra.Command, _ []string) error {
	log := logx.New(slog.LevelInfo, os.Stderr)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	group, ctx := errgroup.WithContext(ctx)
	for _, addr := range dumpListenAddrs {
		addr := addr
		group.Go(func() error {
			return serveDump(ctx, log, addr)
		})
	}
	return group.Wait()
}

func serveDump(ctx context.Context, log *slog.Logger, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	defer ln.Close()
	log.Info("listening", "addr", addr)

	connGroup, connCtx := errgroup.WithContext(ctx)
	connGroup.Go(func() error {
		<-connCtx.Done()
		return ln.Close()
	})
	for {
		conn, err := ln.Accept()
		if err != nil {
			select {
			case <-connCtx.Done():
				return connGroup.Wait()
			default:
				return err
			}
		}
		connGroup.Go(func() error {
			defer conn.Close()
			dumpConn(connCtx, log, conn.RemoteAddr().String(), conn)
			return nil
		})
	}
}

func dumpConn(ctx context.Context, log *slog.Logger, who string, conn net.Conn) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		pkt, status := mqtt.ReadPacket(ctx, conn)
		if status != mqtt.StatusSuccess {
			if status != mqtt.StatusNoDataAvailable {
				log.Warn("closing connection", "peer", who, "status", status)
			}
			return
		}
		describe(log.With("peer", who), pkt)
	}
}
