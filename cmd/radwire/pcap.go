package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vitalvas/radwire/pkg/capture"
	"github.com/vitalvas/radwire/pkg/inspect"
	"github.com/vitalvas/radwire/pkg/packet"
)

// frameRecord is the JSON form of one captured datagram
type frameRecord struct {
	Frame     int              `json:"frame"`
	Timestamp time.Time        `json:"timestamp"`
	Src       string           `json:"src"`
	Dst       string           `json:"dst"`
	Packet    *inspect.Summary `json:"packet,omitempty"`
	Error     string           `json:"error,omitempty"`
	Kind      string           `json:"kind,omitempty"`
}

func newPcapCmd(a *app) *cobra.Command {
	var ports []int

	cmd := &cobra.Command{
		Use:   "pcap <file>",
		Short: "Decode RADIUS datagrams from a pcap or pcapng capture",
		Long: `Decode every UDP datagram in a capture whose source or destination port
is a RADIUS port. Ports default to the capture.ports config setting.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(ports) == 0 {
				ports = a.cfg.Capture.Ports
			}
			return a.runPcap(cmd, args[0], ports)
		},
	}

	cmd.Flags().IntSliceVarP(&ports, "ports", "p", nil, "UDP ports treated as RADIUS")

	return cmd
}

func (a *app) runPcap(cmd *cobra.Command, path string, ports []int) error {
	w := cmd.OutOrStdout()
	reader := capture.NewReader(ports, a.logger)

	total, failed := 0, 0
	err := reader.DecodeFile(cmd.Context(), path, func(dg capture.Datagram, view *packet.PacketView, err error) error {
		total++
		if err != nil {
			failed++
		}
		return a.printFrame(w, dg, view, err)
	})
	if err != nil {
		return err
	}

	a.logger.WithFields(map[string]interface{}{
		"file":    path,
		"packets": total,
		"failed":  failed,
	}).Info("capture decoded")

	return nil
}

func (a *app) printFrame(w io.Writer, dg capture.Datagram, view *packet.PacketView, err error) error {
	if a.jsonOutput {
		rec := frameRecord{
			Frame:     dg.Frame,
			Timestamp: dg.Timestamp,
			Src:       dg.Src.String(),
			Dst:       dg.Dst.String(),
		}
		if err != nil {
			rec.Error = err.Error()
			rec.Kind = packet.KindOf(err).String()
		} else {
			summary := inspect.Summarize(view, a.dict)
			rec.Packet = &summary
		}
		return json.NewEncoder(w).Encode(rec)
	}

	if _, werr := fmt.Fprintf(w, "frame %d %s %s -> %s\n",
		dg.Frame, dg.Timestamp.UTC().Format(time.RFC3339Nano), dg.Src, dg.Dst); werr != nil {
		return werr
	}

	if err != nil {
		_, werr := fmt.Fprintf(w, "  decode error: %v\n", err)
		return werr
	}

	return a.printView(w, view)
}
