package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/vitalvas/radwire/pkg/listener"
	"github.com/vitalvas/radwire/pkg/metrics"
	"github.com/vitalvas/radwire/pkg/packet"
)

func newListenCmd(a *app) *cobra.Command {
	var address, metricsAddress string

	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Decode RADIUS datagrams arriving on a UDP socket",
		Long: `Bind a UDP socket and print every RADIUS datagram it receives. Nothing is
ever sent back. With a metrics address, Prometheus metrics are served on
/metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if address == "" {
				address = a.cfg.Listen.Address
			}
			if metricsAddress == "" {
				metricsAddress = a.cfg.Metrics.Address
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return a.runListen(ctx, cmd.OutOrStdout(), address, metricsAddress)
		},
	}

	cmd.Flags().StringVarP(&address, "address", "a", "", "UDP address to listen on")
	cmd.Flags().StringVar(&metricsAddress, "metrics-address", "", "HTTP address for /metrics")

	return cmd
}

func (a *app) runListen(ctx context.Context, w io.Writer, address, metricsAddress string) error {
	var mu sync.Mutex
	handler := func(_ context.Context, view *packet.PacketView, from net.Addr) {
		mu.Lock()
		defer mu.Unlock()

		if !a.jsonOutput {
			fmt.Fprintf(w, "from %s\n", from)
		}
		if err := a.printView(w, view); err != nil {
			a.logger.Errorf("failed to write packet: %v", err)
		}
	}

	l, err := listener.Listen(address, listener.Config{
		BufferSize: a.cfg.Listen.BufferSize,
		Logger:     a.logger,
		Handler:    handler,
	})
	if err != nil {
		return err
	}

	if metricsAddress != "" {
		srv, err := serveMetrics(metricsAddress, a)
		if err != nil {
			l.Close()
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()
	}

	return l.Serve(ctx)
}

func serveMetrics(address string, a *app) (*http.Server, error) {
	metrics.RegisterMetrics()

	ln, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf("metrics server stopped: %v", err)
		}
	}()

	a.logger.WithFields(map[string]interface{}{
		"address": ln.Addr().String(),
	}).Info("serving metrics")

	return srv, nil
}
