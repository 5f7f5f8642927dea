// Package metrics exports decode outcomes as Prometheus collectors.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vitalvas/radwire/pkg/packet"
)

// Decode sources used as the "source" label.
const (
	SourceUDP  = "udp"
	SourcePcap = "pcap"
)

var (
	registerOnce sync.Once

	decodedPackets = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "radwire",
			Subsystem: "decode",
			Name:      "packets_total",
			Help:      "Packets passed to the decoder, by source and result.",
		},
		[]string{"source", "result"},
	)
	decodeErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "radwire",
			Subsystem: "decode",
			Name:      "errors_total",
			Help:      "Decode failures by source and error kind.",
		},
		[]string{"source", "kind"},
	)
	decodedBytes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "radwire",
			Subsystem: "decode",
			Name:      "bytes_total",
			Help:      "Bytes passed to the decoder.",
		},
		[]string{"source"},
	)
	attributesPerPacket = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "radwire",
			Subsystem: "decode",
			Name:      "attributes",
			Help:      "Attributes per successfully decoded packet.",
			Buckets:   []float64{0, 1, 2, 4, 8, 16, 32, 64, 128},
		},
		[]string{"source"},
	)
)

// RegisterMetrics registers the collectors with the default registerer.
// Safe to call more than once.
func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(decodedPackets, decodeErrors, decodedBytes, attributesPerPacket)
	})
}

// RecordDecode records the outcome of decoding n bytes from source.
func RecordDecode(source string, view *packet.PacketView, err error, n int) {
	RegisterMetrics()

	decodedBytes.WithLabelValues(source).Add(float64(n))

	if err != nil {
		decodedPackets.WithLabelValues(source, "error").Inc()
		decodeErrors.WithLabelValues(source, packet.KindOf(err).String()).Inc()
		return
	}

	decodedPackets.WithLabelValues(source, "ok").Inc()
	if view != nil {
		attributesPerPacket.WithLabelValues(source).Observe(float64(view.Attributes.Len()))
	}
}
