// Package capture extracts RADIUS datagrams from pcap and pcapng files.
package capture

import (
	"bufio"
	"context"
	"encoding/binary"
	"io"
	"net"
	"os"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
	"github.com/pkg/errors"

	"github.com/vitalvas/radwire/pkg/log"
	"github.com/vitalvas/radwire/pkg/metrics"
	"github.com/vitalvas/radwire/pkg/packet"
)

// pcapng section header block type, identical in either byte order.
const pcapngMagic = 0x0A0D0D0A

// Datagram is a UDP payload seen on one of the configured ports
type Datagram struct {
	Frame     int
	Timestamp time.Time
	Src       *net.UDPAddr
	Dst       *net.UDPAddr
	Payload   []byte
}

// DecodeFunc receives every matching datagram along with the decode result.
// Returning an error stops the iteration.
type DecodeFunc func(dg Datagram, view *packet.PacketView, err error) error

type packetSource interface {
	ReadPacketData() ([]byte, gopacket.CaptureInfo, error)
	LinkType() layers.LinkType
}

// Reader walks capture files frame by frame
type Reader struct {
	ports  map[uint16]struct{}
	logger log.Logger
}

// NewReader creates a reader that keeps UDP datagrams whose source or
// destination port is one of ports.
func NewReader(ports []int, logger log.Logger) *Reader {
	if logger == nil {
		logger = log.Discard()
	}

	set := make(map[uint16]struct{}, len(ports))
	for _, port := range ports {
		set[uint16(port)] = struct{}{}
	}

	return &Reader{
		ports:  set,
		logger: logger,
	}
}

// ReadFile opens path and calls fn for every RADIUS datagram in it
func (r *Reader) ReadFile(ctx context.Context, path string, fn func(Datagram) error) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open capture %s", path)
	}
	defer f.Close()

	return r.Read(ctx, f, fn)
}

// Read detects the pcap or pcapng format of src and calls fn for every
// RADIUS datagram. Frames that cannot be parsed down to UDP are skipped.
// Payloads passed to fn are copies owned by the callee.
func (r *Reader) Read(ctx context.Context, src io.Reader, fn func(Datagram) error) error {
	source, err := openSource(src)
	if err != nil {
		return err
	}

	first, err := firstLayer(source.LinkType())
	if err != nil {
		return err
	}

	var (
		eth     layers.Ethernet
		vlan    layers.Dot1Q
		sll     layers.LinuxSLL
		ip4     layers.IPv4
		ip6     layers.IPv6
		udp     layers.UDP
		decoded = make([]gopacket.LayerType, 0, 4)
	)

	parser := gopacket.NewDecodingLayerParser(first, &eth, &vlan, &sll, &ip4, &ip6, &udp)
	parser.IgnoreUnsupported = true

	for frame := 1; ; frame++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		data, ci, err := source.ReadPacketData()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "read frame %d", frame)
		}

		if err := parser.DecodeLayers(data, &decoded); err != nil {
			r.logger.WithFields(map[string]interface{}{
				"frame": frame,
				"error": err,
			}).Debug("skipping undecodable frame")
			continue
		}

		var srcIP, dstIP net.IP
		hasUDP := false
		for _, layerType := range decoded {
			switch layerType {
			case layers.LayerTypeIPv4:
				srcIP, dstIP = ip4.SrcIP, ip4.DstIP
			case layers.LayerTypeIPv6:
				srcIP, dstIP = ip6.SrcIP, ip6.DstIP
			case layers.LayerTypeUDP:
				hasUDP = true
			}
		}

		if !hasUDP || srcIP == nil || !r.matches(udp) {
			continue
		}

		dg := Datagram{
			Frame:     frame,
			Timestamp: ci.Timestamp,
			Src:       &net.UDPAddr{IP: cloneIP(srcIP), Port: int(udp.SrcPort)},
			Dst:       &net.UDPAddr{IP: cloneIP(dstIP), Port: int(udp.DstPort)},
			Payload:   append([]byte(nil), udp.Payload...),
		}

		if err := fn(dg); err != nil {
			return err
		}
	}
}

// Decode reads src like Read and decodes each datagram payload. Decode
// failures are handed to fn, not returned.
func (r *Reader) Decode(ctx context.Context, src io.Reader, fn DecodeFunc) error {
	return r.Read(ctx, src, func(dg Datagram) error {
		view, _, err := packet.Decode(dg.Payload)
		metrics.RecordDecode(metrics.SourcePcap, view, err, len(dg.Payload))

		if err != nil {
			r.logger.WithFields(map[string]interface{}{
				"frame": dg.Frame,
				"src":   dg.Src.String(),
				"dst":   dg.Dst.String(),
				"kind":  packet.KindOf(err).String(),
			}).Debugf("decode failed: %v", err)
		}

		return fn(dg, view, err)
	})
}

// DecodeFile opens path and decodes it like Decode
func (r *Reader) DecodeFile(ctx context.Context, path string, fn DecodeFunc) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open capture %s", path)
	}
	defer f.Close()

	return r.Decode(ctx, f, fn)
}

func (r *Reader) matches(udp layers.UDP) bool {
	if _, ok := r.ports[uint16(udp.SrcPort)]; ok {
		return true
	}
	_, ok := r.ports[uint16(udp.DstPort)]
	return ok
}

func openSource(src io.Reader) (packetSource, error) {
	br := bufio.NewReader(src)

	magic, err := br.Peek(4)
	if err != nil {
		return nil, errors.Wrap(err, "read capture header")
	}

	if binary.LittleEndian.Uint32(magic) == pcapngMagic {
		ng, err := pcapgo.NewNgReader(br, pcapgo.DefaultNgReaderOptions)
		if err != nil {
			return nil, errors.Wrap(err, "open pcapng")
		}
		return ng, nil
	}

	pr, err := pcapgo.NewReader(br)
	if err != nil {
		return nil, errors.Wrap(err, "open pcap")
	}
	return pr, nil
}

func firstLayer(lt layers.LinkType) (gopacket.LayerType, error) {
	switch lt {
	case layers.LinkTypeEthernet:
		return layers.LayerTypeEthernet, nil
	case layers.LinkTypeLinuxSLL:
		return layers.LayerTypeLinuxSLL, nil
	case layers.LinkTypeRaw, layers.LinkTypeIPv4:
		return layers.LayerTypeIPv4, nil
	case layers.LinkTypeIPv6:
		return layers.LayerTypeIPv6, nil
	default:
		return gopacket.LayerTypeZero, errors.Errorf("unsupported link type %s", lt)
	}
}

func cloneIP(ip net.IP) net.IP {
	return append(net.IP(nil), ip...)
}
