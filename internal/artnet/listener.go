package artnet

import (
	"context"
	"fmt"
	"net"

	"github.com/stagecrew/showboard/internal/logger"
)

// readBufferSize fits a full ArtDMX frame (18-byte header + 512 channels).
const readBufferSize = 1024

// Listener binds a UDP socket, decodes incoming ArtDMX frames and pushes
// brightness changes into the sink.
type Listener struct {
	decoder Decoder
	monitor *Monitor
	port    int
	sink    func(nits int)
}

// NewListener wires a decoder to a brightness sink. The sink is called from
// the listener goroutine, only when the brightness actually changes.
func NewListener(port int, decoder Decoder, sink func(nits int)) *Listener {
	return &Listener{
		decoder: decoder,
		monitor: &Monitor{},
		port:    port,
		sink:    sink,
	}
}

// Run receives datagrams until the context is canceled. Malformed or foreign
// packets are dropped silently.
func (l *Listener) Run(ctx context.Context) error {
	ctx = logger.WithName(ctx, "artnet")

	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4zero, Port: l.port})
	if err != nil {
		return fmt.Errorf("listen udp: %w", err)
	}

	// Closing the socket unblocks the read loop on shutdown.
	go func() {
		<-ctx.Done()

		_ = conn.Close()
	}()

	logger.InfoKV(ctx, "Listening for ArtDMX frames",
		"port", l.port,
		"universe", l.decoder.Universe,
		"channel_high", l.decoder.ChannelHigh,
		"channel_low", l.decoder.ChannelLow)

	buf := make([]byte, readBufferSize)

	for {
		n, _, err := conn.ReadFromUDP(buf)
		if err != nil {
			if ctx.Err() != nil {
				logger.Info(ctx, "Context canceled, exiting")
				return nil
			}

			return fmt.Errorf("read datagram: %w", err)
		}

		value, ok := l.decoder.Decode(buf[:n])
		if !ok {
			continue
		}

		nits, changed := l.monitor.Observe(value)
		if !changed {
			continue
		}

		logger.DebugKV(ctx, "Brightness changed", "nits", nits, "raw", value)
		l.sink(nits)
	}
}
