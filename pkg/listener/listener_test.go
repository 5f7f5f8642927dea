package listener

import (
	"bytes"
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalvas/radwire/pkg/log"
	"github.com/vitalvas/radwire/pkg/packet"
)

func accountingRequest(id byte) []byte {
	b := []byte{byte(packet.CodeAccountingRequest), id, 0, 26}
	b = append(b, bytes.Repeat([]byte{0x11}, 16)...)
	return append(b, 40, 6, 0, 0, 0, 1)
}

type received struct {
	view *packet.PacketView
	from net.Addr
}

func startListener(t *testing.T, handler Handler) (*Listener, net.Conn, chan error) {
	t.Helper()

	l, err := Listen("127.0.0.1:0", Config{Logger: log.Discard(), Handler: handler})
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		done <- l.Serve(context.Background())
	}()

	client, err := net.Dial("udp", l.LocalAddr().String())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return l, client, done
}

func TestListenerDecodesDatagrams(t *testing.T) {
	got := make(chan received, 4)
	l, client, done := startListener(t, func(_ context.Context, view *packet.PacketView, from net.Addr) {
		got <- received{view, from}
	})

	_, err := client.Write(accountingRequest(7))
	require.NoError(t, err)

	select {
	case r := <-got:
		assert.Equal(t, packet.CodeAccountingRequest, r.view.Code)
		assert.Equal(t, uint8(7), r.view.Identifier)
		status, ok := r.view.Attributes.Get(40)
		require.True(t, ok)
		assert.Equal(t, []byte{0, 0, 0, 1}, status.Value)
		assert.Equal(t, client.LocalAddr().String(), r.from.String())
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for datagram")
	}

	require.NoError(t, l.Close())
	assert.NoError(t, <-done)
}

func TestListenerDropsMalformedDatagrams(t *testing.T) {
	got := make(chan received, 4)
	l, client, done := startListener(t, func(_ context.Context, view *packet.PacketView, from net.Addr) {
		got <- received{view, from}
	})

	_, err := client.Write([]byte{1, 2, 3})
	require.NoError(t, err)

	_, err = client.Write(accountingRequest(9))
	require.NoError(t, err)

	select {
	case r := <-got:
		assert.Equal(t, uint8(9), r.view.Identifier)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for datagram")
	}

	require.NoError(t, l.Close())
	require.NoError(t, <-done)
	assert.Empty(t, got)
}

func TestListenerNeverReplies(t *testing.T) {
	l, client, done := startListener(t, nil)

	_, err := client.Write(accountingRequest(1))
	require.NoError(t, err)

	require.NoError(t, client.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	buf := make([]byte, 64)
	_, err = client.Read(buf)
	require.Error(t, err)

	var netErr net.Error
	require.ErrorAs(t, err, &netErr)
	assert.True(t, netErr.Timeout())

	require.NoError(t, l.Close())
	assert.NoError(t, <-done)
}

func TestListenerViewOutlivesBuffer(t *testing.T) {
	var mu sync.Mutex
	var views []*packet.PacketView
	var wg sync.WaitGroup
	wg.Add(3)

	l, client, done := startListener(t, func(_ context.Context, view *packet.PacketView, _ net.Addr) {
		mu.Lock()
		views = append(views, view)
		mu.Unlock()
		wg.Done()
	})

	for id := byte(1); id <= 3; id++ {
		_, err := client.Write(accountingRequest(id))
		require.NoError(t, err)
	}

	waitDone := make(chan struct{})
	go func() {
		wg.Wait()
		close(waitDone)
	}()

	select {
	case <-waitDone:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for datagrams")
	}

	require.NoError(t, l.Close())
	require.NoError(t, <-done)

	seen := map[uint8]bool{}
	for _, view := range views {
		seen[view.Identifier] = true
		assert.Equal(t, bytes.Repeat([]byte{0x11}, 16), view.Authenticator)
	}
	assert.Equal(t, map[uint8]bool{1: true, 2: true, 3: true}, seen)
}

func TestListenerContextCancel(t *testing.T) {
	l, err := Listen("127.0.0.1:0", Config{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- l.Serve(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestListenerCloseIsIdempotent(t *testing.T) {
	l, err := Listen("127.0.0.1:0", Config{BufferSize: 128})
	require.NoError(t, err)

	assert.NoError(t, l.Close())
	assert.NoError(t, l.Close())
}

func TestListenInvalidAddress(t *testing.T) {
	_, err := Listen("not-an-address", Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
}
