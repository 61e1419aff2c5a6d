package netio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
)

// DefaultSnapLen is the capture snap length used when none is configured.
const DefaultSnapLen = 1518

// ErrCaptureClosed indicates a write to a closed capture.
var ErrCaptureClosed = errors.New("capture closed")

// Capture writes every frame carried by the fabric to a pcap stream with
// link type Ethernet. It is safe for concurrent use.
type Capture struct {
	mu      sync.Mutex
	w       *pcapgo.Writer
	buf     *bufio.Writer
	closer  io.Closer
	snapLen int
	packets uint64
	closed  bool
}

// NewCapture writes the pcap file header to w and returns a Capture
// appending to it. A snapLen of zero or less selects DefaultSnapLen.
// If w implements io.Closer, Close closes it.
func NewCapture(w io.Writer, snapLen int) (*Capture, error) {
	if snapLen <= 0 {
		snapLen = DefaultSnapLen
	}

	buf := bufio.NewWriter(w)
	pw := pcapgo.NewWriter(buf)
	if err := pw.WriteFileHeader(uint32(snapLen), layers.LinkTypeEthernet); err != nil { //nolint:gosec // G115: snapLen is positive
		return nil, fmt.Errorf("write pcap header: %w", err)
	}

	c := &Capture{
		w:       pw,
		buf:     buf,
		snapLen: snapLen,
	}
	if cl, ok := w.(io.Closer); ok {
		c.closer = cl
	}
	return c, nil
}

// CreateCapture creates (or truncates) the file at path and returns a
// Capture writing to it.
func CreateCapture(path string, snapLen int) (*Capture, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create capture %s: %w", path, err)
	}

	c, err := NewCapture(f, snapLen)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("create capture %s: %w", path, err)
	}
	return c, nil
}

// WriteFrame appends one frame stamped with simulated time ts. Frames
// longer than the snap length are truncated in the capture.
func (c *Capture) WriteFrame(ts time.Time, frame []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrCaptureClosed
	}

	data := frame
	if len(data) > c.snapLen {
		data = data[:c.snapLen]
	}

	ci := gopacket.CaptureInfo{
		Timestamp:     ts,
		CaptureLength: len(data),
		Length:        len(frame),
	}
	if err := c.w.WritePacket(ci, data); err != nil {
		return fmt.Errorf("write capture packet: %w", err)
	}
	c.packets++
	return nil
}

// Packets returns the number of frames written.
func (c *Capture) Packets() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.packets
}

// Flush writes buffered frames to the underlying writer.
func (c *Capture) Flush() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	if err := c.buf.Flush(); err != nil {
		return fmt.Errorf("flush capture: %w", err)
	}
	return nil
}

// Close flushes the capture and closes the underlying writer if it is
// closable. Close is idempotent.
func (c *Capture) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	err := c.buf.Flush()
	if c.closer != nil {
		err = errors.Join(err, c.closer.Close())
	}
	if err != nil {
		return fmt.Errorf("close capture: %w", err)
	}
	return nil
}
