// Package record captures console traffic in the User Mode Linux
// tty-log format so sessions can be replayed later with `nsh play`.
package record

import (
	"bytes"
	"encoding/binary"
	"io"
	"log"
	"sync"
	"time"

	"github.com/nanux-os/nsh/core/sys"
)

type fdOp int32

const (
	opOpen  fdOp = 1
	opClose fdOp = 2
	opWrite fdOp = 3
	opExec  fdOp = 4
)

type fdDir int32

const (
	dirRead  fdDir = 1
	dirWrite fdDir = 2
)

// event is the fixed frame header preceding each payload.
type event struct {
	Operation    int32  // Operation, maps into fdOp.
	Tty          uint32 // Always 0.
	Size         int32  // Number of payload bytes following the header.
	Direction    int32  // Data direction, maps into fdDir.
	Seconds      uint32 // UNIX timestamp of the event.
	Microseconds uint32 // Microseconds after the timestamp.
}

// Gateway wraps another gateway and tees console reads, writes and
// spawn requests to out.
type Gateway struct {
	sys.Gateway

	mu  sync.Mutex
	out io.Writer
}

var _ sys.Gateway = (*Gateway)(nil)

// Wrap records all console traffic through g to out.
func Wrap(g sys.Gateway, out io.Writer) *Gateway {
	return &Gateway{Gateway: g, out: out}
}

func (g *Gateway) logEvent(timestamp time.Time, op fdOp, dir fdDir, data []byte) {
	sec := timestamp.UnixNano() / int64(time.Second)
	usec := (timestamp.UnixNano() % int64(time.Second)) / int64(time.Microsecond)

	g.mu.Lock()
	defer g.mu.Unlock()

	header := []interface{}{
		int32(op),
		uint32(0), // TTY, always 0.
		int32(len(data)),
		int32(dir),
		uint32(sec),
		uint32(usec),
	}
	for _, v := range header {
		if err := binary.Write(g.out, binary.LittleEndian, v); err != nil {
			log.Print(err)
			return
		}
	}
	if len(data) > 0 {
		if _, err := g.out.Write(data); err != nil {
			log.Print(err)
		}
	}
}

func (g *Gateway) Read(fd int, p []byte) int {
	n := g.Gateway.Read(fd, p)
	if fd == sys.Stdin && n > 0 {
		g.logEvent(time.Now(), opWrite, dirRead, p[:n])
	}
	return n
}

func (g *Gateway) Write(fd int, p []byte) int {
	n := g.Gateway.Write(fd, p)
	if n > 0 {
		g.logEvent(time.Now(), opWrite, dirWrite, p[:n])
	}
	return n
}

func (g *Gateway) Spawn(path string) int {
	pid := g.Gateway.Spawn(path)
	g.logEvent(time.Now(), opExec, dirWrite, []byte(path))
	return pid
}

type replayOpts struct {
	maxSleep time.Duration
}

// ReplayOpt changes options for playback.
type ReplayOpt func(*replayOpts)

// MaxSleep caps the duration Replay sleeps between events.
func MaxSleep(duration time.Duration) ReplayOpt {
	return func(r *replayOpts) {
		r.maxSleep = duration
	}
}

// Replay plays the output half of a recorded session to destination,
// pacing events by their recorded timestamps.
func Replay(recording io.Reader, destination io.Writer, opts ...ReplayOpt) error {
	options := &replayOpts{
		maxSleep: 3 * time.Second,
	}
	for _, o := range opts {
		o(options)
	}

	var prevTime time.Time
	var once sync.Once

	return ReplayCallback(recording, func(when time.Time, data []byte) error {
		once.Do(func() {
			prevTime = when
		})

		sleepDuration := when.Sub(prevTime)
		if sleepDuration > options.maxSleep {
			sleepDuration = options.maxSleep
		}
		time.Sleep(sleepDuration)
		prevTime = when

		_, err := destination.Write(data)
		return err
	})
}

// ReplayCallback invokes callback for every output frame in the
// recording, in order, with the frame's timestamp. Keyboard input and
// spawn frames are skipped.
func ReplayCallback(recording io.Reader, callback func(when time.Time, data []byte) error) error {
	eventPtr := &event{}
	buf := &bytes.Buffer{}

	for {
		if err := binary.Read(recording, binary.LittleEndian, eventPtr); err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		buf.Reset()

		if _, err := io.CopyN(buf, recording, int64(eventPtr.Size)); err != nil {
			return err
		}

		if fdOp(eventPtr.Operation) != opWrite || fdDir(eventPtr.Direction) != dirWrite {
			continue
		}

		when := time.Unix(int64(eventPtr.Seconds), int64(eventPtr.Microseconds)*int64(time.Microsecond))
		if err := callback(when, buf.Bytes()); err != nil {
			return err
		}
	}
}
