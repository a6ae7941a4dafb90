package capture

import (
	"encoding/binary"
	"io"
	"math"
	"sync/atomic"

	"github.com/kbukum/speechkit/util"
)

// meter tracks the RMS level of a mono s16le PCM stream.
type meter struct {
	level atomic.Uint64
	done  chan struct{}
}

func newMeter() *meter {
	return &meter{done: make(chan struct{})}
}

// run consumes the PCM stream until EOF, updating the level per chunk.
// Draining stdout also keeps the subprocess from blocking on a full pipe.
func (m *meter) run(r io.Reader) {
	defer close(m.done)
	buf := make([]byte, 4096)
	for {
		n, err := r.Read(buf)
		if n > 1 {
			m.level.Store(math.Float64bits(rms(buf[:n])))
		}
		if err != nil {
			m.level.Store(0)
			return
		}
	}
}

// Level returns the most recent RMS value in [0, 1].
func (m *meter) Level() float64 {
	return math.Float64frombits(m.level.Load())
}

func rms(b []byte) float64 {
	n := len(b) / 2
	if n == 0 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		s := int16(binary.LittleEndian.Uint16(b[2*i:]))
		f := float64(s) / 32768
		sum += f * f
	}
	return util.Clamp(math.Sqrt(sum/float64(n)), 0, 1)
}
