// Package sound plays a short square-wave blip whenever a ball hits a wall.
package sound

import (
	"math"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	SampleRate = 44100
	BlipLength = SampleRate / 30 // samples per blip
	volume     = 0.1
)

// notes the blip cycles through, one per trigger.
var notes = []float64{220, 261, 329, 392, 440, 523}

// BlipStream is an endless 16-bit stereo stream that is silent until
// triggered. Trigger is safe to call from the game loop while the audio
// player reads on its own goroutine.
type BlipStream struct {
	pending atomic.Int64 // samples left in the current blip
	note    atomic.Int64
	tick    float64
	freq    float64
}

// Trigger starts a new blip, restarting any blip still playing.
func (s *BlipStream) Trigger() {
	s.note.Add(1)
	s.pending.Store(BlipLength)
}

func (s *BlipStream) Read(buf []byte) (int, error) {
	n := len(buf) - len(buf)%4
	for i := 0; i < n; i += 4 {
		var v int16
		if left := s.pending.Load(); left > 0 {
			if left == BlipLength {
				s.freq = notes[int(s.note.Load())%len(notes)]
				s.tick = 0
			}
			s.tick++
			phase := int(s.tick * s.freq * 2 / SampleRate)
			val := volume
			if phase%2 != 0 {
				val = -volume
			}
			// Linear fade out avoids a click at the end.
			val *= float64(left) / BlipLength
			v = int16(math.Round(val * math.MaxInt16))
			s.pending.CompareAndSwap(left, left-1)
		}
		buf[i] = byte(v)
		buf[i+1] = byte(v >> 8)
		buf[i+2] = byte(v)
		buf[i+3] = byte(v >> 8)
	}
	return n, nil
}

// Player owns the audio context and the blip stream.
type Player struct {
	stream *BlipStream
	player *audio.Player
}

// NewPlayer opens the audio device and starts the (silent) stream.
func NewPlayer() (*Player, error) {
	ctx := audio.NewContext(SampleRate)
	stream := &BlipStream{}
	p, err := ctx.NewPlayer(stream)
	if err != nil {
		return nil, err
	}
	p.SetVolume(0.5)
	p.Play()
	return &Player{stream: stream, player: p}, nil
}

// Blip plays one bounce sound.
func (p *Player) Blip() {
	p.stream.Trigger()
}
