package assets

import (
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	SampleRate = 44100

	blipSamples = SampleRate / 20 // 50ms
	blipFreq    = 520.0
	blipVolume  = 0.1
)

// ChompStream is an endless 16-bit stereo stream that stays silent until
// Trigger queues a short square-wave blip.
type ChompStream struct {
	mu    sync.Mutex
	left  int // samples left in the current blip
	freq  float64
	phase float64
}

// Trigger starts a blip. Bigger bites pitch it up a little.
func (s *ChompStream) Trigger(bites int) {
	if bites <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.left = blipSamples
	s.freq = blipFreq * (1 + 0.1*math.Min(float64(bites-1), 5))
}

// Read fills buf with whole stereo frames.
func (s *ChompStream) Read(buf []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(buf) - len(buf)%4
	for i := 0; i < n; i += 4 {
		val := 0.0
		if s.left > 0 {
			s.left--
			s.phase += s.freq / SampleRate
			if s.phase >= 1 {
				s.phase -= 1
			}
			if s.phase < 0.5 {
				val = blipVolume
			} else {
				val = -blipVolume
			}
		}

		v := int16(val * 32767)
		buf[i] = byte(v)
		buf[i+1] = byte(v >> 8)
		buf[i+2] = byte(v)
		buf[i+3] = byte(v >> 8)
	}
	return n, nil
}

// Sound plays a chomp whenever the player eats.
type Sound struct {
	player *audio.Player
	stream *ChompStream
}

func NewSound() (*Sound, error) {
	ctx := audio.NewContext(SampleRate)
	stream := &ChompStream{freq: blipFreq}
	player, err := ctx.NewPlayer(stream)
	if err != nil {
		return nil, err
	}
	player.SetVolume(0.5)
	player.Play()
	return &Sound{player: player, stream: stream}, nil
}

// Eat plays one blip for a tick's worth of eaten cells. A nil Sound is silent.
func (s *Sound) Eat(n int) {
	if s == nil {
		return
	}
	s.stream.Trigger(n)
}
