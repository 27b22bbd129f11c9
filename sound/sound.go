package sound

import (
	"io"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"snake-arcade/game"
	"snake-arcade/game/types"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// Kind identifies a sound effect.
type Kind int

const (
	Eat Kind = iota
	Hurt
	GameOver
	Win
)

func (k Kind) String() string {
	switch k {
	case Eat:
		return "eat"
	case Hurt:
		return "hurt"
	case GameOver:
		return "game over"
	case Win:
		return "win"
	}
	return "unknown"
}

// Player plays procedural effects. It is a game.Listener, so it can be
// plugged straight into a session. A zero Player is silent.
type Player struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
	last   int
}

// New opens the audio device. oto allows a single context per process.
func New(volume float64) (*Player, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, err
	}
	return &Player{ctx: ctx, ready: ready, volume: clampF(volume, 0, 1)}, nil
}

// Play starts an effect in the background. It returns immediately and does
// nothing while the device is still warming up.
func (p *Player) Play(kind Kind) {
	if p == nil || p.ctx == nil {
		return
	}
	select {
	case <-p.ready:
	default:
		return
	}
	samples := Generate(kind)
	if len(samples) == 0 {
		return
	}
	go func() {
		reader := &soundReader{data: samples}
		player := p.ctx.NewPlayer(reader)
		player.SetVolume(p.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

var _ game.Listener = (*Player)(nil)

func (p *Player) ScoreChanged(score int) {
	if p == nil {
		return
	}
	if score > p.last {
		p.Play(Eat)
	}
	p.last = score
}

func (p *Player) Reset(int, types.CollisionType) {
	p.Play(Hurt)
}

func (p *Player) GameOver(summary game.Summary) {
	if summary.Won {
		p.Play(Win)
		return
	}
	p.Play(GameOver)
}

func (p *Player) Exited() {}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// Generate renders an effect as interleaved stereo float32 LE frames.
func Generate(kind Kind) []byte {
	switch kind {
	case Eat:
		return genEat()
	case Hurt:
		return genHurt()
	case GameOver:
		return genGameOver()
	case Win:
		return genWin()
	}
	return nil
}

// genEat: short rising FM pop.
func genEat() []byte {
	n := int(0.09 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.5, 0.0, 0.1)
		freq := 480 + 720*p
		s := fm(t, freq, 2.0, 3.5*env) * env * 0.5
		s += math.Sin(2*math.Pi*freq*3*t) * env * 0.06
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genHurt: falling thud for a lost life.
func genHurt() []byte {
	n := int(0.16 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.015, 0.55, 0.1, 0.25)
		freq := 320 - 220*p
		s := fm(t, freq, 1.5, 2.8*(1-p)) * env * 0.52
		s += math.Sin(2*math.Pi*freq*2*t) * env * 0.1
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

type note struct{ freq, onset float64 }

// genGameOver: descending E4 C4 A3.
func genGameOver() []byte {
	return genNotes(0.75, []note{
		{329.63, 0.00},
		{261.63, 0.14},
		{220.00, 0.28},
	})
}

// genWin: the same phrase going up.
func genWin() []byte {
	return genNotes(0.75, []note{
		{261.63, 0.00},
		{329.63, 0.12},
		{392.00, 0.24},
		{523.25, 0.36},
	})
}

func genNotes(dur float64, notes []note) []byte {
	n := int(dur * SampleRate)
	mix := make([]float64, n)
	for _, nt := range notes {
		start := int(nt.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.008, 0.25, 0.3, 0.45)
			freq := nt.freq * (1 - np*0.025)
			s := fm(t, freq, 2.0, 2.0*env) * env * 0.32
			s += math.Sin(2*math.Pi*freq*0.5*t) * env * 0.1
			mix[i] += s
		}
	}
	buf := makeBuf(n)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// putStereoF32 writes a [-1,1] sample to both channels of frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// softSat saturates gently instead of clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns the envelope at progress [0,1]. attack, decay and release
// are fractions of the whole duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

func makeBuf(n int) []byte { return make([]byte, n*8) }

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
