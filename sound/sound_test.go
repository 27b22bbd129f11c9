package sound

import (
	"encoding/binary"
	"io"
	"math"
	"testing"

	"snake-arcade/game"
	"snake-arcade/game/types"
)

func TestGenerateProducesBoundedStereoFrames(t *testing.T) {
	for _, kind := range []Kind{Eat, Hurt, GameOver, Win} {
		t.Run(kind.String(), func(t *testing.T) {
			buf := Generate(kind)
			if len(buf) == 0 || len(buf)%8 != 0 {
				t.Fatalf("expected whole stereo frames, got %d bytes", len(buf))
			}
			loud := false
			for i := 0; i < len(buf); i += 8 {
				l := math.Float32frombits(binary.LittleEndian.Uint32(buf[i:]))
				r := math.Float32frombits(binary.LittleEndian.Uint32(buf[i+4:]))
				if l != r {
					t.Fatalf("frame %d: channels differ", i/8)
				}
				if l > 1 || l < -1 || math.IsNaN(float64(l)) {
					t.Fatalf("frame %d out of range: %v", i/8, l)
				}
				if math.Abs(float64(l)) > 0.05 {
					loud = true
				}
			}
			if !loud {
				t.Error("effect is silent")
			}
		})
	}
	if Generate(Kind(99)) != nil {
		t.Error("unknown kind should produce nothing")
	}
}

func TestSoundReader(t *testing.T) {
	r := &soundReader{data: []byte{1, 2, 3, 4, 5}}
	p := make([]byte, 3)
	if n, err := r.Read(p); n != 3 || err != nil {
		t.Fatalf("first read: %d, %v", n, err)
	}
	if n, err := r.Read(p); n != 2 || err != nil {
		t.Fatalf("second read: %d, %v", n, err)
	}
	if _, err := r.Read(p); err != io.EOF {
		t.Fatalf("expected EOF, got %v", err)
	}
}

func TestSilentPlayerIsAListener(t *testing.T) {
	var l game.Listener = &Player{}
	l.ScoreChanged(1)
	l.Reset(2, types.WallCollision)
	l.GameOver(game.Summary{Won: true})
	l.Exited()

	var nilPlayer *Player
	nilPlayer.Play(Eat)
	nilPlayer.ScoreChanged(3)
}

func TestScoreChangedTracksLastScore(t *testing.T) {
	p := &Player{}
	p.ScoreChanged(2)
	p.ScoreChanged(0)
	if p.last != 0 {
		t.Errorf("last = %d, want 0 after a reset", p.last)
	}
}
