package game

import (
	"io"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundActivate SoundKind = iota
	SoundWarning
	SoundExpire
	SoundGameOver
)

// AudioSystem manages procedural sound effects.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}
}

var globalAudio *AudioSystem

var sfxVolume = 0.8

// InitAudio initializes the audio system. Callers may continue without
// sound when this fails; PlaySound is a no-op until init succeeds.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

// PlaySound plays a procedurally generated sound effect. kind selects
// the stinger; powerUp shifts its base pitch so each power-up has a
// recognizable voice.
func PlaySound(kind SoundKind, powerUp PowerUpKind) {
	if globalAudio == nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	samples := generateSound(kind, powerUp)
	if len(samples) == 0 {
		return
	}
	go func() {
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// AttachAudio subscribes the stinger playback to the power-up signals.
// Returns the subscription ids so a caller can detach again.
func AttachAudio(bus *EventBus) []int {
	ids := make([]int, 0, 4)
	ids = append(ids, bus.Subscribe(EventPowerUpActivated, func(e Event) {
		PlaySound(SoundActivate, e.Kind)
	}))
	ids = append(ids, bus.Subscribe(EventPowerUpWarning, func(e Event) {
		PlaySound(SoundWarning, e.Kind)
	}))
	ids = append(ids, bus.Subscribe(EventPowerUpDeactivated, func(e Event) {
		PlaySound(SoundExpire, e.Kind)
	}))
	ids = append(ids, bus.Subscribe(EventRunEnded, func(e Event) {
		PlaySound(SoundGameOver, PowerUpKindCount)
	}))
	return ids
}

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

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
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

// softSat applies gentle tanh-like saturation — no harsh clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
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

// fm returns an FM-synthesized sample.
// carrier: base frequency, modRatio: modulator/carrier ratio, modIdx: modulation depth.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

// pitchShift returns a per-power-up frequency multiplier so activation
// and expiry stingers are distinguishable by ear.
func pitchShift(powerUp PowerUpKind) float64 {
	switch powerUp {
	case PowerUpMagnet:
		return 1.0
	case PowerUpShield:
		return 0.89
	case PowerUpSpeedBoost:
		return 1.12
	case PowerUpStarPower:
		return 1.26
	case PowerUpScoreMultiplier:
		return 0.94
	}
	return 1.0
}

// ---- Sound effects -------------------------------------------------------

func generateSound(kind SoundKind, powerUp PowerUpKind) []byte {
	switch kind {
	case SoundActivate:
		return genActivate(pitchShift(powerUp))
	case SoundWarning:
		return genWarning()
	case SoundExpire:
		return genExpire(pitchShift(powerUp))
	case SoundGameOver:
		return genGameOver()
	}
	return nil
}

// genActivate: ascending FM arpeggio, each note ringing over the next.
func genActivate(shift float64) []byte {
	freqs := []float64{523.25, 659.25, 783.99, 1046.5} // C5 E5 G5 C6
	noteLen := SampleRate * 75 / 1000
	tail := int(0.18 * SampleRate)
	total := len(freqs)*noteLen + tail
	mix := make([]float64, total)

	for fi, freq := range freqs {
		freq *= shift
		start := fi * noteLen
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.004, 0.55, 0.05, 0.35)
			s := fm(t, freq, 2.756, 5.0*env) * env * 0.38
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.09
			mix[start+j] += s
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genWarning: three urgent beeps with a gap between them.
func genWarning() []byte {
	beepLen := SampleRate * 70 / 1000
	gapLen := SampleRate * 45 / 1000
	total := 3*beepLen + 2*gapLen
	buf := makeBuf(total)
	for b := 0; b < 3; b++ {
		start := b * (beepLen + gapLen)
		for j := 0; j < beepLen; j++ {
			t := float64(start+j) / SampleRate
			p := float64(j) / float64(beepLen)
			env := adsr(p, 0.02, 0.2, 0.55, 0.3)
			s := fm(t, 988, 1.0, 0.8) * env * 0.4
			putStereoF32(buf, start+j, softSat(s))
		}
	}
	return buf
}

// genExpire: short descending tone — the buff winding down.
func genExpire(shift float64) []byte {
	n := int(0.2 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.5, 0.12, 0.3)
		freq := (620 - 340*p) * shift
		s := fm(t, freq, 1.5, 2.2*(1-p)) * env * 0.45
		s += math.Sin(2*math.Pi*freq*2*t) * env * 0.08
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genGameOver: slow descending minor chord, staggered.
func genGameOver() []byte {
	dur := 0.75
	n := int(dur * SampleRate)
	notes := []struct{ freq, onset float64 }{
		{329.63, 0.00}, // E4
		{261.63, 0.14}, // C4
		{220.00, 0.28}, // A3
	}
	mix := make([]float64, n)
	for _, note := range notes {
		start := int(note.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.008, 0.25, 0.3, 0.45)
			freq := note.freq * (1 - np*0.025) // slight pitch drop
			s := fm(t, freq, 2.0, 2.0*env) * env * 0.32
			s += math.Sin(2*math.Pi*freq*0.5*t) * env * 0.1 // sub
			mix[i] += s
		}
	}
	buf := makeBuf(n)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}
