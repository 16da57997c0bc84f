package assets

import "testing"

func samples(buf []byte) []int16 {
	out := make([]int16, 0, len(buf)/2)
	for i := 0; i+1 < len(buf); i += 2 {
		out = append(out, int16(uint16(buf[i])|uint16(buf[i+1])<<8))
	}
	return out
}

func TestChompStreamSilentUntilTriggered(t *testing.T) {
	s := &ChompStream{freq: blipFreq}
	buf := make([]byte, 4096)
	n, err := s.Read(buf)
	if err != nil || n != len(buf) {
		t.Fatalf("read: n=%d err=%v", n, err)
	}
	for i, v := range samples(buf) {
		if v != 0 {
			t.Fatalf("sample %d: got=%d want silence", i, v)
		}
	}
}

func TestChompStreamBlip(t *testing.T) {
	s := &ChompStream{}
	s.Trigger(1)

	buf := make([]byte, blipSamples*4+400)
	if _, err := s.Read(buf); err != nil {
		t.Fatal(err)
	}
	got := samples(buf)
	loud := 0
	for _, v := range got[:blipSamples*2] {
		if v != 0 {
			loud++
		}
	}
	if loud == 0 {
		t.Fatalf("expected a blip after Trigger")
	}
	for i, v := range got[blipSamples*2:] {
		if v != 0 {
			t.Fatalf("sample %d after the blip: got=%d want silence", i, v)
		}
	}
}

func TestChompStreamWholeFrames(t *testing.T) {
	s := &ChompStream{}
	n, _ := s.Read(make([]byte, 10))
	if n != 8 {
		t.Fatalf("read: got=%d want=8", n)
	}
}

func TestChompStreamIgnoresEmptyBite(t *testing.T) {
	s := &ChompStream{}
	s.Trigger(0)
	if s.left != 0 {
		t.Fatalf("left: got=%d want=0", s.left)
	}
}

func TestNilSoundIsSilent(t *testing.T) {
	var s *Sound
	s.Eat(3)
}
