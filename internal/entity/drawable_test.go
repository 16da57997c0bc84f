package entity

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"agario/internal/world"
)

type recorder struct {
	name string
	log  *[]string
}

func (r recorder) Draw(_ *ebiten.Image, _ *world.Camera) {
	*r.log = append(*r.log, r.name)
}

func TestPainterKeepsInsertionOrder(t *testing.T) {
	var got []string
	p := NewPainter(recorder{"grid", &got}, recorder{"cells", &got})
	p.Add(recorder{"player", &got})
	p.Add(recorder{"hud", &got})
	if p.Len() != 4 {
		t.Fatalf("len: got=%d want=4", p.Len())
	}

	p.Paint(nil, world.NewCamera(800, 800))
	p.Paint(nil, world.NewCamera(800, 800))

	want := []string{"grid", "cells", "player", "hud", "grid", "cells", "player", "hud"}
	if len(got) != len(want) {
		t.Fatalf("calls: got=%v want=%v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("call %d: got=%s want=%s (all: %v)", i, got[i], want[i], got)
		}
	}
}

func TestEmptyPainter(t *testing.T) {
	p := &Painter{}
	p.Paint(nil, world.NewCamera(800, 800))
	if p.Len() != 0 {
		t.Fatalf("len: got=%d", p.Len())
	}
}
