package pagebreak

import (
	"math"
	"testing"
)

func TestStepWithoutGravityLeavesBodyAtRest(t *testing.T) {
	w := NewWorld()
	w.SetGravity(0, 0)
	body := w.AddBody(BodySpec{X: 100, Y: 100, Width: 30, Height: 30})

	w.Step(16)

	pos := body.Position()
	if pos.X != 100 || pos.Y != 100 {
		t.Errorf("body at (%v, %v) after step, want (100, 100)", pos.X, pos.Y)
	}
}

func TestStepAppliesGravity(t *testing.T) {
	w := NewWorld()
	body := w.AddBody(BodySpec{X: 100, Y: 100, Width: 30, Height: 30})

	for i := 0; i < 10; i++ {
		w.Step(16)
	}

	if pos := body.Position(); pos.Y <= 100 {
		t.Errorf("body.Y = %v after 10 steps under gravity, want > 100", pos.Y)
	}
}

func TestStepWritesCornerStyle(t *testing.T) {
	p := NewPage()
	b := p.Add("a", Rect{Left: 75, Top: 50, Width: 50, Height: 20}, TagDynamic)

	specs, err := Discover(p)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	w := NewWorld()
	w.SetGravity(0, 0)
	w.AddBodies(specs)
	w.Step(16)

	style, ok := b.Style()
	if !ok {
		t.Fatal("no style written to bound element")
	}
	want := Style{Position: PositionAbsolute, Left: 75, Top: 50, Rotate: 0}
	if style != want {
		t.Errorf("style = %+v, want %+v", style, want)
	}
}

func TestStepWritesStaticBodies(t *testing.T) {
	p := NewPage()
	b := p.Add("floor", Rect{Left: 0, Top: 580, Width: 960, Height: 20}, TagStatic)

	specs, err := Discover(p)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	w := NewWorld()
	w.AddBodies(specs)
	w.Step(16)

	style, ok := b.Style()
	if !ok {
		t.Fatal("no style written to static bound element")
	}
	if style.Left != 0 || style.Top != 580 {
		t.Errorf("static style corner = (%d, %d), want (0, 580)", style.Left, style.Top)
	}
}

func TestStepSkipsUnboundBodies(t *testing.T) {
	p := NewPage()
	bound := p.Add("bound", Rect{Left: 0, Top: 0, Width: 10, Height: 10}, TagDynamic)
	bystander := p.Add("bystander", Rect{Left: 200, Top: 0, Width: 10, Height: 10})

	specs, err := Discover(p)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	w := NewWorld()
	w.SetGravity(0, 0)
	w.AddBodies(specs)
	// A body with no render binding: participates in physics, drives nothing.
	w.AddBody(BodySpec{X: 500, Y: 500, Width: 10, Height: 10})

	w.Step(16)

	if _, ok := bound.Style(); !ok {
		t.Error("bound element did not receive a style")
	}
	if _, ok := bystander.Style(); ok {
		t.Error("untagged element received a style write")
	}
}

func TestStepDropsStaleBinding(t *testing.T) {
	p := NewPage()
	b := p.Add("a", Rect{Left: 0, Top: 0, Width: 10, Height: 10}, TagDynamic)

	specs, err := Discover(p)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	w := NewWorld()
	w.AddBodies(specs)
	if len(w.bindings) != 1 {
		t.Fatalf("got %d bindings, want 1", len(w.bindings))
	}

	b.Detach()
	w.Step(16)

	if len(w.bindings) != 0 {
		t.Errorf("stale binding not dropped: %d bindings remain", len(w.bindings))
	}
	// Subsequent steps must keep running without the binding.
	w.Step(16)
}

func TestBodyCount(t *testing.T) {
	w := NewWorld()
	w.AddBody(BodySpec{X: 0, Y: 0, Width: 10, Height: 10})
	w.AddBody(BodySpec{X: 50, Y: 0, Width: 10, Height: 10, Static: true})
	if n := w.BodyCount(); n != 2 {
		t.Errorf("BodyCount() = %d, want 2", n)
	}
}

func TestStepFlooredCoordinates(t *testing.T) {
	p := NewPage()
	b := p.Add("a", Rect{Left: 0, Top: 0, Width: 5, Height: 3}, TagDynamic)

	specs, err := Discover(p)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	w := NewWorld()
	w.SetGravity(0, 0)
	w.AddBodies(specs)
	w.Step(16)

	// Odd dimensions: centroid (2, 1), corner floor(2-2.5) = -1, floor(1-1.5) = -1.
	// The ±1 drift from floor truncation is expected, not a bug.
	style, _ := b.Style()
	if math.Abs(float64(style.Left)-0) > 1 || math.Abs(float64(style.Top)-0) > 1 {
		t.Errorf("style corner = (%d, %d), drift beyond ±1 from (0, 0)",
			style.Left, style.Top)
	}
}
