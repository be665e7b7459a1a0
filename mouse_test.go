package pagebreak

import "testing"

func TestGrabDynamicBody(t *testing.T) {
	w := NewWorld()
	w.SetGravity(0, 0)
	w.AddBody(BodySpec{X: 100, Y: 100, Width: 40, Height: 40})
	m := AttachMouse(w)

	if !m.Grab(100, 100) {
		t.Fatal("Grab over a dynamic body = false, want true")
	}
	if !m.Dragging() {
		t.Error("Dragging() = false after successful grab")
	}
}

func TestGrabStaticBodyRefused(t *testing.T) {
	w := NewWorld()
	w.AddBody(BodySpec{X: 100, Y: 100, Width: 40, Height: 40, Static: true})
	m := AttachMouse(w)

	if m.Grab(100, 100) {
		t.Error("Grab over a static body = true, want false")
	}
	if m.Dragging() {
		t.Error("Dragging() = true after refused grab")
	}
}

func TestGrabEmptySpace(t *testing.T) {
	w := NewWorld()
	m := AttachMouse(w)

	if m.Grab(500, 500) {
		t.Error("Grab over empty space = true, want false")
	}
}

func TestDragMovesBody(t *testing.T) {
	w := NewWorld()
	w.SetGravity(0, 0)
	body := w.AddBody(BodySpec{X: 100, Y: 100, Width: 40, Height: 40})
	m := AttachMouse(w)

	if !m.Grab(100, 100) {
		t.Fatal("grab failed")
	}
	for i := 0; i < 60; i++ {
		m.Move(300, 100)
		w.Step(16)
	}

	if pos := body.Position(); pos.X <= 110 {
		t.Errorf("body.X = %v after dragging right, want > 110", pos.X)
	}
}

func TestReleaseDropsGrab(t *testing.T) {
	w := NewWorld()
	w.SetGravity(0, 0)
	w.AddBody(BodySpec{X: 100, Y: 100, Width: 40, Height: 40})
	m := AttachMouse(w)

	m.Grab(100, 100)
	m.Release()
	if m.Dragging() {
		t.Error("Dragging() = true after Release")
	}
	// Release with nothing grabbed is a no-op.
	m.Release()
}

func TestGrabReplacesPreviousGrab(t *testing.T) {
	w := NewWorld()
	w.SetGravity(0, 0)
	w.AddBody(BodySpec{X: 100, Y: 100, Width: 40, Height: 40})
	w.AddBody(BodySpec{X: 300, Y: 100, Width: 40, Height: 40})
	m := AttachMouse(w)

	if !m.Grab(100, 100) {
		t.Fatal("first grab failed")
	}
	if !m.Grab(300, 100) {
		t.Fatal("second grab failed")
	}
	if !m.Dragging() {
		t.Error("Dragging() = false after regrab")
	}
}
