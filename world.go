package pagebreak

import (
	"github.com/jakecoffman/cp"
)

// Simulation defaults. Gravity points down the page (layout coordinates are
// Y-down); iteration count and collision slop follow the usual Chipmunk
// settings for stacked boxes.
const (
	defaultGravityY   = 980.0
	defaultIterations = 10
	defaultSleepTime  = 0.5
	defaultSlop       = 0.5
	defaultMass       = 1.0
	defaultFriction   = 0.8
	defaultElasticity = 0.25
)

// binding links a body back to the element it drives. Kept in a side table
// rather than on the body itself so the physics entity stays free of UI
// concerns.
type binding struct {
	elem          Element
	width, height float64
}

// World owns the physics space and the render bindings of every body in it.
// A World is a single mutable resource: it is created once, owned by one Sim,
// and touched only from the host's frame callbacks.
type World struct {
	space    *cp.Space
	bindings map[*cp.Body]binding
}

// NewWorld creates an empty world with default gravity.
func NewWorld() *World {
	space := cp.NewSpace()
	space.Iterations = defaultIterations
	space.SetGravity(cp.Vector{Y: defaultGravityY})
	space.SleepTimeThreshold = defaultSleepTime
	space.SetCollisionSlop(defaultSlop)
	return &World{
		space:    space,
		bindings: make(map[*cp.Body]binding),
	}
}

// SetGravity replaces the world's gravity vector.
func (w *World) SetGravity(x, y float64) {
	w.space.SetGravity(cp.Vector{X: x, Y: y})
}

// AddBody builds a box-shaped body from the spec, adds it to the world, and
// registers its render binding when the spec carries an element.
func (w *World) AddBody(spec BodySpec) *cp.Body {
	var body *cp.Body
	if spec.Static {
		body = cp.NewStaticBody()
	} else {
		body = cp.NewBody(defaultMass, cp.MomentForBox(defaultMass, spec.Width, spec.Height))
	}
	body.SetPosition(cp.Vector{X: spec.X, Y: spec.Y})
	w.space.AddBody(body)

	shape := w.space.AddShape(cp.NewBox(body, spec.Width, spec.Height, 0))
	shape.SetFriction(defaultFriction)
	shape.SetElasticity(defaultElasticity)

	if spec.Element != nil {
		w.bindings[body] = binding{spec.Element, spec.Width, spec.Height}
	}
	return body
}

// AddBodies adds every spec in order.
func (w *World) AddBodies(specs []BodySpec) {
	for _, spec := range specs {
		w.AddBody(spec)
	}
}

// BodyCount returns the number of bodies in the world.
func (w *World) BodyCount() int {
	n := 0
	w.space.EachBody(func(*cp.Body) { n++ })
	return n
}

// Step advances the simulation by exactly deltaMs of simulated time and
// writes every bound body's resulting position and orientation back to its
// element's style.
//
// The timestep is fixed: no wall-clock adaptation, no catch-up. If the host
// delivers frames slower than deltaMs implies, simulated time simply runs
// slower than wall time.
func (w *World) Step(deltaMs float64) {
	w.space.Step(deltaMs / 1000.0)
	w.space.EachBody(func(body *cp.Body) {
		bind, ok := w.bindings[body]
		if !ok {
			return
		}
		pos := body.Position()
		left, top := CentroidToCorner(pos.X, pos.Y, bind.width, bind.height)
		err := bind.elem.SetStyle(Style{
			Position: PositionAbsolute,
			Left:     int(left),
			Top:      int(top),
			Rotate:   body.Angle(),
		})
		if err != nil {
			// The element is gone. Drop the binding; the body keeps
			// simulating.
			delete(w.bindings, body)
		}
	})
}
