// Package pagebreak overlays a 2D rigid-body simulation onto visual page
// elements: tagged boxes fall, collide, and can be dragged with the pointer,
// while their on-screen position and rotation stay synchronized with the
// physics.
//
// The physics itself is [Chipmunk2D] (via github.com/jakecoffman/cp); what
// pagebreak provides is the synchronization layer around it: the coordinate
// transform between layout (top-left corner) and physics (centroid)
// conventions, the discovery pass that turns tagged elements into bodies, the
// fixed-timestep frame loop that writes simulation results back to element
// styling, and the single-instance lifecycle guard.
//
// # Quick start
//
// Build a [Page] of tagged boxes and hand it to [Run]:
//
//	page := pagebreak.NewPage()
//	page.Add("floor", pagebreak.Rect{Top: 580, Width: 960, Height: 20}, pagebreak.TagStatic)
//	page.Add("crate", pagebreak.Rect{Left: 100, Top: 50, Width: 60, Height: 60}, pagebreak.TagDynamic)
//
//	g := pagebreak.NewGame(page)
//	g.Sim.Start(0) // 0 = DefaultTimestepMs
//	pagebreak.Run(g, pagebreak.RunConfig{Title: "Falling", Width: 960, Height: 600})
//
// For full control, or to simulate against your own element tree, implement
// [VisualTree] and [Element], pick a [Scheduler], and drive a [Sim] directly:
//
//	sched := pagebreak.NewTickScheduler()
//	sim := pagebreak.NewSim(tree, sched)
//	sim.Start(16)
//	// each host frame:
//	sched.Tick()
//
// # Coordinates
//
// Layout coordinates are Y-down with boxes positioned by their top-left
// corner; the simulation positions bodies by their centroid. Conversions
// floor-truncate to whole pixels, so a round trip may drift by one unit.
// That tolerance is part of the contract (see [CentroidToCorner]).
//
// # Lifecycle
//
// A [Sim] starts at most once: a second Start is a silent no-op, and there is
// no restart. The frame loop reschedules itself on every host frame until
// [Sim.Stop], writing each bound element's absolute position and rotation
// after every step. Elements that disappear mid-simulation are dropped from
// rendering; their bodies keep simulating.
//
// Everything runs on the host's single frame thread; no locking, no
// goroutines.
//
// [Chipmunk2D]: https://chipmunk-physics.net
package pagebreak
