package pagebreak

import (
	"errors"
	"fmt"
)

// ErrDetached is returned by Box.SetStyle after the box has been detached
// from its page.
var ErrDetached = errors.New("box detached from page")

// boxIDCounter is a plain counter (no atomic — pagebreak is single-threaded).
var boxIDCounter uint32

func nextBoxID() uint32 {
	boxIDCounter++
	return boxIDCounter
}

// Page is an in-memory visual tree: a flat, ordered collection of boxes with
// an optional scroll offset. It implements VisualTree and is the host surface
// used by the tests and the bundled example; a real host can implement
// VisualTree and Element directly instead.
type Page struct {
	boxes   []*Box
	scrollX float64
	scrollY float64
}

// NewPage creates an empty page with no scroll offset.
func NewPage() *Page {
	return &Page{}
}

// Scroll sets the page's scroll offset. Box positions reported by
// Element.Box are document-relative: the layout rect offset by this amount.
func (p *Page) Scroll(x, y float64) {
	p.scrollX = x
	p.scrollY = y
}

// Add appends a box with the given name, layout rect, and tags, and returns
// it. Width or Height may be NaN to model an element that has not been laid
// out.
func (p *Page) Add(name string, r Rect, tags ...string) *Box {
	b := &Box{
		id:    nextBoxID(),
		Name:  name,
		Color: ColorWhite,
		tags:  tags,
		rect:  r,
		page:  p,
	}
	p.boxes = append(p.boxes, b)
	return b
}

// Boxes returns the page's boxes in tree (insertion) order.
func (p *Page) Boxes() []*Box {
	return p.boxes
}

// ElementsByTag returns the boxes carrying the given tag, in tree order.
// An empty tag is a malformed query and returns an error.
func (p *Page) ElementsByTag(tag string) ([]Element, error) {
	if tag == "" {
		return nil, errors.New("elements by tag: empty tag")
	}
	var elems []Element
	for _, b := range p.boxes {
		if b.detached {
			continue
		}
		if b.HasTag(tag) {
			elems = append(elems, b)
		}
	}
	return elems, nil
}

// Box is one element of a Page.
type Box struct {
	id   uint32
	Name string

	// Color tints the box when drawn by the ebiten front end. It has no
	// effect on the simulation.
	Color Color

	tags     []string
	rect     Rect // page-relative layout rect
	rotation float64
	style    Style
	styled   bool
	detached bool
	page     *Page
}

// ID returns the box's unique id.
func (b *Box) ID() uint32 { return b.id }

// HasTag reports whether the box carries the given tag.
func (b *Box) HasTag(tag string) bool {
	for _, t := range b.tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Box returns the box's bounding box in document-relative coordinates,
// page scroll included.
func (b *Box) Box() Rect {
	r := b.rect
	r.Left += b.page.scrollX
	r.Top += b.page.scrollY
	return r
}

// MoveTo repositions the box's layout rect (page-relative). Layout-side
// mutation only; any physics body already built from this box is unaffected.
func (b *Box) MoveTo(left, top float64) {
	b.rect.Left = left
	b.rect.Top = top
}

// Rotation returns the box's current orientation in radians, as last written
// by SetStyle.
func (b *Box) Rotation() float64 { return b.rotation }

// Style returns the last style written to the box and whether one has been
// written at all.
func (b *Box) Style() (Style, bool) {
	return b.style, b.styled
}

// SetStyle applies the style: the box is repositioned to the style's
// document-relative corner coordinates and takes on its rotation. Fails once
// the box has been detached.
func (b *Box) SetStyle(s Style) error {
	if b.detached {
		return fmt.Errorf("box %q: %w", b.Name, ErrDetached)
	}
	b.style = s
	b.styled = true
	b.rect.Left = float64(s.Left) - b.page.scrollX
	b.rect.Top = float64(s.Top) - b.page.scrollY
	b.rotation = s.Rotate
	return nil
}

// Detach removes the box from its page: it no longer matches tag queries and
// rejects further style writes. Simulates an element leaving the visual tree
// after discovery.
func (b *Box) Detach() {
	b.detached = true
}
