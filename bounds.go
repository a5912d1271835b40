package scrollpane

import "math"

// Bounds is an axis-aligned box described by its min and max corners.
// The zero value is the empty box at the origin.
type Bounds struct {
	Min, Max Vec2
}

// boundsAt returns a zero-size box at p.
func boundsAt(p Vec2) Bounds {
	return Bounds{Min: p, Max: p}
}

// boundsFromCenter builds a box from its center and size.
func boundsFromCenter(center, size Vec2) Bounds {
	half := size.Scale(0.5)
	return Bounds{Min: center.Sub(half), Max: center.Add(half)}
}

// Center returns the midpoint of the box.
func (b Bounds) Center() Vec2 {
	return Vec2{(b.Min.X + b.Max.X) / 2, (b.Min.Y + b.Max.Y) / 2}
}

// Size returns the box extent.
func (b Bounds) Size() Vec2 {
	return b.Max.Sub(b.Min)
}

// Encapsulate grows the box to include p.
func (b *Bounds) Encapsulate(p Vec2) {
	b.Min.X = math.Min(b.Min.X, p.X)
	b.Min.Y = math.Min(b.Min.Y, p.Y)
	b.Max.X = math.Max(b.Max.X, p.X)
	b.Max.Y = math.Max(b.Max.Y, p.Y)
}

// Translate returns the box shifted by d.
func (b Bounds) Translate(d Vec2) Bounds {
	return Bounds{Min: b.Min.Add(d), Max: b.Max.Add(d)}
}

// Contains reports whether o lies entirely inside b, allowing tol of slack.
func (b Bounds) Contains(o Bounds, tol float64) bool {
	return o.Min.X >= b.Min.X-tol && o.Max.X <= b.Max.X+tol &&
		o.Min.Y >= b.Min.Y-tol && o.Max.Y <= b.Max.Y+tol
}

// UpdateBounds recomputes the view and content bounds in the viewport's local
// space. A pane without content gets the zero content box.
func (p *ScrollPane) UpdateBounds() {
	p.viewBounds = Bounds{}
	if p.viewport != nil {
		size := Vec2{p.viewport.Width, p.viewport.Height}
		p.viewBounds = boundsFromCenter(size.Scale(0.5), size)
	}
	p.contentBounds = p.computeContentBounds()
	if p.content != nil {
		p.contentBounds = fitToView(p.contentBounds, p.viewBounds.Size(), p.contentPivot())
	}
}

// fitToView grows content bounds that are smaller than the view up to the view
// size, keeping the pivot point fixed.
func fitToView(b Bounds, viewSize, pivot Vec2) Bounds {
	center := b.Center()
	size := b.Size()
	excess := viewSize.Sub(size)
	if excess.X > 0 {
		center.X -= excess.X * (pivot.X - 0.5)
		size.X = viewSize.X
	}
	if excess.Y > 0 {
		center.Y -= excess.Y * (pivot.Y - 0.5)
		size.Y = viewSize.Y
	}
	return boundsFromCenter(center, size)
}

// contentPivot returns the content pivot normalized to [0, 1] of its size.
func (p *ScrollPane) contentPivot() Vec2 {
	var pv Vec2
	if p.content.Width != 0 {
		pv.X = p.content.PivotX / p.content.Width
	}
	if p.content.Height != 0 {
		pv.Y = p.content.PivotY / p.content.Height
	}
	return pv
}

func (p *ScrollPane) computeContentBounds() Bounds {
	if p.content == nil || p.viewport == nil {
		return Bounds{}
	}
	inv, ok := refreshWorldTransform(p.viewport).invert()
	if !ok {
		return Bounds{}
	}
	corners := p.content.WorldCorners()
	var b Bounds
	for i, c := range corners {
		x, y := inv.apply(c.X, c.Y)
		if i == 0 {
			b = boundsAt(Vec2{x, y})
			continue
		}
		b.Encapsulate(Vec2{x, y})
	}
	return b
}

// CalculateOffset returns how far content shifted by delta would sit outside
// the view on each enabled axis, as the correction that brings it back.
// Disabled axes, axes already within bounds, and a pane without content yield
// zero.
func (p *ScrollPane) CalculateOffset(delta Vec2) Vec2 {
	var offset Vec2
	if p.content == nil {
		return offset
	}
	minPos := p.contentBounds.Min
	maxPos := p.contentBounds.Max

	if p.Horizontal {
		minPos.X += delta.X
		maxPos.X += delta.X
		if minPos.X > p.viewBounds.Min.X {
			offset.X = p.viewBounds.Min.X - minPos.X
		} else if maxPos.X < p.viewBounds.Max.X {
			offset.X = p.viewBounds.Max.X - maxPos.X
		}
	}

	// Max edge is checked first on Y.
	if p.Vertical {
		minPos.Y += delta.Y
		maxPos.Y += delta.Y
		if maxPos.Y < p.viewBounds.Max.Y {
			offset.Y = p.viewBounds.Max.Y - maxPos.Y
		} else if minPos.Y > p.viewBounds.Min.Y {
			offset.Y = p.viewBounds.Min.Y - minPos.Y
		}
	}

	return offset
}
