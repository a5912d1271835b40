package scrollpane

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Draw renders a debug view: every visible node with a non-transparent Color
// is filled as its screen-space bounding box, and pane content is clipped to
// its viewport.
func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(s.ClearColor.toRGBA())

	view := identityAffine
	if cam := s.primaryCamera(); cam != nil {
		view = cam.computeViewMatrix()
	}
	updateWorldTransform(s.root, identityAffine, false)
	drawNode(screen, s.root, view)
}

func drawNode(dst *ebiten.Image, n *Node, view affine) {
	if !n.Visible {
		return
	}
	m := view.mul(n.worldTransform)
	if n.Color.A > 0 && (n.Width > 0 || n.Height > 0) {
		r := worldAABB(m, n.Width, n.Height)
		vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height),
			n.Color.toRGBA(), false)
	}

	target := dst
	if n.pane != nil {
		r := worldAABB(m, n.Width, n.Height)
		clip := image.Rect(int(r.X), int(r.Y), int(r.X+r.Width), int(r.Y+r.Height)).Intersect(dst.Bounds())
		if clip.Empty() {
			return
		}
		target = dst.SubImage(clip).(*ebiten.Image)
	}
	for _, child := range n.children {
		drawNode(target, child, view)
	}
}
