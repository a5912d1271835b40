package scrollpane

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollTween holds the per-axis normalized-position tweens of a ScrollTo.
type scrollTween struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

func newScrollTween(from, to Vec2, duration float32, easeFn ease.TweenFunc) *scrollTween {
	return &scrollTween{
		tweenX: gween.New(float32(from.X), float32(to.X), duration, easeFn),
		tweenY: gween.New(float32(from.Y), float32(to.Y), duration, easeFn),
	}
}

// advanceTween steps an active ScrollTo and applies it on enabled axes.
// Paused while dragging.
func (p *ScrollPane) advanceTween(dt float64) {
	t := p.tween
	if t == nil || p.dragging {
		return
	}
	if !t.doneX {
		val, done := t.tweenX.Update(float32(dt))
		if p.Horizontal {
			p.SetNormalizedAxis(AxisHorizontal, float64(val))
		}
		t.doneX = done
	}
	if !t.doneY {
		val, done := t.tweenY.Update(float32(dt))
		if p.Vertical {
			p.SetNormalizedAxis(AxisVertical, float64(val))
		}
		t.doneY = done
	}
	if t.doneX && t.doneY {
		p.tween = nil
	}
}
