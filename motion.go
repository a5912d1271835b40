package scrollpane

import "math"

const (
	// rubberFactor controls how quickly rubber resistance saturates.
	rubberFactor = 0.55
	// velocitySnap is the speed below which inertia stops, in units/sec.
	velocitySnap = 1.0
	// dragVelocitySmoothing is the per-second rate at which drag velocity
	// follows the raw finite-difference estimate.
	dragVelocitySmoothing = 10.0
	// springSnap is the distance at which a spring-back lands on its target.
	springSnap = 0.001
	// minSmoothTime keeps the spring's time constant away from zero.
	minSmoothTime = 0.0001
)

var axes = [2]Axis{AxisHorizontal, AxisVertical}

// RubberDelta returns the damped share of overStretch admitted while
// dragging past an edge. It is odd in overStretch, grows with its magnitude,
// and stays below viewSize. A non-positive viewSize yields zero.
func RubberDelta(overStretch, viewSize float64) float64 {
	if viewSize <= 0 {
		return 0
	}
	sign := 1.0
	if overStretch < 0 {
		sign = -1.0
	}
	return (1 - 1/((math.Abs(overStretch)*rubberFactor/viewSize)+1)) * viewSize * sign
}

// smoothDamp moves current toward target like a critically damped spring
// with the given time constant, updating velocity in place. The result never
// overshoots target.
func smoothDamp(current, target float64, velocity *float64, smoothTime, maxSpeed, dt float64) float64 {
	smoothTime = math.Max(minSmoothTime, smoothTime)
	omega := 2 / smoothTime

	x := omega * dt
	exp := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)

	change := current - target
	originalTo := target

	maxChange := maxSpeed * smoothTime
	change = math.Max(-maxChange, math.Min(change, maxChange))
	target = current - change

	temp := (*velocity + omega*change) * dt
	*velocity = (*velocity - omega*temp) * exp
	output := target + (change+temp)*exp

	if (originalTo-current > 0) == (output > originalTo) {
		output = originalTo
		*velocity = (output - originalTo) / dt
	}
	return output
}

// Tick advances the pane by dt seconds of unscaled time: spring-back or
// inertia after release, velocity tracking while dragging. Non-positive dt
// is ignored.
func (p *ScrollPane) Tick(dt float64) {
	if p.content == nil || dt <= 0 {
		return
	}
	p.UpdateBounds()
	p.advanceTween(dt)

	offset := p.CalculateOffset(Vec2{})
	if !p.dragging && (!offset.IsZero() || !p.velocity.IsZero()) {
		current := p.anchoredPosition()
		position := current
		for _, a := range axes {
			off := offset.Axis(a)
			switch {
			case p.MovementType == MovementElastic && off != 0:
				speed := p.velocity.Axis(a)
				from := current.Axis(a)
				next := smoothDamp(from, from+off, &speed, p.Elasticity, math.Inf(1), dt)
				if math.Abs(from+off-next) < springSnap && math.Abs(speed) < velocitySnap {
					next, speed = from+off, 0
				}
				position.setAxis(a, next)
				p.velocity.setAxis(a, speed)
			case p.Inertia:
				v := p.velocity.Axis(a) * math.Pow(p.DecelerationRate, dt)
				if math.Abs(v) < velocitySnap {
					v = 0
				}
				p.velocity.setAxis(a, v)
				position.setAxis(a, position.Axis(a)+v*dt)
			default:
				p.velocity.setAxis(a, 0)
			}
		}

		if !p.velocity.IsZero() || position != current {
			if p.MovementType == MovementClamped {
				position = position.Add(p.CalculateOffset(position.Sub(current)))
			}
			p.SetContentAnchoredPosition(position)
		}
	}

	if p.dragging && p.Inertia {
		raw := p.anchoredPosition().Sub(p.prevPosition).Scale(1 / dt)
		p.velocity = lerpVec2(p.velocity, raw, dt*dragVelocitySmoothing)
	}

	if pos := p.anchoredPosition(); pos != p.prevPosition {
		p.prevPosition = pos
		p.valueChanged()
	}
	p.trackSettle()
}

// valueChanged notifies listeners of a moved content position.
func (p *ScrollPane) valueChanged() {
	if p.OnValueChanged != nil {
		p.OnValueChanged(p.NormalizedPosition())
	}
	p.emit(ScrollValueChanged)
}

// trackSettle emits ScrollSettled once released motion comes to rest.
func (p *ScrollPane) trackSettle() {
	moving := p.dragging || !p.velocity.IsZero() || p.tween != nil
	if p.moving && !moving {
		p.logf("settled at (%.1f, %.1f)", p.content.X, p.content.Y)
		p.emit(ScrollSettled)
	}
	p.moving = moving
}
