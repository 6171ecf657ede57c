// internal/ui/counter.go
package ui

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Counter хранит число в HUD, которое плавно докручивается до нового значения.
type Counter struct {
	target   int
	current  float32
	duration float32
	tween    *gween.Tween
}

func NewCounter(value int, duration float32) *Counter {
	return &Counter{target: value, current: float32(value), duration: duration}
}

// Set starts a tween from the displayed value to v. Setting the current
// target again does nothing.
func (c *Counter) Set(v int) {
	if v == c.target {
		return
	}
	c.target = v
	c.tween = gween.New(c.current, float32(v), c.duration, ease.OutQuad)
}

// Snap jumps straight to v.
func (c *Counter) Snap(v int) {
	c.target = v
	c.current = float32(v)
	c.tween = nil
}

func (c *Counter) Update(dt float64) {
	if c.tween == nil {
		return
	}
	cur, done := c.tween.Update(float32(dt))
	c.current = cur
	if done {
		c.current = float32(c.target)
		c.tween = nil
	}
}

// Value is the number to draw right now.
func (c *Counter) Value() int {
	if c.tween == nil {
		return c.target
	}
	if c.target >= int(c.current) {
		return int(c.current)
	}
	return int(c.current + 0.999)
}

func (c *Counter) Target() int     { return c.target }
func (c *Counter) Animating() bool { return c.tween != nil }
