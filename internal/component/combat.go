// internal/component/combat.go
package component

// Countdown — счётчик перезарядки в тиках.
// Start взводит счётчик, Step уменьшает его на единицу, Done сообщает, что перезарядка закончена.
type Countdown struct {
	Steps     int
	Remaining int
}

func NewCountdown(steps int) Countdown {
	return Countdown{Steps: steps}
}

func (c *Countdown) Start() {
	c.Remaining = c.Steps
}

func (c *Countdown) Step() {
	if c.Remaining > 0 {
		c.Remaining--
	}
}

func (c *Countdown) Done() bool {
	return c.Remaining == 0
}
