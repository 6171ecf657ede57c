package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct{ got []Event }

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestEmitDeliversOnFlushInOrder(t *testing.T) {
	d := NewDispatcher()
	var seen []interface{}
	d.On(EnemyDeath, func(e Event) { seen = append(seen, e.Data) })

	d.Emit(Event{Type: EnemyDeath, Data: 1})
	d.Emit(Event{Type: EnemyEscape, Data: "ignored"})
	d.Emit(Event{Type: EnemyDeath, Data: 2})
	assert.Empty(t, seen)
	assert.Equal(t, 3, d.Pending())

	d.Flush()
	assert.Equal(t, []interface{}{1, 2}, seen)
	assert.Zero(t, d.Pending())
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	id := d.Subscribe(Cleared, r)
	d.Dispatch(Event{Type: Cleared})
	d.Unsubscribe(Cleared, id)
	d.Dispatch(Event{Type: Cleared})
	assert.Len(t, r.got, 1)
}

func TestEventsEmittedDuringFlushAreDelivered(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(GameOver, r)
	d.On(Cleared, func(Event) { d.Emit(Event{Type: GameOver}) })

	d.Emit(Event{Type: Cleared})
	d.Flush()
	assert.Len(t, r.got, 1)
}
