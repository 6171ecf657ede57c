// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// SubscriptionID identifies one subscription for Unsubscribe.
type SubscriptionID uint64

type subscription struct {
	id       SubscriptionID
	listener Listener
}

// Dispatcher — синхронный диспетчер событий. Emit складывает события в
// очередь, Flush доставляет их подписчикам в порядке постановки.
type Dispatcher struct {
	listeners map[EventType][]subscription
	queue     []Event
	nextID    SubscriptionID
}

// NewDispatcher создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]subscription),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) SubscriptionID {
	d.nextID++
	d.listeners[eventType] = append(d.listeners[eventType], subscription{id: d.nextID, listener: listener})
	return d.nextID
}

// On подписывает функцию на событие
func (d *Dispatcher) On(eventType EventType, fn func(Event)) SubscriptionID {
	return d.Subscribe(eventType, ListenerFunc(fn))
}

// Unsubscribe — отписка от события
func (d *Dispatcher) Unsubscribe(eventType EventType, id SubscriptionID) {
	subs := d.listeners[eventType]
	for i, s := range subs {
		if s.id == id {
			d.listeners[eventType] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Dispatch — немедленная отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	// копия: подписчик может отписаться прямо из обработчика
	subs := append([]subscription(nil), d.listeners[event.Type]...)
	for _, s := range subs {
		s.listener.OnEvent(event)
	}
}

// Emit ставит событие в очередь до следующего Flush
func (d *Dispatcher) Emit(event Event) {
	d.queue = append(d.queue, event)
}

// Flush доставляет накопленные события. События, поставленные в очередь
// во время доставки, тоже будут доставлены в этом же вызове.
func (d *Dispatcher) Flush() {
	for len(d.queue) > 0 {
		e := d.queue[0]
		d.queue = d.queue[1:]
		d.Dispatch(e)
	}
	d.queue = nil
}

// Pending возвращает, сколько событий ждут доставки
func (d *Dispatcher) Pending() int {
	return len(d.queue)
}

// Reset drops queued events and every subscription.
func (d *Dispatcher) Reset() {
	d.queue = nil
	d.listeners = make(map[EventType][]subscription)
}
