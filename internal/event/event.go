// internal/event/event.go
package event

import "slices"

// EventType — тип события
type EventType string

// Event: событие симуляции. Data несёт одну из структур *Data из types.go.
type Event struct {
	Type EventType
	Data any
}

// Payload достаёт типизированные данные события.
func Payload[T any](e Event) (T, bool) {
	data, ok := e.Data.(T)
	return data, ok
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher доставляет события синхронно, в порядке подписки.
// Подписки, изменённые во время Dispatch, действуют со следующего события.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll подписывает listener сразу на несколько типов.
func (d *Dispatcher) SubscribeAll(listener Listener, eventTypes ...EventType) {
	for _, t := range eventTypes {
		d.Subscribe(t, listener)
	}
}

// Unsubscribe удаляет первую подписку listener на eventType.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	i := slices.Index(listeners, listener)
	if i < 0 {
		return
	}
	listeners = slices.Delete(slices.Clone(listeners), i, i+1)
	if len(listeners) == 0 {
		delete(d.listeners, eventType)
		return
	}
	d.listeners[eventType] = listeners
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}

// Subscribers: число подписчиков на eventType.
func (d *Dispatcher) Subscribers(eventType EventType) int {
	return len(d.listeners[eventType])
}
