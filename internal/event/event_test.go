package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

type tagged struct {
	tag  int
	into *recorder
}

func (t *tagged) OnEvent(e Event) {
	t.into.OnEvent(Event{Type: e.Type, Data: t.tag})
}

func TestDispatcher_DeliversOnlySubscribedType(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(EnemyKilled, r)

	d.Dispatch(Event{Type: EnemyKilled, Data: EnemyKilledData{Reward: 5}})
	d.Dispatch(Event{Type: WaveStarted})

	if assert.Len(t, r.got, 1) {
		data, ok := r.got[0].Data.(EnemyKilledData)
		assert.True(t, ok)
		assert.Equal(t, 5, data.Reward)
	}
}

func TestDispatcher_Unsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(Notice, a)
	d.Subscribe(Notice, b)
	d.Unsubscribe(Notice, a)

	d.Dispatch(Event{Type: Notice, Data: NoticeData{Message: "hi"}})

	assert.Empty(t, a.got)
	assert.Len(t, b.got, 1)
}

func TestDispatcher_OrderPreserved(t *testing.T) {
	d := NewDispatcher()
	shared := &recorder{}
	first := &tagged{tag: 1, into: shared}
	second := &tagged{tag: 2, into: shared}
	d.Subscribe(GameOver, first)
	d.Subscribe(GameOver, second)

	d.Dispatch(Event{Type: GameOver})

	if assert.Len(t, shared.got, 2) {
		assert.Equal(t, 1, shared.got[0].Data)
		assert.Equal(t, 2, shared.got[1].Data)
	}
}

func TestDispatcher_SubscribeAllAndCount(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.SubscribeAll(r, WaveStarted, WaveCompleted)

	assert.Equal(t, 1, d.Subscribers(WaveStarted))
	assert.Equal(t, 1, d.Subscribers(WaveCompleted))
	assert.Equal(t, 0, d.Subscribers(GameOver))

	d.Unsubscribe(WaveStarted, r)
	assert.Equal(t, 0, d.Subscribers(WaveStarted))
	d.Unsubscribe(WaveStarted, r)
}

// unsubscriber removes itself on the first event.
type unsubscriber struct {
	d     *Dispatcher
	calls int
}

func (u *unsubscriber) OnEvent(e Event) {
	u.calls++
	u.d.Unsubscribe(e.Type, u)
}

func TestDispatcher_UnsubscribeDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	u := &unsubscriber{d: d}
	r := &recorder{}
	d.Subscribe(Notice, u)
	d.Subscribe(Notice, r)

	d.Dispatch(Event{Type: Notice})
	d.Dispatch(Event{Type: Notice})

	assert.Equal(t, 1, u.calls)
	assert.Len(t, r.got, 2)
}

func TestPayload(t *testing.T) {
	e := Event{Type: WaveAdvanced, Data: WaveData{Wave: 3}}

	data, ok := Payload[WaveData](e)
	assert.True(t, ok)
	assert.Equal(t, 3, data.Wave)

	_, ok = Payload[NoticeData](e)
	assert.False(t, ok)
}
