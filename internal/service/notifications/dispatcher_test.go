package notifications

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_DeliversAndDrainsOnStop(t *testing.T) {
	sender := &fakeSender{}
	outcomes := newFakeOutcomes()
	d := NewDispatcher(sender, 2, 10, time.Second, outcomes, nopLogger{})
	d.Start()

	d.Notify(context.Background(), "111", "a")
	d.Notify(context.Background(), "222", "b")
	d.Notify(context.Background(), "333", "c")

	require.NoError(t, d.Stop(context.Background()))

	assert.Len(t, sender.messages(), 3)
	assert.Equal(t, 3, outcomes.get(OutcomeSent))
	assert.Equal(t, 0, outcomes.get(OutcomeDropped))
}

func TestDispatcher_FailuresAreCountedNotReturned(t *testing.T) {
	sender := &fakeSender{err: errGateway}
	outcomes := newFakeOutcomes()
	d := NewDispatcher(sender, 1, 5, time.Second, outcomes, nopLogger{})
	d.Start()

	d.Notify(context.Background(), "111", "a")
	require.NoError(t, d.Stop(context.Background()))

	assert.Equal(t, 1, outcomes.get(OutcomeFailed))
	assert.Equal(t, 0, outcomes.get(OutcomeSent))
}

func TestDispatcher_DropsWhenQueueFull(t *testing.T) {
	sender := &fakeSender{
		started: make(chan struct{}, 10),
		release: make(chan struct{}),
	}
	outcomes := newFakeOutcomes()
	d := NewDispatcher(sender, 1, 1, time.Second, outcomes, nopLogger{})
	d.Start()

	// Первое сообщение занимает единственного воркера
	d.Notify(context.Background(), "1", "first")
	<-sender.started

	d.Notify(context.Background(), "2", "queued")
	d.Notify(context.Background(), "3", "dropped")

	assert.Equal(t, 1, outcomes.get(OutcomeDropped))

	close(sender.release)
	require.NoError(t, d.Stop(context.Background()))

	assert.Equal(t, 2, outcomes.get(OutcomeSent))
	msgs := sender.messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "first", msgs[0].body)
	assert.Equal(t, "queued", msgs[1].body)
}

func TestDispatcher_NotifyAfterStopIsDropped(t *testing.T) {
	sender := &fakeSender{}
	outcomes := newFakeOutcomes()
	d := NewDispatcher(sender, 1, 1, time.Second, outcomes, nopLogger{})
	d.Start()
	require.NoError(t, d.Stop(context.Background()))
	require.NoError(t, d.Stop(context.Background()))

	d.Notify(context.Background(), "1", "late")

	assert.Empty(t, sender.messages())
	assert.Equal(t, 1, outcomes.get(OutcomeDropped))
}

func TestDispatcher_StopTimeout(t *testing.T) {
	sender := &fakeSender{
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	defer close(sender.release)

	d := NewDispatcher(sender, 1, 1, time.Second, newFakeOutcomes(), nopLogger{})
	d.Start()
	d.Notify(context.Background(), "1", "stuck")
	<-sender.started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, d.Stop(ctx), ErrStopTimeout)
}

func TestSyncNotifier(t *testing.T) {
	sender := &fakeSender{}
	outcomes := newFakeOutcomes()
	n := NewSyncNotifier(sender, outcomes, nopLogger{})

	n.Notify(context.Background(), "9998887777", "hello")
	assert.Equal(t, []sentMessage{{to: "9998887777", body: "hello"}}, sender.messages())
	assert.Equal(t, 1, outcomes.get(OutcomeSent))

	sender.err = errGateway
	n.Notify(context.Background(), "9998887777", "hello")
	assert.Equal(t, 1, outcomes.get(OutcomeFailed))
}
