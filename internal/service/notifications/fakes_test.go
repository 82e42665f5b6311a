package notifications

import (
	"context"
	"errors"
	"sync"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type sentMessage struct {
	to   string
	body string
}

type fakeSender struct {
	mu      sync.Mutex
	sent    []sentMessage
	err     error
	started chan struct{}
	release chan struct{}
}

func (s *fakeSender) Send(_ context.Context, to, body string) error {
	if s.started != nil {
		s.started <- struct{}{}
	}
	if s.release != nil {
		<-s.release
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, sentMessage{to: to, body: body})
	return nil
}

func (s *fakeSender) messages() []sentMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]sentMessage(nil), s.sent...)
}

type fakeOutcomes struct {
	mu     sync.Mutex
	counts map[string]int
}

func newFakeOutcomes() *fakeOutcomes {
	return &fakeOutcomes{counts: make(map[string]int)}
}

func (o *fakeOutcomes) NotificationOutcome(outcome string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.counts[outcome]++
}

func (o *fakeOutcomes) get(outcome string) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.counts[outcome]
}

var errGateway = errors.New("gateway down")
