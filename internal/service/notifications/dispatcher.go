package notifications

import (
	"context"
	"sync"
	"time"
)

// Исходы отправки для метрик
const (
	OutcomeSent    = "sent"
	OutcomeFailed  = "failed"
	OutcomeDropped = "dropped"
)

type message struct {
	to   string
	body string
}

// Dispatcher асинхронная отправка уведомлений: ограниченная очередь в памяти
// и фиксированное число воркеров. Ошибки только логируются, повторов нет
type Dispatcher struct {
	sender      Sender
	outcomes    OutcomeRecorder
	logger      Logger
	workers     int
	sendTimeout time.Duration

	queue chan message
	wg    sync.WaitGroup

	mu      sync.RWMutex
	started bool
	closed  bool
}

// NewDispatcher создает диспетчер. Воркеры запускаются через Start
func NewDispatcher(
	sender Sender,
	workers int,
	queueSize int,
	sendTimeout time.Duration,
	outcomes OutcomeRecorder,
	logger Logger,
) *Dispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	return &Dispatcher{
		sender:      sender,
		outcomes:    outcomes,
		logger:      logger,
		workers:     workers,
		sendTimeout: sendTimeout,
		queue:       make(chan message, queueSize),
	}
}

// Start запускает воркеров. Повторный вызов ничего не делает
func (d *Dispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.started || d.closed {
		return
	}
	d.started = true

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.work(i)
	}
	d.logger.Info("Notification dispatcher started: workers=%d, queue_size=%d", d.workers, cap(d.queue))
}

// Notify ставит сообщение в очередь и сразу возвращает управление
// Если очередь заполнена или диспетчер остановлен, сообщение отбрасывается
func (d *Dispatcher) Notify(_ context.Context, to, body string) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.logger.Warn("Notification dropped, dispatcher stopped: to=%s", to)
		d.outcomes.NotificationOutcome(OutcomeDropped)
		return
	}

	select {
	case d.queue <- message{to: to, body: body}:
	default:
		d.logger.Warn("Notification dropped, queue is full: to=%s", to)
		d.outcomes.NotificationOutcome(OutcomeDropped)
	}
}

// Stop закрывает очередь и ждет, пока воркеры отправят оставшиеся сообщения
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.queue)
	started := d.started
	d.mu.Unlock()

	if !started {
		return nil
	}

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.logger.Info("Notification dispatcher stopped")
		return nil
	case <-ctx.Done():
		return ErrStopTimeout
	}
}

func (d *Dispatcher) work(id int) {
	defer d.wg.Done()

	for msg := range d.queue {
		deliver(d.sender, d.sendTimeout, msg, d.outcomes, d.logger, id)
	}
}

func deliver(sender Sender, timeout time.Duration, msg message, outcomes OutcomeRecorder, logger Logger, worker int) {
	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if err := sender.Send(ctx, msg.to, msg.body); err != nil {
		logger.Error("Notification failed: worker=%d, to=%s, error=%v", worker, msg.to, err)
		outcomes.NotificationOutcome(OutcomeFailed)
		return
	}
	outcomes.NotificationOutcome(OutcomeSent)
}

// SyncNotifier отправляет сообщение прямо в запросе; ошибки не пробрасываются
type SyncNotifier struct {
	sender   Sender
	outcomes OutcomeRecorder
	logger   Logger
}

func NewSyncNotifier(sender Sender, outcomes OutcomeRecorder, logger Logger) *SyncNotifier {
	return &SyncNotifier{sender: sender, outcomes: outcomes, logger: logger}
}

func (n *SyncNotifier) Notify(ctx context.Context, to, body string) {
	if err := n.sender.Send(ctx, to, body); err != nil {
		n.logger.Error("Notification failed: to=%s, error=%v", to, err)
		n.outcomes.NotificationOutcome(OutcomeFailed)
		return
	}
	n.outcomes.NotificationOutcome(OutcomeSent)
}
