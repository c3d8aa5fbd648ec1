// Пакет elapsed — таймер ожидания ответа сервера: раз в интервал сообщает номер тика.
package elapsed

import (
	"sync"
	"time"
)

const defaultInterval = time.Second

// Timer — владеемый вызывающим таймер с явными Start/Stop.
// onTick вызывается последовательно и не должен вызывать Start/Stop того же таймера.
type Timer struct {
	interval time.Duration
	onTick   func(n int)

	mu      sync.Mutex
	running bool
	started time.Time
	last    time.Duration
	stop    chan struct{}
	done    chan struct{}
}

// NewTimer — interval <= 0 заменяется на одну секунду; onTick == nil допустим.
func NewTimer(interval time.Duration, onTick func(n int)) *Timer {
	if interval <= 0 {
		interval = defaultInterval
	}
	if onTick == nil {
		onTick = func(int) {}
	}
	return &Timer{interval: interval, onTick: onTick}
}

// Start — сразу сообщает тик 0, далее тик n каждые interval.
// Повторный Start останавливает текущий запуск и начинает отсчёт заново.
func (t *Timer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		t.stopLocked()
	}

	t.running = true
	t.started = time.Now()
	t.stop = make(chan struct{})
	t.done = make(chan struct{})

	t.onTick(0)
	go t.loop(t.stop, t.done)
}

// Stop — останавливает таймер и возвращает длительность запуска.
// Повторный вызов возвращает ту же длительность; после Stop тиков больше нет.
func (t *Timer) Stop() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		t.stopLocked()
	}
	return t.last
}

// Running — true между Start и Stop.
func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

func (t *Timer) stopLocked() {
	close(t.stop)
	<-t.done
	t.last = time.Since(t.started)
	t.running = false
}

func (t *Timer) loop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	n := 0
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			n++
			t.onTick(n)
		}
	}
}
