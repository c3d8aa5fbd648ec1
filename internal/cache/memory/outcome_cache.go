package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/csvgate/internal/domain"
	"github.com/Gunvolt24/csvgate/internal/ports"
	"github.com/Gunvolt24/csvgate/pkg/metrics"
)

var _ ports.OutcomeCache = (*LRUCacheTTL)(nil)

type entry struct {
	digest    string
	outcome   domain.Outcome
	expiresAt time.Time
}

// LRUCacheTTL — кэш результатов проверки по дайджесту содержимого файла.
// Вытеснение по LRU, устаревание по TTL (ttl <= 0 — без устаревания).
type LRUCacheTTL struct {
	capacity int
	ttl      time.Duration

	ll    *list.List
	cache map[string]*list.Element

	mu sync.Mutex
}

func NewLRUCacheTTL(capacity int, ttl time.Duration) *LRUCacheTTL {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRUCacheTTL{
		capacity: capacity,
		ttl:      ttl,
		ll:       list.New(),
		cache:    make(map[string]*list.Element),
	}
}

func (c *LRUCacheTTL) Get(_ context.Context, digest string) (domain.Outcome, bool) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.cache[digest]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return domain.Outcome{}, false
	}
	ent, ok := elem.Value.(*entry)
	if !ok || c.isExpired(ent, now) {
		metrics.CacheOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
		metrics.CacheSize.Set(float64(c.ll.Len()))
		return domain.Outcome{}, false
	}
	c.ll.MoveToFront(elem)

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return ent.outcome, true
}

// Set — сохраняет результат. Ошибки чтения не кэшируются: они не зависят от содержимого.
func (c *LRUCacheTTL) Set(_ context.Context, digest string, outcome domain.Outcome) error {
	if digest == "" || outcome.Kind == domain.OutcomeReadFailure || outcome.Kind == "" {
		return nil
	}
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.cache[digest]; ok {
		if ent, ok := elem.Value.(*entry); ok {
			ent.outcome = outcome
			ent.expiresAt = c.expiryFrom(now)
			c.ll.MoveToFront(elem)
			return nil
		}
		c.removeElement(elem)
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry{
		digest:    digest,
		outcome:   outcome,
		expiresAt: c.expiryFrom(now),
	})
	c.cache[digest] = elem
	metrics.CacheSize.Set(float64(c.ll.Len()))

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	return nil
}

// Len — текущее число записей (включая ещё не вычищенные устаревшие).
func (c *LRUCacheTTL) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}
