package cache

import (
	"container/list"
	"encoding/json"
	"sync"
	"time"
)

// Store is the key/value capability backing the trending, search and saved
// caches. Values are JSON documents. A ttl of zero means no expiry.
//
// The store is injected into every pipeline rather than reached as a global,
// so tests substitute an isolated instance.
type Store interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration)
	Delete(key string)
	Clear()
	Size() int
}

type entry struct {
	key        string
	value      []byte
	expiration time.Time // zero time means no expiry
}

func (e *entry) expired(now time.Time) bool {
	return !e.expiration.IsZero() && now.After(e.expiration)
}

// Memory is a thread-safe in-memory Store with LRU eviction and per-key TTL.
type Memory struct {
	capacity int
	mu       sync.Mutex
	items    map[string]*list.Element
	lru      *list.List
}

// NewMemory creates a Memory store bounded to capacity entries.
func NewMemory(capacity int) *Memory {
	if capacity <= 0 {
		capacity = 1000
	}
	return &Memory{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		lru:      list.New(),
	}
}

func (m *Memory) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	element, found := m.items[key]
	if !found {
		return nil, false
	}
	e := element.Value.(*entry)
	if e.expired(time.Now()) {
		m.removeElement(element)
		return nil, false
	}
	m.lru.MoveToBack(element)
	return e.value, true
}

func (m *Memory) Set(key string, value []byte, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var expiration time.Time
	if ttl > 0 {
		expiration = time.Now().Add(ttl)
	}

	if element, found := m.items[key]; found {
		m.lru.MoveToBack(element)
		e := element.Value.(*entry)
		e.value = value
		e.expiration = expiration
		return
	}

	if m.lru.Len() >= m.capacity {
		if oldest := m.lru.Front(); oldest != nil {
			m.removeElement(oldest)
		}
	}

	element := m.lru.PushBack(&entry{key: key, value: value, expiration: expiration})
	m.items[key] = element
}

func (m *Memory) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if element, found := m.items[key]; found {
		m.removeElement(element)
	}
}

func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = make(map[string]*list.Element)
	m.lru.Init()
}

func (m *Memory) Size() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.lru.Len()
}

// CleanupExpired removes every expired entry and returns how many were dropped.
func (m *Memory) CleanupExpired() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	removed := 0

	var next *list.Element
	for element := m.lru.Front(); element != nil; element = next {
		next = element.Next()
		if element.Value.(*entry).expired(now) {
			m.removeElement(element)
			removed++
		}
	}
	return removed
}

// StartCleanupRoutine sweeps expired entries on the given interval. Stop the
// returned ticker to end the sweep.
func (m *Memory) StartCleanupRoutine(interval time.Duration) *time.Ticker {
	ticker := time.NewTicker(interval)
	go func() {
		for range ticker.C {
			m.CleanupExpired()
		}
	}()
	return ticker
}

// must be called with the lock held
func (m *Memory) removeElement(element *list.Element) {
	m.lru.Remove(element)
	delete(m.items, element.Value.(*entry).key)
}

// GetJSON reads key and unmarshals it into out. A missing key or a document
// that fails to parse both report false.
func GetJSON(s Store, key string, out interface{}) bool {
	data, ok := s.Get(key)
	if !ok {
		return false
	}
	return json.Unmarshal(data, out) == nil
}

// SetJSON marshals value and stores it under key. A marshal failure drops
// the write.
func SetJSON(s Store, key string, value interface{}, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	s.Set(key, data, ttl)
}
