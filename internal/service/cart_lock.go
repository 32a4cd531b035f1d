package service

import "sync"

// CartLocker 按 session key 串行化购物车写操作与下单（单进程内）
type CartLocker struct {
	mu    sync.Mutex
	locks map[string]*cartLockEntry
}

type cartLockEntry struct {
	mu   sync.Mutex
	refs int
}

// NewCartLocker 创建会话锁
func NewCartLocker() *CartLocker {
	return &CartLocker{locks: make(map[string]*cartLockEntry)}
}

// Lock 获取会话锁，返回解锁函数；无人持有时回收条目
func (l *CartLocker) Lock(sessionKey string) func() {
	l.mu.Lock()
	entry, ok := l.locks[sessionKey]
	if !ok {
		entry = &cartLockEntry{}
		l.locks[sessionKey] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()
		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, sessionKey)
		}
		l.mu.Unlock()
	}
}

func (l *CartLocker) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
