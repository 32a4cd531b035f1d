package service

import (
	"sync"
	"testing"
)

func TestCartLockerSerializesSameKey(t *testing.T) {
	locker := NewCartLocker()
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locker.Lock("session")
			defer unlock()
			current := counter
			counter = current + 1
		}()
	}
	wg.Wait()
	if counter != 50 {
		t.Fatalf("want 50 got %d", counter)
	}
	if locker.size() != 0 {
		t.Fatalf("lock entries should be released, got %d", locker.size())
	}
}

func TestCartLockerIndependentKeys(t *testing.T) {
	locker := NewCartLocker()
	unlockA := locker.Lock("a")
	done := make(chan struct{})
	go func() {
		unlockB := locker.Lock("b")
		unlockB()
		close(done)
	}()
	<-done
	unlockA()
}
