package tutor

import (
	"sync"
	"testing"
)

func TestManagerSerializesPerSession(t *testing.T) {
	m := NewManager()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.Do("session-1", func() error {
				counter++ // safe only if Do serializes
				return nil
			})
		}()
	}
	wg.Wait()

	if counter != 50 {
		t.Errorf("counter = %d, want 50", counter)
	}
}

func TestManagerIndependentSessions(t *testing.T) {
	m := NewManager()
	release := make(chan struct{})
	holding := make(chan struct{})

	go func() {
		_ = m.Do("slow", func() error {
			close(holding)
			<-release
			return nil
		})
	}()

	<-holding
	// A different session must not block behind "slow".
	done := make(chan struct{})
	go func() {
		_ = m.Do("fast", func() error { return nil })
		close(done)
	}()
	<-done
	close(release)
}

func TestManagerRelease(t *testing.T) {
	m := NewManager()
	_ = m.Do("s", func() error { return nil })
	m.Release("s")
	if err := m.Do("s", func() error { return nil }); err != nil {
		t.Fatalf("Do after Release: %v", err)
	}
}
