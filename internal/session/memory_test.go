package session

import (
	"sync"
	"testing"
)

func TestMemory_LogInLogOut(t *testing.T) {
	var m Memory
	if m.LoggedIn() {
		t.Fatalf("zero value should be logged out")
	}

	m.LogIn("T1", true)
	if m.CurrentToken() != "T1" || !m.IsAdmin() {
		t.Fatalf("unexpected session state: token=%q admin=%v", m.CurrentToken(), m.IsAdmin())
	}

	m.LogOut()
	if m.LoggedIn() || m.IsAdmin() {
		t.Fatalf("expected logged out after LogOut")
	}
}

func TestMemory_ConcurrentAccess(t *testing.T) {
	m := NewMemory("start", false)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			m.LogIn("next", true)
		}()
		go func() {
			defer wg.Done()
			_ = m.CurrentToken()
		}()
	}
	wg.Wait()

	if m.CurrentToken() != "next" {
		t.Fatalf("expected last write to win, got %q", m.CurrentToken())
	}
}
