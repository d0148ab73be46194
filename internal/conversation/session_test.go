package conversation

import (
	"fmt"
	"sync"
	"testing"

	"github.com/kyawzl/mahabote-bot/internal/mahabote"
)

func TestStore_CreatesOnFirstContact(t *testing.T) {
	s := NewStore(mahabote.LangMyanmar)

	s.Do("webui:a", func(sess *Session) {
		if sess.State != StateGreeting {
			t.Errorf("new session state = %q, want greeting", sess.State)
		}
		if sess.Language != mahabote.LangMyanmar {
			t.Errorf("new session lang = %q, want my", sess.Language)
		}
		sess.Name = "Mya Mya"
	})

	got, ok := s.Peek("webui:a")
	if !ok {
		t.Fatal("session should exist after Do")
	}
	if got.Name != "Mya Mya" {
		t.Errorf("name = %q, mutations should persist", got.Name)
	}
	if got.UpdatedAt.IsZero() {
		t.Error("UpdatedAt should be set")
	}
}

func TestStore_Reset(t *testing.T) {
	s := NewStore(mahabote.LangMyanmar)
	s.Do("webui:a", func(sess *Session) { sess.State = StateReadingShown })
	s.Reset("webui:a")

	if _, ok := s.Peek("webui:a"); ok {
		t.Error("session should be gone after Reset")
	}
	s.Do("webui:a", func(sess *Session) {
		if sess.State != StateGreeting {
			t.Errorf("state after reset = %q, want greeting", sess.State)
		}
	})
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := NewStore(mahabote.LangMyanmar)

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("webui:%d", n%8)
			for j := 0; j < 100; j++ {
				s.Do(id, func(sess *Session) { sess.Name = id })
				s.Peek(id)
			}
		}(i)
	}
	wg.Wait()

	if got := s.Len(); got != 8 {
		t.Errorf("len = %d, want 8", got)
	}
}
