package session

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/easeaico/moodmate/internal/types"
)

func TestMemoryStoreEvictsOldestTurns(t *testing.T) {
	store := NewMemoryStore(DefaultHistoryLimit)
	for i := 0; i < 12; i++ {
		store.Record("user-1", Turn{Mood: types.MoodNeutral, MessageText: fmt.Sprintf("msg-%d", i)}, "")
		state, ok := store.Snapshot("user-1")
		if !ok {
			t.Fatalf("expected state after record %d", i)
		}
		if len(state.History) > DefaultHistoryLimit {
			t.Fatalf("history length %d exceeds limit after record %d", len(state.History), i)
		}
	}
	state, _ := store.Snapshot("user-1")
	if state.History[0].MessageText != "msg-7" || state.History[4].MessageText != "msg-11" {
		t.Fatalf("unexpected history window: first=%s last=%s", state.History[0].MessageText, state.History[4].MessageText)
	}
}

func TestMemoryStoreClampsLimit(t *testing.T) {
	for _, limit := range []int{0, -3, 20} {
		store := NewMemoryStore(limit)
		for i := 0; i < 8; i++ {
			store.Record("user-1", Turn{Mood: types.MoodNeutral, MessageText: fmt.Sprintf("msg-%d", i)}, "")
		}
		state, _ := store.Snapshot("user-1")
		if len(state.History) != DefaultHistoryLimit {
			t.Fatalf("limit %d: expected history of %d, got %d", limit, DefaultHistoryLimit, len(state.History))
		}
	}
	store := NewMemoryStore(2)
	for i := 0; i < 4; i++ {
		store.Record("user-1", Turn{Mood: types.MoodNeutral}, "")
	}
	if state, _ := store.Snapshot("user-1"); len(state.History) != 2 {
		t.Fatalf("expected smaller limit kept, got %d", len(state.History))
	}
}

func TestMemoryStoreFollowUpAndPriorMood(t *testing.T) {
	store := NewMemoryStore(0)

	if _, ok := store.LastFollowUp("user-1"); ok {
		t.Fatalf("expected no follow-up for unknown user")
	}
	if _, ok := store.PriorMood("user-1"); ok {
		t.Fatalf("expected no prior mood for unknown user")
	}

	store.Record("user-1", Turn{Mood: types.MoodHappy}, "What else has made you smile recently?")
	q, ok := store.LastFollowUp("user-1")
	if !ok || q != "What else has made you smile recently?" {
		t.Fatalf("unexpected follow-up: %q/%v", q, ok)
	}
	mood, ok := store.PriorMood("user-1")
	if !ok || mood != types.MoodHappy {
		t.Fatalf("unexpected prior mood: %s/%v", mood, ok)
	}

	store.Record("user-1", Turn{Mood: types.MoodSad}, "")
	if _, ok := store.LastFollowUp("user-1"); ok {
		t.Fatalf("expected follow-up to be cleared")
	}
	if mood, _ := store.PriorMood("user-1"); mood != types.MoodSad {
		t.Fatalf("expected latest recorded mood sad, got %s", mood)
	}
}

func TestMemoryStoreIsolatesUsers(t *testing.T) {
	store := NewMemoryStore(0)
	store.Record("a", Turn{Mood: types.MoodAngry}, "q-a")
	store.Record("b", Turn{Mood: types.MoodHappy}, "q-b")

	if q, _ := store.LastFollowUp("a"); q != "q-a" {
		t.Fatalf("user a leaked state: %q", q)
	}
	if mood, _ := store.PriorMood("b"); mood != types.MoodHappy {
		t.Fatalf("user b leaked state: %s", mood)
	}

	store.Forget("a")
	if _, ok := store.Snapshot("a"); ok {
		t.Fatalf("expected user a to be forgotten")
	}
	if _, ok := store.Snapshot("b"); !ok {
		t.Fatalf("forgetting a must not affect b")
	}
}

func TestMemoryStoreCopiesKeywords(t *testing.T) {
	store := NewMemoryStore(0)
	kws := []string{"work"}
	store.Record("u", Turn{Mood: types.MoodSad, Keywords: kws}, "")
	kws[0] = "mutated"

	state, _ := store.Snapshot("u")
	if state.History[0].Keywords[0] != "work" {
		t.Fatalf("store must keep its own copy of keywords")
	}
	if state.History[0].Timestamp.IsZero() {
		t.Fatalf("expected timestamp to be filled")
	}
}

func TestMemoryStoreConcurrentRecords(t *testing.T) {
	store := NewMemoryStore(DefaultHistoryLimit)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user := fmt.Sprintf("user-%d", i%5)
			store.Record(user, Turn{Mood: types.MoodNeutral}, "")
		}(i)
	}
	wg.Wait()

	for i := 0; i < 5; i++ {
		state, ok := store.Snapshot(fmt.Sprintf("user-%d", i))
		if !ok || len(state.History) != DefaultHistoryLimit {
			t.Fatalf("unexpected history for user-%d: %d", i, len(state.History))
		}
	}
}

func TestKeyedMutexSerializesSameKey(t *testing.T) {
	km := NewKeyedMutex()
	unlock := km.Lock("u")

	acquired := make(chan struct{})
	go func() {
		release := km.Lock("u")
		close(acquired)
		release()
	}()

	select {
	case <-acquired:
		t.Fatalf("second lock on the same key acquired while held")
	case <-time.After(50 * time.Millisecond):
	}

	other := make(chan struct{})
	go func() {
		release := km.Lock("v")
		close(other)
		release()
	}()
	select {
	case <-other:
	case <-time.After(time.Second):
		t.Fatalf("lock on a different key blocked")
	}

	unlock()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatalf("second lock never acquired after unlock")
	}

	// allow the goroutine's release to run
	deadline := time.Now().Add(time.Second)
	for km.size() != 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if km.size() != 0 {
		t.Fatalf("expected all keys released, got %d", km.size())
	}
}
