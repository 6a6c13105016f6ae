package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/easeaico/moodmate/internal/types"
)

func openTestLog(t *testing.T) *BoltLog {
	t.Helper()
	log, err := OpenBoltLog(BoltPath(filepath.Join(t.TempDir(), "data")))
	if err != nil {
		t.Fatalf("open bolt log: %v", err)
	}
	t.Cleanup(func() { _ = log.Close() })
	return log
}

func testEntry(userID, text string, mood types.Mood, score *int, at time.Time) types.ChatEntry {
	return types.ChatEntry{
		ID:             text,
		UserID:         userID,
		MessageText:    text,
		Mood:           mood,
		SentimentScore: score,
		Keywords:       []string{"work"},
		Timestamp:      at,
	}
}

func TestBoltLogReadAllEmpty(t *testing.T) {
	log := openTestLog(t)
	entries, err := log.ReadAll(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if entries == nil || len(entries) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", entries)
	}
}

func TestBoltLogAppendPreservesOrder(t *testing.T) {
	log := openTestLog(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	score := -2

	var want []types.ChatEntry
	for i, text := range []string{"first", "second", "third", "fourth", "fifth", "sixth", "seventh", "eighth", "ninth", "tenth", "eleventh"} {
		entry := testEntry("user-1", text, types.MoodSad, &score, base.Add(time.Duration(i)*time.Minute))
		if err := log.Append(ctx, "user-1", entry); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
		want = append(want, entry)
	}

	got, err := log.ReadAll(ctx, "user-1")
	if err != nil {
		t.Fatalf("read all: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected entries (-want +got):\n%s", diff)
	}
}

func TestBoltLogCrisisScoreRoundTripsAsNil(t *testing.T) {
	log := openTestLog(t)
	ctx := context.Background()
	entry := testEntry("u", "help", types.MoodCrisis, nil, time.Now().UTC())
	if err := log.Append(ctx, "u", entry); err != nil {
		t.Fatalf("append: %v", err)
	}
	got, err := log.ReadAll(ctx, "u")
	if err != nil {
		t.Fatalf("read all: %v", err)
	}
	if len(got) != 1 || got[0].SentimentScore != nil {
		t.Fatalf("expected nil score, got %#v", got)
	}
}

func TestBoltLogUsersAndClear(t *testing.T) {
	log := openTestLog(t)
	ctx := context.Background()
	now := time.Now().UTC()
	for _, user := range []string{"alice", "bob"} {
		if err := log.Append(ctx, user, testEntry(user, "hi", types.MoodNeutral, nil, now)); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	users, err := log.Users(ctx)
	if err != nil {
		t.Fatalf("users: %v", err)
	}
	if diff := cmp.Diff([]string{"alice", "bob"}, users); diff != "" {
		t.Fatalf("unexpected users (-want +got):\n%s", diff)
	}

	if err := log.Clear(ctx, "alice"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := log.Clear(ctx, "never-seen"); err != nil {
		t.Fatalf("clearing an unknown user should succeed, got %v", err)
	}

	entries, _ := log.ReadAll(ctx, "alice")
	if len(entries) != 0 {
		t.Fatalf("expected alice to be cleared, got %d entries", len(entries))
	}
	entries, _ = log.ReadAll(ctx, "bob")
	if len(entries) != 1 {
		t.Fatalf("expected bob to keep his entry, got %d", len(entries))
	}
}

func TestBoltLogHonorsCanceledContext(t *testing.T) {
	log := openTestLog(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := log.Append(ctx, "u", testEntry("u", "x", types.MoodNeutral, nil, time.Now())); err == nil {
		t.Fatalf("expected error for canceled context")
	}
}

func TestTail(t *testing.T) {
	entries := make([]types.ChatEntry, 7)
	for i := range entries {
		entries[i].MessageText = string(rune('a' + i))
	}
	got := Tail(entries, 5)
	if len(got) != 5 || got[0].MessageText != "c" || got[4].MessageText != "g" {
		t.Fatalf("unexpected tail: %#v", got)
	}
	if got := Tail(entries[:2], 5); len(got) != 2 {
		t.Fatalf("expected short input to be returned whole, got %d", len(got))
	}
	if got := Tail(entries, 0); got != nil {
		t.Fatalf("expected nil for zero window")
	}
}

func TestChatEntryFromModelDecodesKeywords(t *testing.T) {
	score := 4
	at := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	got := chatEntryFromModel(chatEntryModel{
		EntryID:        "id-1",
		UserID:         "u",
		MessageText:    "great day at work",
		Mood:           "happy",
		SentimentScore: &score,
		Keywords:       []byte(`["work","day"]`),
		CreatedAt:      at,
	})
	want := types.ChatEntry{
		ID:             "id-1",
		UserID:         "u",
		MessageText:    "great day at work",
		Mood:           types.MoodHappy,
		SentimentScore: &score,
		Keywords:       []string{"work", "day"},
		Timestamp:      at,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected entry (-want +got):\n%s", diff)
	}

	empty := chatEntryFromModel(chatEntryModel{Keywords: []byte(`not-json`)})
	if empty.Keywords == nil || len(empty.Keywords) != 0 {
		t.Fatalf("expected empty keywords on decode failure, got %#v", empty.Keywords)
	}
}

func TestOpenBoltBackend(t *testing.T) {
	dir := t.TempDir()
	log, err := Open(context.Background(), BackendBolt, filepath.Join(dir, "nested"), "")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer log.Close()

	if _, err := os.Stat(filepath.Join(dir, "nested", BoltFileName)); err != nil {
		t.Fatalf("expected bolt file to be created: %v", err)
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	if _, err := Open(context.Background(), "sqlite", t.TempDir(), ""); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}
