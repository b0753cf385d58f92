package store

import (
	"path/filepath"
	"reflect"
	"strconv"
	"testing"
)

func TestLoadHistoryMissingFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "history.json")
	got, err := LoadHistory(p)
	if err != nil {
		t.Fatalf("LoadHistory error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %v, want empty", got)
	}
}

func TestAppendHistoryOrderAndDedupe(t *testing.T) {
	p := filepath.Join(t.TempDir(), "history.json")
	for _, cmd := range []string{"go test ./...", "go test ./...", "git status", "  ", "go vet"} {
		if _, err := AppendHistory(p, cmd); err != nil {
			t.Fatalf("AppendHistory(%q): %v", cmd, err)
		}
	}
	got, err := LoadHistory(p)
	if err != nil {
		t.Fatalf("LoadHistory error: %v", err)
	}
	want := []string{"go test ./...", "git status", "go vet"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("history = %v, want %v", got, want)
	}
}

func TestHistoryCap(t *testing.T) {
	p := filepath.Join(t.TempDir(), "history.json")
	list := make([]string, 0, MaxHistoryEntries+10)
	for i := 0; i < MaxHistoryEntries+10; i++ {
		list = append(list, "cmd "+strconv.Itoa(i))
	}
	if err := SaveHistory(p, list); err != nil {
		t.Fatalf("SaveHistory error: %v", err)
	}
	got, err := LoadHistory(p)
	if err != nil {
		t.Fatalf("LoadHistory error: %v", err)
	}
	if len(got) != MaxHistoryEntries {
		t.Fatalf("len = %d, want %d", len(got), MaxHistoryEntries)
	}
	if got[len(got)-1] != list[len(list)-1] {
		t.Fatal("newest entry was trimmed")
	}
}

func TestClearHistory(t *testing.T) {
	p := filepath.Join(t.TempDir(), "history.json")
	if _, err := AppendHistory(p, "ls"); err != nil {
		t.Fatalf("AppendHistory: %v", err)
	}
	if err := ClearHistory(p); err != nil {
		t.Fatalf("ClearHistory: %v", err)
	}
	got, err := LoadHistory(p)
	if err != nil || len(got) != 0 {
		t.Fatalf("after clear: %v, %v", got, err)
	}
	// Clearing an already-missing file is fine.
	if err := ClearHistory(p); err != nil {
		t.Fatalf("second ClearHistory: %v", err)
	}
}
