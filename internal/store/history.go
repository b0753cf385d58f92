// Package store persists small JSON lists under the runpad config dir.
package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"runpad/internal/config"
)

// MaxHistoryEntries caps the persisted command history.
const MaxHistoryEntries = 500

// HistoryPath returns the command-history file location.
func HistoryPath() (string, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.json"), nil
}

// LoadHistory reads the command history, oldest first. A missing file
// yields an empty list without error.
func LoadHistory(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	var arr []string
	if err := json.Unmarshal(b, &arr); err != nil {
		return nil, err
	}
	return arr, nil
}

// SaveHistory writes the history list, creating parent dirs and trimming to
// the newest MaxHistoryEntries.
func SaveHistory(path string, list []string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if len(list) > MaxHistoryEntries {
		list = list[len(list)-MaxHistoryEntries:]
	}
	b, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// AppendHistory loads the history at path, appends command (skipping blanks
// and immediate repeats), saves, and returns the updated list.
func AppendHistory(path, command string) ([]string, error) {
	command = strings.TrimSpace(command)
	cur, err := LoadHistory(path)
	if err != nil {
		return nil, err
	}
	if command == "" || (len(cur) > 0 && cur[len(cur)-1] == command) {
		return cur, nil
	}
	cur = append(cur, command)
	if len(cur) > MaxHistoryEntries {
		cur = cur[len(cur)-MaxHistoryEntries:]
	}
	if err := SaveHistory(path, cur); err != nil {
		return nil, err
	}
	return cur, nil
}

// ClearHistory removes the history file. Missing file is not an error.
func ClearHistory(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
