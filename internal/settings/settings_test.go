package settings

import (
	"os"
	"testing"

	tu "runpad/internal/testutil"
)

func TestLoadDefaultWhenNoFile(t *testing.T) {
	defer tu.WithConfigDir(t, t.TempDir())()

	s, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if s.MaxOutputLines != DefaultMaxOutputLines {
		t.Fatalf("MaxOutputLines = %d, want default %d", s.MaxOutputLines, DefaultMaxOutputLines)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	defer tu.WithConfigDir(t, t.TempDir())()

	if err := Save(Settings{MaxOutputLines: 7, UsePty: true}); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	got, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got.MaxOutputLines != 7 || !got.UsePty {
		t.Fatalf("round trip = %+v", got)
	}

	p, err := Path()
	if err != nil {
		t.Fatalf("Path error: %v", err)
	}
	if _, err := os.Stat(p); err != nil {
		t.Fatalf("settings file missing: %v", err)
	}
}

func TestLoadClampsLineCap(t *testing.T) {
	defer tu.WithConfigDir(t, t.TempDir())()

	if err := Save(Settings{MaxOutputLines: 0}); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	got, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got.MaxOutputLines < 1 {
		t.Fatalf("line cap not clamped: %d", got.MaxOutputLines)
	}
}

func TestStoreAccessors(t *testing.T) {
	st := &Store{current: Settings{MaxOutputLines: 3, UsePty: true}}
	if st.MaxOutputLines() != 3 || !st.UsePty() {
		t.Fatalf("accessors = %d/%v", st.MaxOutputLines(), st.UsePty())
	}
	st.Set(Settings{MaxOutputLines: -5})
	if st.MaxOutputLines() != DefaultMaxOutputLines {
		t.Fatalf("Set did not normalize: %d", st.MaxOutputLines())
	}
}
