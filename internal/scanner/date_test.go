package scanner

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/danieljhkim/tidydate/internal/config"
)

func TestResolveDate_Modified(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "file.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	want := time.Date(2026, 1, 10, 23, 30, 0, 0, time.Local)
	if err := os.Chtimes(path, want, want); err != nil {
		t.Fatalf("failed to set times: %v", err)
	}

	info, err := os.Lstat(path)
	if err != nil {
		t.Fatalf("lstat failed: %v", err)
	}

	date, fallback := ResolveDate(path, info, config.SourceModified)
	if fallback {
		t.Error("modified source should never report fallback")
	}
	y, m, d := date.Date()
	if y != 2026 || m != time.January || d != 10 {
		t.Errorf("date = %v, want 2026-01-10", date)
	}
}

func TestResolveDate_CreatedFallsBackToModified(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "file.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	mtime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.Local)
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("failed to set times: %v", err)
	}

	info, err := os.Lstat(path)
	if err != nil {
		t.Fatalf("lstat failed: %v", err)
	}

	// Depending on the filesystem the birth time may or may not exist. When
	// it does not, the resolver must fall back to mtime and say so.
	date, fallback := ResolveDate(path, info, config.SourceCreated)
	if fallback {
		y, m, d := date.Date()
		if y != 2024 || m != time.June || d != 1 {
			t.Errorf("fallback date = %v, want mtime 2024-06-01", date)
		}
	} else {
		// Birth time exists: it is the file creation moment, i.e. today.
		if time.Since(date) > time.Hour {
			t.Errorf("birth time %v is unexpectedly old", date)
		}
	}
}

func TestResolveDate_LocalCalendarDay(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "late.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	// 23:30 local on Jan 10 must bucket as Jan 10 even when its UTC
	// equivalent crosses midnight.
	late := time.Date(2026, 1, 10, 23, 30, 0, 0, time.Local)
	if err := os.Chtimes(path, late, late); err != nil {
		t.Fatalf("failed to set times: %v", err)
	}

	info, err := os.Lstat(path)
	if err != nil {
		t.Fatalf("lstat failed: %v", err)
	}

	date, _ := ResolveDate(path, info, config.SourceModified)
	if date.Format("20060102") != "20260110" {
		t.Errorf("bucket day = %s, want 20260110", date.Format("20060102"))
	}
}
