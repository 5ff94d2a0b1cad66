package tokenstore

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/doctalk/doctalk-cli/models"
)

func TestStore_SaveLoadClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "tokens.json")
	store := New(path)

	if err := store.Save(models.TokenPair{Access: "acc", Refresh: "ref"}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	pair, ok, err := store.Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !ok {
		t.Fatal("Expected a stored credential")
	}
	if pair.Access != "acc" || pair.Refresh != "ref" {
		t.Errorf("Unexpected pair %+v", pair)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, ok, _ := store.Load(); ok {
		t.Error("Expected no credential after clear")
	}
}

func TestStore_LoadMissing(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "tokens.json"))

	_, ok, err := store.Load()
	if err != nil {
		t.Fatalf("Expected no error for missing file, got %v", err)
	}
	if ok {
		t.Error("Expected no credential")
	}
}

func TestStore_ClearMissing(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "tokens.json"))
	if err := store.Clear(); err != nil {
		t.Errorf("Expected clear on missing file to succeed, got %v", err)
	}
}

func TestStore_Permissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes not meaningful on windows")
	}

	path := filepath.Join(t.TempDir(), "state", "tokens.json")
	store := New(path)
	if err := store.Save(models.TokenPair{Access: "acc", Refresh: "ref"}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Expected token file, got %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("Expected 0600 token file, got %v", info.Mode().Perm())
	}

	dirInfo, err := os.Stat(filepath.Dir(path))
	if err != nil {
		t.Fatalf("Expected state dir, got %v", err)
	}
	if dirInfo.Mode().Perm() != 0700 {
		t.Errorf("Expected 0700 state dir, got %v", dirInfo.Mode().Perm())
	}
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	store := New(path)
	if _, ok, err := store.Load(); err == nil || ok {
		t.Errorf("Expected error for corrupt file, got ok=%v err=%v", ok, err)
	}
}
