package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/vampire-rescue/internal/storage"
)

func TestPortOf(t *testing.T) {
	tests := []struct{ addr, expected string }{
		{":23234", "23234"},
		{"0.0.0.0:2222", "2222"},
		{"[::1]:22", "22"},
		{"bogus", "bogus"},
	}
	for _, tc := range tests {
		if got := portOf(tc.addr); got != tc.expected {
			t.Errorf("portOf(%q) = %q, expected %q", tc.addr, got, tc.expected)
		}
	}
}

func TestCreateGame(t *testing.T) {
	game, err := createGame(nil)
	if err != nil {
		t.Fatalf("createGame() failed: %v", err)
	}
	if game.ID() != defaultGame {
		t.Errorf("default game = %q, expected %q", game.ID(), defaultGame)
	}

	if _, err := createGame([]string{"pacman"}); err == nil {
		t.Error("expected error for unknown game")
	}
}

func TestPrintRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	var empty bytes.Buffer
	if err := printRuns(&empty, store, "rescue", "Vampire Rescue"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(empty.String(), "No runs recorded yet.") {
		t.Errorf("empty output = %q", empty.String())
	}

	for _, r := range []storage.RunRecord{
		{GameID: "rescue", Player: "mina", Saved: 4, Outcome: storage.OutcomeLoss, Ticks: 100},
		{GameID: "rescue", Player: "jon", Saved: 12, Outcome: storage.OutcomeWin, Ticks: 900},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatal(err)
		}
	}

	var out bytes.Buffer
	if err := printRuns(&out, store, "rescue", "Vampire Rescue"); err != nil {
		t.Fatal(err)
	}
	text := out.String()
	if !strings.Contains(text, "Best runs - Vampire Rescue") {
		t.Errorf("missing heading in %q", text)
	}
	if strings.Index(text, "jon") > strings.Index(text, "mina") {
		t.Errorf("best run should be listed first:\n%s", text)
	}
	if !strings.Contains(text, "Runs: 2  Won: 1  Lost: 1") {
		t.Errorf("missing stats in %q", text)
	}
}

func TestPrintRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	id, err := store.SaveRun(storage.RunRecord{GameID: "rescue", Player: "mina", Saved: 7, Outcome: storage.OutcomeWin, Seed: 42})
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := printRun(&out, store, id); err != nil {
		t.Fatalf("printRun() failed: %v", err)
	}
	for _, want := range []string{id, "mina", "win", "Seed    42"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output is missing %q:\n%s", want, out.String())
		}
	}

	if err := printRun(&out, store, "00000000-0000-0000-0000-000000000000"); err == nil {
		t.Error("expected error for unknown run")
	}
}
