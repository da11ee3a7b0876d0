package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SeamusWaldron/gocube_solver"
)

const solvedCode = "bbbbbbbbbrrrrrrrrrgggggggggoooooooooyyyyyyyyywwwwwwwww"

// execute runs the root command with args against a fresh config and
// database and returns its output.
func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()

	// Flag variables outlive a single Execute.
	configPath, dbPath, verbose = "", "", false
	createColors, createShow, rotateShow = gocube.DefaultColors, false, false
	solveSave, solveNotation, solveStats = false, false, false
	replayQuiet = false
	historyLimit = 20
	configForce = false

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{
		"--config", filepath.Join(dir, "config.yaml"),
		"--db", filepath.Join(dir, "solves.db"),
	}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestCreateCommand(t *testing.T) {
	out, err := execute(t, t.TempDir(), "create", "--colors", "brgoyw")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != solvedCode {
		t.Errorf("create = %q", out)
	}
}

func TestRotateCommand(t *testing.T) {
	out, err := execute(t, t.TempDir(), "rotate", solvedCode)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "bbbbbbbbbyrryrryrrgggggggggoowoowoowyyyyyyooorrrwwwwww" {
		t.Errorf("rotate = %q", out)
	}

	_, err = execute(t, t.TempDir(), "rotate", solvedCode, "Fx")
	if err == nil || err.Error() != "error: invalid rotation" {
		t.Errorf("rotate with bad dir error = %v", err)
	}

	_, err = execute(t, t.TempDir(), "rotate", "bbb")
	if err == nil || err.Error() != "error: invalid cube" {
		t.Errorf("rotate with bad cube error = %v", err)
	}
}

func TestSolveCommand(t *testing.T) {
	cube := "wryrbobgbgbybrgwbrogyrgyyogborrobogwrwbwywgworyoowywyg"

	out, err := execute(t, t.TempDir(), "solve", cube)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "uRRULLBBUFF" {
		t.Errorf("solve = %q", out)
	}

	out, err = execute(t, t.TempDir(), "solve", "--notation", cube)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "U' R R U L L B B U F F" {
		t.Errorf("solve --notation = %q", out)
	}
}

func TestSolveStats(t *testing.T) {
	cube := "wryrbobgbgbybrgwbrogyrgyyogborrobogwrwbwywgworyoowywyg"
	out, err := execute(t, t.TempDir(), "solve", "--stats", cube)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Raw moves:       13", "Optimized moves: 11", "Bottom Cross:"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats output missing %q:\n%s", want, out)
		}
	}
}

func TestSolveSaveAndHistory(t *testing.T) {
	dir := t.TempDir()
	cube := "wryrbobgbgbybrgwbrogyrgyyogborrobogwrwbwywgworyoowywyg"

	if _, err := execute(t, dir, "solve", "--save", cube); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, dir, "history")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "uRRULLBBUFF") {
		t.Errorf("history missing solve:\n%s", out)
	}

	id := strings.Fields(strings.Split(out, "\n")[1])[0]
	out, err = execute(t, dir, "history", id)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Sequence: U' R R U L L B B U F F") || !strings.Contains(out, cube) {
		t.Errorf("history detail:\n%s", out)
	}

	if _, err := execute(t, dir, "history", "missing"); err == nil {
		t.Error("expected an error for an unknown solve")
	}
}

func TestHistoryEmpty(t *testing.T) {
	out, err := execute(t, t.TempDir(), "history")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "No solves recorded") {
		t.Errorf("history = %q", out)
	}
}

func TestVerifyCommand(t *testing.T) {
	out, err := execute(t, t.TempDir(), "verify", "anything")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "ok" {
		t.Errorf("verify = %q", out)
	}
}

func TestReplayCommand(t *testing.T) {
	cube := "wryrbobgbgbybrgwbrogyrgyyogborrobogwrwbwywgworyoowywyg"
	out, err := execute(t, t.TempDir(), "replay", cube, "uRRULLBBUFF")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Bottom Cross reached after 11 moves") {
		t.Errorf("replay output:\n%s", out)
	}
	if !strings.Contains(out, "Goal: Bottom Cross") {
		t.Errorf("replay final goal missing:\n%s", out)
	}

	if _, err := execute(t, t.TempDir(), "replay", cube, "UX"); err == nil {
		t.Error("expected an error for bad rotations")
	}
}

func TestShowCommand(t *testing.T) {
	out, err := execute(t, t.TempDir(), "show", solvedCode)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Goal: Bottom Cross") {
		t.Errorf("show output:\n%s", out)
	}
}

func TestConfigInit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	out, err := execute(t, dir, "config", "init")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, path) {
		t.Errorf("config init = %q", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "max_moves: 1000") {
		t.Errorf("config file:\n%s", data)
	}

	if _, err := execute(t, dir, "config", "init"); err == nil {
		t.Error("expected an error when the file exists")
	}

	if err := os.WriteFile(path, []byte("max_moves: 50\n"), 0644); err != nil {
		t.Fatal(err)
	}
	out, err = execute(t, dir, "config", "show")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Max moves: 50") {
		t.Errorf("config show = %q", out)
	}

	if _, err := execute(t, dir, "config", "init", "--force"); err != nil {
		t.Fatal(err)
	}
	data, _ = os.ReadFile(path)
	if !strings.Contains(string(data), "max_moves: 50") || !strings.Contains(string(data), "log_level: info") {
		t.Errorf("forced config file:\n%s", data)
	}
}
