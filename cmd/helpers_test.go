package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

const goSource = `package main

// main does nothing.
func main() {
}
`

const pySource = `# helper
def helper():
    return 1
`

type testRepo struct {
	t   *testing.T
	dir string
	wt  *gogit.Worktree
}

func newTestRepo(t *testing.T) *testRepo {
	t.Helper()

	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("PlainInit: %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Worktree: %v", err)
	}
	return &testRepo{t: t, dir: dir, wt: wt}
}

func (r *testRepo) commit(when time.Time, files map[string]string) {
	r.t.Helper()
	for rel, content := range files {
		full := filepath.Join(r.dir, rel)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			r.t.Fatalf("MkdirAll: %v", err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			r.t.Fatalf("WriteFile: %v", err)
		}
		if _, err := r.wt.Add(rel); err != nil {
			r.t.Fatalf("Add: %v", err)
		}
	}
	sig := &object.Signature{Name: "Test", Email: "test@example.com", When: when}
	if _, err := r.wt.Commit("update", &gogit.CommitOptions{Author: sig, Committer: sig}); err != nil {
		r.t.Fatalf("Commit: %v", err)
	}
}

// sampleRepo has two commits on 2025-05-20 and one on 2025-05-21.
func sampleRepo(t *testing.T) *testRepo {
	t.Helper()
	repo := newTestRepo(t)
	day1 := time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)
	repo.commit(day1, map[string]string{"main.go": goSource})
	repo.commit(day1.Add(2*time.Hour), map[string]string{"helper.py": pySource})
	repo.commit(day1.Add(24*time.Hour), map[string]string{"README": "notes\n"})
	return repo
}

// isolate runs the test in an empty working and home directory so no
// configuration file is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	work := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error = %v", err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatalf("Chdir() error = %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
	return work
}

// runApp runs the application and returns its exit code and captured
// output streams.
func runApp(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := App()
	app.Writer = &stdout
	app.ErrWriter = &stderr
	code := run(app, append([]string{"cloc-graph", "--no-color", "--no-progress"}, args...))
	return code, stdout.String(), stderr.String()
}
