package git

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// CLIHistoryReader reads commit history by shelling out to the git binary.
type CLIHistoryReader struct {
	opts ReadOptions
}

// NewCLIHistoryReader verifies that opts.RepoPath is a repository the git
// binary can read and returns a reader for it.
func NewCLIHistoryReader(opts ReadOptions) (*CLIHistoryReader, error) {
	if _, err := os.Stat(opts.RepoPath); err != nil {
		return nil, fmt.Errorf("repository path %s: %w", opts.RepoPath, err)
	}
	out, err := exec.Command("git", "-C", opts.RepoPath, "rev-parse", "--git-dir").CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrNotRepository, opts.RepoPath, strings.TrimSpace(string(out)))
	}
	return &CLIHistoryReader{opts: opts}, nil
}

// ReadCommits returns the commit history oldest first.
func (r *CLIHistoryReader) ReadCommits(ctx context.Context) ([]Commit, error) {
	rev := strings.TrimSpace(r.opts.Branch)
	if rev == "" {
		rev = "HEAD"
	}

	// An unborn HEAD means there is nothing to read.
	if err := exec.CommandContext(ctx, "git", "-C", r.opts.RepoPath, "rev-parse", "--verify", "-q", rev+"^{commit}").Run(); err != nil {
		if strings.EqualFold(rev, "HEAD") {
			return nil, nil
		}
		return nil, fmt.Errorf("resolve branch %q: %w", rev, err)
	}

	// Each commit is prefixed by 0x1e (record separator) and its fields are
	// NUL-separated, so subjects containing newlines or tabs stay parseable.
	const format = "%x1e%H%x00%cI%x00%an%x00%ae%x00%s"

	args := []string{
		"-C", r.opts.RepoPath,
		"log",
		"--reverse",
		"--no-color",
		"--pretty=format:" + format,
		rev,
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git log failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	return parseLogRecords(out)
}

func parseLogRecords(out []byte) ([]Commit, error) {
	records := bytes.Split(out, []byte{0x1e})
	commits := make([]Commit, 0, len(records))

	for _, rec := range records {
		rec = bytes.TrimRight(rec, "\r\n")
		if len(rec) == 0 {
			continue
		}

		fields := bytes.SplitN(rec, []byte{0x00}, 5)
		if len(fields) < 5 {
			return nil, fmt.Errorf("unexpected git log record format: %q", string(rec))
		}

		hash := strings.TrimSpace(string(fields[0]))
		if hash == "" {
			return nil, fmt.Errorf("git log record without hash")
		}

		// A malformed date leaves When zero; callers decide on the fallback.
		when, err := time.Parse(time.RFC3339, strings.TrimSpace(string(fields[1])))
		if err != nil {
			when = time.Time{}
		}

		commits = append(commits, Commit{
			Hash:    hash,
			When:    when,
			Author:  AuthorInfo{Name: string(fields[2]), Email: string(fields[3])},
			Message: string(fields[4]),
		})
	}

	return commits, nil
}
