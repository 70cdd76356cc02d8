package cloc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/BarthPaleologue/cloc-graph/internal/logging"
)

// DefaultBinary is the name of the cloc executable looked up on PATH.
const DefaultBinary = "cloc"

// ErrBinaryNotFound is returned when the cloc executable cannot be located.
var ErrBinaryNotFound = errors.New("cloc binary not found")

// CLIScanner runs the cloc executable against a commit with `--git`.
type CLIScanner struct {
	repoPath string
	binary   string
	logger   *slog.Logger
}

// NewCLIScanner creates a scanner running binary inside repoPath. An empty
// binary means DefaultBinary. A nil logger discards ignored-key notices.
func NewCLIScanner(repoPath, binary string, logger *slog.Logger) *CLIScanner {
	if binary == "" {
		binary = DefaultBinary
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &CLIScanner{repoPath: repoPath, binary: binary, logger: logger}
}

// Binary returns the executable the scanner runs.
func (s *CLIScanner) Binary() string {
	return s.binary
}

// CheckAvailable verifies that the executable can be found.
func (s *CLIScanner) CheckAvailable() error {
	if _, err := exec.LookPath(s.binary); err != nil {
		return fmt.Errorf("%w: %s", ErrBinaryNotFound, s.binary)
	}
	return nil
}

// Scan runs `cloc --quiet --json --git <hash>` and decodes its output.
// Empty output means the tree held nothing cloc recognizes.
func (s *CLIScanner) Scan(ctx context.Context, hash string) (Result, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, s.binary, "--quiet", "--json", "--git", hash)
	cmd.Dir = s.repoPath
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, &ScanError{Hash: hash, Stderr: strings.TrimSpace(stderr.String()), Err: err}
	}

	out := bytes.TrimSpace(stdout.Bytes())
	if len(out) == 0 {
		return Result{}, nil
	}

	result, ignored, err := DecodeJSON(out)
	if err != nil {
		return nil, &ScanError{Hash: hash, Err: err}
	}
	for _, key := range ignored {
		if key == "header" {
			continue
		}
		s.logger.Debug("ignoring malformed cloc entry", "commit", hash, "key", key)
	}
	return result, nil
}
