package git

import (
	"errors"
	"time"
)

// ErrNotRepository is returned when the path does not hold a Git repository.
var ErrNotRepository = errors.New("not a git repository")

// Commit represents minimal information about a Git commit.
// A zero When means the commit carried no usable timestamp.
type Commit struct {
	Hash    string
	When    time.Time
	Author  AuthorInfo
	Message string
}

// HasTime reports whether the commit carries a timestamp.
func (c Commit) HasTime() bool {
	return !c.When.IsZero()
}

// ShortHash returns the first eight characters of the hash.
func (c Commit) ShortHash() string {
	if len(c.Hash) > 8 {
		return c.Hash[:8]
	}
	return c.Hash
}

// AuthorInfo represents commit author information.
type AuthorInfo struct {
	Name  string
	Email string
}

// Backend selects the implementation used to read history.
type Backend int

const (
	BackendGoGit Backend = iota
	BackendGitCLI
)

// String returns a string representation of the backend.
func (b Backend) String() string {
	switch b {
	case BackendGoGit:
		return "gogit"
	case BackendGitCLI:
		return "gitcli"
	default:
		return "unknown"
	}
}

// ParseBackend parses a backend name. An empty name selects go-git.
func ParseBackend(s string) (Backend, error) {
	switch s {
	case "", "gogit", "go-git":
		return BackendGoGit, nil
	case "gitcli", "git":
		return BackendGitCLI, nil
	default:
		return BackendGoGit, errors.New("unknown history backend " + s + " (expected gogit or gitcli)")
	}
}

// ReadOptions configures the history reader.
type ReadOptions struct {
	RepoPath string
	Branch   string
	Backend  Backend
}
