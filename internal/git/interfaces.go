package git

import "context"

// HistorySource provides the commit history of a repository, oldest first.
type HistorySource interface {
	ReadCommits(ctx context.Context) ([]Commit, error)
}

// Compile-time interface conformance checks.
var (
	_ HistorySource = (*HistoryReader)(nil)
	_ HistorySource = (*CLIHistoryReader)(nil)
)

// NewHistorySource opens the repository with the backend selected in opts.
func NewHistorySource(opts ReadOptions) (HistorySource, error) {
	if opts.Backend == BackendGitCLI {
		return NewCLIHistoryReader(opts)
	}
	return NewHistoryReader(opts)
}
