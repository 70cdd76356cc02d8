package git

import "context"

// MockHistoryReader is a test double for HistoryReader.
// It allows tests to provide predefined commits without needing a real Git repository.
type MockHistoryReader struct {
	Commits []Commit
	Error   error
}

// NewMockHistoryReader creates a new MockHistoryReader with the given data.
func NewMockHistoryReader(commits []Commit, err error) *MockHistoryReader {
	return &MockHistoryReader{
		Commits: commits,
		Error:   err,
	}
}

// ReadCommits returns the predefined commits or error.
func (m *MockHistoryReader) ReadCommits(_ context.Context) ([]Commit, error) {
	return m.Commits, m.Error
}

// Compile-time interface conformance check.
var _ HistorySource = (*MockHistoryReader)(nil)
