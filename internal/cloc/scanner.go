package cloc

import (
	"context"
	"fmt"
)

// Scanner counts lines of code per language in the tree of one commit.
type Scanner interface {
	Scan(ctx context.Context, hash string) (Result, error)
}

// ScannerFunc adapts a function to the Scanner interface.
type ScannerFunc func(ctx context.Context, hash string) (Result, error)

// Scan calls f.
func (f ScannerFunc) Scan(ctx context.Context, hash string) (Result, error) {
	return f(ctx, hash)
}

// ScanError reports a failed scan of one commit.
type ScanError struct {
	Hash   string
	Stderr string
	Err    error
}

func (e *ScanError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("scan %s: %v: %s", e.Hash, e.Err, e.Stderr)
	}
	return fmt.Sprintf("scan %s: %v", e.Hash, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// Kind names a scanner implementation.
type Kind string

const (
	KindCLI    Kind = "cloc"
	KindGocloc Kind = "gocloc"
)

// ParseKind parses a scanner name. An empty name selects the cloc binary.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "", "cloc":
		return KindCLI, nil
	case "gocloc", "builtin":
		return KindGocloc, nil
	default:
		return "", fmt.Errorf("unknown scanner %q (expected cloc or gocloc)", s)
	}
}
