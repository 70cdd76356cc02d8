package cloc

import (
	"context"
	"fmt"
	"os"

	"github.com/hhatto/gocloc"

	"github.com/BarthPaleologue/cloc-graph/internal/git"
)

// TreeScanner counts lines in-process with gocloc. Each commit's tree is
// exported to a temporary directory that is removed after counting.
type TreeScanner struct {
	exporter *git.TreeExporter
	filter   PathFilter
}

// NewTreeScanner opens the repository at repoPath.
func NewTreeScanner(repoPath string, filter PathFilter) (*TreeScanner, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	exporter, err := git.NewTreeExporter(repoPath)
	if err != nil {
		return nil, err
	}
	return &TreeScanner{exporter: exporter, filter: filter}, nil
}

// Scan exports the commit tree and counts it.
func (s *TreeScanner) Scan(ctx context.Context, hash string) (Result, error) {
	dir, err := os.MkdirTemp("", "cloc-graph-")
	if err != nil {
		return nil, &ScanError{Hash: hash, Err: fmt.Errorf("create temp dir: %w", err)}
	}
	defer os.RemoveAll(dir)

	var keep func(string) bool
	if !s.filter.IsZero() {
		keep = s.filter.Keep
	}

	n, err := s.exporter.Export(ctx, hash, dir, keep)
	if err != nil {
		return nil, &ScanError{Hash: hash, Err: err}
	}
	if n == 0 {
		return Result{}, nil
	}

	return countDir(dir)
}

func countDir(dir string) (Result, error) {
	languages := gocloc.NewDefinedLanguages()
	options := gocloc.NewClocOptions()

	processor := gocloc.NewProcessor(languages, options)
	loc, err := processor.Analyze([]string{dir})
	if err != nil {
		return nil, fmt.Errorf("count lines: %w", err)
	}

	return fromGocloc(loc), nil
}

func fromGocloc(loc *gocloc.Result) Result {
	result := make(Result, len(loc.Languages)+1)
	for name, lang := range loc.Languages {
		if len(lang.Files) == 0 {
			continue
		}
		result[name] = LanguageStats{
			Files:   len(lang.Files),
			Blank:   int(lang.Blanks),
			Comment: int(lang.Comments),
			Code:    int(lang.Code),
		}
	}
	if len(result) > 0 {
		result[SumKey] = result.Sum()
	}
	return result
}
