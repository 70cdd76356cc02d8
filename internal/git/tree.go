package git

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// TreeExporter writes the file tree of a commit to disk.
type TreeExporter struct {
	repo *git.Repository
}

// NewTreeExporter opens the repository at repoPath.
func NewTreeExporter(repoPath string) (*TreeExporter, error) {
	repo, err := openRepository(repoPath)
	if err != nil {
		return nil, err
	}
	return &TreeExporter{repo: repo}, nil
}

// Export writes the regular files of the commit identified by hash below dir.
// Symlinks and submodules are skipped, as are paths for which keep returns
// false. It returns the number of files written.
func (e *TreeExporter) Export(ctx context.Context, hash, dir string, keep func(path string) bool) (int, error) {
	commit, err := e.repo.CommitObject(plumbing.NewHash(hash))
	if err != nil {
		return 0, fmt.Errorf("commit %s: %w", hash, err)
	}

	tree, err := commit.Tree()
	if err != nil {
		return 0, fmt.Errorf("tree of %s: %w", hash, err)
	}

	files := tree.Files()
	defer files.Close()

	written := 0
	err = files.ForEach(func(f *object.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if f.Mode != filemode.Regular && f.Mode != filemode.Executable && f.Mode != filemode.Deprecated {
			return nil
		}
		if !filepath.IsLocal(filepath.FromSlash(f.Name)) {
			return nil
		}
		if keep != nil && !keep(f.Name) {
			return nil
		}

		if err := writeBlob(f, filepath.Join(dir, filepath.FromSlash(f.Name))); err != nil {
			return fmt.Errorf("export %s: %w", f.Name, err)
		}
		written++
		return nil
	})
	if err != nil {
		return written, err
	}

	return written, nil
}

func writeBlob(f *object.File, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}

	r, err := f.Reader()
	if err != nil {
		return err
	}
	defer r.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
