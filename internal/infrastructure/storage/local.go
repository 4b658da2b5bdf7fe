// Package storage implements the local filesystem store: temp staging,
// atomic placement, deletion with ancestor pruning and directory listings,
// all confined to a single configured root.
package storage

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

type Local struct {
	logger *zap.Logger
	root   string
}

func NewLocal(logger *zap.Logger, root string) (*Local, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve storage root: %w", err)
	}
	if err = os.MkdirAll(abs, dirPerm); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}

	logger.Info("local storage ready", zap.String("root", abs))

	return &Local{logger: logger, root: abs}, nil
}

func (l *Local) Root() string { return l.root }

// Abs maps an external "/<route>/<type>/<filename>" path to its physical
// location under the root.
func (l *Local) Abs(externalPath string) string {
	return filepath.Join(l.root, filepath.FromSlash(strings.TrimPrefix(externalPath, "/")))
}

// SaveTemp streams src into a staging file directly under the root and
// returns its physical path. The leaf must already be collision-resistant.
func (l *Local) SaveTemp(src io.Reader, leaf string) (string, error) {
	dst := filepath.Join(l.root, leaf)
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		return "", fmt.Errorf("create staging file: %w", err)
	}
	if _, err = io.Copy(out, src); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return "", fmt.Errorf("write staging file: %w", err)
	}
	if err = out.Close(); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("close staging file: %w", err)
	}

	return dst, nil
}

// MkdirAll is race-tolerant: concurrent uploads may create the same
// destination tree and both must succeed.
func (l *Local) MkdirAll(dir string) error {
	return os.MkdirAll(filepath.FromSlash(dir), dirPerm)
}

// Move places src at dst with all-or-nothing semantics. Same-volume moves
// are a single rename; if the rename is refused (cross-device staging), it
// falls back to copy+fsync+delete, removing the partial destination and
// keeping src intact on any copy failure.
func (l *Local) Move(src, dst string) error {
	src, dst = filepath.FromSlash(src), filepath.FromSlash(dst)
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}
	if _, err = io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return fmt.Errorf("copy to destination: %w", err)
	}
	if err = out.Sync(); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return fmt.Errorf("sync destination: %w", err)
	}
	if err = out.Close(); err != nil {
		_ = os.Remove(dst)
		return fmt.Errorf("close destination: %w", err)
	}

	if err = os.Remove(src); err != nil {
		l.logger.Warn("source left behind after copy", zap.Error(err))
	}

	return nil
}

func (l *Local) Remove(path string) error {
	return os.Remove(filepath.FromSlash(path))
}

func (l *Local) Exists(path string) bool {
	_, err := os.Stat(filepath.FromSlash(path))
	return err == nil
}

// PruneEmpty walks the parent chain upward from dir, removing each
// now-empty directory. The storage root is a hard floor: it is never
// inspected or removed, and neither is anything outside it. A missing dir
// is skipped in favour of its parent, which covers steps that already
// removed it.
func (l *Local) PruneEmpty(dir string) error {
	dir = filepath.Clean(filepath.FromSlash(dir))
	root := filepath.Clean(l.root)

	for dir != root {
		if !strings.HasPrefix(dir, root+string(filepath.Separator)) {
			return nil
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				dir = filepath.Dir(dir)
				continue
			}
			return fmt.Errorf("read dir: %w", err)
		}
		if len(entries) > 0 {
			return nil
		}
		if err = os.Remove(dir); err != nil {
			return fmt.Errorf("remove empty dir: %w", err)
		}

		dir = filepath.Dir(dir)
	}

	return nil
}

// List produces a best-effort directory listing of /-prefixed external
// paths. The "all" selector (case-insensitive) walks the whole root and
// keeps entries nested at least two levels deep, which excludes the
// top-level route directories and any staged temp files sitting at the
// root. Any other selector lists a single level of that subdirectory,
// provided it resolves strictly inside the root. Read failures and
// escaping selectors yield an empty list.
func (l *Local) List(selector string) []string {
	documents := []string{}

	if strings.EqualFold(selector, "all") {
		err := filepath.WalkDir(l.root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			rel, rerr := filepath.Rel(l.root, p)
			if rerr != nil {
				return rerr
			}
			rel = filepath.ToSlash(rel)
			if rel == "." || len(strings.Split(rel, "/")) < 2 {
				return nil
			}
			documents = append(documents, "/"+rel)
			return nil
		})
		if err != nil {
			l.logger.Warn("recursive listing failed", zap.Error(err))
			return []string{}
		}
		return documents
	}

	dir := filepath.Join(l.root, filepath.FromSlash(selector))
	if !strings.HasPrefix(dir, l.root+string(filepath.Separator)) {
		l.logger.Warn("listing selector resolves outside storage root", zap.String("selector", selector))
		return documents
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		l.logger.Warn("listing failed", zap.String("selector", selector), zap.Error(err))
		return documents
	}
	for _, e := range entries {
		documents = append(documents, "/"+selector+"/"+e.Name())
	}

	return documents
}
