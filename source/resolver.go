// Package source resolves pipeline component references to local directories.
package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// projectFile marks a directory as a runnable component.
const projectFile = "MLproject"

// Reference identifies an external pipeline component, either as a path
// under the working tree or as a git repository coordinate.
type Reference struct {
	Path       string // local directory, relative to the working tree
	Repository string // git URL, mutually exclusive with Path
	Subdir     string // component directory inside the repository
	Version    string // git ref to check out
}

// IsLocal reports whether the reference points into the working tree.
func (r Reference) IsLocal() bool { return r.Path != "" }

// String renders the reference for logs and the run ledger.
func (r Reference) String() string {
	if r.IsLocal() {
		return r.Path
	}
	s := r.Repository
	if r.Subdir != "" {
		s += "#" + r.Subdir
	}
	if r.Version != "" {
		s += "@" + r.Version
	}
	return s
}

// Resolver turns a component reference into a local directory holding a
// project file.
type Resolver interface {
	Resolve(ctx context.Context, ref Reference) (string, error)
}

// DirResolver dispatches local references to the working tree and git
// references to a clone cache.
type DirResolver struct {
	local *LocalResolver
	git   *GitResolver
}

// NewResolver creates a resolver rooted at the working tree, with git
// checkouts cached under cacheDir.
func NewResolver(root, cacheDir string) *DirResolver {
	return &DirResolver{
		local: &LocalResolver{Root: root},
		git:   &GitResolver{CacheDir: cacheDir},
	}
}

// Resolve returns the local directory for the referenced component.
func (d *DirResolver) Resolve(ctx context.Context, ref Reference) (string, error) {
	if ref.IsLocal() {
		return d.local.Resolve(ctx, ref)
	}
	return d.git.Resolve(ctx, ref)
}

// verifyProject checks that dir exists and contains a project file.
func verifyProject(dir string) error {
	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("component directory %s: %w", dir, err)
	}
	if _, err := os.Stat(filepath.Join(dir, projectFile)); err != nil {
		return fmt.Errorf("component %s has no %s file: %w", dir, projectFile, err)
	}
	return nil
}
