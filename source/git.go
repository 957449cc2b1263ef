package source

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// GitResolver clones component repositories into a local cache and returns
// checked-out component directories. Each repository@version pair gets its
// own cache entry, so a pinned version is fetched at most once.
type GitResolver struct {
	CacheDir string
}

// Resolve clones (or reuses) the repository, checks out the requested
// version, and returns the component directory inside the checkout.
func (g *GitResolver) Resolve(ctx context.Context, ref Reference) (string, error) {
	if ref.Repository == "" {
		return "", fmt.Errorf("git resolver: reference has no repository")
	}

	target := filepath.Join(g.CacheDir, cacheKey(ref.Repository, ref.Version))

	repo, err := g.openOrClone(ctx, ref.Repository, target)
	if err != nil {
		return "", err
	}

	if ref.Version != "" {
		if err := checkout(repo, ref.Version); err != nil {
			return "", fmt.Errorf("checking out %s of %s: %w", ref.Version, ref.Repository, err)
		}
	}

	dir := target
	if ref.Subdir != "" {
		dir = filepath.Join(target, ref.Subdir)
	}
	if err := verifyProject(dir); err != nil {
		return "", err
	}
	return dir, nil
}

func (g *GitResolver) openOrClone(ctx context.Context, url, target string) (*git.Repository, error) {
	if _, err := os.Stat(filepath.Join(target, ".git")); err == nil {
		repo, err := git.PlainOpen(target)
		if err != nil {
			return nil, fmt.Errorf("opening cached clone %s: %w", target, err)
		}
		return repo, nil
	}

	if err := os.MkdirAll(g.CacheDir, 0755); err != nil {
		return nil, fmt.Errorf("creating component cache: %w", err)
	}

	repo, err := git.PlainCloneContext(ctx, target, false, &git.CloneOptions{URL: url})
	if err != nil {
		return nil, fmt.Errorf("cloning %s: %w", url, err)
	}
	return repo, nil
}

func checkout(repo *git.Repository, version string) error {
	hash, err := repo.ResolveRevision(plumbing.Revision(version))
	if err != nil {
		return err
	}
	wt, err := repo.Worktree()
	if err != nil {
		return err
	}
	return wt.Checkout(&git.CheckoutOptions{Hash: *hash})
}

// cacheKey derives a stable directory name for a repository@version pair.
func cacheKey(url, version string) string {
	sum := sha256.Sum256([]byte(url + "@" + version))
	return hex.EncodeToString(sum[:8])
}
