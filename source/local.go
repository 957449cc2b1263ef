package source

import (
	"context"
	"fmt"
	"path/filepath"
)

// LocalResolver resolves path references against the working tree root.
type LocalResolver struct {
	Root string
}

// Resolve joins the reference path onto the root and verifies it is a
// runnable component.
func (l *LocalResolver) Resolve(_ context.Context, ref Reference) (string, error) {
	if ref.Path == "" {
		return "", fmt.Errorf("local resolver: reference has no path")
	}
	dir := ref.Path
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(l.Root, dir)
	}
	if err := verifyProject(dir); err != nil {
		return "", err
	}
	return dir, nil
}
