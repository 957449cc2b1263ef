// Package artifact builds and parses tracked artifact addresses.
package artifact

import (
	"fmt"
	"strings"
)

// Address returns the fully qualified address of a tracked artifact,
// in the form project/name:tag.
func Address(project, name, tag string) string {
	return project + "/" + name + ":" + tag
}

// Parse splits a fully qualified artifact address back into its
// project, name, and tag parts.
func Parse(addr string) (project, name, tag string, err error) {
	rest, tag, ok := strings.Cut(addr, ":")
	if !ok || tag == "" {
		return "", "", "", fmt.Errorf("artifact address %q: missing tag", addr)
	}
	project, name, ok = strings.Cut(rest, "/")
	if !ok || project == "" || name == "" {
		return "", "", "", fmt.Errorf("artifact address %q: want project/name:tag", addr)
	}
	return project, name, tag, nil
}
