package git

import (
	"context"
	"strings"
)

// GetRepositoryInfo returns the repository root, origin remote, and
// clean flag. A missing remote is a valid outcome, not an error.
func (o *Operations) GetRepositoryInfo(ctx context.Context) (*RepositoryInfo, error) {
	root, err := o.run(ctx, "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, err
	}

	info := &RepositoryInfo{
		Root: strings.TrimSpace(root),
	}

	// No origin configured exits non-zero; map that to an empty
	// remote rather than failing.
	remote, code, err := o.runTolerant(ctx, "remote", "get-url", "origin")
	if err != nil {
		return nil, err
	}
	if code == 0 {
		info.Remote = strings.TrimSpace(remote)
	}

	clean, err := o.IsWorkingDirectoryClean(ctx)
	if err != nil {
		return nil, err
	}
	info.IsClean = clean

	return info, nil
}
