package git

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// DetachedHead is the sentinel branch name reported in detached-HEAD
// state.
const DetachedHead = "HEAD"

// GetCurrentBranch returns the checked-out branch and its upstream
// tracking state. A repository without an upstream is not an error;
// Tracking is simply false with zero ahead/behind counts.
func (o *Operations) GetCurrentBranch(ctx context.Context) (*BranchInfo, error) {
	current, err := o.run(ctx, "branch", "--show-current")
	if err != nil {
		return nil, err
	}
	current = strings.TrimSpace(current)
	if current == "" {
		current = DetachedHead
	}

	info := &BranchInfo{Current: current}

	// @{u} resolution fails when no upstream is configured; that is
	// the expected "not tracking" outcome.
	upstream, code, err := o.runTolerant(ctx, "rev-parse", "--abbrev-ref", "@{u}")
	if err != nil {
		return nil, err
	}
	if code != 0 {
		return info, nil
	}

	info.Upstream = strings.TrimSpace(upstream)
	info.Tracking = true

	counts, err := o.run(ctx, "rev-list", "--left-right", "--count", info.Upstream+"...HEAD")
	if err != nil {
		return nil, err
	}
	behind, ahead, err := parseAheadBehind(counts)
	if err != nil {
		return nil, err
	}
	info.CommitsBehind = behind
	info.CommitsAhead = ahead

	return info, nil
}

// IsTrackingUpstream reports whether the current branch has an
// upstream configured.
func (o *Operations) IsTrackingUpstream(ctx context.Context) (bool, error) {
	_, code, err := o.runTolerant(ctx, "rev-parse", "--abbrev-ref", "@{u}")
	if err != nil {
		return false, err
	}
	return code == 0, nil
}

// parseAheadBehind parses `rev-list --left-right --count` output.
// With upstream on the left of the range, the columns are
// behind<TAB>ahead in that order.
func parseAheadBehind(out string) (behind, ahead int, err error) {
	parts := strings.Fields(strings.TrimSpace(out))
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("unexpected rev-list count output: %q", out)
	}
	behind, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid behind count: %w", err)
	}
	ahead, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid ahead count: %w", err)
	}
	return behind, ahead, nil
}
