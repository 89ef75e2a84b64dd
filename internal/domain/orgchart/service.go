package orgchart

import "context"

// DefaultDepth is used when the caller does not bound the tree.
const DefaultDepth = 3

// Service materializes the organization chart. The directory service owns
// the traversal and depth truncation; the assembler only re-maps the tree.
type Service interface {
	// GetOrgChart returns the hierarchy rooted at rootID (empty string means
	// top of hierarchy), at most depth levels deep.
	GetOrgChart(ctx context.Context, rootID string, depth int) (*Node, error)
}
