package ports

import "context"

// VersionControl reads revision information about the working tree.
//
//go:generate mockgen -source=vcs.go -destination=mocks/mock_vcs.go -package=mocks
type VersionControl interface {
	// Revision returns the identifier of the checked out revision.
	Revision(ctx context.Context) (string, error)
	// Branch returns the name of the current branch.
	Branch(ctx context.Context) (string, error)
}
