package form

import "context"

// UniqueKey is one alternate-identity lookup pair for duplicate detection.
type UniqueKey struct {
	Field string
	Value string
}

// SubmissionRepo mediates access to the single logical collection backing
// one form type.
type SubmissionRepo interface {
	// FindByAny returns an existing submission matching ANY one of the
	// given keys, or nil when there is none.
	FindByAny(ctx context.Context, keys []UniqueKey) (*Submission, error)

	// Insert stores a new submission. Submissions are never updated or
	// deleted afterwards.
	Insert(ctx context.Context, subm Submission) error
}
