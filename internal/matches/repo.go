package matches

import "context"

// Repo defines persistence operations for match records.
//
// CreateIfAbsent is the authoritative guard for the one-record-per-pair
// invariant: the Postgres implementation backs it with a unique
// constraint, so concurrent submissions of the same pair cannot both
// insert. Exists is a cheap pre-check callers use to avoid pointless
// gateway calls; it is advisory, not the enforcement point.
type Repo interface {
	Exists(ctx context.Context, resumeID, jobDescriptionID string) (bool, error)
	CreateIfAbsent(ctx context.Context, rec MatchRecord) (inserted bool, err error)
	ListWithDocuments(ctx context.Context) ([]RecordWithDocuments, error)
}
