package matches

import (
	"context"
	"sync"
)

// DocumentLookup resolves the metadata of a referenced document.
type DocumentLookup func(ctx context.Context, id string) (DocumentRef, error)

type pairKey struct {
	resumeID         string
	jobDescriptionID string
}

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu     sync.Mutex
	byPair map[pairKey]MatchRecord
	order  []pairKey // insertion order
	lookup DocumentLookup
}

// NewMemoryRepo constructs a MemoryRepo. The lookup is used to join
// document metadata into listings.
func NewMemoryRepo(lookup DocumentLookup) *MemoryRepo {
	return &MemoryRepo{
		byPair: make(map[pairKey]MatchRecord),
		lookup: lookup,
	}
}

// Exists reports whether a record already exists for the pair.
func (r *MemoryRepo) Exists(ctx context.Context, resumeID, jobDescriptionID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.byPair[pairKey{resumeID, jobDescriptionID}]
	return ok, nil
}

// CreateIfAbsent inserts a record unless one already exists for the pair.
// The mutex makes the check-and-insert atomic.
func (r *MemoryRepo) CreateIfAbsent(ctx context.Context, rec MatchRecord) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	key := pairKey{rec.ResumeID, rec.JobDescriptionID}
	if _, ok := r.byPair[key]; ok {
		return false, nil
	}
	r.byPair[key] = rec
	r.order = append(r.order, key)
	return true, nil
}

// ListWithDocuments returns all records joined with document metadata,
// newest first.
func (r *MemoryRepo) ListWithDocuments(ctx context.Context) ([]RecordWithDocuments, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	recs := make([]MatchRecord, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		recs = append(recs, r.byPair[r.order[i]])
	}
	r.mu.Unlock()

	out := make([]RecordWithDocuments, 0, len(recs))
	for _, rec := range recs {
		joined := RecordWithDocuments{
			ID:             rec.ID,
			MatchingResult: rec.MatchingResult,
			CreatedAt:      rec.CreatedAt,
		}
		if r.lookup != nil {
			if ref, err := r.lookup(ctx, rec.ResumeID); err == nil {
				joined.Resume = ref
			} else {
				joined.Resume = DocumentRef{ID: rec.ResumeID}
			}
			if ref, err := r.lookup(ctx, rec.JobDescriptionID); err == nil {
				joined.JobDescription = ref
			} else {
				joined.JobDescription = DocumentRef{ID: rec.JobDescriptionID}
			}
		} else {
			joined.Resume = DocumentRef{ID: rec.ResumeID}
			joined.JobDescription = DocumentRef{ID: rec.JobDescriptionID}
		}
		out = append(out, joined)
	}
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
