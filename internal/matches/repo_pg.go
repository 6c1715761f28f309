package matches

import (
	"context"
	"database/sql"
	"encoding/json"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Exists reports whether a record already exists for the pair.
func (r *PGRepo) Exists(ctx context.Context, resumeID, jobDescriptionID string) (bool, error) {
	const query = `
SELECT EXISTS (
    SELECT 1 FROM match_records
    WHERE resume_id = $1 AND job_description_id = $2
)`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, resumeID, jobDescriptionID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// CreateIfAbsent inserts a record unless one already exists for the pair.
// The unique constraint on (resume_id, job_description_id) makes this
// safe against concurrent submissions of the same pair.
func (r *PGRepo) CreateIfAbsent(ctx context.Context, rec MatchRecord) (bool, error) {
	const query = `
INSERT INTO match_records (id, resume_id, job_description_id, matching_result, created_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT ON CONSTRAINT match_records_pair_key DO NOTHING`

	payload, err := marshalJSONB(rec.MatchingResult)
	if err != nil {
		return false, err
	}

	res, err := r.DB.ExecContext(ctx, query,
		rec.ID,
		rec.ResumeID,
		rec.JobDescriptionID,
		payload,
		rec.CreatedAt,
	)
	if err != nil {
		return false, err
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return inserted > 0, nil
}

// ListWithDocuments returns all match records joined with document
// metadata, newest first.
func (r *PGRepo) ListWithDocuments(ctx context.Context) ([]RecordWithDocuments, error) {
	const query = `
SELECT m.id, m.matching_result, m.created_at,
       r.id, r.title, r.filename,
       j.id, j.title, j.filename
FROM match_records m
JOIN documents r ON r.id = m.resume_id
JOIN documents j ON j.id = m.job_description_id
ORDER BY m.created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RecordWithDocuments
	for rows.Next() {
		var rec RecordWithDocuments
		var resultRaw []byte
		if err := rows.Scan(
			&rec.ID,
			&resultRaw,
			&rec.CreatedAt,
			&rec.Resume.ID,
			&rec.Resume.Title,
			&rec.Resume.Filename,
			&rec.JobDescription.ID,
			&rec.JobDescription.Title,
			&rec.JobDescription.Filename,
		); err != nil {
			return nil, err
		}
		if len(resultRaw) > 0 {
			if err := json.Unmarshal(resultRaw, &rec.MatchingResult); err != nil {
				return nil, err
			}
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func marshalJSONB(v any) ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}

var _ Repo = (*PGRepo)(nil)
