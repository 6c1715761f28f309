package submission

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"skillmatrix-backend/internal/documents"
	"skillmatrix-backend/internal/events"
	"skillmatrix-backend/internal/matcher"
	"skillmatrix-backend/internal/matches"
	"skillmatrix-backend/internal/shared/telemetry"
)

var (
	ErrNoResumes         = errors.New("at least one resume file is required")
	ErrNoJobDescriptions = errors.New("at least one job description file is required")
)

// Upload is one file received in a submission batch.
type Upload struct {
	Filename string
	Content  []byte
}

// PairResult is the outcome of scoring one resume against one job
// description within a batch.
type PairResult struct {
	Resume         string `json:"resume"`
	JobDescription string `json:"jobDescription"`
	MatchingResult any    `json:"matchingResult"`
}

// DocumentStore persists uploaded documents.
type DocumentStore interface {
	Create(ctx context.Context, kind documents.Kind, filename string, content []byte) (documents.Document, error)
}

// Gateway scores a resume against a job description.
type Gateway interface {
	Match(ctx context.Context, resume, jobDescription matcher.FilePayload) (payload any, ok bool, err error)
}

// Service orchestrates a submission batch: persist the documents, score
// every new resume/job-description pair, store the results and push
// them to live subscribers.
type Service struct {
	Documents DocumentStore
	Matches   matches.Repo
	Gateway   Gateway
	Publisher events.Publisher
}

// Submit processes one batch. Document persistence failures abort the
// whole batch; per-pair gateway failures are logged and the pair is
// skipped. The returned results cover only pairs scored in this batch.
func (s *Service) Submit(ctx context.Context, resumes, jobDescriptions []Upload) ([]PairResult, error) {
	if len(resumes) == 0 {
		return nil, ErrNoResumes
	}
	if len(jobDescriptions) == 0 {
		return nil, ErrNoJobDescriptions
	}

	resumeDocs := make([]documents.Document, 0, len(resumes))
	for _, up := range resumes {
		doc, err := s.Documents.Create(ctx, documents.KindResume, up.Filename, up.Content)
		if err != nil {
			return nil, err
		}
		resumeDocs = append(resumeDocs, doc)
	}

	// Duplicate job description filenames within a batch collapse to the
	// first occurrence.
	jdDocs := make([]documents.Document, 0, len(jobDescriptions))
	seen := make(map[string]bool, len(jobDescriptions))
	for _, up := range jobDescriptions {
		if seen[up.Filename] {
			continue
		}
		seen[up.Filename] = true
		doc, err := s.Documents.Create(ctx, documents.KindJobDescription, up.Filename, up.Content)
		if err != nil {
			return nil, err
		}
		jdDocs = append(jdDocs, doc)
	}

	var results []PairResult
	for _, resume := range resumeDocs {
		for _, jd := range jdDocs {
			result, scored, err := s.scorePair(ctx, resume, jd)
			if err != nil {
				return nil, err
			}
			if scored {
				results = append(results, result)
			}
		}
	}
	return results, nil
}

// scorePair scores one pair unless a record already exists. Gateway
// failures and empty gateway payloads skip the pair; match store
// failures abort the batch.
func (s *Service) scorePair(ctx context.Context, resume, jd documents.Document) (PairResult, bool, error) {
	exists, err := s.Matches.Exists(ctx, resume.ID, jd.ID)
	if err != nil {
		return PairResult{}, false, fmt.Errorf("check pair %s/%s: %w", resume.ID, jd.ID, err)
	}
	if exists {
		return PairResult{}, false, nil
	}

	payload, ok, err := s.Gateway.Match(ctx,
		matcher.FilePayload{Filename: resume.Filename, Content: resume.Content},
		matcher.FilePayload{Filename: jd.Filename, Content: jd.Content},
	)
	if err != nil {
		s.logPairFailure(resume, jd, err)
		return PairResult{}, false, nil
	}
	if !ok {
		s.logPairFailure(resume, jd, errors.New("response carried no result"))
		return PairResult{}, false, nil
	}

	rec := matches.MatchRecord{
		ID:               uuid.NewString(),
		ResumeID:         resume.ID,
		JobDescriptionID: jd.ID,
		MatchingResult:   payload,
		CreatedAt:        time.Now().UTC(),
	}
	inserted, err := s.Matches.CreateIfAbsent(ctx, rec)
	if err != nil {
		return PairResult{}, false, fmt.Errorf("store pair %s/%s: %w", resume.ID, jd.ID, err)
	}
	// A concurrent submission won the insert; its path publishes the
	// update, so this one stays silent.
	if !inserted {
		return PairResult{}, false, nil
	}

	s.Publisher.Publish(events.Event{
		Name: events.EventMatchUpdated,
		Data: matches.RecordWithDocuments{
			ID:             rec.ID,
			Resume:         matches.DocumentRef{ID: resume.ID, Title: resume.Title, Filename: resume.Filename},
			JobDescription: matches.DocumentRef{ID: jd.ID, Title: jd.Title, Filename: jd.Filename},
			MatchingResult: rec.MatchingResult,
			CreatedAt:      rec.CreatedAt,
		},
	})

	if data, parsed := matcher.ParseResult(payload); parsed {
		telemetry.Info("submission.pair_scored", map[string]any{
			"resume":              resume.Filename,
			"job_description":     jd.Filename,
			"candidate":           data.Name,
			"matching_percentage": data.MatchingPercentage,
		})
	}

	return PairResult{
		Resume:         resume.Filename,
		JobDescription: jd.Filename,
		MatchingResult: payload,
	}, true, nil
}

func (s *Service) logPairFailure(resume, jd documents.Document, err error) {
	telemetry.Error("submission.pair_skipped", map[string]any{
		"resume":          resume.Filename,
		"job_description": jd.Filename,
		"error":           err.Error(),
	})
}
