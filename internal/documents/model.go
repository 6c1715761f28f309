package documents

import "time"

// Kind distinguishes the two document types handled by the intake flow.
type Kind string

const (
	KindResume         Kind = "resume"
	KindJobDescription Kind = "job_description"
)

// MirrorDir returns the upload-mirror directory for the kind.
func (k Kind) MirrorDir() string {
	if k == KindJobDescription {
		return "job_descriptions"
	}
	return "resumes"
}

// Document is an uploaded resume or job description. Documents are
// immutable once created; re-uploads create new records.
type Document struct {
	ID        string
	Kind      Kind
	Title     string
	Filename  string
	Content   []byte
	Pages     int
	SizeBytes int64
	CreatedAt time.Time
}
