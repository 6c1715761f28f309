package matches

import "time"

// MatchRecord is the stored outcome of scoring one resume against one
// job description. At most one record exists per pair.
type MatchRecord struct {
	ID               string    `json:"id"`
	ResumeID         string    `json:"resumeId"`
	JobDescriptionID string    `json:"jobDescriptionId"`
	MatchingResult   any       `json:"matchingResult"`
	CreatedAt        time.Time `json:"createdAt"`
}

// DocumentRef carries the minimal document metadata joined into listings.
type DocumentRef struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Filename string `json:"filename"`
}

// RecordWithDocuments is a match record joined with resume and
// job-description metadata for read surfaces.
type RecordWithDocuments struct {
	ID             string      `json:"id"`
	Resume         DocumentRef `json:"resume"`
	JobDescription DocumentRef `json:"jobDescription"`
	MatchingResult any         `json:"matchingResult"`
	CreatedAt      time.Time   `json:"createdAt"`
}
