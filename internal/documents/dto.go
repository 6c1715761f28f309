package documents

type localResume struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
}

type localResumesResponse struct {
	Resumes []localResume `json:"resumes"`
}
