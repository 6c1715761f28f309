package matcher

// ResumeData is the scored summary the service extracts for a resume.
// All fields are optional; the service omits what it cannot parse.
type ResumeData struct {
	Name               string
	Email              string
	Experience         string
	Skills             []string
	Designation        string
	Degree             string
	CompanyNames       []string
	MatchingPercentage string
}

// ParseResult pulls the resume summary out of a raw gateway payload.
// The payload is an array whose first element holds a "Resume Data"
// object. Extraction is lenient; anything missing or of the wrong
// shape reports ok=false.
func ParseResult(payload any) (ResumeData, bool) {
	items, ok := payload.([]any)
	if !ok || len(items) == 0 {
		return ResumeData{}, false
	}
	first, ok := items[0].(map[string]any)
	if !ok {
		return ResumeData{}, false
	}
	data, ok := first["Resume Data"].(map[string]any)
	if !ok {
		return ResumeData{}, false
	}
	return ResumeData{
		Name:               stringField(data, "Name"),
		Email:              stringField(data, "Email"),
		Experience:         stringField(data, "Experience"),
		Skills:             stringList(data, "Skills"),
		Designation:        stringField(data, "Designation"),
		Degree:             stringField(data, "Degree"),
		CompanyNames:       stringList(data, "Company Names"),
		MatchingPercentage: stringField(data, "Matching Percentage"),
	}, true
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func stringList(m map[string]any, key string) []string {
	raw, ok := m[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
