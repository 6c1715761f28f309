package matcher

import "testing"

func TestParseResultExtractsKnownFields(t *testing.T) {
	payload := []any{map[string]any{
		"Resume Data": map[string]any{
			"Name":                "Alice",
			"Email":               "alice@example.com",
			"Experience":          "4 years",
			"Skills":              []any{"Go", "SQL"},
			"Designation":         "Backend Engineer",
			"Degree":              "BSc",
			"Company Names":       []any{"Acme"},
			"Matching Percentage": "87%",
		},
	}}

	data, ok := ParseResult(payload)
	if !ok {
		t.Fatal("ok = false")
	}
	if data.Name != "Alice" || data.MatchingPercentage != "87%" {
		t.Errorf("data = %+v", data)
	}
	if len(data.Skills) != 2 || data.Skills[0] != "Go" {
		t.Errorf("skills = %v", data.Skills)
	}
	if len(data.CompanyNames) != 1 || data.CompanyNames[0] != "Acme" {
		t.Errorf("companies = %v", data.CompanyNames)
	}
}

func TestParseResultTolerantOfShape(t *testing.T) {
	cases := []struct {
		name    string
		payload any
	}{
		{"nil", nil},
		{"not an array", map[string]any{"Resume Data": map[string]any{}}},
		{"empty array", []any{}},
		{"element not an object", []any{"text"}},
		{"resume data missing", []any{map[string]any{"Score": 1.0}}},
		{"resume data wrong type", []any{map[string]any{"Resume Data": "n/a"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := ParseResult(tc.payload); ok {
				t.Errorf("ok = true for %v", tc.payload)
			}
		})
	}
}

func TestParseResultSkipsNonStringListEntries(t *testing.T) {
	payload := []any{map[string]any{
		"Resume Data": map[string]any{
			"Skills": []any{"Go", 3.14, "SQL"},
		},
	}}

	data, ok := ParseResult(payload)
	if !ok {
		t.Fatal("ok = false")
	}
	if len(data.Skills) != 2 {
		t.Errorf("skills = %v, want the two string entries", data.Skills)
	}
}
