// Package types defines the structured CV record shared across the pipeline.
package types

import "encoding/json"

// PersonalInfo holds the identity section extracted from a CV.
type PersonalInfo struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Tagline  string `json:"tagline"`
	Bio      string `json:"bio"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

// Links holds social and professional URLs found in a CV.
type Links struct {
	LinkedIn string   `json:"linkedin,omitempty"`
	GitHub   string   `json:"github,omitempty"`
	Website  string   `json:"website,omitempty"`
	Other    []string `json:"other,omitempty"`
}

// Experience is a single work history entry.
type Experience struct {
	Company     string   `json:"company"`
	Role        string   `json:"role"`
	Period      string   `json:"period"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights,omitempty"`
}

// Project is a single project entry.
type Project struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	TechStack   []string `json:"tech_stack,omitempty"`
	Link        string   `json:"link,omitempty"`
	Type        string   `json:"type,omitempty"`
}

// Education is a single education entry.
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Period      string `json:"period"`
}

// Skills groups skill names by category.
type Skills struct {
	Languages   []string `json:"languages,omitempty"`
	Frameworks  []string `json:"frameworks,omitempty"`
	Tools       []string `json:"tools,omitempty"`
	Specialties []string `json:"specialties,omitempty"`
}

// CVData is the normalized output of CV analysis and the sole input to page
// generation. When structured parsing of the model output fails, RawAnalysis
// holds the unparsed text and all structured fields stay empty; the two
// states are mutually exclusive. OriginalText always retains the source CV
// text for later cross-checking.
type CVData struct {
	Personal        PersonalInfo `json:"personal"`
	Links           Links        `json:"links"`
	Experience      []Experience `json:"experience,omitempty"`
	Projects        []Project    `json:"projects,omitempty"`
	Education       []Education  `json:"education,omitempty"`
	Skills          Skills       `json:"skills"`
	Certifications  []string     `json:"certifications,omitempty"`
	LanguagesSpoken []string     `json:"languages_spoken,omitempty"`

	RawAnalysis  string `json:"raw_analysis,omitempty"`
	OriginalText string `json:"-"`
}

// IsStructured reports whether the record carries parsed data rather than a
// raw-analysis fallback.
func (d *CVData) IsStructured() bool {
	return d.RawAnalysis == ""
}

// FromMap builds a CVData from a parsed JSON object, attaching the original
// CV text. Unknown keys in the object are ignored.
func FromMap(obj map[string]any, cvText string) (*CVData, error) {
	raw, err := json.Marshal(obj)
	if err != nil {
		return nil, err
	}

	var data CVData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}

	data.OriginalText = cvText
	return &data, nil
}

// ToJSON renders the record as pretty-printed JSON with non-ASCII characters
// preserved. Used both for the debug artifact and the generation prompt.
func (d *CVData) ToJSON() (string, error) {
	raw, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
