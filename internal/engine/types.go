package engine

// --- Analysis tool types ---

// ProfileSkill mirrors one extracted skill in tool input.
type ProfileSkill struct {
	Name     string `json:"name" jsonschema:"Canonical skill name (e.g. python, machine learning)"`
	Category string `json:"category,omitempty" jsonschema:"Taxonomy category; derived from the taxonomy when omitted"`
}

// ProfileExperience mirrors one experience entry in tool input.
type ProfileExperience struct {
	Title       string `json:"title" jsonschema:"Job title (e.g. Senior Backend Engineer)"`
	Company     string `json:"company,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty" jsonschema:"Free-text description of the role"`
}

// ProfileEducation mirrors one education entry in tool input.
type ProfileEducation struct {
	Degree      string `json:"degree" jsonschema:"Degree name (e.g. Bachelor of Science)"`
	Institution string `json:"institution,omitempty"`
	Field       string `json:"field,omitempty"`
	Date        string `json:"date,omitempty"`
}

// ProfileInput is the optional structured profile from an external extractor.
// Any section may be missing; the engine scores degraded profiles.
type ProfileInput struct {
	Name           string              `json:"name,omitempty"`
	Email          string              `json:"email,omitempty"`
	Phone          string              `json:"phone,omitempty"`
	Skills         []ProfileSkill      `json:"skills,omitempty"`
	Experience     []ProfileExperience `json:"experience,omitempty"`
	Education      []ProfileEducation  `json:"education,omitempty"`
	Certifications []string            `json:"certifications,omitempty"`
}

// AnalyzeInput is the input for resume_analyze and ats_report.
type AnalyzeInput struct {
	Resume         string        `json:"resume" jsonschema:"Raw resume text"`
	JobDescription string        `json:"job_description" jsonschema:"Raw job description text"`
	Profile        *ProfileInput `json:"profile,omitempty" jsonschema:"Structured profile from an external extractor; a degraded profile is derived from the resume text when omitted"`
	Label          string        `json:"label,omitempty" jsonschema:"Label for history entries and report headings (e.g. a file name)"`
}

// CompareResume is one resume in a resume_compare request.
type CompareResume struct {
	ID      string        `json:"id" jsonschema:"Identifier for this resume in the ranking (e.g. a file name)"`
	Resume  string        `json:"resume" jsonschema:"Raw resume text"`
	Profile *ProfileInput `json:"profile,omitempty"`
}

// CompareInput is the input for resume_compare.
type CompareInput struct {
	Resumes        []CompareResume `json:"resumes" jsonschema:"Two or more resumes to rank against the same job description"`
	JobDescription string          `json:"job_description" jsonschema:"Raw job description text"`
}

// IndustryDetectInput is the input for industry_detect.
type IndustryDetectInput struct {
	JobDescription string `json:"job_description" jsonschema:"Raw job description text"`
}

// KeywordSuggestInput is the input for keyword_suggest.
type KeywordSuggestInput struct {
	Resume         string `json:"resume" jsonschema:"Raw resume text"`
	JobDescription string `json:"job_description" jsonschema:"Raw job description text"`
	Limit          int    `json:"limit,omitempty" jsonschema:"Maximum keywords to return (default 10)"`
}

// KeywordSuggestOutput is the output for keyword_suggest.
type KeywordSuggestOutput struct {
	Industry string   `json:"industry"`
	Keywords []string `json:"keywords"`
}

// ReportOutput is the output for ats_report.
type ReportOutput struct {
	Label        string `json:"label"`
	OverallScore int    `json:"overall_score"`
	Report       string `json:"report"`
}

// HistoryListInput is the input for analysis_history_list.
type HistoryListInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Maximum entries to return (default 20)"`
}
