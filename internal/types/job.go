package types

// JobListing is a job posting as delivered by a jobs source. Listings
// created through older recruiter tooling may carry `skills` instead of
// `skills_required` and `employment` instead of `employment_type`; the
// ranker resolves those fallbacks before scoring. JSON unmarshaling is
// case-insensitive, so both `recruiterId` and `recruiterID` land in
// RecruiterID.
type JobListing struct {
	JobID              string   `json:"job_id,omitempty" validate:"-"`
	ID                 string   `json:"id,omitempty"`
	Title              string   `json:"title" validate:"required"`
	Company            string   `json:"company" validate:"required"`
	Description        string   `json:"description,omitempty"`
	SkillsRequired     []string `json:"skills_required,omitempty"`
	Skills             []string `json:"skills,omitempty"`
	ExperienceRequired []string `json:"experience_required,omitempty"`
	EducationRequired  []string `json:"education_required,omitempty"`
	Location           string   `json:"location,omitempty"`
	EmploymentType     string   `json:"employment_type,omitempty"`
	Employment         string   `json:"employment,omitempty"`
	Link               string   `json:"link,omitempty" validate:"omitempty,url"`
	RecruiterID        string   `json:"recruiterId,omitempty"`
}

// ScoredJob is a JobListing augmented with compatibility scoring. All
// original listing fields are preserved; scoring never mutates the input.
type ScoredJob struct {
	JobListing

	Compatibility float64  `json:"compatibility"`
	SkillScore    float64  `json:"skill_score"`
	ExpScore      float64  `json:"exp_score"`
	EduScore      float64  `json:"edu_score"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
	Reason        string   `json:"reason,omitempty"`
	LLMReason     string   `json:"llm_reason,omitempty"`
}

// MatchResponse is the result of the match operation. Fallback signals
// that heuristic-only or manually supplied data was used; Error set with
// empty Matches signals a terminal extraction failure.
type MatchResponse struct {
	Matches    []ScoredJob `json:"matches"`
	ResumeData *ResumeData `json:"resume_data,omitempty"`
	Fallback   bool        `json:"fallback"`
	Error      string      `json:"error,omitempty"`
}
