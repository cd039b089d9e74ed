package extraction

import "github.com/applyai/resume2job/internal/types"

// Merge combines heuristic extraction with optional LLM extraction.
// The policy is whole-field override, decided per field independently:
// an LLM field replaces the heuristic value only when it is present and
// non-empty, otherwise the heuristic value is retained. Fields are
// never combined element-wise.
func Merge(heuristic types.ResumeFields, llm *types.ResumeFields) types.ResumeFields {
	merged := heuristic
	if llm == nil {
		return merged
	}
	if llm.Name != "" {
		merged.Name = llm.Name
	}
	if len(llm.Skills) > 0 {
		merged.Skills = llm.Skills
	}
	if len(llm.Experience) > 0 {
		merged.Experience = llm.Experience
	}
	if len(llm.Education) > 0 {
		merged.Education = llm.Education
	}
	if len(llm.Emails) > 0 {
		merged.Emails = llm.Emails
	}
	if len(llm.Phones) > 0 {
		merged.Phones = llm.Phones
	}
	return merged
}
