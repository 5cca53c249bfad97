package domain

import "strings"

// EducationLevel orders education tiers from none up to doctorate. The scorer
// compares the candidate's highest detected tier against the job requirement.
type EducationLevel int

const (
	EducationNone EducationLevel = iota
	EducationHighSchool
	EducationBachelor
	EducationMaster
	EducationDoctorate
)

var educationNames = map[EducationLevel]string{
	EducationNone:       "none",
	EducationHighSchool: "highschool",
	EducationBachelor:   "bachelor",
	EducationMaster:     "master",
	EducationDoctorate:  "doctorate",
}

func (l EducationLevel) String() string {
	if name, ok := educationNames[l]; ok {
		return name
	}
	return "none"
}

// ParseEducationLevel maps a configured requirement string to its tier.
// Unknown or empty values mean "no requirement".
func ParseEducationLevel(s string) EducationLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "highschool", "high school":
		return EducationHighSchool
	case "bachelor", "university":
		return EducationBachelor
	case "master", "graduate":
		return EducationMaster
	case "doctorate", "phd":
		return EducationDoctorate
	default:
		return EducationNone
	}
}

// Keyword tables for mapping free-text education lines to tiers. Checked from
// the highest tier down so "Master of Science, University of X" resolves to
// master, not bachelor.
var educationTierKeywords = []struct {
	level    EducationLevel
	keywords []string
}{
	{EducationDoctorate, []string{"doctorate", "doctoral", "ph.d", "phd", "博士"}},
	{EducationMaster, []string{"master", "mba", "m.sc", "修士", "大学院"}},
	{EducationBachelor, []string{"bachelor", "b.sc", "b.a", "university", "学士", "大学"}},
	{EducationHighSchool, []string{"high school", "highschool", "高校", "高等学校"}},
}

// HighestEducationLevel scans education lines for degree keywords and returns
// the highest tier found. Lines with no recognizable degree contribute nothing.
func HighestEducationLevel(education []string) EducationLevel {
	highest := EducationNone
	for _, line := range education {
		lower := strings.ToLower(line)
		for _, tier := range educationTierKeywords {
			if tier.level <= highest {
				continue
			}
			for _, kw := range tier.keywords {
				if strings.Contains(lower, kw) {
					highest = tier.level
					break
				}
			}
		}
	}
	return highest
}

// JobProfile is the per-position requirement set. Loaded before analysis and
// read-only while any analysis runs.
type JobProfile struct {
	Title                string             `json:"title" mapstructure:"title" validate:"required"`
	Department           string             `json:"department,omitempty" mapstructure:"department"`
	RequiredSkills       map[string]float64 `json:"required_skills" mapstructure:"required_skills"`
	PreferredSkills      []string           `json:"preferred_skills,omitempty" mapstructure:"preferred_skills"`
	MinExperienceYears   int                `json:"min_experience_years" mapstructure:"min_experience_years" validate:"gte=0"`
	EducationRequirement string             `json:"education_requirement" mapstructure:"education_requirement"`
}

// RequiredEducation resolves the configured requirement string to a tier.
func (j JobProfile) RequiredEducation() EducationLevel {
	return ParseEducationLevel(j.EducationRequirement)
}

// CompanyProfile carries the culture side of the evaluation. Same lifecycle as
// JobProfile.
type CompanyProfile struct {
	Name            string             `json:"name" mapstructure:"name" validate:"required"`
	Mission         string             `json:"mission,omitempty" mapstructure:"mission"`
	Values          []string           `json:"values,omitempty" mapstructure:"values"`
	CultureKeywords map[string]float64 `json:"culture_keywords" mapstructure:"culture_keywords"`
	WorkStyle       []string           `json:"work_style,omitempty" mapstructure:"work_style"`
}

// ProfileRepository is the read side of the profile store. Implementations
// load everything once at startup; lookups never touch I/O afterwards.
type ProfileRepository interface {
	Company() CompanyProfile
	Job(title string) (JobProfile, error)
	Jobs() []JobProfile
}
