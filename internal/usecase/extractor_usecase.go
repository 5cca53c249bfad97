package usecase

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"go-hr-screening/internal/domain"
)

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	namePattern = regexp.MustCompile(`(?m)^\s*(?:Name|氏名|名前|姓名)[：:]\s*(.+)$`)

	// Year counts are only trusted next to an experience keyword, in either
	// language. Ordered: the first matching pattern wins.
	experiencePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d{1,2})\+?\s*(?:years?|yrs?)(?:\s+of)?(?:\s+\w+){0,2}\s+experience`),
		regexp.MustCompile(`(?i)experience\s*[：:]?\s*(\d{1,2})\+?\s*(?:years?|yrs?)`),
		regexp.MustCompile(`(?:実務経験|経験年数|経験)\s*[：:]?\s*(\d{1,2})\s*年`),
		regexp.MustCompile(`(\d{1,2})\s*年(?:以上)?の(?:実務)?経験`),
	}
)

type extractorUsecase struct {
	vocab domain.ExtractionVocabulary
}

// NewExtractorUsecase builds the text extractor around a fixed keyword
// vocabulary. The vocabulary is configuration, injected here once, never
// extended at runtime.
func NewExtractorUsecase(vocab domain.ExtractionVocabulary) domain.ExtractorUsecase {
	return &extractorUsecase{vocab: vocab}
}

// ExtractCandidate turns a raw resume blob into a CandidateRecord. It is
// deliberately best-effort: a resume that matches nothing yields a record of
// empty fields and zero years, never an error. Missing data surfaces later as
// lower scores, which is the contract the scorer relies on.
func (u *extractorUsecase) ExtractCandidate(rawText string) domain.CandidateRecord {
	return domain.CandidateRecord{
		Name:            extractName(rawText),
		Email:           extractEmail(rawText),
		ExperienceYears: extractExperienceYears(rawText),
		Education:       u.extractEducation(rawText),
		Certifications:  scanVocabulary(rawText, u.vocab.Certifications),
		Skills:          scanVocabulary(rawText, u.vocab.Skills),
		RawText:         rawText,
	}
}

func extractName(text string) string {
	if m := namePattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func extractEmail(text string) string {
	// First match wins; absence is an empty string, not an error.
	return emailPattern.FindString(text)
}

func extractExperienceYears(text string) int {
	for _, p := range experiencePatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			years, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			return years
		}
	}
	return 0
}

// scanVocabulary is a case-insensitive membership scan of the text against a
// fixed term list. Duplicates collapse; the result is sorted so repeated runs
// of the same resume are byte-identical.
func scanVocabulary(text string, vocabulary []string) []string {
	lower := strings.ToLower(text)
	seen := make(map[string]bool, len(vocabulary))
	var found []string
	for _, term := range vocabulary {
		if term == "" || seen[term] {
			continue
		}
		if strings.Contains(lower, strings.ToLower(term)) {
			seen[term] = true
			found = append(found, term)
		}
	}
	sort.Strings(found)
	return found
}

// extractEducation collects resume lines mentioning a configured degree name,
// preserving first-seen order within the source text.
func (u *extractorUsecase) extractEducation(text string) []string {
	var education []string
	seen := make(map[string]bool)
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-・*"))
		if trimmed == "" || seen[trimmed] {
			continue
		}
		lower := strings.ToLower(trimmed)
		for _, degree := range u.vocab.Degrees {
			if degree != "" && strings.Contains(lower, strings.ToLower(degree)) {
				education = append(education, trimmed)
				seen[trimmed] = true
				break
			}
		}
	}
	return education
}
