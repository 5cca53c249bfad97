package file

import "go-hr-screening/internal/domain"

// Compiled-in configuration used when the config directory carries no
// override file for a section.

func DefaultCompanyProfile() domain.CompanyProfile {
	return domain.CompanyProfile{
		Name:    "Tech Innovation Inc.",
		Mission: "Solve social problems with technology and build a sustainable future",
		Values:  []string{"innovation", "collaboration", "social impact", "continuous learning"},
		CultureKeywords: map[string]float64{
			"teamwork":   1.0,
			"leadership": 0.8,
			"remote":     0.5,
			"growth":     0.7,
			"diversity":  0.5,
		},
		WorkStyle: []string{"full remote", "flexible hours", "side jobs allowed"},
	}
}

func DefaultJobProfiles() []domain.JobProfile {
	return []domain.JobProfile{
		{
			Title:      "Senior Web Engineer",
			Department: "Product Development",
			RequiredSkills: map[string]float64{
				"Python":     1.0,
				"JavaScript": 1.0,
				"React":      0.8,
				"SQL":        0.6,
			},
			PreferredSkills:      []string{"Docker", "AWS", "Machine Learning", "Team Management"},
			MinExperienceYears:   5,
			EducationRequirement: "bachelor",
		},
		{
			Title:      "Web Engineer",
			Department: "Product Development",
			RequiredSkills: map[string]float64{
				"Python":     1.0,
				"JavaScript": 1.0,
				"React":      0.8,
			},
			PreferredSkills:      []string{"Docker", "AWS", "Git"},
			MinExperienceYears:   3,
			EducationRequirement: "bachelor",
		},
		{
			Title:      "Junior Web Engineer",
			Department: "Product Development",
			RequiredSkills: map[string]float64{
				"HTML":       1.0,
				"CSS":        1.0,
				"JavaScript": 1.0,
			},
			PreferredSkills:      []string{"React", "Node.js", "Git"},
			MinExperienceYears:   1,
			EducationRequirement: "highschool",
		},
		{
			Title:      "Sales Manager",
			Department: "Sales",
			RequiredSkills: map[string]float64{
				"Sales":              1.0,
				"Account Management": 0.8,
				"Team Management":    0.8,
				"Negotiation":        0.6,
			},
			PreferredSkills:      []string{"SaaS", "Data Analysis", "Marketing", "English"},
			MinExperienceYears:   5,
			EducationRequirement: "bachelor",
		},
	}
}

func DefaultVocabulary() domain.ExtractionVocabulary {
	return domain.ExtractionVocabulary{
		Skills: []string{
			// programming
			"Python", "JavaScript", "TypeScript", "Java", "Go", "C++",
			"React", "Vue", "Angular", "Node.js", "HTML", "CSS", "SQL",
			// infrastructure
			"AWS", "GCP", "Docker", "Kubernetes", "Terraform", "Linux",
			// management
			"Project Management", "Team Management", "Leadership",
			// sales & marketing
			"Sales", "Account Management", "Negotiation", "Marketing",
			"SEO", "SEM", "Data Analysis", "SaaS",
			// design & finance
			"UI/UX", "Figma", "Photoshop", "Accounting", "Bookkeeping",
			// languages
			"English", "Japanese",
		},
		Certifications: []string{
			"TOEIC", "AWS Certified Solutions Architect", "AWS Certified Developer",
			"PMP", "Scrum Master", "CPA", "Fundamental Information Technology Engineer",
			"Applied Information Technology Engineer", "Bookkeeping Level 2",
		},
		Degrees: []string{
			"Bachelor", "Master", "Doctorate", "PhD", "Ph.D", "MBA",
			"University", "High School", "College",
			"大学院", "大学", "高等学校", "高校", "専門学校", "学士", "修士", "博士",
		},
	}
}

func minutes(n int) *int { return &n }

func DefaultQuestionBank() domain.QuestionBank {
	return domain.QuestionBank{Questions: []domain.InterviewQuestion{
		// skill
		{
			ID:       "skill_first_01",
			Category: domain.CategorySkill,
			Stage:    domain.StageFirst,
			Question: "Tell us about the most technically challenging project you have worked on. What made it hard, and how did you solve it?",
			FollowUpQuestions: []string{
				"Why did you choose that particular approach?",
				"Which alternatives did you consider?",
				"In hindsight, was it the right call?",
			},
			EvaluationPoints: []string{
				"Depth of technical understanding",
				"Logical problem-solving approach",
				"Judgment in technology choices",
				"Appetite for continuous improvement",
			},
			GoodAnswerExample: "Clearly frames the technical challenge, weighs multiple solutions and explains the chosen one with concrete reasoning.",
			RedFlags: []string{
				"Cannot explain technical details",
				"Does not grasp the core of the problem",
				"Only describes solutions delegated to others",
			},
			TimeLimitMinutes: minutes(10),
		},
		{
			ID:       "skill_second_01",
			Category: domain.CategorySkill,
			Stage:    domain.StageSecond,
			Question: "What do code reviewers point out most often in your work, and how have you been improving on it?",
			FollowUpQuestions: []string{
				"What was the review culture like on your team?",
				"What do you do day to day to keep code quality up?",
				"How do you decide whether to adopt a new library?",
			},
			EvaluationPoints: []string{
				"Capacity for self-reflection",
				"Awareness of code quality",
				"Understanding of team development",
			},
			GoodAnswerExample: "Names a concrete improvement and shows how it raised the whole team's code quality.",
			RedFlags: []string{
				"Claims to never receive review comments",
				"Shifts blame onto others",
			},
			TimeLimitMinutes: minutes(8),
		},
		{
			ID:       "skill_final_01",
			Category: domain.CategorySkill,
			Stage:    domain.StageFinal,
			Question: "Which technology investment would you make first in our product, and why?",
			EvaluationPoints: []string{
				"Strategic technical thinking",
				"Business awareness behind technical choices",
			},
			TimeLimitMinutes: minutes(10),
		},
		// experience
		{
			ID:       "experience_first_01",
			Category: domain.CategoryExperience,
			Stage:    domain.StageFirst,
			Question: "Walk us through your process when an unexpected production incident occurs. A recent concrete example helps.",
			FollowUpQuestions: []string{
				"How do you narrow down the root cause?",
				"How do you keep stakeholders informed?",
				"What do you do to prevent recurrence?",
			},
			EvaluationPoints: []string{
				"Systematic troubleshooting",
				"Calm judgment under pressure",
				"Preventive mindset",
			},
			GoodAnswerExample: "Describes a structured diagnosis, timely reporting and a recurrence-prevention follow-up.",
			RedFlags: []string{
				"Ad hoc firefighting only",
				"Skips reporting",
				"Shallow root-cause analysis",
			},
			TimeLimitMinutes: minutes(8),
		},
		{
			ID:       "experience_second_01",
			Category: domain.CategoryExperience,
			Stage:    domain.StageSecond,
			Question: "Describe a project where you carried responsibility end to end. What was your role, and what was the outcome?",
			EvaluationPoints: []string{
				"Ownership over deliverables",
				"Scale and complexity handled",
				"Measurable outcomes",
			},
			TimeLimitMinutes: minutes(12),
		},
		{
			ID:       "experience_final_01",
			Category: domain.CategoryExperience,
			Stage:    domain.StageFinal,
			Question: "Looking back at your career so far, which experience prepared you best for this position?",
			EvaluationPoints: []string{
				"Self-awareness about strengths",
				"Relevance of past work to the role",
			},
		},
		// culture
		{
			ID:       "culture_first_01",
			Category: domain.CategoryCulture,
			Stage:    domain.StageFirst,
			Question: "What kind of team environment lets you do your best work, and what role do you usually take in it?",
			EvaluationPoints: []string{
				"Fit with a flat, collaborative culture",
				"Self-understanding of working style",
			},
			TimeLimitMinutes: minutes(7),
		},
		{
			ID:       "culture_second_01",
			Category: domain.CategoryCulture,
			Stage:    domain.StageSecond,
			Question: "Tell us about a time you disagreed with your team's direction. How did you handle it?",
			FollowUpQuestions: []string{
				"What caused the disagreement?",
				"What did you concretely do?",
				"What did you learn from the outcome?",
			},
			EvaluationPoints: []string{
				"Constructive conflict resolution",
				"Respect for team harmony without losing conviction",
			},
			RedFlags: []string{
				"Avoids conflict entirely",
				"Pushes one-sided views",
				"Turns emotional",
			},
			TimeLimitMinutes: minutes(10),
		},
		{
			ID:       "culture_final_01",
			Category: domain.CategoryCulture,
			Stage:    domain.StageFinal,
			Question: "Which of our company values resonates most with you, and where has it shown up in your own work?",
			EvaluationPoints: []string{
				"Genuine alignment with company values",
				"Concrete evidence rather than slogans",
			},
		},
		// education
		{
			ID:       "education_first_01",
			Category: domain.CategoryEducation,
			Stage:    domain.StageFirst,
			Question: "How do you keep learning outside of formal education? Tell us about something you taught yourself recently.",
			EvaluationPoints: []string{
				"Continuous learning habits",
				"Ability to close knowledge gaps independently",
			},
			TimeLimitMinutes: minutes(6),
		},
		{
			ID:       "education_second_01",
			Category: domain.CategoryEducation,
			Stage:    domain.StageSecond,
			Question: "Your formal background differs from the typical profile for this role. How have you compensated for that in practice?",
			EvaluationPoints: []string{
				"Honest self-assessment",
				"Evidence of practical skill despite the gap",
			},
		},
		{
			ID:       "education_final_01",
			Category: domain.CategoryEducation,
			Stage:    domain.StageFinal,
			Question: "Where do you want to deepen your expertise over the next three years?",
			EvaluationPoints: []string{
				"Realistic growth plan",
				"Alignment with the role's trajectory",
			},
		},
		// general baseline
		{
			ID:       "general_first_01",
			Category: domain.CategoryGeneral,
			Stage:    domain.StageFirst,
			Question: "Please introduce yourself briefly and tell us why you applied for this position.",
			EvaluationPoints: []string{
				"Clarity and structure of communication",
				"Motivation for the role",
			},
			TimeLimitMinutes: minutes(5),
		},
		{
			ID:       "general_first_02",
			Category: domain.CategoryGeneral,
			Stage:    domain.StageFirst,
			Question: "Have you ever explained a complex technical topic to a non-technical audience? What did you do to make it land?",
			FollowUpQuestions: []string{
				"How did you confirm they understood?",
				"What did you change when the explanation did not land?",
			},
			EvaluationPoints: []string{
				"Perspective-taking",
				"Plain-language explanation skills",
			},
			GoodAnswerExample: "Adapts the explanation to the listener's level and checks understanding along the way.",
			RedFlags: []string{
				"Hides behind jargon",
				"One-way lecturing",
			},
			TimeLimitMinutes: minutes(7),
		},
		{
			ID:       "general_second_01",
			Category: domain.CategoryGeneral,
			Stage:    domain.StageSecond,
			Question: "Tell us about a time you led others toward a goal, formally or informally. How did you keep the group motivated?",
			FollowUpQuestions: []string{
				"How did you account for individual differences in the group?",
				"How did you handle setbacks along the way?",
			},
			EvaluationPoints: []string{
				"Sense of responsibility as a lead",
				"Ability to motivate others",
				"Strategic thinking toward the goal",
			},
			RedFlags: []string{
				"Command-and-control only",
				"Deflects responsibility for failures",
			},
			TimeLimitMinutes: minutes(12),
		},
		{
			ID:       "general_final_01",
			Category: domain.CategoryGeneral,
			Stage:    domain.StageFinal,
			Question: "Where do you see yourself in five years, and how does this role fit into that picture?",
			EvaluationPoints: []string{
				"Career vision",
				"Mutual fit over the long term",
			},
			TimeLimitMinutes: minutes(8),
		},
		{
			ID:       "general_final_02",
			Category: domain.CategoryGeneral,
			Stage:    domain.StageFinal,
			Question: "Is there anything you would like to ask us?",
			EvaluationPoints: []string{
				"Quality of questions as a signal of genuine interest",
			},
		},
	}}
}
