package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"go-hr-screening/internal/domain"
	"go-hr-screening/internal/repository/file"
	"go-hr-screening/internal/usecase"
	"go-hr-screening/pkg/document"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
)

var (
	profileDir string
	jobTitle   string
	stageName  string
	jsonOutput bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume-file>",
	Short: "Score a resume and generate its interview question set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, analysisUC, err := buildEngine(profileDir)
		if err != nil {
			return err
		}
		if jobTitle == "" {
			jobs := store.Jobs()
			jobTitle = jobs[0].Title
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read resume file: %w", err)
		}
		rawText, err := document.ExtractText(args[0], data)
		if err != nil {
			return err
		}

		return runAnalysis(cmd, analysisUC, rawText)
	},
}

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List the configured job profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := buildEngine(profileDir)
		if err != nil {
			return err
		}
		for _, job := range store.Jobs() {
			required := make([]string, 0, len(job.RequiredSkills))
			for skill := range job.RequiredSkills {
				required = append(required, skill)
			}
			sort.Strings(required)
			cmd.Printf("%-24s min %d years, education: %s, required: %s\n",
				job.Title, job.MinExperienceYears, job.RequiredEducation(), strings.Join(required, ", "))
		}
		return nil
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the built-in sample resume through the full pipeline",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, analysisUC, err := buildEngine(profileDir)
		if err != nil {
			return err
		}
		if jobTitle == "" {
			jobTitle = store.Jobs()[0].Title
		}
		return runAnalysis(cmd, analysisUC, demoResume)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&profileDir, "profiles", os.Getenv("PROFILE_DIR"), "directory with company/jobs/scoring/vocabulary/questions YAML (default: compiled-in profiles)")
	rootCmd.PersistentFlags().StringVar(&jobTitle, "job", "", "job profile title to score against (default: first configured job)")
	rootCmd.PersistentFlags().StringVar(&stageName, "stage", "first", "interview stage: first, second or final")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print the full analysis result as JSON")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(jobsCmd)
	rootCmd.AddCommand(demoCmd)
}

func buildEngine(dir string) (*file.Store, domain.AnalysisUsecase, error) {
	store, err := file.NewStore(dir, validator.New())
	if err != nil {
		return nil, nil, err
	}
	extractorUC := usecase.NewExtractorUsecase(store.Vocabulary())
	scoringUC, err := usecase.NewScoringUsecase(store.Scoring())
	if err != nil {
		return nil, nil, err
	}
	interviewUC, err := usecase.NewInterviewUsecase(store.QuestionBank())
	if err != nil {
		return nil, nil, err
	}
	return store, usecase.NewAnalysisUsecase(extractorUC, scoringUC, interviewUC, store), nil
}

func runAnalysis(cmd *cobra.Command, analysisUC domain.AnalysisUsecase, rawText string) error {
	stage, err := domain.ParseStage(stageName)
	if err != nil {
		return fmt.Errorf("%w: %q", err, stageName)
	}

	result, err := analysisUC.Analyze(context.Background(), rawText, jobTitle, stage)
	if err != nil {
		return err
	}

	if jsonOutput {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(out))
		return nil
	}

	printResult(cmd, result)
	return nil
}

func printResult(cmd *cobra.Command, result *domain.AnalysisResult) {
	b := result.Breakdown
	cmd.Println(strings.Repeat("=", 50))
	cmd.Printf("Screening result: %s (%s stage, %d min)\n", result.JobTitle, result.Stage, result.Stage.DurationMinutes())
	cmd.Println(strings.Repeat("=", 50))
	if result.Candidate.Name != "" {
		cmd.Printf("Candidate:      %s\n", result.Candidate.Name)
	}
	if result.Candidate.Email != "" {
		cmd.Printf("Email:          %s\n", result.Candidate.Email)
	}
	cmd.Printf("Experience:     %d years\n", result.Candidate.ExperienceYears)
	cmd.Printf("Skills:         %s\n", strings.Join(result.Candidate.Skills, ", "))
	cmd.Println()
	cmd.Printf("Skill match:    %.1f\n", b.SkillMatchScore)
	cmd.Printf("Experience:     %.1f\n", b.ExperienceMatchScore)
	cmd.Printf("Culture fit:    %.1f\n", b.CultureFitScore)
	cmd.Printf("Education:      %.1f\n", b.EducationMatchScore)
	cmd.Printf("Overall:        %.1f (%s)\n", b.OverallScore, b.Recommendation)
	if len(b.InterviewFocusAreas) > 0 {
		cmd.Println("\nFocus areas:")
		for _, area := range b.InterviewFocusAreas {
			cmd.Printf("  - %s\n", area)
		}
	}
	if len(result.SpecialNotes) > 0 {
		cmd.Println("\nSpecial notes:")
		for _, note := range result.SpecialNotes {
			cmd.Printf("  %s\n", note)
		}
	}
	cmd.Println("\nInterview questions:")
	for i, q := range result.Questions {
		limit := ""
		if q.TimeLimitMinutes != nil {
			limit = fmt.Sprintf(" (%d min)", *q.TimeLimitMinutes)
		}
		cmd.Printf("%2d. [%s]%s %s\n", i+1, q.Category, limit, q.Question)
	}
}

// demoResume is the canned sample used by `hrcli demo`.
const demoResume = `Name: Taro Tanaka
Email: tanaka@example.com

8 years of software engineering experience.

Skills:
- Programming: Python, JavaScript, React, Node.js
- Databases: MySQL, SQL
- Infrastructure: AWS, Docker
- Led a team of five engineers; strong teamwork and leadership

Education:
2015 Bachelor of Engineering, University of Tokyo

Certifications:
- AWS Certified Solutions Architect
- TOEIC 750`
