package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/applyai/resume2job/internal/config"
	"github.com/applyai/resume2job/internal/jobs"
	"github.com/applyai/resume2job/internal/llm"
	"github.com/applyai/resume2job/internal/matcher"
	"github.com/applyai/resume2job/internal/observability"
	"github.com/applyai/resume2job/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match a resume against job listings",
	Long:  "Match extracts fields from a resume (or takes manually supplied skills and experience) and ranks job listings by compatibility.",
	RunE:  runMatch,
}

var (
	matchResumeFile  string
	matchJobsFile    string
	matchConfigFile  string
	matchOutputFile  string
	matchManualSkill string
	matchManualExp   string
	matchUseLLM      bool
	matchVerbose     bool
	matchAPIKey      string
	matchDatabaseURL string
	matchTop         int
)

func init() {
	matchCmd.Flags().StringVarP(&matchResumeFile, "resume", "r", "", "Path to resume file (.txt, .md, .html)")
	matchCmd.Flags().StringVarP(&matchJobsFile, "jobs", "j", "", "Path to job listings JSON file")
	matchCmd.Flags().StringVarP(&matchConfigFile, "config", "c", "", "Path to JSON config file")
	matchCmd.Flags().StringVarP(&matchOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	matchCmd.Flags().StringVar(&matchManualSkill, "manual-skills", "", "Comma-separated skills, used instead of resume parsing")
	matchCmd.Flags().StringVar(&matchManualExp, "manual-experience", "", "Work experience as JSON or plain text, used instead of resume parsing")
	matchCmd.Flags().BoolVar(&matchUseLLM, "use-llm", false, "Enable LLM extraction and reasoning")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print extracted fields and match summary")
	matchCmd.Flags().StringVar(&matchAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	matchCmd.Flags().StringVar(&matchDatabaseURL, "db-url", "", "Database URL for the job listings table")
	matchCmd.Flags().IntVar(&matchTop, "top", 0, "Keep only the N highest-ranked matches (0 keeps all)")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	cfg, err := loadMatchConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()

	opts := []matcher.Option{}
	var client llm.Client
	if cfg.UseLLM {
		client, err = llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer client.Close()
		opts = append(opts, matcher.WithLLM(client))
	}

	source, closeSource, err := listingsSource(ctx, cfg)
	if err != nil {
		return err
	}
	if closeSource != nil {
		defer closeSource()
	}
	if source != nil {
		opts = append(opts, matcher.WithSource(source))
	}

	req := matcher.Request{
		UseLLM:           cfg.UseLLM,
		ManualSkills:     matchManualSkill,
		ManualExperience: matchManualExp,
	}
	if matchResumeFile != "" {
		data, err := os.ReadFile(matchResumeFile)
		if err != nil {
			return fmt.Errorf("failed to read resume file: %w", err)
		}
		req.Resume = data
		req.Filename = matchResumeFile
	}

	svc := matcher.NewService(nil, opts...)
	resp := svc.Match(ctx, req)
	if matchTop > 0 && len(resp.Matches) > matchTop {
		resp.Matches = resp.Matches[:matchTop]
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		if resp.ResumeData != nil {
			printer.PrintResumeFields(resumeFieldsFromData(resp))
		}
		printer.PrintMatches(resp.Matches)
	}

	return writeJSON(matchOutputFile, resp)
}

// loadMatchConfig merges the optional config file, CLI flags, and
// environment. Flags win over the file.
func loadMatchConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if matchConfigFile != "" {
		loaded, err := config.LoadConfig(matchConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if matchJobsFile != "" {
		cfg.Jobs = matchJobsFile
	}
	if matchAPIKey != "" {
		cfg.APIKey = matchAPIKey
	}
	if matchDatabaseURL != "" {
		cfg.DatabaseURL = matchDatabaseURL
	}
	if matchUseLLM {
		cfg.UseLLM = true
	}
	if matchVerbose {
		cfg.Verbose = true
	}
	cfg.FromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// listingsSource picks the jobs source: a file when configured,
// otherwise the database when a URL is available.
func listingsSource(ctx context.Context, cfg *config.Config) (jobs.Source, func(), error) {
	if cfg.Jobs != "" {
		return jobs.FileSource{Path: cfg.Jobs}, nil, nil
	}
	if cfg.DatabaseURL != "" {
		db, err := jobs.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return db, db.Close, nil
	}
	return nil, nil, nil
}

// resumeFieldsFromData rebuilds printable fields from the response view.
func resumeFieldsFromData(resp *types.MatchResponse) types.ResumeFields {
	d := resp.ResumeData
	fields := types.ResumeFields{
		Name:       d.Name,
		Skills:     d.Skills,
		Experience: d.Experience,
		Education:  d.Education,
	}
	if d.Email != "" {
		fields.Emails = []string{d.Email}
	}
	if d.Phone != "" {
		fields.Phones = []string{d.Phone}
	}
	return fields
}

func writeJSON(path string, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if path == "" {
		fmt.Println(string(out))
		return nil
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Output: %s\n", path)
	return nil
}
