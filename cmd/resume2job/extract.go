package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/applyai/resume2job/internal/extraction"
	"github.com/applyai/resume2job/internal/ingestion"
	"github.com/applyai/resume2job/internal/llm"
	"github.com/applyai/resume2job/internal/observability"
	"github.com/applyai/resume2job/internal/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract structured fields from a resume",
	Long:  "Extract converts a resume document and prints the extracted name, contact details, skills, experience, and education as JSON.",
	RunE:  runExtract,
}

var (
	extractResumeFile string
	extractOutputFile string
	extractUseLLM     bool
	extractVerbose    bool
	extractAPIKey     string
)

func init() {
	extractCmd.Flags().StringVarP(&extractResumeFile, "resume", "r", "", "Path to resume file (.txt, .md, .html)")
	extractCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	extractCmd.Flags().BoolVar(&extractUseLLM, "use-llm", false, "Merge LLM-extracted fields over the heuristic ones")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print a summary of the extracted fields")
	extractCmd.Flags().StringVar(&extractAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")

	if err := extractCmd.MarkFlagRequired("resume"); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(extractResumeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	ctx := context.Background()
	converter := ingestion.ForFilename(extractResumeFile)
	doc, err := converter.Convert(ctx, data, extractResumeFile)
	if err != nil {
		return err
	}

	extractor := extraction.NewExtractor(nil)
	fields := extractor.Extract(doc.Markdown)
	links := doc.Links

	if extractUseLLM {
		apiKey := extractAPIKey
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		if apiKey == "" {
			return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
		}

		client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer client.Close()

		llmFields, llmLinks, err := llm.ExtractResume(ctx, client, doc.Markdown, links)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: LLM extraction failed, keeping heuristic fields: %v\n", err)
		} else {
			fields = extraction.Merge(fields, llmFields)
			links = append(links, llmLinks...)
		}
	}

	if extractVerbose {
		observability.NewPrinter(os.Stderr).PrintResumeFields(fields)
	}

	return writeJSON(extractOutputFile, types.NewResumeData(fields, links))
}
