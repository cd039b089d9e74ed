package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/applyai/resume2job/internal/jobs"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Manage job listings",
}

var jobsValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a job listings JSON file",
	Long:  "Validate parses a job listings file and checks each listing's required fields and link format.",
	RunE:  runJobsValidate,
}

var jobsImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a job listings JSON file into the database",
	RunE:  runJobsImport,
}

var (
	jobsFile  string
	jobsDBURL string
)

func init() {
	jobsValidateCmd.Flags().StringVarP(&jobsFile, "file", "f", "", "Path to job listings JSON file")
	jobsImportCmd.Flags().StringVarP(&jobsFile, "file", "f", "", "Path to job listings JSON file")
	jobsImportCmd.Flags().StringVar(&jobsDBURL, "db-url", "", "Database URL (overrides DATABASE_URL env var)")

	for _, cmd := range []*cobra.Command{jobsValidateCmd, jobsImportCmd} {
		if err := cmd.MarkFlagRequired("file"); err != nil {
			panic(err)
		}
	}

	jobsCmd.AddCommand(jobsValidateCmd)
	jobsCmd.AddCommand(jobsImportCmd)
	rootCmd.AddCommand(jobsCmd)
}

func runJobsValidate(_ *cobra.Command, _ []string) error {
	listings, err := jobs.FileSource{Path: jobsFile}.Listings(context.Background())
	if err != nil {
		return err
	}
	if err := jobs.ValidateListings(listings); err != nil {
		return err
	}
	fmt.Printf("OK: %d listings valid\n", len(listings))
	return nil
}

func runJobsImport(_ *cobra.Command, _ []string) error {
	dbURL := jobsDBURL
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}
	if dbURL == "" {
		return fmt.Errorf("database URL is required (set DATABASE_URL environment variable or use --db-url flag)")
	}

	ctx := context.Background()
	listings, err := jobs.FileSource{Path: jobsFile}.Listings(ctx)
	if err != nil {
		return err
	}
	if err := jobs.ValidateListings(listings); err != nil {
		return err
	}

	db, err := jobs.Connect(ctx, dbURL)
	if err != nil {
		return err
	}
	defer db.Close()

	for _, listing := range listings {
		jobID, err := db.SaveListing(ctx, listing)
		if err != nil {
			return err
		}
		fmt.Printf("imported %s (%s at %s)\n", jobID, listing.Title, listing.Company)
	}
	return nil
}
