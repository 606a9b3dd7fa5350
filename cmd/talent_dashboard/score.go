package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-dashboard/internal/config"
	"github.com/jonathan/talent-dashboard/internal/ingest"
	"github.com/jonathan/talent-dashboard/internal/listing"
	"github.com/jonathan/talent-dashboard/internal/scoring"
)

var scoreConfig string

var scoreCmd = &cobra.Command{
	Use:   "score <file>",
	Short: "Score a candidate file offline",
	Long:  `Ingest a candidate JSON file without starting the server and print the ranked candidates.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreConfig, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, args []string) error {
	var cfg config.Config
	if scoreConfig != "" {
		loaded, err := config.LoadConfig(scoreConfig)
		if err != nil {
			return err
		}
		cfg = *loaded
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	records, err := ingest.ParseBatch(data)
	if err != nil {
		return err
	}
	res, err := ingest.Normalize(records, ingest.Options{
		UploadedAt: time.Now(),
		Scorer:     scoring.Scorer{LocationBonus: cfg.LocationBonus},
	})
	if err != nil {
		return err
	}

	ranked := listing.Sort(res.Accepted, listing.SortByScore, listing.Descending)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SCORE\tNAME\tLOCATION\tEDUCATION")
	for i := range ranked {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			ranked[i].Score, ranked[i].Name, ranked[i].Location, ranked[i].Education.HighestLevel)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d accepted, %d rejected\n", res.Summary.Accepted, res.Summary.Rejected)
	for _, detail := range res.Summary.Details {
		fmt.Println("  " + detail)
	}
	return nil
}
