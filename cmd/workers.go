/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/valpere/sahayak/internal/store"
)

var (
	workersSkill    string
	workersLocation string
	workersLimit    int
	workersOutput   string
)

var workersCmd = &cobra.Command{
	Use:   "workers",
	Short: "Manage stored worker profiles",
	Long:  `List, inspect, delete and export worker profiles and answer statistics.`,
}

func workerFilter() store.WorkerFilter {
	return store.WorkerFilter{Skill: workersSkill, Location: workersLocation, Limit: workersLimit}
}

var workersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List worker profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		workers, err := db.ListWorkers(context.Background(), workerFilter())
		if err != nil {
			return fmt.Errorf("failed to list workers: %w", err)
		}

		if len(workers) == 0 {
			fmt.Println("No workers found.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "PHONE\tNAME\tAGE\tGENDER\tSKILL\tEXPERIENCE\tLOCATION\tWAGE\tUPDATED")
		for _, wk := range workers {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				wk.Phone, wk.Name, wk.Age, wk.Gender, wk.Skill, wk.Experience,
				wk.Location, wk.Wage, wk.UpdatedAt.Format("2006-01-02 15:04"))
		}
		return w.Flush()
	},
}

var workersShowCmd = &cobra.Command{
	Use:   "show <phone>",
	Short: "Show one worker profile as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		wk, err := db.GetWorker(context.Background(), args[0])
		if err != nil {
			return err
		}
		return printJSON(os.Stdout, wk)
	},
}

var workersStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show answer acceptance statistics per question",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		stats, err := db.AnswerStats(context.Background())
		if err != nil {
			return fmt.Errorf("failed to get stats: %w", err)
		}
		if len(stats) == 0 {
			fmt.Println("No answers logged.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "QUESTION\tTOTAL\tVALID\tINVALID\tACCEPTED")
		for _, s := range stats {
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%.0f%%\n",
				s.QuestionKey, s.Total, s.Valid, s.Invalid, 100*float64(s.Valid)/float64(s.Total))
		}
		return w.Flush()
	},
}

var workersDeleteCmd = &cobra.Command{
	Use:   "delete <phone>",
	Short: "Delete a worker profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.DeleteWorker(context.Background(), args[0]); err != nil {
			return fmt.Errorf("failed to delete worker: %w", err)
		}
		fmt.Printf("Deleted worker: %s\n", args[0])
		return nil
	},
}

var workersExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export worker profiles as CSV",
	Long: `Export worker profiles as CSV to stdout or --output.

Example:
  sahayak workers export --skill Painter --output painters.csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		var out io.Writer = os.Stdout
		if workersOutput != "" {
			f, err := os.Create(workersOutput)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer f.Close()
			out = f
		}

		n, err := db.ExportCSV(context.Background(), out, workerFilter())
		if err != nil {
			return fmt.Errorf("failed to export workers: %w", err)
		}
		if workersOutput != "" {
			fmt.Fprintf(os.Stderr, "Exported %d workers to %s\n", n, workersOutput)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(workersCmd)

	for _, c := range []*cobra.Command{workersListCmd, workersExportCmd} {
		c.Flags().StringVar(&workersSkill, "skill", "", "Filter by skill")
		c.Flags().StringVar(&workersLocation, "location", "", "Filter by location")
		c.Flags().IntVar(&workersLimit, "limit", 0, "Maximum number of workers (0 = all)")
	}
	workersExportCmd.Flags().StringVarP(&workersOutput, "output", "o", "", "Output CSV file (default stdout)")

	workersCmd.AddCommand(workersListCmd)
	workersCmd.AddCommand(workersShowCmd)
	workersCmd.AddCommand(workersStatsCmd)
	workersCmd.AddCommand(workersDeleteCmd)
	workersCmd.AddCommand(workersExportCmd)
}
