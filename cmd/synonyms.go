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
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/valpere/sahayak/internal/vocab"
)

var synonymsDomain string

var synonymsCmd = &cobra.Command{
	Use:   "synonyms",
	Short: "Manage vocabulary synonyms",
	Long: `Add, list, and delete user-defined synonyms.

Synonyms map a spoken form to a canonical value in one of the skill,
location, language or gender vocabularies. They are loaded on top of the
built-in tables every time the engine starts.`,
}

func parseDomainFlag(required bool) (vocab.Domain, error) {
	if synonymsDomain == "" {
		if required {
			return "", fmt.Errorf("--domain flag is required")
		}
		return "", nil
	}
	d, ok := vocab.ParseDomain(synonymsDomain)
	if !ok {
		return "", fmt.Errorf("unknown domain %q (want one of %v)", synonymsDomain, vocab.Domains)
	}
	return d, nil
}

var synonymsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List synonyms",
	RunE: func(cmd *cobra.Command, args []string) error {
		domain, err := parseDomainFlag(false)
		if err != nil {
			return err
		}

		db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		entries, err := db.ListSynonyms(context.Background(), domain)
		if err != nil {
			return fmt.Errorf("failed to list synonyms: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println("No synonyms defined.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDOMAIN\tTERM\tCANONICAL")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.ID, e.Domain, e.Term, e.Canonical)
		}
		return w.Flush()
	},
}

var synonymsAddCmd = &cobra.Command{
	Use:   "add <term> <canonical>",
	Short: "Add or update a synonym",
	Long: `Add a synonym mapping a spoken term to a canonical value.

Example:
  sahayak synonyms add "rang wala" Painter --domain skill`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		domain, err := parseDomainFlag(true)
		if err != nil {
			return err
		}

		canonical := args[1]
		if v := vocab.Default().Get(domain); v != nil {
			if c, ok := v.Lookup(vocab.Key(canonical)); ok {
				canonical = c
			} else {
				fmt.Fprintf(os.Stderr, "Warning: %q is not a built-in %s value\n", canonical, domain)
			}
		}

		db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.AddSynonym(context.Background(), domain, args[0], canonical); err != nil {
			return fmt.Errorf("failed to add synonym: %w", err)
		}
		fmt.Printf("Added: [%s] %q → %q\n", domain, args[0], canonical)
		return nil
	},
}

var synonymsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a synonym by ID",
	Long:  `Delete a synonym by its ID (shown in "sahayak synonyms list").`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.DeleteSynonym(context.Background(), args[0]); err != nil {
			return fmt.Errorf("failed to delete synonym: %w", err)
		}
		fmt.Printf("Deleted synonym: %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(synonymsCmd)

	synonymsCmd.PersistentFlags().StringVarP(&synonymsDomain, "domain", "d", "", "Vocabulary domain: skill, location, language, gender")

	synonymsCmd.AddCommand(synonymsListCmd)
	synonymsCmd.AddCommand(synonymsAddCmd)
	synonymsCmd.AddCommand(synonymsDeleteCmd)
}
