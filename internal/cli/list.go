package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/HettieJacobson/Real-Privacy-Trading/internal/registry"
	"github.com/spf13/cobra"
)

var listJSON bool

func init() {
	listCmd.PersistentFlags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.AddCommand(listExamplesCmd)
	listCmd.AddCommand(listCategoriesCmd)
	listCmd.AddCommand(listTopicsCmd)
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered examples, categories, or documentation topics",
}

var listExamplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "List all registered examples",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printExamples(cmd)
	},
}

var listCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List all registered categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printCategories(cmd)
	},
}

var listTopicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List all registered documentation topics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printTopics(cmd)
	},
}

// listEntry is one row of list output, shared by all three tables.
type listEntry struct {
	Key        string `json:"key"`
	Title      string `json:"title"`
	Difficulty string `json:"difficulty"`
	Extra      string `json:"extra,omitempty"`
}

func printExamples(cmd *cobra.Command) error {
	var entries []listEntry
	for _, e := range registry.Examples.All() {
		entries = append(entries, listEntry{
			Key:        e.Key,
			Title:      e.Title,
			Difficulty: string(e.Difficulty),
			Extra:      fmt.Sprintf("%d concepts", len(e.Concepts)),
		})
	}
	return printEntries(cmd, "EXTRA", entries)
}

func printCategories(cmd *cobra.Command) error {
	var entries []listEntry
	for _, c := range registry.Categories.All() {
		entries = append(entries, listEntry{
			Key:        c.Key,
			Title:      c.Title,
			Difficulty: string(c.Difficulty),
			Extra:      fmt.Sprintf("%d examples", len(c.Examples)),
		})
	}
	return printEntries(cmd, "EXTRA", entries)
}

func printTopics(cmd *cobra.Command) error {
	var entries []listEntry
	for _, d := range registry.DocTopics.All() {
		entries = append(entries, listEntry{
			Key:        d.Key,
			Title:      d.Title,
			Difficulty: string(d.Difficulty),
			Extra:      d.Chapter,
		})
	}
	return printEntries(cmd, "CHAPTER", entries)
}

func printEntries(cmd *cobra.Command, extraHeader string, entries []listEntry) error {
	if listJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintf(w, "KEY\tTITLE\tDIFFICULTY\t%s\n", extraHeader)
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Key, e.Title, e.Difficulty, e.Extra)
	}
	return w.Flush()
}
