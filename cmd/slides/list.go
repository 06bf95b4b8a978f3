package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reference data",
	}

	var version string
	addVersionFlag := func(c *cobra.Command) {
		c.Flags().StringVar(&version, "translation", "", "Bible version (default from DEFAULT_VERSION)")
	}

	hymns := &cobra.Command{
		Use:   "hymns",
		Short: "List hymn files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := a.refs.ListHymns(cmd.Context())
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	books := &cobra.Command{
		Use:   "books",
		Short: "List the books of a Bible version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.refs.ListBooks(cmd.Context(), version)
			if err != nil {
				return err
			}
			for _, b := range list {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", b.Code, b.Name)
			}
			return nil
		},
	}
	addVersionFlag(books)

	chapters := &cobra.Command{
		Use:     "chapters BOOK",
		Short:   "List the chapters of a book",
		Args:    cobra.ExactArgs(1),
		Example: "  slides list chapters PSA --translation NRSVUE",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.refs.ListChapters(cmd.Context(), version, args[0])
			if err != nil {
				return err
			}
			return printInts(cmd, list)
		},
	}
	addVersionFlag(chapters)

	verses := &cobra.Command{
		Use:   "verses BOOK CHAPTER",
		Short: "List the verse numbers of a chapter",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			chapter, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("chapter must be a number: %q", args[1])
			}
			list, err := a.refs.ListVerses(cmd.Context(), version, args[0], chapter)
			if err != nil {
				return err
			}
			return printInts(cmd, list)
		},
	}
	addVersionFlag(verses)

	backgrounds := &cobra.Command{
		Use:   "backgrounds",
		Short: "List gallery backgrounds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := a.refs.ListBackgrounds(cmd.Context())
			if err != nil {
				return err
			}
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", e.ID, e.DisplayName, e.Path)
			}
			return nil
		},
	}

	cmd.AddCommand(hymns, books, chapters, verses, backgrounds)
	return cmd
}

func printInts(cmd *cobra.Command, values []int) error {
	for _, v := range values {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), v); err != nil {
			return err
		}
	}
	return nil
}
