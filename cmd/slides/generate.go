package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"worshipslides/internal/slides"
)

// backgroundFlags are shared by every generate subcommand.
type backgroundFlags struct {
	file    string
	gallery string
	output  string
}

func (f *backgroundFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.file, "background", "", "Image file to use as the slide background")
	cmd.Flags().StringVar(&f.gallery, "gallery", "", "Gallery background id (see: slides list backgrounds)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output file or directory (default: generated name in the current directory)")
}

func (f *backgroundFlags) background() (slides.Background, error) {
	choice := slides.BackgroundChoice{GalleryID: strings.TrimSpace(f.gallery)}
	if f.file != "" {
		data, err := os.ReadFile(f.file)
		if err != nil {
			return nil, fmt.Errorf("read background: %w", err)
		}
		choice.Upload = &slides.Upload{Data: data}
	}
	return choice.Background(), nil
}

func newGenerateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate a slide deck through the slide generator",
	}
	cmd.AddCommand(newGenerateHymnCmd(a), newGenerateCallToWorshipCmd(a), newGenerateScriptureCmd(a))
	return cmd
}

func newGenerateHymnCmd(a *app) *cobra.Command {
	var flags backgroundFlags
	var hymnal string

	cmd := &cobra.Command{
		Use:   "hymn NUMBER",
		Short: "Generate hymn lyric slides",
		Example: `  slides generate hymn 378
  slides generate hymn 57 --hymnal UMH --gallery lent -o decks/`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bg, err := flags.background()
			if err != nil {
				return err
			}
			hymn, err := a.refs.GetHymn(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			req, err := a.builder().BuildHymn(cmd.Context(), hymn, hymnal, bg)
			if err != nil {
				return err
			}
			return a.submit(cmd, req, flags.output)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&hymnal, "hymnal", "", "Hymnal code (default from DEFAULT_HYMNAL)")
	return cmd
}

func newGenerateCallToWorshipCmd(a *app) *cobra.Command {
	var flags backgroundFlags
	var text, file string

	cmd := &cobra.Command{
		Use:   "call-to-worship",
		Short: "Generate responsive reading slides",
		Long: `Generate call-to-worship slides from Leader/People lines.

Lines alternate Leader, People, Leader, ... and may carry "Leader:" or
"People:" labels. Text is read from --text, --file or standard input.`,
		Example: `  printf 'Leader: The Lord be with you\nPeople: And also with you\n' | slides generate call-to-worship`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readText(cmd, text, file)
			if err != nil {
				return err
			}
			bg, err := flags.background()
			if err != nil {
				return err
			}
			req, err := a.builder().BuildCallToWorship(cmd.Context(), body, bg)
			if err != nil {
				return err
			}
			return a.submit(cmd, req, flags.output)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&text, "text", "", "Reading text")
	cmd.Flags().StringVar(&file, "file", "", "Read the reading text from a file")
	cmd.MarkFlagsMutuallyExclusive("text", "file")
	return cmd
}

func newGenerateScriptureCmd(a *app) *cobra.Command {
	var flags backgroundFlags
	var version, altVersion string
	var from, to int

	cmd := &cobra.Command{
		Use:     "scripture BOOK CHAPTER",
		Short:   "Generate scripture reading slides",
		Example: "  slides generate scripture PSA 23 --from 1 --to 6 --alt TMB",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			chapter, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("chapter must be a number: %q", args[1])
			}
			bg, err := flags.background()
			if err != nil {
				return err
			}
			ch, err := a.refs.GetChapter(cmd.Context(), version, args[0], chapter)
			if err != nil {
				return err
			}
			sel := slides.ScriptureSelection{Chapter: ch, VerseStart: from, VerseEnd: to}
			if altVersion != "" {
				if sel.Alt, err = a.refs.GetChapter(cmd.Context(), altVersion, args[0], chapter); err != nil {
					return fmt.Errorf("alternate version: %w", err)
				}
			}
			req, err := a.builder().BuildScripture(cmd.Context(), sel, bg)
			if err != nil {
				return err
			}
			return a.submit(cmd, req, flags.output)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&version, "translation", "", "Bible version (default from DEFAULT_VERSION)")
	cmd.Flags().StringVar(&altVersion, "alt", "", "Alternate version shown alongside each verse")
	cmd.Flags().IntVar(&from, "from", 0, "First verse (default: start of chapter)")
	cmd.Flags().IntVar(&to, "to", 0, "Last verse (default: end of chapter)")
	return cmd
}

func (a *app) submit(cmd *cobra.Command, req slides.Request, output string) error {
	art, err := slides.NewForm(a.generator).Submit(cmd.Context(), req)
	if err != nil {
		return err
	}
	path := outputPath(output, art.Filename)
	if err := os.WriteFile(path, art.Body, 0o644); err != nil {
		return fmt.Errorf("write deck: %w", err)
	}
	a.logger.Debug("deck written", zap.String("path", path), zap.Int("bytes", len(art.Body)))
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

// outputPath places name inside output when output is an existing directory
// or ends in a separator.
func outputPath(output, name string) string {
	if output == "" {
		return name
	}
	if strings.HasSuffix(output, string(os.PathSeparator)) || strings.HasSuffix(output, "/") {
		return filepath.Join(output, name)
	}
	if info, err := os.Stat(output); err == nil && info.IsDir() {
		return filepath.Join(output, name)
	}
	return output
}

func readText(cmd *cobra.Command, text, file string) (string, error) {
	switch {
	case text != "":
		return text, nil
	case file != "":
		raw, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read text: %w", err)
		}
		return string(raw), nil
	default:
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(raw), nil
	}
}
