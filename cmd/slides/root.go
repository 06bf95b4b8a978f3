package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"worshipslides/internal/config"
	"worshipslides/internal/platform/logging"
	"worshipslides/internal/platform/slidegen"
	"worshipslides/internal/refdata"
	"worshipslides/internal/slides"
)

// app holds what every subcommand needs once flags and config are resolved.
type app struct {
	cfg       config.Config
	logger    *zap.Logger
	refs      *refdata.Service
	generator slides.Generator
}

func (a *app) builder() *slides.Builder {
	return slides.NewBuilder(slides.NewResolver(a.refs, a.cfg.DefaultBackground), a.cfg.DefaultHymnal)
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var (
		dataDir   string
		assetsDir string
		apiBase   string
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "slides",
		Short: "Browse worship reference data and generate slide decks",
		Long: `slides lists the hymns and Bible chapters available in the local data tree
and asks the slide generator service to build presentation decks from them.

Configuration comes from .env, .env.local, CONFIG_FILE and the environment;
flags override all of them.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("data-dir") {
				cfg.DataDir = dataDir
			}
			if cmd.Flags().Changed("assets-dir") {
				cfg.AssetsDir = assetsDir
			}
			if cmd.Flags().Changed("api-base") {
				cfg.APIBase = apiBase
			}

			level := "warn"
			if verbose {
				level = "debug"
			}
			logger, err := logging.New(level)
			if err != nil {
				return err
			}

			a.cfg = cfg
			a.logger = logger
			a.refs = refdata.NewService(refdata.NewFileRepo(cfg.DataDir, cfg.AssetsDir), cfg.DefaultVersion, logger)
			a.generator = slidegen.NewClient(cfg.APIBase, cfg.GeneratorTimeout, cfg.GeneratorRPS)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Reference data directory (default from DATA_DIR)")
	cmd.PersistentFlags().StringVar(&assetsDir, "assets-dir", "", "Static asset directory (default from ASSETS_DIR)")
	cmd.PersistentFlags().StringVar(&apiBase, "api-base", "", "Slide generator base URL (default from API_BASE)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")

	cmd.AddCommand(newListCmd(a))
	cmd.AddCommand(newGenerateCmd(a))

	return cmd
}
