package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"beammm/internal/app"
	"beammm/internal/game"
)

// skipCommit marks commands that must not trigger the commit step after they run.
const skipCommit = "beammm/skip-commit"

var (
	home      string
	dataDir   string
	logLevel  string
	logFormat string
	assumeYes bool

	appCtx *app.App
)

// Execute runs the CLI against the process's stdio.
func Execute() error {
	return NewRootCommand(os.Stdin, os.Stdout, os.Stderr).Execute()
}

// NewRootCommand builds the command tree reading from in and writing to out and errOut.
func NewRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "beammm",
		Short:         "Mod manager for BeamNG.drive",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("home") {
				cfg.Home = home
			}
			if flags.Changed("data-dir") {
				cfg.DataDir = dataDir
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if flags.Changed("log-format") {
				cfg.LogFormat = logFormat
			}
			if flags.Changed("yes") {
				cfg.AssumeYes = assumeYes
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			assumeYes = cfg.AssumeYes

			log := app.NewLogger(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
			w, err := app.NewWire(cfg, game.UserDirs(), log)
			if err != nil {
				return err
			}
			appCtx = app.New(w.Mods, w.Presets, log)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[skipCommit] == "true" {
				return nil
			}
			return appCtx.Commit(cmd.ErrOrStderr())
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	home, dataDir, logLevel, logFormat, assumeYes = "", "", "", "", false
	appCtx = nil

	root.PersistentFlags().StringVar(&home, "home", "", "beammm dir holding presets (default <local data dir>/BeamMM)")
	root.PersistentFlags().StringVar(&dataDir, "data-dir", "", "custom BeamNG.drive data dir (default: discovered)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text or json")
	root.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "answer yes to all confirmation prompts")

	root.AddCommand(modsCmd(), presetCmd(), applyCmd(), fingerprintCmd())
	return root
}

func skipCommitAnnotation() map[string]string {
	return map[string]string{skipCommit: "true"}
}
