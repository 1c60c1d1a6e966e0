package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/edi/internal/app"
	"github.com/zjrosen/edi/internal/config"
	"github.com/zjrosen/edi/internal/editor"
	"github.com/zjrosen/edi/internal/log"
	"github.com/zjrosen/edi/internal/terminal"
	"github.com/zjrosen/edi/internal/textfile"
)

var (
	version = "0.0.1"
	cfg     config.Config
	cfgErr  error

	// fileSystem backs loading and saving; tests swap in a memory file system.
	fileSystem afero.Fs = afero.NewOsFs()
)

var rootCmd = &cobra.Command{
	Use:   "edi [file]",
	Short: "A small text editor",
	Long: `A small full-screen terminal text editor.

Opens file when given (a missing file is created on first save), otherwise an
empty buffer. Ctrl-S saves, Ctrl-Q quits.

Settings come from the environment: EDI_TAB_STOP, EDI_QUIT_TIMES,
EDI_MESSAGE_TIMEOUT, EDI_DEBUG, EDI_LOG_FILE and EDI_LOG_LEVEL.`,
	Version:      version,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runEditor,
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	cfg, cfgErr = config.Load(viper.GetViper())
}

func runEditor(cmd *cobra.Command, args []string) error {
	if cfgErr != nil {
		return cfgErr
	}

	if cfg.Debug {
		cleanup, err := initLogging(cfg)
		if err != nil {
			return err
		}
		defer cleanup()
	}

	var path string
	if len(args) == 1 {
		path = args[0]
	}
	store := textfile.NewStore(fileSystem)
	doc, status, err := openDocument(store, path, cfg.TabStop)
	if err != nil {
		return err
	}

	tty, err := terminal.New(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	return tty.RawMode(func() error {
		rows, cols, err := tty.Size()
		if err != nil {
			return err
		}
		log.Info(log.CatTerm, "starting", "rows", rows, "cols", cols, "file", path)

		session := editor.New(doc, store, rows, cols, editor.Options{
			QuitTimes:      cfg.QuitTimes,
			Version:        version,
			MessageTimeout: cfg.MessageTimeout,
		})
		if status != "" {
			session.SetStatusMessage("%s", status)
		}
		return app.New(tty, session).Run()
	})
}

// initLogging opens the debug log and applies the configured level.
func initLogging(c config.Config) (func(), error) {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	cleanup, err := log.InitWithTeaLog(c.LogFile, "edi")
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	log.SetMinLevel(level)
	return cleanup, nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version shown in the welcome banner and the build
// details reported by --version (called from main with ldflags).
func SetVersion(v, commit, date string) {
	version = v
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, commit, date)
}
