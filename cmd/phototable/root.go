package main

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gardar/phototable/pkg/shell"
)

// cli holds the state shared by the commands of one invocation.
type cli struct {
	v        *viper.Viper
	cfgFile  string
	settings *settings
	logger   *slog.Logger
}

// NewRootCmd builds the command tree. Running the root command without a
// subcommand starts the interactive prompts.
func NewRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}
	setDefaults(c.v)

	cmd := &cobra.Command{
		Use:   "phototable",
		Short: "Assemble a folder of images into a phototable document",
		Long: `Phototable places every image of a folder on its own page of a Word
document, scaled to fit the page, with the page number as a caption.
A second document indexes each file name with the page it landed on.

Files that cannot be read as images are skipped and listed at the end.

Settings come from flags, PHOTOTABLE_* environment variables (a .env file
is loaded if present), and phototable.yaml in the current directory or
~/.config/phototable.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
			return c.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			sh := shell.New(cmd.InOrStdin(), cmd.OutOrStdout(), c.settings.phototableConfig(c.logger))
			sh.DefaultSource = c.settings.Source
			sh.DefaultOutput = c.settings.Output
			_, err := sh.Run(cmd.Context())
			return err
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&c.cfgFile, "config", "", "config file (default: ./phototable.yaml or ~/.config/phototable/phototable.yaml)")
	flags.String("source", defaultSource, "folder with the images")
	flags.String("output", defaultOutput, "folder for the generated documents")
	flags.Bool("pdf", false, "also write a PDF copy of the phototable")
	for _, name := range []string{"source", "output", "pdf"} {
		_ = c.v.BindPFlag(name, flags.Lookup(name))
	}

	cmd.AddCommand(
		newRunCmd(c),
		newGUICmd(c),
		newConfigCmd(c),
	)
	return cmd
}

// load reads the config and sets up logging.
func (c *cli) load(cmd *cobra.Command) error {
	if err := readConfig(c.v, c.cfgFile); err != nil {
		return err
	}
	s, err := loadSettings(c.v)
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd.ErrOrStderr(), s.Log)
	if err != nil {
		return err
	}
	if used := c.v.ConfigFileUsed(); used != "" {
		logger.Debug("Using config file", "path", used)
	}

	c.settings = s
	c.logger = logger
	slog.SetDefault(logger)
	return nil
}
