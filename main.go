package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"judgment-analyzer/analyzer"
	"judgment-analyzer/config"
	"judgment-analyzer/logging"
	"judgment-analyzer/models"
	"judgment-analyzer/tui"
	"judgment-analyzer/ui"

	"github.com/spf13/cobra"
)

var version = "dev"

// app holds the flag values shared by every command.
type app struct {
	configPath string
	endpoint   string
	logFile    string
	startDir   string
	file       string
	debug      bool

	cfg *models.Config
}

func main() {
	if err := logging.Configure(logging.LevelWarn, os.Stderr); err != nil {
		_, _ = os.Stderr.WriteString("configure logger: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", ui.ColorError("error:"), err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return newRootCmdFor(&app{})
}

func newRootCmdFor(a *app) *cobra.Command {

	root := &cobra.Command{
		Use:           "judgment-analyzer",
		Short:         "Analyze the appealability of a legal judgment",
		Long:          "Paste judgment text or upload a PDF, then send it to the analysis service for a summary and an appealability analysis.",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runForm(cmd.Context())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Path to configuration file (default $XDG_CONFIG_HOME/judgment-analyzer/config.yaml)")
	flags.StringVar(&a.endpoint, "endpoint", "", "Analysis endpoint URL (default "+models.DefaultEndpoint+")")
	flags.StringVar(&a.logFile, "log-file", "", "Write logs to this file instead of the default location")
	flags.BoolVar(&a.debug, "debug", false, "Enable debug logging")

	root.Flags().StringVar(&a.file, "file", "", "Preselect a PDF file when the form opens")
	root.Flags().StringVar(&a.startDir, "start-dir", "", "Directory the file picker opens in")

	root.AddCommand(a.analyzeCmd())
	root.AddCommand(a.configCmd())
	return root
}

// loadConfig reads the config file and lets explicitly set flags override it.
func (a *app) loadConfig(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("endpoint") {
		cfg.Endpoint = a.endpoint
	}
	if flags.Changed("log-file") {
		cfg.LogFile = a.logFile
	}
	if flags.Changed("start-dir") {
		cfg.StartDir = a.startDir
	}
	if flags.Changed("file") {
		cfg.File = a.file
	}
	if a.debug {
		cfg.LogLevel = logging.LevelDebug
	}

	cfg.Merge(models.DefaultConfig)
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

func (a *app) newClient() (*analyzer.Client, error) {
	return analyzer.NewClient(a.cfg.Endpoint, analyzer.WithTimeout(a.cfg.Timeout))
}

// runForm opens the interactive form. The alt screen owns the terminal, so
// logs go to a file.
func (a *app) runForm(ctx context.Context) error {
	logPath := a.cfg.LogFile
	if logPath == "" {
		logPath = logging.DefaultFile()
	}
	f, err := logging.ConfigureFile(a.cfg.LogLevel, logPath)
	if err != nil {
		return err
	}
	defer f.Close()

	client, err := a.newClient()
	if err != nil {
		return err
	}

	slog.Info("Starting analyzer form.", "endpoint", client.Endpoint(), "start_dir", a.cfg.StartDir)
	err = tui.Run(ctx, client, tui.Options{StartDir: a.cfg.StartDir, File: a.cfg.File})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (a *app) analyzeCmd() *cobra.Command {
	var (
		file string
		text string
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a judgment without the interactive form",
		Long:  "Analyze a judgment from --file, --text, or standard input and print the summary and analysis.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			closeLog, err := a.configureHeadlessLogging()
			if err != nil {
				return err
			}
			defer closeLog()

			req := ui.Request{File: file, Text: text}
			if file == "" && !cmd.Flags().Changed("text") {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				req.Text = string(data)
			}

			client, err := a.newClient()
			if err != nil {
				return err
			}
			_, err = ui.RunAnalysis(cmd.Context(), cmd.OutOrStdout(), client, req)
			return err
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "PDF file to extract and analyze")
	cmd.Flags().StringVarP(&text, "text", "t", "", "Judgment text to analyze")
	cmd.MarkFlagsMutuallyExclusive("file", "text")
	return cmd
}

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		// The path is still needed when the file fails to load.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), a.resolvedConfigPath())
			return nil
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.resolvedConfigPath()
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			cfg := *a.cfg
			cfg.File = ""
			if err := config.Save(path, &cfg); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.ColorSuccess("Wrote "+path))
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	cmd.AddCommand(initCmd)
	return cmd
}

func (a *app) resolvedConfigPath() string {
	if strings.TrimSpace(a.configPath) != "" {
		return a.configPath
	}
	return config.Path()
}

// configureHeadlessLogging sends logs to stderr, or to the configured file
// when one is set.
func (a *app) configureHeadlessLogging() (func(), error) {
	if a.cfg.LogFile == "" {
		return func() {}, logging.Configure(a.cfg.LogLevel, os.Stderr)
	}
	f, err := logging.ConfigureFile(a.cfg.LogLevel, a.cfg.LogFile)
	if err != nil {
		return nil, err
	}
	return func() { _ = f.Close() }, nil
}
