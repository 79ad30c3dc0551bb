package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cv-portfolio-agent/internal/analysis"
	"cv-portfolio-agent/internal/artifacts"
	"cv-portfolio-agent/internal/config"
	"cv-portfolio-agent/internal/extraction"
	"cv-portfolio-agent/internal/generation"
	"cv-portfolio-agent/internal/llm"
	"cv-portfolio-agent/internal/logging"
	"cv-portfolio-agent/internal/observability"
	"cv-portfolio-agent/internal/pipeline"
	"cv-portfolio-agent/internal/ui"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the full CV to portfolio pipeline end-to-end",
	Long: `Orchestrates the entire generation process: file selection -> text extraction -> CV analysis -> portfolio generation -> output.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runPipelineCmd,
}

var (
	runConfigPath string
	runCVPath     string
	runBrainModel string
	runCoderModel string
	runOutputDir  string
	runNoGUI      bool
	runVerbose    bool
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVar(&runCVPath, "cv", "", "Path to the CV PDF (skips the file picker)")
	runCommand.Flags().StringVar(&runBrainModel, "brain-model", "", "Reasoning model used for CV analysis")
	runCommand.Flags().StringVar(&runCoderModel, "coder-model", "", "Code model used for HTML generation")
	runCommand.Flags().StringVarP(&runOutputDir, "output-dir", "o", "", "Directory for generated artifacts")
	runCommand.Flags().BoolVar(&runNoGUI, "no-gui", false, "Use console prompts instead of dialogs")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(runCommand)
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.Load(runConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("cv") {
		cfg.CVPath = runCVPath
	}
	if cmd.Flags().Changed("brain-model") {
		cfg.BrainModel = runBrainModel
	}
	if cmd.Flags().Changed("coder-model") {
		cfg.CoderModel = runCoderModel
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = runOutputDir
	}
	if cmd.Flags().Changed("no-gui") {
		cfg.NoGUI = runNoGUI
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}

	// Step 3: Apply defaults for unset values, then validate
	cfg = cfg.MergeWithDefaults(config.Default())
	if err := cfg.Validate(); err != nil {
		return err
	}

	logging.Setup(cfg.Verbose)

	return runPipeline(ctx, cfg)
}

func runPipeline(ctx context.Context, cfg config.Config) error {
	gateway, err := llm.NewOllamaGateway(llm.WithSettleDelay(cfg.SettleDelay()))
	if err != nil {
		return fmt.Errorf("failed to create model gateway: %w", err)
	}

	delims := llm.DelimiterPair{Open: cfg.ReasoningOpen, Close: cfg.ReasoningClose}

	analysisOpts := llm.DefaultOptions()
	analysisOpts.Temperature = cfg.AnalysisTemperature
	analysisOpts.ContextWindow = cfg.ContextWindow
	analysisOpts.MaxTokens = cfg.MaxTokens

	generationOpts := analysisOpts
	generationOpts.Temperature = cfg.GenerationTemperature

	analyzer := analysis.New(gateway, cfg.BrainModel, analysisOpts, delims)
	generator := generation.New(gateway, cfg.CoderModel, generationOpts)

	store, err := artifacts.NewStore(cfg.OutputDir)
	if err != nil {
		return err
	}

	var uiSvc ui.Service
	if cfg.NoGUI {
		uiSvc = ui.NewConsole(os.Stdin, os.Stdout)
	} else {
		uiSvc = ui.NewDialogs()
	}

	opts := pipeline.Options{CVPath: cfg.CVPath}
	if cfg.Verbose {
		opts.Printer = observability.NewPrinter(os.Stdout)
	}

	p := pipeline.New(extraction.NewPDFExtractor(), analyzer, generator, store, uiSvc, opts)

	_, err = p.Run(ctx)
	return err
}
