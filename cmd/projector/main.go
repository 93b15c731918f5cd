package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/planfolio/projector/internal/calculation"
	"github.com/planfolio/projector/internal/config"
	"github.com/planfolio/projector/internal/output"
	"github.com/planfolio/projector/internal/server"
)

var (
	inputPath  string
	format     string
	outputPath string
	saveFile   bool
	asOfYear   int
	verbose    bool
	port       int
)

// stderrLogger adapts the standard log package to the engine's Logger.
type stderrLogger struct{}

func (stderrLogger) Debugf(format string, args ...any) { log.Printf("DEBUG "+format, args...) }
func (stderrLogger) Infof(format string, args ...any)  { log.Printf("INFO  "+format, args...) }
func (stderrLogger) Warnf(format string, args ...any)  { log.Printf("WARN  "+format, args...) }
func (stderrLogger) Errorf(format string, args ...any) { log.Printf("ERROR "+format, args...) }

var rootCmd = &cobra.Command{
	Use:   "projector",
	Short: "Retirement plan projection engine",
	Long: `projector turns a YAML retirement plan (wages, investments,
annuities, global assumptions) into year-by-year balance and income
series for charting: gross, after-tax, and inflation-adjusted.`,
	SilenceUsage: true,
}

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project a plan file and print or save the result",
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewPlanParser()
		plan, err := parser.LoadFromFile(inputPath)
		if err != nil {
			return err
		}
		for _, warning := range parser.Lint(plan) {
			fmt.Fprintln(os.Stderr, "warning:", warning)
		}

		engine := calculation.NewEngine(asOfYear)
		if verbose {
			engine.SetLogger(stderrLogger{})
		}
		report := engine.BuildReport(plan)

		formatter := output.GetFormatterByName(format)
		if formatter == nil {
			return fmt.Errorf("unknown format %q (available: %v)", format, output.AvailableFormatterNames())
		}
		if saveFile && outputPath == "" {
			name, err := output.WriteFormatted(formatter, report, output.DefaultExtension(formatter))
			if err != nil {
				return fmt.Errorf("failed to save report: %w", err)
			}
			fmt.Printf("wrote %s\n", name)
			return nil
		}

		data, err := formatter.Format(report)
		if err != nil {
			return fmt.Errorf("formatting failed: %w", err)
		}
		if outputPath != "" {
			if err := os.WriteFile(outputPath, data, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outputPath, err)
			}
			fmt.Printf("wrote %s\n", outputPath)
			return nil
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve projections over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		var logger calculation.Logger = stderrLogger{}
		if !verbose {
			logger = calculation.NopLogger{}
		}
		srv := server.New(asOfYear, logger)
		addr := fmt.Sprintf(":%d", port)
		log.Printf("projection server starting on %s", addr)
		return srv.ListenAndServe(addr)
	},
}

var exampleCmd = &cobra.Command{
	Use:   "example [path]",
	Short: "Write a starter plan file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "plan.yaml"
		if len(args) > 0 {
			path = args[0]
		}
		if err := config.NewPlanParser().WriteExamplePlan(path); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&asOfYear, "as-of-year", 0, "anchor year for projections (default: current year)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable engine logging")

	projectCmd.Flags().StringVarP(&inputPath, "input", "i", "plan.yaml", "plan file to project")
	projectCmd.Flags().StringVarP(&format, "format", "f", "console", "output format (console, csv, json, chart)")
	projectCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write output to file instead of stdout")
	projectCmd.Flags().BoolVarP(&saveFile, "save", "s", false, "write output to a timestamped report file")

	serveCmd.Flags().IntVarP(&port, "port", "p", 8080, "HTTP listen port")

	rootCmd.AddCommand(projectCmd, serveCmd, exampleCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
