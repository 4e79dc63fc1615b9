package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/orayew2002/excel-fixtures/fixture"
	"github.com/orayew2002/excel-fixtures/generator"
	"github.com/orayew2002/excel-fixtures/internal/config"
	"github.com/spf13/cobra"
)

var (
	configPath string
	outDir     string
	sample     bool
)

var (
	okMark    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).SetString("✓")
	idStyle   = lipgloss.NewStyle().Bold(true)
	pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	doneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "excel-fixtures",
		Short: "Generate static Excel template fixtures",
		Long: `excel-fixtures generates the static spreadsheet template files
(headers, column widths, styling) used as fixtures by the Excel
rendering examples.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "configs/config.toml", "Path to the TOML config file")

	generateCmd := &cobra.Command{
		Use:   "generate [fixture...]",
		Short: "Generate fixture files (all of them when no names are given)",
		Args:  cobra.ArbitraryArgs,
		RunE:  runGenerate,
	}
	generateCmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (overrides config)")
	generateCmd.Flags().BoolVar(&sample, "sample", false, "Fill blank data regions with generated sample rows")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the available fixtures",
		Args:  cobra.NoArgs,
		Run:   runList,
	}

	rootCmd.AddCommand(generateCmd, listCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dir := cfg.Output.Directory
	if outDir != "" {
		dir = outDir
	}

	registry := fixture.NewRegistry()
	fixture.RegisterDefaults(registry)

	opts := fixture.Options{Sample: sample, SampleRows: cfg.Sample.Rows}
	results, err := generator.New(registry, dir, opts).Generate(args)
	if err != nil {
		return err
	}

	for _, res := range results {
		fmt.Printf("%s %s %s\n", okMark, idStyle.Render(res.ID), pathStyle.Render(res.Path))
	}
	fmt.Println(doneStyle.Render(fmt.Sprintf("%d fixture(s) written to %s", len(results), dir)))

	return nil
}

func runList(cmd *cobra.Command, args []string) {
	registry := fixture.NewRegistry()
	fixture.RegisterDefaults(registry)

	for _, fx := range registry.All() {
		fmt.Printf("%-16s %-26s sheet=%q\n", fx.ID, fx.Filename, fx.Sheet)
	}
}
