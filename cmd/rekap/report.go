package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/muhammadsalmanfarrisi/Rumah-Sakit/internal/config"
	"github.com/muhammadsalmanfarrisi/Rumah-Sakit/internal/exporter"
	"github.com/muhammadsalmanfarrisi/Rumah-Sakit/internal/logging"
	"github.com/muhammadsalmanfarrisi/Rumah-Sakit/internal/service/recap"
)

func newReportCmd(load configLoader) *cobra.Command {
	var (
		output  string
		variant string
		sheet   string
		quiet   bool
	)

	cmd := &cobra.Command{
		Use:   "report <input.xlsx>",
		Short: "Generate the recap workbook for one export file",
		Long: `Generate the recap workbook (Summary, Grouped Summary, Detailed Data)
for one guarantee-letter export.

Example: rekap report klaim-juni.xlsx -o rekap.xlsx --variant submission`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := load()
			if err != nil {
				return err
			}
			if sheet != "" {
				cfg.Report.SheetName = sheet
			}
			log := logging.New(cfg.Log)

			opts, err := recap.OptionsFromConfig(cfg.Report, variant)
			if err != nil {
				return err
			}

			report, err := recap.NewPipeline(opts, log).Run(args[0])
			if err != nil {
				return err
			}

			if output == "" {
				output = defaultOutputPath(args[0], opts.Variant.Name)
			}
			if err := exporter.NewExporter().Save(report, output, exporter.ExportOptions{}); err != nil {
				return err
			}

			log.Info().
				Str("output", output).
				Str("variant", opts.Variant.Name).
				Int("hospitals", len(report.Summary.Rows)).
				Int("eligible_rows", report.Stats.EligibleRows).
				Int("aged_rows", report.Stats.AgedRows).
				Int("date_parse_failures", report.Stats.DateParseFailures).
				Msg("report written")

			if !quiet {
				printReport(cmd.OutOrStdout(), report)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output workbook (default: <input>-rekap-<variant>.xlsx)")
	cmd.Flags().StringVar(&variant, "variant", "", fmt.Sprintf("aging variant: %s|%s (default from config)", config.VariantVerification, config.VariantSubmission))
	cmd.Flags().StringVar(&sheet, "sheet", "", "input sheet name (default: first sheet)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not print the summary tables")
	return cmd
}

func defaultOutputPath(input, variant string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return fmt.Sprintf("%s-rekap-%s.xlsx", base, variant)
}
