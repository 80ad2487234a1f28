package main

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/satech-mx/devicebilling/internal/config"
	"github.com/satech-mx/devicebilling/internal/core"
	"github.com/satech-mx/devicebilling/internal/export"
	"github.com/satech-mx/devicebilling/internal/workbook"
)

// errProcessing is the single message shown to the analyst for any workbook
// failure; the underlying cause only goes to the debug log.
var errProcessing = errors.New("could not process the files; make sure both are valid Excel workbooks with the expected structure")

type reconcileFlags struct {
	platformsPath string
	costsPath     string
	outPath       string
	referenceDate string
	graceDays     int
	noExport      bool
}

func (f *reconcileFlags) register(cmd *cobra.Command, cfg config.Config) {
	cmd.Flags().StringVar(&f.platformsPath, "platforms", "", "operations/platforms workbook (.xlsx or .xls)")
	cmd.Flags().StringVar(&f.costsPath, "costs", "", "costs/billing workbook (.xlsx or .xls)")
	cmd.Flags().StringVar(&f.outPath, "out", cfg.OutputPath, "report output path")
	cmd.Flags().StringVar(&f.referenceDate, "reference-date", "", "billing cutoff date, YYYY-MM-DD (default today)")
	cmd.Flags().IntVar(&f.graceDays, "grace-days", cfg.GracePeriodDays, "days a deactivated device stays billable")
	cmd.Flags().BoolVar(&f.noExport, "no-export", false, "print the summary without writing the report file")
	_ = cmd.MarkFlagRequired("platforms")
	_ = cmd.MarkFlagRequired("costs")
}

func (f *reconcileFlags) options() (core.Options, error) {
	if f.graceDays < 0 {
		return core.Options{}, fmt.Errorf("--grace-days must be non-negative, got %d", f.graceDays)
	}

	opts := core.Options{ReferenceDate: time.Now(), GracePeriodDays: f.graceDays}
	if f.referenceDate != "" {
		t, err := time.Parse("2006-01-02", f.referenceDate)
		if err != nil {
			return core.Options{}, fmt.Errorf("invalid --reference-date %q: %w", f.referenceDate, err)
		}
		opts.ReferenceDate = t
	}
	return opts, nil
}

func NewReconcileCommand(cfg config.Config) *cobra.Command {
	flags := &reconcileFlags{}
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Run one reconciliation pass over the platform and cost workbooks.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return runReconcile(cmd, cfg, flags)
		},
	}
	flags.register(cmd, cfg)
	return cmd
}

func runReconcile(cmd *cobra.Command, cfg config.Config, flags *reconcileFlags) error {
	opts, err := flags.options()
	if err != nil {
		return err
	}

	records, err := reconcileFiles(flags.platformsPath, flags.costsPath, opts)
	if err != nil {
		log.Printf("reconcile: %v", err)
		return errProcessing
	}

	cmd.Println(renderSummary(records, cfg))

	if flags.noExport {
		return nil
	}
	if err := export.WriteReport(flags.outPath, records); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	cmd.Printf("Report written to %s\n", flags.outPath)
	return nil
}

// reconcileFiles loads both workbooks fully into memory, then runs the
// engine. A failure on either file aborts the run with no partial results.
func reconcileFiles(platformsPath, costsPath string, opts core.Options) ([]core.ConsolidatedRecord, error) {
	platforms, err := workbook.Open(platformsPath)
	if err != nil {
		return nil, err
	}
	costs, err := workbook.Open(costsPath)
	if err != nil {
		return nil, err
	}
	return core.Reconcile(platforms, costs, opts), nil
}
