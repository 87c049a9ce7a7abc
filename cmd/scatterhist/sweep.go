package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/cwbudde/scatterhist/internal/axis"
	"github.com/spf13/cobra"
)

var (
	sweepAtomsPath string
	sweepCWSteps   int
	sweepCXSteps   int
	sweepRMax      float64
	sweepRBins     int
	sweepExv       string
	sweepSymmetry  bool
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Evaluate I(q) across a grid of (cw, cx) pairs and report per-evaluation timing",
	Long: `sweep demonstrates the cached intensity evaluator's parameter-sweep
speedup: the expensive distance-histogram and per-type Debye pass run once,
then every (cw, cx) combination is a cheap O(Q) recombination. With a
grid-based --exv variant, every cx change rebuilds the cache instead.`,
	RunE: runSweep,
}

func init() {
	sweepCmd.Flags().StringVar(&sweepAtomsPath, "atoms", "", "Atom file path (required)")
	sweepCmd.Flags().IntVar(&sweepCWSteps, "cw-steps", 5, "Number of c_w values to sweep")
	sweepCmd.Flags().IntVar(&sweepCXSteps, "cx-steps", 5, "Number of c_x values to sweep")
	sweepCmd.Flags().Float64Var(&sweepRMax, "r-max", 1000, "Maximum distance axis value, Å")
	sweepCmd.Flags().IntVar(&sweepRBins, "r-bins", 1000, "Number of distance histogram bins")
	sweepCmd.Flags().StringVar(&sweepExv, "exv", "average", "Excluded-volume strategy: none, average, explicit, grid, grid-surface")
	sweepCmd.Flags().BoolVar(&sweepSymmetry, "symmetry", false, "Evaluate each body's symmetry transforms combinatorially")
	sweepCmd.MarkFlagRequired("atoms")
}

func runSweep(cmd *cobra.Command, args []string) error {
	q := axis.DefaultQAxis()
	r := axis.RAxis{Max: sweepRMax, Bins: sweepRBins}

	variant, err := parseExvVariant(sweepExv)
	if err != nil {
		return err
	}
	settings := axis.DefaultSettings()
	settings.Exv = variant
	settings.UseSymmetry = sweepSymmetry

	buildStart := time.Now()
	ch, err := buildComposite(sweepAtomsPath, q, r, settings)
	if err != nil {
		return err
	}
	slog.Info("histogram and form-factor table built", "elapsed", time.Since(buildStart))

	var evalTotal time.Duration
	count := 0
	for i := 0; i < sweepCWSteps; i++ {
		cw := step(i, sweepCWSteps)
		for j := 0; j < sweepCXSteps; j++ {
			cx := step(j, sweepCXSteps)
			if err := ch.ApplyWaterScaling(cw); err != nil {
				return err
			}
			if err := ch.ApplyExvScaling(cx); err != nil {
				return err
			}
			start := time.Now()
			_ = ch.DebyeTransform()
			evalTotal += time.Since(start)
			count++
		}
	}
	fmt.Printf("%d evaluations, %s total, %s per evaluation\n", count, evalTotal, evalTotal/time.Duration(count))
	return nil
}

// step maps index i in [0, steps) onto [0, 1], collapsing to 0 when
// steps <= 1 so a single-step sweep doesn't divide by zero.
func step(i, steps int) float64 {
	if steps <= 1 {
		return 0
	}
	return float64(i) / float64(steps-1)
}
