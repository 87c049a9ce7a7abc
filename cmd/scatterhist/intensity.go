package main

import (
	"context"
	"fmt"
	"os"

	"github.com/cwbudde/scatterhist/internal/axis"
	"github.com/cwbudde/scatterhist/internal/composite"
	"github.com/cwbudde/scatterhist/internal/formfactor"
	"github.com/cwbudde/scatterhist/internal/hydrate"
	"github.com/cwbudde/scatterhist/internal/manager"
	"github.com/cwbudde/scatterhist/internal/molecule"
	"github.com/cwbudde/scatterhist/internal/report"
	"github.com/spf13/cobra"
)

var (
	intAtomsPath string
	intQMin      float64
	intQMax      float64
	intQN        int
	intRMax      float64
	intRBins     int
	intCW        float64
	intCX        float64
	intOut       string
	intExv       string
	intSymmetry  bool
)

var intensityCmd = &cobra.Command{
	Use:   "intensity",
	Short: "Compute the scattering intensity curve I(q) for an atomic model",
	RunE:  runIntensity,
}

func init() {
	intensityCmd.Flags().StringVar(&intAtomsPath, "atoms", "", "Atom file path (required)")
	intensityCmd.Flags().Float64Var(&intQMin, "q-min", 0, "Minimum q, Å⁻¹")
	intensityCmd.Flags().Float64Var(&intQMax, "q-max", 1.0, "Maximum q, Å⁻¹")
	intensityCmd.Flags().IntVar(&intQN, "q-n", 1000, "Number of q points")
	intensityCmd.Flags().Float64Var(&intRMax, "r-max", 1000, "Maximum distance axis value, Å")
	intensityCmd.Flags().IntVar(&intRBins, "r-bins", 1000, "Number of distance histogram bins")
	intensityCmd.Flags().Float64Var(&intCW, "cw", 1.0, "Hydration-shell contrast scaling factor")
	intensityCmd.Flags().Float64Var(&intCX, "cx", 0.0, "Excluded-volume scaling factor")
	intensityCmd.Flags().StringVar(&intOut, "out", "", "CSV output path (stdout if omitted)")
	intensityCmd.Flags().StringVar(&intExv, "exv", "average", "Excluded-volume strategy: none, average, explicit, grid, grid-surface")
	intensityCmd.Flags().BoolVar(&intSymmetry, "symmetry", false, "Evaluate each body's symmetry transforms combinatorially")
	intensityCmd.MarkFlagRequired("atoms")
}

// parseExvVariant maps a --exv flag value to the axis.ExvVariant it
// selects.
func parseExvVariant(s string) (axis.ExvVariant, error) {
	switch s {
	case "none":
		return axis.ExvNone, nil
	case "average":
		return axis.ExvAverage, nil
	case "explicit":
		return axis.ExvExplicit, nil
	case "grid":
		return axis.ExvGrid, nil
	case "grid-surface":
		return axis.ExvGridSurface, nil
	default:
		return 0, fmt.Errorf("unknown --exv value %q", s)
	}
}

// buildExvStrategy constructs the formfactor.ExvStrategy settings.Exv
// selects. The grid-based variants need the molecule's voxel occupancy
// snapshot, computed via hydrate.Snapshot, the entry point that
// collaborator exists for.
func buildExvStrategy(variant axis.ExvVariant, mol *molecule.Molecule) formfactor.ExvStrategy {
	switch variant {
	case axis.ExvNone:
		return formfactor.NoneExv{}
	case axis.ExvExplicit:
		return formfactor.ExplicitExv{}
	case axis.ExvGrid:
		snap := hydrate.Snapshot(mol, hydrate.DefaultSettings())
		return formfactor.GridExv{Snapshot: snap}
	case axis.ExvGridSurface:
		snap := hydrate.Snapshot(mol, hydrate.DefaultSettings())
		return formfactor.GridSurfaceExv{
			GridExv:   formfactor.GridExv{Snapshot: snap},
			Converter: formfactor.UnimplementedSurfaceConverter{},
		}
	default:
		return formfactor.AverageExv{}
	}
}

func buildComposite(atomsPath string, q axis.QAxis, r axis.RAxis, settings axis.Settings) (*composite.Histogram, error) {
	mol, err := loadMolecule(atomsPath)
	if err != nil {
		return nil, err
	}
	waters, err := (hydrate.GridPlacer{}).Place(mol, hydrate.DefaultSettings())
	if err != nil {
		return nil, err
	}
	mol.Waters = waters

	mgr, err := manager.New(mol, q, r, settings)
	if err != nil {
		return nil, err
	}
	partitioned, err := mgr.Evaluate(context.Background())
	if err != nil {
		return nil, err
	}

	waterCurve := formfactor.Evaluate(formfactor.OxygenHydroxyl, q)
	exv := buildExvStrategy(settings.Exv, mol)
	table := formfactor.NewTable(q, waterCurve, exv)
	ch := composite.New(partitioned, table)
	if err := ch.Validate(); err != nil {
		return nil, err
	}
	return ch, nil
}

func runIntensity(cmd *cobra.Command, args []string) error {
	q := axis.QAxis{Min: intQMin, Max: intQMax, N: intQN}
	r := axis.RAxis{Max: intRMax, Bins: intRBins}

	variant, err := parseExvVariant(intExv)
	if err != nil {
		return err
	}
	settings := axis.DefaultSettings()
	settings.Exv = variant
	settings.UseSymmetry = intSymmetry

	ch, err := buildComposite(intAtomsPath, q, r, settings)
	if err != nil {
		return err
	}
	if err := ch.ApplyWaterScaling(intCW); err != nil {
		return err
	}
	if err := ch.ApplyExvScaling(intCX); err != nil {
		return err
	}

	iq := ch.DebyeTransform()
	qvals := make([]float64, q.N)
	for i := range qvals {
		qvals[i] = q.At(i)
	}

	out := os.Stdout
	if intOut != "" {
		f, err := os.Create(intOut)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return report.NewCSVWriter(out).Write(qvals, iq)
}
