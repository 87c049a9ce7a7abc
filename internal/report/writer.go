// Package report writes a computed scattering curve to an output
// stream, for the CLI's intensity subcommand.
package report

// Writer writes a q/I(q) curve. len(q) must equal len(iq).
type Writer interface {
	Write(q, iq []float64) error
}
