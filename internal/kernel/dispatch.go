package kernel

import (
	"log/slog"

	"github.com/cwbudde/scatterhist/internal/point"
	"golang.org/x/sys/cpu"
)

// Backend identifies which pairwise-evaluation path is active.
type Backend int

const (
	BackendScalar Backend = iota
	BackendSSE
	BackendAVX
)

func (b Backend) String() string {
	switch b {
	case BackendSSE:
		return "sse"
	case BackendAVX:
		return "avx"
	case BackendScalar:
		return "scalar"
	default:
		return "unknown"
	}
}

// ActiveBackend reports which backend was selected at package init.
var ActiveBackend Backend

// evalOneDispatch, evalQuadDispatch and evalOctoDispatch form the
// package-level function-pointer dispatch table behind EvalOne,
// EvalQuad and EvalOcto; init() sets them from detected CPU features
// and ForceBackend can override them.
var (
	evalOneDispatch   func(anchor, other point.Point, cfg Config) Result
	evalQuadDispatch  func(anchor point.Point, others [4]point.Point, cfg Config) QuadResult
	evalOctoDispatch  func(anchor point.Point, others [8]point.Point, cfg Config) OctoResult
)

func init() {
	switch {
	case cpu.X86.HasAVX2:
		ActiveBackend = BackendAVX
		evalOneDispatch = Vector128One
		evalQuadDispatch = Vector128Quad
		evalOctoDispatch = Vector256Octo
		slog.Debug("kernel backend selected", "backend", "avx", "width", "256-bit")
	case cpu.X86.HasSSE41:
		ActiveBackend = BackendSSE
		evalOneDispatch = Vector128One
		evalQuadDispatch = Vector128Quad
		evalOctoDispatch = EvalScalarOcto
		slog.Debug("kernel backend selected", "backend", "sse", "width", "128-bit")
	default:
		ActiveBackend = BackendScalar
		evalOneDispatch = EvalScalarOne
		evalQuadDispatch = EvalScalarQuad
		evalOctoDispatch = EvalScalarOcto
		slog.Debug("kernel backend selected", "backend", "scalar", "reason", "no SIMD-equivalent feature detected")
	}
}

// EvalOne evaluates a single pair via the active backend.
func EvalOne(anchor, other point.Point, cfg Config) Result {
	return evalOneDispatch(anchor, other, cfg)
}

// EvalOneRounded evaluates a single pair with bin rounding via the
// active backend.
func EvalOneRounded(anchor, other point.Point, cfg Config) RoundedResult {
	r := EvalOne(anchor, other, cfg)
	return RoundedResult{Bin: roundBin(r.Distance * cfg.InvBinWidth), Weight: r.Weight, FFPair: r.FFPair}
}

// EvalQuad evaluates four pairs via the active backend.
func EvalQuad(anchor point.Point, others [4]point.Point, cfg Config) QuadResult {
	return evalQuadDispatch(anchor, others, cfg)
}

// EvalQuadRounded evaluates four pairs with bin rounding via the active
// backend.
func EvalQuadRounded(anchor point.Point, others [4]point.Point, cfg Config) QuadRoundedResult {
	q := EvalQuad(anchor, others, cfg)
	var out QuadRoundedResult
	for i := range q.Distances {
		out.Bins[i] = roundBin(q.Distances[i] * cfg.InvBinWidth)
		out.Weights[i] = q.Weights[i]
		out.FFPairs[i] = q.FFPairs[i]
	}
	return out
}

// EvalOcto evaluates eight pairs via the active backend.
func EvalOcto(anchor point.Point, others [8]point.Point, cfg Config) OctoResult {
	return evalOctoDispatch(anchor, others, cfg)
}

// EvalOctoRounded evaluates eight pairs with bin rounding via the
// active backend.
func EvalOctoRounded(anchor point.Point, others [8]point.Point, cfg Config) OctoRoundedResult {
	o := EvalOcto(anchor, others, cfg)
	var out OctoRoundedResult
	for i := range o.Distances {
		out.Bins[i] = roundBin(o.Distances[i] * cfg.InvBinWidth)
		out.Weights[i] = o.Weights[i]
		out.FFPairs[i] = o.FFPairs[i]
	}
	return out
}

// ForceBackend overrides the active backend for testing and
// benchmarking. It must be called before any evaluation and is not
// safe for concurrent use.
func ForceBackend(b Backend) {
	switch b {
	case BackendAVX:
		ActiveBackend = BackendAVX
		evalOneDispatch = Vector128One
		evalQuadDispatch = Vector128Quad
		evalOctoDispatch = Vector256Octo
	case BackendSSE:
		ActiveBackend = BackendSSE
		evalOneDispatch = Vector128One
		evalQuadDispatch = Vector128Quad
		evalOctoDispatch = EvalScalarOcto
	default:
		ActiveBackend = BackendScalar
		evalOneDispatch = EvalScalarOne
		evalQuadDispatch = EvalScalarQuad
		evalOctoDispatch = EvalScalarOcto
	}
}
