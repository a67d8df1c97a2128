package returns

import "math"

const (
	irrMaxIterations = 100
	irrTolerance     = 1e-7

	// Bisection bracket. Rates below -100% are meaningless; 1000% per
	// period is beyond any deal this engine models.
	irrBracketLow  = -0.9999
	irrBracketHigh = 10.0
)

// IRRResult carries the solved rate together with convergence diagnostics.
// Non-convergence is data, not an error: ranking code excludes these
// results instead of crashing.
type IRRResult struct {
	Rate       float64 `json:"rate"`
	Converged  bool    `json:"converged"`
	Iterations int     `json:"iterations"`
}

// NPV discounts a cash-flow vector at the given periodic rate.
// flows[0] sits at t=0 and is typically the negative initial investment.
func NPV(rate float64, flows []float64) float64 {
	total := 0.0
	for t, cf := range flows {
		total += cf / math.Pow(1+rate, float64(t))
	}
	return total
}

// IRR solves NPV(r) = 0 by Newton's method, falling back to bisection when
// the derivative misbehaves or Newton wanders out of bracket. A cash-flow
// vector with no sign change has no real root; the result comes back
// non-converged with rate 0.
func IRR(flows []float64) IRRResult {
	if len(flows) < 2 || !hasSignChange(flows) {
		return IRRResult{Rate: 0, Converged: false, Iterations: 0}
	}

	rate := 0.1
	for i := 1; i <= irrMaxIterations; i++ {
		npv := NPV(rate, flows)
		if math.Abs(npv) < irrTolerance {
			return IRRResult{Rate: rate, Converged: true, Iterations: i}
		}
		deriv := npvDerivative(rate, flows)
		if deriv == 0 || math.IsNaN(deriv) || math.IsInf(deriv, 0) {
			break
		}
		next := rate - npv/deriv
		if math.IsNaN(next) || next <= irrBracketLow || next >= irrBracketHigh {
			break
		}
		rate = next
	}

	return irrBisect(flows)
}

func hasSignChange(flows []float64) bool {
	var pos, neg bool
	for _, cf := range flows {
		if cf > 0 {
			pos = true
		} else if cf < 0 {
			neg = true
		}
	}
	return pos && neg
}

func npvDerivative(rate float64, flows []float64) float64 {
	d := 0.0
	for t := 1; t < len(flows); t++ {
		d -= float64(t) * flows[t] / math.Pow(1+rate, float64(t+1))
	}
	return d
}

// irrBisect is the guaranteed-progress fallback. It only converges if the
// bracket endpoints straddle the root; otherwise it reports failure.
func irrBisect(flows []float64) IRRResult {
	lo, hi := irrBracketLow, irrBracketHigh
	fLo := NPV(lo, flows)
	fHi := NPV(hi, flows)
	if fLo*fHi > 0 {
		return IRRResult{Rate: 0, Converged: false, Iterations: irrMaxIterations}
	}
	var mid float64
	for i := 1; i <= irrMaxIterations; i++ {
		mid = (lo + hi) / 2
		fMid := NPV(mid, flows)
		if math.Abs(fMid) < irrTolerance || (hi-lo)/2 < irrTolerance {
			return IRRResult{Rate: mid, Converged: true, Iterations: i}
		}
		if fLo*fMid < 0 {
			hi = mid
		} else {
			lo = mid
			fLo = fMid
		}
	}
	return IRRResult{Rate: mid, Converged: false, Iterations: irrMaxIterations}
}
