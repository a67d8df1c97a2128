package exits

import "sort"

// RankByIRR returns scenarios ordered best-first by IRR. Scenarios with a
// nil IRR (perpetual holds, non-convergent solves) are not comparable on
// this metric and are excluded, not sorted to the bottom.
func RankByIRR(scenarios []Scenario) []Scenario {
	ranked := make([]Scenario, 0, len(scenarios))
	for _, s := range scenarios {
		if s.IRR != nil {
			ranked = append(ranked, s)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return *ranked[i].IRR > *ranked[j].IRR
	})
	return ranked
}

// RankByTotalReturn orders scenarios best-first by nominal total return,
// excluding scenarios where total return is not applicable.
func RankByTotalReturn(scenarios []Scenario) []Scenario {
	ranked := make([]Scenario, 0, len(scenarios))
	for _, s := range scenarios {
		if s.TotalReturn != nil {
			ranked = append(ranked, s)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return *ranked[i].TotalReturn > *ranked[j].TotalReturn
	})
	return ranked
}

// Find returns the scenario of the given type, or nil.
func Find(scenarios []Scenario, typ ScenarioType) *Scenario {
	for i := range scenarios {
		if scenarios[i].Type == typ {
			return &scenarios[i]
		}
	}
	return nil
}
