package config

import (
	"fmt"
	"os"
	"time"

	"property_proforma/pkg/core/property"
)

// PortfolioFile is the batch-input format: a list of deals to analyze.
// Rates here may be percentages (e.g. 5 for 5%) or fractions; loading
// normalizes them.
type PortfolioFile struct {
	Properties []DealEntry `yaml:"properties" json:"properties"`
}

// DealEntry is one property plus its financing as written in an input
// file. Dates are strings so the same struct round-trips through YAML
// and HJSON.
type DealEntry struct {
	Property        property.Profile        `yaml:"property" json:"property"`
	Financing       property.FinancingTerms `yaml:"financing" json:"financing"`
	AcquisitionDate string                  `yaml:"acquisition_date" json:"acquisition_date"`
}

// Deal is a fully normalized, validated unit of work for the engine.
type Deal struct {
	Property  property.Profile
	Financing property.FinancingTerms
}

// LoadPortfolio reads a portfolio file (YAML by default, HJSON for
// .hjson/.json extensions), normalizes all rate fields, and validates
// every entry before returning any.
func LoadPortfolio(path string) ([]Deal, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read portfolio %s: %w", path, err)
	}

	var file PortfolioFile
	if err := unmarshalByExt(path, data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse portfolio %s: %w", path, err)
	}
	if len(file.Properties) == 0 {
		return nil, fmt.Errorf("portfolio %s contains no properties", path)
	}

	deals := make([]Deal, 0, len(file.Properties))
	for i, entry := range file.Properties {
		deal, err := entry.Normalize()
		if err != nil {
			return nil, fmt.Errorf("portfolio entry %d (%s): %w", i, entry.Property.Name, err)
		}
		deals = append(deals, deal)
	}
	return deals, nil
}

// Normalize converts one raw entry into an engine-ready deal: rates to
// fractions, date parsed, inputs validated.
func (e DealEntry) Normalize() (Deal, error) {
	prop := e.Property.Normalized()
	fin := e.Financing.Normalized()

	if e.AcquisitionDate != "" {
		d, err := time.Parse("2006-01-02", e.AcquisitionDate)
		if err != nil {
			return Deal{}, fmt.Errorf("bad acquisition date %q: %w", e.AcquisitionDate, err)
		}
		prop.AcquisitionDate = d
	}

	if err := prop.Validate(); err != nil {
		return Deal{}, err
	}
	if err := fin.Validate(); err != nil {
		return Deal{}, err
	}
	return Deal{Property: prop, Financing: fin}, nil
}
