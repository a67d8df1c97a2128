// Command analyze runs the projection engine over a portfolio file.
// Each property is an independent pure computation, so the batch fans out
// across a bounded worker pool and results are re-ordered afterwards.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"property_proforma/pkg/config"
	"property_proforma/pkg/core/analysis"
	"property_proforma/pkg/core/report"
	"property_proforma/pkg/core/store"
)

func main() {
	godotenv.Load()

	var (
		portfolioPath = flag.String("portfolio", "portfolio.yaml", "portfolio input file (yaml or hjson)")
		configPath    = flag.String("config", "config/engine.yaml", "engine configuration")
		workers       = flag.Int("workers", 4, "parallel analyses")
		save          = flag.Bool("save", false, "persist results to the database")
		htmlOut       = flag.String("html", "", "write an HTML report per property into this directory")
		dateStr       = flag.String("date", "", "analysis date (YYYY-MM-DD, default today)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load engine config")
	}

	deals, err := config.LoadPortfolio(*portfolioPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load portfolio")
	}

	analysisDate := time.Now().UTC().Truncate(24 * time.Hour)
	if *dateStr != "" {
		analysisDate, err = time.Parse("2006-01-02", *dateStr)
		if err != nil {
			log.WithError(err).Fatal("bad -date")
		}
	}

	var repo *store.AnalysisRepo
	if *save {
		if err := store.InitDB(context.Background(), os.Getenv("DATABASE_URL")); err != nil {
			log.WithError(err).Fatal("failed to initialize database")
		}
		defer store.Close()
		repo = store.NewAnalysisRepo()
	}

	engine := analysis.NewEngine(cfg.Exits, cfg.Thresholds)
	results := runAll(engine, deals, analysisDate, *workers)

	failed := 0
	for i, r := range results {
		name := deals[i].Property.Name
		if r.err != nil {
			failed++
			log.WithError(r.err).WithField("property", name).Error("analysis failed")
			continue
		}
		printSummary(r.res)

		if repo != nil {
			if err := repo.Save(context.Background(), r.res); err != nil {
				log.WithError(err).WithField("property", name).Error("failed to persist")
			}
		}
		if *htmlOut != "" {
			if err := writeHTML(*htmlOut, r.res); err != nil {
				log.WithError(err).WithField("property", name).Error("failed to write report")
			}
		}
	}

	log.WithFields(log.Fields{"total": len(deals), "failed": failed}).Info("batch complete")
	if failed > 0 {
		os.Exit(1)
	}
}

type outcome struct {
	res *analysis.Result
	err error
}

// runAll fans deals out over a worker pool and returns outcomes in input
// order.
func runAll(engine *analysis.Engine, deals []config.Deal, date time.Time, workers int) []outcome {
	if workers < 1 {
		workers = 1
	}
	results := make([]outcome, len(deals))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res, err := engine.Run(deals[i].Property, deals[i].Financing, date)
				results[i] = outcome{res: res, err: err}
			}
		}()
	}
	for i := range deals {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return results
}

func printSummary(res *analysis.Result) {
	s := res.Summary
	fmt.Printf("\n%s [%s]\n", s.PropertyName, s.AssetClass)
	fmt.Printf("  cap rate %.2f%%  cash-on-cash %.2f%%  DSCR %.2f  monthly $%.0f\n",
		s.Year1CapRate*100, s.Year1CashOnCash*100, s.Year1DSCR, s.MonthlyCashFlow)
	if s.HoldIRR != nil {
		fmt.Printf("  hold IRR %.2f%%\n", *s.HoldIRR*100)
	} else {
		fmt.Printf("  hold IRR n/a\n")
	}
	fmt.Printf("  decision: %s (%s)\n", s.Decision, s.Rationale)
}

func writeHTML(dir string, res *analysis.Result) error {
	html, err := report.HTML(res)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(dir, res.Summary.RunID+".html")
	return os.WriteFile(path, []byte(html), 0o644)
}
