package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"jobscout-engine/internal/config"
	"jobscout-engine/internal/domain"
	"jobscout-engine/internal/export"
	"jobscout-engine/internal/fetch"
	"jobscout-engine/internal/scrape"
	"jobscout-engine/internal/secrets"
	"jobscout-engine/internal/store"
)

type sourceRun struct {
	source domain.Source
	// the dice feed is re-queried per keyword against a rolling window, so its
	// CSV grows across runs; page-walked boards are rewritten each day
	appendCSV bool
	records   []domain.Record
}

func main() {
	dataDir := os.Getenv("JOBSCOUT_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	userCfgPath, err := config.EnsureUserConfig(dataDir, filepath.Join("config", "config.yml"))
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	raw, err := config.Load(userCfgPath)
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	cfg, check := config.NormalizeAndValidate(raw)
	for _, w := range check.Warnings {
		log.Printf("[config] warning: %s", w)
	}
	if !check.OK() {
		for _, e := range check.Errors {
			log.Printf("[config] error: %s", e)
		}
		log.Fatalf("config invalid (%s)", userCfgPath)
	}

	db, err := store.Open(filepath.Join(dataDir, "jobscout.db"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	if err := store.Migrate(db.Pool); err != nil {
		log.Fatal(err)
	}

	diceKey := ""
	if cfg.Sources.Dice.Enabled {
		diceKey, err = secrets.GetDiceAPIKey(cfg.Sources.Dice.APIKey)
		if err != nil {
			log.Printf("[dice] disabled: %v", err)
			cfg.Sources.Dice.Enabled = false
		}
	}

	fetcher, err := fetch.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	runner := scrape.NewRunner(cfg, fetcher, diceKey)

	var runs []*sourceRun
	if cfg.Sources.CareerBuilder.Enabled {
		runs = append(runs, &sourceRun{source: domain.SourceCareerBuilder})
	}
	if cfg.Sources.Indeed.Enabled {
		runs = append(runs, &sourceRun{source: domain.SourceIndeed})
	}
	if cfg.Sources.Dice.Enabled {
		runs = append(runs, &sourceRun{source: domain.SourceDice, appendCSV: true})
	}

	ctx := context.Background()
	runID, err := store.StartRun(ctx, db.Pool)
	if err != nil {
		log.Fatal(err)
	}

	// Sources run concurrently; each source's own grid stays sequential so
	// records keep fetch order within their source.
	var g errgroup.Group
	for _, sr := range runs {
		sr := sr
		g.Go(func() error {
			sctx, cancel := context.WithTimeout(ctx, 30*time.Minute)
			defer cancel()

			log.Printf("[%s] running...", sr.source)
			recs, err := runner.RunSource(sctx, sr.source)
			if err != nil {
				log.Printf("[%s] run error: %v", sr.source, err)
			}
			sr.records = recs // keep partial results even on error
			return nil
		})
	}
	_ = g.Wait()

	writer := export.NewWriter(cfg.Output.Dir)
	day := time.Now()

	total, added := 0, 0
	for _, sr := range runs {
		total += len(sr.records)

		path, err := writer.WriteRecords(sr.source, sr.records, day, sr.appendCSV)
		if err != nil {
			log.Printf("[%s] csv write failed: %v", sr.source, err)
		} else if path != "" {
			log.Printf("[%s] wrote %d records to %s", sr.source, len(sr.records), path)
		}

		for _, rec := range sr.records {
			ok, err := store.InsertRecordIfNew(ctx, db.Pool, rec, runID)
			if err != nil {
				log.Printf("[%s] insert error source_id=%q: %v", sr.source, rec.SourceID(), err)
				continue
			}
			if ok {
				added++
			}
		}
	}

	status := "finished"
	if total == 0 {
		// an empty run is a reportable outcome, not a failure
		status = "empty"
		log.Printf("[run] no records produced by any source")
	}
	if err := store.FinishRun(ctx, db.Pool, runID, status, total, added); err != nil {
		log.Printf("[run] finish run: %v", err)
	}

	log.Printf("[run] done: records=%d new=%d", total, added)
}
