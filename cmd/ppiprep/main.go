package main

import (
	"flag"
	"os"
	"path/filepath"
	"sync"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/tikz/ppiprep/config"
	"github.com/tikz/ppiprep/disorder"
	"github.com/tikz/ppiprep/fasta"
	"github.com/tikz/ppiprep/store"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	level, err := log.ParseLevel(cfg.Logging.Level)
	if err != nil {
		log.Fatalf("parse log level: %v", err)
	}
	log.SetLevel(level)

	st, err := store.NewStore(cfg.Data.Dir)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}

	reg, err := disorder.NewRegistry(cfg.Disorder.DisProtCSV, cfg.Disorder.IdealCSV, cfg.Disorder.MobiDBCSV)
	if err != nil {
		log.Fatalf("load disorder annotations: %v", err)
	}

	complexes, err := ReadComplexes(cfg.Data.ComplexesCSV)
	if err != nil {
		log.Fatalf("read complexes: %v", err)
	}
	log.Infof("loaded %d complexes from %s", len(complexes), cfg.Data.ComplexesCSV)

	if err := os.MkdirAll(cfg.Data.OutDir, 0755); err != nil {
		log.Fatalf("create output dir: %v", err)
	}

	var (
		mu        sync.Mutex
		records   []fasta.Record
		processed int
		skipped   int
	)

	g := new(errgroup.Group)
	g.SetLimit(cfg.Workers)
	for _, cx := range complexes {
		cx := cx
		g.Go(func() error {
			res, recs, err := ProcessComplex(cfg, st, reg, cx)
			if err != nil {
				log.WithFields(log.Fields{
					"pdb":    cx.PDBID,
					"chains": cx.Chain1 + cx.Chain2,
				}).Warnf("skipping entry: %v", err)
				mu.Lock()
				skipped++
				mu.Unlock()
				return nil
			}
			if err := WriteResult(cfg.Data.OutDir, res); err != nil {
				return err
			}
			log.Debugf("%s %s-%s: %d contacts", cx.PDBID, cx.Chain1, cx.Chain2, res.Contacts)
			mu.Lock()
			records = append(records, recs...)
			processed++
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("write results: %v", err)
	}

	if err := fasta.WriteFile(filepath.Join(cfg.Data.OutDir, "sequences.fasta"), dedupe(records)); err != nil {
		log.Fatalf("write sequences: %v", err)
	}

	log.Infof("processed %d complexes, skipped %d", processed, skipped)
}

// dedupe drops records with a header already seen, keeping input order.
func dedupe(records []fasta.Record) []fasta.Record {
	seen := make(map[string]bool, len(records))
	var out []fasta.Record
	for _, rec := range records {
		if seen[rec.Header] {
			continue
		}
		seen[rec.Header] = true
		out = append(out, rec)
	}
	return out
}
