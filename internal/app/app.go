// Package app wires the document pipeline together: it discovers input
// specs, runs extraction and analysis over the requested documents with
// bounded concurrency, scores everything against the requested persona, and
// writes the ranked output plus a human-readable run report per spec.
package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/docsiftio/docsift/internal/aggregate"
	"github.com/docsiftio/docsift/internal/analyze"
	"github.com/docsiftio/docsift/internal/brief"
	"github.com/docsiftio/docsift/internal/cache"
	"github.com/docsiftio/docsift/internal/extract"
	"github.com/docsiftio/docsift/internal/persona"
	"github.com/docsiftio/docsift/internal/report"
	"github.com/docsiftio/docsift/internal/validate"
)

// analysisCacheVersion tags cached per-document analyses. Bump it whenever
// detection or scoring heuristics change so stale entries are not reused.
const analysisCacheVersion = "1"

// outputFileName is the ranked payload written into each output directory.
const outputFileName = "challenge1b_output.json"

// ErrNoInputSpecs is returned by Run when discovery finds nothing to
// process. The CLI maps it to a non-zero exit code.
var ErrNoInputSpecs = errors.New("no input specs found")

// App is the assembled pipeline for one batch run.
type App struct {
	cfg      Config
	analyzer *analyze.Analyzer
	cache    *cache.AnalysisCache

	// now is swappable in tests to pin output timestamps.
	now func() time.Time
}

// New validates nothing beyond what ValidateConfig already checked and
// performs cache maintenance up front so a run starts from the requested
// cache state.
func New(cfg Config) (*App, error) {
	a := &App{
		cfg:      cfg,
		analyzer: analyze.New(analyze.DefaultConfig()),
		now:      time.Now,
	}
	if cfg.CacheDir != "" {
		if cfg.CacheClear {
			if err := cache.ClearDir(cfg.CacheDir); err != nil {
				return nil, fmt.Errorf("clear cache: %w", err)
			}
		}
		if cfg.CacheMaxAge > 0 {
			if n, err := cache.PurgeByAge(cfg.CacheDir, cfg.CacheMaxAge); err == nil && n > 0 {
				log.Debug().Int("removed", n).Msg("purged aged cache entries")
			}
		}
		a.cache = &cache.AnalysisCache{Dir: cfg.CacheDir, StrictPerms: cfg.CacheStrictPerms}
	}
	return a, nil
}

// Close releases resources held by the App.
func (a *App) Close() {}

// Run processes every discovered input spec. Specs are independent: a
// failing spec is logged and counted but does not stop the batch, and the
// returned error reports the aggregate outcome.
func (a *App) Run(ctx context.Context) error {
	specs, err := discoverSpecs(a.cfg)
	if err != nil {
		return err
	}
	if len(specs) == 0 {
		log.Warn().Str("dir", a.cfg.SpecsDir).Msg("no input specs found")
		return ErrNoInputSpecs
	}

	failed := 0
	for i, specPath := range specs {
		if err := ctx.Err(); err != nil {
			return err
		}
		outDir := outputDirFor(a.cfg.OutputDir, i)
		log.Info().Str("spec", specPath).Str("out", outDir).Msg("processing input spec")
		if err := a.processSpec(ctx, specPath, outDir); err != nil {
			log.Error().Err(err).Str("spec", specPath).Msg("input spec failed")
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d input specs failed", failed, len(specs))
	}
	return nil
}

// processSpec runs the full pipeline for a single input spec and writes its
// artifacts into outDir.
func (a *App) processSpec(ctx context.Context, specPath, outDir string) error {
	b, err := brief.Load(specPath)
	if err != nil {
		return err
	}

	results := a.processDocuments(ctx, b.Documents, b.Persona, b.Job)
	if err := ctx.Err(); err != nil {
		return err
	}
	out := aggregate.Build(results, b.Persona, b.Job, a.now(), a.cfg.MaxSections)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	payload, err := encodeOutput(out)
	if err != nil {
		return err
	}
	outPath := filepath.Join(outDir, outputFileName)
	if err := os.WriteFile(outPath, payload, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	warnings, err := validate.Check(payload)
	if err != nil {
		return fmt.Errorf("validate output: %w", err)
	}
	for _, w := range warnings {
		log.Warn().Str("out", outPath).Msg(w)
	}

	md := report.Markdown(out, results)
	if err := os.WriteFile(filepath.Join(outDir, "report.md"), []byte(md), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if a.cfg.EnablePDF {
		if err := report.WritePDF(md, filepath.Join(outDir, "report.pdf")); err != nil {
			return fmt.Errorf("write report pdf: %w", err)
		}
	}

	log.Info().Str("out", outPath).
		Int("documents", len(b.Documents)).
		Int("sections", len(out.ExtractedSections)).
		Msg("wrote output")
	return nil
}

// processDocuments analyzes the requested documents with bounded
// concurrency. Results are reassembled in input order so output stays
// deterministic regardless of completion order.
func (a *App) processDocuments(ctx context.Context, docs []brief.DocumentRef, who brief.Persona, job brief.Job) []aggregate.DocumentResult {
	proc := persona.NewProcessor(who.Role, job.Task)

	type indexed struct {
		idx int
		res aggregate.DocumentResult
	}
	results := make(chan indexed, len(docs))
	sem := make(chan struct{}, a.cfg.workerCount())

	for i, doc := range docs {
		sem <- struct{}{}
		go func(i int, ref brief.DocumentRef) {
			defer func() { <-sem }()
			results <- indexed{idx: i, res: a.processDocument(ctx, ref, proc)}
		}(i, doc)
	}

	ordered := make([]aggregate.DocumentResult, len(docs))
	for range docs {
		r := <-results
		ordered[r.idx] = r.res
	}
	return ordered
}

// processDocument runs extraction, structural analysis and persona scoring
// for one document. Failures degrade to an empty analysis carrying the
// error so sibling documents and the output metadata are unaffected.
func (a *App) processDocument(ctx context.Context, ref brief.DocumentRef, proc *persona.Processor) aggregate.DocumentResult {
	path := resolveDocPath(a.cfg.InputDir, ref.Filename)
	filename := filepath.Base(ref.Filename)

	analysis := a.analyzeDocument(ctx, path, filename)
	return aggregate.DocumentResult{
		Filename: filename,
		Analysis: proc.Process(analysis),
		Error:    analysis.Metadata.Error,
	}
}

// analyzeDocument produces the structural analysis for one document, via
// the cache when enabled. The cache key covers the document bytes and the
// heuristics version, so edited files and upgraded heuristics both miss.
func (a *App) analyzeDocument(ctx context.Context, path, filename string) analyze.Analysis {
	if err := ctx.Err(); err != nil {
		return analyze.Failed(filename, err)
	}
	if a.cache == nil {
		return a.freshAnalysis(path, filename)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("document", filename).Msg("document unreadable")
		return analyze.Failed(filename, err)
	}
	key := cache.KeyFrom(analysisCacheVersion, raw)
	if data, ok, _ := a.cache.Get(ctx, key); ok {
		var cached analyze.Analysis
		if err := json.Unmarshal(data, &cached); err == nil {
			log.Debug().Str("document", filename).Msg("analysis cache hit")
			cached.Metadata.ProcessingTimestamp = a.now().Format(time.RFC3339)
			return cached
		}
		// Corrupt entries fall through to a fresh analysis.
	}

	analysis := a.freshAnalysis(path, filename)
	if analysis.Metadata.Error == "" {
		if data, err := json.Marshal(analysis); err == nil {
			if err := a.cache.Save(ctx, key, data); err != nil {
				log.Warn().Err(err).Str("document", filename).Msg("analysis cache save failed")
			}
		}
	}
	return analysis
}

// freshAnalysis extracts and analyzes without consulting the cache.
func (a *App) freshAnalysis(path, filename string) analyze.Analysis {
	pages, err := extract.ForFile(path)
	if err != nil {
		log.Warn().Err(err).Str("document", filename).Msg("text extraction failed")
		return analyze.Failed(filename, err)
	}
	return a.analyzer.Analyze(filename, pages)
}

// encodeOutput marshals the payload with two-space indentation and without
// HTML escaping so section titles survive verbatim.
func encodeOutput(out aggregate.Output) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return nil, fmt.Errorf("encode output: %w", err)
	}
	return buf.Bytes(), nil
}
