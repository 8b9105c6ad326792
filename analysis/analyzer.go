package analysis

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/TFMV/cyclomatic/cache"
	"github.com/TFMV/cyclomatic/db"
	"github.com/TFMV/cyclomatic/lang"
	"github.com/TFMV/cyclomatic/types"
	"golang.org/x/sync/errgroup"
)

// extLanguages maps file extensions to registry language tags.
var extLanguages = map[string]string{
	".java": "java",
	".js":   "javascript",
	".mjs":  "javascript",
	".cjs":  "javascript",
	".py":   "python",
}

// Analyzer provides a high-level interface for complexity analysis and
// storage.
type Analyzer struct {
	DB       db.DB
	Cache    *cache.ResultCache
	Registry *lang.Registry
}

// NewAnalyzer creates an Analyzer backed by SurrealDB.
func NewAnalyzer(config db.Config) (*Analyzer, error) {
	sdb, err := db.NewSurrealDB(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection: %w", err)
	}

	return &Analyzer{
		DB:       sdb,
		Cache:    cache.NewResultCache(10000),
		Registry: lang.NewDefaultRegistry(),
	}, nil
}

// NewLocalAnalyzer creates an Analyzer with no storage backend.
func NewLocalAnalyzer() *Analyzer {
	return &Analyzer{
		Cache:    cache.NewResultCache(10000),
		Registry: lang.NewDefaultRegistry(),
	}
}

// Initialize sets up the database connection and schema.
func (a *Analyzer) Initialize(ctx context.Context) error {
	if a.DB == nil {
		return nil
	}
	return a.DB.Initialize(ctx)
}

// AnalyzeSource scores a single snippet, consulting the result cache first.
func (a *Analyzer) AnalyzeSource(code, language string) (types.Report, error) {
	language = strings.ToLower(language)
	if a.Cache != nil {
		if report, ok := a.Cache.Get(language, code); ok {
			return report, nil
		}
	}

	report, err := a.Registry.Analyze(code, language)
	if err != nil {
		return types.Report{}, err
	}

	if a.Cache != nil {
		a.Cache.Put(language, code, report)
	}
	return report, nil
}

// StoreDirectory analyzes a directory tree and stores the results.
func (a *Analyzer) StoreDirectory(ctx context.Context, dir string) error {
	report, err := a.AnalyzeDirectory(ctx, dir)
	if err != nil {
		return fmt.Errorf("failed to analyze directory: %w", err)
	}

	if err := a.DB.StoreReport(ctx, report); err != nil {
		return fmt.Errorf("failed to store analysis results: %w", err)
	}

	return nil
}

// AnalyzeDirectory scans a directory tree, scoring every file whose
// extension maps to a supported language. Files are analyzed concurrently;
// the collected reports are sorted by path.
func (a *Analyzer) AnalyzeDirectory(ctx context.Context, dir string) (types.DirectoryReport, error) {
	var filePaths []string
	if err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to walk directory: %w", err)
		}
		if !d.IsDir() {
			if _, ok := extLanguages[filepath.Ext(path)]; ok {
				filePaths = append(filePaths, path)
			}
		}
		return nil
	}); err != nil {
		return types.DirectoryReport{}, fmt.Errorf("failed to scan directory %s: %w", dir, err)
	}

	g, ctx := errgroup.WithContext(ctx)
	resultCh := make(chan types.FileReport, len(filePaths))

	// Process files concurrently
	for _, path := range filePaths {
		path := path
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("error reading %s: %w", path, err)
			}

			language := extLanguages[filepath.Ext(path)]
			report, err := a.AnalyzeSource(string(data), language)
			if err != nil {
				return fmt.Errorf("error analyzing %s: %w", path, err)
			}

			select {
			case <-ctx.Done():
				return ctx.Err()
			case resultCh <- types.FileReport{File: path, Language: language, Report: report}:
				return nil
			}
		})
	}

	// Close results channel when all goroutines complete
	go func() {
		g.Wait()
		close(resultCh)
	}()

	var report types.DirectoryReport
	for res := range resultCh {
		report.Files = append(report.Files, res)
		report.Summary.TotalMethods += res.Report.Summary.TotalMethods
		report.Summary.TotalComplexity += res.Report.Summary.TotalComplexity
	}

	if err := g.Wait(); err != nil {
		return types.DirectoryReport{}, err
	}

	sort.Slice(report.Files, func(i, j int) bool {
		return report.Files[i].File < report.Files[j].File
	})

	return report, nil
}
