package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/TFMV/cyclomatic"
	"github.com/TFMV/cyclomatic/analysis"
	"github.com/TFMV/cyclomatic/server"
	"github.com/docopt/docopt-go"
)

const usage = `cyclomatic - heuristic cyclomatic complexity analyzer.

Usage:
  cyclomatic scan <dir> [--store] [--db=<url>] [--namespace=<ns>] [--database=<db>] [--db-user=<user>] [--db-pass=<pass>]
  cyclomatic serve [--addr=<addr>]
  cyclomatic languages
  cyclomatic -h | --help

Options:
  -h --help          Show this screen.
  --store            Store scan results in SurrealDB.
  --addr=<addr>      HTTP listen address [default: :8080].
  --db=<url>         SurrealDB connection URL [default: ws://localhost:8000/rpc].
  --namespace=<ns>   SurrealDB namespace [default: test].
  --database=<db>    SurrealDB database [default: test].
  --db-user=<user>   SurrealDB username [default: root].
  --db-pass=<pass>   SurrealDB password [default: root].`

func main() {
	opts, err := docopt.ParseDoc(usage)
	if err != nil {
		slog.Error("failed to parse arguments", "error", err)
		os.Exit(1)
	}

	switch {
	case mustBool(opts, "scan"):
		runScan(opts)
	case mustBool(opts, "serve"):
		runServe(opts)
	case mustBool(opts, "languages"):
		for _, l := range cyclomatic.SupportedLanguages() {
			fmt.Println(l)
		}
	}
}

func runScan(opts docopt.Opts) {
	dir, _ := opts.String("<dir>")
	store := mustBool(opts, "--store")
	ctx := context.Background()

	var analyzer *analysis.Analyzer
	if store {
		url, _ := opts.String("--db")
		ns, _ := opts.String("--namespace")
		database, _ := opts.String("--database")
		user, _ := opts.String("--db-user")
		pass, _ := opts.String("--db-pass")

		var err error
		analyzer, err = cyclomatic.NewAnalyzer(url, ns, database, user, pass)
		if err != nil {
			slog.Error("failed to create analyzer", "error", err)
			os.Exit(1)
		}
		if err := analyzer.Initialize(ctx); err != nil {
			slog.Error("failed to initialize analyzer", "error", err)
			os.Exit(1)
		}
	} else {
		analyzer = analysis.NewLocalAnalyzer()
	}

	report, err := analyzer.AnalyzeDirectory(ctx, dir)
	if err != nil {
		slog.Error("failed to analyze directory", "dir", dir, "error", err)
		os.Exit(1)
	}
	fmt.Println(report.PrettyPrint())

	if store {
		if err := analyzer.DB.StoreReport(ctx, report); err != nil {
			slog.Error("failed to store results", "error", err)
			os.Exit(1)
		}
		fmt.Println("Analysis results stored successfully")
	}
}

func runServe(opts docopt.Opts) {
	addr, _ := opts.String("--addr")

	analyzer := analysis.NewLocalAnalyzer()
	srv := server.New(analyzer, slog.Default()).HTTPServer(addr)

	slog.Info("listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func mustBool(opts docopt.Opts, key string) bool {
	v, _ := opts.Bool(key)
	return v
}
