package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"renewal-ab-lab/internal/analysis"
	"renewal-ab-lab/internal/ingest"
	"renewal-ab-lab/internal/storage"
	chstore "renewal-ab-lab/internal/storage/clickhouse"
	"renewal-ab-lab/internal/storage/memory"
	"renewal-ab-lab/internal/storage/migrations"
	pgstore "renewal-ab-lab/internal/storage/postgres"
)

func main() {
	input := flag.String("input", "", "Path to CSV data file (Customer_ID,Test_Group,Renewal_Status,Discounted_ARR)")
	postgresDSN := flag.String("postgres-dsn", "", "Load observations from PostgreSQL instead of a CSV file")
	clickhouseDSN := flag.String("clickhouse-dsn", "", "Optional: persist the analysis result to ClickHouse")
	useFixtures := flag.Bool("use-fixtures", false, "Use a built-in synthetic dataset instead of input data")
	outputDir := flag.String("output-dir", "docs", "Output directory for generated report files")
	alpha := flag.Float64("alpha", 0.05, "Significance threshold (0 < alpha < 1)")
	tolerance := flag.Float64("balance-tolerance", 0.05, "Group balance warning tolerance as a fraction of total count")
	controlLabel := flag.String("control", "A", "Control group label")
	treatmentLabel := flag.String("treatment", "B", "Treatment group label")
	strict := flag.Bool("strict", false, "Abort on the first invalid record instead of excluding it")
	flag.Parse()

	ctx := context.Background()

	if *alpha <= 0 || *alpha >= 1 {
		fmt.Fprintln(os.Stderr, "Error: --alpha must be in (0, 1)")
		os.Exit(1)
	}
	sources := 0
	for _, set := range []bool{*input != "", *postgresDSN != "", *useFixtures} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one of --input, --postgres-dsn, or --use-fixtures is required")
		os.Exit(1)
	}

	obsStore, cleanup, err := createObservationStore(ctx, *input, *postgresDSN, *useFixtures, *strict)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading observations: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	cfg := analysis.Config{
		Alpha:            *alpha,
		BalanceTolerance: *tolerance,
		ControlLabel:     *controlLabel,
		TreatmentLabel:   *treatmentLabel,
		Strict:           *strict,
	}

	pipeline := analysis.NewPipeline(obsStore, cfg).WithOutputDir(*outputDir)

	if *clickhouseDSN != "" {
		conn, err := migrations.RunClickhouseMigrations(ctx, *clickhouseDSN)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error preparing clickhouse: %v\n", err)
			os.Exit(1)
		}
		defer conn.Close()
		pipeline = pipeline.WithResultStore(chstore.NewAnalysisResultStore(conn))
	}

	report, err := pipeline.Run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running analysis: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Analysis complete:")
	fmt.Printf("  - %s/REPORT.md\n", *outputDir)
	fmt.Printf("  - %s/RECOMMENDATION.md\n", *outputDir)
	fmt.Printf("  - %s/group_summaries.csv\n", *outputDir)
	fmt.Printf("  - %s/test_results.csv\n", *outputDir)
	fmt.Printf("Verdict: %s\n", report.Verdict.Recommendation)
}

// createObservationStore builds the observation source for the selected
// mode. The returned cleanup closes any database connection.
func createObservationStore(ctx context.Context, input, postgresDSN string, useFixtures, strict bool) (storage.ObservationStore, func(), error) {
	noop := func() {}

	if useFixtures {
		store := memory.NewObservationStore()
		if err := analysis.LoadFixtures(ctx, store); err != nil {
			return nil, noop, err
		}
		return store, noop, nil
	}

	if postgresDSN != "" {
		pool, err := pgstore.NewPool(ctx, postgresDSN)
		if err != nil {
			return nil, noop, err
		}
		return pgstore.NewObservationStore(pool), pool.Close, nil
	}

	observations, rowErrors, err := ingest.ReadFile(input, strict)
	if err != nil {
		return nil, noop, err
	}
	for _, rerr := range rowErrors {
		fmt.Fprintf(os.Stderr, "Warning: skipped %v\n", rerr)
	}

	store := memory.NewObservationStore()
	if err := store.InsertBulk(ctx, observations); err != nil {
		return nil, noop, err
	}
	return store, noop, nil
}
