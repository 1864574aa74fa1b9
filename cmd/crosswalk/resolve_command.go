package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"crosswalk/internal/audit"
	"crosswalk/internal/config"
	"crosswalk/internal/identity"
	"crosswalk/internal/record"
	"crosswalk/internal/resolver"
	"crosswalk/internal/scoring"
	"crosswalk/internal/vocab"
)

func newResolveCommand(ctx *commandContext) *cobra.Command {
	var (
		inputA     string
		inputB     string
		outputPath string
		auditPath  string
		threshold  float64
		workers    int
		identityDB string
		noPersist  bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve two consumer collections into a deduplicated output",
		Long: `Resolve loads two consumer record collections, scores candidate pairs
within shared zip codes, merges accepted matches, and writes the resolved
collection plus a per-comparison audit trail. Consumer identifiers are kept
stable across runs through the identity database.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			if inputA == "" || inputB == "" {
				return fmt.Errorf("both --input-a and --input-b are required")
			}

			recordsA, err := record.ReadFile(inputA, record.CollectionA)
			if err != nil {
				return err
			}
			recordsB, err := record.ReadFile(inputB, record.CollectionB)
			if err != nil {
				return err
			}

			tables := vocab.Default()
			if cfg.Vocabulary.TablesPath != "" {
				tables, err = vocab.LoadFile(cfg.Vocabulary.TablesPath)
				if err != nil {
					return fmt.Errorf("load vocabulary tables: %w", err)
				}
			}

			matchThreshold := cfg.Matching.MatchThreshold
			if cmd.Flags().Changed("threshold") {
				matchThreshold = threshold
			}
			workerCount := cfg.Engine.Workers
			if cmd.Flags().Changed("workers") {
				workerCount = workers
			}

			dbPath := cfg.Paths.IdentityDB
			if identityDB != "" {
				dbPath, err = config.ExpandPath(identityDB)
				if err != nil {
					return err
				}
			}

			identities := identity.NewMap()
			var store *identity.Store
			if !noPersist {
				store, err = identity.Open(dbPath)
				if err != nil {
					return err
				}
				defer store.Close()

				persisted, err := store.Load(cmd.Context())
				if err != nil {
					return err
				}
				identities.Restore(persisted)
			}

			res, err := resolver.New(resolver.Options{
				Tables: tables,
				Weights: scoring.Weights{
					Name:    cfg.Weights.Name,
					Address: cfg.Weights.Address,
					Email:   cfg.Weights.Email,
					Phone:   cfg.Weights.Phone,
				},
				MatchThreshold: matchThreshold,
				Workers:        workerCount,
				Logger:         logger,
				Identities:     identities,
			})
			if err != nil {
				return err
			}
			if err := res.Load(recordsA, recordsB); err != nil {
				return err
			}

			outcome, err := res.Resolve(cmd.Context())
			if err != nil {
				return err
			}

			if outputPath == "" {
				outputPath = filepath.Join(cfg.Paths.OutputDir, "resolved.csv")
			}
			if err := record.WriteResolvedFile(outputPath, outcome.Resolved); err != nil {
				return err
			}

			if auditPath == "" {
				auditPath = filepath.Join(cfg.Paths.OutputDir, "audit.csv")
			}
			if err := audit.WriteFile(auditPath, outcome.Audit); err != nil {
				return err
			}

			if store != nil {
				if err := store.Sync(cmd.Context(), identities); err != nil {
					return err
				}
			}

			if jsonOutput {
				return writeJSON(cmd, resolveReport{
					Stats:      outcome.Stats,
					OutputPath: outputPath,
					AuditPath:  auditPath,
				})
			}

			renderResolveSummary(cmd, outcome.Stats, outputPath, auditPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&inputA, "input-a", "", "Path to the first source collection CSV")
	cmd.Flags().StringVar(&inputB, "input-b", "", "Path to the second source collection CSV")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Resolved output CSV path (default: <output_dir>/resolved.csv)")
	cmd.Flags().StringVar(&auditPath, "audit", "", "Audit trail CSV path (default: <output_dir>/audit.csv)")
	cmd.Flags().Float64Var(&threshold, "threshold", resolver.DefaultMatchThreshold, "Total score at or above which a pair matches")
	cmd.Flags().IntVar(&workers, "workers", 0, "Parallel scoring workers (0 uses the number of CPUs)")
	cmd.Flags().StringVar(&identityDB, "identity-db", "", "Identity database path (default: paths.identity_db)")
	cmd.Flags().BoolVar(&noPersist, "no-identity-db", false, "Skip loading and saving persistent consumer identifiers")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit run statistics as JSON")

	return cmd
}

type resolveReport struct {
	Stats      resolver.Stats `json:"stats"`
	OutputPath string         `json:"output_path"`
	AuditPath  string         `json:"audit_path"`
}

func renderResolveSummary(cmd *cobra.Command, stats resolver.Stats, outputPath, auditPath string) {
	out := cmd.OutOrStdout()

	rows := [][]string{
		{"Records in A", strconv.Itoa(stats.TotalRecordsA)},
		{"Records in B", strconv.Itoa(stats.TotalRecordsB)},
		{"Comparisons", strconv.Itoa(stats.Comparisons)},
		{"Matches", strconv.Itoa(stats.MatchesFound)},
		{"Multi-matches", strconv.Itoa(stats.MultiMatches)},
		{"Near misses", strconv.Itoa(stats.NearMisses)},
		{"Unmatched A", strconv.Itoa(stats.UnmatchedA)},
		{"Unmatched B", strconv.Itoa(stats.UnmatchedB)},
		{"Resolved total", strconv.Itoa(stats.ResolvedTotal)},
		{"Match rate", fmt.Sprintf("%.1f%%", stats.MatchRate*100)},
		{"Threshold", strconv.FormatFloat(stats.MatchThreshold, 'f', 2, 64)},
		{"Duration", stats.Duration.Round(time.Millisecond).String()},
	}

	fmt.Fprintln(out, renderTable(
		[]string{"Metric", "Value"},
		rows,
		[]columnAlignment{alignLeft, alignRight},
	))
	fmt.Fprintf(out, "Resolved records written to %s\n", outputPath)
	fmt.Fprintf(out, "Audit trail written to %s\n", auditPath)
}
