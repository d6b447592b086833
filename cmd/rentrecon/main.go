package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"rent-reconciliation/internal/appcontext"
	"rent-reconciliation/internal/config"
	"rent-reconciliation/internal/export"
	"rent-reconciliation/internal/gateway"
	"rent-reconciliation/internal/normalize"
	"rent-reconciliation/internal/usecase"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if err := run(logger); err != nil {
		logger.Error("reconciliation failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	// Local overrides, absent in most environments.
	_ = godotenv.Load()

	ctx := appcontext.WithLogger(context.Background(), logger)
	cfg := config.Load(ctx, logger)

	tenantFile := flag.String("tenants", "", "Path to the tenant roster file (required)")
	bankFilesStr := flag.String("bank", "", "Comma-separated list of bank statement files")
	otherFilesStr := flag.String("other", "", "Comma-separated list of secondary payment-source files")
	skipRows := flag.Int("skip-rows", cfg.BankSkipRows, "Preamble lines to discard from bank statements")
	groupOrder := flag.String("order", cfg.GroupOrder, "Export group order: first-seen or lex")
	format := flag.String("format", "json", "Output format: json, csv or xlsx")
	outPath := flag.String("out", "", "Output file (defaults to stdout; required for xlsx)")
	aliasFile := flag.String("aliases", cfg.AliasFile, "Optional YAML file overriding tenant column aliases")
	flag.Parse()

	if *tenantFile == "" || (*bankFilesStr == "" && *otherFilesStr == "") {
		fmt.Fprintln(os.Stderr, "Error: -tenants and at least one of -bank or -other are required.")
		flag.Usage()
		os.Exit(1)
	}

	aliases := normalize.DefaultAliases()
	if *aliasFile != "" {
		overrides, err := config.LoadAliasOverrides(*aliasFile)
		if err != nil {
			return err
		}
		aliases = aliases.Merge(overrides)
	}

	repo := gateway.NewFileTableRepository()
	uc := usecase.NewReconciliationUseCase(repo)

	report, err := uc.Run(ctx, usecase.RunInput{
		TenantPath:   *tenantFile,
		BankPaths:    splitPaths(*bankFilesStr),
		OtherPaths:   splitPaths(*otherFilesStr),
		BankSkipRows: *skipRows,
		Aliases:      aliases,
	})
	if err != nil {
		return err
	}

	order := export.ParseGroupOrder(*groupOrder)
	switch *format {
	case "json":
		w, closeFn, err := openOutput(*outPath)
		if err != nil {
			return err
		}
		defer closeFn()
		return export.WriteJSON(w, report)
	case "csv":
		w, closeFn, err := openOutput(*outPath)
		if err != nil {
			return err
		}
		defer closeFn()
		return export.WriteCSV(w, report, order)
	case "xlsx":
		if *outPath == "" {
			return fmt.Errorf("-out is required for xlsx output")
		}
		return export.WriteXLSX(*outPath, report, order)
	default:
		return fmt.Errorf("unknown output format %q", *format)
	}
}

func splitPaths(s string) []string {
	if s == "" {
		return nil
	}
	var paths []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

func openOutput(path string) (*os.File, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file %s: %w", path, err)
	}
	return f, func() { f.Close() }, nil
}
