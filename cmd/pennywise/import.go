package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/pennywise-fin/pennywise/internal/classify"
	"github.com/pennywise-fin/pennywise/internal/cli"
	"github.com/pennywise-fin/pennywise/internal/common"
	"github.com/pennywise-fin/pennywise/internal/ofx"
	"github.com/pennywise-fin/pennywise/internal/service"
	"github.com/pennywise-fin/pennywise/internal/storage"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [files...]",
		Short: "Import and classify transactions from OFX/QFX statement files",
		Long: `Import statements exported from your bank or credit-card issuer.

Each file is parsed, internal transfers (credit-card payments and the like)
are filtered out, recurring activity is flagged, categories are assigned, and
the reconciled batch is stored. A failed file aborts the run: imports are
all-or-nothing per statement, never partial.

Examples:
  # Preview a single statement without saving
  pennywise import --dry-run ~/Downloads/checking_jan.qfx

  # Import several statements
  pennywise import ~/Downloads/*.qfx`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImport,
	}

	cmd.Flags().BoolP("dry-run", "d", false, "Preview classification without saving")
	cmd.Flags().String("db", "", "Database path (default: from config)")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		dbPath = defaultDatabasePath()
	}

	files, err := expandPatterns(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no statement files found to import")
	}

	var store service.Storage
	if !dryRun {
		sqlite, err := storage.NewSQLiteStorage(dbPath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer func() { _ = sqlite.Close() }()

		if err := sqlite.Migrate(cmd.Context()); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		store = sqlite
	}

	slog.Info("Importing statements", "file_count", len(files), "dry_run", dryRun)

	parser := ofx.NewParser()
	classifier := classify.New()

	var bar *progressbar.ProgressBar
	if len(files) > 1 {
		bar = progressbar.Default(int64(len(files)), "importing")
	}

	for _, filePath := range files {
		err := importOne(cmd, parser, classifier, store, filePath, dryRun)
		switch {
		case errors.Is(err, common.ErrNoTransactions):
			// An empty statement is skipped; the remaining files still import.
			slog.Warn("Statement has no transactions, skipping", "file", filepath.Base(filePath))
		case err != nil:
			// All-or-nothing per statement: a bad file aborts the run.
			return common.NewUserError(fmt.Sprintf("import of %s failed", filepath.Base(filePath)), err)
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	if dryRun {
		fmt.Println(cli.FormatSuccess("dry run complete - nothing saved"))
	} else {
		fmt.Println(cli.FormatSuccess(fmt.Sprintf("imported %d statement(s) into %s", len(files), dbPath)))
	}

	return nil
}

func importOne(cmd *cobra.Command, parser *ofx.Parser, classifier *classify.Classifier, store service.Storage, filePath string, dryRun bool) error {
	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	stmt, err := parser.Parse(cmd.Context(), f)
	if err != nil {
		return err
	}

	if len(stmt.Transactions) == 0 {
		return fmt.Errorf("%w: %s", common.ErrNoTransactions, filepath.Base(filePath))
	}

	result := classifier.Classify(stmt)

	if result.DegradedDates > 0 {
		slog.Warn("Some transaction dates could not be parsed",
			"file", filepath.Base(filePath),
			"degraded", result.DegradedDates)
	}

	fmt.Println(cli.RenderImportSummary(filepath.Base(filePath), stmt, result))

	if dryRun {
		return nil
	}

	importID, err := store.SaveImport(cmd.Context(), filepath.Base(filePath), stmt, result)
	if err != nil {
		return err
	}

	slog.Info("Saved import",
		"file", filepath.Base(filePath),
		"import_id", importID,
		"income", len(result.Income),
		"expenses", len(result.Expenses),
		"transfers", len(result.Transfers))

	return nil
}

// expandPatterns resolves shell-style globs and literal paths.
func expandPatterns(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			// If no glob matches, check if it's a direct file
			if _, err := os.Stat(pattern); err == nil {
				files = append(files, pattern)
			} else {
				slog.Warn("No files found matching pattern", "pattern", pattern)
			}
		} else {
			files = append(files, matches...)
		}
	}
	return files, nil
}
