package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/pennywise-fin/pennywise/internal/common"
	"github.com/pennywise-fin/pennywise/internal/model"
)

// SaveImport persists one classified batch: an audit row plus bulk inserts of
// income, expense, and transfer records, all in a single SQL transaction. The
// call is atomic: either the whole batch lands or none of it does.
func (s *SQLiteStorage) SaveImport(ctx context.Context, fileName string, stmt *model.Statement, result *model.ImportResult) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateString(fileName, "fileName"); err != nil {
		return 0, err
	}
	if err := validateResult(result); err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO imports (
			file_name, account_id, account_type,
			income_count, expense_count, transfer_count, degraded_dates,
			total_income, total_expenses
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		fileName,
		stmt.AccountID,
		string(stmt.AccountType),
		len(result.Income),
		len(result.Expenses),
		len(result.Transfers),
		result.DegradedDates,
		result.Summary.TotalIncome.String(),
		result.Summary.TotalExpenses.String(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert import row: %w", err)
	}

	importID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get import id: %w", err)
	}

	if err := bulkInsertClassified(ctx, tx, "revenues", importID, result.Income); err != nil {
		return 0, err
	}
	if err := bulkInsertClassified(ctx, tx, "expenses", importID, result.Expenses); err != nil {
		return 0, err
	}
	if err := bulkInsertTransfers(ctx, tx, importID, result.Transfers); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit import: %w", err)
	}

	return importID, nil
}

func bulkInsertClassified(ctx context.Context, tx *sql.Tx, table string, importID int64, txns []model.ClassifiedTransaction) error {
	if len(txns) == 0 {
		return nil
	}

	// table is one of two compile-time constants, never user input
	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(`
		INSERT INTO %s (import_id, name, memo, amount, expected_amount, date, is_recurring, category)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, table))
	if err != nil {
		return fmt.Errorf("failed to prepare %s insert: %w", table, err)
	}
	defer func() { _ = stmt.Close() }()

	for _, txn := range txns {
		// Imported records start with expected = actual; the dashboard's
		// budget view adjusts expectations later.
		_, err = stmt.ExecContext(ctx,
			importID,
			txn.Name,
			txn.Memo,
			txn.Amount.String(),
			txn.Amount.String(),
			txn.Date,
			txn.Recurring,
			string(txn.Category),
		)
		if err != nil {
			return fmt.Errorf("failed to insert into %s: %w", table, err)
		}
	}

	return nil
}

func bulkInsertTransfers(ctx context.Context, tx *sql.Tx, importID int64, transfers []model.TransferRecord) error {
	if len(transfers) == 0 {
		return nil
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO transfers (import_id, name, memo, amount, date, is_internal)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare transfers insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, tr := range transfers {
		_, err = stmt.ExecContext(ctx,
			importID,
			tr.Name,
			tr.Memo,
			tr.Amount.String(),
			tr.Date,
			tr.IsInternal,
		)
		if err != nil {
			return fmt.Errorf("failed to insert transfer: %w", err)
		}
	}

	return nil
}

// GetImport returns the audit row for one import. Returns ErrNotFound when no
// import with that id exists.
func (s *SQLiteStorage) GetImport(ctx context.Context, importID int64) (*model.ImportAudit, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, file_name, account_id, account_type,
		       income_count, expense_count, transfer_count, degraded_dates,
		       total_income, total_expenses
		FROM imports WHERE id = ?
	`, importID)

	var audit model.ImportAudit
	var acctType, totalIncome, totalExpenses string
	err := row.Scan(
		&audit.ID, &audit.FileName, &audit.AccountID, &acctType,
		&audit.IncomeCount, &audit.ExpenseCount, &audit.TransferCount, &audit.DegradedDates,
		&totalIncome, &totalExpenses,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("import %d: %w", importID, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query import %d: %w", importID, err)
	}

	audit.AccountType = model.AccountType(acctType)
	if audit.TotalIncome, err = decimal.NewFromString(totalIncome); err != nil {
		return nil, fmt.Errorf("corrupt total_income %q: %w", totalIncome, err)
	}
	if audit.TotalExpenses, err = decimal.NewFromString(totalExpenses); err != nil {
		return nil, fmt.Errorf("corrupt total_expenses %q: %w", totalExpenses, err)
	}

	return &audit, nil
}

// ListRevenues returns the income records persisted for one import, in
// insertion order.
func (s *SQLiteStorage) ListRevenues(ctx context.Context, importID int64) ([]model.ClassifiedTransaction, error) {
	return s.listClassified(ctx, "revenues", importID)
}

// ListExpenses returns the expense records persisted for one import, in
// insertion order.
func (s *SQLiteStorage) ListExpenses(ctx context.Context, importID int64) ([]model.ClassifiedTransaction, error) {
	return s.listClassified(ctx, "expenses", importID)
}

func (s *SQLiteStorage) listClassified(ctx context.Context, table string, importID int64) ([]model.ClassifiedTransaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT name, memo, amount, date, is_recurring, category
		FROM %s WHERE import_id = ? ORDER BY id
	`, table), importID)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer func() { _ = rows.Close() }()

	var txns []model.ClassifiedTransaction
	for rows.Next() {
		var txn model.ClassifiedTransaction
		var amount, category string
		if err := rows.Scan(&txn.Name, &txn.Memo, &amount, &txn.Date, &txn.Recurring, &category); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", table, err)
		}
		txn.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("corrupt amount %q in %s: %w", amount, table, err)
		}
		txn.Category = model.Category(category)
		txns = append(txns, txn)
	}

	return txns, rows.Err()
}

// ListTransfers returns the transfer records persisted for one import, in
// insertion order.
func (s *SQLiteStorage) ListTransfers(ctx context.Context, importID int64) ([]model.TransferRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT name, memo, amount, date, is_internal
		FROM transfers WHERE import_id = ? ORDER BY id
	`, importID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transfers: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var transfers []model.TransferRecord
	for rows.Next() {
		var tr model.TransferRecord
		var amount string
		if err := rows.Scan(&tr.Name, &tr.Memo, &amount, &tr.Date, &tr.IsInternal); err != nil {
			return nil, fmt.Errorf("failed to scan transfer row: %w", err)
		}
		tr.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("corrupt amount %q in transfers: %w", amount, err)
		}
		transfers = append(transfers, tr)
	}

	return transfers, rows.Err()
}
