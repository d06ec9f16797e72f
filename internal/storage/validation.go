package storage

import (
	"context"
	"fmt"

	"github.com/pennywise-fin/pennywise/internal/model"
)

func validateContext(ctx context.Context) error {
	if ctx == nil {
		return fmt.Errorf("context cannot be nil")
	}
	return nil
}

func validateString(value, name string) error {
	if value == "" {
		return fmt.Errorf("%s cannot be empty", name)
	}
	return nil
}

func validateResult(result *model.ImportResult) error {
	if result == nil {
		return fmt.Errorf("import result cannot be nil")
	}
	for i, txn := range result.Income {
		if txn.Amount.IsNegative() {
			return fmt.Errorf("income record %d has negative amount %s", i, txn.Amount)
		}
	}
	for i, txn := range result.Expenses {
		if txn.Amount.IsNegative() {
			return fmt.Errorf("expense record %d has negative amount %s", i, txn.Amount)
		}
	}
	return nil
}
