// Package model defines the core domain models used throughout the application.
package model

import "github.com/shopspring/decimal"

// AccountType identifies the kind of account a statement was exported from.
// The sign convention for income vs. expense depends on it.
type AccountType string

// Account type constants.
const (
	AccountTypeChecking   AccountType = "CHECKING"
	AccountTypeCreditCard AccountType = "CREDITCARD"
	AccountTypeUnknown    AccountType = ""
)

// Transaction kind tags as declared by the statement. Statements may carry
// other tags (CHECK, ATM, PAYMENT, ...); routing only distinguishes these two.
const (
	KindCredit = "CREDIT"
	KindDebit  = "DEBIT"
)

// RawTransaction is one entry from a statement, exactly as declared by the
// file. It exists only for the duration of one import pass.
type RawTransaction struct {
	Kind    string
	Memo    string
	Name    string
	RawDate string
	Amount  decimal.Decimal
}

// Statement is the parsed form of one exported statement file.
type Statement struct {
	AccountType  AccountType
	AccountID    string
	Transactions []RawTransaction
}
