/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"github.com/go-openapi/strfmt"
)

// Account is the storage representation of a financial account document.
//
// ID is always derivable from AccountID alone ("account::" plus the
// lower-cased, whitespace-stripped natural id) and is unique per store; two
// accounts whose natural ids differ only in case or spacing collide. Balance
// is persisted as a string with exactly two fractional digits to avoid
// floating-point drift.
type Account struct {
	ID                 string           `json:"id" dynamodbav:"id"`
	AccountID          string           `json:"account_id" dynamodbav:"account_id"`
	AccountName        string           `json:"account_name" dynamodbav:"account_name"`
	AccountType        string           `json:"account_type" dynamodbav:"account_type"`
	AccountInstitution string           `json:"account_institution" dynamodbav:"account_institution"`
	Balance            string           `json:"balance" dynamodbav:"balance"`
	CreatedAt          *strfmt.DateTime `json:"created_at,omitempty" dynamodbav:"created_at,omitempty"`
	UpdatedAt          *strfmt.DateTime `json:"updated_at,omitempty" dynamodbav:"updated_at,omitempty"`
}

// User is the storage representation of a registered user document. The
// access gate only reads these; password hashes are written by whatever
// provisions users.
type User struct {
	ID       string `json:"id" dynamodbav:"id"`
	User     string `json:"user" dynamodbav:"user"`
	Password string `json:"password" dynamodbav:"password"`
}
