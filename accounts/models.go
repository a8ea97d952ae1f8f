/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package accounts

import (
	"github.com/shopspring/decimal"

	"github.com/suparena/financeapi/storagemodels"
)

// AccountModel is the wire representation of an account. It mirrors the
// storage entity minus the derived id; balance travels as a string so
// callers never see floating-point drift.
type AccountModel struct {
	AccountID          string `json:"account_id"`
	AccountName        string `json:"account_name"`
	AccountType        string `json:"account_type"`
	AccountInstitution string `json:"account_institution"`
	Balance            string `json:"balance"`
}

// UpdateAccountModel is the wire representation of a partial update.
// AccountID identifies the target; nil fields keep their stored value.
type UpdateAccountModel struct {
	AccountID   string  `json:"account_id"`
	AccountName *string `json:"account_name,omitempty"`
	Balance     *string `json:"balance,omitempty"`
}

// ApiResult is the envelope every successful response is wrapped in.
type ApiResult struct {
	Content interface{} `json:"content"`
	Results int         `json:"results"`
	Page    int         `json:"page"`
}

// MapAccountModel maps a storage entity to its wire representation.
func MapAccountModel(a storagemodels.Account) AccountModel {
	return AccountModel{
		AccountID:          a.AccountID,
		AccountName:        a.AccountName,
		AccountType:        a.AccountType,
		AccountInstitution: a.AccountInstitution,
		Balance:            a.Balance,
	}
}

// MapAccountModels maps a sequence of storage entities to wire models.
func MapAccountModels(accounts []storagemodels.Account) []AccountModel {
	models := make([]AccountModel, 0, len(accounts))
	for _, a := range accounts {
		models = append(models, MapAccountModel(a))
	}
	return models
}

// NewApiResult wraps content in the response envelope.
func NewApiResult(content interface{}, results, page int) *ApiResult {
	return &ApiResult{Content: content, Results: results, Page: page}
}

// ValidBalance reports whether s is a monetary amount with exactly two
// fractional digits: "1000.00" is valid; "1000", "1000.0" and "1000.000"
// are not. Negative amounts are not rejected here.
func ValidBalance(s string) bool {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return false
	}
	return d.Exponent() == -2
}
