/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package accounts

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/suparena/financeapi/config"
	"github.com/suparena/financeapi/datastore/mock"
	"github.com/suparena/financeapi/entity"
	"github.com/suparena/financeapi/errors"
	"github.com/suparena/financeapi/storagemodels"
)

func accountKey(a storagemodels.Account) (string, string) {
	return a.ID, entity.PartitionKey(a.ID)
}

func testConfig() *config.Config {
	return &config.Config{
		AccountsContainerID: "accounts",
		MaxPageSize:         100,
	}
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestService(store *mock.DataStore[storagemodels.Account]) *Service {
	return NewService(store, testConfig(), testLogger())
}

func seededAccount() storagemodels.Account {
	return storagemodels.Account{
		ID:                 "account::1234",
		AccountID:          "1234",
		AccountName:        "some_account_name",
		AccountType:        "checking",
		AccountInstitution: "some_bank",
		Balance:            "1000.00",
	}
}

func TestGetByID(t *testing.T) {
	store := mock.New(accountKey).Seed(seededAccount())
	svc := newTestService(store)

	result, err := svc.Get(context.Background(), GetParams{ID: "account::1234", Page: 1, ResultsPerPage: 10})
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}

	if result.Results != 1 {
		t.Errorf("Results = %d, want 1", result.Results)
	}
	if result.Page != 1 {
		t.Errorf("Page = %d, want the requested page echoed back", result.Page)
	}
	model, ok := result.Content.(AccountModel)
	if !ok {
		t.Fatalf("Content is %T, want AccountModel", result.Content)
	}
	if model.AccountID != "1234" {
		t.Errorf("AccountID = %q, want %q", model.AccountID, "1234")
	}
}

func TestGetByAccountIDDerivesKey(t *testing.T) {
	store := mock.New(accountKey).Seed(seededAccount())
	svc := newTestService(store)

	// Case and spacing normalize to the same derived id.
	result, err := svc.Get(context.Background(), GetParams{AccountID: " 12 34 ", Page: 1, ResultsPerPage: 10})
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if result.Results != 1 {
		t.Errorf("Results = %d, want 1", result.Results)
	}
}

func TestGetHardFilterIgnoresSoftFilters(t *testing.T) {
	store := mock.New(accountKey).Seed(seededAccount()).
		WithQueryError(errors.NewInvalidParameterError("", "query path must not run"))
	svc := newTestService(store)

	_, err := svc.Get(context.Background(), GetParams{
		ID:          "account::1234",
		AccountName: "ignored",
		Page:        1, ResultsPerPage: 10,
	})
	if err != nil {
		t.Fatalf("hard filter should short-circuit the query path: %v", err)
	}
}

func TestGetByQuery(t *testing.T) {
	store := mock.New(accountKey).WithQueryFunc(func(ctx context.Context, q *storagemodels.Query) ([]storagemodels.Account, error) {
		return []storagemodels.Account{
			{ID: "account::0", AccountID: "0", AccountName: "some_account_name"},
			{ID: "account::1", AccountID: "1", AccountName: "some_account_name"},
		}, nil
	})
	svc := newTestService(store)

	result, err := svc.Get(context.Background(), GetParams{AccountName: "some_account_name", Page: 2, ResultsPerPage: 10})
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}

	if result.Results != 2 {
		t.Errorf("Results = %d, want 2", result.Results)
	}
	if result.Page != 2 {
		t.Errorf("Page = %d, want 2", result.Page)
	}
	models, ok := result.Content.([]AccountModel)
	if !ok {
		t.Fatalf("Content is %T, want []AccountModel", result.Content)
	}
	if len(models) != 2 || models[0].AccountID != "0" {
		t.Errorf("unexpected content: %+v", models)
	}
}

func TestGetNotFound(t *testing.T) {
	svc := newTestService(mock.New(accountKey))

	// Point lookup misses.
	_, err := svc.Get(context.Background(), GetParams{ID: "account::missing", Page: 1, ResultsPerPage: 10})
	if !errors.IsNoResultsFound(err) {
		t.Errorf("expected no results found, got %v", err)
	}

	// Query path returns empty.
	_, err = svc.Get(context.Background(), GetParams{AccountName: "nothing", Page: 1, ResultsPerPage: 10})
	if !errors.IsNoResultsFound(err) {
		t.Errorf("expected no results found, got %v", err)
	}
}

func TestGetValidation(t *testing.T) {
	svc := newTestService(mock.New(accountKey))

	tests := []struct {
		name   string
		params GetParams
	}{
		{"blank id", GetParams{ID: " ", Page: 1, ResultsPerPage: 10}},
		{"malformed id", GetParams{ID: "1234", Page: 1, ResultsPerPage: 10}},
		{"wrong collection prefix", GetParams{ID: "user::1234", Page: 1, ResultsPerPage: 10}},
		{"blank account_id", GetParams{AccountID: "  ", Page: 1, ResultsPerPage: 10}},
		{"blank account_name", GetParams{AccountName: "\t", Page: 1, ResultsPerPage: 10}},
		{"blank account_type", GetParams{AccountType: " ", Page: 1, ResultsPerPage: 10}},
		{"blank account_institution", GetParams{AccountInstitution: " ", Page: 1, ResultsPerPage: 10}},
		{"balance no decimals", GetParams{Balance: "1000", Page: 1, ResultsPerPage: 10}},
		{"balance one decimal", GetParams{Balance: "1000.0", Page: 1, ResultsPerPage: 10}},
		{"balance three decimals", GetParams{Balance: "1000.000", Page: 1, ResultsPerPage: 10}},
		{"balance not a number", GetParams{Balance: "abc", Page: 1, ResultsPerPage: 10}},
		{"zero page", GetParams{Page: 0, ResultsPerPage: 10}},
		{"zero results per page", GetParams{Page: 1, ResultsPerPage: 0}},
		{"results per page above max", GetParams{Page: 1, ResultsPerPage: 101}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Get(context.Background(), tt.params); !errors.IsInvalidParameter(err) {
				t.Errorf("expected invalid parameter error, got %v", err)
			}
		})
	}
}

func TestCreate(t *testing.T) {
	store := mock.New(accountKey)
	svc := newTestService(store)

	result, err := svc.Create(context.Background(), AccountModel{
		AccountID:          "1234",
		AccountName:        "some_account_name",
		AccountType:        "checking",
		AccountInstitution: "some_bank",
		Balance:            "1000.00",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if result.Results != 1 || result.Page != 0 {
		t.Errorf("envelope = results %d page %d, want 1 and 0", result.Results, result.Page)
	}

	upserts := store.Upserts()
	if len(upserts) != 1 {
		t.Fatalf("expected 1 upsert, got %d", len(upserts))
	}
	stored := upserts[0]
	if stored.ID != "account::1234" {
		t.Errorf("stored id = %q, want %q", stored.ID, "account::1234")
	}
	if stored.CreatedAt == nil || stored.UpdatedAt == nil {
		t.Error("create should stamp timestamps")
	}
}

func TestCreateConflictDoesNotUpsert(t *testing.T) {
	store := mock.New(accountKey).Seed(seededAccount())
	svc := newTestService(store)

	_, err := svc.Create(context.Background(), AccountModel{
		AccountID:          "1234",
		AccountName:        "another_name",
		AccountType:        "savings",
		AccountInstitution: "another_bank",
		Balance:            "5.00",
	})
	if !errors.IsObjectConflict(err) {
		t.Fatalf("expected object conflict, got %v", err)
	}
	if len(store.Upserts()) != 0 {
		t.Error("conflicting create must not call upsert")
	}
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService(mock.New(accountKey))

	valid := AccountModel{
		AccountID:          "1234",
		AccountName:        "name",
		AccountType:        "checking",
		AccountInstitution: "bank",
		Balance:            "0.00",
	}

	tests := []struct {
		name   string
		mutate func(m *AccountModel)
	}{
		{"missing account_id", func(m *AccountModel) { m.AccountID = "" }},
		{"blank account_name", func(m *AccountModel) { m.AccountName = "  " }},
		{"missing account_type", func(m *AccountModel) { m.AccountType = "" }},
		{"missing account_institution", func(m *AccountModel) { m.AccountInstitution = "" }},
		{"missing balance", func(m *AccountModel) { m.Balance = "" }},
		{"bad balance precision", func(m *AccountModel) { m.Balance = "10.1" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := valid
			tt.mutate(&m)
			if _, err := svc.Create(context.Background(), m); !errors.IsInvalidParameter(err) {
				t.Errorf("expected invalid parameter error, got %v", err)
			}
		})
	}
}

func TestUpdateNotFoundDoesNotUpsert(t *testing.T) {
	store := mock.New(accountKey)
	svc := newTestService(store)

	name := "new_name"
	_, err := svc.Update(context.Background(), UpdateAccountModel{AccountID: "missing", AccountName: &name})
	if !errors.IsNoResultsFound(err) {
		t.Fatalf("expected no results found, got %v", err)
	}
	if len(store.Upserts()) != 0 {
		t.Error("update of a missing account must not call upsert")
	}
}

func TestUpdatePartialBalanceOnly(t *testing.T) {
	store := mock.New(accountKey).Seed(seededAccount())
	svc := newTestService(store)

	balance := "2500.00"
	result, err := svc.Update(context.Background(), UpdateAccountModel{AccountID: "1234", Balance: &balance})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if result.Results != 1 || result.Page != 0 {
		t.Errorf("envelope = results %d page %d, want 1 and 0", result.Results, result.Page)
	}

	upserts := store.Upserts()
	if len(upserts) != 1 {
		t.Fatalf("expected 1 upsert, got %d", len(upserts))
	}
	merged := upserts[0]
	if merged.Balance != "2500.00" {
		t.Errorf("Balance = %q, want %q", merged.Balance, "2500.00")
	}
	// Fields omitted from the request keep their stored values.
	if merged.AccountName != "some_account_name" {
		t.Errorf("AccountName = %q, want unchanged", merged.AccountName)
	}
	if merged.AccountType != "checking" || merged.AccountInstitution != "some_bank" {
		t.Error("untouched fields must survive a partial update")
	}
	if merged.UpdatedAt == nil {
		t.Error("update should stamp UpdatedAt")
	}
}

func TestUpdateNameOnly(t *testing.T) {
	store := mock.New(accountKey).Seed(seededAccount())
	svc := newTestService(store)

	name := "renamed"
	_, err := svc.Update(context.Background(), UpdateAccountModel{AccountID: "1234", AccountName: &name})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	merged := store.Upserts()[0]
	if merged.AccountName != "renamed" {
		t.Errorf("AccountName = %q, want %q", merged.AccountName, "renamed")
	}
	if merged.Balance != "1000.00" {
		t.Errorf("Balance = %q, want unchanged", merged.Balance)
	}
}

func TestUpdateValidation(t *testing.T) {
	svc := newTestService(mock.New(accountKey))

	blank := " "
	badBalance := "10.555"

	tests := []struct {
		name  string
		model UpdateAccountModel
	}{
		{"missing account_id", UpdateAccountModel{}},
		{"no updatable fields", UpdateAccountModel{AccountID: "1234"}},
		{"blank account_name", UpdateAccountModel{AccountID: "1234", AccountName: &blank}},
		{"bad balance precision", UpdateAccountModel{AccountID: "1234", Balance: &badBalance}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Update(context.Background(), tt.model); !errors.IsInvalidParameter(err) {
				t.Errorf("expected invalid parameter error, got %v", err)
			}
		})
	}
}

func TestStoreFailuresPropagate(t *testing.T) {
	boom := context.DeadlineExceeded
	store := mock.New(accountKey).WithGetError(boom)
	svc := newTestService(store)

	_, err := svc.Get(context.Background(), GetParams{ID: "account::1234", Page: 1, ResultsPerPage: 10})
	if err == nil || errors.IsNoResultsFound(err) || errors.IsInvalidParameter(err) {
		t.Errorf("store failure should propagate unchanged, got %v", err)
	}
}
