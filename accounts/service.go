/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package accounts

import (
	"context"
	"strings"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/sirupsen/logrus"

	"github.com/suparena/financeapi/config"
	"github.com/suparena/financeapi/datastore"
	"github.com/suparena/financeapi/entity"
	"github.com/suparena/financeapi/errors"
	"github.com/suparena/financeapi/storagemodels"
)

// DefaultResultsPerPage is the page size applied when the caller does not
// ask for one.
const DefaultResultsPerPage = 10

// GetParams carries the search inputs for Get. ID and AccountID are hard
// filters: when either is present the lookup short-circuits to a direct key
// read and the soft filters are ignored.
type GetParams struct {
	ID                 string
	AccountID          string
	AccountName        string
	AccountType        string
	AccountInstitution string
	Balance            string
	Page               int
	ResultsPerPage     int
}

// Service implements the account resource operations. It holds no state
// between requests beyond the injected store handle, which must be safe for
// concurrent use.
type Service struct {
	store       datastore.DataStore[storagemodels.Account]
	builder     *queryBuilder
	maxPageSize int
	log         *logrus.Logger
}

// NewService constructs the account resource service.
func NewService(store datastore.DataStore[storagemodels.Account], cfg *config.Config, log *logrus.Logger) *Service {
	return &Service{
		store: store,
		builder: &queryBuilder{
			container:     cfg.AccountsContainerID,
			maxPageSize:   cfg.MaxPageSize,
			legacyOffsets: cfg.LegacyPageOffsets,
		},
		maxPageSize: cfg.MaxPageSize,
		log:         log,
	}
}

// Get resolves a search for accounts. Precedence: a well-formed id wins,
// then account_id, then the soft filters as a paginated query. Point
// lookups and queries that match nothing both fail with NoResultsFound.
func (s *Service) Get(ctx context.Context, p GetParams) (*ApiResult, error) {
	if err := s.validateGetParams(p); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"id":         p.ID,
		"account_id": p.AccountID,
		"page":       p.Page,
	}).Debug("querying accounts")

	if p.ID != "" {
		return s.getByID(ctx, p.ID, p.Page)
	}

	if p.AccountID != "" {
		id, err := entity.DeriveID(entity.AccountCollection, p.AccountID)
		if err != nil {
			return nil, err
		}
		return s.getByID(ctx, id, p.Page)
	}

	query, err := s.builder.Build(p)
	if err != nil {
		return nil, err
	}

	results, err := s.store.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, errors.NewNoResultsFoundError("accounts", "")
	}

	return NewApiResult(MapAccountModels(results), len(results), p.Page), nil
}

// Create persists a new account. Every field is required; the derived id
// must not already exist.
func (s *Service) Create(ctx context.Context, m AccountModel) (*ApiResult, error) {
	if err := validateCreateModel(m); err != nil {
		return nil, err
	}

	id, err := entity.DeriveID(entity.AccountCollection, m.AccountID)
	if err != nil {
		return nil, err
	}

	existing, err := s.store.GetOne(ctx, id, entity.PartitionKey(id))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewObjectConflictError(entity.AccountCollection, id)
	}

	now := strfmt.DateTime(time.Now().UTC())
	account := storagemodels.Account{
		ID:                 id,
		AccountID:          m.AccountID,
		AccountName:        m.AccountName,
		AccountType:        m.AccountType,
		AccountInstitution: m.AccountInstitution,
		Balance:            m.Balance,
		CreatedAt:          &now,
		UpdatedAt:          &now,
	}
	if err := s.store.Upsert(ctx, account); err != nil {
		return nil, err
	}

	s.log.WithField("id", id).Info("account created")
	return NewApiResult(MapAccountModel(account), 1, 0), nil
}

// Update applies a partial update. Only the fields supplied in the request
// are overwritten; everything else keeps its stored value.
func (s *Service) Update(ctx context.Context, m UpdateAccountModel) (*ApiResult, error) {
	if err := validateUpdateModel(m); err != nil {
		return nil, err
	}

	id, err := entity.DeriveID(entity.AccountCollection, m.AccountID)
	if err != nil {
		return nil, err
	}

	existing, err := s.store.GetOne(ctx, id, entity.PartitionKey(id))
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNoResultsFoundError(entity.AccountCollection, id)
	}

	merged := *existing
	if m.AccountName != nil {
		merged.AccountName = *m.AccountName
	}
	if m.Balance != nil {
		merged.Balance = *m.Balance
	}
	now := strfmt.DateTime(time.Now().UTC())
	merged.UpdatedAt = &now

	if err := s.store.Upsert(ctx, merged); err != nil {
		return nil, err
	}

	s.log.WithField("id", id).Info("account updated")
	return NewApiResult(MapAccountModel(merged), 1, 0), nil
}

func (s *Service) getByID(ctx context.Context, id string, page int) (*ApiResult, error) {
	account, err := s.store.GetOne(ctx, id, entity.PartitionKey(id))
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, errors.NewNoResultsFoundError(entity.AccountCollection, id)
	}
	return NewApiResult(MapAccountModel(*account), 1, page), nil
}

// validateGetParams checks the search inputs in a fixed order: blank-only
// strings first, then id shape, then balance precision, then the page
// window.
func (s *Service) validateGetParams(p GetParams) error {
	fields := []struct {
		name  string
		value string
	}{
		{"id", p.ID},
		{"account_id", p.AccountID},
		{"account_name", p.AccountName},
		{"account_type", p.AccountType},
		{"account_institution", p.AccountInstitution},
	}
	for _, f := range fields {
		if f.value != "" && strings.TrimSpace(f.value) == "" {
			return errors.NewInvalidParameterError(f.name, f.name+" is invalid (did you pass only spaces?)")
		}
	}

	if p.ID != "" {
		if err := entity.ValidateID(entity.AccountCollection, p.ID); err != nil {
			return err
		}
	}
	if p.Balance != "" && !ValidBalance(p.Balance) {
		return errors.NewInvalidParameterError("balance", balancePrecisionMessage)
	}
	if p.Page <= 0 {
		return errors.NewInvalidParameterError("page", "page must be greater than 0")
	}
	if p.ResultsPerPage < 1 || p.ResultsPerPage > s.maxPageSize {
		return errors.NewInvalidParameterError("results_per_page",
			"results_per_page must be between 1 and the configured maximum page size")
	}
	return nil
}

const balancePrecisionMessage = "balance must be a monetary value with exactly 2 decimal places, for example '1000.00'"

func validateCreateModel(m AccountModel) error {
	required := []struct {
		name  string
		value string
	}{
		{"account_id", m.AccountID},
		{"account_name", m.AccountName},
		{"account_type", m.AccountType},
		{"account_institution", m.AccountInstitution},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return errors.NewInvalidParameterError(f.name, f.name+" must be defined")
		}
	}
	if !ValidBalance(m.Balance) {
		return errors.NewInvalidParameterError("balance", balancePrecisionMessage)
	}
	return nil
}

func validateUpdateModel(m UpdateAccountModel) error {
	if strings.TrimSpace(m.AccountID) == "" {
		return errors.NewInvalidParameterError("account_id", "account_id must be defined")
	}
	if m.AccountName == nil && m.Balance == nil {
		return errors.NewInvalidParameterError("", "at least one of account_name or balance must be supplied")
	}
	if m.AccountName != nil && strings.TrimSpace(*m.AccountName) == "" {
		return errors.NewInvalidParameterError("account_name", "account_name must not be blank")
	}
	if m.Balance != nil && !ValidBalance(*m.Balance) {
		return errors.NewInvalidParameterError("balance", balancePrecisionMessage)
	}
	return nil
}
