/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package httpd

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/suparena/financeapi/accounts"
	"github.com/suparena/financeapi/errors"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleGetAccounts(w http.ResponseWriter, r *http.Request) {
	params, err := parseGetParams(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.accounts.Get(r.Context(), params)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleCreateAccount(w http.ResponseWriter, r *http.Request) {
	var model accounts.AccountModel
	if err := json.NewDecoder(r.Body).Decode(&model); err != nil {
		s.writeError(w, r, errors.NewInvalidParameterError("", "request body is not valid JSON"))
		return
	}

	result, err := s.accounts.Create(r.Context(), model)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func (s *Server) handleUpdateAccount(w http.ResponseWriter, r *http.Request) {
	var model accounts.UpdateAccountModel
	if err := json.NewDecoder(r.Body).Decode(&model); err != nil {
		s.writeError(w, r, errors.NewInvalidParameterError("", "request body is not valid JSON"))
		return
	}

	result, err := s.accounts.Update(r.Context(), model)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// parseGetParams extracts the search inputs from the query string, applying
// the paging defaults. Non-numeric paging values are rejected here; range
// checks belong to the service.
func parseGetParams(r *http.Request) (accounts.GetParams, error) {
	q := r.URL.Query()
	params := accounts.GetParams{
		ID:                 q.Get("id"),
		AccountID:          q.Get("account_id"),
		AccountName:        q.Get("account_name"),
		AccountType:        q.Get("account_type"),
		AccountInstitution: q.Get("account_institution"),
		Balance:            q.Get("balance"),
		Page:               1,
		ResultsPerPage:     accounts.DefaultResultsPerPage,
	}

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return params, errors.NewInvalidParameterError("page", "page must be an integer")
		}
		params.Page = page
	}
	if raw := q.Get("results_per_page"); raw != "" {
		perPage, err := strconv.Atoi(raw)
		if err != nil {
			return params, errors.NewInvalidParameterError("results_per_page", "results_per_page must be an integer")
		}
		params.ResultsPerPage = perPage
	}
	return params, nil
}

// writeError maps a domain error to a status code. Anything outside the
// known taxonomy is an internal failure: the detail is logged, the body
// stays generic.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		s.log.WithFields(logrus.Fields{
			"request_id": r.Context().Value(requestIDKey),
			"path":       r.URL.Path,
		}).WithError(err).Error("request failed")
		writeErrorMessage(w, status, "internal server error")
		return
	}
	writeErrorMessage(w, status, err.Error())
}

func statusForError(err error) int {
	switch {
	case errors.IsInvalidParameter(err):
		return http.StatusBadRequest
	case errors.IsTokenProcessing(err):
		return http.StatusUnauthorized
	case errors.IsUnauthorized(err):
		return http.StatusForbidden
	case errors.IsNoResultsFound(err):
		return http.StatusNotFound
	case errors.IsObjectConflict(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeErrorMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
