/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package auth

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/suparena/financeapi/datastore"
	"github.com/suparena/financeapi/entity"
	"github.com/suparena/financeapi/errors"
	"github.com/suparena/financeapi/storagemodels"
)

// Gate authorizes bearer tokens. A valid signature and expiry are necessary
// but not sufficient: the decoded subject must still exist as a registered
// user, so revoked or deleted users are rejected even while their tokens
// remain cryptographically valid. The existence check hits the user store
// on every request; no caching.
type Gate struct {
	tokens *TokenHelper
	users  datastore.DataStore[storagemodels.User]
	log    *logrus.Logger
}

// NewGate constructs an access gate over the given user store.
func NewGate(tokens *TokenHelper, users datastore.DataStore[storagemodels.User], log *logrus.Logger) *Gate {
	return &Gate{tokens: tokens, users: users, log: log}
}

// Authorize decodes the bearer token and verifies its subject is a
// registered user. It returns the subject on success.
func (g *Gate) Authorize(ctx context.Context, token string) (string, error) {
	subject, err := g.tokens.Decode(token)
	if err != nil {
		return "", err
	}

	id, err := entity.DeriveID(entity.UserCollection, subject)
	if err != nil {
		return "", errors.NewTokenProcessingError("subject cannot be resolved to a user id", err)
	}

	user, err := g.users.GetOne(ctx, id, entity.PartitionKey(id))
	if err != nil {
		return "", err
	}
	if user == nil {
		g.log.WithField("subject", subject).Warn("subject has no registered user record")
		return "", errors.NewUnauthorizedError(subject)
	}

	return subject, nil
}
