package mocks

import (
	"context"
	"talent/infras/postgres"

	"github.com/jmoiron/sqlx"
)

// transactorImpl runs the given function without a real transaction so
// service tests can exercise transactional flows against mocked
// repositories. The nil *sqlx.Tx is fine because repository mocks never
// dereference it.
type transactorImpl struct {
}

// WithTx implements postgres.Transactor.
func (t *transactorImpl) WithTx(_ context.Context, fn func(tx *sqlx.Tx) error) error {
	return fn(nil)
}

func NewTransactor() postgres.Transactor {
	return &transactorImpl{}
}
