package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"talent/infras/otel"
	"talent/infras/postgres"
	"talent/internal/domains/candidate/model"
	gDto "talent/shared/dto"
	gRepo "talent/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Candidate interface {
	Insert(ctx context.Context, model model.Candidate) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Candidate, error)
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Candidate, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Candidate, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Candidate]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Candidate {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Candidate](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
