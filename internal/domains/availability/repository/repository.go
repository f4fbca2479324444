package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"time"

	"talent/infras/otel"
	"talent/infras/postgres"
	"talent/internal/domains/availability/model"
	"talent/shared/constant"
	gDto "talent/shared/dto"
	gRepo "talent/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Availability interface {
	Insert(ctx context.Context, model model.AvailabilitySlot) error
	InsertBulk(ctx context.Context, models []model.AvailabilitySlot) error
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.AvailabilitySlot) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.AvailabilitySlot, error)
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.AvailabilitySlot, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (model.AvailabilitySlot, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.AvailabilitySlot, error)
	GetAllTx(ctx context.Context, sqltx *sqlx.Tx, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.AvailabilitySlot, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
	ListFutureAvailable(ctx context.Context, candidateID string, from time.Time) ([]model.AvailabilitySlot, error)
	ListAroundDateTx(ctx context.Context, sqltx *sqlx.Tx, candidateID string, date time.Time, interviewType, status string) ([]model.AvailabilitySlot, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.AvailabilitySlot]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Availability {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.AvailabilitySlot](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ListFutureAvailable returns the candidate's available slots on or after the
// given day, ordered chronologically. This is the snapshot the public
// schedule merges for display.
func (repo *repositoryImpl) ListFutureAvailable(ctx context.Context, candidateID string, from time.Time) ([]model.AvailabilitySlot, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldCandidateID, Value: candidateID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldStatus, Value: constant.SlotStatusAvailable, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldSlotDate, Value: from, Operator: gDto.FilterOperatorGreaterEq, Table: model.TableName},
		},
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldSlotDate + ", " + model.FieldStartTime,
		SortDir: gDto.SortDirAsc,
	}

	return repo.GetAll(ctx, params, filter) //nolint:wrapcheck
}

// ListAroundDateTx loads the candidate's slots of one type and status on the
// given day and its neighbors, inside the transaction. The day on either
// side is included because a buffer window around a late or early booking
// can spill past midnight; exact overlap is decided by the caller.
func (repo *repositoryImpl) ListAroundDateTx(ctx context.Context, sqltx *sqlx.Tx, candidateID string, date time.Time, interviewType, status string) ([]model.AvailabilitySlot, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldCandidateID, Value: candidateID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldInterviewType, Value: interviewType, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldStatus, Value: status, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{ArgName: "slot_date_from", Field: model.FieldSlotDate, Value: date.AddDate(0, 0, -1), Operator: gDto.FilterOperatorGreaterEq, Table: model.TableName},
			gDto.Filter{ArgName: "slot_date_until", Field: model.FieldSlotDate, Value: date.AddDate(0, 0, 1), Operator: gDto.FilterOperatorLessEq, Table: model.TableName},
		},
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldSlotDate + ", " + model.FieldStartTime,
		SortDir: gDto.SortDirAsc,
	}

	return repo.GetAllTx(ctx, sqltx, params, filter) //nolint:wrapcheck
}
