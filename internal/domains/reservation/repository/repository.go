package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"courtside/infras/otel"
	"courtside/infras/postgres"
	"courtside/internal/domains/reservation/model"
	"courtside/shared/constant"
	gDto "courtside/shared/dto"
	"courtside/shared/failure"
	"courtside/shared/logger"
	gRepo "courtside/shared/repository"
	"courtside/shared/timezone"
)

type Reservation interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error

	// InsertActive writes a new slot holder. The partial unique index
	// over active rows is the conflict arbiter: a violation means the
	// slot is already held and surfaces as a slot conflict.
	InsertActive(ctx context.Context, reservation model.Reservation) error

	// GetOccupants returns the active rows for one facility day.
	GetOccupants(ctx context.Context, facilityID string, date time.Time) ([]model.Reservation, error)

	// UpdateStatusIf applies the update only when the row is still in
	// the expected status. False means the precondition no longer held.
	UpdateStatusIf(ctx context.Context, id, expected string, req map[string]any) (bool, error)

	// Confirm flips a pending reservation to confirmed and records its
	// payment in one transaction. False means the row was not pending.
	Confirm(ctx context.Context, id string, payment model.Payment) (bool, error)

	GetPayment(ctx context.Context, reservationID string) (model.Payment, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	payments gRepo.Repository[model.Payment]
	db       *postgres.Connection
	otel     otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		payments:   gRepo.NewRepository[model.Payment](model.PaymentEntityName, model.PaymentTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) InsertActive(ctx context.Context, reservation model.Reservation) error {
	err := repo.Insert(ctx, reservation)
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
		return failure.SlotConflictError //nolint:wrapcheck
	}

	return err //nolint:wrapcheck
}

func (repo *repositoryImpl) GetOccupants(ctx context.Context, facilityID string, date time.Time) ([]model.Reservation, error) {
	params := gDto.QueryParams{SortBy: model.FieldStartTime, SortDir: gDto.SortDirAsc}
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldFacilityID,
				Value:    facilityID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldSlotDate,
				Value:    date,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    model.ActiveStatuses(),
				Operator: gDto.FilterOperatorIn,
				Table:    model.TableName,
			},
		},
	}

	return repo.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) UpdateStatusIf(ctx context.Context, id, expected string, req map[string]any) (matched bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".UpdateStatusIf")
	defer scope.End()
	defer scope.TraceIfError(err)

	return repo.updateStatusIf(ctx, repo.db.Write, id, expected, req)
}

type namedExecer interface {
	NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error)
}

func (repo *repositoryImpl) updateStatusIf(ctx context.Context, exec namedExecer, id, expected string, req map[string]any) (bool, error) {
	set := make([]string, 0, len(req))
	args := map[string]any{
		"id":              id,
		"expected_status": expected,
	}

	for field, value := range req {
		set = append(set, fmt.Sprintf("%s = :%s", field, field))
		args[field] = value
	}

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE %s = :id AND %s = :expected_status",
		model.TableName,
		strings.Join(set, ", "),
		model.FieldID,
		model.FieldStatus,
	)

	result, err := exec.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to update reservation status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected > 0, nil
}

func (repo *repositoryImpl) Confirm(ctx context.Context, id string, payment model.Payment) (matched bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Confirm")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				logger.ErrorWithStack(rollbackErr)
			}
		}
	}()

	matched, err = repo.updateStatusIf(ctx, tx, id, constant.ReservationStatusPending, map[string]any{
		model.FieldStatus:        constant.ReservationStatusConfirmed,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: payment.ModifiedBy,
	})
	if err != nil {
		return false, err
	}

	if !matched {
		if err = tx.Rollback(); err != nil {
			logger.ErrorWithStack(err)
		}

		return false, nil
	}

	if err = repo.payments.InsertTx(ctx, tx, payment); err != nil {
		return false, fmt.Errorf("failed to insert payment: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to commit confirmation: %w", err)
	}

	return true, nil
}

func (repo *repositoryImpl) GetPayment(ctx context.Context, reservationID string) (model.Payment, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldPaymentReservationID,
				Value:    reservationID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.PaymentTableName,
			},
		},
	}

	return repo.payments.Get(ctx, filter) //nolint:wrapcheck
}
