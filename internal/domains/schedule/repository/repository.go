package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"courtside/infras/otel"
	"courtside/infras/postgres"
	"courtside/internal/domains/schedule/model"
	"courtside/shared/constant"
	gDto "courtside/shared/dto"
	"courtside/shared/logger"
	gRepo "courtside/shared/repository"
	"courtside/shared/timezone"
)

type Schedule interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ScheduleRule, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ScheduleRule, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)

	// GetVersions returns the facility's full rule history, oldest
	// version first per day key.
	GetVersions(ctx context.Context, facilityID string) ([]model.ScheduleRule, error)

	// ReplaceVersion supersedes every open version for the rule's
	// (facility, day key) at the rule's effective-from instant and
	// inserts the new version, in one transaction.
	ReplaceVersion(ctx context.Context, rule model.ScheduleRule) error

	// SupersedeByID closes a single version at the given instant.
	// Used for rule deletion under the propagation window.
	SupersedeByID(ctx context.Context, ruleID string, at time.Time) error
}

type repositoryImpl struct {
	gRepo.Repository[model.ScheduleRule]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Schedule {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.ScheduleRule](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) GetVersions(ctx context.Context, facilityID string) ([]model.ScheduleRule, error) {
	params := gDto.QueryParams{SortBy: model.FieldEffectiveFrom, SortDir: gDto.SortDirAsc}
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldFacilityID,
				Value:    facilityID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	return repo.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) ReplaceVersion(ctx context.Context, rule model.ScheduleRule) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".ReplaceVersion")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				logger.ErrorWithStack(rollbackErr)
			}
		}
	}()

	supersede := fmt.Sprintf(
		"UPDATE %s SET %s = :superseded_from, %s = :modified_at, %s = :modified_by WHERE %s = :facility_id AND %s = :day_key AND %s IS NULL",
		model.TableName,
		model.FieldSupersededFrom,
		constant.FieldModifiedAt,
		constant.FieldModifiedBy,
		model.FieldFacilityID,
		model.FieldDayKey,
		model.FieldSupersededFrom,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, supersede)

	_, err = tx.NamedExecContext(ctx, supersede, map[string]any{
		"superseded_from": rule.EffectiveFrom,
		"modified_at":     timezone.Now(),
		"modified_by":     rule.ModifiedBy,
		"facility_id":     rule.FacilityID,
		"day_key":         rule.DayKey,
	})
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to supersede schedule rule versions: %w", err)
	}

	if err = repo.InsertTx(ctx, tx, rule); err != nil {
		return fmt.Errorf("failed to insert schedule rule version: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit schedule rule version: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) SupersedeByID(ctx context.Context, ruleID string, at time.Time) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".SupersedeByID")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(
		"UPDATE %s SET %s = :superseded_from, %s = :modified_at WHERE %s = :id AND %s IS NULL",
		model.TableName,
		model.FieldSupersededFrom,
		constant.FieldModifiedAt,
		model.FieldID,
		model.FieldSupersededFrom,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err = repo.db.Write.NamedExecContext(ctx, query, map[string]any{
		"superseded_from": at,
		"modified_at":     timezone.Now(),
		"id":              ruleID,
	})
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to supersede schedule rule: %w", err)
	}

	return nil
}
