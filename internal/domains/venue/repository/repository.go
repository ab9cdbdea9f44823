package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"time"

	"courtside/infras/otel"
	"courtside/infras/postgres"
	"courtside/internal/domains/venue/model"
	gDto "courtside/shared/dto"
	gRepo "courtside/shared/repository"
)

type Venue interface {
	Insert(ctx context.Context, model model.Venue) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Venue, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Venue, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error

	GetHours(ctx context.Context, venueID string) ([]model.VenueHours, error)
	GetHoursForDay(ctx context.Context, venueID string, dayOfWeek int) (model.VenueHours, error)
	ExistHours(ctx context.Context, venueID string, dayOfWeek int) (bool, error)
	InsertHours(ctx context.Context, hours model.VenueHours) error
	UpdateHours(ctx context.Context, req map[string]any, venueID string, dayOfWeek int) error

	GetHoliday(ctx context.Context, venueID string, date time.Time) (model.VenueHoliday, error)
	GetHolidays(ctx context.Context, venueID string) ([]model.VenueHoliday, error)
	InsertHoliday(ctx context.Context, holiday model.VenueHoliday) error
	DeleteHoliday(ctx context.Context, id string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Venue]
	hours    gRepo.Repository[model.VenueHours]
	holidays gRepo.Repository[model.VenueHoliday]
	db       *postgres.Connection
	otel     otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Venue {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Venue](model.EntityName, model.TableName, model.FieldID, db, otel),
		hours:      gRepo.NewRepository[model.VenueHours](model.HoursEntityName, model.HoursTableName, model.FieldHoursID, db, otel),
		holidays:   gRepo.NewRepository[model.VenueHoliday](model.HolidayEntityName, model.HolidayTableName, model.FieldHolidayID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func hoursFilter(venueID string, dayOfWeek int) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldHoursVenueID,
				Value:    venueID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.HoursTableName,
			},
			gDto.Filter{
				Field:    model.FieldHoursDayOfWeek,
				Value:    dayOfWeek,
				Operator: gDto.FilterOperatorEq,
				Table:    model.HoursTableName,
			},
		},
	}
}

func (repo *repositoryImpl) GetHours(ctx context.Context, venueID string) ([]model.VenueHours, error) {
	params := gDto.QueryParams{SortBy: model.FieldHoursDayOfWeek, SortDir: gDto.SortDirAsc}
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldHoursVenueID,
				Value:    venueID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.HoursTableName,
			},
		},
	}

	return repo.hours.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetHoursForDay(ctx context.Context, venueID string, dayOfWeek int) (model.VenueHours, error) {
	return repo.hours.Get(ctx, hoursFilter(venueID, dayOfWeek)) //nolint:wrapcheck
}

func (repo *repositoryImpl) ExistHours(ctx context.Context, venueID string, dayOfWeek int) (bool, error) {
	return repo.hours.Exist(ctx, hoursFilter(venueID, dayOfWeek)) //nolint:wrapcheck
}

func (repo *repositoryImpl) InsertHours(ctx context.Context, hours model.VenueHours) error {
	return repo.hours.Insert(ctx, hours) //nolint:wrapcheck
}

func (repo *repositoryImpl) UpdateHours(ctx context.Context, req map[string]any, venueID string, dayOfWeek int) error {
	return repo.hours.Update(ctx, req, hoursFilter(venueID, dayOfWeek)) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetHoliday(ctx context.Context, venueID string, date time.Time) (model.VenueHoliday, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldHolidayVenueID,
				Value:    venueID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.HolidayTableName,
			},
			gDto.Filter{
				Field:    model.FieldHolidayDate,
				Value:    date,
				Operator: gDto.FilterOperatorEq,
				Table:    model.HolidayTableName,
			},
		},
	}

	return repo.holidays.Get(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetHolidays(ctx context.Context, venueID string) ([]model.VenueHoliday, error) {
	params := gDto.QueryParams{SortBy: model.FieldHolidayDate, SortDir: gDto.SortDirAsc}
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldHolidayVenueID,
				Value:    venueID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.HolidayTableName,
			},
		},
	}

	return repo.holidays.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) InsertHoliday(ctx context.Context, holiday model.VenueHoliday) error {
	return repo.holidays.Insert(ctx, holiday) //nolint:wrapcheck
}

func (repo *repositoryImpl) DeleteHoliday(ctx context.Context, id string) error {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldHolidayID,
				Value:    id,
				Operator: gDto.FilterOperatorEq,
				Table:    model.HolidayTableName,
			},
		},
	}

	return repo.holidays.Delete(ctx, filter) //nolint:wrapcheck
}
