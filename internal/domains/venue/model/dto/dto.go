package dto

import (
	"github.com/google/uuid"

	"courtside/internal/domains/venue/model"
	"courtside/shared"
	"courtside/shared/constant"
	gDto "courtside/shared/dto"
	gModel "courtside/shared/model"
	"courtside/shared/timezone"
)

type CreateVenueRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Address  string `json:"address"  validate:"omitempty,max=255"`
	Timezone string `json:"timezone" validate:"omitempty,max=64"`
}

func (c *CreateVenueRequest) ToModel(user string) model.Venue {
	tz := c.Timezone
	if tz == "" {
		tz = timezone.GetLocation().String()
	}

	return model.Venue{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Address:  c.Address,
		Timezone: tz,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpsertVenueHoursRequest struct {
	DayOfWeek   *int   `json:"day_of_week"  validate:"required,gte=0,lte=6"`
	IsOpen      *bool  `json:"is_open"      validate:"required"`
	OpeningTime string `json:"opening_time" validate:"omitempty"`
	ClosingTime string `json:"closing_time" validate:"omitempty"`
}

func (c *UpsertVenueHoursRequest) ToModel(venueID, user string) (model.VenueHours, error) {
	hours := model.VenueHours{
		ID:        uuid.NewString(),
		VenueID:   venueID,
		DayOfWeek: *c.DayOfWeek,
		IsOpen:    *c.IsOpen,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if *c.IsOpen {
		opening, err := timezone.Parse(constant.ClockFormat, c.OpeningTime)
		if err != nil {
			return model.VenueHours{}, err
		}

		closing, err := timezone.Parse(constant.ClockFormat, c.ClosingTime)
		if err != nil {
			return model.VenueHours{}, err
		}

		hours.OpeningTime = opening
		hours.ClosingTime = closing
	}

	return hours, nil
}

type AddHolidayRequest struct {
	Date  string `json:"date"  validate:"required"`
	Label string `json:"label" validate:"omitempty,max=100"`
}

func (c *AddHolidayRequest) ToModel(venueID, user string) (model.VenueHoliday, error) {
	date, err := timezone.Parse(constant.DayFormat, c.Date)
	if err != nil {
		return model.VenueHoliday{}, err
	}

	return model.VenueHoliday{
		ID:          uuid.NewString(),
		VenueID:     venueID,
		HolidayDate: date,
		Label:       c.Label,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type VenueHoursResponse struct {
	DayOfWeek   int    `json:"day_of_week"`
	IsOpen      bool   `json:"is_open"`
	OpeningTime string `json:"opening_time,omitempty"`
	ClosingTime string `json:"closing_time,omitempty"`
}

func (r *VenueHoursResponse) FromModel(model model.VenueHours) {
	r.DayOfWeek = model.DayOfWeek
	r.IsOpen = model.IsOpen

	if model.IsOpen {
		r.OpeningTime = model.OpeningTime.Format(constant.ClockFormat)
		r.ClosingTime = model.ClosingTime.Format(constant.ClockFormat)
	}
}

type VenueHolidayResponse struct {
	ID    string `json:"id"`
	Date  string `json:"date"`
	Label string `json:"label,omitempty"`
}

func (r *VenueHolidayResponse) FromModel(model model.VenueHoliday) {
	r.ID = model.ID
	r.Date = model.HolidayDate.Format(constant.DayFormat)
	r.Label = model.Label
}

type VenueResponse struct {
	ID       string                 `json:"id"`
	Name     string                 `json:"name"`
	Address  string                 `json:"address"`
	Timezone string                 `json:"timezone"`
	Active   bool                   `json:"active"`
	Hours    []VenueHoursResponse   `json:"hours,omitempty"`
	Holidays []VenueHolidayResponse `json:"holidays,omitempty"`
	gDto.Metadata
}

func (r *VenueResponse) FromModel(model model.Venue) {
	r.ID = model.ID
	r.Name = model.Name
	r.Address = model.Address
	r.Timezone = model.Timezone
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

func (r *VenueResponse) AttachHours(models []model.VenueHours) {
	r.Hours = make([]VenueHoursResponse, len(models))
	for i, mod := range models {
		r.Hours[i].FromModel(mod)
	}
}

func (r *VenueResponse) AttachHolidays(models []model.VenueHoliday) {
	r.Holidays = make([]VenueHolidayResponse, len(models))
	for i, mod := range models {
		r.Holidays[i].FromModel(mod)
	}
}

type GetVenuesResponse struct {
	Venues    []VenueResponse `json:"venues"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetVenuesResponse) FromModels(models []model.Venue, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Venues = make([]VenueResponse, len(models))
	for i, mod := range models {
		r.Venues[i].FromModel(mod)
	}
}
