package dto

import (
	"github.com/google/uuid"

	"courtside/internal/domains/facility/model"
	scheduleDto "courtside/internal/domains/schedule/model/dto"
	"courtside/shared"
	gDto "courtside/shared/dto"
	gModel "courtside/shared/model"
	"courtside/shared/timezone"
)

type CreateFacilityRequest struct {
	VenueID         string `json:"venue_id"          validate:"required,uuid"`
	Name            string `json:"name"              validate:"required,max=100"`
	Sport           string `json:"sport"             validate:"required,max=50"`
	Price           int64  `json:"price"             validate:"gte=0"`
	CancelNoticeMin int    `json:"cancel_notice_min" validate:"gte=0"`
}

func (c *CreateFacilityRequest) ToModel(user string) model.Facility {
	return model.Facility{
		ID:              uuid.NewString(),
		VenueID:         c.VenueID,
		Name:            c.Name,
		Sport:           c.Sport,
		Price:           c.Price,
		CancelNoticeMin: c.CancelNoticeMin,
		Active:          true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateFacilityRequest struct {
	Name            *string `json:"name"              validate:"omitempty,max=100"`
	Sport           *string `json:"sport"             validate:"omitempty,max=50"`
	Price           *int64  `json:"price"             validate:"omitempty,gte=0"`
	CancelNoticeMin *int    `json:"cancel_notice_min" validate:"omitempty,gte=0"`
	Active          *bool   `json:"active"            validate:"omitempty"`
}

func (c *UpdateFacilityRequest) ToUpdateMap(user string) map[string]any {
	req := map[string]any{
		"modified_at": timezone.Now(),
		"modified_by": user,
	}

	if c.Name != nil {
		req[model.FieldName] = *c.Name
	}

	if c.Sport != nil {
		req[model.FieldSport] = *c.Sport
	}

	if c.Price != nil {
		req[model.FieldPrice] = *c.Price
	}

	if c.CancelNoticeMin != nil {
		req[model.FieldCancelNoticeMin] = *c.CancelNoticeMin
	}

	if c.Active != nil {
		req[model.FieldActive] = *c.Active
	}

	return req
}

type FacilityResponse struct {
	ID              string                     `json:"id"`
	VenueID         string                     `json:"venue_id"`
	Name            string                     `json:"name"`
	Sport           string                     `json:"sport"`
	Price           int64                      `json:"price"`
	CancelNoticeMin int                        `json:"cancel_notice_min"`
	Active          bool                       `json:"active"`
	Rules           []scheduleDto.RuleResponse `json:"rules,omitempty"`
	gDto.Metadata
}

func (r *FacilityResponse) FromModel(model model.Facility) {
	r.ID = model.ID
	r.VenueID = model.VenueID
	r.Name = model.Name
	r.Sport = model.Sport
	r.Price = model.Price
	r.CancelNoticeMin = model.CancelNoticeMin
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetFacilitiesResponse struct {
	Facilities []FacilityResponse `json:"facilities"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (r *GetFacilitiesResponse) FromModels(models []model.Facility, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Facilities = make([]FacilityResponse, len(models))
	for i, mod := range models {
		r.Facilities[i].FromModel(mod)
	}
}
