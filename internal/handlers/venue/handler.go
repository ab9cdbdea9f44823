package venue

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"courtside/infras/otel"
	"courtside/internal/domains/venue/model"
	"courtside/internal/domains/venue/model/dto"
	"courtside/internal/domains/venue/service"
	"courtside/shared/constant"
	gDto "courtside/shared/dto"
	"courtside/shared/validator"
	"courtside/transport/http/response"
)

type Handler struct {
	service service.Venue
	otel    otel.Otel
}

func New(service service.Venue, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/venues", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateVenue)
		routerGroup.Get("/", handler.GetVenues)
		routerGroup.Get("/{id}", handler.GetVenueByID)
		routerGroup.Put("/{id}/hours", handler.UpsertHours)
		routerGroup.Post("/{id}/holidays", handler.AddHoliday)
		routerGroup.Delete("/{id}/holidays/{holiday_id}", handler.RemoveHoliday)
	})
}

// CreateVenue registers a new venue.
// @Summary Create a venue
// @Tags Venue
// @Accept json
// @Produce json
// @Param request body dto.CreateVenueRequest true "Create Venue Request"
// @Success 201 {object} response.Message "Venue created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/venues [post]
// @Security BearerAuth
func (handler *Handler) CreateVenue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateVenue")
	defer scope.End()

	req := dto.CreateVenueRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create venue")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Venue created successfully")
}

// GetVenues lists venues with pagination.
// @Summary Get all venues
// @Tags Venue
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Success 200 {object} response.Data[dto.GetVenuesResponse] "List of venues"
// @Failure 500 {object} response.Error
// @Router /v1/venues [get]
func (handler *Handler) GetVenues(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVenues")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if name := r.URL.Query().Get(model.FieldName); name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	venues, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get venues")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, venues)
}

// GetVenueByID returns one venue with its opening hours and holidays.
// @Summary Get a venue by ID
// @Tags Venue
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} response.Data[dto.VenueResponse] "Venue details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/venues/{id} [get]
func (handler *Handler) GetVenueByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVenueByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	venue, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get venue")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, venue)
}

// UpsertHours replaces the venue's opening window for one weekday.
// @Summary Upsert venue hours
// @Tags Venue
// @Accept json
// @Produce json
// @Param id path string true "Venue ID"
// @Param request body dto.UpsertVenueHoursRequest true "Upsert Venue Hours Request"
// @Success 200 {object} response.Message "Venue hours saved successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/venues/{id}/hours [put]
// @Security BearerAuth
func (handler *Handler) UpsertHours(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpsertHours")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpsertVenueHoursRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpsertHours(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upsert venue hours")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Venue hours saved successfully")
}

// AddHoliday marks a date as a holiday for the venue.
// @Summary Add a venue holiday
// @Tags Venue
// @Accept json
// @Produce json
// @Param id path string true "Venue ID"
// @Param request body dto.AddHolidayRequest true "Add Holiday Request"
// @Success 201 {object} response.Message "Holiday added successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/venues/{id}/holidays [post]
// @Security BearerAuth
func (handler *Handler) AddHoliday(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddHoliday")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.AddHolidayRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.AddHoliday(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add venue holiday")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Holiday added successfully")
}

// RemoveHoliday deletes a venue holiday.
// @Summary Remove a venue holiday
// @Tags Venue
// @Produce json
// @Param id path string true "Venue ID"
// @Param holiday_id path string true "Holiday ID"
// @Success 200 {object} response.Message "Holiday removed successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/venues/{id}/holidays/{holiday_id} [delete]
// @Security BearerAuth
func (handler *Handler) RemoveHoliday(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveHoliday")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	holidayID := chi.URLParam(r, "holiday_id")

	if err := handler.service.RemoveHoliday(ctx, id, holidayID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to remove venue holiday")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Holiday removed successfully")
}
