package facility

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"courtside/infras/otel"
	availabilityService "courtside/internal/domains/availability/service"
	"courtside/internal/domains/facility/model"
	"courtside/internal/domains/facility/model/dto"
	"courtside/internal/domains/facility/service"
	scheduleDto "courtside/internal/domains/schedule/model/dto"
	scheduleService "courtside/internal/domains/schedule/service"
	"courtside/shared/constant"
	gDto "courtside/shared/dto"
	"courtside/shared/validator"
	"courtside/transport/http/response"
)

type Handler struct {
	service      service.Facility
	availability availabilityService.Availability
	schedules    scheduleService.Schedule
	otel         otel.Otel
}

func New(
	service service.Facility,
	availability availabilityService.Availability,
	schedules scheduleService.Schedule,
	otel otel.Otel,
) Handler {
	return Handler{
		service:      service,
		availability: availability,
		schedules:    schedules,
		otel:         otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/facilities", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateFacility)
		routerGroup.Get("/", handler.GetFacilities)
		routerGroup.Get("/{id}", handler.GetFacilityByID)
		routerGroup.Patch("/{id}", handler.UpdateFacility)
		routerGroup.Get("/{id}/availability", handler.GetAvailability)
		routerGroup.Get("/{id}/availability/detailed", handler.GetAvailabilityDetailed)
		routerGroup.Get("/{id}/rules", handler.GetRules)
		routerGroup.Put("/{id}/rules", handler.UpsertRule)
	})
}

// CreateFacility registers a bookable facility inside a venue.
// @Summary Create a facility
// @Tags Facility
// @Accept json
// @Produce json
// @Param request body dto.CreateFacilityRequest true "Create Facility Request"
// @Success 201 {object} response.Message "Facility created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/facilities [post]
// @Security BearerAuth
func (handler *Handler) CreateFacility(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateFacility")
	defer scope.End()

	req := dto.CreateFacilityRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create facility")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Facility created successfully")
}

// GetFacilities lists facilities with optional filtering.
// @Summary Get all facilities
// @Tags Facility
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param venue_id query string false "Filter by venue ID"
// @Param sport query string false "Filter by sport"
// @Success 200 {object} response.Data[dto.GetFacilitiesResponse] "List of facilities"
// @Failure 500 {object} response.Error
// @Router /v1/facilities [get]
func (handler *Handler) GetFacilities(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFacilities")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if venueID := r.URL.Query().Get(model.FieldVenueID); venueID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldVenueID,
			Operator: gDto.FilterOperatorEq,
			Value:    venueID,
			Table:    model.TableName,
		})
	}

	if sport := r.URL.Query().Get(model.FieldSport); sport != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldSport,
			Operator: gDto.FilterOperatorEq,
			Value:    sport,
			Table:    model.TableName,
		})
	}

	facilities, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get facilities")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, facilities)
}

// GetFacilityByID returns one facility with its current and pending rules.
// @Summary Get a facility by ID
// @Tags Facility
// @Produce json
// @Param id path string true "Facility ID"
// @Success 200 {object} response.Data[dto.FacilityResponse] "Facility details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/facilities/{id} [get]
func (handler *Handler) GetFacilityByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFacilityByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	facility, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get facility")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, facility)
}

// UpdateFacility patches facility attributes.
// @Summary Update a facility
// @Tags Facility
// @Accept json
// @Produce json
// @Param id path string true "Facility ID"
// @Param request body dto.UpdateFacilityRequest true "Update Facility Request"
// @Success 200 {object} response.Message "Facility updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/facilities/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateFacility(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateFacility")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateFacilityRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update facility")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Facility updated successfully")
}

// GetAvailability returns the public slot grid for one facility day.
// @Summary Get facility availability
// @Tags Availability
// @Produce json
// @Param id path string true "Facility ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[availabilityDto.GetAvailabilityResponse] "Day availability"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/facilities/{id}/availability [get]
func (handler *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	date := r.URL.Query().Get(constant.RequestParamDate)

	availability, err := handler.availability.Query(ctx, id, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get availability")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, availability)
}

// GetAvailabilityDetailed returns the day grid with occupant detail.
// @Summary Get facility availability with occupants
// @Tags Availability
// @Produce json
// @Param id path string true "Facility ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[availabilityDto.GetAvailabilityResponse] "Day availability with occupants"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/facilities/{id}/availability/detailed [get]
// @Security BearerAuth
func (handler *Handler) GetAvailabilityDetailed(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailabilityDetailed")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	date := r.URL.Query().Get(constant.RequestParamDate)

	availability, err := handler.availability.QueryDetailed(ctx, id, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get detailed availability")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, availability)
}

// GetRules lists the facility's current and pending schedule rules.
// @Summary Get facility schedule rules
// @Tags Schedule
// @Produce json
// @Param id path string true "Facility ID"
// @Success 200 {object} response.Data[scheduleDto.GetRulesResponse] "Schedule rules"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/facilities/{id}/rules [get]
func (handler *Handler) GetRules(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRules")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	rules, err := handler.schedules.GetRules(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get schedule rules")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rules)
}

// UpsertRule writes a schedule rule version that takes effect after
// the propagation window.
// @Summary Upsert a facility schedule rule
// @Tags Schedule
// @Accept json
// @Produce json
// @Param id path string true "Facility ID"
// @Param request body scheduleDto.UpsertScheduleRuleRequest true "Upsert Schedule Rule Request"
// @Success 200 {object} response.Data[scheduleDto.RuleChangeResponse] "Rule scheduled"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/facilities/{id}/rules [put]
// @Security BearerAuth
func (handler *Handler) UpsertRule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpsertRule")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := scheduleDto.UpsertScheduleRuleRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	change, err := handler.schedules.UpsertRule(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upsert schedule rule")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, change)
}
