package schedule

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"courtside/infras/otel"
	"courtside/internal/domains/schedule/service"
	"courtside/shared/constant"
	"courtside/transport/http/response"
)

type Handler struct {
	service service.Schedule
	otel    otel.Otel
}

func New(service service.Schedule, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rules", func(routerGroup chi.Router) {
		routerGroup.Delete("/{id}", handler.DeleteRule)
	})
}

// DeleteRule retires a schedule rule after the propagation window.
// @Summary Delete a schedule rule
// @Tags Schedule
// @Produce json
// @Param id path string true "Rule ID"
// @Success 200 {object} response.Data[dto.RuleChangeResponse] "Rule retirement scheduled"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rules/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRule")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	change, err := handler.service.DeleteRule(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete schedule rule")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, change)
}
