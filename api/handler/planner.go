package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/faisalthe1/AI-Study-Planner/api/transport"
	"github.com/faisalthe1/AI-Study-Planner/pkg/httpcontext"
	"github.com/faisalthe1/AI-Study-Planner/scheduler"
	plannerUC "github.com/faisalthe1/AI-Study-Planner/usecase/planner"
)

type PlannerHandler struct {
	baseHandler
	uc *plannerUC.UseCase
}

func NewPlannerHandler(uc *plannerUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *PlannerHandler {
	return &PlannerHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Regenerate the study schedule
// @Tags planner
// @Router /api/v1/schedule/generate [post]
func (h *PlannerHandler) GenerateSchedule(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	days := parseInt(string(ctx.QueryArgs().Peek("days")), 0)
	if days == 0 && len(ctx.PostBody()) > 0 {
		var req transport.GenerateScheduleRequest
		if err := json.Unmarshal(ctx.PostBody(), &req); err == nil {
			days = req.Days
		}
	}
	if days <= 0 {
		days = scheduler.DefaultHorizonDays
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	sessions, err := h.uc.GenerateSchedule(stdCtx, userID, days)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	meta := map[string]interface{}{"days": days, "sessions_created": len(sessions)}
	h.respondJSON(ctx, http.StatusCreated, transport.NewSuccess(sessions, meta))
}
