package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/faisalthe1/AI-Study-Planner/api/transport"
	"github.com/faisalthe1/AI-Study-Planner/domain"
	"github.com/faisalthe1/AI-Study-Planner/pkg/httpcontext"
	profileUC "github.com/faisalthe1/AI-Study-Planner/usecase/profile"
)

type ProfileHandler struct {
	baseHandler
	uc *profileUC.UseCase
}

func NewProfileHandler(uc *profileUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Get study preferences
// @Tags profile
// @Router /api/v1/profile [get]
func (h *ProfileHandler) GetProfile(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	profile, err := h.uc.GetProfile(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, profile)
}

// @Summary Update study preferences
// @Tags profile
// @Router /api/v1/profile [put]
func (h *ProfileHandler) UpdateProfile(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.ProfileUpdateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	windowStart, err := domain.ParseMinuteOfDay(req.StudyWindowStart)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	windowEnd, err := domain.ParseMinuteOfDay(req.StudyWindowEnd)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	profile := &domain.Profile{
		UserID:         userID,
		WindowStart:    windowStart,
		WindowEnd:      windowEnd,
		SessionMinutes: req.SessionMinutes,
		BreakMinutes:   req.BreakMinutes,
		DailyHoursGoal: req.DailyHoursGoal,
		Timezone:       req.Timezone,
		AutoReplan:     req.AutoReplan,
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.UpdateProfile(stdCtx, profile)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}
