package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/faisalthe1/AI-Study-Planner/api/transport"
	"github.com/faisalthe1/AI-Study-Planner/domain"
	"github.com/faisalthe1/AI-Study-Planner/pkg/httpcontext"
	"github.com/faisalthe1/AI-Study-Planner/repository"
	sessionUC "github.com/faisalthe1/AI-Study-Planner/usecase/studysession"
)

type SessionHandler struct {
	baseHandler
	uc *sessionUC.UseCase
}

func NewSessionHandler(uc *sessionUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List study sessions in a time range
// @Tags sessions
// @Router /api/v1/sessions [get]
func (h *SessionHandler) GetSessions(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	filter := repository.SessionFilter{
		UserID: userID,
		Limit:  parseInt(string(ctx.QueryArgs().Peek("limit")), 100),
		Offset: parseInt(string(ctx.QueryArgs().Peek("offset")), 0),
	}
	if from := string(ctx.QueryArgs().Peek("from")); from != "" {
		if parsed, err := time.Parse(time.RFC3339, from); err == nil {
			filter.From = parsed
		}
	}
	if to := string(ctx.QueryArgs().Peek("to")); to != "" {
		if parsed, err := time.Parse(time.RFC3339, to); err == nil {
			filter.To = parsed
		}
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	sessions, err := h.uc.ListSessions(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, sessions)
}

// @Summary Create a manual study session
// @Tags sessions
// @Router /api/v1/sessions [post]
func (h *SessionHandler) CreateSession(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	session, ok := h.parseSession(ctx, userID)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.CreateSession(stdCtx, session)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Update a study session (completion, notes, times)
// @Tags sessions
// @Router /api/v1/sessions/{id} [put]
func (h *SessionHandler) UpdateSession(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	session, ok := h.parseSession(ctx, userID)
	if !ok {
		return
	}
	if session.ID == "" {
		if id, ok := ctx.UserValue("id").(string); ok {
			session.ID = id
		}
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.UpdateSession(stdCtx, session)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Delete a study session
// @Tags sessions
// @Router /api/v1/sessions/{id} [delete]
func (h *SessionHandler) DeleteSession(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondInvalid(ctx, "missing session id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DeleteSession(stdCtx, userID, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

func (h *SessionHandler) parseSession(ctx *fasthttp.RequestCtx, userID string) (*domain.StudySession, bool) {
	var req transport.SessionRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return nil, false
	}

	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		h.respondInvalid(ctx, "start_time must be RFC3339")
		return nil, false
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		h.respondInvalid(ctx, "end_time must be RFC3339")
		return nil, false
	}

	return &domain.StudySession{
		ID:        req.ID,
		UserID:    userID,
		TaskID:    req.TaskID,
		CourseID:  req.CourseID,
		Title:     req.Title,
		StartTime: start,
		EndTime:   end,
		Completed: req.Completed,
		Notes:     req.Notes,
	}, true
}
