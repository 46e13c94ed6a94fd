package handler

import (
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/faisalthe1/AI-Study-Planner/domain"
	"github.com/faisalthe1/AI-Study-Planner/pkg/httpcontext"
	"github.com/faisalthe1/AI-Study-Planner/repository"
	sessionUC "github.com/faisalthe1/AI-Study-Planner/usecase/studysession"
	taskUC "github.com/faisalthe1/AI-Study-Planner/usecase/task"
)

type DashboardHandler struct {
	baseHandler
	tasks    *taskUC.UseCase
	sessions *sessionUC.UseCase
}

func NewDashboardHandler(tasks *taskUC.UseCase, sessions *sessionUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		baseHandler: newBaseHandler(adapter, logger),
		tasks:       tasks,
		sessions:    sessions,
	}
}

type dashboard struct {
	UpcomingTasks []domain.Task         `json:"upcoming_tasks"`
	TodaySessions []domain.StudySession `json:"today_sessions"`
}

// @Summary Dashboard feed: next 5 tasks and today's sessions
// @Tags dashboard
// @Router /api/v1/dashboard [get]
func (h *DashboardHandler) GetDashboard(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	now := time.Now().UTC()
	upcoming, err := h.tasks.ListTasks(stdCtx, repository.TaskFilter{
		UserID:   userID,
		DueAfter: now,
		Limit:    5,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	today, err := h.sessions.ListSessions(stdCtx, repository.SessionFilter{
		UserID: userID,
		From:   dayStart,
		To:     dayStart.AddDate(0, 0, 1),
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	h.respondSuccess(ctx, http.StatusOK, dashboard{
		UpcomingTasks: upcoming,
		TodaySessions: today,
	})
}
