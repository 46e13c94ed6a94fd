package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/faisalthe1/AI-Study-Planner/api/transport"
	"github.com/faisalthe1/AI-Study-Planner/domain"
	"github.com/faisalthe1/AI-Study-Planner/pkg/httpcontext"
	courseUC "github.com/faisalthe1/AI-Study-Planner/usecase/course"
)

type CourseHandler struct {
	baseHandler
	uc *courseUC.UseCase
}

func NewCourseHandler(uc *courseUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *CourseHandler {
	return &CourseHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List courses
// @Tags courses
// @Router /api/v1/courses [get]
func (h *CourseHandler) GetCourses(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	courses, err := h.uc.ListCourses(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, courses)
}

// @Summary Create course
// @Tags courses
// @Router /api/v1/courses [post]
func (h *CourseHandler) CreateCourse(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	course, ok := h.parseCourse(ctx, userID)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.CreateCourse(stdCtx, course)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Update course
// @Tags courses
// @Router /api/v1/courses/{id} [put]
func (h *CourseHandler) UpdateCourse(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	course, ok := h.parseCourse(ctx, userID)
	if !ok {
		return
	}
	if course.ID == "" {
		if id, ok := ctx.UserValue("id").(string); ok {
			course.ID = id
		}
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.UpdateCourse(stdCtx, course)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Delete course
// @Tags courses
// @Router /api/v1/courses/{id} [delete]
func (h *CourseHandler) DeleteCourse(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondInvalid(ctx, "missing course id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DeleteCourse(stdCtx, userID, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

func (h *CourseHandler) parseCourse(ctx *fasthttp.RequestCtx, userID string) (*domain.Course, bool) {
	var req transport.CourseRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return nil, false
	}
	return &domain.Course{
		ID:          req.ID,
		UserID:      userID,
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		Color:       req.Color,
	}, true
}
