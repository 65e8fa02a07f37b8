package http

import (
	"github.com/gin-gonic/gin"

	"github.com/nikhil-s1nha/productivity/pkg/response"
)

// Import godoc
// @Summary     Import tasks from free text
// @Description Parses each non-blank line of raw text into one task and persists it.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body importReq true "Raw multi-line notes"
// @Success     200 {object} importResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/tasks/import [POST]
func (h *handler) Import(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processImportReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Import(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Import: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newImportResp(output))
}

// Create godoc
// @Summary     Create a task
// @Description Creates a task directly, bypassing the importer.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns the task collection in store order, newest first.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} listResp
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get task detail
// @Description Returns a single task by its id.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Update godoc
// @Summary     Update a task
// @Description Replaces the task with the matching id; id and createdAt are preserved.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Replacement task"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Toggle godoc
// @Summary     Toggle task completion
// @Description Flips isCompleted on the matching task. An absent id is a silent miss.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} toggleResp
// @Router      /api/v1/tasks/{id}/toggle [PATCH]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	output, err := h.uc.Toggle(ctx, id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newToggleResp(output))
}

// Delete godoc
// @Summary     Delete tasks
// @Description Permanently removes every task whose id is listed.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body deleteReq true "Task ids"
// @Success     200 {object} deleteResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDeleteReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Delete(ctx, req.toInput())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newDeleteResp(output))
}
