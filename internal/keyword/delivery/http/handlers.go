package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/nikhil-s1nha/productivity/internal/keyword"
	"github.com/nikhil-s1nha/productivity/pkg/response"
)

var errMissingKey = errors.New("key is required")

type setReq struct {
	Category string `json:"category" binding:"required,min=1,max=255"`
}

type listResp struct {
	Keywords map[string]string `json:"keywords"`
}

// List godoc
// @Summary     List keyword mappings
// @Description Returns the keyword-to-category map used by the importer.
// @Tags        Keywords
// @Produce     json
// @Success     200 {object} listResp
// @Router      /api/v1/keywords [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, listResp{Keywords: output.Keywords})
}

// Set godoc
// @Summary     Set a keyword mapping
// @Description Maps a keyword (lowercased) to a category label.
// @Tags        Keywords
// @Accept      json
// @Produce     json
// @Param       key  path string true "Keyword"
// @Param       body body setReq true "Category"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/keywords/{key} [PUT]
func (h *handler) Set(c *gin.Context) {
	ctx := c.Request.Context()

	key := c.Param("key")
	if key == "" {
		response.Error(c, errMissingKey)
		return
	}

	var req setReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Set(ctx, keyword.SetKeywordInput{Key: key, Category: req.Category}); err != nil {
		h.l.Errorf(ctx, "uc.Set: %v", err)
		response.Error(c, err)
		return
	}

	response.OK(c, nil)
}

// Remove godoc
// @Summary     Remove a keyword mapping
// @Description Deletes a keyword from the map. A missing key is a silent miss.
// @Tags        Keywords
// @Produce     json
// @Param       key path string true "Keyword"
// @Success     200 {object} response.Resp
// @Router      /api/v1/keywords/{key} [DELETE]
func (h *handler) Remove(c *gin.Context) {
	ctx := c.Request.Context()

	key := c.Param("key")
	if key == "" {
		response.Error(c, errMissingKey)
		return
	}

	if err := h.uc.Remove(ctx, key); err != nil {
		h.l.Errorf(ctx, "uc.Remove: %v", err)
		response.Error(c, err)
		return
	}

	response.OK(c, nil)
}
