package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var errMissingID = errors.New("id is required")

// processImportReq binds and validates the import request body.
func (h *handler) processImportReq(c *gin.Context) (importReq, error) {
	var req importReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateReq binds and validates the update request body plus
// URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errMissingID
	}
	return req, nil
}

// processDeleteReq binds and validates the bulk delete request body.
func (h *handler) processDeleteReq(c *gin.Context) (deleteReq, error) {
	var req deleteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
