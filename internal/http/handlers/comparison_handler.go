// Comparison HTTP handlers.
//
// This file exposes REST endpoints for saved comparisons:
//   - POST   /comparisons       (build + save)
//   - GET    /comparisons       (list, paginated, newest first)
//   - GET    /comparisons/{id}  (fetch one)
//   - DELETE /comparisons/{id}  (remove, idempotent)
//
// Validation failures surface as 400 responses with the domain-specific
// codes from errors.go; a rejected save never persists anything.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/newshield/go-insurance-backend/internal/domain"
	"github.com/newshield/go-insurance-backend/internal/services"
	"github.com/newshield/go-insurance-backend/internal/utils"
)

//
// DTOs
//

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// ListComparisonsResponse wraps a page of comparisons and pagination
// information. Items are ordered newest first.
type ListComparisonsResponse struct {
	Comparisons []domain.Comparison `json:"comparisons"`
	Pagination  Pagination          `json:"pagination"`
}

//
// Helpers
//

// clampPagination parses and bounds page and page_size query params to sane
// defaults and limits, returning (page, pageSize).
func clampPagination(c *gin.Context) (page, pageSize int) {
	const (
		defaultPage     = 1
		defaultPageSize = 20
		maxPageSize     = 100
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = 1
	}
	pageSize = utils.AtoiDefault(c.Query("page_size"), defaultPageSize)
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return
}

//
// Handlers
//

// CreateComparison godoc
// @ID          createComparison
// @Summary     Save a comparison
// @Description Validates and persists a comparison aggregate, stamping id, reference number, and creation time. Derived quote fields (tax, total) are recomputed server-side.
// @Tags        Comparisons
// @Accept      json
// @Produce     json
//
// @Param       body  body  services.SaveComparisonInput  true  "Comparison payload"
//
// @Success     201  {object}  domain.Comparison
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failure (missing_insurance_line, missing_customer_name, no_quotes)"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /comparisons [post]
func (h *Handlers) CreateComparison(c *gin.Context) {
	var in services.SaveComparisonInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	cmp, err := h.cmpSvc.Save(c.Request.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingInsuranceLine):
			fail(c, http.StatusBadRequest, ErrCodeMissingInsuranceLine, err.Error())
		case errors.Is(err, services.ErrMissingCustomerName):
			fail(c, http.StatusBadRequest, ErrCodeMissingCustomerName, err.Error())
		case errors.Is(err, services.ErrNoQuotes):
			fail(c, http.StatusBadRequest, ErrCodeNoQuotes, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeSaveFailed, err.Error())
		}
		return
	}
	ok(c, http.StatusCreated, cmp)
}

// ListComparisons godoc
// @ID          listComparisons
// @Summary     List saved comparisons (paginated)
// @Description Returns a page of saved comparisons, newest first.
// @Tags        Comparisons
// @Produce     json
//
// @Param       page       query  int  false  "Page number"     minimum(1) default(1)
// @Param       page_size  query  int  false  "Items per page"  minimum(1) maximum(100) default(20)
//
// @Success     200  {object}  handlers.ListComparisonsResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /comparisons [get]
func (h *Handlers) ListComparisons(c *gin.Context) {
	page, pageSize := clampPagination(c)

	items, total, err := h.cmpSvc.ListPage(c.Request.Context(), page, pageSize)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	ok(c, http.StatusOK, ListComparisonsResponse{
		Comparisons: items,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	})
}

// GetComparison godoc
// @ID          getComparison
// @Summary     Get a saved comparison
// @Description Returns a single saved comparison aggregate by id.
// @Tags        Comparisons
// @Produce     json
//
// @Param       id  path  string  true  "Comparison ID (UUID)"  format(uuid)
//
// @Success     200  {object}  domain.Comparison
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Comparison not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /comparisons/{id} [get]
func (h *Handlers) GetComparison(c *gin.Context) {
	cmp, ok2 := h.fetchComparison(c)
	if !ok2 {
		return
	}
	ok(c, http.StatusOK, cmp)
}

// DeleteComparison godoc
// @ID          deleteComparison
// @Summary     Delete a saved comparison
// @Description Removes a comparison permanently. Deleting an absent id succeeds (idempotent).
// @Tags        Comparisons
//
// @Param       id  path  string  true  "Comparison ID (UUID)"  format(uuid)
//
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /comparisons/{id} [delete]
func (h *Handlers) DeleteComparison(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "comparison id must be a UUID")
		return
	}

	if err := h.cmpSvc.Delete(c.Request.Context(), id); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	noContent(c)
}

// fetchComparison validates the id path param and loads the comparison,
// writing the error response itself on failure.
func (h *Handlers) fetchComparison(c *gin.Context) (*domain.Comparison, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "comparison id must be a UUID")
		return nil, false
	}

	cmp, err := h.cmpSvc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrComparisonNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "comparison not found")
		} else {
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return nil, false
	}
	return cmp, true
}
