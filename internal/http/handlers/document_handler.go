// Document download handlers.
//
// This file exposes the rendered-document endpoints for saved comparisons:
//   - GET /comparisons/{id}/document  (printable HTML report)
//   - GET /comparisons/{id}/workbook  (xlsx workbook)
//
// Rendering happens after the fact, from the stored aggregate; a render
// failure is reported to the caller but never affects the saved record.
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/newshield/go-insurance-backend/internal/http/middleware"
	"github.com/newshield/go-insurance-backend/internal/render"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// DownloadDocument godoc
// @ID          downloadDocument
// @Summary     Download the printable HTML report
// @Description Renders the comparison as a self-contained printable HTML document and returns it as an attachment named insurance_comparison_<reference>.html.
// @Tags        Documents
// @Produce     html
//
// @Param       id  path  string  true  "Comparison ID (UUID)"  format(uuid)
//
// @Success     200  {string}  string  "HTML document"
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Comparison not found"
// @Failure     502  {object}  handlers.ErrorResponse  "Render failure; the stored comparison is intact"
// @Router      /comparisons/{id}/document [get]
func (h *Handlers) DownloadDocument(c *gin.Context) {
	cmp, ok := h.fetchComparison(c)
	if !ok {
		return
	}

	doc, err := render.RenderPrintDocument(cmp, h.brand)
	middleware.CountRenderedDocument("html", err == nil)
	if err != nil {
		fail(c, http.StatusBadGateway, ErrCodeRenderFailed, "document rendering failed")
		return
	}

	name := fmt.Sprintf("insurance_comparison_%s.html", cmp.ReferenceNumber)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc))
}

// DownloadWorkbook godoc
// @ID          downloadWorkbook
// @Summary     Download the xlsx workbook
// @Description Renders the comparison as an xlsx workbook and returns it as an attachment named general_insurance_<reference>.xlsx.
// @Tags        Documents
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//
// @Param       id  path  string  true  "Comparison ID (UUID)"  format(uuid)
//
// @Success     200  {file}    file  "Workbook bytes"
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Comparison not found"
// @Failure     502  {object}  handlers.ErrorResponse  "Render failure; the stored comparison is intact"
// @Router      /comparisons/{id}/workbook [get]
func (h *Handlers) DownloadWorkbook(c *gin.Context) {
	cmp, ok := h.fetchComparison(c)
	if !ok {
		return
	}

	wb, err := render.RenderWorkbook(cmp)
	middleware.CountRenderedDocument("xlsx", err == nil)
	if err != nil {
		fail(c, http.StatusBadGateway, ErrCodeRenderFailed, "workbook rendering failed")
		return
	}

	name := fmt.Sprintf("general_insurance_%s.xlsx", cmp.ReferenceNumber)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, xlsxContentType, wb)
}
