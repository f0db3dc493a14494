package handlers

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"

	"safety-tracker-backend/internal/auth"
	"safety-tracker-backend/internal/reconcile"
	"safety-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ImportFailureResponse is returned when an import stopped part way. Report
// lists what was written and skipped before the failure.
type ImportFailureResponse struct {
	Error  string            `json:"error"`
	Report *reconcile.Report `json:"report"`
}

// ImportHandler handles legacy workbook uploads
type ImportHandler struct {
	importService  service.ImportServiceInterface
	maxUploadBytes int64
}

// NewImportHandler creates a new import handler. maxUploadMB caps the size of
// an uploaded workbook.
func NewImportHandler(importService service.ImportServiceInterface, maxUploadMB int) *ImportHandler {
	if maxUploadMB <= 0 {
		maxUploadMB = 20
	}
	return &ImportHandler{
		importService:  importService,
		maxUploadBytes: int64(maxUploadMB) << 20,
	}
}

// ImportWorkbook handles POST /imports with the workbook in the multipart
// field "file". dry_run=true reports what would change without writing.
// @Summary Import a legacy workbook
// @Description Reconcile an .xlsx or .xls workbook into periods, coaches and metrics.
// @Description
// @Description Rows that cannot be read are skipped and listed in the report diagnostics.
// @Description With dry_run=true nothing is written.
// @Tags imports
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Legacy workbook"
// @Param dry_run query bool false "Report changes without writing" default(false)
// @Success 200 {object} reconcile.Report "Import report"
// @Failure 400 {object} ErrorResponse "Missing file or invalid dry_run"
// @Failure 413 {object} ErrorResponse "Workbook too large"
// @Failure 422 {object} ErrorResponse "Unreadable workbook"
// @Failure 500 {object} ImportFailureResponse "Import stopped part way"
// @Security BearerAuth
// @Router /imports [post]
func (h *ImportHandler) ImportWorkbook(c *gin.Context) {
	dryRun := false
	if raw := c.Query("dry_run"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "dry_run must be true or false"})
			return
		}
		dryRun = parsed
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "A workbook must be uploaded in the \"file\" field"})
		return
	}
	if header.Size > h.maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{
			Error: fmt.Sprintf("Workbook exceeds the %d MB upload limit", h.maxUploadBytes>>20),
		})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to read uploaded workbook"})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, h.maxUploadBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to read uploaded workbook"})
		return
	}

	report, err := h.importService.Import(c.Request.Context(), auth.GetIdentity(c), &service.ImportRequest{
		Filename: filepath.Base(header.Filename),
		Content:  content,
		DryRun:   dryRun,
	})
	if err != nil && report != nil {
		_ = c.Error(err)
		c.JSON(statusFor(err), ImportFailureResponse{Error: "Import failed", Report: report})
		return
	}
	if err != nil {
		respondError(c, err, "Import failed")
		return
	}

	c.JSON(http.StatusOK, report)
}
