package ui

import (
	stderrors "errors"
	"fmt"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"xlfilter/app"
	"xlfilter/domain/core"
	"xlfilter/domain/filter"
	"xlfilter/domain/grid"
	"xlfilter/internal/errors"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"headers": s.config.Headers.Labels(),
	})
}

// handleHeaders returns the detected header row of the uploaded file
func (s *Server) handleHeaders(c *gin.Context) {
	wb, ok := s.openUpload(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"file":       filepath.Base(wb.Grid.Source),
		"sheet":      wb.Grid.Sheet,
		"header_row": wb.Header.Index,
		"headers":    wb.Header.Headers,
		"columns":    wb.Columns(),
	})
}

// handlePreview returns the filter result and its column summary as JSON
func (s *Server) handlePreview(c *gin.Context) {
	wb, result, ok := s.filterUpload(c)
	if !ok {
		return
	}

	rows := make([][]string, 0, result.Count)
	for _, row := range result.Rows() {
		rows = append(rows, cellTexts(row))
	}

	c.JSON(http.StatusOK, gin.H{
		"header_row": wb.Header.Index,
		"columns":    result.Labels(),
		"rows":       rows,
		"count":      result.Count,
		"summary":    s.service.Summarize(result),
	})
}

// handleFilter streams the filter result as an xlsx attachment
func (s *Server) handleFilter(c *gin.Context) {
	wb, result, ok := s.filterUpload(c)
	if !ok {
		return
	}

	name := s.service.SuggestFileName(wb.CanonicalColumn(c.PostForm("column")))
	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	c.Status(http.StatusOK)

	if err := s.service.Write(result, c.Writer); err != nil {
		// headers are already sent; the client sees a truncated body
		s.logger.Error("[handleFilter] op=%s streaming result failed: %v", wb.ID, err)
		c.Abort()
	}
}

func (s *Server) openUpload(c *gin.Context) (*app.Workbook, bool) {
	fh, err := c.FormFile("file")
	if err != nil {
		var maxBytes *http.MaxBytesError
		if stderrors.As(err, &maxBytes) {
			s.respondError(c, err)
		} else {
			s.respondError(c, errors.InvalidInput("multipart field \"file\" is required"))
		}
		return nil, false
	}
	src, err := fh.Open()
	if err != nil {
		s.respondError(c, core.NewFileOpenError(fh.Filename, err))
		return nil, false
	}
	defer src.Close()

	wb, err := s.service.OpenReader(src, fh.Filename)
	if err != nil {
		s.respondError(c, err)
		return nil, false
	}
	return wb, true
}

func (s *Server) filterUpload(c *gin.Context) (*app.Workbook, *filter.ResultData, bool) {
	wb, ok := s.openUpload(c)
	if !ok {
		return nil, nil, false
	}

	sel := filter.Selection{Column: c.PostForm("column"), Value: c.PostForm("value")}
	if sel.Column == "" || strings.TrimSpace(sel.Value) == "" {
		s.respondError(c, fmt.Errorf("%w: form fields \"column\" and \"value\" are required", core.ErrNoSelection))
		return nil, nil, false
	}

	result, err := s.service.Filter(wb, sel)
	if err != nil {
		s.respondError(c, err)
		return nil, nil, false
	}
	return wb, result, true
}

func (s *Server) respondError(c *gin.Context, err error) {
	status := statusFor(err)
	appErr := errors.FromDomain(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("[HTTP] %s: %v", c.Request.URL.Path, err)
	}
	c.AbortWithStatusJSON(status, gin.H{
		"error": appErr.Error(),
		"code":  appErr.Code,
	})
}

// statusFor maps domain failures to HTTP status codes
func statusFor(err error) int {
	var maxBytes *http.MaxBytesError
	switch {
	case stderrors.As(err, &maxBytes):
		return http.StatusRequestEntityTooLarge
	case stderrors.Is(err, core.ErrNoMatches):
		return http.StatusNotFound
	case core.IsLayoutError(err):
		return http.StatusUnprocessableEntity
	case core.IsInputError(err), errors.GetCode(err) == errors.CodeInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func cellTexts(cells []grid.Cell) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = c.Text
	}
	return out
}
