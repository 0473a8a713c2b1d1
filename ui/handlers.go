package ui

import (
	"context"
	"encoding/json"
	"net/http"
	"path/filepath"
	"strings"

	"datascope/adapters/ingest"
	"datascope/domain/core"
	"datascope/domain/profile"
	"datascope/domain/table"
	"datascope/internal"
	apperrors "datascope/internal/errors"
	"datascope/internal/report"
	"datascope/internal/testkit"
	"datascope/internal/viz"
)

// AnalysisResponse is the full upload/demo result: the profile, its
// fingerprint, the chart payloads, and the rendered report
type AnalysisResponse struct {
	Filename    string                  `json:"filename"`
	Profile     *profile.Profile        `json:"profile"`
	Fingerprint core.ProfileFingerprint `json:"fingerprint"`
	Charts      viz.Charts              `json:"charts"`
	ReportHTML  string                  `json:"report_html"`
}

// errorResponse is the JSON error envelope
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleUpload ingests one tabular file and returns its analysis. Size and
// format limits are enforced here, at the transport boundary; the engine has
// no upper bound of its own.
func (a *App) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, a.cfg.Upload.MaxFileSize)
	if err := r.ParseMultipartForm(a.cfg.Upload.MaxFileSize); err != nil {
		a.writeError(w, http.StatusRequestEntityTooLarge,
			apperrors.FileTooLarge(r.ContentLength, a.cfg.Upload.MaxFileSize))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		a.writeError(w, http.StatusBadRequest, apperrors.InvalidInput("no file selected"))
		return
	}
	defer file.Close()

	if !a.allowedExtension(header.Filename) {
		a.writeError(w, http.StatusBadRequest,
			apperrors.UnsupportedFile("please upload a CSV, Excel, JSON, or TXT file"))
		return
	}

	a.log.Info("[Upload] Processing file: %s (%d bytes)", header.Filename, header.Size)

	t, err := ingest.ReadTableFrom(file, header.Filename, a.cfg.Upload.TempDir)
	if err != nil {
		a.writeError(w, http.StatusUnprocessableEntity,
			apperrors.Wrapf(err, "error processing file %s", header.Filename))
		return
	}

	a.respondWithAnalysis(r.Context(), w, header.Filename, t)
}

// handleDemo profiles the seeded synthetic dataset
func (a *App) handleDemo(w http.ResponseWriter, r *http.Request) {
	t := testkit.DemoTable(testkit.DefaultDemoConfig())
	a.respondWithAnalysis(r.Context(), w, "demo_data.csv", t)
}

// respondWithAnalysis runs the engine and writes the full analysis payload
func (a *App) respondWithAnalysis(ctx context.Context, w http.ResponseWriter, filename string, t *table.Table) {
	p, err := a.engine.Profile(ctx, t)
	if err != nil {
		status := http.StatusInternalServerError
		if core.IsMalformedTableError(err) {
			status = http.StatusUnprocessableEntity
			err = apperrors.MalformedTable(err)
		}
		a.writeError(w, status, err)
		return
	}

	a.log.Info("[Analysis] Profiled %s: %d rows, %d columns (%d numerical)",
		filename, p.RowCount, p.ColumnCount, len(p.Numeric))

	writeJSON(w, http.StatusOK, AnalysisResponse{
		Filename:    filename,
		Profile:     p,
		Fingerprint: p.Fingerprint(),
		Charts:      viz.Build(t, p),
		ReportHTML:  string(report.HTML(filename, p)),
	})
}

// allowedExtension checks the upload whitelist
func (a *App) allowedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range a.cfg.Upload.AllowedExts {
		if ext == allowed {
			return true
		}
	}
	return false
}

func (a *App) writeError(w http.ResponseWriter, status int, err error) {
	a.log.Warn("[HTTP] %d: %v", status, err)
	writeJSON(w, status, errorResponse{
		Code:    apperrors.GetCode(err),
		Message: err.Error(),
	})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// Headers are already out; a broken pipe mid-encode is the common cause
		internal.DefaultLogger.Debug("[HTTP] response encode failed: %v", err)
	}
}
