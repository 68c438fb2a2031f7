package httpadapter

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/chitwa-lm/admissions-verifier/internal/config"
	"github.com/chitwa-lm/admissions-verifier/internal/core/domain"
	"github.com/chitwa-lm/admissions-verifier/internal/core/ports"
	"github.com/chitwa-lm/admissions-verifier/internal/observability/metrics"
	"github.com/chitwa-lm/admissions-verifier/internal/verifier/signatures"
)

const serviceName = "api"

type Router struct {
	cfg      config.Config
	ingestUC ports.DocumentIngestor
	verifyUC ports.DocumentVerifier
	reader   ports.DocumentReader
	table    *signatures.Table
	metrics  *metrics.HTTPServerMetrics
}

func NewRouter(
	cfg config.Config,
	ingestUC ports.DocumentIngestor,
	verifyUC ports.DocumentVerifier,
	reader ports.DocumentReader,
	table *signatures.Table,
	serverMetrics *metrics.HTTPServerMetrics,
) *Router {
	if table == nil {
		table = signatures.Default()
	}
	if serverMetrics == nil {
		serverMetrics = metrics.NewHTTPServerMetrics(serviceName)
	}
	return &Router{
		cfg:      cfg,
		ingestUC: ingestUC,
		verifyUC: verifyUC,
		reader:   reader,
		table:    table,
		metrics:  serverMetrics,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.healthz)
	mux.Handle("/metrics", rt.metrics.Handler())
	mux.HandleFunc("/v1/documents", rt.uploadDocument)
	mux.HandleFunc("/v1/documents/", rt.getDocumentByID)
	mux.HandleFunc("/v1/verifications", rt.verifyDocument)

	var handler http.Handler = mux
	handler = rateLimitMiddleware(handler, rt.cfg.APIRateLimitRPS, rt.cfg.APIRateLimitBurst)
	handler = backpressureMiddleware(handler, rt.cfg.APIMaxConcurrent, 50*time.Millisecond)
	handler = rt.metrics.Middleware(serviceName, handler)
	handler = accessLogMiddleware(handler)
	handler = requestIDMiddleware(handler)
	return handler
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rt *Router) uploadDocument(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	file, header, expectedType, ok := rt.parseUpload(w, r)
	if !ok {
		return
	}
	defer file.Close()

	doc, err := rt.ingestUC.Upload(
		r.Context(),
		header.Filename,
		header.Header.Get("Content-Type"),
		header.Size,
		expectedType,
		file,
	)
	if err != nil {
		writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusAccepted, doc)
}

func (rt *Router) getDocumentByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/v1/documents/")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "document id is required"})
		return
	}

	doc, err := rt.reader.GetByID(r.Context(), id)
	if err != nil {
		writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// verifyDocument is the interactive path: the pipeline runs synchronously
// and the response is always a well-formed validation result.
func (rt *Router) verifyDocument(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	file, header, expectedType, ok := rt.parseUpload(w, r)
	if !ok {
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "could not read uploaded file"})
		return
	}

	start := time.Now()
	result := rt.verifyUC.Verify(r.Context(), ports.VerificationInput{
		Content:      content,
		Filename:     header.Filename,
		SizeBytes:    header.Size,
		MimeType:     header.Header.Get("Content-Type"),
		ExpectedType: expectedType,
	})
	rt.metrics.RecordVerification(serviceName, string(expectedType), result.IsValid, result.OverallScore, time.Since(start))

	writeJSON(w, http.StatusOK, result)
}

func (rt *Router) parseUpload(w http.ResponseWriter, r *http.Request) (multipart.File, *multipart.FileHeader, domain.DocumentType, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, rt.cfg.MaxUploadBytes)

	formFile, formHeader, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "multipart field 'file' is required"})
		return nil, nil, "", false
	}

	expectedType := domain.DocumentType(strings.TrimSpace(r.FormValue("expected_type")))
	if expectedType == "" {
		formFile.Close()
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "form field 'expected_type' is required"})
		return nil, nil, "", false
	}
	if !rt.table.Known(expectedType) {
		formFile.Close()
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown expected_type: " + string(expectedType)})
		return nil, nil, "", false
	}

	return formFile, formHeader, expectedType, true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
