package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/kirillkom/docsight/internal/core/domain"
	"github.com/kirillkom/docsight/internal/core/ports"
	"github.com/kirillkom/docsight/internal/observability/metrics"
)

type Router struct {
	ingestUC ports.DocumentIngestor
	queryUC  ports.DocumentReader
	options  Options
}

type Options struct {
	Service          string
	MaxUploadBytes   int64
	UploadRatePerSec int
	UploadRateBurst  int
	Metrics          *metrics.HTTPServerMetrics
}

func NewRouter(
	ingestUC ports.DocumentIngestor,
	queryUC ports.DocumentReader,
	options Options,
) *Router {
	if options.Service == "" {
		options.Service = "api"
	}
	if options.MaxUploadBytes <= 0 {
		options.MaxUploadBytes = 20 << 20
	}
	return &Router{
		ingestUC: ingestUC,
		queryUC:  queryUC,
		options:  options,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.healthz)
	mux.HandleFunc("/v1/documents", rt.documents)
	mux.HandleFunc("/v1/documents/", rt.getDocumentByID)
	if rt.options.Metrics != nil {
		mux.Handle("/metrics", rt.options.Metrics.Handler())
	}

	var handler http.Handler = mux
	handler = rateLimitMiddleware(handler, uploadOnly, rt.options.UploadRatePerSec, rt.options.UploadRateBurst)
	if rt.options.Metrics != nil {
		handler = rt.options.Metrics.Middleware(rt.options.Service, handler)
	}
	handler = accessLogMiddleware(handler)
	return requestIDMiddleware(handler)
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rt *Router) documents(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		rt.uploadDocument(w, r)
	case http.MethodGet:
		rt.listDocuments(w, r)
	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
	}
}

func (rt *Router) uploadDocument(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, rt.options.MaxUploadBytes)

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			rt.recordUpload(0, err)
			writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "uploaded file is too large"})
			return
		}
		rt.recordUpload(0, err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "multipart field 'file' is required"})
		return
	}
	defer file.Close()

	doc, err := rt.ingestUC.Upload(
		r.Context(),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		rt.recordUpload(0, err)
		writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
		return
	}

	rt.recordUpload(int(fileHeader.Size), nil)
	writeJSON(w, http.StatusAccepted, doc)
}

func (rt *Router) listDocuments(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit := 0
	if raw := query.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "limit must be a non-negative integer"})
			return
		}
		limit = parsed
	}

	docs, err := rt.queryUC.List(r.Context(), domain.ListFilter{
		Status:       domain.DocumentStatus(query.Get("status")),
		DocumentType: domain.DocumentType(query.Get("type")),
		Tag:          query.Get("tag"),
		Query:        query.Get("q"),
		Limit:        limit,
	})
	if err != nil {
		writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
		return
	}
	if docs == nil {
		docs = []domain.Document{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"documents": docs})
}

func (rt *Router) getDocumentByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/v1/documents/")
	if id == "" || strings.Contains(id, "/") {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "document id is required"})
		return
	}

	doc, err := rt.queryUC.GetByID(r.Context(), id)
	if err != nil {
		writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (rt *Router) recordUpload(sizeBytes int, err error) {
	if rt.options.Metrics == nil {
		return
	}
	rt.options.Metrics.RecordUpload(rt.options.Service, sizeBytes, err)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
