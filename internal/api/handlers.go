package api

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/blyfoten/SankeySaldo/internal/domain"
	"github.com/blyfoten/SankeySaldo/internal/flow"
	"github.com/blyfoten/SankeySaldo/internal/report"
	"github.com/blyfoten/SankeySaldo/internal/sie"
)

// Handlers groups all HTTP handler methods.
type Handlers struct{}

// ParseResponse is the full result of one uploaded file: the parsed table,
// its metadata, the flow graph and the headline figures.
type ParseResponse struct {
	RunID        string               `json:"run_id"`
	FileName     string               `json:"file_name"`
	Metadata     *domain.Metadata     `json:"metadata"`
	Transactions []domain.Transaction `json:"transactions"`
	Flow         *flow.Graph          `json:"flow"`
	Summary      report.Summary       `json:"summary"`
	Balances     []report.Balance     `json:"balances"`
}

// --- helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[api] encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// --- Health ---

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// --- ParseFile ---

// ParseFile accepts a multipart upload of one SIE file and responds with the
// parsed transactions, metadata, flow graph and summary. The extension hint
// (.se/.si/.sie) is informational only; parsing never dispatches on it.
func (h *Handlers) ParseFile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file field is required: "+err.Error())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "read file: "+err.Error())
		return
	}

	txns, meta, err := sie.Parse(data)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	runID := uuid.New().String()
	log.Printf("[api] parsed %s (%s, %d bytes): %d transactions, %d accounts",
		runID, filepath.Ext(header.Filename), len(data), len(txns), len(meta.Accounts))

	writeJSON(w, http.StatusOK, ParseResponse{
		RunID:        runID,
		FileName:     header.Filename,
		Metadata:     meta,
		Transactions: txns,
		Flow:         flow.Summarize(txns, meta.Accounts),
		Summary:      report.Summarize(txns, meta.Accounts),
		Balances:     report.Balances(txns),
	})
}
