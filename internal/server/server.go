package server

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/governos/roi-calculator/internal/config"
	"github.com/governos/roi-calculator/internal/engine"
	"github.com/governos/roi-calculator/internal/sensitivity"
	"github.com/governos/roi-calculator/pkg/constants"
	"github.com/governos/roi-calculator/pkg/output"
	"github.com/governos/roi-calculator/pkg/sharelink"
	"go.uber.org/zap"
)

//go:embed static/*
var staticFiles embed.FS

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
	version     string
}

type projectionOptions struct {
	Sensitivity bool
}

// NewHandler constructs the HTTP handler that serves the web UI and the
// projection API.
func NewHandler(logger *zap.Logger, maxBodySize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxBodySize: maxBodySize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Projection API endpoint for editor-driven recomputation
	mux.HandleFunc("/api/roi", h.handleProjection)

	// Share-token endpoints: encode (POST) and restore (GET with token path)
	mux.HandleFunc("/api/share", h.handleShareEncode)
	mux.HandleFunc("/api/share/", h.handleShareDecode)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	mux.Handle("/", http.FileServer(http.FS(sub)))

	return mux
}

type projectionResponse struct {
	Projection  engine.DerivedFinancials   `json:"projection"`
	Sensitivity []sensitivity.DriverResult `json:"sensitivity,omitempty"`
	Warnings    []string                   `json:"warnings,omitempty"`
	ShareToken  string                     `json:"shareToken"`
	CSV         string                     `json:"csv"`
	Duration    string                     `json:"duration"`
}

func (h *handler) handleProjection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	body, ok := h.readBody(w, r, "server.handleProjection")
	if !ok {
		return
	}

	assumptions, options, err := decodePayload(body)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleProjection")
		return
	}

	conf := config.Configuration{Assumptions: assumptions}
	warnings := conf.ValidateConfiguration()

	result := engine.Derive(assumptions)
	if result.HasNonFinite() {
		msg := "assumptions produce non-finite results"
		if len(warnings) > 0 {
			msg = fmt.Sprintf("%s: %s", msg, strings.Join(warnings, "; "))
		}
		h.respondError(w, http.StatusUnprocessableEntity, msg, "server.handleProjection")
		return
	}

	var driverResults []sensitivity.DriverResult
	if options.Sensitivity {
		driverResults = sensitivity.NewRunner(h.logger, assumptions).Run()
	}

	token, err := sharelink.Encode(assumptions)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode share token: %v", err), "server.handleProjection")
		return
	}

	elapsed := time.Since(start)
	h.logger.Info("projection computed",
		zap.String("op", "server.handleProjection"),
		zap.String("scenario", string(assumptions.Finance.Scenario)),
		zap.Int("quarters", len(result.Cashflows)),
		zap.Bool("sensitivity", options.Sensitivity),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, projectionResponse{
		Projection:  result,
		Sensitivity: driverResults,
		Warnings:    warnings,
		ShareToken:  token,
		CSV:         output.CsvString(result),
		Duration:    elapsed.String(),
	})
}

func (h *handler) handleShareEncode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	body, ok := h.readBody(w, r, "server.handleShareEncode")
	if !ok {
		return
	}

	assumptions, _, err := decodePayload(body)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleShareEncode")
		return
	}

	token, err := sharelink.Encode(assumptions)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode share token: %v", err), "server.handleShareEncode")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *handler) handleShareDecode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	token := strings.TrimPrefix(r.URL.Path, "/api/share/")
	if token == "" {
		h.respondError(w, http.StatusBadRequest, "missing share token", "server.handleShareDecode")
		return
	}

	assumptions, err := sharelink.Decode(token)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleShareDecode")
		return
	}

	h.writeJSON(w, http.StatusOK, assumptions)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) readBody(w http.ResponseWriter, r *http.Request, op string) ([]byte, bool) {
	if h.maxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxBodySize), op)
			return nil, false
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to read request: %v", err), op)
		return nil, false
	}
	return body, true
}

// decodePayload accepts either a bare assumptions object or a wrapped
// payload {"assumptions": {...}, "options": {"sensitivity": bool}}.
// Missing fields keep their documented defaults so partial editor payloads
// still form a complete record.
func decodePayload(body []byte) (config.Assumptions, projectionOptions, error) {
	assumptions := config.DefaultAssumptions()
	options := projectionOptions{}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return assumptions, options, fmt.Errorf("failed to decode payload: %v", err)
	}

	assumptionsRaw := body
	if raw, wrapped := envelope["assumptions"]; wrapped {
		assumptionsRaw = raw

		if optionsRaw, ok := envelope["options"]; ok {
			var decoded struct {
				Sensitivity bool `json:"sensitivity"`
			}
			if err := json.Unmarshal(optionsRaw, &decoded); err != nil {
				return assumptions, options, fmt.Errorf("invalid options payload: %v", err)
			}
			options.Sensitivity = decoded.Sensitivity
		}
	}

	if err := json.Unmarshal(assumptionsRaw, &assumptions); err != nil {
		return assumptions, options, fmt.Errorf("failed to decode assumptions: %v", err)
	}

	if assumptions.Finance.Scenario != "" {
		scenario, err := config.ParseScenario(string(assumptions.Finance.Scenario))
		if err != nil {
			return assumptions, options, err
		}
		assumptions.Finance.Scenario = scenario
	}

	return assumptions, options, nil
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("projection request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
