package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"xrplScope/internal/model"
	"xrplScope/internal/pipeline"
)

type latestBlockResponse struct {
	Block model.LatestBlock `json:"block"`
}

type assetResponse struct {
	Assets map[string]model.AssetDescriptor `json:"assets"`
	Errors map[string]string                `json:"errors,omitempty"`
}

type pairResponse struct {
	Pair model.PairDescriptor `json:"pair"`
}

type eventsResponse struct {
	Events      []model.SwapEvent `json:"events"`
	SkippedTxns int               `json:"skippedTxns"`
}

func (s *Server) handleLatestBlock(w http.ResponseWriter, r *http.Request) {
	const cacheKey = "latest-block"
	if cached, ok := s.cached(cacheKey); ok {
		s.writeJSON(w, http.StatusOK, cached)
		return
	}

	index, closeTime, err := s.deps.Head.ValidatedLedger(r.Context())
	if err != nil {
		s.deps.Logger.Error("latest block fetch failed", zap.Error(err))
		s.writeError(w, http.StatusBadGateway, "ledger head unavailable")
		return
	}

	resp := latestBlockResponse{Block: model.LatestBlock{
		BlockNumber:    index,
		BlockTimestamp: model.RippleToUnix(closeTime),
	}}
	s.store(cacheKey, resp)
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAsset(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("id")
	if raw == "" {
		s.writeError(w, http.StatusBadRequest, "id query parameter is required")
		return
	}

	ids := splitIDs(raw)
	cacheKey := "asset:" + strings.Join(ids, ",")
	if cached, ok := s.cached(cacheKey); ok {
		s.writeJSON(w, http.StatusOK, cached)
		return
	}

	assets, failures := s.deps.Assets.ResolveBatch(r.Context(), ids)
	resp := assetResponse{Assets: assets, Errors: failures}
	if len(failures) == 0 {
		s.store(cacheKey, resp)
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePair(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		s.writeError(w, http.StatusBadRequest, "id query parameter is required")
		return
	}

	cacheKey := "pair:" + id
	if cached, ok := s.cached(cacheKey); ok {
		s.writeJSON(w, http.StatusOK, cached)
		return
	}

	pair, err := s.deps.Pairs.Resolve(r.Context(), id)
	switch {
	case errors.Is(err, model.ErrMalformedIdentifier):
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, model.ErrPairNotFound):
		s.writeError(w, http.StatusNotFound, err.Error())
		return
	case err != nil:
		s.deps.Logger.Error("pair resolution failed", zap.String("pair", id), zap.Error(err))
		s.writeError(w, http.StatusBadGateway, "pair lookup failed")
		return
	}

	resp := pairResponse{Pair: pair}
	s.store(cacheKey, resp)
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	from, err := parseLedgerIndex(r.URL.Query().Get("fromBlock"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("fromBlock: %v", err))
		return
	}
	to, err := parseLedgerIndex(r.URL.Query().Get("toBlock"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("toBlock: %v", err))
		return
	}

	ledgerRange, err := pipeline.NewLedgerRange(from, to)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.deps.Events.Scan(r.Context(), ledgerRange)
	if err != nil {
		s.deps.Logger.Error("range scan failed",
			zap.Uint32("from", from),
			zap.Uint32("to", to),
			zap.Error(err))
		s.writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, eventsResponse{
		Events:      result.Events,
		SkippedTxns: result.Skipped,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) cached(key string) (interface{}, bool) {
	if s.deps.Cache == nil {
		return nil, false
	}
	return s.deps.Cache.Get(key)
}

func (s *Server) store(key string, value interface{}) {
	if s.deps.Cache == nil {
		return
	}
	s.deps.Cache.Set(key, value, s.deps.CacheTTL)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.deps.Logger.Warn("response encode failed", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

func parseLedgerIndex(raw string) (uint32, error) {
	if raw == "" {
		return 0, fmt.Errorf("query parameter is required")
	}
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("not a valid ledger index: %q", raw)
	}
	return uint32(value), nil
}

func splitIDs(raw string) []string {
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		ids = append(ids, part)
	}
	return ids
}
