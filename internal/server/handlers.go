package server

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"ETFSentinel/internal/model"
)

type etfsResponse struct {
	Success   bool                `json:"success"`
	Count     int                 `json:"count"`
	Data      []model.QuoteRecord `json:"data"`
	Timestamp string              `json:"timestamp"`
	Source    string              `json:"source"`
}

type etfResponse struct {
	Success   bool               `json:"success"`
	Data      *model.QuoteRecord `json:"data"`
	Timestamp string             `json:"timestamp"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Source    string `json:"source"`
}

func (s *Server) handleETFs(w http.ResponseWriter, r *http.Request) {
	log.Println("[INFO] starting ETF data fetch")
	// The batch runs to completion even if the client goes away.
	ctx := context.WithoutCancel(r.Context())

	list := s.Symbols.ListSymbols(ctx)
	log.Printf("[INFO] fetching detailed data for %d ETFs from %s source", len(list), s.Symbols.Name())

	batch := s.Quotes.FetchAll(ctx, list)
	records := batch.Records
	if records == nil {
		records = []model.QuoteRecord{}
	}
	log.Printf("[INFO] successfully fetched data for %d ETFs", batch.Count)

	writeJSON(w, http.StatusOK, etfsResponse{
		Success:   true,
		Count:     batch.Count,
		Data:      records,
		Timestamp: s.timestamp(),
		Source:    SourceLabel,
	})
}

func (s *Server) handleETF(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("symbol")
	log.Printf("[INFO] fetching data for %s", raw)

	rec, err := s.Quotes.FetchQuote(r.Context(), normalizeSymbol(raw), s.MaxRetries)
	if err != nil || rec == nil {
		log.Printf("[WARN] single fetch %s: %v", raw, err)
		writeJSON(w, http.StatusNotFound, errorResponse{
			Success: false,
			Error:   fmt.Sprintf("Could not fetch data for %s", raw),
		})
		return
	}

	writeJSON(w, http.StatusOK, etfResponse{
		Success:   true,
		Data:      rec,
		Timestamp: s.timestamp(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "healthy",
		Timestamp: s.timestamp(),
		Source:    SourceLabel,
	})
}
