package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/shopspring/decimal"

	"jmoret/bankparse/internal/extract"
	"jmoret/bankparse/internal/logging"
	"jmoret/bankparse/internal/models"
	"jmoret/bankparse/internal/parsererror"
)

// handleParse accepts a multipart upload of statement files, runs the
// extraction pipeline, and bulk-replaces the stored transactions with the
// result.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "No files uploaded")
		return
	}
	// Multipart parts above the memory threshold land in temp files;
	// remove them no matter how the request ends.
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			s.logger.WithError(err).Warn("Failed to remove upload temp files")
		}
	}()

	var files []extract.File
	for _, fh := range r.MultipartForm.File["files"] {
		part, err := fh.Open()
		if err != nil {
			s.logger.WithError(err).WithField("file", fh.Filename).Warn("Failed to open uploaded file")
			continue
		}
		data, err := io.ReadAll(part)
		_ = part.Close()
		if err != nil {
			s.logger.WithError(err).WithField("file", fh.Filename).Warn("Failed to read uploaded file")
			continue
		}
		files = append(files, extract.File{Name: fh.Filename, Data: data})
	}

	txs, err := s.extractor.ParseFiles(r.Context(), files)
	if err != nil {
		if errors.Is(err, parsererror.ErrNoFiles) {
			writeError(w, http.StatusBadRequest, "No files uploaded")
			return
		}
		s.logger.WithError(err).Error("Statement parsing failed")
		writeError(w, http.StatusInternalServerError, "Failed to parse")
		return
	}

	saved := txs
	if len(txs) > 0 {
		// A new upload replaces the previous statement's records.
		saved = s.store.ReplaceAll(txs)
	}

	s.logger.Info("Parsed statement upload",
		logging.Field{Key: "files", Value: len(files)},
		logging.Field{Key: "transactions", Value: len(saved)})
	writeJSON(w, http.StatusOK, map[string]interface{}{"transactions": saved})
}

// transactionPayload is the request body for create/update. Amount is a
// pointer so a missing field can be told apart from zero.
type transactionPayload struct {
	Date        string           `json:"date"`
	Description string           `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	Merchant    string           `json:"merchant"`
	Category    string           `json:"category"`
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.List())
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	tx, ok := s.store.Get(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "Transaction not found")
		return
	}
	writeJSON(w, http.StatusOK, tx)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload transactionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if payload.Date == "" || payload.Description == "" || payload.Amount == nil {
		writeError(w, http.StatusBadRequest, "Please provide all required fields")
		return
	}

	tx := models.Transaction{
		Date:        payload.Date,
		Description: payload.Description,
		Amount:      *payload.Amount,
		Merchant:    payload.Merchant,
		Category:    payload.Category,
	}
	tx.Normalize()
	if err := tx.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, s.store.Insert(tx))
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	existing, ok := s.store.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Transaction not found")
		return
	}

	var payload transactionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Merge: absent fields keep their stored values.
	if payload.Date != "" {
		existing.Date = payload.Date
	}
	if payload.Description != "" {
		existing.Description = payload.Description
	}
	if payload.Amount != nil {
		existing.Amount = *payload.Amount
	}
	if payload.Merchant != "" {
		existing.Merchant = payload.Merchant
	}
	if payload.Category != "" {
		existing.Category = payload.Category
	}
	if err := existing.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, ok := s.store.Update(id, existing)
	if !ok {
		writeError(w, http.StatusNotFound, "Transaction not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if !s.store.Delete(r.PathValue("id")) {
		writeError(w, http.StatusNotFound, "Transaction not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleBatch bulk-replaces the stored set, mirroring what a statement
// upload does but with pre-parsed records.
func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Transactions []models.Transaction `json:"transactions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(payload.Transactions) == 0 {
		writeError(w, http.StatusBadRequest, "Please provide an array of transactions")
		return
	}
	for i := range payload.Transactions {
		payload.Transactions[i].Normalize()
	}

	writeJSON(w, http.StatusCreated, s.store.ReplaceAll(payload.Transactions))
}
