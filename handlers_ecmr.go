package keystone

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/aethongr/keystone-api-standard/ecmr"
	"github.com/aethongr/keystone-api-standard/schema"
)

// utcStamp is the canonical timestamp layout used across the model.
const utcStamp = "2006-01-02T15:04:05Z"

func (s *Server) handleEcmrAdd(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	e, err := schema.Decode[ecmr.EcmrModel](s.reg, body)
	if err != nil {
		writeError(w, err)
		return
	}
	if e.EcmrID == nil {
		id := ecmr.NewID()
		e.EcmrID = &id
	}
	if e.EcmrStatus == nil {
		st := ecmr.EcmrStatusNew
		e.EcmrStatus = &st
	}
	now := time.Now().UTC().Format(utcStamp)
	e.CreatedAt = &now
	if err := s.ecmrs.Add(*e); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, "eCMR added", *e)
}

func (s *Server) handleEcmrGet(w http.ResponseWriter, r *http.Request) {
	e, err := s.ecmrs.ByID(chi.URLParam(r, "ecmrId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, "OK", e)
}

func (s *Server) handleEcmrUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "ecmrId")
	prev, err := s.ecmrs.ByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	body, err := readBody(w, r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	e, err := schema.Decode[ecmr.EcmrModel](s.reg, body)
	if err != nil {
		writeError(w, err)
		return
	}
	// The issued id and the creation audit fields survive updates.
	e.EcmrID = prev.EcmrID
	e.CreatedAt = prev.CreatedAt
	e.CreatedBy = prev.CreatedBy
	now := time.Now().UTC().Format(utcStamp)
	e.EditedAt = &now
	if err := s.ecmrs.Replace(id, *e); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, "eCMR updated", *e)
}

func (s *Server) handleEcmrDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.ecmrs.Delete(chi.URLParam(r, "ecmrId")); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, "eCMR deleted", nil)
}
