package keystone

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/aethongr/keystone-api-standard/schema"
	"github.com/aethongr/keystone-api-standard/storage"
)

func (s *Server) handleOperationAdd(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	op, err := schema.Decode[schema.TransportOperation](s.reg, body)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.operations.Add(*op); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, "Transport operation added", *op)
}

func (s *Server) handleOperationList(w http.ResponseWriter, r *http.Request) {
	operatorID, err := intQuery(r, "operatorId")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	driverID, err := intQuery(r, "driverId")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	writeData(w, http.StatusOK, "OK", listData(s.operations.All(operatorID, driverID)))
}

func (s *Server) handleOperationGet(w http.ResponseWriter, r *http.Request) {
	op, ok := s.operationFromPath(w, r)
	if !ok {
		return
	}
	writeData(w, http.StatusOK, "OK", op)
}

func (s *Server) handleOperationUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "transportOperationId")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	body, err := readBody(w, r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	op, err := schema.Decode[schema.TransportOperation](s.reg, body)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.operations.Replace(id, *op); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, "Transport operation updated", *op)
}

func (s *Server) handleOperationDelete(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "transportOperationId")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if err := s.operations.Delete(id); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, "Transport operation deleted", nil)
}

func (s *Server) handleOperationScheduleGet(w http.ResponseWriter, r *http.Request) {
	op, ok := s.operationFromPath(w, r)
	if !ok {
		return
	}
	writeData(w, http.StatusOK, "OK", op.Schedule)
}

func (s *Server) handleOperationScheduleUpdate(w http.ResponseWriter, r *http.Request) {
	op, ok := s.operationFromPath(w, r)
	if !ok {
		return
	}
	body, err := readBody(w, r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	sched, err := schema.Decode[schema.Schedule](s.reg, body)
	if err != nil {
		writeError(w, err)
		return
	}
	op.Schedule = sched
	if err := s.operations.Replace(intOf(op.ID), op); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, "Schedule updated", sched)
}

func (s *Server) handleOperationPhaseList(w http.ResponseWriter, r *http.Request) {
	op, ok := s.operationFromPath(w, r)
	if !ok {
		return
	}
	writeData(w, http.StatusOK, "OK", listData(op.Phase))
}

func (s *Server) handleOperationPhaseAppend(w http.ResponseWriter, r *http.Request) {
	op, ok := s.operationFromPath(w, r)
	if !ok {
		return
	}
	body, err := readBody(w, r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	ph, err := schema.Decode[schema.Phase](s.reg, body)
	if err != nil {
		writeError(w, err)
		return
	}
	op.Phase = append(op.Phase, *ph)
	if err := s.operations.Replace(intOf(op.ID), op); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, "Phase added", *ph)
}

func (s *Server) handleOperationPhaseGet(w http.ResponseWriter, r *http.Request) {
	op, ok := s.operationFromPath(w, r)
	if !ok {
		return
	}
	s.writeOperationPhase(w, r, op)
}

func (s *Server) handleOperationPhaseUpdate(w http.ResponseWriter, r *http.Request) {
	op, ok := s.operationFromPath(w, r)
	if !ok {
		return
	}
	phaseID, err := intParam(r, "phaseId")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	body, err := readBody(w, r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	ph, err := schema.Decode[schema.Phase](s.reg, body)
	if err != nil {
		writeError(w, err)
		return
	}
	idx := -1
	for i := range op.Phase {
		if intOf(op.Phase[i].ID) == phaseID {
			idx = i
			break
		}
	}
	if idx < 0 {
		writeError(w, fmt.Errorf("phase %d: %w", phaseID, storage.ErrNotFound))
		return
	}
	op.Phase[idx] = *ph
	if err := s.operations.Replace(intOf(op.ID), op); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, "Phase updated", *ph)
}

func (s *Server) handleOperationDocumentList(w http.ResponseWriter, r *http.Request) {
	op, ok := s.operationFromPath(w, r)
	if !ok {
		return
	}
	writeData(w, http.StatusOK, "OK", listData(op.Document))
}

func (s *Server) handleOperationDocumentAppend(w http.ResponseWriter, r *http.Request) {
	op, ok := s.operationFromPath(w, r)
	if !ok {
		return
	}
	body, err := readBody(w, r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	doc, err := schema.Decode[schema.Document](s.reg, body)
	if err != nil {
		writeError(w, err)
		return
	}
	for i := range op.Document {
		if strOf(op.Document[i].ReferenceCode) == strOf(doc.ReferenceCode) {
			writeError(w, fmt.Errorf("document %q: %w", strOf(doc.ReferenceCode), storage.ErrAlreadyExists))
			return
		}
	}
	op.Document = append(op.Document, *doc)
	if err := s.operations.Replace(intOf(op.ID), op); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, "Document added", *doc)
}

func (s *Server) handleOperationDocumentGet(w http.ResponseWriter, r *http.Request) {
	op, ok := s.operationFromPath(w, r)
	if !ok {
		return
	}
	s.writeOperationDocument(w, r, op)
}

func (s *Server) handleOperationDocumentUpdate(w http.ResponseWriter, r *http.Request) {
	op, ok := s.operationFromPath(w, r)
	if !ok {
		return
	}
	ref := chi.URLParam(r, "referenceCode")
	body, err := readBody(w, r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	doc, err := schema.Decode[schema.Document](s.reg, body)
	if err != nil {
		writeError(w, err)
		return
	}
	idx := -1
	for i := range op.Document {
		if strOf(op.Document[i].ReferenceCode) == ref {
			idx = i
			break
		}
	}
	if idx < 0 {
		writeError(w, fmt.Errorf("document %q: %w", ref, storage.ErrNotFound))
		return
	}
	op.Document[idx] = *doc
	if err := s.operations.Replace(intOf(op.ID), op); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, "Document updated", *doc)
}

func (s *Server) handleOperationDocumentDelete(w http.ResponseWriter, r *http.Request) {
	op, ok := s.operationFromPath(w, r)
	if !ok {
		return
	}
	ref := chi.URLParam(r, "referenceCode")
	idx := -1
	for i := range op.Document {
		if strOf(op.Document[i].ReferenceCode) == ref {
			idx = i
			break
		}
	}
	if idx < 0 {
		writeError(w, fmt.Errorf("document %q: %w", ref, storage.ErrNotFound))
		return
	}
	op.Document = append(op.Document[:idx], op.Document[idx+1:]...)
	if err := s.operations.Replace(intOf(op.ID), op); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, "Document deleted", nil)
}

func (s *Server) handleOperationByPlate(w http.ResponseWriter, r *http.Request) {
	op, ok := s.operationFromPlate(w, r)
	if !ok {
		return
	}
	writeData(w, http.StatusOK, "OK", op)
}

func (s *Server) handleOperationScheduleByPlate(w http.ResponseWriter, r *http.Request) {
	op, ok := s.operationFromPlate(w, r)
	if !ok {
		return
	}
	writeData(w, http.StatusOK, "OK", op.Schedule)
}

func (s *Server) handleOperationPhaseByPlate(w http.ResponseWriter, r *http.Request) {
	op, ok := s.operationFromPlate(w, r)
	if !ok {
		return
	}
	writeData(w, http.StatusOK, "OK", listData(op.Phase))
}

func (s *Server) handleOperationPhaseByPlateAndID(w http.ResponseWriter, r *http.Request) {
	op, ok := s.operationFromPlate(w, r)
	if !ok {
		return
	}
	s.writeOperationPhase(w, r, op)
}

func (s *Server) handleOperationDocumentByPlate(w http.ResponseWriter, r *http.Request) {
	op, ok := s.operationFromPlate(w, r)
	if !ok {
		return
	}
	writeData(w, http.StatusOK, "OK", listData(op.Document))
}

func (s *Server) handleOperationDocumentByPlateAndRef(w http.ResponseWriter, r *http.Request) {
	op, ok := s.operationFromPlate(w, r)
	if !ok {
		return
	}
	s.writeOperationDocument(w, r, op)
}

func (s *Server) handleLocationList(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, "OK", listData(s.collectLocations("")))
}

func (s *Server) handleLocationByMode(w http.ResponseWriter, r *http.Request) {
	mode := strings.ToUpper(chi.URLParam(r, "mode"))
	writeData(w, http.StatusOK, "OK", listData(s.collectLocations(mode)))
}

// operationFromPath resolves the operation named by {transportOperationId},
// writing the error response itself on failure.
func (s *Server) operationFromPath(w http.ResponseWriter, r *http.Request) (schema.TransportOperation, bool) {
	id, err := intParam(r, "transportOperationId")
	if err != nil {
		writeBadRequest(w, err.Error())
		return schema.TransportOperation{}, false
	}
	op, err := s.operations.ByID(id)
	if err != nil {
		writeError(w, err)
		return schema.TransportOperation{}, false
	}
	return op, true
}

// operationFromPlate resolves the operation whose vehicle carries the
// {countryCode}/{plateNumber} key.
func (s *Server) operationFromPlate(w http.ResponseWriter, r *http.Request) (schema.TransportOperation, bool) {
	op, err := s.operations.ByPlate(chi.URLParam(r, "countryCode"), chi.URLParam(r, "plateNumber"))
	if err != nil {
		writeError(w, err)
		return schema.TransportOperation{}, false
	}
	return op, true
}

func (s *Server) writeOperationPhase(w http.ResponseWriter, r *http.Request, op schema.TransportOperation) {
	phaseID, err := intParam(r, "phaseId")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	for i := range op.Phase {
		if intOf(op.Phase[i].ID) == phaseID {
			writeData(w, http.StatusOK, "OK", op.Phase[i])
			return
		}
	}
	writeError(w, fmt.Errorf("phase %d: %w", phaseID, storage.ErrNotFound))
}

func (s *Server) writeOperationDocument(w http.ResponseWriter, r *http.Request, op schema.TransportOperation) {
	ref := chi.URLParam(r, "referenceCode")
	for i := range op.Document {
		if strOf(op.Document[i].ReferenceCode) == ref {
			writeData(w, http.StatusOK, "OK", op.Document[i])
			return
		}
	}
	writeError(w, fmt.Errorf("document %q: %w", ref, storage.ErrNotFound))
}

// collectLocations gathers the distinct phase locations across all stored
// operations, optionally filtered by mode token.
func (s *Server) collectLocations(mode string) []schema.Location {
	out := []schema.Location{}
	seen := map[int]bool{}
	for _, op := range s.operations.All(0, 0) {
		for i := range op.Phase {
			loc := op.Phase[i].Location
			if loc == nil || seen[intOf(loc.ID)] {
				continue
			}
			if mode != "" && (loc.Mode == nil || loc.Mode.Token() != mode) {
				continue
			}
			seen[intOf(loc.ID)] = true
			out = append(out, *loc)
		}
	}
	return out
}
