package keystone

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aethongr/keystone-api-standard/schema"
	"github.com/aethongr/keystone-api-standard/storage"
)

func (s *Server) handleDriverAdd(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	d, err := schema.Decode[schema.Driver](s.reg, body)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.drivers.Add(*d); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, "Driver added", *d)
}

func (s *Server) handleDriverList(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, "OK", listData(s.drivers.All()))
}

func (s *Server) handleDriverGet(w http.ResponseWriter, r *http.Request) {
	d, ok := s.driverFromPath(w, r)
	if !ok {
		return
	}
	writeData(w, http.StatusOK, "OK", d)
}

func (s *Server) handleDriverUpdate(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	d, err := schema.Decode[schema.Driver](s.reg, body)
	if err != nil {
		writeError(w, err)
		return
	}
	cc, vat := chi.URLParam(r, "countryCode"), chi.URLParam(r, "vat")
	if err := s.drivers.Replace(cc, vat, *d); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, "Driver updated", *d)
}

func (s *Server) handleDriverDelete(w http.ResponseWriter, r *http.Request) {
	cc, vat := chi.URLParam(r, "countryCode"), chi.URLParam(r, "vat")
	if err := s.drivers.Delete(cc, vat); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, "Driver deleted", nil)
}

func (s *Server) handleDriverLicense(w http.ResponseWriter, r *http.Request) {
	d, ok := s.driverFromPath(w, r)
	if !ok {
		return
	}
	writeData(w, http.StatusOK, "OK", d.License)
}

func (s *Server) handleDriverViolationList(w http.ResponseWriter, r *http.Request) {
	d, ok := s.driverFromPath(w, r)
	if !ok {
		return
	}
	writeData(w, http.StatusOK, "OK", listData(d.TrafficViolation))
}

func (s *Server) handleDriverViolationGet(w http.ResponseWriter, r *http.Request) {
	d, ok := s.driverFromPath(w, r)
	if !ok {
		return
	}
	id, err := intParam(r, "trafficViolationId")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	for i := range d.TrafficViolation {
		if intOf(d.TrafficViolation[i].ID) == id {
			writeData(w, http.StatusOK, "OK", d.TrafficViolation[i])
			return
		}
	}
	writeError(w, fmt.Errorf("traffic violation %d: %w", id, storage.ErrNotFound))
}

func (s *Server) handleDriverTachographList(w http.ResponseWriter, r *http.Request) {
	d, ok := s.driverFromPath(w, r)
	if !ok {
		return
	}
	writeData(w, http.StatusOK, "OK", listData(d.TachographCard))
}

func (s *Server) handleDriverTachographGet(w http.ResponseWriter, r *http.Request) {
	d, ok := s.driverFromPath(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "tachographCardId")
	for i := range d.TachographCard {
		if strOf(d.TachographCard[i].ID) == id {
			writeData(w, http.StatusOK, "OK", d.TachographCard[i])
			return
		}
	}
	writeError(w, fmt.Errorf("tachograph card %q: %w", id, storage.ErrNotFound))
}

// driverFromPath resolves the driver named by {countryCode}/{vat}, writing
// the error response itself on failure.
func (s *Server) driverFromPath(w http.ResponseWriter, r *http.Request) (schema.Driver, bool) {
	d, err := s.drivers.ByVat(chi.URLParam(r, "countryCode"), chi.URLParam(r, "vat"))
	if err != nil {
		writeError(w, err)
		return schema.Driver{}, false
	}
	return d, true
}
