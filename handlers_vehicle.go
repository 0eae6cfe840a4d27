package keystone

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aethongr/keystone-api-standard/schema"
	"github.com/aethongr/keystone-api-standard/storage"
)

func (s *Server) handleVehicleAdd(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	v, err := schema.Decode[schema.Vehicle](s.reg, body)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.vehicles.Add(*v); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, "Vehicle added", *v)
}

func (s *Server) handleVehicleList(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, "OK", listData(s.vehicles.All()))
}

func (s *Server) handleVehicleGet(w http.ResponseWriter, r *http.Request) {
	v, ok := s.vehicleFromPath(w, r)
	if !ok {
		return
	}
	writeData(w, http.StatusOK, "OK", v)
}

func (s *Server) handleVehicleUpdate(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	v, err := schema.Decode[schema.Vehicle](s.reg, body)
	if err != nil {
		writeError(w, err)
		return
	}
	cc, plate := chi.URLParam(r, "countryCode"), chi.URLParam(r, "plateNumber")
	if err := s.vehicles.Replace(cc, plate, *v); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, "Vehicle updated", *v)
}

func (s *Server) handleVehicleDelete(w http.ResponseWriter, r *http.Request) {
	cc, plate := chi.URLParam(r, "countryCode"), chi.URLParam(r, "plateNumber")
	if err := s.vehicles.Delete(cc, plate); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, "Vehicle deleted", nil)
}

func (s *Server) handleVehicleGeolocationList(w http.ResponseWriter, r *http.Request) {
	v, ok := s.vehicleFromPath(w, r)
	if !ok {
		return
	}
	writeData(w, http.StatusOK, "OK", listData(v.Geolocation))
}

func (s *Server) handleVehicleGeolocationAppend(w http.ResponseWriter, r *http.Request) {
	v, ok := s.vehicleFromPath(w, r)
	if !ok {
		return
	}
	body, err := readBody(w, r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	g, err := schema.Decode[schema.Geolocation](s.reg, body)
	if err != nil {
		writeError(w, err)
		return
	}
	v.Geolocation = append(v.Geolocation, *g)
	if err := s.vehicles.Replace(strOf(v.CountryCode), strOf(v.PlateNumber), v); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, "Geolocation added", *g)
}

func (s *Server) handleVehicleOwner(w http.ResponseWriter, r *http.Request) {
	v, ok := s.vehicleFromPath(w, r)
	if !ok {
		return
	}
	writeData(w, http.StatusOK, "OK", v.Owner)
}

func (s *Server) handleVehicleInsuranceList(w http.ResponseWriter, r *http.Request) {
	v, ok := s.vehicleFromPath(w, r)
	if !ok {
		return
	}
	writeData(w, http.StatusOK, "OK", listData(v.Insurance))
}

func (s *Server) handleVehicleInsuranceGet(w http.ResponseWriter, r *http.Request) {
	v, ok := s.vehicleFromPath(w, r)
	if !ok {
		return
	}
	id, err := intParam(r, "insuranceId")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	for i := range v.Insurance {
		if intOf(v.Insurance[i].ID) == id {
			writeData(w, http.StatusOK, "OK", v.Insurance[i])
			return
		}
	}
	writeError(w, fmt.Errorf("insurance %d: %w", id, storage.ErrNotFound))
}

func (s *Server) handleVehicleRevisionList(w http.ResponseWriter, r *http.Request) {
	v, ok := s.vehicleFromPath(w, r)
	if !ok {
		return
	}
	writeData(w, http.StatusOK, "OK", listData(v.Revision))
}

func (s *Server) handleVehicleRevisionGet(w http.ResponseWriter, r *http.Request) {
	v, ok := s.vehicleFromPath(w, r)
	if !ok {
		return
	}
	id, err := intParam(r, "revisionId")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	for i := range v.Revision {
		if intOf(v.Revision[i].ID) == id {
			writeData(w, http.StatusOK, "OK", v.Revision[i])
			return
		}
	}
	writeError(w, fmt.Errorf("revision %d: %w", id, storage.ErrNotFound))
}

// vehicleFromPath resolves the vehicle named by {countryCode}/{plateNumber},
// writing the error response itself on failure.
func (s *Server) vehicleFromPath(w http.ResponseWriter, r *http.Request) (schema.Vehicle, bool) {
	v, err := s.vehicles.ByPlate(chi.URLParam(r, "countryCode"), chi.URLParam(r, "plateNumber"))
	if err != nil {
		writeError(w, err)
		return schema.Vehicle{}, false
	}
	return v, true
}
