package keystone

import (
	"net/http"

	"github.com/aethongr/keystone-api-standard/schema"
)

func (s *Server) handleOrganizationAdd(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	o, err := schema.Decode[schema.Organization](s.reg, body)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.organizations.Add(*o); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, "Organization added", *o)
}

func (s *Server) handleOrganizationList(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, "OK", listData(s.organizations.All()))
}

func (s *Server) handleOrganizationGet(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "organizationId")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	o, err := s.organizations.ByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, "OK", o)
}

func (s *Server) handleOrganizationUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "organizationId")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	body, err := readBody(w, r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	o, err := schema.Decode[schema.Organization](s.reg, body)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.organizations.Replace(id, *o); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, "Organization updated", *o)
}

func (s *Server) handleOrganizationDelete(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "organizationId")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if err := s.organizations.Delete(id); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, "Organization deleted", nil)
}
