package keystone

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// routes wires the configurable endpoint table to the handlers. Paths come
// from config; the defaults mirror the published API standard.
func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(requestLogger(s.log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.Server.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	ep := func(group, name string) string {
		p, err := s.cfg.Endpoints.Endpoint(group, name)
		if err != nil {
			// The defaults table covers every name wired here, so a miss
			// is a programming error.
			panic(err)
		}
		return p
	}

	r.Get("/api/health", s.handleHealth)

	// Transport operation
	r.Post(ep("transportOperation", "collection"), s.handleOperationAdd)
	r.Get(ep("transportOperation", "collection"), s.handleOperationList)
	r.Get(ep("transportOperation", "byId"), s.handleOperationGet)
	r.Put(ep("transportOperation", "byId"), s.handleOperationUpdate)
	r.Delete(ep("transportOperation", "byId"), s.handleOperationDelete)
	r.Get(ep("transportOperation", "schedule"), s.handleOperationScheduleGet)
	r.Put(ep("transportOperation", "schedule"), s.handleOperationScheduleUpdate)
	r.Get(ep("transportOperation", "phase"), s.handleOperationPhaseList)
	r.Post(ep("transportOperation", "phase"), s.handleOperationPhaseAppend)
	r.Get(ep("transportOperation", "phaseById"), s.handleOperationPhaseGet)
	r.Put(ep("transportOperation", "phaseById"), s.handleOperationPhaseUpdate)
	r.Get(ep("transportOperation", "document"), s.handleOperationDocumentList)
	r.Post(ep("transportOperation", "document"), s.handleOperationDocumentAppend)
	r.Get(ep("transportOperation", "documentByReference"), s.handleOperationDocumentGet)
	r.Put(ep("transportOperation", "documentByReference"), s.handleOperationDocumentUpdate)
	r.Delete(ep("transportOperation", "documentByReference"), s.handleOperationDocumentDelete)
	r.Get(ep("transportOperation", "byPlate"), s.handleOperationByPlate)
	r.Get(ep("transportOperation", "scheduleByPlate"), s.handleOperationScheduleByPlate)
	r.Get(ep("transportOperation", "phaseByPlate"), s.handleOperationPhaseByPlate)
	r.Get(ep("transportOperation", "phaseByPlateAndId"), s.handleOperationPhaseByPlateAndID)
	r.Get(ep("transportOperation", "documentByPlate"), s.handleOperationDocumentByPlate)
	r.Get(ep("transportOperation", "documentByPlateAndRef"), s.handleOperationDocumentByPlateAndRef)
	r.Get(ep("transportOperation", "location"), s.handleLocationList)
	r.Get(ep("transportOperation", "locationByMode"), s.handleLocationByMode)

	// Vehicle
	r.Post(ep("vehicle", "collection"), s.handleVehicleAdd)
	r.Get(ep("vehicle", "collection"), s.handleVehicleList)
	r.Get(ep("vehicle", "byPlate"), s.handleVehicleGet)
	r.Put(ep("vehicle", "byPlate"), s.handleVehicleUpdate)
	r.Delete(ep("vehicle", "byPlate"), s.handleVehicleDelete)
	r.Get(ep("vehicle", "geolocation"), s.handleVehicleGeolocationList)
	r.Post(ep("vehicle", "geolocation"), s.handleVehicleGeolocationAppend)
	r.Get(ep("vehicle", "owner"), s.handleVehicleOwner)
	r.Get(ep("vehicle", "insurance"), s.handleVehicleInsuranceList)
	r.Get(ep("vehicle", "insuranceById"), s.handleVehicleInsuranceGet)
	r.Get(ep("vehicle", "revision"), s.handleVehicleRevisionList)
	r.Get(ep("vehicle", "revisionById"), s.handleVehicleRevisionGet)

	// Driver
	r.Post(ep("driver", "collection"), s.handleDriverAdd)
	r.Get(ep("driver", "collection"), s.handleDriverList)
	r.Get(ep("driver", "byVat"), s.handleDriverGet)
	r.Put(ep("driver", "byVat"), s.handleDriverUpdate)
	r.Delete(ep("driver", "byVat"), s.handleDriverDelete)
	r.Get(ep("driver", "license"), s.handleDriverLicense)
	r.Get(ep("driver", "trafficViolation"), s.handleDriverViolationList)
	r.Get(ep("driver", "trafficViolationById"), s.handleDriverViolationGet)
	r.Get(ep("driver", "tachographCard"), s.handleDriverTachographList)
	r.Get(ep("driver", "tachographCardById"), s.handleDriverTachographGet)

	// Organization
	r.Post(ep("organization", "collection"), s.handleOrganizationAdd)
	r.Get(ep("organization", "collection"), s.handleOrganizationList)
	r.Get(ep("organization", "byId"), s.handleOrganizationGet)
	r.Put(ep("organization", "byId"), s.handleOrganizationUpdate)
	r.Delete(ep("organization", "byId"), s.handleOrganizationDelete)

	// eCMR
	r.Post(ep("ecmr", "collection"), s.handleEcmrAdd)
	r.Get(ep("ecmr", "byId"), s.handleEcmrGet)
	r.Put(ep("ecmr", "byId"), s.handleEcmrUpdate)
	r.Delete(ep("ecmr", "byId"), s.handleEcmrDelete)

	return r
}
