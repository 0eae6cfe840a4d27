package config

import "fmt"

// defaultEndpoints is the built-in REST surface of the demo server. A yaml
// endpoints table overrides individual paths; everything else stays as
// declared here.
var defaultEndpoints = Endpoints{
	"transportOperation": {
		"collection":            "/api/transportOperation",
		"byId":                  "/api/transportOperation/{transportOperationId}",
		"schedule":              "/api/transportOperation/{transportOperationId}/schedule",
		"phase":                 "/api/transportOperation/{transportOperationId}/phase",
		"phaseById":             "/api/transportOperation/{transportOperationId}/phase/{phaseId}",
		"document":              "/api/transportOperation/{transportOperationId}/document",
		"documentByReference":   "/api/transportOperation/{transportOperationId}/document/{referenceCode}",
		"byPlate":               "/api/transportOperation/vehicle/{countryCode}/{plateNumber}",
		"scheduleByPlate":       "/api/transportOperation/vehicle/{countryCode}/{plateNumber}/schedule",
		"phaseByPlate":          "/api/transportOperation/vehicle/{countryCode}/{plateNumber}/phase",
		"phaseByPlateAndId":     "/api/transportOperation/vehicle/{countryCode}/{plateNumber}/phase/{phaseId}",
		"documentByPlate":       "/api/transportOperation/vehicle/{countryCode}/{plateNumber}/document",
		"documentByPlateAndRef": "/api/transportOperation/vehicle/{countryCode}/{plateNumber}/document/{referenceCode}",
		"location":              "/api/location",
		"locationByMode":        "/api/location/{mode}",
	},
	"vehicle": {
		"collection":    "/api/vehicle",
		"byPlate":       "/api/vehicle/{countryCode}/{plateNumber}",
		"geolocation":   "/api/vehicle/{countryCode}/{plateNumber}/geolocation",
		"owner":         "/api/vehicle/{countryCode}/{plateNumber}/owner",
		"insurance":     "/api/vehicle/{countryCode}/{plateNumber}/insurance",
		"insuranceById": "/api/vehicle/{countryCode}/{plateNumber}/insurance/{insuranceId}",
		"revision":      "/api/vehicle/{countryCode}/{plateNumber}/revision",
		"revisionById":  "/api/vehicle/{countryCode}/{plateNumber}/revision/{revisionId}",
	},
	"driver": {
		"collection":           "/api/driver",
		"byVat":                "/api/driver/{countryCode}/{vat}",
		"license":              "/api/driver/{countryCode}/{vat}/license",
		"trafficViolation":     "/api/driver/{countryCode}/{vat}/trafficViolation",
		"trafficViolationById": "/api/driver/{countryCode}/{vat}/trafficViolation/{trafficViolationId}",
		"tachographCard":       "/api/driver/{countryCode}/{vat}/tachographCard",
		"tachographCardById":   "/api/driver/{countryCode}/{vat}/tachographCard/{tachographCardId}",
	},
	"organization": {
		"collection": "/api/organization",
		"byId":       "/api/organization/{organizationId}",
	},
	"ecmr": {
		"collection": "/api/ecmr",
		"byId":       "/api/ecmr/{ecmrId}",
	},
}

// Endpoint returns the path registered for a group/name pair.
func (e Endpoints) Endpoint(group, name string) (string, error) {
	g, ok := e[group]
	if !ok {
		return "", fmt.Errorf("endpoint group %q not found", group)
	}
	p, ok := g[name]
	if !ok {
		return "", fmt.Errorf("endpoint %q not found under group %q", name, group)
	}
	return p, nil
}

// mergeEndpoints lays user overrides over the defaults.
func mergeEndpoints(overrides Endpoints) Endpoints {
	out := Endpoints{}
	for group, names := range defaultEndpoints {
		out[group] = map[string]string{}
		for name, path := range names {
			out[group][name] = path
		}
	}
	for group, names := range overrides {
		if _, ok := out[group]; !ok {
			out[group] = map[string]string{}
		}
		for name, path := range names {
			out[group][name] = path
		}
	}
	return out
}
