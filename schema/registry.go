package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aethongr/keystone-api-standard/ecmr"
	"github.com/aethongr/keystone-api-standard/wire"
)

// Pattern constraints used across the model, anchored at both ends so a
// partial match always fails.
var patterns = map[string]*regexp.Regexp{
	"countrycode": regexp.MustCompile(`^[A-Z]{2,4}$`),
	"dateonly":    regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),
	"datetimeutc": regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z$`),
	"upperid":     regexp.MustCompile(`^[A-Z0-9]{1,16}$`),
	"isocountry":  regexp.MustCompile(`^[A-Z]{2}$`),
	"phone":       regexp.MustCompile(`^(\+|\d)[0-9\s\-().]{0,31}$`),
}

// Registry holds the configured validation engine for the whole record
// model. It is built once at start-up, is immutable afterwards, and is safe
// for concurrent use.
type Registry struct {
	v *validator.Validate
}

// NewRegistry builds the registry: json-tag field naming, the anchored
// pattern validations, and the notnil presence check for required lists
// that may be empty.
func NewRegistry() *Registry {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	for tag, re := range patterns {
		re := re
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return re.MatchString(fl.Field().String())
		})
	}
	// Required lists may be empty but must be present: nil means the key
	// was missing from the input.
	_ = v.RegisterValidation("notnil", func(fl validator.FieldLevel) bool {
		f := fl.Field()
		return f.Kind() != reflect.Slice || !f.IsNil()
	})
	return &Registry{v: v}
}

// Validate checks a record against its declared constraints. All failures
// found in the pass are returned together as ValidationErrors.
func (r *Registry) Validate(rec any) error {
	err := r.v.Struct(rec)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := make(ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Path:  trimNamespace(fe.Namespace()),
			Kind:  kindOf(fe),
			Value: errValue(fe),
		})
	}
	return out
}

// Decode parses untrusted JSON into a record of type T and validates it.
// Undeclared fields are rejected; shape errors surface as TypeMismatch.
func Decode[T any](r *Registry, data []byte) (*T, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var rec T
	if err := dec.Decode(&rec); err != nil {
		return nil, decodeError(err)
	}
	if err := r.Validate(&rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// DecodeEntity decodes a record by entity name. The name set is closed; it
// covers the top-level entities and the sub-resources the API accepts as
// request bodies.
func (r *Registry) DecodeEntity(entity string, data []byte) (wire.Record, error) {
	switch entity {
	case "transportOperation":
		return Decode[TransportOperation](r, data)
	case "vehicle":
		return Decode[Vehicle](r, data)
	case "driver":
		return Decode[Driver](r, data)
	case "organization":
		return Decode[Organization](r, data)
	case "schedule":
		return Decode[Schedule](r, data)
	case "phase":
		return Decode[Phase](r, data)
	case "document":
		return Decode[Document](r, data)
	case "geolocation":
		return Decode[Geolocation](r, data)
	case "location":
		return Decode[Location](r, data)
	case "ecmr":
		return Decode[ecmr.EcmrModel](r, data)
	default:
		return nil, fmt.Errorf("unknown entity type %q", entity)
	}
}

// trimNamespace drops the root struct name from a validator namespace,
// leaving the dotted json-name path (vehicle.owner.vat).
func trimNamespace(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// kindOf maps a failed validator tag to the error taxonomy.
func kindOf(fe validator.FieldError) ErrorKind {
	switch fe.Tag() {
	case "required", "notnil":
		return MissingRequiredField
	case "oneof":
		return EnumViolation
	case "min", "max":
		switch fe.Kind() {
		case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
			return LengthViolation
		default:
			return RangeViolation
		}
	case "gt", "gte", "lt", "lte":
		return RangeViolation
	default:
		if _, ok := patterns[fe.Tag()]; ok {
			return PatternViolation
		}
		return TypeMismatch
	}
}

// errValue reports the offending value, or nil when the field was absent.
func errValue(fe validator.FieldError) any {
	if fe.Tag() == "required" || fe.Tag() == "notnil" {
		return nil
	}
	return fe.Value()
}

var unknownFieldRe = regexp.MustCompile(`unknown field "(.+)"`)

// decodeError translates encoding/json failures into the taxonomy.
func decodeError(err error) error {
	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) {
		return ValidationErrors{{Path: ute.Field, Kind: TypeMismatch, Value: ute.Value}}
	}
	if m := unknownFieldRe.FindStringSubmatch(err.Error()); m != nil {
		return ValidationErrors{{Path: m[1], Kind: UnknownField}}
	}
	return ValidationErrors{{Kind: TypeMismatch, Value: err.Error()}}
}
