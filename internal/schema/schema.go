// Package schema is the runtime gate for every domain payload. The domain
// structs carry the shape (json + validate tags); this package owns the
// validator instance, the custom tags, and the cross-field rules. A payload
// either decodes into a fully valid value or the caller gets an error and
// must not use the value.
package schema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/hubzz/preview-api/internal/domain/event"
	"github.com/hubzz/preview-api/internal/domain/ticket"
)

// Registry validates domain values against their declared shape.
type Registry struct {
	validate *validator.Validate
}

// New builds the registry with all custom tags and struct rules registered.
func New() *Registry {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report field names as they appear on the wire.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("iso8601", validISO8601)
	v.RegisterStructValidation(eventTimeOrder, event.Event{})
	v.RegisterStructValidation(ticketTimeOrder, ticket.Ticket{})

	return &Registry{validate: v}
}

// Validate checks a single entity or a slice of entities. Slices validate
// element-wise and fail on the first invalid element.
func (r *Registry) Validate(v any) error {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return fmt.Errorf("schema: nil value")
		}
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.Slice {
		for i := 0; i < rv.Len(); i++ {
			if err := r.validate.Struct(rv.Index(i).Interface()); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
		}
		return nil
	}
	return r.validate.Struct(rv.Interface())
}

// Decode unmarshals JSON into out and validates the result. out must be a
// pointer to a domain struct or a slice of them.
func (r *Registry) Decode(data []byte, out any) error {
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return r.Validate(out)
}

// All timestamps cross the boundary as ISO-8601 strings. RFC 3339 is the
// profile the platform emits.
func validISO8601(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}

func eventTimeOrder(sl validator.StructLevel) {
	ev := sl.Current().Interface().(event.Event)
	reportTimeOrder(sl, ev.StartTime, ev.EndTime)
}

func ticketTimeOrder(sl validator.StructLevel) {
	t := sl.Current().Interface().(ticket.Ticket)
	reportTimeOrder(sl, t.StartTime, t.EndTime)
}

// reportTimeOrder flags endTime when it does not come strictly after
// startTime. Unparseable values are left to the iso8601 field rule.
func reportTimeOrder(sl validator.StructLevel, start, end string) {
	st, err1 := time.Parse(time.RFC3339, start)
	en, err2 := time.Parse(time.RFC3339, end)
	if err1 != nil || err2 != nil {
		return
	}
	if !st.Before(en) {
		sl.ReportError(end, "endTime", "EndTime", "timeorder", "")
	}
}
