package service

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
)

// CheckJSONTypes compares a syntactically valid body with the request type dst points to
// and reports every value whose JSON type cannot be decoded into its field.
// Nil is returned when no field can be blamed.
func CheckJSONTypes(body []byte, dst any) *errorvalues.ValidationError {
	var raw any
	if err := sonic.Unmarshal(body, &raw); err != nil {
		return nil
	}
	t := reflect.TypeOf(dst)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	if _, ok := raw.(map[string]any); !ok {
		return nil
	}
	var fieldErrors []errorvalues.FieldError
	collectTypeErrors(t, raw, "", "", &fieldErrors)
	if len(fieldErrors) == 0 {
		return nil
	}
	return errorvalues.NewValidationError(errorvalues.MsgValidationFailed, fieldErrors...)
}

func collectTypeErrors(t reflect.Type, value any, path, name string, out *[]errorvalues.FieldError) {
	// null leaves the field at its zero value
	if value == nil {
		return
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	report := func(expected string) {
		*out = append(*out, errorvalues.FieldError{Field: path, Message: typeMessage(name, expected)})
	}
	switch t.Kind() {
	case reflect.String:
		if _, ok := value.(string); !ok {
			report("a string")
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, ok := value.(float64)
		switch {
		case !ok:
			report("a number")
		case n != math.Trunc(n):
			report("an integer")
		}
	case reflect.Float32, reflect.Float64:
		if _, ok := value.(float64); !ok {
			report("a number")
		}
	case reflect.Bool:
		if _, ok := value.(bool); !ok {
			report("a boolean")
		}
	case reflect.Slice:
		items, ok := value.([]any)
		if !ok {
			report("an array")
			return
		}
		for i, item := range items {
			collectTypeErrors(t.Elem(), item, joinPath(path, strconv.Itoa(i)), name, out)
		}
	case reflect.Struct:
		fields, ok := value.(map[string]any)
		if !ok {
			report("an object")
			return
		}
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			key := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if key == "" || key == "-" {
				continue
			}
			if v, present := fields[key]; present {
				collectTypeErrors(f.Type, v, joinPath(path, key), key, out)
			}
		}
	}
}

func typeMessage(field, expected string) string {
	if msg, ok := formatMessages[field]; ok {
		return msg
	}
	if field == "exercises" && expected == "an object" {
		return "Each exercise must be an object"
	}
	label, ok := fieldLabels[field]
	if !ok {
		label = field
	}
	return label + " must be " + expected
}

func joinPath(path, segment string) string {
	if path == "" {
		return segment
	}
	return path + "." + segment
}
