package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type FieldErrors map[string]string

// FromBindError turns a gin bind error into field -> message. dst is the
// struct pointer that was bound; its json/form tags name the fields.
func FromBindError(err error, dst any) FieldErrors {
	out := FieldErrors{}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			key := fieldKey(dst, fe.StructField())
			out[key] = messageForTag(fe.Tag(), fe.Param())
		}
		return out
	}

	// malformed JSON, type mismatch
	out["_"] = "Request body is invalid."
	return out
}

func fieldKey(dst any, structField string) string {
	t := reflect.TypeOf(dst)
	if t == nil {
		return lowerFirst(structField)
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return lowerFirst(structField)
	}

	f, ok := t.FieldByName(structField)
	if !ok {
		return lowerFirst(structField)
	}
	for _, name := range []string{"json", "form"} {
		tag := f.Tag.Get(name)
		if i := strings.Index(tag, ","); i >= 0 {
			tag = tag[:i]
		}
		if tag != "" && tag != "-" {
			return tag
		}
	}
	return lowerFirst(structField)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func messageForTag(tag, param string) string {
	switch tag {
	case "required":
		return "This field is required."
	case "min":
		return "Must be at least " + param + "."
	case "max":
		return "Must be at most " + param + "."
	case "gte":
		return "Must be greater than or equal to " + param + "."
	case "gt":
		return "Must be greater than " + param + "."
	case "oneof":
		return "Must be one of: " + param + "."
	case "url":
		return "Must be a valid URL."
	default:
		return "Invalid value."
	}
}
