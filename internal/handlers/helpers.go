package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// maxFieldErrors caps the field map of a rejected request
const maxFieldErrors = 20

// maxBodyBytes bounds request bodies; a full point cloud is a few megabytes
const maxBodyBytes = 8 << 20

var (
	ErrEmptyBody = errors.New("request body is empty")
)

// FieldErrors maps a JSON field name to a human readable problem
type FieldErrors map[string]string

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeJSON reads a JSON body into dst and validates it.
// Validation failures are returned as validator.ValidationErrors.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("decode request body: %w", err)
	}

	return validate.Struct(dst)
}

// fieldErrors converts validation errors to a field->message map, or nil
// when err is not a validation failure
func fieldErrors(err error) FieldErrors {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}

	out := FieldErrors{}
	for _, fe := range ve {
		if len(out) == maxFieldErrors {
			break
		}
		out[fieldPath(fe)] = messageForTag(fe.Tag(), fe.Param())
	}
	return out
}

// fieldPath strips the root struct name from the namespace
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}

func messageForTag(tag, param string) string {
	switch tag {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + param
	case "max":
		return "must be at most " + param
	case "gte":
		return "must be at least " + param
	case "lte":
		return "must be at most " + param
	case "alphanum":
		return "must contain only letters and digits"
	default:
		return "is invalid"
	}
}
