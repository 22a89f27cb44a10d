package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	appErrors "github.com/aaravmahajanofficial/ecommerce-cart-service/internal/errors"
)

const maxBodyBytes = 1 << 20

// DecodeJSONBody decodes the request body into dest. Type mismatches are
// reported as field-level validation errors keyed by the JSON field name.
func DecodeJSONBody(r *http.Request, dest any) error {

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))

	if err != nil {
		slog.Error("Failed to read request body",
			slog.String("error", err.Error()),
			slog.String("endpoint", r.URL.Path),
		)
		return appErrors.BadRequestError("Failed to read request body").WithError(err)
	}

	defer r.Body.Close()

	if len(body) == 0 {
		slog.Warn("Empty request body", slog.String("endpoint", r.URL.Path))
		return appErrors.BadRequestError("Request body cannot be empty")
	}

	if err := json.Unmarshal(body, dest); err != nil {

		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			// json stops reporting after the first mismatch
			if fields := fieldTypeErrors(body, dest); len(fields) > 1 {
				return appErrors.ValidationErrors(fields).WithError(err)
			}
			return appErrors.AddValidationError(typeErr.Field, typeMessage(typeErr)).WithError(err)
		}

		slog.Warn("Failed to parse request JSON",
			slog.String("error", err.Error()),
			slog.String("endpoint", r.URL.Path),
		)
		return appErrors.BadRequestError("Invalid JSON format").WithError(err)
	}

	return nil
}

// fieldTypeErrors decodes each top-level field of dest on its own and
// reports every field whose JSON value has the wrong type, in declaration
// order.
func fieldTypeErrors(body []byte, dest any) []appErrors.FieldError {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil
	}

	t := reflect.TypeOf(dest)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return nil
	}

	fields := []appErrors.FieldError{}

	for i := range t.NumField() {
		field := t.Field(i)

		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}

		value, ok := raw[name]
		if !ok {
			continue
		}

		var typeErr *json.UnmarshalTypeError
		if err := json.Unmarshal(value, reflect.New(field.Type).Interface()); errors.As(err, &typeErr) {
			fields = append(fields, appErrors.FieldError{Field: name, Message: typeMessage(typeErr)})
		}
	}

	return fields
}

func typeMessage(typeErr *json.UnmarshalTypeError) string {
	return fmt.Sprintf("must be of type %s", jsonKind(typeErr.Type.Kind().String()))
}

func jsonKind(goKind string) string {
	switch goKind {
	case "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64", "float32", "float64":
		return "number"
	default:
		return goKind
	}
}
