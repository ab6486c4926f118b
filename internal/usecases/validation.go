package usecases

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	domainerrors "corpsite.backend/internal/domain/errors"
)

// NonFieldErrors keys messages that belong to the request as a whole.
const NonFieldErrors = "non_field_errors"

var validateStruct = func(form any) error {
	return binding.Validator.ValidateStruct(form)
}

// partiallyBound reports whether the form holds decoded values despite err.
func partiallyBound(err error) bool {
	var (
		fieldErrs validator.ValidationErrors
		typeErr   *json.UnmarshalTypeError
	)
	return errors.As(err, &fieldErrs) || errors.As(err, &typeErr)
}

// translateBindError turns a binding failure into field-keyed messages. Keys use
// the form's JSON names; nested fields read like participants[1].email.
func translateBindError(err error, form any) *domainerrors.ValidationError {
	verr := domainerrors.NewValidationError()

	var (
		fieldErrs validator.ValidationErrors
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
		numErr    *strconv.NumError
	)
	switch {
	case errors.As(err, &fieldErrs):
		root := reflect.TypeOf(form)
		for _, fe := range fieldErrs {
			verr.Add(fieldPath(root, fe.StructNamespace()), fieldMessage(fe))
		}
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = NonFieldErrors
		}
		verr.Add(field, typeMessage(typeErr.Type))
		// the decoder fills the rest of the form after a type mismatch
		if serr := validateStruct(form); errors.As(serr, &fieldErrs) {
			root := reflect.TypeOf(form)
			for _, fe := range fieldErrs {
				key := fieldPath(root, fe.StructNamespace())
				if _, seen := verr.Fields[key]; !seen {
					verr.Add(key, fieldMessage(fe))
				}
			}
		}
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		verr.Add(NonFieldErrors, "Malformed JSON body.")
	case errors.As(err, &numErr):
		verr.Add(NonFieldErrors, "A valid number is required.")
	default:
		verr.Add(NonFieldErrors, "Invalid request body.")
	}
	return verr
}

func fieldPath(t reflect.Type, namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}

	out := make([]string, 0, len(parts))
	for _, part := range parts {
		name, index := part, ""
		if i := strings.IndexByte(part, '['); i >= 0 {
			name, index = part[:i], part[i:]
		}

		key := name
		t = indirect(t)
		if t != nil && t.Kind() == reflect.Struct {
			if sf, ok := t.FieldByName(name); ok {
				key = jsonName(sf)
				t = sf.Type
				if index != "" {
					t = elem(t)
				}
			} else {
				t = nil
			}
		}
		out = append(out, key+index)
	}
	return strings.Join(out, ".")
}

func jsonName(sf reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(sf.Tag.Get(tag), ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return sf.Name
}

func indirect(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

func elem(t reflect.Type) reflect.Type {
	t = indirect(t)
	if t == nil {
		return nil
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return t.Elem()
	}
	return nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "oneof":
		return fmt.Sprintf("%q is not a valid choice.", fmt.Sprint(fe.Value()))
	case "numeric":
		return "A valid number is required."
	case "min", "gte":
		switch fe.Kind() {
		case reflect.Slice, reflect.Array, reflect.Map:
			if fe.Param() == "1" {
				return "This list may not be empty."
			}
			return fmt.Sprintf("Ensure this field has at least %s elements.", fe.Param())
		case reflect.String:
			return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "max", "lte":
		switch fe.Kind() {
		case reflect.Slice, reflect.Array, reflect.Map:
			return fmt.Sprintf("Ensure this field has no more than %s elements.", fe.Param())
		case reflect.String:
			return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	}
	return "Invalid value."
}

func typeMessage(t reflect.Type) string {
	switch indirect(t).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "A valid integer is required."
	case reflect.Float32, reflect.Float64:
		return "A valid number is required."
	case reflect.String:
		return "Not a valid string."
	case reflect.Slice, reflect.Array:
		return "Expected a list of items."
	case reflect.Struct, reflect.Map:
		return "Expected an object."
	case reflect.Bool:
		return "Must be a valid boolean."
	}
	return "Invalid value."
}
