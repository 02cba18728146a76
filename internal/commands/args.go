package commands

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

var (
	// ErrMissingArgument is wrapped when a required argument is absent
	ErrMissingArgument = errors.New("missing required argument")
	// ErrTooManyArguments is wrapped when arguments are left over
	ErrTooManyArguments = errors.New("too many arguments")
)

// ArgField describes one positional argument (generated from struct tags)
type ArgField struct {
	Name     string // Field name from "form" tag
	Label    string // Display label from "title" tag
	Required bool   // Whether field is required (!optional)
	Rest     bool   // Whether field takes every remaining argument
	Default  string // Default value from "default" tag
}

// ArgFields reads struct tags and creates the ArgField slice.
// Struct tags format:
//
//	Field type `form:"name" title:"Display" validate:"min=1" default:"val" optional:"true" rest:"true"`
func ArgFields(argsStruct any) ([]ArgField, error) {
	if argsStruct == nil {
		return nil, nil
	}

	typ := reflect.TypeOf(argsStruct)
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("argsStruct must be a struct or pointer to struct")
	}

	fields := []ArgField{}
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)

		formTag := field.Tag.Get("form")
		if formTag == "" {
			continue
		}

		fields = append(fields, ArgField{
			Name:     formTag,
			Label:    fieldTitle(field),
			Required: field.Tag.Get("optional") != "true",
			Rest:     field.Tag.Get("rest") == "true",
			Default:  field.Tag.Get("default"),
		})
	}

	return fields, nil
}

// ParseInlineArgs populates struct from positional arg string
// Format: "value1 value2 value3" maps to struct fields in order
// Optional fields use defaults if not provided; a rest field takes the
// remaining args joined by single spaces. A nil argsStruct accepts no args.
func ParseInlineArgs(argsStruct any, argString string) error {
	argString = strings.TrimSpace(argString)
	var args []string
	if argString != "" {
		args = strings.Fields(argString)
	}

	if argsStruct == nil {
		if len(args) > 0 {
			return fmt.Errorf("%w: got %d, want 0", ErrTooManyArguments, len(args))
		}
		return nil
	}

	val := reflect.ValueOf(argsStruct)
	if val.Kind() != reflect.Pointer {
		return fmt.Errorf("argsStruct must be a pointer to struct")
	}
	val = val.Elem()

	if val.Kind() != reflect.Struct {
		return fmt.Errorf("argsStruct must be a pointer to struct")
	}

	typ := val.Type()
	argIdx := 0

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		fieldVal := val.Field(i)

		formTag := field.Tag.Get("form")
		if formTag == "" {
			continue
		}

		optional := field.Tag.Get("optional") == "true"
		defaultTag := field.Tag.Get("default")

		var argValue string
		if argIdx < len(args) {
			if field.Tag.Get("rest") == "true" {
				argValue = strings.Join(args[argIdx:], " ")
				argIdx = len(args)
			} else {
				argValue = args[argIdx]
				argIdx++
			}
		} else if optional && defaultTag != "" {
			argValue = defaultTag
		} else if optional {
			continue
		} else {
			return fmt.Errorf("%w: %s", ErrMissingArgument, fieldTitle(field))
		}

		if err := setFieldValue(fieldVal, argValue); err != nil {
			return fmt.Errorf("invalid value for %s: %w", fieldTitle(field), err)
		}

		if validation := field.Tag.Get("validate"); validation != "" {
			if err := validateField(fieldVal, validation); err != nil {
				return fmt.Errorf("validation failed for %s: %w", fieldTitle(field), err)
			}
		}
	}

	if argIdx < len(args) {
		return fmt.Errorf("%w: got %d, want at most %d", ErrTooManyArguments, len(args), argIdx)
	}
	return nil
}

// fieldTitle returns the "title" tag, falling back to the "form" tag
func fieldTitle(field reflect.StructField) string {
	if title := field.Tag.Get("title"); title != "" {
		return title
	}
	return field.Tag.Get("form")
}

// setFieldValue sets a reflect.Value from a string
func setFieldValue(fieldVal reflect.Value, value string) error {
	if !fieldVal.CanSet() {
		return fmt.Errorf("field cannot be set")
	}

	switch fieldVal.Kind() {
	case reflect.String:
		fieldVal.SetString(value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("must be an integer")
		}
		fieldVal.SetInt(intVal)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		uintVal, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("must be a positive integer")
		}
		fieldVal.SetUint(uintVal)
	case reflect.Bool:
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("must be true or false")
		}
		fieldVal.SetBool(boolVal)
	default:
		return fmt.Errorf("unsupported field type: %s", fieldVal.Kind())
	}

	return nil
}

// validateField checks min= and max= rules on integer fields
func validateField(fieldVal reflect.Value, validation string) error {
	for _, rule := range strings.Split(validation, ",") {
		rule = strings.TrimSpace(rule)

		bound, isMin := strings.CutPrefix(rule, "min=")
		if !isMin {
			var isMax bool
			if bound, isMax = strings.CutPrefix(rule, "max="); !isMax {
				continue
			}
		}
		limit, err := strconv.ParseInt(bound, 10, 64)
		if err != nil {
			continue
		}

		switch fieldVal.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if isMin && fieldVal.Int() < limit {
				return fmt.Errorf("must be >= %d", limit)
			}
			if !isMin && fieldVal.Int() > limit {
				return fmt.Errorf("must be <= %d", limit)
			}
		}
	}

	return nil
}
