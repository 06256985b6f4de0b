package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	hulloerrors "github.com/hullochat/hullo/pkg/errors"
)

// violationFromFieldError converts one validator failure into a Violation
// with a JSON-path field name and a readable message.
func violationFromFieldError(fe validator.FieldError) hulloerrors.Violation {
	return hulloerrors.Violation{
		FieldPath: fieldPath(fe),
		Rule:      fe.Tag(),
		Message:   messageForTag(fe),
	}
}

// fieldPath strips the root struct segment from the validator namespace, so
// "WidgetConfig.branding.logoUrl" becomes "branding.logoUrl".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s%s", fe.Param(), unitFor(fe))
	case "max":
		return fmt.Sprintf("must be at most %s%s", fe.Param(), unitFor(fe))
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.Join(strings.Fields(fe.Param()), ", "))
	case "hex6":
		return "must be a 6-digit hex color such as #4F46E5"
	case "secureurl":
		return "must use https (or point at localhost)"
	default:
		return fmt.Sprintf("failed rule %q", fe.Tag())
	}
}

func unitFor(fe validator.FieldError) string {
	switch fe.Kind() {
	case reflect.String:
		return " characters"
	case reflect.Slice, reflect.Array, reflect.Map:
		return " items"
	default:
		return ""
	}
}
