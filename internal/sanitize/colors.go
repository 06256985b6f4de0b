package sanitize

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/hullochat/hullo/internal/config"
)

var shortHexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{3}$`)

// fixColors walks the whole document and repairs every string value that
// begins with "#": 3-digit hex expands to 6 digits, valid 6-digit hex stays
// untouched, anything else becomes the default color. The walk is recursive
// and covers the legacy theme blob too.
func fixColors(cfg *config.WidgetConfig) {
	walkStrings(reflect.ValueOf(cfg), fixHexString)
}

// fixColorFields repairs the typed color fields the walk cannot identify by
// prefix: empty strings become absent, and a non-hex value (for example a
// CSS color name) becomes the default color.
func fixColorFields(cfg *config.WidgetConfig) {
	fields := []**string{
		&cfg.AccentColor,
		&cfg.SurfaceBackgroundColor,
		&cfg.SurfaceForegroundColor,
		&cfg.UserMessageBgColor,
		&cfg.UserMessageTextColor,
		&cfg.IconColor,
	}
	if cfg.Style != nil {
		fields = append(fields, &cfg.Style.PrimaryColor)
	}

	for _, field := range fields {
		s := *field
		if s == nil {
			continue
		}
		switch {
		case *s == "":
			*field = nil
		case !strings.HasPrefix(*s, "#"):
			*field = ptr(config.DefaultColor)
		}
	}
}

// fixHexString repairs one #-prefixed string.
func fixHexString(s string) string {
	if !strings.HasPrefix(s, "#") {
		return s
	}
	if config.IsHexColor(s) {
		return s
	}
	if shortHexPattern.MatchString(s) {
		return expandShortHex(s)
	}
	return config.DefaultColor
}

// expandShortHex duplicates each digit of a "#abc" color, yielding "#aabbcc".
func expandShortHex(s string) string {
	var sb strings.Builder
	sb.Grow(7)
	sb.WriteByte('#')
	for i := 1; i < len(s); i++ {
		sb.WriteByte(s[i])
		sb.WriteByte(s[i])
	}
	return sb.String()
}

// walkStrings applies fix to every string reachable from v: struct fields,
// pointers, slices and the untyped containers of the legacy theme blob.
// Strings wrapped in interface values are replaced through their enclosing
// map or slice, which is the only place they are settable.
func walkStrings(v reflect.Value, fix func(string) string) {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return
		}
		elem := v.Elem()
		if elem.Kind() == reflect.String {
			elem.SetString(fix(elem.String()))
			return
		}
		walkStrings(elem, fix)

	case reflect.Interface:
		if v.IsNil() {
			return
		}
		walkStrings(v.Elem(), fix)

	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			walkStrings(v.Field(i), fix)
		}

	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			elem := v.Index(i)
			if s, ok := unwrapString(elem); ok {
				if elem.CanSet() {
					elem.Set(reflect.ValueOf(fix(s)))
				}
				continue
			}
			walkStrings(elem, fix)
		}

	case reflect.Map:
		for _, key := range v.MapKeys() {
			value := v.MapIndex(key)
			if s, ok := unwrapString(value); ok {
				v.SetMapIndex(key, reflect.ValueOf(fix(s)))
				continue
			}
			walkStrings(value, fix)
		}

	case reflect.String:
		if v.CanSet() {
			v.SetString(fix(v.String()))
		}
	}
}

func unwrapString(v reflect.Value) (string, bool) {
	if v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	if v.Kind() == reflect.String {
		return v.String(), true
	}
	return "", false
}
