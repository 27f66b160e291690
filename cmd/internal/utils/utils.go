package utils

import (
	"errors"
	"reflect"
	"strings"
	"time"
)

const (
	// ClinicTimeLayout is the stored appointment time form, without zone.
	ClinicTimeLayout = "2006-01-02 15:04"
	// DateLayout is used by record visit dates.
	DateLayout = "2006-01-02"

	formTimeLayout  = "2006-01-02T15:04"
	isoMillisLayout = "2006-01-02T15:04:05.000Z07:00"
)

var ErrInvalidTime = errors.New("invalid clinic time")

// FormatEpoch renders epoch millis as an ISO-8601 UTC timestamp with
// millisecond precision (e.g. 2025-11-01T10:00:00.000Z).
func FormatEpoch(millis int64) string {
	return time.UnixMilli(millis).
		UTC().
		Format(isoMillisLayout)
}

// ParseClinicTime reads a naive "YYYY-MM-DD HH:mm" timestamp in loc. The
// browser form variant "YYYY-MM-DDTHH:mm" is accepted as well.
func ParseClinicTime(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	s = strings.TrimSpace(s)
	for _, layout := range []string{ClinicTimeLayout, formTimeLayout} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidTime
}

func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
}

// Sanitize trims every string field of the struct o points to. Fields tagged
// `sanitize:"-"` are left untouched.
func Sanitize(o any) {
	v := reflect.ValueOf(o)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		panic("sanitize: expected pointer to struct")
	}

	v = v.Elem()
	if v.Kind() != reflect.Struct {
		panic("sanitize: expected struct")
	}

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if !field.CanSet() || v.Type().Field(i).Tag.Get("sanitize") == "-" {
			continue
		}
		switch field.Kind() {
		case reflect.String:
			field.SetString(sanitizeString(field.String()))

		case reflect.Slice:
			if field.Type().Elem().Kind() == reflect.String {
				for j := 0; j < field.Len(); j++ {
					field.Index(j).SetString(sanitizeString(field.Index(j).String()))
				}
			}
		}
	}
}

func sanitizeString(s string) string {
	return strings.TrimSpace(s)
}
