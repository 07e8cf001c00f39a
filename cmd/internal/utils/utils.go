package utils

import (
	"reflect"
	"strings"
	"time"
)

const (
	dateLayout       = "2006-01-02"
	clockLayout      = "15:04:05"
	shortClockLayout = "15:04"

	millisInDay = 24 * 60 * 60 * 1000
)

func FormatEpoch(millis int64) string {
	return time.UnixMilli(millis).
		UTC().
		Format(time.RFC3339)
}

func NowUTC() int64 {
	return time.Now().
		UTC().
		UnixMilli()
}

// ParseCalendarDate takes "YYYY-MM-DD" and returns the UTC midnight of
// that day as epoch millis.
func ParseCalendarDate(s string) (int64, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return 0, err
	}
	return t.UTC().UnixMilli(), nil
}

func FormatCalendarDate(millis int64) string {
	return time.UnixMilli(millis).
		UTC().
		Format(dateLayout)
}

// ParseClockTime takes "HH:MM:SS" (or "HH:MM") and returns millis since
// midnight. The parse anchors the string to Go's zero reference date;
// only the time-of-day component survives.
func ParseClockTime(s string) (int64, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		t, err = time.Parse(shortClockLayout, s)
		if err != nil {
			return 0, err
		}
	}

	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return t.Sub(midnight).Milliseconds() % millisInDay, nil
}

func FormatClockTime(millis int64) string {
	return time.UnixMilli(millis).
		UTC().
		Format(clockLayout)
}

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
		switch field.Kind() {
		case reflect.String:
			field.SetString(sanitizeString(field.String()))

		case reflect.Ptr:
			if !field.IsNil() && field.Elem().Kind() == reflect.String {
				field.Elem().SetString(sanitizeString(field.Elem().String()))
			}

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
