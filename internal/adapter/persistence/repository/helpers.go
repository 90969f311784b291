package repository

import (
	"os"
	"time"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func timeToAttr(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func timeFromAttr(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

// optionalTimeToAttr stores the empty string for unset optional timestamps.
func optionalTimeToAttr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return timeToAttr(*t)
}

func optionalTimeFromAttr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := timeFromAttr(s)
	return &t
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
