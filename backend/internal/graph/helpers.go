package graph

import (
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
)

// ============================================================================
// Record and node property accessors
// ============================================================================

// nodeProps returns the property map of a node column, or nil when the
// OPTIONAL MATCH produced no node.
func nodeProps(record *neo4j.Record, key string) map[string]any {
	val, ok := record.Get(key)
	if !ok || val == nil {
		return nil
	}
	if node, ok := val.(dbtype.Node); ok {
		return node.Props
	}
	return nil
}

func getString(props map[string]any, key string) string {
	val, ok := props[key]
	if !ok || val == nil {
		return ""
	}
	if str, ok := val.(string); ok {
		return str
	}
	return ""
}

// getOptionalString maps an absent or null property to nil
func getOptionalString(props map[string]any, key string) *string {
	val, ok := props[key]
	if !ok || val == nil {
		return nil
	}
	if str, ok := val.(string); ok {
		return &str
	}
	return nil
}

func getInt64(props map[string]any, key string) int64 {
	val, ok := props[key]
	if !ok || val == nil {
		return 0
	}
	switch v := val.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	}
	return 0
}

func getBool(props map[string]any, key string) bool {
	val, ok := props[key]
	if !ok || val == nil {
		return false
	}
	if b, ok := val.(bool); ok {
		return b
	}
	return false
}

// getTimestamp reads a property that may come back as a string or as a
// backend-native temporal value and normalizes it to ISO-8601. Values
// without a zone get an explicit UTC "Z" suffix; raw temporal types are not
// serializable to the external JSON contract.
func getTimestamp(props map[string]any, key string) string {
	val, ok := props[key]
	if !ok || val == nil {
		return ""
	}
	return normalizeTimestamp(val)
}

func normalizeTimestamp(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	case dbtype.LocalDateTime:
		// zoneless; keep the wall clock and stamp it UTC
		return asUTCWallClock(v.Time()).Format(time.RFC3339)
	case dbtype.Date:
		return asUTCWallClock(v.Time()).Format(time.RFC3339)
	}
	return ""
}

// asUTCWallClock rebuilds t's clock reading in UTC without shifting it by
// the host zone offset
func asUTCWallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// optionalStringParam maps a nil pointer to a null query parameter
func optionalStringParam(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
