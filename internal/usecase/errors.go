package usecase

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError reports request fields that failed a check only the
// database can answer, such as a relation id that does not resolve.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

type fieldErrors map[string]string

func (f fieldErrors) add(field, message string) {
	f[field] = message
}

// err returns nil when no field failed.
func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: f}
}

// uniqueIDs drops duplicates while keeping the request order.
func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	unique := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}

// missingIDsMessage lists requested ids absent from found, or "" if all resolved.
func missingIDsMessage(entityName string, requested []uint, found func(id uint) bool) string {
	var missing []string
	for _, id := range requested {
		if !found(id) {
			missing = append(missing, fmt.Sprint(id))
		}
	}
	if len(missing) == 0 {
		return ""
	}
	return fmt.Sprintf("%s %s does not exist", entityName, strings.Join(missing, ", "))
}
