package service

import (
	"strings"

	"pizza_dough/internal/logger"
	"pizza_dough/internal/models"
)

// warnings collects the physical-feasibility notices of one computation and logs each one.
type warnings struct {
	log  *logger.Logger
	list []models.Warning
}

// add logs kind under its snake_case event name and keeps it for the result.
// kv are alternating key/value pairs, copied into the warning metadata.
func (w *warnings) add(kind, description string, kv ...any) {
	meta := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		if k, ok := kv[i].(string); ok {
			meta[k] = kv[i+1]
		}
	}
	w.log.Warnw(strings.ToLower(kind), append([]any{"description", description}, kv...)...)
	w.list = append(w.list, models.Warning{Type: kind, Description: description, Metadata: meta})
}
