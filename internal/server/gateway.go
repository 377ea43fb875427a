package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/pharmaxis/pharmintel/dataset"
)

// lookupHandler adapts one dataset projection into a gateway endpoint.
// A missing query parameter is a 400 with a usage example; a missing record
// is a 404 carrying the keys the dataset does hold.
func (s *Server) lookupHandler(param, usage string, lookup func(string) (map[string]any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		value := r.URL.Query().Get(param)
		if value == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error":         fmt.Sprintf("Missing '%s' query parameter.", param),
				"usage_example": usage,
			})
			return
		}
		record, err := lookup(value)
		if err != nil {
			var notFound *dataset.NotFoundError
			if errors.As(err, &notFound) {
				writeJSON(w, http.StatusNotFound, map[string]any{
					"error":               notFound.Message,
					notFound.AvailableKey: notFound.Available,
				})
				return
			}
			slog.Error(fmt.Sprintf("%s - lookup %s=%s: %v", logPrefix, param, value, err))
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, record)
	}
}
