// If you are AI: This file provides JSON response helpers shared by the HTTP services.

package respond

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// JSON writes data as a JSON response with the given status.
// Encoding failures are logged; the status line has already been sent by then.
func JSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Warn("Failed to encode response", zap.Int("status", status), zap.Error(err))
	}
}
