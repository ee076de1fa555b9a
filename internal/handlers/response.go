package handlers

import (
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"
)

// WriteJSON writes a JSON response. The body is encoded before the status is
// sent so an encoding failure still yields a 500.
func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger *slog.Logger) {
	body, err := sonic.ConfigStd.Marshal(data)
	if err != nil {
		logger.Error("failed to encode JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Internal server error"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

// WriteError writes an error response in JSON format
func WriteError(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	WriteJSON(w, status, map[string]string{"error": message}, logger)
}
