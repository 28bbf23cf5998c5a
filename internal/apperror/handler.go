package apperror

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// WriteJSON writes err using the {"error":{code,message,details}} envelope.
// 5xx responses are logged at error level with the internal cause.
func WriteJSON(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	code, body := ToHTTPError(err)

	if code >= 500 {
		log.Error("request error",
			slog.Int("status", code),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
	}

	if r.Method == http.MethodHead {
		w.WriteHeader(code)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
