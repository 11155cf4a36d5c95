package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError emits the same {"kind","error"} envelope the REST handlers use.
func writeError(w http.ResponseWriter, status int, kind, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"kind": kind, "error": message})
}
