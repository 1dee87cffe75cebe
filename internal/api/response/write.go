package response

import (
	"encoding/json"
	"net/http"
)

// JSON writes data as a JSON body with the given status. Encode errors
// after the header has gone out are unrecoverable and are dropped.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}
