package respond

import (
	"encoding/json"
	"log"
	"net/http"
)

// errorBody is the failure shape shared by every endpoint: status carried
// in the HTTP code, nothing but a flag and a message in the body.
type errorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// JSON writes payload as the response body. Success payloads carry their
// own success/message fields (see models/dto).
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("respond: encode payload failed: %v", err)
	}
}

// Error writes a failure response. Message is the only detail exposed;
// internal causes are logged where they occur, never serialized.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, errorBody{Success: false, Message: message})
}
