package contact

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// SuccessNotice is shown to the visitor after a valid submission.
const SuccessNotice = "Thank you for your message! I'll get back to you soon."

// maxBodyBytes bounds a submission body.
const maxBodyBytes = 64 << 10

// submitThrottle caps concurrent submissions in flight.
const submitThrottle = 8

// RegisterRoutes mounts the JSON contact endpoint on the given router.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.With(middleware.Throttle(submitThrottle)).Post("/api/contact", handleSubmit(svc))
}

type submitResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func handleSubmit(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

		var sub Submission
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}

		errs, _, err := svc.Submit(r.Context(), sub, RequestMeta(r))
		if err != nil {
			log.Printf("contact: submit: %v", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "could not save message"})
			return
		}
		if !errs.Valid() {
			writeJSON(w, http.StatusUnprocessableEntity, submitResponse{
				Status: "invalid",
				Errors: errs.Messages(),
			})
			return
		}

		writeJSON(w, http.StatusOK, submitResponse{Status: "sent", Message: SuccessNotice})
	}
}

// RequestMeta extracts the request details stored with a message.
func RequestMeta(r *http.Request) Meta {
	return Meta{RemoteAddr: r.RemoteAddr, UserAgent: r.UserAgent()}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
