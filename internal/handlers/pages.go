package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/AadarshMishraa/ADmyBrand/internal/apperror"
	"github.com/AadarshMishraa/ADmyBrand/internal/components"
	"github.com/AadarshMishraa/ADmyBrand/internal/metrics"
)

// LandingPage renders the full page for GET /.
func (h *Handler) LandingPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, components.Landing(h.landing(r)))
}

// FAQ renders only the FAQ section so the script can swap it in place.
func (h *Handler) FAQ(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, components.FAQSection(h.faqView(pageState(r))))
}

type healthResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(healthResponse{
		Status: "ok",
		Uptime: h.clock.Now().Sub(h.startAt).Round(time.Second).String(),
	})
}

// NotFound answers unknown routes: a JSON error under /api, the 404 page
// everywhere else.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	metrics.NotFound.Inc()
	h.misses.Add(1)
	h.notFound.Call(r.URL.Path)

	if strings.HasPrefix(r.URL.Path, "/api/") {
		apperror.WriteJSON(w, r, h.log, apperror.ErrNotFound)
		return
	}
	h.render(w, r, http.StatusNotFound, components.NotFoundPage(h.pageConfig(r), r.URL.Path))
}
