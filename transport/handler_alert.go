package transport

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// GetAlerts handler
// @Summary List alerts
// @Tags Alerts
// @Produce json
// @Security BearerAuth
// @Param unread query bool false "Only unread alerts"
// @Success 200 {object} Response
// @Router /inventory/alerts [get]
func (s *RestHandler) GetAlerts(w http.ResponseWriter, r *http.Request) {
	merchant, err := merchantID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	unreadOnly, _ := strconv.ParseBool(r.URL.Query().Get("unread"))

	res, err := s.AlertApp.GetAlerts(r.Context(), merchant, unreadOnly)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DismissAlert handler
// @Summary Mark alert as read
// @Tags Alerts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Alert ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /inventory/alerts/{id}/read [put]
func (s *RestHandler) DismissAlert(w http.ResponseWriter, r *http.Request) {
	merchant, err := merchantID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.AlertApp.DismissAlert(r.Context(), merchant, mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// DismissAllAlerts handler
// @Summary Mark all alerts as read
// @Tags Alerts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Router /inventory/alerts/read [put]
func (s *RestHandler) DismissAllAlerts(w http.ResponseWriter, r *http.Request) {
	merchant, err := merchantID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	updated, err := s.AlertApp.DismissAllAlerts(r.Context(), merchant)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]bool{"updated": updated})
}
