package transport

import (
	"encoding/json"
	"net/http"

	"github.com/muhammadheryan/inventory/constant"
	"github.com/muhammadheryan/inventory/model"
	"github.com/muhammadheryan/inventory/utils/errors"
	validatorx "github.com/muhammadheryan/inventory/utils/validator"
)

// ScanLowStock handler
// @Summary Sweep a merchant for low stock
// @Description Creates an alert for every product at or below the threshold. Internal API key required.
// @Tags Internal
// @Accept json
// @Produce json
// @Param request body model.AlertScanRequest true "Scan Request"
// @Success 200 {object} Response
// @Failure 403 {object} Response
// @Router /internal/v1/alerts/scan [post]
func (s *RestHandler) ScanLowStock(w http.ResponseWriter, r *http.Request) {
	var req model.AlertScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorWithDetail(constant.ErrInvalidRequest, validatorx.Message(err)))
		return
	}

	created, err := s.AlertApp.CheckLowStock(r.Context(), req.MerchantID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]int{"created": created})
}
