package transport

import (
	"encoding/json"
	"net/http"

	"github.com/muhammadheryan/inventory/constant"
	"github.com/muhammadheryan/inventory/model"
	"github.com/muhammadheryan/inventory/utils/errors"
	validatorx "github.com/muhammadheryan/inventory/utils/validator"
)

// Checkout handler
// @Summary Checkout cart
// @Description Records the transaction and decrements stock per item. Item failures are reported in results and do not fail the request.
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body model.CheckoutRequest true "Checkout Request"
// @Success 200 {object} CheckoutResponse
// @Failure 400 {object} Response
// @Router /inventory/checkout [post]
func (s *RestHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req model.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorWithDetail(constant.ErrInvalidRequest, validatorx.Message(err)))
		return
	}

	res, err := s.CheckoutApp.ProcessCheckout(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, CheckoutResponse{
		Success:       true,
		TransactionID: res.TransactionID,
		Results:       res.Results,
	})
}
