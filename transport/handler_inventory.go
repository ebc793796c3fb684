package transport

import (
	"encoding/json"
	"net/http"

	"github.com/muhammadheryan/inventory/constant"
	"github.com/muhammadheryan/inventory/model"
	"github.com/muhammadheryan/inventory/utils/errors"
	validatorx "github.com/muhammadheryan/inventory/utils/validator"
)

// AdjustStock handler
// @Summary Adjust stock
// @Description Apply a signed stock change and record the movement. A positive quantity with movement_type OUT is treated as outgoing.
// @Tags Inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.AdjustStockHTTPRequest true "Adjust Request"
// @Success 200 {object} model.StockMovement
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /inventory/adjust [post]
func (s *RestHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	merchant, err := merchantID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.AdjustStockHTTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorWithDetail(constant.ErrInvalidRequest, validatorx.Message(err)))
		return
	}

	delta := req.Quantity
	if req.MovementType == constant.MovementTypeOut && delta > 0 {
		delta = -delta
	}

	res, err := s.StockApp.AdjustStock(ctx, &model.AdjustStockRequest{
		MerchantID:  merchant,
		ProductID:   req.ProductID,
		VariantID:   req.VariantID,
		Delta:       delta,
		Type:        req.MovementType,
		Reason:      req.Reason,
		ReferenceID: req.ReferenceID,
		PerformedBy: merchant,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetMovementHistory handler
// @Summary Stock movement history
// @Description Paginated movements of one product, newest first
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Param product_id query string true "Product ID"
// @Param start_date query string false "RFC3339 or YYYY-MM-DD"
// @Param end_date query string false "RFC3339 or YYYY-MM-DD"
// @Param type query string false "IN, OUT, ADJUSTMENT, RETURN or SALE"
// @Param page query int false "Page, default 1"
// @Param limit query int false "Page size, default 20, max 100"
// @Success 200 {object} PaginatedResponse
// @Failure 400 {object} Response
// @Router /inventory/movements [get]
func (s *RestHandler) GetMovementHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	merchant, err := merchantID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	start, end, err := parseDateRange(r)
	if err != nil {
		writeError(w, err)
		return
	}

	q := r.URL.Query()
	res, err := s.StockApp.GetMovementHistory(ctx, &model.MovementFilter{
		MerchantID: merchant,
		ProductID:  q.Get("product_id"),
		StartDate:  start,
		EndDate:    end,
		Type:       constant.MovementType(q.Get("type")),
		Page:       queryInt(r, "page"),
		Limit:      queryInt(r, "limit"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	data := res.Data
	if data == nil {
		data = []model.StockMovement{}
	}
	writeJSON(w, http.StatusOK, PaginatedResponse{
		Success: true,
		Data:    data,
		Pagination: Pagination{
			Total:      res.Total,
			Page:       res.Page,
			Limit:      res.Limit,
			TotalPages: res.TotalPages,
		},
	})
}

// GetReport handler
// @Summary Inventory report
// @Description summary (default), low_stock, movements or valuation
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Param type query string false "Report type"
// @Param start_date query string false "RFC3339 or YYYY-MM-DD"
// @Param end_date query string false "RFC3339 or YYYY-MM-DD"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Router /inventory/report [get]
func (s *RestHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	merchant, err := merchantID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	start, end, err := parseDateRange(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ReportApp.GetReport(ctx, &model.ReportRequest{
		MerchantID: merchant,
		Type:       r.URL.Query().Get("type"),
		StartDate:  start,
		EndDate:    end,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
