package transport

import (
	"net/http"

	"github.com/gorilla/mux"
)

// ListProducts handler
// @Summary List products
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page, default 1"
// @Param per_page query int false "Page size, default 10"
// @Success 200 {object} model.ProductListResponse
// @Router /products [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	merchant, err := merchantID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ProductApp.ListProducts(r.Context(), merchant, queryInt(r, "page"), queryInt(r, "per_page"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetProduct handler
// @Summary Product detail
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} model.ProductDetail
// @Failure 404 {object} Response
// @Router /products/{id} [get]
func (s *RestHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	merchant, err := merchantID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ProductApp.GetProduct(r.Context(), merchant, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
