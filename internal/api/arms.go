package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MikeSquared-Agency/ArmFinder/internal/catalog"
	"github.com/MikeSquared-Agency/ArmFinder/internal/money"
)

// ArmView is a catalog arm with its price range rendered for display.
type ArmView struct {
	catalog.Arm
	PriceLabel string `json:"price_label"`
}

type ArmsHandler struct {
	catalog   *catalog.Catalog
	formatter *money.Formatter
}

func NewArmsHandler(c *catalog.Catalog, f *money.Formatter) *ArmsHandler {
	if f == nil {
		f = money.Default()
	}
	return &ArmsHandler{catalog: c, formatter: f}
}

func (h *ArmsHandler) view(a catalog.Arm) ArmView {
	return ArmView{Arm: a, PriceLabel: h.formatter.FormatRange(a.Price.Min, a.Price.Max)}
}

func (h *ArmsHandler) List(w http.ResponseWriter, r *http.Request) {
	arms := h.catalog.Arms()
	views := make([]ArmView, 0, len(arms))
	for _, a := range arms {
		views = append(views, h.view(a))
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *ArmsHandler) Get(w http.ResponseWriter, r *http.Request) {
	a, ok := h.catalog.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "arm not found")
		return
	}
	writeJSON(w, http.StatusOK, h.view(a))
}
