// internal/app/features/groups/expenses.go
package groups

import (
	"net/http"

	"github.com/dalemusser/weshare/internal/app/system/apierr"
	"github.com/dalemusser/weshare/internal/app/system/httpjson"
	"github.com/dalemusser/weshare/internal/domain/models"
	"go.uber.org/zap"
)

// HandleAddExpense handles PUT /groups/{id}/expenses.
//
// Body:
//
//	{ "name": "Taxi", "price": 1250, "payer_id": "…" }
//
// Every call appends one entry, even if an identical expense already exists.
func (h *Handler) HandleAddExpense(w http.ResponseWriter, r *http.Request) {
	groupID, ok := h.groupID(w, r, "add expense")
	if !ok {
		return
	}
	var e models.Expense
	if err := httpjson.Decode(r, &e); err != nil {
		apierr.Write(w, r, h.Log, "add expense", err)
		return
	}

	g, err := h.Groups.AddExpense(r.Context(), groupID, e)
	if err != nil {
		apierr.Write(w, r, h.Log, "add expense", err)
		return
	}
	h.Log.Debug("expense added",
		zap.String("group_id", groupID.Hex()),
		zap.Uint32("price", uint32(e.Price)))
	httpjson.Write(w, http.StatusOK, g)
}
