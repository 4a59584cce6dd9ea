// internal/app/features/groups/members.go
package groups

import (
	"net/http"

	"github.com/dalemusser/weshare/internal/app/system/apierr"
	"github.com/dalemusser/weshare/internal/app/system/httpjson"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HandleAddMember handles PUT /groups/{id}/members/{userID}.
// Adding an existing member is a no-op. The user is not looked up.
func (h *Handler) HandleAddMember(w http.ResponseWriter, r *http.Request) {
	groupID, ok := h.groupID(w, r, "add member")
	if !ok {
		return
	}
	userID, err := apierr.ParseID(chi.URLParam(r, "userID"))
	if err != nil {
		apierr.Write(w, r, h.Log, "add member", err)
		return
	}

	g, err := h.Groups.AddMember(r.Context(), groupID, userID)
	if err != nil {
		apierr.Write(w, r, h.Log, "add member", err)
		return
	}
	h.Log.Debug("member added",
		zap.String("group_id", groupID.Hex()),
		zap.String("user_id", userID.Hex()))
	httpjson.Write(w, http.StatusOK, g)
}

// HandleRemoveMember handles DELETE /groups/{id}/members/{userID}.
// Removing a user that is not a member returns the group unchanged.
func (h *Handler) HandleRemoveMember(w http.ResponseWriter, r *http.Request) {
	groupID, ok := h.groupID(w, r, "remove member")
	if !ok {
		return
	}
	userID, err := apierr.ParseID(chi.URLParam(r, "userID"))
	if err != nil {
		apierr.Write(w, r, h.Log, "remove member", err)
		return
	}

	g, err := h.Groups.RemoveMember(r.Context(), groupID, userID)
	if err != nil {
		apierr.Write(w, r, h.Log, "remove member", err)
		return
	}
	h.Log.Debug("member removed",
		zap.String("group_id", groupID.Hex()),
		zap.String("user_id", userID.Hex()))
	httpjson.Write(w, http.StatusOK, g)
}
