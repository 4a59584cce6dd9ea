// internal/app/features/groups/groups.go
package groups

import (
	"fmt"
	"net/http"

	"github.com/dalemusser/weshare/internal/app/system/apierr"
	"github.com/dalemusser/weshare/internal/app/system/httpjson"
	"github.com/dalemusser/weshare/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ServeList handles GET /groups. The optional member_id and payer_id query
// parameters narrow the list; both must be hex ObjectIDs.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	var f models.GroupFilter
	for param, dst := range map[string]**primitive.ObjectID{
		"member_id": &f.MemberID,
		"payer_id":  &f.PayerID,
	} {
		v := r.URL.Query().Get(param)
		if v == "" {
			continue
		}
		id, err := apierr.ParseID(v)
		if err != nil {
			apierr.Write(w, r, h.Log, "list groups", err)
			return
		}
		*dst = &id
	}

	groups, err := h.Groups.List(r.Context(), f)
	if err != nil {
		apierr.Write(w, r, h.Log, "list groups", err)
		return
	}
	httpjson.Write(w, http.StatusOK, groups)
}

// ServeGroup handles GET /groups/{id}.
func (h *Handler) ServeGroup(w http.ResponseWriter, r *http.Request) {
	id, ok := h.groupID(w, r, "get group")
	if !ok {
		return
	}
	g, err := h.Groups.GetByID(r.Context(), id)
	if err != nil {
		apierr.Write(w, r, h.Log, "get group", err)
		return
	}
	httpjson.Write(w, http.StatusOK, g)
}

// HandleCreate handles POST /groups. Any id in the body is ignored;
// member_ids and expenses may be supplied up front.
//
// Body:
//
//	{ "name": "Trip", "member_ids": ["…"], "expenses": [] }
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in models.Group
	if err := httpjson.Decode(r, &in); err != nil {
		apierr.Write(w, r, h.Log, "create group", err)
		return
	}
	in.ID = nil

	created, err := h.Groups.Create(r.Context(), in)
	if err != nil {
		apierr.Write(w, r, h.Log, "create group", err)
		return
	}
	h.Log.Info("group created", zap.String("group_id", created.ID.Hex()))
	httpjson.Write(w, http.StatusCreated, created)
}

// HandleDelete handles DELETE /groups/{id} and responds with a plain-text count.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.groupID(w, r, "delete group")
	if !ok {
		return
	}
	n, err := h.Groups.Delete(r.Context(), id)
	if err != nil {
		apierr.Write(w, r, h.Log, "delete group", err)
		return
	}
	if n > 0 {
		h.Log.Info("group deleted", zap.String("group_id", id.Hex()))
	}
	httpjson.WriteText(w, http.StatusOK, fmt.Sprintf("%d group(s) deleted", n))
}

// groupID parses the {id} path segment, writing a 400 on failure.
func (h *Handler) groupID(w http.ResponseWriter, r *http.Request, op string) (primitive.ObjectID, bool) {
	id, err := apierr.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		apierr.Write(w, r, h.Log, op, err)
		return primitive.NilObjectID, false
	}
	return id, true
}
