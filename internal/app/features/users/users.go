// internal/app/features/users/users.go
package users

import (
	"fmt"
	"net/http"

	"github.com/dalemusser/weshare/internal/app/system/apierr"
	"github.com/dalemusser/weshare/internal/app/system/httpjson"
	"github.com/dalemusser/weshare/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ServeList handles GET /users.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.List(r.Context())
	if err != nil {
		apierr.Write(w, r, h.Log, "list users", err)
		return
	}
	httpjson.Write(w, http.StatusOK, users)
}

// ServeUser handles GET /users/{id}.
func (h *Handler) ServeUser(w http.ResponseWriter, r *http.Request) {
	id, err := apierr.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		apierr.Write(w, r, h.Log, "get user", err)
		return
	}
	u, err := h.Users.GetByID(r.Context(), id)
	if err != nil {
		apierr.Write(w, r, h.Log, "get user", err)
		return
	}
	httpjson.Write(w, http.StatusOK, u)
}

// HandleCreate handles POST /users. Any id in the body is ignored.
//
// Body:
//
//	{ "name": "Ada", "contact": "ada@x.io" }
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in models.User
	if err := httpjson.Decode(r, &in); err != nil {
		apierr.Write(w, r, h.Log, "create user", err)
		return
	}
	in.ID = nil

	created, err := h.Users.Create(r.Context(), in)
	if err != nil {
		apierr.Write(w, r, h.Log, "create user", err)
		return
	}
	h.Log.Info("user created", zap.String("user_id", created.ID.Hex()))
	httpjson.Write(w, http.StatusCreated, created)
}

// HandleDelete handles DELETE /users/{id}. Responds with a plain-text count;
// deleting an unknown id reports 0 rather than 404.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := apierr.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		apierr.Write(w, r, h.Log, "delete user", err)
		return
	}
	n, err := h.Users.Delete(r.Context(), id)
	if err != nil {
		apierr.Write(w, r, h.Log, "delete user", err)
		return
	}
	if n > 0 {
		h.Log.Info("user deleted", zap.String("user_id", id.Hex()))
	}
	httpjson.WriteText(w, http.StatusOK, fmt.Sprintf("%d user(s) deleted", n))
}
