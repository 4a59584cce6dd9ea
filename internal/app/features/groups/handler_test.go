package groups_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/weshare/internal/app/features/groups"
	"github.com/dalemusser/weshare/internal/domain/models"
	"github.com/dalemusser/weshare/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) (http.Handler, *testutil.MemStore) {
	t.Helper()
	mem := testutil.NewMemStore()
	h := groups.NewHandler(mem.Groups(), zap.NewNop())
	return groups.Routes(h), mem
}

func do(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeGroup(t *testing.T, rec *httptest.ResponseRecorder) models.Group {
	t.Helper()
	var g models.Group
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &g), "body: %s", rec.Body.String())
	return g
}

func createGroup(t *testing.T, router http.Handler, name string) models.Group {
	t.Helper()
	rec := do(t, router, "POST", "/", `{"name":"`+name+`"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	g := decodeGroup(t, rec)
	require.NotNil(t, g.ID)
	return g
}

func TestCreate_RendersEmptyArrays(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, "POST", "/", `{"name":"Trip"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Trip", body["name"])
	assert.Equal(t, []any{}, body["member_ids"])
	assert.Equal(t, []any{}, body["expenses"])
	assert.NotEmpty(t, body["id"])
}

func TestCreate_WithInitialMembers(t *testing.T) {
	router, _ := newTestRouter(t)
	u := primitive.NewObjectID()

	rec := do(t, router, "POST", "/", `{"name":"Trip","member_ids":["`+u.Hex()+`"]}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	g := decodeGroup(t, rec)
	assert.Equal(t, []primitive.ObjectID{u}, g.MemberIDs)
}

func TestCreate_MalformedMemberID(t *testing.T) {
	router, mem := newTestRouter(t)

	for _, member := range []string{`"nope"`, `"abcdefghij"`, `123456789012`, `""`} {
		rec := do(t, router, "POST", "/", `{"name":"Trip","member_ids":[`+member+`]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "member_ids [%s]: %s", member, rec.Body.String())
	}

	list, err := mem.Groups().List(context.Background(), models.GroupFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestGetAndList(t *testing.T) {
	router, _ := newTestRouter(t)
	trip := createGroup(t, router, "Trip")
	createGroup(t, router, "Flat")

	rec := do(t, router, "GET", "/"+trip.ID.Hex(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Trip", decodeGroup(t, rec).Name)

	rec = do(t, router, "GET", "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []models.Group
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "Flat", list[1].Name)
}

func TestGet_NotFoundAndInvalid(t *testing.T) {
	router, _ := newTestRouter(t)

	assert.Equal(t, http.StatusNotFound, do(t, router, "GET", "/"+primitive.NewObjectID().Hex(), "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, router, "GET", "/bad", "").Code)
}

func TestDelete_ReportsCount(t *testing.T) {
	router, _ := newTestRouter(t)
	g := createGroup(t, router, "Trip")

	rec := do(t, router, "DELETE", "/"+g.ID.Hex(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1 group(s) deleted", rec.Body.String())

	rec = do(t, router, "DELETE", "/"+g.ID.Hex(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0 group(s) deleted", rec.Body.String())
}

func TestAddMember_Twice_KeepsOneEntry(t *testing.T) {
	router, _ := newTestRouter(t)
	g := createGroup(t, router, "Trip")
	u := primitive.NewObjectID()
	path := "/" + g.ID.Hex() + "/members/" + u.Hex()

	first := do(t, router, "PUT", path, "")
	require.Equal(t, http.StatusOK, first.Code)
	second := do(t, router, "PUT", path, "")
	require.Equal(t, http.StatusOK, second.Code)

	updated := decodeGroup(t, second)
	assert.Equal(t, []primitive.ObjectID{u}, updated.MemberIDs)
}

func TestRemoveMember(t *testing.T) {
	router, _ := newTestRouter(t)
	g := createGroup(t, router, "Trip")
	ada, bob := primitive.NewObjectID(), primitive.NewObjectID()
	do(t, router, "PUT", "/"+g.ID.Hex()+"/members/"+ada.Hex(), "")
	do(t, router, "PUT", "/"+g.ID.Hex()+"/members/"+bob.Hex(), "")

	rec := do(t, router, "DELETE", "/"+g.ID.Hex()+"/members/"+ada.Hex(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []primitive.ObjectID{bob}, decodeGroup(t, rec).MemberIDs)

	// Not a member any more: still 200, group unchanged
	rec = do(t, router, "DELETE", "/"+g.ID.Hex()+"/members/"+ada.Hex(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []primitive.ObjectID{bob}, decodeGroup(t, rec).MemberIDs)
}

func TestMembers_UnknownGroupAndBadIDs(t *testing.T) {
	router, _ := newTestRouter(t)
	g := createGroup(t, router, "Trip")
	missing := primitive.NewObjectID().Hex()
	u := primitive.NewObjectID().Hex()

	assert.Equal(t, http.StatusNotFound, do(t, router, "PUT", "/"+missing+"/members/"+u, "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, router, "DELETE", "/"+missing+"/members/"+u, "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, router, "PUT", "/bad/members/"+u, "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, router, "PUT", "/"+g.ID.Hex()+"/members/bad", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, router, "DELETE", "/"+g.ID.Hex()+"/members/bad", "").Code)
}

func TestAddExpense_AppendsOnePerCall(t *testing.T) {
	router, _ := newTestRouter(t)
	g := createGroup(t, router, "Trip")
	payer := primitive.NewObjectID()
	body := `{"name":"Taxi","price":1250,"payer_id":"` + payer.Hex() + `"}`

	var last models.Group
	for i := 1; i <= 3; i++ {
		rec := do(t, router, "PUT", "/"+g.ID.Hex()+"/expenses", body)
		require.Equal(t, http.StatusOK, rec.Code)
		last = decodeGroup(t, rec)
		assert.Len(t, last.Expenses, i)
	}
	assert.Equal(t, models.Expense{Name: "Taxi", Price: 1250, PayerID: payer}, last.Expenses[0])
}

func TestAddExpense_Errors(t *testing.T) {
	router, _ := newTestRouter(t)
	g := createGroup(t, router, "Trip")
	payer := primitive.NewObjectID().Hex()

	tests := []struct {
		name   string
		path   string
		body   string
		status int
	}{
		{"negative price", "/" + g.ID.Hex() + "/expenses", `{"name":"Taxi","price":-1,"payer_id":"` + payer + `"}`, http.StatusBadRequest},
		{"bad payer", "/" + g.ID.Hex() + "/expenses", `{"name":"Taxi","price":1,"payer_id":"x"}`, http.StatusBadRequest},
		{"12-byte payer string", "/" + g.ID.Hex() + "/expenses", `{"name":"Taxi","price":1,"payer_id":"abcdefghij"}`, http.StatusBadRequest},
		{"12-digit payer number", "/" + g.ID.Hex() + "/expenses", `{"name":"Taxi","price":1,"payer_id":123456789012}`, http.StatusBadRequest},
		{"empty payer", "/" + g.ID.Hex() + "/expenses", `{"name":"Taxi","price":1,"payer_id":""}`, http.StatusBadRequest},
		{"missing payer", "/" + g.ID.Hex() + "/expenses", `{"name":"Taxi","price":1}`, http.StatusBadRequest},
		{"empty body", "/" + g.ID.Hex() + "/expenses", ``, http.StatusBadRequest},
		{"bad group id", "/nope/expenses", `{"name":"Taxi","price":1,"payer_id":"` + payer + `"}`, http.StatusBadRequest},
		{"unknown group", "/" + primitive.NewObjectID().Hex() + "/expenses", `{"name":"Taxi","price":1,"payer_id":"` + payer + `"}`, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, "PUT", tt.path, tt.body)
			assert.Equal(t, tt.status, rec.Code, "body: %s", rec.Body.String())
		})
	}

	rec := do(t, router, "GET", "/"+g.ID.Hex(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeGroup(t, rec).Expenses)
}

func TestList_Filters(t *testing.T) {
	router, _ := newTestRouter(t)
	trip := createGroup(t, router, "Trip")
	flat := createGroup(t, router, "Flat")
	ada, bob := primitive.NewObjectID(), primitive.NewObjectID()

	require.Equal(t, http.StatusOK, do(t, router, "PUT", "/"+trip.ID.Hex()+"/members/"+ada.Hex(), "").Code)
	require.Equal(t, http.StatusOK, do(t, router, "PUT", "/"+flat.ID.Hex()+"/members/"+bob.Hex(), "").Code)
	require.Equal(t, http.StatusOK, do(t, router, "PUT", "/"+flat.ID.Hex()+"/expenses",
		`{"name":"Rent","price":90000,"payer_id":"`+ada.Hex()+`"}`).Code)

	names := func(target string) []string {
		rec := do(t, router, "GET", target, "")
		require.Equal(t, http.StatusOK, rec.Code, target)
		var list []models.Group
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
		out := []string{}
		for _, g := range list {
			out = append(out, g.Name)
		}
		return out
	}

	assert.Equal(t, []string{"Trip", "Flat"}, names("/"))
	assert.Equal(t, []string{"Trip"}, names("/?member_id="+ada.Hex()))
	assert.Equal(t, []string{"Flat"}, names("/?payer_id="+ada.Hex()))
	assert.Equal(t, []string{}, names("/?member_id="+ada.Hex()+"&payer_id="+ada.Hex()))
	assert.Equal(t, []string{}, names("/?payer_id="+bob.Hex()))

	assert.Equal(t, http.StatusBadRequest, do(t, router, "GET", "/?member_id=abcdefghij", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, router, "GET", "/?payer_id=nope", "").Code)
}

func TestHandleAddMember_WithURLParams(t *testing.T) {
	mem := testutil.NewMemStore()
	h := groups.NewHandler(mem.Groups(), zap.NewNop())
	g, err := mem.Groups().Create(context.Background(), models.Group{Name: "Trip"})
	require.NoError(t, err)
	user := primitive.NewObjectID()

	req := httptest.NewRequest("PUT", "/"+g.ID.Hex()+"/members/"+user.Hex(), nil)
	req = testutil.WithChiURLParams(req, map[string]string{"id": g.ID.Hex(), "userID": user.Hex()})
	rec := httptest.NewRecorder()
	h.HandleAddMember(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, []primitive.ObjectID{user}, decodeGroup(t, rec).MemberIDs)

	req = testutil.WithChiURLParam(httptest.NewRequest("GET", "/", nil), "id", "zzz")
	rec = httptest.NewRecorder()
	h.ServeGroup(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStoreFailure_IsServerError(t *testing.T) {
	router, mem := newTestRouter(t)
	g := createGroup(t, router, "Trip")
	mem.Err = errors.New("socket closed")

	for _, path := range []string{"/", "/" + g.ID.Hex()} {
		rec := do(t, router, "GET", path, "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code, path)
		assert.NotContains(t, rec.Body.String(), "socket closed")
	}
	rec := do(t, router, "PUT", "/"+g.ID.Hex()+"/members/"+primitive.NewObjectID().Hex(), "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
