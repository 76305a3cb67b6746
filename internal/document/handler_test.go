// Copyright (c) 2026 FreightDesk. All rights reserved.
// Author: dev@freightdesk.io

package document_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freightdeskhq/freightdesk/internal/document"
	"github.com/freightdeskhq/freightdesk/internal/identity"
	"github.com/freightdeskhq/freightdesk/internal/platform/ctxutil"
	"github.com/freightdeskhq/freightdesk/internal/platform/respond"
)

// fakeStore is an in-memory Store honoring the discriminator and raw-error
// contracts of the PostgreSQL implementation.
type fakeStore struct {
	docs map[string]*document.Document
}

func newFakeStore() *fakeStore {
	return &fakeStore{docs: map[string]*document.Document{}}
}

func (store *fakeStore) matches(doc *document.Document, collection, docType string) bool {
	return doc.Collection == collection && (docType == "" || doc.Type == docType)
}

func (store *fakeStore) List(_ context.Context, collection, docType string) ([]*document.Document, error) {
	out := make([]*document.Document, 0)
	for _, doc := range store.docs {
		if store.matches(doc, collection, docType) {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (store *fakeStore) Get(_ context.Context, collection, docType, id string) (*document.Document, error) {
	doc, ok := store.docs[id]
	if !ok || !store.matches(doc, collection, docType) {
		return nil, pgx.ErrNoRows
	}
	return doc, nil
}

func (store *fakeStore) Create(_ context.Context, doc *document.Document) (*document.Document, error) {
	now := time.Now()
	doc.CreatedAt = now
	doc.UpdatedAt = now
	doc.SyncSystemFields()

	for _, existing := range store.docs {
		if existing.Collection == doc.Collection && existing.Type == doc.Type &&
			existing.Code != "" && existing.Code == doc.Code {
			return nil, &pgconn.PgError{
				Code:   pgerrcode.UniqueViolation,
				Detail: "Key (collection, doc_type, code)=(" + doc.Collection + ", " + doc.Type + ", " + doc.Code + ") already exists.",
			}
		}
	}

	store.docs[doc.ID] = doc
	return doc, nil
}

func (store *fakeStore) Update(_ context.Context, collection, docType, id string, patch document.Patch) (*document.Document, error) {
	doc, ok := store.docs[id]
	if !ok || !store.matches(doc, collection, docType) {
		return nil, pgx.ErrNoRows
	}
	for field, value := range patch.Fields {
		doc.Fields[field] = value
	}
	doc.SyncSystemFields()
	doc.UpdatedBy = patch.UpdatedBy
	doc.UpdatedAt = time.Now()
	return doc, nil
}

func (store *fakeStore) Delete(_ context.Context, collection, docType, id string) error {
	doc, ok := store.docs[id]
	if !ok || !store.matches(doc, collection, docType) {
		return pgx.ErrNoRows
	}
	delete(store.docs, id)
	return nil
}

// fakeAllocator hands out deterministic series numbers.
type fakeAllocator struct {
	calls int
}

func (allocator *fakeAllocator) Next(_ context.Context, series string) (string, error) {
	allocator.calls++
	return series + "-0001", nil
}

var (
	branchDef = document.Definition{Label: "Branch", Collection: "fleet", Type: "branch"}
	truckDef  = document.Definition{Label: "Truck", Collection: "fleet", Type: "truck"}
)

func testUser() *identity.User {
	return &identity.User{
		ID:       "018f4f9e-9f6a-7bbb-a5bf-000000000001",
		Username: "ops",
		Role:     identity.RoleStaff,
		Status:   identity.StatusActive,
	}
}

// gatedRequest simulates a request that passed the authentication and
// validation gates: identity and sanitized body live in the context, and
// the chi route context carries the id parameter when given.
func gatedRequest(method, target string, body map[string]any, id string) *http.Request {
	ctx := identity.WithContext(context.Background(), testUser())
	if body != nil {
		ctx = ctxutil.WithBody(ctx, body)
	}
	if id != "" {
		routeCtx := chi.NewRouteContext()
		routeCtx.URLParams.Add("id", id)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, routeCtx)
	}
	return httptest.NewRequest(method, target, nil).WithContext(ctx)
}

type envelope struct {
	Success bool            `json:"success"`
	Count   *int            `json:"count"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, recorder *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &env))
	return env
}

/*
TestHandler_CreateThenGet verifies the create/read round trip: system
fields are assigned, the creating identity is recorded, and the stored
document is retrievable by its new identifier.
*/
func TestHandler_CreateThenGet(t *testing.T) {
	store := newFakeStore()
	handler := document.NewHandler(store, respond.New(false), nil)

	recorder := httptest.NewRecorder()
	handler.Create(branchDef)(recorder, gatedRequest(http.MethodPost, "/branches",
		map[string]any{"code": "BR1", "name": "Main Depot"}, ""))

	require.Equal(t, http.StatusCreated, recorder.Code)
	env := decode(t, recorder)
	assert.True(t, env.Success)

	var created map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "BR1", created["code"])
	assert.Equal(t, "branch", created["type"])
	assert.Equal(t, testUser().ID, created["createdBy"])
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)

	recorder = httptest.NewRecorder()
	handler.Get(branchDef)(recorder, gatedRequest(http.MethodGet, "/branches/"+id, nil, id))

	require.Equal(t, http.StatusOK, recorder.Code)
	env = decode(t, recorder)
	var fetched map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &fetched))
	assert.Equal(t, "Main Depot", fetched["name"])
}

/*
TestHandler_List verifies the list envelope carries a count and only the
definition's own discriminated kind.
*/
func TestHandler_List(t *testing.T) {
	store := newFakeStore()
	handler := document.NewHandler(store, respond.New(false), nil)

	for _, body := range []map[string]any{
		{"code": "BR1", "name": "Main"},
		{"code": "BR2", "name": "North"},
	} {
		recorder := httptest.NewRecorder()
		handler.Create(branchDef)(recorder, gatedRequest(http.MethodPost, "/branches", body, ""))
		require.Equal(t, http.StatusCreated, recorder.Code)
	}
	recorder := httptest.NewRecorder()
	handler.Create(truckDef)(recorder, gatedRequest(http.MethodPost, "/trucks",
		map[string]any{"code": "TRK1", "regNo": "BA-1-PA-1234"}, ""))
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = httptest.NewRecorder()
	handler.List(branchDef)(recorder, gatedRequest(http.MethodGet, "/branches", nil, ""))

	require.Equal(t, http.StatusOK, recorder.Code)
	env := decode(t, recorder)
	require.NotNil(t, env.Count)
	assert.Equal(t, 2, *env.Count)
}

/*
TestHandler_DiscriminatorIsolation verifies a document of one kind is
invisible through another kind's routes even though they share a
collection: a truck fetched as a branch is a 404, not a leak.
*/
func TestHandler_DiscriminatorIsolation(t *testing.T) {
	store := newFakeStore()
	handler := document.NewHandler(store, respond.New(false), nil)

	recorder := httptest.NewRecorder()
	handler.Create(truckDef)(recorder, gatedRequest(http.MethodPost, "/trucks",
		map[string]any{"code": "TRK1", "regNo": "BA-1-PA-1234"}, ""))
	require.Equal(t, http.StatusCreated, recorder.Code)

	var created map[string]any
	require.NoError(t, json.Unmarshal(decode(t, recorder).Data, &created))
	truckID, _ := created["id"].(string)

	recorder = httptest.NewRecorder()
	handler.Get(branchDef)(recorder, gatedRequest(http.MethodGet, "/branches/"+truckID, nil, truckID))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Branch not found", decode(t, recorder).Message)

	recorder = httptest.NewRecorder()
	handler.Delete(branchDef)(recorder, gatedRequest(http.MethodDelete, "/branches/"+truckID, nil, truckID))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

/*
TestHandler_DuplicateCode verifies a second document with the same business
code in the same kind renders the duplicate message, not a bare 500.
*/
func TestHandler_DuplicateCode(t *testing.T) {
	store := newFakeStore()
	handler := document.NewHandler(store, respond.New(false), nil)

	recorder := httptest.NewRecorder()
	handler.Create(branchDef)(recorder, gatedRequest(http.MethodPost, "/branches",
		map[string]any{"code": "BR1", "name": "Main"}, ""))
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = httptest.NewRecorder()
	handler.Create(branchDef)(recorder, gatedRequest(http.MethodPost, "/branches",
		map[string]any{"code": "BR1", "name": "Impostor"}, ""))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t,
		"Duplicate field value: code = BR1. Please use another value.",
		decode(t, recorder).Message)
}

/*
TestHandler_Update verifies partial update semantics: patched fields are
replaced, untouched fields survive, and the updating identity is recorded.
*/
func TestHandler_Update(t *testing.T) {
	store := newFakeStore()
	handler := document.NewHandler(store, respond.New(false), nil)

	recorder := httptest.NewRecorder()
	handler.Create(branchDef)(recorder, gatedRequest(http.MethodPost, "/branches",
		map[string]any{"code": "BR1", "name": "Main", "phone": "01-555"}, ""))
	require.Equal(t, http.StatusCreated, recorder.Code)

	var created map[string]any
	require.NoError(t, json.Unmarshal(decode(t, recorder).Data, &created))
	id, _ := created["id"].(string)

	recorder = httptest.NewRecorder()
	handler.Update(branchDef)(recorder, gatedRequest(http.MethodPut, "/branches/"+id,
		map[string]any{"name": "Main Depot"}, id))

	require.Equal(t, http.StatusOK, recorder.Code)
	var updated map[string]any
	require.NoError(t, json.Unmarshal(decode(t, recorder).Data, &updated))
	assert.Equal(t, "Main Depot", updated["name"])
	assert.Equal(t, "01-555", updated["phone"])
	assert.Equal(t, testUser().ID, updated["updatedBy"])
}

/*
TestHandler_Delete verifies deletion returns the empty-object success
envelope and a second delete of the same id is a 404.
*/
func TestHandler_Delete(t *testing.T) {
	store := newFakeStore()
	handler := document.NewHandler(store, respond.New(false), nil)

	recorder := httptest.NewRecorder()
	handler.Create(branchDef)(recorder, gatedRequest(http.MethodPost, "/branches",
		map[string]any{"code": "BR1", "name": "Main"}, ""))
	var created map[string]any
	require.NoError(t, json.Unmarshal(decode(t, recorder).Data, &created))
	id, _ := created["id"].(string)

	recorder = httptest.NewRecorder()
	handler.Delete(branchDef)(recorder, gatedRequest(http.MethodDelete, "/branches/"+id, nil, id))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{}`, string(decode(t, recorder).Data))

	recorder = httptest.NewRecorder()
	handler.Delete(branchDef)(recorder, gatedRequest(http.MethodDelete, "/branches/"+id, nil, id))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

/*
TestHandler_MalformedID verifies a non-UUID identifier is rejected as a
cast error without touching the store.
*/
func TestHandler_MalformedID(t *testing.T) {
	handler := document.NewHandler(newFakeStore(), respond.New(false), nil)

	recorder := httptest.NewRecorder()
	handler.Get(branchDef)(recorder, gatedRequest(http.MethodGet, "/branches/nope", nil, "nope"))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Invalid id: nope", decode(t, recorder).Message)
}

/*
TestHandler_NumberSeries verifies documents of a numbered resource receive
a series number on create, and unnumbered resources never call the allocator.
*/
func TestHandler_NumberSeries(t *testing.T) {
	store := newFakeStore()
	allocator := &fakeAllocator{}
	handler := document.NewHandler(store, respond.New(false), allocator)

	invoiceDef := document.Definition{
		Label: "Invoice", Collection: "invoice", NumberSeries: "INV",
	}

	recorder := httptest.NewRecorder()
	handler.Create(invoiceDef)(recorder, gatedRequest(http.MethodPost, "/invoices",
		map[string]any{"customer": "ACME", "amount": 120.5}, ""))

	require.Equal(t, http.StatusCreated, recorder.Code)
	var created map[string]any
	require.NoError(t, json.Unmarshal(decode(t, recorder).Data, &created))
	assert.Equal(t, "INV-0001", created["number"])
	assert.Equal(t, 1, allocator.calls)

	recorder = httptest.NewRecorder()
	handler.Create(branchDef)(recorder, gatedRequest(http.MethodPost, "/branches",
		map[string]any{"code": "BR1", "name": "Main"}, ""))
	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, 1, allocator.calls)
}

/*
TestHandler_MissingGates verifies reaching a write operation without the
upstream gates is rendered as an unknown 500.
*/
func TestHandler_MissingGates(t *testing.T) {
	handler := document.NewHandler(newFakeStore(), respond.New(false), nil)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/branches", nil)
	handler.Create(branchDef)(recorder, request)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, "Something went wrong", decode(t, recorder).Message)
}
