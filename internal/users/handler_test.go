package users_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"todo-backend/internal/bootstrap"
	"todo-backend/internal/shared/config"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app, err := bootstrap.Build(config.Config{
		Port: "0",
		Env:  "dev",
	})
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

type userBody struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
}

func postUser(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/user", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestUserCreateThenGet(t *testing.T) {
	router := newTestRouter(t)

	resp := postUser(t, router, `{"email":"a@x.com","first_name":"A"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var created userBody
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if _, err := uuid.Parse(created.ID); err != nil {
		t.Fatalf("expected uuid id, got %q", created.ID)
	}
	if created.Email != "a@x.com" || created.FirstName != "A" {
		t.Fatalf("unexpected body: %+v", created)
	}

	reqGet := httptest.NewRequest(http.MethodGet, "/user/"+created.ID, nil)
	respGet := httptest.NewRecorder()
	router.ServeHTTP(respGet, reqGet)

	if respGet.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respGet.Code)
	}
	var got userBody
	if err := json.NewDecoder(respGet.Body).Decode(&got); err != nil {
		t.Fatalf("decode get response: %v", err)
	}
	if got != created {
		t.Fatalf("round trip mismatch: %+v vs %+v", got, created)
	}
}

func TestUserDuplicateEmailReturns400(t *testing.T) {
	router := newTestRouter(t)

	if resp := postUser(t, router, `{"email":"a@x.com","first_name":"A"}`); resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	resp := postUser(t, router, `{"email":"a@x.com","first_name":"B"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	if resp.Body.Len() != 0 {
		t.Fatalf("error responses must carry no body, got %q", resp.Body.String())
	}
}

func TestUserPatchEmailConflicts(t *testing.T) {
	router := newTestRouter(t)

	respA := postUser(t, router, `{"email":"a@x.com","first_name":"A"}`)
	var userA userBody
	if err := json.NewDecoder(respA.Body).Decode(&userA); err != nil {
		t.Fatalf("decode: %v", err)
	}
	respB := postUser(t, router, `{"email":"b@x.com","first_name":"B"}`)
	var userB userBody
	if err := json.NewDecoder(respB.Body).Decode(&userB); err != nil {
		t.Fatalf("decode: %v", err)
	}

	// Claiming another user's email fails.
	req := httptest.NewRequest(http.MethodPatch, "/user/"+userB.ID, strings.NewReader(`{"email":"a@x.com"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}

	// Re-writing one's own email succeeds.
	reqOwn := httptest.NewRequest(http.MethodPatch, "/user/"+userA.ID, strings.NewReader(`{"email":"a@x.com"}`))
	reqOwn.Header.Set("Content-Type", "application/json")
	respOwn := httptest.NewRecorder()
	router.ServeHTTP(respOwn, reqOwn)
	if respOwn.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respOwn.Code)
	}
}

func TestUserPatchMergesOnlySuppliedFields(t *testing.T) {
	router := newTestRouter(t)

	resp := postUser(t, router, `{"email":"a@x.com","first_name":"A"}`)
	var created userBody
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	req := httptest.NewRequest(http.MethodPatch, "/user/"+created.ID, strings.NewReader(`{"first_name":"Z"}`))
	req.Header.Set("Content-Type", "application/json")
	respPatch := httptest.NewRecorder()
	router.ServeHTTP(respPatch, req)

	if respPatch.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respPatch.Code)
	}
	var patched userBody
	if err := json.NewDecoder(respPatch.Body).Decode(&patched); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if patched.Email != "a@x.com" || patched.FirstName != "Z" {
		t.Fatalf("unexpected merge result: %+v", patched)
	}
}

func TestUserGetMalformedIDReturns400(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/user/not-a-uuid", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestUserGetUnknownIDReturns404(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/user/"+uuid.NewString(), nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}
