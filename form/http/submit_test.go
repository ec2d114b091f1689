package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zabka-mb/backend/form"
	formhttp "github.com/zabka-mb/backend/form/http"
	backendhttp "github.com/zabka-mb/backend/http"
	"github.com/zabka-mb/backend/mailer"
)

const (
	testSenderAddress = "noreply@zabkambsolutions.in"
	testStaffAddress  = "staff@zabkambsolutions.in"
)

type fakeSender struct {
	mu   sync.Mutex
	sent []mailer.Email
	fail bool
}

func (f *fakeSender) Send(ctx context.Context, email *mailer.Email) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return mailer.ErrSendFailed
	}
	f.sent = append(f.sent, *email)
	return nil
}

func (f *fakeSender) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

type testServer struct {
	handler http.Handler
	repos   map[form.FormType]*form.InMemRepo
	sender  *fakeSender
}

func setupServer(t *testing.T) *testServer {
	t.Helper()

	repos := map[form.FormType]*form.InMemRepo{
		form.FormTypeContact: form.NewInMemRepo(),
		form.FormTypeCareer:  form.NewInMemRepo(),
		form.FormTypePartner: form.NewInMemRepo(),
	}
	srvcRepos := make(map[form.FormType]form.SubmissionRepo, len(repos))
	for formType, repo := range repos {
		srvcRepos[formType] = repo
	}

	sender := &fakeSender{}
	formSrvc := form.NewFormSrvc(form.SrvcParams{
		Repos:         srvcRepos,
		Sender:        sender,
		SenderAddress: testSenderAddress,
		StaffAddress:  testStaffAddress,
	})

	server := backendhttp.NewHttpServer(
		formhttp.NewFormHttpHandler(formSrvc),
		[]string{"http://localhost:3000"})

	return &testServer{
		handler: server.Router(),
		repos:   repos,
		sender:  sender,
	}
}

func postJson(t *testing.T, handler http.Handler, path string, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	jsonBody, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

type envelope struct {
	IsSuccess bool            `json:"isSuccess"`
	Message   string          `json:"message"`
	Error     json.RawMessage `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp),
		"response body: %s", w.Body.String())
	return resp
}

func validContactBody() map[string]any {
	return map[string]any{
		"name":    "Asha",
		"email":   "asha@x.com",
		"number":  "9876543210",
		"message": "Hello",
	}
}

func TestContactSubmitEndToEnd(t *testing.T) {
	ts := setupServer(t)

	w := postJson(t, ts.handler, "/api/contact", validContactBody())
	assert.Equal(t, http.StatusCreated, w.Code, "response body: %s", w.Body.String())

	resp := decodeEnvelope(t, w)
	assert.True(t, resp.IsSuccess)
	assert.Equal(t, "New Contact Details Added Successfully", resp.Message)

	assert.Len(t, ts.repos[form.FormTypeContact].All(), 1)
	assert.Equal(t, 2, ts.sender.count(), "two notifications per submission")

	// Identical repeat must conflict and leave the store unchanged.
	w = postJson(t, ts.handler, "/api/contact", validContactBody())
	assert.Equal(t, http.StatusConflict, w.Code)

	resp = decodeEnvelope(t, w)
	assert.False(t, resp.IsSuccess)
	assert.Equal(t, "Data Is Already Exist", resp.Message)
	assert.Len(t, ts.repos[form.FormTypeContact].All(), 1)
}

func TestContactSubmitValidationError(t *testing.T) {
	ts := setupServer(t)

	body := validContactBody()
	delete(body, "message")

	w := postJson(t, ts.handler, "/api/contact", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeEnvelope(t, w)
	assert.False(t, resp.IsSuccess)
	assert.Equal(t, "Validation Error", resp.Message)

	var violations []form.Violation
	require.NoError(t, json.Unmarshal(resp.Error, &violations))
	require.Len(t, violations, 1)
	assert.Equal(t, "message", violations[0].Field)

	assert.Empty(t, ts.repos[form.FormTypeContact].All())
	assert.Equal(t, 0, ts.sender.count())
}

func TestPartnerSubmitWithInterests(t *testing.T) {
	ts := setupServer(t)

	w := postJson(t, ts.handler, "/api/partner", map[string]any{
		"name":      "Priya",
		"email":     "priya@x.com",
		"phone":     "9876500000",
		"interests": []string{"NCMC Card", "FASTag"},
	})
	assert.Equal(t, http.StatusCreated, w.Code, "response body: %s", w.Body.String())

	resp := decodeEnvelope(t, w)
	assert.True(t, resp.IsSuccess)
	assert.Equal(t, "Partner Registration Submitted Successfully", resp.Message)

	stored := ts.repos[form.FormTypePartner].All()
	require.Len(t, stored, 1)
	assert.Equal(t, []string{"NCMC Card", "FASTag"}, stored[0].Fields.List("interests"))
}

func TestPartnerDuplicateByPhone(t *testing.T) {
	ts := setupServer(t)

	body := map[string]any{
		"name":      "Priya",
		"email":     "priya@x.com",
		"phone":     "9876500000",
		"interests": []string{"FASTag"},
	}
	w := postJson(t, ts.handler, "/api/partner", body)
	require.Equal(t, http.StatusCreated, w.Code)

	body["email"] = "other@x.com" // same phone
	w = postJson(t, ts.handler, "/api/partner", body)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Len(t, ts.repos[form.FormTypePartner].All(), 1)
}

func TestCareerRepeatSubmissionsAllowed(t *testing.T) {
	ts := setupServer(t)

	body := map[string]any{
		"fullName":    "Ravi Kumar",
		"email":       "ravi@x.com",
		"phone":       "9876501234",
		"position":    "Field Executive",
		"experience":  "3 years",
		"location":    "Delhi",
		"skills":      "Sales, CRM",
		"coverLetter": "I would like to apply.",
	}

	w := postJson(t, ts.handler, "/api/career", body)
	require.Equal(t, http.StatusCreated, w.Code, "response body: %s", w.Body.String())
	w = postJson(t, ts.handler, "/api/career", body)
	assert.Equal(t, http.StatusCreated, w.Code)

	assert.Len(t, ts.repos[form.FormTypeCareer].All(), 2)
}

func TestSubmitSucceedsWhenMailTransportIsDown(t *testing.T) {
	ts := setupServer(t)
	ts.sender.fail = true

	w := postJson(t, ts.handler, "/api/contact", validContactBody())
	assert.Equal(t, http.StatusCreated, w.Code,
		"persistence decides the outcome, not notification delivery")
	assert.Len(t, ts.repos[form.FormTypeContact].All(), 1)
}

func TestMethodNotAllowed(t *testing.T) {
	ts := setupServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/contact", nil)
	w := httptest.NewRecorder()
	ts.handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	resp := decodeEnvelope(t, w)
	assert.False(t, resp.IsSuccess)
	assert.Equal(t, "Only Post Method Is Allowed", resp.Message)
}

func TestMalformedJsonBody(t *testing.T) {
	ts := setupServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/contact",
		strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ts.handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	assert.False(t, resp.IsSuccess)
	assert.Empty(t, ts.repos[form.FormTypeContact].All())
}
