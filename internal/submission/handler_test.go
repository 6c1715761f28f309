package submission_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"skillmatrix-backend/internal/bootstrap"
	"skillmatrix-backend/internal/shared/config"
)

func newTestApp(t *testing.T, gatewayURL string) *bootstrap.App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		LocalStoreDir:   t.TempDir(),
		Env:             "dev",
		ObjectStoreType: "local",
		MatchAPIURL:     gatewayURL,
		MatchTimeout:    time.Second,
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app
}

func newGateway(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"POST Response": [{"Resume Data": {"Name": "Alice", "Matching Percentage": "87%"}}]}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func submitBody(t *testing.T, resumes, jobDescriptions []string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, name := range resumes {
		fw, err := writer.CreateFormFile("resumes", name)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write([]byte("%PDF-1.4 " + name)); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	for _, name := range jobDescriptions {
		fw, err := writer.CreateFormFile("job_description", name)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write([]byte("%PDF-1.4 " + name)); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func TestSubmitEndToEnd(t *testing.T) {
	gateway := newGateway(t)
	app := newTestApp(t, gateway.URL)

	body, contentType := submitBody(t, []string{"alice.pdf"}, []string{"backend.pdf"})
	req := httptest.NewRequest(http.MethodPost, "/api/submit", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var submitted struct {
		Message string `json:"message"`
		Results []struct {
			Resume         string `json:"resume"`
			JobDescription string `json:"jobDescription"`
			MatchingResult any    `json:"matchingResult"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&submitted); err != nil {
		t.Fatalf("decode submit response: %v", err)
	}
	if len(submitted.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(submitted.Results))
	}
	if submitted.Results[0].Resume != "alice.pdf" || submitted.Results[0].JobDescription != "backend.pdf" {
		t.Fatalf("unexpected result pair: %+v", submitted.Results[0])
	}
	if submitted.Results[0].MatchingResult == nil {
		t.Fatal("expected matching result in response")
	}

	// The stored record is visible on the read surface.
	reqList := httptest.NewRequest(http.MethodGet, "/api/candidate-filtering", nil)
	respList := httptest.NewRecorder()
	app.Router.ServeHTTP(respList, reqList)

	if respList.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respList.Code)
	}
	var records []struct {
		ID     string `json:"id"`
		Resume struct {
			Filename string `json:"filename"`
		} `json:"resume"`
	}
	if err := json.NewDecoder(respList.Body).Decode(&records); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(records) != 1 || records[0].Resume.Filename != "alice.pdf" {
		t.Fatalf("unexpected records: %+v", records)
	}

	// The uploaded resume is mirrored for static serving.
	reqLocal := httptest.NewRequest(http.MethodGet, "/api/local-resumes", nil)
	respLocal := httptest.NewRecorder()
	app.Router.ServeHTTP(respLocal, reqLocal)

	if respLocal.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respLocal.Code)
	}
	var local struct {
		Resumes []struct {
			Filename string `json:"filename"`
			Path     string `json:"path"`
		} `json:"resumes"`
	}
	if err := json.NewDecoder(respLocal.Body).Decode(&local); err != nil {
		t.Fatalf("decode local resumes: %v", err)
	}
	if len(local.Resumes) != 1 || local.Resumes[0].Filename != "alice.pdf" {
		t.Fatalf("unexpected local resumes: %+v", local.Resumes)
	}
}

func TestSubmitRejectsMissingJobDescriptions(t *testing.T) {
	gateway := newGateway(t)
	app := newTestApp(t, gateway.URL)

	body, contentType := submitBody(t, []string{"alice.pdf"}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/submit", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestSubmitRejectsOversizedUpload(t *testing.T) {
	gateway := newGateway(t)
	app := newTestApp(t, gateway.URL)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	fw, err := writer.CreateFormFile("resumes", "huge.pdf")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(make([]byte, 32<<20+1)); err != nil {
		t.Fatalf("write file: %v", err)
	}
	fw, err = writer.CreateFormFile("job_description", "backend.pdf")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte("%PDF-1.4 jd")); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/submit", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected status 413, got %d", resp.Code)
	}

	// Nothing was stored or mirrored; a truncated prefix must never
	// survive a rejected upload.
	reqLocal := httptest.NewRequest(http.MethodGet, "/api/local-resumes", nil)
	respLocal := httptest.NewRecorder()
	app.Router.ServeHTTP(respLocal, reqLocal)
	if respLocal.Code != http.StatusNotFound {
		t.Fatalf("expected empty mirror 404, got %d", respLocal.Code)
	}
}

func TestSubmitStoresFreshDocumentsPerBatch(t *testing.T) {
	calls := 0
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"POST Response": [{"Resume Data": {"Matching Percentage": "42%"}}]}`))
	}))
	t.Cleanup(gateway.Close)
	app := newTestApp(t, gateway.URL)

	for i := 0; i < 2; i++ {
		body, contentType := submitBody(t, []string{"alice.pdf"}, []string{"backend.pdf"})
		req := httptest.NewRequest(http.MethodPost, "/api/submit", body)
		req.Header.Set("Content-Type", contentType)
		resp := httptest.NewRecorder()
		app.Router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("submit %d: expected status 200, got %d", i, resp.Code)
		}
	}

	// Each submission stores fresh documents, so both rounds score; the
	// pair guard applies to stored document ids, not filenames.
	if calls != 2 {
		t.Fatalf("gateway calls = %d, want 2", calls)
	}

	reqList := httptest.NewRequest(http.MethodGet, "/api/candidate-filtering", nil)
	respList := httptest.NewRecorder()
	app.Router.ServeHTTP(respList, reqList)
	var records []json.RawMessage
	if err := json.NewDecoder(respList.Body).Decode(&records); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
}
