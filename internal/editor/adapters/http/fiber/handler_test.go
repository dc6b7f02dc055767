package fiber

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"proposal-insights-service/internal/editor/core/domain"
	"proposal-insights-service/internal/editor/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type fakeFieldSetUseCase struct {
	LoadFn     func(ctx context.Context, slideID string) ([]domain.FieldDef, error)
	SaveFn     func(ctx context.Context, slideID string, fields []domain.FieldDef) error
	lastSaved  []domain.FieldDef
	lastSlide  string
	saveCalled bool
}

func (f *fakeFieldSetUseCase) Load(ctx context.Context, slideID string) ([]domain.FieldDef, error) {
	if f.LoadFn != nil {
		return f.LoadFn(ctx, slideID)
	}
	return nil, nil
}

func (f *fakeFieldSetUseCase) Save(ctx context.Context, slideID string, fields []domain.FieldDef) error {
	f.saveCalled = true
	f.lastSlide = slideID
	f.lastSaved = fields
	if f.SaveFn != nil {
		return f.SaveFn(ctx, slideID, fields)
	}
	return nil
}

func setupTestApp(uc FieldSetUseCase) *fiber.App {
	app := fiber.New()
	h := NewFieldHandler(uc)

	app.Get("/slides/:slideID/fields", h.GetFields)
	app.Put("/slides/:slideID/fields", h.SaveFields)
	app.Post("/preview", h.Preview)

	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		buf = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	_ = resp.Body.Close()

	return resp, respBody
}

func sampleDTO() FieldDTO {
	return FieldDTO{
		ID: "f1", Name: "client_name", Label: "Client Name", Type: "text",
		X: 10, Y: 20, Width: 30, Height: 5,
		FontSize: 16, FontFamily: "body", FontWeight: "normal",
		Color: "#1a1a1a", TextAlign: "left",
	}
}

func TestGetFields_Success(t *testing.T) {
	fakeUC := &fakeFieldSetUseCase{
		LoadFn: func(ctx context.Context, slideID string) ([]domain.FieldDef, error) {
			if slideID != "slide-1" {
				t.Fatalf("expected slide-1, got %s", slideID)
			}
			return []domain.FieldDef{{ID: "f1", Name: "client_name", Type: "text", Width: 30, Height: 5}}, nil
		},
	}

	app := setupTestApp(fakeUC)
	resp, body := doRequest(t, app, http.MethodGet, "/slides/slide-1/fields", nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusOK, resp.StatusCode, string(body))
	}

	var out FieldsResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if len(out.Fields) != 1 || out.Fields[0].ID != "f1" {
		t.Fatalf("unexpected response: %+v", out)
	}
}

func TestSaveFields_Success(t *testing.T) {
	fakeUC := &fakeFieldSetUseCase{}
	app := setupTestApp(fakeUC)

	resp, body := doRequest(t, app, http.MethodPut, "/slides/slide-1/fields",
		SaveFieldsRequest{Fields: []FieldDTO{sampleDTO()}})

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusOK, resp.StatusCode, string(body))
	}

	var out SaveFieldsResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if !out.Success || out.Error != "" {
		t.Fatalf("unexpected response: %+v", out)
	}
	if !fakeUC.saveCalled || fakeUC.lastSlide != "slide-1" || len(fakeUC.lastSaved) != 1 {
		t.Fatalf("usecase not invoked as expected: %+v", fakeUC)
	}
}

func TestSaveFields_ValidationError(t *testing.T) {
	fakeUC := &fakeFieldSetUseCase{
		SaveFn: func(ctx context.Context, slideID string, fields []domain.FieldDef) error {
			return usecase.ErrInvalidFieldSet
		},
	}
	app := setupTestApp(fakeUC)

	resp, body := doRequest(t, app, http.MethodPut, "/slides/slide-1/fields",
		SaveFieldsRequest{Fields: []FieldDTO{sampleDTO()}})

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusBadRequest, resp.StatusCode, string(body))
	}

	var respJSON map[string]any
	if err := json.Unmarshal(body, &respJSON); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if respJSON["error"] != "invalid_field_set" {
		t.Errorf("expected error=invalid_field_set, got %v", respJSON["error"])
	}
}

func TestSaveFields_PersistenceErrorVerbatim(t *testing.T) {
	fakeUC := &fakeFieldSetUseCase{
		SaveFn: func(ctx context.Context, slideID string, fields []domain.FieldDef) error {
			return errors.New("disk full")
		},
	}
	app := setupTestApp(fakeUC)

	resp, body := doRequest(t, app, http.MethodPut, "/slides/slide-1/fields",
		SaveFieldsRequest{Fields: []FieldDTO{sampleDTO()}})

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusInternalServerError, resp.StatusCode, string(body))
	}

	var out SaveFieldsResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if out.Success {
		t.Fatal("expected success=false")
	}
	if out.Error != "disk full" {
		t.Fatalf("persistence error must travel verbatim, got %q", out.Error)
	}
}

func TestSaveFields_InvalidJSON(t *testing.T) {
	fakeUC := &fakeFieldSetUseCase{}
	app := setupTestApp(fakeUC)

	req := httptest.NewRequest(http.MethodPut, "/slides/slide-1/fields", bytes.NewBufferString(`{"fields":`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
	if fakeUC.saveCalled {
		t.Fatal("usecase must not run on malformed input")
	}
}

func TestPreview_ResolvesValuesAndSamples(t *testing.T) {
	fakeUC := &fakeFieldSetUseCase{}
	app := setupTestApp(fakeUC)

	payload := map[string]any{
		"fields": []FieldDTO{
			{ID: "f1", Label: "Client", Type: "text", AutoFill: domain.AutoFillClientName},
			{ID: "f2", Label: "Notes", Type: "text"},
		},
		"values": map[string]string{},
	}

	resp, body := doRequest(t, app, http.MethodPost, "/preview", payload)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusOK, resp.StatusCode, string(body))
	}

	var out PreviewResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if len(out.Fields) != 2 {
		t.Fatalf("expected 2 projected fields, got %d", len(out.Fields))
	}
	if out.Fields[0].Placeholder {
		t.Fatal("auto-fill field must resolve from the sample catalog")
	}
	if !out.Fields[1].Placeholder || out.Fields[1].Text != "Notes" {
		t.Fatalf("unbound field must fall back to its label, got %+v", out.Fields[1])
	}
}

func TestPreview_TableGrid(t *testing.T) {
	fakeUC := &fakeFieldSetUseCase{}
	app := setupTestApp(fakeUC)

	payload := map[string]any{
		"fields": []FieldDTO{{ID: "t1", Label: "Fees", Type: "table"}},
		"values": map[string]string{"t1": "A | B\nC | D"},
	}

	resp, body := doRequest(t, app, http.MethodPost, "/preview", payload)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusOK, resp.StatusCode, string(body))
	}

	var out PreviewResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if len(out.Fields[0].Rows) != 2 || out.Fields[0].Rows[0][1] != "B" {
		t.Fatalf("unexpected grid: %+v", out.Fields[0].Rows)
	}
}

func TestPreview_NonArrayFieldsTreatedAsEmpty(t *testing.T) {
	fakeUC := &fakeFieldSetUseCase{}
	app := setupTestApp(fakeUC)

	payload := map[string]any{
		"fields": map[string]string{"oops": "not an array"},
		"values": map[string]string{},
	}

	resp, body := doRequest(t, app, http.MethodPost, "/preview", payload)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("a malformed field set must not error, got %d (body: %s)", resp.StatusCode, string(body))
	}

	var out PreviewResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if len(out.Fields) != 0 {
		t.Fatalf("expected empty projection, got %+v", out.Fields)
	}
}
