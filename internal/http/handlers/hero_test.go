package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Owhab/nexacms-sub002/internal/data/repos"
	"github.com/Owhab/nexacms-sub002/internal/data/repos/testutil"
	"github.com/Owhab/nexacms-sub002/internal/modules/hero/schema"
	"github.com/Owhab/nexacms-sub002/internal/modules/hero/validation"
	"github.com/Owhab/nexacms-sub002/internal/services"
)

func newHeroRouter(t *testing.T) *gin.Engine {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	h := NewHeroHandler(services.NewHeroService(log, repos.NewHeroSectionRepo(db, log), nil, nil, nil, nil))
	r := gin.New()
	r.GET("/hero/variants", h.Variants)
	r.GET("/hero/compatibility", h.Compatibility)
	r.POST("/hero/validate", h.Validate)
	r.POST("/hero/media/validate", h.ValidateMedia)
	r.GET("/hero/sections", h.List)
	r.GET("/hero/sections/:id", h.Get)
	r.PUT("/hero/sections/:id", h.Put)
	r.PATCH("/hero/sections/:id/fields", h.PatchField)
	r.POST("/hero/sections/:id/migrate", h.Migrate)
	r.POST("/hero/sections/:id/duplicate", h.Duplicate)
	return r
}

func heroBody(t *testing.T, v schema.Variant, id string) map[string]any {
	t.Helper()
	p, err := schema.DefaultRegistry().Defaults(v)
	if err != nil {
		t.Fatalf("Defaults(%s): %v", v, err)
	}
	p.Common().ID = id
	m, err := schema.ToMap(p)
	if err != nil {
		t.Fatalf("ToMap: %v", err)
	}
	return m
}

func hasFindingCode(list any, code validation.Code) bool {
	items, _ := list.([]any)
	for _, it := range items {
		if m, ok := it.(map[string]any); ok && m["code"] == string(code) {
			return true
		}
	}
	return false
}

func TestHeroCatalogueEndpoints(t *testing.T) {
	r := newHeroRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/hero/variants", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("variants: %d %s", rec.Code, rec.Body.String())
	}
	variants, _ := decodeBody(t, rec)["variants"].([]any)
	if len(variants) != len(schema.AllVariants) {
		t.Fatalf("expected %d variants, got %d", len(schema.AllVariants), len(variants))
	}
	first, _ := variants[0].(map[string]any)
	if fields, _ := first["fields"].([]any); len(fields) == 0 {
		t.Fatalf("expected field definitions on %v", first["variant"])
	}

	rec = doJSON(t, r, http.MethodGet, "/hero/compatibility?from=minimal&to=centered", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("compatibility: %d %s", rec.Code, rec.Body.String())
	}
	if _, ok := decodeBody(t, rec)["report"].(map[string]any); !ok {
		t.Fatalf("missing report: %s", rec.Body.String())
	}

	rec = doJSON(t, r, http.MethodGet, "/hero/compatibility?from=minimal&to=carousel", nil)
	expectError(t, rec, http.StatusBadRequest, services.CodeInvalidVariant)
}

func TestHeroValidateEndpoint(t *testing.T) {
	r := newHeroRouter(t)

	body := heroBody(t, schema.VariantCentered, "home")
	body["title"] = map[string]any{"text": "<script>alert(1)</script>", "tag": "h1"}
	rec := doJSON(t, r, http.MethodPost, "/hero/validate", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("validate: %d %s", rec.Code, rec.Body.String())
	}
	res := decodeBody(t, rec)
	if res["isValid"] != false || !hasFindingCode(res["errors"], validation.CodeMaliciousContent) {
		t.Fatalf("expected MALICIOUS_CONTENT, got %s", rec.Body.String())
	}

	rec = doJSON(t, r, http.MethodPost, "/hero/validate", []any{
		heroBody(t, schema.VariantMinimal, "a"),
		heroBody(t, schema.VariantGallery, "b"),
	})
	results, _ := decodeBody(t, rec)["results"].([]any)
	if len(results) != 2 {
		t.Fatalf("expected two results, got %s", rec.Body.String())
	}

	rec = doJSON(t, r, http.MethodPost, "/hero/validate", "{not json")
	expectError(t, rec, http.StatusBadRequest, CodeInvalidRequest)
}

func TestHeroSectionLifecycle(t *testing.T) {
	r := newHeroRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/hero/sections/home", nil)
	expectError(t, rec, http.StatusNotFound, services.CodeHeroNotFound)

	rec = doJSON(t, r, http.MethodPut, "/hero/sections/home", heroBody(t, schema.VariantMinimal, "home"))
	if rec.Code != http.StatusOK {
		t.Fatalf("put: %d %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, r, http.MethodPut, "/hero/sections/home", heroBody(t, schema.VariantMinimal, "other"))
	expectError(t, rec, http.StatusBadRequest, services.CodeIDMismatch)

	bad := heroBody(t, schema.VariantMinimal, "home")
	bad["theme"] = map[string]any{"primaryColor": "not-a-color"}
	rec = doJSON(t, r, http.MethodPut, "/hero/sections/home", bad)
	failed := expectError(t, rec, http.StatusBadRequest, services.CodeValidationFailed)
	if !hasFindingCode(failed["errors"], validation.CodeInvalidColor) {
		t.Fatalf("expected INVALID_COLOR among %v", failed["errors"])
	}

	rec = doJSON(t, r, http.MethodPatch, "/hero/sections/home/fields", map[string]any{
		"path":  "title.text",
		"value": "Launch day",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("patch: %d %s", rec.Code, rec.Body.String())
	}
	if got := decodeBody(t, rec)["value"]; got != "Launch day" {
		t.Fatalf("patched value = %v, want %q", got, "Launch day")
	}
	rec = doJSON(t, r, http.MethodPatch, "/hero/sections/home/fields", map[string]any{"path": "variant", "value": "video"})
	expectError(t, rec, http.StatusBadRequest, services.CodeReadOnlyField)

	rec = doJSON(t, r, http.MethodGet, "/hero/sections/home", nil)
	section, _ := decodeBody(t, rec)["section"].(map[string]any)
	props, _ := section["props"].(map[string]any)
	title, _ := props["title"].(map[string]any)
	if title["text"] != "Launch day" || section["version"] != float64(2) {
		t.Fatalf("unexpected stored section: %s", rec.Body.String())
	}

	rec = doJSON(t, r, http.MethodPost, "/hero/sections/home/migrate", map[string]any{"targetVariant": "centered"})
	if rec.Code != http.StatusOK {
		t.Fatalf("migrate preview: %d %s", rec.Code, rec.Body.String())
	}
	preview := decodeBody(t, rec)
	if preview["applied"] != false || preview["preview"] == nil {
		t.Fatalf("expected a preview, got %s", rec.Body.String())
	}

	rec = doJSON(t, r, http.MethodPost, "/hero/sections/home/migrate", map[string]any{
		"targetVariant": "centered",
		"strategy":      "conservative",
		"apply":         true,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("migrate apply: %d %s", rec.Code, rec.Body.String())
	}
	if decodeBody(t, rec)["applied"] != true {
		t.Fatalf("expected migration to apply: %s", rec.Body.String())
	}

	rec = doJSON(t, r, http.MethodPost, "/hero/sections/home/migrate", map[string]any{})
	expectError(t, rec, http.StatusBadRequest, CodeInvalidRequest)

	rec = doJSON(t, r, http.MethodPost, "/hero/sections/home/duplicate", map[string]any{"id": "home-b"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("duplicate: %d %s", rec.Code, rec.Body.String())
	}
	rec = doJSON(t, r, http.MethodPost, "/hero/sections/home/duplicate", map[string]any{"id": "home-b"})
	expectError(t, rec, http.StatusConflict, services.CodeHeroExists)

	rec = doJSON(t, r, http.MethodGet, "/hero/sections?variant=centered", nil)
	if rows, _ := decodeBody(t, rec)["sections"].([]any); len(rows) != 2 {
		t.Fatalf("expected two centered sections, got %s", rec.Body.String())
	}
	rec = doJSON(t, r, http.MethodGet, "/hero/sections?limit=abc", nil)
	expectError(t, rec, http.StatusBadRequest, CodeInvalidRequest)
}

func TestHeroMediaValidateEndpoint(t *testing.T) {
	r := newHeroRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/hero/media/validate", nil)
	expectError(t, rec, http.StatusBadRequest, CodeInvalidRequest)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", "payload.exe")
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	_, _ = part.Write([]byte("MZ this is not an image"))
	_ = w.WriteField("mediaType", "image")
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/hero/media/validate", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("media validate: %d %s", rec.Code, rec.Body.String())
	}
	res := decodeBody(t, rec)
	if res["isValid"] != false {
		t.Fatalf("expected the upload to be rejected: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), string(validation.CodeInvalidFileType)) {
		t.Fatalf("expected INVALID_FILE_TYPE: %s", rec.Body.String())
	}
}
