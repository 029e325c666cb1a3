package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Owhab/nexacms-sub002/internal/platform/apierr"
)

func serve(t *testing.T, fn gin.HandlerFunc) (*httptest.ResponseRecorder, ErrorBody) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", fn)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
	var body ErrorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v (%s)", err, rec.Body.String())
	}
	return rec, body
}

func TestRespondAPIErrorUsesStatusAndDetails(t *testing.T) {
	rec, body := serve(t, func(c *gin.Context) {
		RespondAPIError(c, apierr.BadRequest("INVALID_PARENT", "parent missing").
			WithDetails(apierr.Detail{Field: "items[0].parentId", Message: "parent not found"}))
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if body.Error != "INVALID_PARENT" || body.Message != "parent missing" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if len(body.Details) != 1 || body.Details[0].Field != "items[0].parentId" {
		t.Fatalf("unexpected details: %+v", body.Details)
	}
}

func TestRespondAPIErrorHidesUnknownErrors(t *testing.T) {
	rec, body := serve(t, func(c *gin.Context) {
		RespondAPIError(c, errors.New("pq: connection refused"))
	})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if body.Error != CodeInternal || body.Message != "internal server error" {
		t.Fatalf("unexpected body: %+v", body)
	}
}
