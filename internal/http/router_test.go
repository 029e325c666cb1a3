package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/Owhab/nexacms-sub002/internal/domain"
	httpH "github.com/Owhab/nexacms-sub002/internal/http/handlers"
	httpMW "github.com/Owhab/nexacms-sub002/internal/http/middleware"
	"github.com/Owhab/nexacms-sub002/internal/platform/ctxutil"
	"github.com/Owhab/nexacms-sub002/internal/platform/logger"
	"github.com/Owhab/nexacms-sub002/internal/services"
)

type stubAuth struct{}

func (stubAuth) RegisterUser(context.Context, services.RegisterInput) (*types.User, error) {
	return nil, errors.New("not implemented")
}

func (stubAuth) LoginUser(context.Context, string, string) (string, error) {
	return "", errors.New("not implemented")
}

func (stubAuth) SetContextFromToken(ctx context.Context, token string) (context.Context, error) {
	if token != "admin" {
		return ctx, errors.New("bad token")
	}
	return ctxutil.WithRequestData(ctx, &ctxutil.RequestData{UserID: uuid.New(), Role: types.RoleAdmin}), nil
}

func (stubAuth) GetAccessTTL() time.Duration { return time.Hour }

func TestRouterGuardsAdminRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(RouterConfig{
		Log:            logger.Nop(),
		AuthMiddleware: httpMW.NewAuthMiddleware(logger.Nop(), stubAuth{}),
		HealthHandler:  httpH.NewHealthHandler(nil),
		HeroHandler:    httpH.NewHeroHandler(services.NewHeroService(logger.Nop(), nil, nil, nil, nil, nil)),
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("healthcheck: %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/hero/variants", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/hero/variants", nil)
	req.Header.Set("Authorization", "Bearer admin")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for an admin, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get(httpMW.HeaderTraceID) == "" {
		t.Fatalf("expected trace id header")
	}
}
