package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/Owhab/nexacms-sub002/internal/data/repos"
	"github.com/Owhab/nexacms-sub002/internal/data/repos/testutil"
	types "github.com/Owhab/nexacms-sub002/internal/domain"
	"github.com/Owhab/nexacms-sub002/internal/platform/apierr"
	"github.com/Owhab/nexacms-sub002/internal/platform/ctxutil"
)

func newAuthService(t *testing.T) *authService {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	return NewAuthService(log, repos.NewUserRepo(db, log), "test-secret", time.Hour).(*authService)
}

func expectStatus(t *testing.T, err error, status int, code string) {
	t.Helper()
	ae, ok := apierr.As(err)
	if !ok {
		t.Fatalf("expected *apierr.Error, got %v", err)
	}
	if ae.Status != status || ae.Code != code {
		t.Fatalf("expected %d %s, got %d %s (%v)", status, code, ae.Status, ae.Code, err)
	}
}

func TestAuthLoginRoundTrip(t *testing.T) {
	as := newAuthService(t)
	ctx := context.Background()

	user, err := as.RegisterUser(ctx, RegisterInput{Email: "Admin@Example.com", Password: "correct horse", Role: types.RoleAdmin})
	if err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	if user.Password == "correct horse" {
		t.Fatalf("password stored in clear text")
	}

	token, err := as.LoginUser(ctx, "admin@example.com", "correct horse")
	if err != nil {
		t.Fatalf("LoginUser: %v", err)
	}
	authed, err := as.SetContextFromToken(ctx, token)
	if err != nil {
		t.Fatalf("SetContextFromToken: %v", err)
	}
	rd := ctxutil.GetRequestData(authed)
	if rd == nil || rd.UserID != user.ID || !rd.IsAdmin() {
		t.Fatalf("unexpected request data: %+v", rd)
	}
}

func TestAuthRejectsBadCredentials(t *testing.T) {
	as := newAuthService(t)
	ctx := context.Background()
	if _, err := as.RegisterUser(ctx, RegisterInput{Email: "editor@example.com", Password: "long enough"}); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}

	_, err := as.LoginUser(ctx, "editor@example.com", "wrong password")
	expectStatus(t, err, http.StatusUnauthorized, CodeInvalidCredentials)

	_, err = as.LoginUser(ctx, "nobody@example.com", "long enough")
	expectStatus(t, err, http.StatusUnauthorized, CodeInvalidCredentials)

	_, err = as.RegisterUser(ctx, RegisterInput{Email: "editor@example.com", Password: "long enough"})
	expectStatus(t, err, http.StatusConflict, CodeEmailTaken)

	_, err = as.RegisterUser(ctx, RegisterInput{Email: "short@example.com", Password: "short"})
	expectStatus(t, err, http.StatusBadRequest, "INVALID_REQUEST")
}

func TestAuthRejectsBadTokens(t *testing.T) {
	as := newAuthService(t)
	ctx := context.Background()
	if _, err := as.RegisterUser(ctx, RegisterInput{Email: "a@example.com", Password: "long enough"}); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	token, err := as.LoginUser(ctx, "a@example.com", "long enough")
	if err != nil {
		t.Fatalf("LoginUser: %v", err)
	}

	_, err = as.SetContextFromToken(ctx, token+"x")
	expectStatus(t, err, http.StatusUnauthorized, CodeUnauthorized)

	_, err = as.SetContextFromToken(ctx, "not-a-jwt")
	expectStatus(t, err, http.StatusUnauthorized, CodeUnauthorized)

	as.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = as.SetContextFromToken(ctx, token)
	expectStatus(t, err, http.StatusUnauthorized, CodeUnauthorized)
}
