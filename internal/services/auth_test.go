package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/yungbote/creatorhub-backend/internal/platform/apierr"
	"github.com/yungbote/creatorhub-backend/internal/platform/ctxutil"
)

func wantAPIStatus(t *testing.T, err error, status int, code string) {
	t.Helper()
	ae, ok := apierr.As(err)
	if !ok {
		t.Fatalf("expected api error %d/%s, got %v", status, code, err)
	}
	if ae.Status != status || (code != "" && ae.Code != code) {
		t.Fatalf("api error: want=%d/%s got=%d/%s (%v)", status, code, ae.Status, ae.Code, ae)
	}
}

func TestAuthSignupSigninAndTokens(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	res, err := env.auth.Signup(ctx, SignupInput{Name: " Casey ", Email: " Casey@Example.com ", Password: "hunter22"})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if res.User.Email != "casey@example.com" || res.User.Name != "Casey" {
		t.Fatalf("signup user: %+v", res.User)
	}
	if res.Token == "" || res.RefreshToken == "" {
		t.Fatalf("signup should issue tokens: %+v", res)
	}
	if res.User.Password == "hunter22" {
		t.Fatalf("password must be hashed")
	}

	_, err = env.auth.Signup(ctx, SignupInput{Name: "Other", Email: "casey@example.com", Password: "pw"})
	wantAPIStatus(t, err, http.StatusBadRequest, "email_taken")

	_, err = env.auth.Signup(ctx, SignupInput{Name: "", Email: "x@example.com", Password: "pw"})
	wantAPIStatus(t, err, http.StatusBadRequest, "validation")

	_, err = env.auth.Signin(ctx, "casey@example.com", "wrong")
	wantAPIStatus(t, err, http.StatusUnauthorized, "invalid_credentials")
	_, err = env.auth.Signin(ctx, "nobody@example.com", "hunter22")
	wantAPIStatus(t, err, http.StatusUnauthorized, "invalid_credentials")

	signin, err := env.auth.Signin(ctx, "CASEY@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Signin: %v", err)
	}
	if signin.Token == res.Token {
		t.Fatalf("signin should issue a new access token")
	}

	authed, err := env.auth.SetContextFromToken(ctx, signin.Token)
	if err != nil {
		t.Fatalf("SetContextFromToken: %v", err)
	}
	rd := ctxutil.GetRequestData(authed)
	if rd == nil || rd.UserID != res.User.ID || rd.RefreshToken != signin.RefreshToken {
		t.Fatalf("request data: %+v", rd)
	}

	_, err = env.auth.SetContextFromToken(ctx, "not-a-jwt")
	wantAPIStatus(t, err, http.StatusUnauthorized, "unauthorized")
}

func TestAuthRefreshRotatesAndLogoutRevokes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	res, err := env.auth.Signup(ctx, SignupInput{Name: "Rae", Email: "rae@example.com", Password: "pw123456"})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}

	rotated, err := env.auth.Refresh(ctx, res.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if rotated.RefreshToken == res.RefreshToken || rotated.Token == res.Token {
		t.Fatalf("refresh should rotate both tokens")
	}
	_, err = env.auth.Refresh(ctx, res.RefreshToken)
	wantAPIStatus(t, err, http.StatusUnauthorized, "invalid_refresh_token")

	_, err = env.auth.SetContextFromToken(ctx, res.Token)
	wantAPIStatus(t, err, http.StatusUnauthorized, "unauthorized")

	authed, err := env.auth.SetContextFromToken(ctx, rotated.Token)
	if err != nil {
		t.Fatalf("SetContextFromToken rotated: %v", err)
	}
	if err := env.auth.Logout(authed); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	_, err = env.auth.SetContextFromToken(ctx, rotated.Token)
	wantAPIStatus(t, err, http.StatusUnauthorized, "unauthorized")

	err = env.auth.Logout(ctx)
	wantAPIStatus(t, err, http.StatusUnauthorized, "unauthorized")
}

func TestUserGetMe(t *testing.T) {
	env := newTestEnv(t)
	u, ctx := env.seedUser(t, "me@example.com")

	if _, err := env.usage.Increment(ctx, "random_idea"); err != nil {
		t.Fatalf("Increment: %v", err)
	}
	me, err := env.users.GetMe(ctx)
	if err != nil {
		t.Fatalf("GetMe: %v", err)
	}
	if me.ID != u.ID || me.Email != "me@example.com" || me.RandomIdeaCount != 1 {
		t.Fatalf("me: %+v", me)
	}

	_, err = env.users.GetMe(context.Background())
	wantAPIStatus(t, err, http.StatusUnauthorized, "")
}
