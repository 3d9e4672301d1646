package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yungbote/creatorhub-backend/internal/data/aggregates"
	"github.com/yungbote/creatorhub-backend/internal/data/repos"
	types "github.com/yungbote/creatorhub-backend/internal/domain"
	"github.com/yungbote/creatorhub-backend/internal/domain/planner"
	"github.com/yungbote/creatorhub-backend/internal/platform/apierr"
	"github.com/yungbote/creatorhub-backend/internal/platform/ctxutil"
	"github.com/yungbote/creatorhub-backend/internal/platform/dbctx"
	"github.com/yungbote/creatorhub-backend/internal/platform/logger"
)

var (
	errInvalidCredentials = apierr.Unauthorized("invalid_credentials", "Invalid email or password")
	errNotAuthorized      = apierr.Unauthorized("unauthorized", "Not authorized, token failed")
)

type JWTClaims struct {
	jwt.RegisteredClaims
}

type AuthConfig struct {
	JWTSecretKey string
	AccessTTL    time.Duration
	RefreshTTL   time.Duration
	BcryptCost   int
}

type SignupInput struct {
	Name     string
	Email    string
	Password string
}

// AuthResult is a freshly issued token pair and its owner.
type AuthResult struct {
	Token        string
	RefreshToken string
	User         *types.User
}

type AuthService interface {
	Signup(ctx context.Context, in SignupInput) (*AuthResult, error)
	Signin(ctx context.Context, email, password string) (*AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthResult, error)
	Logout(ctx context.Context) error
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
	GetAccessTTL() time.Duration
}

type authService struct {
	db            *gorm.DB
	log           *logger.Logger
	userRepo      repos.UserRepo
	userTokenRepo repos.UserTokenRepo
	cfg           AuthConfig
	clock         planner.Clock
}

func NewAuthService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo repos.UserRepo,
	userTokenRepo repos.UserTokenRepo,
	cfg AuthConfig,
	clock planner.Clock,
) AuthService {
	serviceLog := log.With("service", "AuthService")
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	if clock == nil {
		clock = planner.SystemClock
	}
	return &authService{
		db:            db,
		log:           serviceLog,
		userRepo:      userRepo,
		userTokenRepo: userTokenRepo,
		cfg:           cfg,
		clock:         clock,
	}
}

func (as *authService) Signup(ctx context.Context, in SignupInput) (*AuthResult, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if name == "" || email == "" || in.Password == "" {
		return nil, apierr.BadRequest("validation", "Please provide name, email, and password")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), as.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	var out *AuthResult
	err = as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		exists, err := as.userRepo.EmailExists(dbc, email)
		if err != nil {
			return fmt.Errorf("check email: %w", err)
		}
		if exists {
			return apierr.BadRequest("email_taken", "Email already registered")
		}
		now := as.clock()
		user := &types.User{
			ID:        uuid.New(),
			Name:      name,
			Email:     email,
			Password:  string(hashed),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if _, err := as.userRepo.Create(dbc, []*types.User{user}); err != nil {
			if aggregates.IsUniqueViolation(err) {
				return apierr.BadRequest("email_taken", "Email already registered")
			}
			return fmt.Errorf("create user: %w", err)
		}
		out, err = as.issue(dbc, user)
		return err
	})
	if err != nil {
		return nil, err
	}
	as.log.Info("User signed up", "user_id", out.User.ID)
	return out, nil
}

func (as *authService) Signin(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, apierr.BadRequest("validation", "Please provide email and password")
	}

	users, err := as.userRepo.GetByEmails(dbctx.Context{Ctx: ctx}, []string{email})
	if err != nil {
		return nil, fmt.Errorf("load user by email: %w", err)
	}
	if len(users) == 0 {
		return nil, errInvalidCredentials
	}
	user := users[0]
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, errInvalidCredentials
	}

	var out *AuthResult
	err = as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		if _, err := as.userTokenRepo.FullDeleteExpired(dbc, as.clock()); err != nil {
			return fmt.Errorf("prune expired tokens: %w", err)
		}
		out, err = as.issue(dbc, user)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Refresh rotates a token pair. The old pair stops working.
func (as *authService) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	refreshToken = strings.TrimSpace(refreshToken)
	if refreshToken == "" {
		return nil, apierr.BadRequest("validation", "Please provide refreshToken")
	}

	var out *AuthResult
	err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		found, err := as.userTokenRepo.GetByRefreshTokens(dbc, []string{refreshToken})
		if err != nil {
			return fmt.Errorf("load refresh token: %w", err)
		}
		if len(found) == 0 {
			return apierr.Unauthorized("invalid_refresh_token", "Invalid refresh token")
		}
		existing := found[0]
		if existing.ExpiresAt.Before(as.clock()) {
			return apierr.Unauthorized("refresh_token_expired", "Refresh token expired")
		}
		users, err := as.userRepo.GetByIDs(dbc, []uuid.UUID{existing.UserID})
		if err != nil {
			return fmt.Errorf("load user for refresh: %w", err)
		}
		if len(users) == 0 {
			return apierr.Unauthorized("invalid_refresh_token", "Invalid refresh token")
		}
		if err := as.userTokenRepo.FullDeleteByIDs(dbc, []uuid.UUID{existing.ID}); err != nil {
			return fmt.Errorf("delete old refresh token: %w", err)
		}
		out, err = as.issue(dbc, users[0])
		return err
	})
	if err != nil {
		var ae *apierr.Error
		if !errors.As(err, &ae) {
			as.log.Warn("Refresh failed", "error", err)
		}
		return nil, err
	}
	return out, nil
}

func (as *authService) Logout(ctx context.Context) error {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || rd.TokenString == "" {
		return errNotAuthorized
	}
	dbc := dbctx.Context{Ctx: ctx}
	found, err := as.userTokenRepo.GetByAccessTokens(dbc, []string{rd.TokenString})
	if err != nil {
		return fmt.Errorf("load user token: %w", err)
	}
	if len(found) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(found))
	for _, t := range found {
		ids = append(ids, t.ID)
	}
	if err := as.userTokenRepo.FullDeleteByIDs(dbc, ids); err != nil {
		return fmt.Errorf("delete user token: %w", err)
	}
	return nil
}

// SetContextFromToken validates an access token and attaches the caller to ctx.
// Tokens revoked by logout or rotation are rejected.
func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return ctx, errNotAuthorized
	}
	parsed, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(as.cfg.JWTSecretKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(as.clock),
	)
	if err != nil {
		return ctx, apierr.New(http.StatusUnauthorized, "unauthorized", fmt.Errorf("Not authorized, token failed: %w", err))
	}
	claims, ok := parsed.Claims.(*JWTClaims)
	if !ok || !parsed.Valid {
		return ctx, errNotAuthorized
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, errNotAuthorized
	}

	found, err := as.userTokenRepo.GetByAccessTokens(dbctx.Context{Ctx: ctx}, []string{tokenString})
	if err != nil {
		return ctx, fmt.Errorf("load user token: %w", err)
	}
	if len(found) == 0 || found[0].UserID != userID {
		return ctx, errNotAuthorized
	}

	rd := &ctxutil.RequestData{
		TokenString:  tokenString,
		RefreshToken: found[0].RefreshToken,
		UserID:       userID,
	}
	return ctxutil.WithRequestData(ctx, rd), nil
}

func (as *authService) GetAccessTTL() time.Duration {
	return as.cfg.AccessTTL
}

func (as *authService) issue(dbc dbctx.Context, user *types.User) (*AuthResult, error) {
	now := as.clock()
	access, err := as.generateAccessToken(user, now)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	token := &types.UserToken{
		ID:           uuid.New(),
		UserID:       user.ID,
		AccessToken:  access,
		RefreshToken: uuid.NewString(),
		ExpiresAt:    now.Add(as.cfg.RefreshTTL),
	}
	if _, err := as.userTokenRepo.Create(dbc, []*types.UserToken{token}); err != nil {
		return nil, fmt.Errorf("create user token: %w", err)
	}
	return &AuthResult{Token: access, RefreshToken: token.RefreshToken, User: user}, nil
}

func (as *authService) generateAccessToken(user *types.User, now time.Time) (string, error) {
	claims := JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(as.cfg.AccessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(as.cfg.JWTSecretKey))
}
