package service

import (
	"context"
	"time"

	"legalconnect/core/cache"
	"legalconnect/core/config"
	"legalconnect/core/constants"
	"legalconnect/core/errors"
	"legalconnect/core/logger"
	"legalconnect/core/utils"
	"legalconnect/modules/scheduling/dto"
	"legalconnect/modules/scheduling/entity"
	"legalconnect/modules/scheduling/repository"
	userrepository "legalconnect/modules/user/repository"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

type OAuthServiceInterface interface {
	BuildAuthorizationURL(ctx context.Context, userID uuid.UUID) (*dto.AuthorizationURLResponse, *errors.AppError)
	HandleCallback(ctx context.Context, code, state string) (*dto.CallbackResultResponse, *errors.AppError)
	GetTokenStatus(ctx context.Context, userID uuid.UUID) (*dto.TokenStatusResponse, *errors.AppError)
	GetValidAccessToken(ctx context.Context, userID uuid.UUID) (string, *errors.AppError)
	CheckAndRefreshAccessToken(ctx context.Context, userID uuid.UUID) bool
	DisconnectCalendar(ctx context.Context, userID uuid.UUID) *errors.AppError
}

// OAuthService owns the Google OAuth handshake and the stored token
// lifecycle. All other components obtain access tokens through it and never
// touch the token rows directly.
type OAuthService struct {
	conf        *oauth2.Config
	frontendURL string
	repo        repository.SchedulingRepositoryInterface
	userRepo    userrepository.UserRepositoryInterface
	cache       cache.Cache
	now         func() time.Time
}

func NewOAuthService(
	googleCfg config.GoogleAPIConfig,
	frontendURL string,
	repo repository.SchedulingRepositoryInterface,
	userRepo userrepository.UserRepositoryInterface,
	cacheStore cache.Cache,
) *OAuthService {
	return &OAuthService{
		conf: &oauth2.Config{
			ClientID:     googleCfg.ClientID,
			ClientSecret: googleCfg.ClientSecret,
			RedirectURL:  googleCfg.RedirectURI,
			Scopes:       []string{googleCfg.Scope},
			Endpoint:     google.Endpoint,
		},
		frontendURL: frontendURL,
		repo:        repo,
		userRepo:    userRepo,
		cache:       cacheStore,
		now:         time.Now,
	}
}

// BuildAuthorizationURL mints a single-use state nonce bound to the user and
// returns the Google consent URL carrying it. access_type=offline plus
// prompt=consent makes Google return a refresh token on every connect, not
// just the first one.
func (s *OAuthService) BuildAuthorizationURL(ctx context.Context, userID uuid.UUID) (*dto.AuthorizationURLResponse, *errors.AppError) {
	state := utils.GenerateStateNonce()

	if err := s.cache.SaveOAuthState(ctx, state, userID, constants.OAuthStateTTL); err != nil {
		logger.Error("OAuthService:BuildAuthorizationURL:SaveState:Error", "error", err, "user_id", userID)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to store state", err)
	}

	url := s.conf.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
	return &dto.AuthorizationURLResponse{URL: url}, nil
}

// HandleCallback completes the handshake: it consumes the state nonce,
// exchanges the code, stores the credential, and reports where to redirect
// the browser.
func (s *OAuthService) HandleCallback(ctx context.Context, code, state string) (*dto.CallbackResultResponse, *errors.AppError) {
	userID, err := s.cache.ConsumeOAuthState(ctx, state)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to verify state", err)
	}
	if userID == uuid.Nil {
		logger.Warn("OAuthService:HandleCallback:InvalidState", "state", state)
		return nil, errors.NewAppError(errors.ErrInvalidState, "unknown or expired state", nil)
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load user", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "user not found", nil)
	}

	tok, err := s.conf.Exchange(ctx, code)
	if err != nil {
		logger.Error("OAuthService:HandleCallback:Exchange:Error", "error", err, "user_id", userID)
		return nil, errors.NewAppError(errors.ErrTokenExchange, "authorization code exchange failed", err)
	}

	if appErr := s.storeExchangedToken(ctx, userID, tok); appErr != nil {
		return nil, appErr
	}

	logger.Info("OAuthService:HandleCallback:Connected", "user_id", userID)
	return &dto.CallbackResultResponse{
		RedirectURL: s.frontendURL + user.DashboardPath(),
	}, nil
}

// storeExchangedToken maps an exchange response onto the stored row. Google
// omits the refresh token when the user had already granted consent; in that
// case the previously stored refresh credential is carried over untouched.
func (s *OAuthService) storeExchangedToken(ctx context.Context, userID uuid.UUID, tok *oauth2.Token) *errors.AppError {
	now := s.now()

	stored := &entity.OAuthCalendarToken{
		UserID:      userID,
		AccessToken: tok.AccessToken,
	}
	stored.ID = uuid.New()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	if !tok.Expiry.IsZero() {
		expiry := tok.Expiry
		stored.AccessExpiry = &expiry
	}

	if tok.RefreshToken != "" {
		refresh := tok.RefreshToken
		refreshExpiry := now.Add(constants.RefreshTokenValidity)
		stored.RefreshToken = &refresh
		stored.RefreshExpiry = &refreshExpiry
	} else {
		existing, err := s.repo.GetOAuthTokenByUserID(ctx, userID)
		if err != nil {
			return errors.NewAppError(errors.ErrInternalServer, "failed to load stored token", err)
		}
		if existing != nil {
			stored.RefreshToken = existing.RefreshToken
			stored.RefreshExpiry = existing.RefreshExpiry
		}
	}

	if err := s.repo.UpsertOAuthToken(ctx, stored); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to store token", err)
	}
	return nil
}

// GetTokenStatus reports whether the user currently holds a usable calendar
// connection: a non-expired access token, or a refresh token that has not
// aged out.
func (s *OAuthService) GetTokenStatus(ctx context.Context, userID uuid.UUID) (*dto.TokenStatusResponse, *errors.AppError) {
	token, err := s.repo.GetOAuthTokenByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load token", err)
	}
	if token == nil {
		return &dto.TokenStatusResponse{Connected: false}, nil
	}

	now := s.now()
	connected := !token.AccessExpired(now) ||
		(token.RefreshToken != nil && !token.RefreshExpired(now))

	return &dto.TokenStatusResponse{
		Connected:    connected,
		AccessExpiry: token.AccessExpiry,
	}, nil
}

// GetValidAccessToken returns the stored access token verbatim. It does not
// check expiry; callers gate through CheckAndRefreshAccessToken first.
func (s *OAuthService) GetValidAccessToken(ctx context.Context, userID uuid.UUID) (string, *errors.AppError) {
	token, err := s.repo.GetOAuthTokenByUserID(ctx, userID)
	if err != nil {
		return "", errors.NewAppError(errors.ErrInternalServer, "failed to load token", err)
	}
	if token == nil || token.AccessToken == "" {
		return "", errors.NewAppError(errors.ErrNotFound, "calendar not connected", nil)
	}
	return token.AccessToken, nil
}

// CheckAndRefreshAccessToken answers one question: can this user's calendar
// be called right now? It refreshes an expired access token as a side effect
// and never surfaces errors, only false.
func (s *OAuthService) CheckAndRefreshAccessToken(ctx context.Context, userID uuid.UUID) bool {
	token, err := s.repo.GetOAuthTokenByUserID(ctx, userID)
	if err != nil || token == nil || token.AccessToken == "" {
		return false
	}

	if !token.AccessExpired(s.now()) {
		return true
	}

	if _, appErr := s.refreshAccessToken(ctx, userID, token); appErr != nil {
		logger.Warn("OAuthService:CheckAndRefreshAccessToken:RefreshFailed", "user_id", userID, "code", appErr.Code)
		return false
	}
	return true
}

// refreshAccessToken trades the stored refresh token for a fresh access
// token and persists the outcome. Google may rotate the refresh token; when
// the response carries a new one the stored credential and its assumed
// validity window are replaced.
func (s *OAuthService) refreshAccessToken(ctx context.Context, userID uuid.UUID, token *entity.OAuthCalendarToken) (*entity.OAuthCalendarToken, *errors.AppError) {
	now := s.now()

	if token.RefreshToken == nil || *token.RefreshToken == "" {
		return nil, errors.NewAppError(errors.ErrTokenExpired, "no refresh token stored", nil)
	}
	if token.RefreshExpired(now) {
		return nil, errors.NewAppError(errors.ErrTokenExpired, "refresh token expired, reconnection required", nil)
	}

	src := s.conf.TokenSource(ctx, &oauth2.Token{RefreshToken: *token.RefreshToken})
	fresh, err := src.Token()
	if err != nil {
		logger.Error("OAuthService:RefreshAccessToken:Error", "error", err, "user_id", userID)
		return nil, errors.NewAppError(errors.ErrTokenExchange, "token refresh failed", err)
	}

	token.AccessToken = fresh.AccessToken
	if !fresh.Expiry.IsZero() {
		expiry := fresh.Expiry
		token.AccessExpiry = &expiry
	} else {
		token.AccessExpiry = nil
	}
	if fresh.RefreshToken != "" && fresh.RefreshToken != *token.RefreshToken {
		rotated := fresh.RefreshToken
		refreshExpiry := now.Add(constants.RefreshTokenValidity)
		token.RefreshToken = &rotated
		token.RefreshExpiry = &refreshExpiry
	}

	if err := s.repo.UpdateAccessToken(ctx, userID, token); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to persist refreshed token", err)
	}

	logger.Info("OAuthService:RefreshAccessToken:Refreshed", "user_id", userID)
	return token, nil
}

// DisconnectCalendar drops the stored credential. Remote revocation is the
// user's concern via their Google account page.
func (s *OAuthService) DisconnectCalendar(ctx context.Context, userID uuid.UUID) *errors.AppError {
	if err := s.repo.DeleteOAuthToken(ctx, userID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to delete token", err)
	}
	logger.Info("OAuthService:DisconnectCalendar:Disconnected", "user_id", userID)
	return nil
}
