package auth

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/Looping69/Telehealth-System-sub002/internal/app/config"
	"github.com/Looping69/Telehealth-System-sub002/internal/app/contracts"
	"github.com/Looping69/Telehealth-System-sub002/internal/app/models"
	"github.com/Looping69/Telehealth-System-sub002/internal/app/services/core/users"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/constvars"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/dto/requests"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/dto/responses"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/exceptions"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	authUsecaseInstance AuthUsecase
	onceAuthUsecase     sync.Once
)

type authUsecase struct {
	UserRepository contracts.UserRepository
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
	Client         *http.Client
	Log            *zap.Logger
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) AuthUsecase {
	onceAuthUsecase.Do(func() {
		timeout := time.Duration(internalConfig.Medplum.TimeoutInSeconds) * time.Second
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		authUsecaseInstance = &authUsecase{
			UserRepository: userRepository,
			SessionService: sessionService,
			InternalConfig: internalConfig,
			Client:         &http.Client{Timeout: timeout},
			Log:            logger,
		}
	})
	return authUsecaseInstance
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		// Same answer for unknown email and wrong password.
		return nil, exceptions.ErrInvalidEmailOrPassword(err)
	}
	if !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	return uc.issueSession(ctx, user, "", "")
}

// OAuthCallback exchanges the authorization code with the upstream token
// endpoint and logs the resolved profile in. Mock mode skips the exchange and
// signs in the demo administrator, preserving the SPA's callback contract.
func (uc *authUsecase) OAuthCallback(ctx context.Context, request *requests.OAuthCallback) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.OAuthCallback called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if uc.InternalConfig.UseMockBackend() {
		user, err := uc.UserRepository.FindByEmail(ctx, users.MockUserEmailAdmin)
		if err != nil {
			return nil, err
		}
		return uc.issueSession(ctx, user, "", "")
	}

	token, err := uc.exchangeAuthorizationCode(ctx, request.Code)
	if err != nil {
		return nil, err
	}

	info, err := uc.fetchUserInfo(ctx, token.AccessToken)
	if err != nil {
		return nil, err
	}

	user, err := uc.upsertOAuthUser(ctx, info)
	if err != nil {
		return nil, err
	}
	return uc.issueSession(ctx, user, token.AccessToken, token.RefreshToken)
}

func (uc *authUsecase) RefreshToken(ctx context.Context, request *requests.RefreshToken) (*responses.RefreshToken, error) {
	_, accessToken, refreshToken, err := uc.SessionService.RotateRefreshToken(ctx, request.RefreshToken)
	if err != nil {
		return nil, err
	}

	return &responses.RefreshToken{
		Token:        accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    uc.InternalConfig.JWT.AccessTokenExpInMinute * 60,
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	return uc.SessionService.DestroySession(ctx, sessionID)
}

// GetProfile prefers the live user record; a session older than the last
// directory change still answers from its snapshot.
func (uc *authUsecase) GetProfile(ctx context.Context, session *models.Session) (*responses.UserProfile, error) {
	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return &responses.UserProfile{
			ID:               session.UserID,
			Email:            session.Email,
			Name:             session.Name,
			Role:             session.Role,
			ProfileReference: session.ProfileReference,
		}, nil
	}

	return &responses.UserProfile{
		ID:               user.ID,
		Email:            user.Email,
		Name:             user.Name,
		Role:             user.Role,
		ProfileReference: user.ProfileReference,
	}, nil
}

func (uc *authUsecase) issueSession(ctx context.Context, user *models.User, medplumAccessToken, medplumRefreshToken string) (*responses.Login, error) {
	session := &models.Session{
		UserID:              user.ID,
		Email:               user.Email,
		Name:                user.Name,
		Role:                user.Role,
		ProfileReference:    user.ProfileReference,
		MedplumAccessToken:  medplumAccessToken,
		MedplumRefreshToken: medplumRefreshToken,
	}

	accessToken, refreshToken, err := uc.SessionService.CreateSession(ctx, session)
	if err != nil {
		return nil, err
	}

	return &responses.Login{
		Token:        accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    uc.InternalConfig.JWT.AccessTokenExpInMinute * 60,
		User: &responses.UserProfile{
			ID:               user.ID,
			Email:            user.Email,
			Name:             user.Name,
			Role:             user.Role,
			ProfileReference: user.ProfileReference,
		},
	}, nil
}

type oauthToken struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

func (uc *authUsecase) exchangeAuthorizationCode(ctx context.Context, code string) (*oauthToken, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("client_id", uc.InternalConfig.Medplum.ClientID)
	form.Set("client_secret", uc.InternalConfig.Medplum.ClientSecret)

	tokenUrl := strings.TrimRight(uc.InternalConfig.Medplum.BaseUrl, "/") + "/oauth2/token"
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, tokenUrl, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationForm)

	resp, err := uc.Client.Do(req)
	if err != nil {
		return nil, exceptions.ErrOAuthExchange(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrOAuthExchange(err)
	}
	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrOAuthExchange(fmt.Errorf("token endpoint returned status %d", resp.StatusCode))
	}

	token := new(oauthToken)
	if err := json.Unmarshal(body, token); err != nil {
		return nil, exceptions.ErrOAuthExchange(err)
	}
	if token.AccessToken == "" {
		return nil, exceptions.ErrOAuthExchange(fmt.Errorf("token endpoint returned an empty access_token"))
	}
	return token, nil
}

type oauthUserInfo struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Profile string `json:"profile"`
}

func (uc *authUsecase) fetchUserInfo(ctx context.Context, accessToken string) (*oauthUserInfo, error) {
	userInfoUrl := strings.TrimRight(uc.InternalConfig.Medplum.BaseUrl, "/") + "/oauth2/userinfo"
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, userInfoUrl, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+accessToken)

	resp, err := uc.Client.Do(req)
	if err != nil {
		return nil, exceptions.ErrOAuthExchange(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrOAuthExchange(err)
	}
	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrOAuthExchange(fmt.Errorf("userinfo endpoint returned status %d", resp.StatusCode))
	}

	info := new(oauthUserInfo)
	if err := json.Unmarshal(body, info); err != nil {
		return nil, exceptions.ErrOAuthExchange(err)
	}
	if info.Email == "" {
		return nil, exceptions.ErrOAuthExchange(fmt.Errorf("userinfo response carries no email"))
	}
	return info, nil
}

func (uc *authUsecase) upsertOAuthUser(ctx context.Context, info *oauthUserInfo) (*models.User, error) {
	user, err := uc.UserRepository.FindByEmail(ctx, info.Email)
	if err == nil {
		if info.Name != "" && info.Name != user.Name {
			user.Name = info.Name
			if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
				uc.Log.Warn("authUsecase failed to refresh user name from userinfo",
					zap.String(constvars.LoggingUserIDKey, user.ID),
					zap.Error(err),
				)
			}
		}
		return user, nil
	}

	user = &models.User{
		Email:            info.Email,
		Name:             info.Name,
		Role:             constvars.TelehealthRoleProvider,
		ProfileReference: info.Profile,
	}
	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = userID
	return user, nil
}
