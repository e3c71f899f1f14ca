package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/Looping69/Telehealth-System-sub002/internal/app/models"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/constvars"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/dto/requests"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/dto/responses"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/exceptions"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AuthController struct {
	Log         *zap.Logger
	AuthUsecase AuthUsecase
}

func NewAuthController(logger *zap.Logger, authUsecase AuthUsecase) *AuthController {
	return &AuthController{
		Log:         logger,
		AuthUsecase: authUsecase,
	}
}

func sessionFromContext(r *http.Request) (*models.Session, error) {
	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok || session == nil {
		return nil, exceptions.ErrTokenMissing(nil)
	}
	return session, nil
}

func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	request := new(requests.Login)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ac.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeLoginRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ac.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ac.AuthUsecase.Login(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ac.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccessMessage, result)
}

func (ac *AuthController) OAuthCallback(w http.ResponseWriter, r *http.Request) {
	request := &requests.OAuthCallback{
		Code:  r.URL.Query().Get(constvars.URLQueryParamOAuthCode),
		State: r.URL.Query().Get(constvars.URLQueryParamOAuthState),
	}
	if request.State == "" {
		utils.BuildErrorResponse(ac.Log, w, exceptions.ErrOAuthStateMissing(nil))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ac.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	result, err := ac.AuthUsecase.OAuthCallback(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ac.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.OAuthCallbackSuccessMessage, result)
}

func (ac *AuthController) RefreshToken(w http.ResponseWriter, r *http.Request) {
	request := new(requests.RefreshToken)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ac.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ac.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ac.AuthUsecase.RefreshToken(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ac.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RefreshTokenSuccessMessage, result)
}

func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ac.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ac.AuthUsecase.Logout(ctx, session.SessionID); err != nil {
		utils.BuildErrorResponse(ac.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccessMessage, nil)
}

func (ac *AuthController) GetProfile(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ac.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	profile, err := ac.AuthUsecase.GetProfile(ctx, session)
	if err != nil {
		utils.BuildErrorResponse(ac.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProfileSuccessMessage, profile)
}

// ValidateToken sits behind the auth middleware: a request that reaches it
// already carries a valid session, so the answer is always valid:true. Invalid
// tokens are rejected by the middleware with the standard 401 envelope.
func (ac *AuthController) ValidateToken(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ac.Log, w, err)
		return
	}

	result := &responses.TokenValidation{
		Valid: true,
		User: &responses.UserProfile{
			ID:               session.UserID,
			Email:            session.Email,
			Name:             session.Name,
			Role:             session.Role,
			ProfileReference: session.ProfileReference,
		},
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TokenValidSuccessMessage, result)
}
