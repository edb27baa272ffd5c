package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careerforge/api/internal/application/usecase/auth"
	"github.com/careerforge/api/pkg/apperror"
)

type AuthHandler struct {
	loginUseCase  *auth.LoginUseCase
	logoutUseCase *auth.LogoutUseCase
}

func NewAuthHandler(loginUC *auth.LoginUseCase, logoutUC *auth.LogoutUseCase) *AuthHandler {
	return &AuthHandler{
		loginUseCase:  loginUC,
		logoutUseCase: logoutUC,
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for login", err))
		return
	}

	input := auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	}

	output, err := h.loginUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": output.AccessToken,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token, ok := c.Get(GinContextKeyToken)
	if !ok {
		c.Error(apperror.NewPermissionDenied("token not found in context"))
		return
	}
	tokenString, _ := token.(string)

	if err := h.logoutUseCase.Execute(c.Request.Context(), auth.LogoutInput{Token: tokenString}); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
