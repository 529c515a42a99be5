package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acme/product-api/internal/api/handler/v1/response"
	"github.com/acme/product-api/internal/config"
	"github.com/acme/product-api/internal/pkg/jwthelper"
	"github.com/acme/product-api/internal/service"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) error
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleLogin godoc
// @Summary      Exchange HTTP Basic credentials for a bearer token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.LoginResponse
// @Failure      400  {object}  string
// @Failure      401  {object}  string
// @Router       /login [get]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	username, password, ok := ctx.Request.BasicAuth()
	if !ok || username == "" || password == "" {
		response.RenderErr(ctx, response.ErrMissingCredentials())

		return
	}

	if err := h.svc.Login(ctx.Request.Context(), username, password); err != nil {
		if errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrWrongCredentials())

			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), username)
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.LoginResponse{
		Token: token,
	})
}
