package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/acme/product-api/internal/api/handler/v1/response"
	"github.com/acme/product-api/internal/pkg/jwthelper"
)

// TokenHeader carries the bearer token on every gated route.
const TokenHeader = "x-access-token"

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

// VerifyToken gates a route behind the x-access-token header. Every request
// re-verifies; no session survives across requests. The username claim is
// checked as part of parsing but not propagated, handlers stay
// username-agnostic.
func (a *Authenticator) VerifyToken() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := ctx.GetHeader(TokenHeader)
		if token == "" {
			response.RenderErr(ctx, response.ErrMissingToken())
			ctx.Abort()

			return
		}

		if _, err := jwthelper.ParseToken(a.signingKey, token); err != nil {
			response.RenderErr(ctx, response.ErrInvalidToken())
			ctx.Abort()

			return
		}

		ctx.Next()
	}
}
