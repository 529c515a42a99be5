package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err pairs an HTTP status code with the exact JSON body to render. The
// wire contract mixes shapes (an errors list, bare string messages, and
// {"message": ...} objects for the token gate), so the body is kept opaque
// here and fixed by the constructors below.
type Err struct {
	StatusCode int
	Body       interface{}
}

func RenderErr(ctx *gin.Context, e *Err) {
	ctx.JSON(e.StatusCode, e.Body)
}

func ErrValidation(messages []string) *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		Body:       gin.H{"errors": messages},
	}
}

func ErrInvalidJSON() *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		Body:       "Invalid JSON body!",
	}
}

func ErrInvalidProductID() *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		Body:       "Invalid product ID!",
	}
}

func ErrDuplicateProduct() *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		Body:       "Product already exists!",
	}
}

func ErrProductNotFound() *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		Body:       "Product not found!",
	}
}

func ErrMissingCredentials() *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		Body:       "Username and password required!",
	}
}

func ErrWrongCredentials() *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Body:       "Could not verify, wrong username or password!",
	}
}

func ErrMissingToken() *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Body:       gin.H{"message": "Token is missing!"},
	}
}

func ErrInvalidToken() *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Body:       gin.H{"message": "Token is invalid!"},
	}
}

// ErrInternalServerError logs the underlying error and renders a generic
// message. Internals never reach the client.
func ErrInternalServerError(err error) *Err {
	zap.L().Error("internal server error", zap.Error(err))

	return &Err{
		StatusCode: http.StatusInternalServerError,
		Body:       "Internal server error.",
	}
}
