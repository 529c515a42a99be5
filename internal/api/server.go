package api

import (
	"fmt"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/acme/product-api/docs"
	v1 "github.com/acme/product-api/internal/api/handler/v1"
	"github.com/acme/product-api/internal/api/middleware"
	"github.com/acme/product-api/internal/config"
	"github.com/acme/product-api/internal/repository"
	"github.com/acme/product-api/internal/repository/dao"
	"github.com/acme/product-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) (*Server, error) {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	productHandler := s.initProductHandler(db)
	authHandler, err := s.initAuthHandler()
	if err != nil {
		return nil, fmt.Errorf("s.initAuthHandler -> %w", err)
	}
	s.MountHandlers(productHandler, authHandler)

	return s, nil
}

func (s *Server) initProductHandler(db *gorm.DB) *v1.ProductHandler {
	productDAO := dao.NewProductDAO(db)
	repo := repository.NewProductRepository(productDAO)
	svc := service.NewProductService(repo)
	handler := v1.NewProductHandler(svc, s.Config.Validation)

	return handler
}

func (s *Server) initAuthHandler() (*v1.AuthHandler, error) {
	svc, err := service.NewAuthService(s.Config.API.LoginPassword)
	if err != nil {
		return nil, fmt.Errorf("service.NewAuthService -> %w", err)
	}
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler, nil
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(productHandler *v1.ProductHandler, authHandler *v1.AuthHandler) {
	products := s.Router.Group("")
	if s.Config.API.AuthEnabled {
		products.Use(middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyToken())
	}
	{
		products.POST("/product", productHandler.HandleCreateProduct)
		products.GET("/product", productHandler.HandleListProducts)
		products.GET("/product/:productID", productHandler.HandleGetProduct)
		products.PUT("/product/:productID", productHandler.HandleUpdateProduct)
		products.DELETE("/product/:productID", productHandler.HandleDeleteProduct)
	}

	s.Router.GET("/login", authHandler.HandleLogin)

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Title = "Product API"
	docs.SwaggerInfo.Description = "A product CRUD API gated by short-lived bearer tokens."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
