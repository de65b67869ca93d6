package identityapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vinom-labs/repmaze/service/i"
)

// Controller handles operator registration and login.
type Controller struct {
	authService i.Authenticator
}

// NewController builds a Controller backed by the given Authenticator.
func NewController(a i.Authenticator) *Controller {
	return &Controller{authService: a}
}

// RegisterPublic registers /auth/register and /auth/login.
func (c *Controller) RegisterPublic(route *gin.RouterGroup) {
	auth := route.Group("/auth")
	{
		auth.POST("/register", c.register)
		auth.POST("/login", c.login)
	}
}

// RegisterProtected registers nothing; operator auth has no protected routes.
func (c *Controller) RegisterProtected(route *gin.RouterGroup) {}

func (c *Controller) register(ctx *gin.Context) {
	var request AuthRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.authService.Register(request.Username, request.Password); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "operator registered successfully"})
}

func (c *Controller) login(ctx *gin.Context) {
	var request AuthRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := c.authService.SignIn(request.Username, request.Password)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, &AuthResponse{Token: token})
}
