package users

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"assetdesk/pkg/response"
)

type UserHandler struct {
	service UserService
}

func NewUserHandler(service UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	api.POST("/users", h.createUser)
	api.GET("/users/:id", h.getUserByID)
}

type createUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// @Summary      Create a user
// @Description  Creates a user record with a hashed password
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body createUserRequest true "User creation request"
// @Success      201  {object}  User "User created"
// @Failure      400  {object}  response.ErrorResponse "Invalid request payload"
// @Failure      409  {object}  response.ErrorResponse "Username taken"
// @Failure      500  {object}  response.ErrorResponse "Internal server error"
// @Router       /api/users [post]
func (h *UserHandler) createUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, "invalid request payload", nil)
		return
	}

	if strings.TrimSpace(req.Username) == "" {
		response.SendError(c, http.StatusBadRequest, "username is required", nil)
		return
	}

	u, err := h.service.CreateUser(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			response.SendError(c, http.StatusConflict, "username already taken", nil)
			return
		}
		log.Printf("users: create: %v", err)
		response.SendError(c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	c.JSON(http.StatusCreated, u)
}

// @Summary      Get user by ID
// @Description  Retrieves a single user by ID
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  User "User fetched"
// @Failure      400  {object}  response.ErrorResponse "Invalid user ID"
// @Failure      404  {object}  response.ErrorResponse "User not found"
// @Failure      500  {object}  response.ErrorResponse "Internal server error"
// @Router       /api/users/{id} [get]
func (h *UserHandler) getUserByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.SendError(c, http.StatusBadRequest, "invalid user id", nil)
		return
	}

	u, err := h.service.GetUserByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.SendError(c, http.StatusNotFound, "user not found", nil)
			return
		}
		log.Printf("users: get: %v", err)
		response.SendError(c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, u)
}
