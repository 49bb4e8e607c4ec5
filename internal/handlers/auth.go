package handlers

import (
	"errors"
	"net/http"

	"inventory_lending/internal/service"
	"inventory_lending/internal/validation"

	"github.com/gin-gonic/gin"
)

const (
	msgUsernameRequired = "Nama lengkap tidak boleh kosong"
	msgEmailRequired    = "Email tidak boleh kosong"
	msgPasswordRequired = "Password tidak boleh kosong"
	msgEmailInvalid     = "Mohon berikan email yang valid"

	msgUserExists     = "User Tersedia"
	msgBadCredentials = "Kredensial nda aman bang"
	msgUserNotFound   = "Pengguna tidak ditemukan"

	msgRegisterOK = "Sukses"
	msgLoginOK    = "Login Sukses"
	msgGetUserOK  = "Sukses mendapatkan data pengguna!"

	// The auth routes answer unexpected failures with this bare message.
	msgAuthServerError = "Error"

	errInvalidBodyPref = "invalid body: "
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled, true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "err", err)
		}
		respondError(c, http.StatusBadRequest, errInvalidBodyPref+err.Error())
		return false
	}
	return true
}

// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  registerRequest  true  "Credentials"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /api/auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var in registerRequest
	if ok := h.bindJSONOrBadRequest(c, &in); !ok {
		return
	}

	errs := validation.Validate([]validation.Rule{
		{Field: "username", Value: in.Username, Message: msgUsernameRequired},
		{Field: "email", Value: in.Email, Message: msgEmailRequired},
		{Field: "password", Value: in.Password, Message: msgPasswordRequired},
	})
	if len(errs) > 0 {
		respondValidation(c, errs)
		return
	}

	user, err := h.services.Register(c.Request.Context(), in.Username, in.Email, in.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			respondError(c, http.StatusBadRequest, msgUserExists)
			return
		}
		h.respondServerError(c, msgAuthServerError, "auth_register_failed", err, "email", in.Email)
		return
	}

	respondData(c, http.StatusCreated, msgRegisterOK, user)
}

// @Summary      Log in with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  loginRequest  true  "Credentials"
// @Success      200  {object}  map[string]interface{}  "code, message, data, token"
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var in loginRequest
	if ok := h.bindJSONOrBadRequest(c, &in); !ok {
		return
	}

	errs := validation.Validate([]validation.Rule{
		{Field: "email", Value: in.Email, Message: msgEmailInvalid, Check: validation.Email},
		{Field: "password", Value: in.Password, Message: msgPasswordRequired},
	})
	if len(errs) > 0 {
		respondValidation(c, errs)
		return
	}

	user, token, err := h.services.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// One generic message for unknown email and wrong password alike.
			respondError(c, http.StatusBadRequest, msgBadCredentials)
			return
		}
		h.respondServerError(c, msgAuthServerError, "auth_login_failed", err, "email", in.Email)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": msgLoginOK,
		"data":    user,
		"token":   token,
	})
}

// @Summary      Current user profile
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /api/auth/user [get]
// @Security     BearerAuth
func (h *Handler) currentUser(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"code":    http.StatusUnauthorized,
			"message": msgMissingToken,
		})
		return
	}

	user, err := h.services.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, msgUserNotFound)
			return
		}
		h.respondServerError(c, msgAuthServerError, "auth_get_user_failed", err, "user_id", userID)
		return
	}

	respondData(c, http.StatusOK, msgGetUserOK, user)
}
