package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/hariship/apps-dashboard-backend/database"
	"github.com/hariship/apps-dashboard-backend/errs"
)

const sessionTTL = 24 * time.Hour

// sessionClaims is the payload of an issued session token
type sessionClaims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	userRepo  *database.UserRepo
	jwtSecret []byte
}

func newAuthHandler(userRepo *database.UserRepo, jwtSecret []byte) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	User  struct {
		ID    uint   `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
		Role  string `json:"role"`
	} `json:"user"`
}

// login validates credentials against active users and issues a session
// token. Missing user, inactive user and wrong password all produce the same
// denial.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if req.Email == "" || req.Password == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("email and password are required"))
			return
		}

		user, err := h.userRepo.FindActiveByEmail(req.Email)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "user", err))
			return
		}
		if user == nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("Invalid email or password"))
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("Invalid email or password"))
			return
		}

		if err := h.userRepo.TouchLastLogin(user.ID); err != nil {
			h.logger.Error().Err(err).Uint("userID", user.ID).Msg("failed to touch last login")
		}

		claims := sessionClaims{
			UserID: user.ID,
			Role:   user.Role,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
				IssuedAt:  jwt.NewNumericDate(time.Now()),
			},
		}

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString(h.jwtSecret)
		if err != nil {
			h.logger.Error().Err(err).Msg("failed to sign session token")
			h.responder.WriteError(w, errs.NewInternalError("Failed to issue session"))
			return
		}

		var response loginResponse
		response.Token = signed
		response.User.ID = user.ID
		response.User.Email = user.Email
		response.User.Name = user.FirstName + " " + user.LastName
		response.User.Role = user.Role

		h.responder.WriteData(w, response)
	}
}

// session echoes the identity carried by a valid bearer token
func (h authHandler) session() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}
		role, err := ctxGetUserRole(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		h.responder.WriteData(w, map[string]any{
			"user_id": userID,
			"role":    role,
		})
	}
}
