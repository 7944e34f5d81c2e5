package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	authapp "github.com/heystay/booking-api/application/auth"
	"github.com/heystay/booking-api/application/resource"
	"github.com/heystay/booking-api/constant"
	"github.com/heystay/booking-api/model"
	"github.com/heystay/booking-api/utils/errors"
	"github.com/heystay/booking-api/utils/telemetry"
	validatorx "github.com/heystay/booking-api/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Resource binds one path prefix to its application service. The same five
// REST operations are registered for every entry.
type Resource struct {
	Prefix string
	App    resource.App
}

type RestHandler struct {
	AuthApp authapp.AuthApp
}

func NewTransport(authApp authapp.AuthApp, resources []Resource, sink telemetry.Sink) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		AuthApp: authApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	mux.HandleFunc("/", rh.Liveness).Methods(http.MethodGet)
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)

	// Deliberate failure route: exercises the recovery fallback end to end.
	mux.HandleFunc("/debug-error", rh.DebugError).Methods(http.MethodGet)

	for _, res := range resources {
		registerResource(mux, res.Prefix, res.App)
	}

	// middleware
	mux.Use(RecoveryMiddleware(sink))
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(authApp))

	return mux
}

// Liveness handler
// @Summary Liveness check
// @Tags Health
// @Produce plain
// @Success 200 {string} string "Hello world"
// @Router / [get]
func (s *RestHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Hello world"))
}

// Login handler
// @Summary Login user
// @Description Login with username and password and receive a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} object
// @Failure 401 {object} object
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "Invalid credentials"))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "Invalid credentials"))
		return
	}

	res, err := s.AuthApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) DebugError(w http.ResponseWriter, r *http.Request) {
	panic("deliberate debug-error failure")
}
