package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	authapp "github.com/muhammadheryan/toko-api/application/auth"
	pembeliapp "github.com/muhammadheryan/toko-api/application/pembeli"
	produkapp "github.com/muhammadheryan/toko-api/application/produk"
	"github.com/muhammadheryan/toko-api/cmd/config"
	"github.com/muhammadheryan/toko-api/constant"
	"github.com/muhammadheryan/toko-api/model"
	utilsContext "github.com/muhammadheryan/toko-api/utils/context"
	"github.com/muhammadheryan/toko-api/utils/errors"
	validatorx "github.com/muhammadheryan/toko-api/utils/validator"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	AuthApp    authapp.AuthApp
	PembeliApp pembeliapp.PembeliApp
	ProdukApp  produkapp.ProdukApp
}

// NewTransport builds the router. A nil reg disables /metrics and request metrics.
func NewTransport(cfg *config.Config, AuthApp authapp.AuthApp, PembeliApp pembeliapp.PembeliApp, ProdukApp produkapp.ProdukApp, reg *prometheus.Registry) http.Handler {
	router := mux.NewRouter()

	rh := &RestHandler{
		AuthApp:    AuthApp,
		PembeliApp: PembeliApp,
		ProdukApp:  ProdukApp,
	}

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	if reg != nil {
		router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}

	// Public routes
	router.HandleFunc("/pembeli/register", rh.Register).Methods(http.MethodPost)
	router.HandleFunc("/pembeli/login", rh.Login).Methods(http.MethodPost)
	router.HandleFunc("/pembeli", rh.ListPembeli).Methods(http.MethodGet)
	router.HandleFunc("/pembeli/{id:[0-9]+}", rh.GetPembeli).Methods(http.MethodGet)
	router.HandleFunc("/produk", rh.ListProduk).Methods(http.MethodGet)
	router.HandleFunc("/produk/{id:[0-9]+}", rh.GetProduk).Methods(http.MethodGet)

	// protected routes
	protected := router.NewRoute().Subrouter()
	protected.Use(AuthMiddleware(AuthApp))
	protected.HandleFunc("/user", rh.CurrentPembeli).Methods(http.MethodGet)
	protected.HandleFunc("/pembeli", rh.CreatePembeli).Methods(http.MethodPost)
	protected.HandleFunc("/pembeli/{id:[0-9]+}", rh.UpdatePembeli).Methods(http.MethodPatch)
	protected.HandleFunc("/pembeli/{id:[0-9]+}", rh.DeletePembeli).Methods(http.MethodDelete)
	protected.HandleFunc("/produk", rh.CreateProduk).Methods(http.MethodPost)
	protected.HandleFunc("/produk/{id:[0-9]+}", rh.UpdateProduk).Methods(http.MethodPatch)
	protected.HandleFunc("/produk/{id:[0-9]+}", rh.DeleteProduk).Methods(http.MethodDelete)

	// middleware
	router.Use(LoggingMiddleware())
	if reg != nil {
		router.Use(NewMetrics(reg).Middleware())
	}
	router.Use(TimeoutMiddleware(cfg.Server.RequestTimeout))

	return router
}

// Register handler
// @Summary Register pembeli
// @Description Register a new pembeli and receive a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 201 {object} model.Envelope
// @Failure 400 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Failure 422 {object} model.ErrorResponse
// @Router /pembeli/register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := s.AuthApp.Register(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, model.Envelope{
		Success: true,
		Message: constant.MsgRegisterSuccess,
		Data:    res.Nama,
		Token:   res.Token,
	})
}

// Login handler
// @Summary Login pembeli
// @Description Login with email and password and receive a new bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 202 {object} model.Envelope
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /pembeli/login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AuthApp.Login(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusAccepted, model.Envelope{
		Success: true,
		Message: constant.MsgLoginSuccess,
		Token:   res.Token,
		Data:    res.Pembeli,
	})
}

// CurrentPembeli handler
// @Summary Current pembeli
// @Description Get the pembeli that owns the bearer token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.PembeliEntity
// @Failure 401 {object} model.ErrorResponse
// @Router /user [get]
func (s *RestHandler) CurrentPembeli(w http.ResponseWriter, r *http.Request) {
	id, ok := utilsContext.GetUserID(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.PembeliApp.Profile(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListPembeli handler
// @Summary List pembeli
// @Tags Pembeli
// @Produce json
// @Success 200 {array} model.PembeliEntity
// @Router /pembeli [get]
func (s *RestHandler) ListPembeli(w http.ResponseWriter, r *http.Request) {
	res, err := s.PembeliApp.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetPembeli handler
// @Summary Get pembeli
// @Description Get a pembeli with the produk it owns
// @Tags Pembeli
// @Produce json
// @Param id path int true "Pembeli ID"
// @Success 200 {object} model.PembeliDetail
// @Failure 404 {object} model.ErrorResponse
// @Router /pembeli/{id} [get]
func (s *RestHandler) GetPembeli(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, constant.ErrNotFound)
	if !ok {
		return
	}

	res, err := s.PembeliApp.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreatePembeli handler
// @Summary Create pembeli
// @Tags Pembeli
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.PembeliRequest true "Pembeli Request"
// @Success 201 {object} model.Envelope
// @Failure 401 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Failure 422 {object} model.ErrorResponse
// @Router /pembeli [post]
func (s *RestHandler) CreatePembeli(w http.ResponseWriter, r *http.Request) {
	var req model.PembeliRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := s.PembeliApp.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeEnvelope(w, http.StatusCreated, constant.MsgPembeliCreated, res)
}

// UpdatePembeli handler
// @Summary Update pembeli
// @Tags Pembeli
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pembeli ID"
// @Param request body model.PembeliRequest true "Pembeli Request"
// @Success 200 {object} model.Envelope
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 422 {object} model.ErrorResponse
// @Router /pembeli/{id} [patch]
func (s *RestHandler) UpdatePembeli(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, constant.ErrPembeliNotFound)
	if !ok {
		return
	}

	var req model.PembeliRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := s.PembeliApp.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeEnvelope(w, http.StatusOK, constant.MsgPembeliUpdated, res)
}

// DeletePembeli handler
// @Summary Delete pembeli
// @Description Delete a pembeli, its produk and its tokens
// @Tags Pembeli
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pembeli ID"
// @Success 200 {object} model.Envelope
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /pembeli/{id} [delete]
func (s *RestHandler) DeletePembeli(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, constant.ErrPembeliNotFound)
	if !ok {
		return
	}

	if err := s.PembeliApp.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeEnvelope(w, http.StatusOK, constant.MsgPembeliDeleted, nil)
}

// ListProduk handler
// @Summary List produk
// @Tags Produk
// @Produce json
// @Success 200 {array} model.ProdukDetail
// @Router /produk [get]
func (s *RestHandler) ListProduk(w http.ResponseWriter, r *http.Request) {
	res, err := s.ProdukApp.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetProduk handler
// @Summary Get produk
// @Tags Produk
// @Produce json
// @Param id path int true "Produk ID"
// @Success 200 {object} model.ProdukDetail
// @Failure 404 {object} model.ErrorResponse
// @Router /produk/{id} [get]
func (s *RestHandler) GetProduk(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, constant.ErrProdukNotFound)
	if !ok {
		return
	}

	res, err := s.ProdukApp.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreateProduk handler
// @Summary Create produk
// @Tags Produk
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ProdukRequest true "Produk Request"
// @Success 201 {object} model.Envelope
// @Failure 401 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Failure 422 {object} model.ErrorResponse
// @Router /produk [post]
func (s *RestHandler) CreateProduk(w http.ResponseWriter, r *http.Request) {
	var req model.ProdukRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := s.ProdukApp.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeEnvelope(w, http.StatusCreated, constant.MsgProdukCreated, res)
}

// UpdateProduk handler
// @Summary Update produk
// @Tags Produk
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Produk ID"
// @Param request body model.ProdukRequest true "Produk Request"
// @Success 200 {object} model.Envelope
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 422 {object} model.ErrorResponse
// @Router /produk/{id} [patch]
func (s *RestHandler) UpdateProduk(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, constant.ErrProdukNotFound)
	if !ok {
		return
	}

	var req model.ProdukRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := s.ProdukApp.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeEnvelope(w, http.StatusOK, constant.MsgProdukUpdated, res)
}

// DeleteProduk handler
// @Summary Delete produk
// @Tags Produk
// @Produce json
// @Security BearerAuth
// @Param id path int true "Produk ID"
// @Success 200 {object} model.Envelope
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /produk/{id} [delete]
func (s *RestHandler) DeleteProduk(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, constant.ErrProdukNotFound)
	if !ok {
		return
	}

	if err := s.ProdukApp.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeEnvelope(w, http.StatusOK, constant.MsgProdukDeleted, nil)
}

func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return false
	}

	if err := validatorx.ValidateStruct(dst); err != nil {
		writeError(w, errors.SetValidationError(validatorx.FieldErrors(err)))
		return false
	}
	return true
}

// pathID reads {id}; the route regex guarantees digits, so only overflow fails here.
func pathID(w http.ResponseWriter, r *http.Request, notFound constant.ErrorType) (uint64, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil || id == 0 {
		writeError(w, errors.SetCustomError(notFound))
		return 0, false
	}
	return id, true
}
