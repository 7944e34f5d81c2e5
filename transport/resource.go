package transport

import (
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/heystay/booking-api/application/resource"
	"github.com/heystay/booking-api/constant"
	"github.com/heystay/booking-api/utils/errors"
)

// resourceHandler adapts one resource.App to the five REST operations.
type resourceHandler struct {
	app resource.App
}

func registerResource(router *mux.Router, prefix string, app resource.App) {
	h := &resourceHandler{app: app}

	router.HandleFunc(prefix, h.List).Methods(http.MethodGet)
	router.HandleFunc(prefix, h.Create).Methods(http.MethodPost)
	router.HandleFunc(prefix+"/{id}", h.Get).Methods(http.MethodGet)
	router.HandleFunc(prefix+"/{id}", h.Update).Methods(http.MethodPut)
	router.HandleFunc(prefix+"/{id}", h.Delete).Methods(http.MethodDelete)
}

func (h *resourceHandler) List(w http.ResponseWriter, r *http.Request) {
	res, err := h.app.List(r.Context(), r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (h *resourceHandler) Get(w http.ResponseWriter, r *http.Request) {
	res, err := h.app.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (h *resourceHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := h.app.Create(r.Context(), body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *resourceHandler) Update(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := h.app.Update(r.Context(), mux.Vars(r)["id"], body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (h *resourceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	msg, err := h.app.Delete(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	if msg != "" {
		writeSuccess(w, map[string]string{"message": msg})
		return
	}
	w.WriteHeader(http.StatusOK)
}
