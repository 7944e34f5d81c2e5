package transport

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/heystay/booking-api/constant"
	"github.com/heystay/booking-api/utils/errors"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeSuccess(w http.ResponseWriter, payload any) {
	writeJSON(w, http.StatusOK, payload)
}

// writeError maps an error to its `{"error": "<message>"}` body. Anything
// that is not a CustomError is treated as an unexpected 500; the detail
// never reaches the client.
func writeError(w http.ResponseWriter, err error) {
	var ce errors.CustomError
	if !stderrors.As(err, &ce) {
		ce = errors.SetCustomError(constant.ErrInternal)
	}
	writeJSON(w, ce.ErrorHTTPCode(), map[string]string{"error": ce.Error()})
}
