package transport

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/muhammadheryan/toko-api/constant"
	"github.com/muhammadheryan/toko-api/model"
	"github.com/muhammadheryan/toko-api/utils/errors"
	"github.com/muhammadheryan/toko-api/utils/logger"
	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn("[writeJSON] encode response", zap.String("error", err.Error()))
	}
}

// writeSuccess writes body as is with 200.
func writeSuccess(w http.ResponseWriter, body any) {
	writeJSON(w, http.StatusOK, body)
}

func writeEnvelope(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, model.Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// writeError renders a CustomError; anything else becomes a bare internal error.
func writeError(w http.ResponseWriter, err error) {
	var ce errors.CustomError
	if !stderrors.As(err, &ce) {
		ce = errors.SetCustomError(constant.ErrInternal)
	}

	writeJSON(w, ce.ErrorHTTPCode(), model.ErrorResponse{
		Success: false,
		Message: ce.Error(),
		Code:    ce.ErrorCode(),
		Errors:  ce.Fields(),
	})
}
