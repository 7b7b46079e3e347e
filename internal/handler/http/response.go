package http

import (
	"net/http"

	"github.com/Sniper-Code/auth-server/internal/utils"
	"github.com/Sniper-Code/auth-server/models"
)

// writeSuccess writes a success envelope with the given message and optional
// payload.
func writeSuccess(w http.ResponseWriter, result string, data any, statusCode int) {
	utils.WriteJSON(w, models.OK(result, data), statusCode)
}

// writeError maps err to an HTTP status and a client-safe message and writes
// the corresponding error envelope. Error responses never carry data.
func writeError(w http.ResponseWriter, err error) {
	utils.WriteJSON(w, models.Err(resultFromError(err)), statusFromError(err))
}
