package httperr

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/crewmart/internal/domain"
	"github.com/GlebRadaev/crewmart/pkg/utils"
)

// Respond writes err for the gateway. Store failures are logged and hidden
// behind a generic retryable message.
func Respond(w http.ResponseWriter, err error) {
	kind := domain.KindOf(err)
	if kind == domain.KindStore {
		zap.L().Error("request failed", zap.Error(err))
		utils.RespondWithCode(w, http.StatusInternalServerError, "INTERNAL", "Internal server error, try again later")
		return
	}
	utils.RespondWithCode(w, Status(kind), code(err), err.Error())
}

func Status(kind domain.Kind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindPrecondition:
		return http.StatusConflict
	case domain.KindAuthorization:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func code(err error) string {
	var de *domain.Error
	if errors.As(err, &de) {
		return de.Code
	}
	var ws *domain.WrongStateError
	if errors.As(err, &ws) {
		return "WRONG_STATE"
	}
	var bu *domain.BannedUntilError
	if errors.As(err, &bu) {
		return "BANNED_UNTIL"
	}
	var ru *domain.RestrictedUntilError
	if errors.As(err, &ru) {
		return "RESTRICTED_UNTIL"
	}
	return ""
}
