package http

import (
	"errors"
	"net/http"

	"github.com/keepnotes/go-notes-server/internal/service"
	"github.com/keepnotes/go-notes-server/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrUserAlreadyExists:       http.StatusConflict,

	store.ErrUserAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:      http.StatusNotFound,
	store.ErrNoteNotFound:      http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
