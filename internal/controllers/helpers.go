package controllers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/poofware/blog-api/internal/middleware"
	"github.com/poofware/blog-api/internal/services"
	"github.com/poofware/blog-api/internal/utils"
)

// getClaims pulls the authenticated identity the middleware attached.
func getClaims(r *http.Request) (*services.Claims, error) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok || claims == nil {
		return nil, &utils.AppError{
			StatusCode: http.StatusUnauthorized,
			Code:       utils.ErrCodeUnauthorized,
			Message:    "Missing authenticated identity in context",
		}
	}
	return claims, nil
}

// parsePathID reads the {id} path variable as a positive int64.
func parsePathID(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, &utils.AppError{
			StatusCode: http.StatusBadRequest,
			Code:       utils.ErrCodeInvalidPayload,
			Message:    "Invalid id in path",
			Err:        err,
		}
	}
	return id, nil
}
