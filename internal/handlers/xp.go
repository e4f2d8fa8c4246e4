package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-template-studio/internal/models"
)

//go:generate mockgen -source=xp.go -destination=xp_mock_test.go -package=handlers

// LedgerReader exposes a user's XP history.
type LedgerReader interface {
	Balance(ctx context.Context, userID uuid.UUID) (int64, error)
	Ledger(ctx context.Context, userID uuid.UUID, limit int) ([]models.LedgerEntry, error)
}

// PackageLister lists purchasable XP packages.
type PackageLister interface {
	Packages() []models.XPPackage
}

// LedgerResponse carries the balance and recent ledger entries
// swagger:model LedgerResponse
type LedgerResponse struct {
	// default: 120
	Balance int64                `json:"balance"`
	Entries []models.LedgerEntry `json:"entries"`
}

// PackagesResponse lists XP packages
// swagger:model PackagesResponse
type PackagesResponse struct {
	Packages []models.XPPackage `json:"packages"`
}

// NewLedgerHandler returns an HTTP handler for the caller's XP history.
// @Summary XP ledger
// @Tags xp
// @Produce json
// @Param limit query int false "Maximum entries" default(50)
// @Success 200 {object} handlers.LedgerResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /xp/ledger [get]
func NewLedgerHandler(svc LedgerReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}
		limit := queryInt(r, "limit", 50)
		if limit > 200 {
			limit = 200
		}

		balance, err := svc.Balance(r.Context(), userID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		entries, err := svc.Ledger(r.Context(), userID, limit)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		if entries == nil {
			entries = []models.LedgerEntry{}
		}
		writeJSON(w, http.StatusOK, LedgerResponse{Balance: balance, Entries: entries})
	}
}

// NewPackagesHandler returns an HTTP handler listing XP packages.
// @Summary XP packages
// @Tags xp
// @Produce json
// @Success 200 {object} handlers.PackagesResponse
// @Router /xp/packages [get]
func NewPackagesHandler(svc PackageLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, PackagesResponse{Packages: svc.Packages()})
	}
}

// queryInt returns def when the parameter is missing or not a positive integer.
func queryInt(r *http.Request, name string, def int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || v < 0 {
		return def
	}
	return v
}
