package api

import (
	"database/sql"
	"net/http"

	"github.com/rescuelink/rescuelink/internal/ledger"
	"github.com/rescuelink/rescuelink/internal/oracle"
	"github.com/rescuelink/rescuelink/internal/session"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, jwtSecret string, oracleClient oracle.Client) http.Handler {
	mux := http.NewServeMux()

	sessions := session.NewManager()
	recorder := &ledger.Recorder{DB: db}

	authHandler := &AuthHandler{JWTSecret: jwtSecret}
	donationsHandler := &DonationsHandler{DB: db, Sessions: sessions, Oracle: oracleClient, Ledger: recorder}
	recipientsHandler := &RecipientsHandler{DB: db}
	statsHandler := &StatsHandler{Sessions: sessions}
	ledgerHandler := &LedgerHandler{Ledger: recorder}

	authMW := AuthMiddleware(jwtSecret)

	// Public: wallet login and the transparency feed.
	mux.HandleFunc("POST /api/auth/wallet", authHandler.WalletLogin)
	mux.HandleFunc("GET /api/ledger", ledgerHandler.List)

	// Donations (session-scoped).
	mux.Handle("POST /api/donations", authMW(http.HandlerFunc(donationsHandler.Create)))
	mux.Handle("GET /api/donations", authMW(http.HandlerFunc(donationsHandler.List)))
	mux.Handle("POST /api/donations/{id}/analyze", authMW(http.HandlerFunc(donationsHandler.Analyze)))
	mux.Handle("POST /api/donations/{id}/match", authMW(http.HandlerFunc(donationsHandler.Match)))
	mux.Handle("PUT /api/donations/{id}/status", authMW(http.HandlerFunc(donationsHandler.UpdateStatus)))
	mux.Handle("PUT /api/donations/{id}/photo", authMW(http.HandlerFunc(donationsHandler.UploadPhoto)))
	mux.Handle("GET /api/donations/{id}/photo", authMW(http.HandlerFunc(donationsHandler.GetPhoto)))

	// Recipient directory.
	mux.Handle("GET /api/recipients", authMW(http.HandlerFunc(recipientsHandler.List)))
	mux.Handle("GET /api/recipients/{id}", authMW(http.HandlerFunc(recipientsHandler.Get)))

	// Impact stats.
	mux.Handle("GET /api/stats", authMW(http.HandlerFunc(statsHandler.Get)))

	return mux
}
