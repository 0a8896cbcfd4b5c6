package dashboard

import (
	"context"
	"time"
)

// Placeholders shown instead of an analysis
const (
	AnalysisUnavailable = "Análise indisponível no momento."
	AnalysisFailed      = "Erro de conexão com o Analista IA. Tente novamente."
)

// ActivityEntry is one timeline event in the recent activity list
type ActivityEntry struct {
	Event      string    `json:"event"`
	Timestamp  time.Time `json:"timestamp"`
	Location   string    `json:"location"`
	TripID     string    `json:"tripId"`
	DriverName string    `json:"driverName"`
}

// Overview holds the dashboard KPIs
type Overview struct {
	ActiveTrips    int             `json:"activeTrips"`
	PendingTrips   int             `json:"pendingTrips"`
	CompletedTrips int             `json:"completedTrips"`
	TotalTrips     int             `json:"totalTrips"`
	PctActive      float64         `json:"pctActive"`
	PctPending     float64         `json:"pctPending"`
	PctCompleted   float64         `json:"pctCompleted"`
	FreeDrivers    int             `json:"freeDrivers"`
	TotalDrivers   int             `json:"totalDrivers"`
	SheetConnected bool            `json:"sheetConnected"`
	RecentActivity []ActivityEntry `json:"recentActivity"`
}

// TerminalDigest is a terminal as summarized for the analyst
type TerminalDigest struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Geohash  string `json:"geohash"`
}

// Digest is the compact operations summary embedded in the prompt
type Digest struct {
	TripsActive       int              `json:"trips_active"`
	TripsPending      int              `json:"trips_pending"`
	DriversFree       int              `json:"drivers_free"`
	DriversBusy       int              `json:"drivers_busy"`
	Terminals         []TerminalDigest `json:"terminals"`
	DriversByTerminal map[string]int   `json:"drivers_by_terminal"`
	Alerts            string           `json:"alerts"`
}

// Analysis is the analyst's report. Available is false when Text is a placeholder.
type Analysis struct {
	Text        string    `json:"text"`
	Available   bool      `json:"available"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// SheetStatus reports whether terminals came from the live sheet
type SheetStatus interface {
	SheetConnected() bool
}

// DashboardUC defines the interface for the dashboard
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/victoreduardo21/drb-operacao/services/dashboard DashboardUC
type DashboardUC interface {
	Overview() Overview
	Digest() Digest
	// Analyze never fails; on any problem the result carries a placeholder
	Analyze(ctx context.Context) Analysis
}
