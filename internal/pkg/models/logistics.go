package models

// LogisticsData is the whole operational state held by the store
type LogisticsData struct {
	Terminals []Terminal `json:"terminals"`
	Drivers   []Driver   `json:"drivers"`
	Trips     []Trip     `json:"trips"`
}

// Clone returns a deep copy so callers never share slices with the store
func (d LogisticsData) Clone() LogisticsData {
	out := LogisticsData{
		Terminals: make([]Terminal, len(d.Terminals)),
		Drivers:   make([]Driver, len(d.Drivers)),
		Trips:     make([]Trip, len(d.Trips)),
	}
	copy(out.Terminals, d.Terminals)
	copy(out.Drivers, d.Drivers)
	for i, t := range d.Trips {
		if t.DriverID != nil {
			id := *t.DriverID
			t.DriverID = &id
		}
		if t.Timeline != nil {
			tl := make([]TimelineEvent, len(t.Timeline))
			copy(tl, t.Timeline)
			t.Timeline = tl
		}
		out.Trips[i] = t
	}
	return out
}

// TerminalByID finds a terminal by id
func (d LogisticsData) TerminalByID(id string) (Terminal, bool) {
	for _, t := range d.Terminals {
		if t.ID == id {
			return t, true
		}
	}
	return Terminal{}, false
}

// DriverByID finds a driver by id
func (d LogisticsData) DriverByID(id string) (Driver, bool) {
	for _, dr := range d.Drivers {
		if dr.ID == id {
			return dr, true
		}
	}
	return Driver{}, false
}

// TripByID finds a trip by id
func (d LogisticsData) TripByID(id string) (Trip, bool) {
	for _, t := range d.Trips {
		if t.ID == id {
			return t, true
		}
	}
	return Trip{}, false
}

func strPtr(s string) *string { return &s }

// InitialData returns the Santos demo fleet loaded at startup
func InitialData() LogisticsData {
	seedTime := mustParseTime("2023-10-26T08:00:00Z")
	return LogisticsData{
		Terminals: []Terminal{
			{ID: "T1", Name: "Porto de Santos - Terminal 1", Lat: -23.9615, Lng: -46.3280, Radius: 0.15, Capacity: 200},
			{ID: "T2", Name: "CD Retroporto Santos", Lat: -23.9350, Lng: -46.3500, Radius: 0.1, Capacity: 100},
			{ID: "T3", Name: "Terminal Alemoa", Lat: -23.9300, Lng: -46.3650, Radius: 0.08, Capacity: 50},
			{ID: "T4", Name: "Pátio Cubatão", Lat: -23.8900, Lng: -46.4200, Radius: 0.2, Capacity: 80},
		},
		Drivers: []Driver{
			{ID: "D1", Name: "Carlos Silva", Plate: "GJC1J57", CurrentLat: -23.9550, CurrentLng: -46.3300, Status: DriverBusy, LastUpdate: seedTime},
			{ID: "D2", Name: "Ana Oliveira", Plate: "RXQ9D22", CurrentLat: -23.9320, CurrentLng: -46.3250, Status: DriverBusy, LastUpdate: seedTime},
			{ID: "D3", Name: "Roberto Santos", Plate: "LOG5544", CurrentLat: -23.9310, CurrentLng: -46.3660, Status: DriverFree, LastUpdate: seedTime},
			{ID: "D4", Name: "Fernanda Lima", Plate: "TRK2023", CurrentLat: -23.9100, CurrentLng: -46.3900, Status: DriverFree, LastUpdate: seedTime},
		},
		Trips: []Trip{
			{
				ID:                    "TR-001",
				DriverID:              strPtr("D1"),
				OriginTerminalID:      "T2",
				DestinationTerminalID: "T1",
				CustomerName:          "Logística Baixada Santista",
				CargoType:             "Containers 40ft",
				Status:                TripInTransit,
				CreatedAt:             mustParseTime("2023-10-26T08:00:00Z"),
				Timeline: []TimelineEvent{
					{Event: EventTripStarted, Timestamp: mustParseTime("2023-10-26T08:15:00Z"), Location: "App"},
					{Event: EventArrivedOrigin, Timestamp: mustParseTime("2023-10-26T09:00:00Z"), Location: "CD Retroporto"},
					{Event: EventDeparted, Timestamp: mustParseTime("2023-10-26T10:30:00Z"), Location: "CD Retroporto"},
				},
			},
			{
				ID:                    "TR-002",
				DriverID:              strPtr("D2"),
				OriginTerminalID:      "T1",
				DestinationTerminalID: "T3",
				CustomerName:          "Exportadora Global",
				CargoType:             "Eletrônicos",
				Status:                TripToOrigin,
				CreatedAt:             mustParseTime("2023-10-26T11:00:00Z"),
				Timeline: []TimelineEvent{
					{Event: EventTripStarted, Timestamp: mustParseTime("2023-10-26T11:05:00Z"), Location: "App"},
				},
			},
			{
				ID:                    "TR-003",
				OriginTerminalID:      "T4",
				DestinationTerminalID: "T2",
				CustomerName:          "Varejo Litoral",
				CargoType:             "Vestuário",
				Status:                TripPending,
				CreatedAt:             mustParseTime("2023-10-26T12:30:00Z"),
				Timeline:              []TimelineEvent{},
			},
		},
	}
}
