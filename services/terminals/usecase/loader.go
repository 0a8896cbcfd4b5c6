package usecase

import (
	"context"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/victoreduardo21/drb-operacao/internal/pkg/logger"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/models"
	"github.com/victoreduardo21/drb-operacao/internal/utils"
	"github.com/victoreduardo21/drb-operacao/services/terminals"
)

// Header aliases per logical field, in priority order
var (
	coordinateKeys = []string{"ENTRADA", "COORDENADAS", "LATLNG"}
	nameKeys       = []string{"TERMINAL", "NOME", "TITULO"}
	idKeys         = []string{"ID_TERMINAL", "ID", "CODIGO"}
	cityKeys       = []string{"CIDADE", "CITY"}
	addressKeys    = []string{"ENDEREÇO", "ENDERECO", "ADDRESS"}
	cnpjKeys       = []string{"CNPJ", "DOCUMENTO"}
	radiusKeys     = []string{"RAIO", "RADIUS"}
)

const (
	defaultTerminalName = "Terminal Sem Nome"
	defaultCoordinates  = "0, 0"
	defaultRadiusKm     = 0.1
	sheetCapacity       = 100
)

// fallbackRows are served when the sheet is unreachable or empty
func fallbackRows() []map[string]interface{} {
	return []map[string]interface{}{
		{
			"ID_TERMINAL": "7",
			"TERMINAL":    "DEPOTCE/REDEX",
			"CIDADE":      "CUBATÃO",
			"ENDEREÇO":    "Av. Plínio de Queirós, Cubatão - SP",
			"CNPJ":        "4533138000107",
			"RAIO":        0.1,
			"ENTRADA":     "-23.825454, -46.364229",
		},
		{
			"ID_TERMINAL": "8",
			"TERMINAL":    "DALASTRA LOGÍSTICA",
			"CIDADE":      "SANTOS",
			"ENDEREÇO":    "Rua Alemoa, Santos - SP",
			"CNPJ":        "12345678000199",
			"RAIO":        0.1,
			"ENTRADA":     "-23.935400, -46.345000",
		},
	}
}

// Load fetches the sheet and maps every row to a terminal. A failed or empty
// fetch is served from the fallback rows, so the result is never empty.
func (uc *TerminalUC) Load(ctx context.Context) ([]models.Terminal, terminals.Source) {
	source := terminals.SourceSheet
	rows, err := uc.terminalGW.FetchTerminalRows(ctx)
	switch {
	case err != nil:
		logger.WarnCtx(ctx, "Terminal sheet unavailable, using fallback terminals", logger.ErrorField(err))
		rows, source = fallbackRows(), terminals.SourceFallback
	case len(rows) == 0:
		logger.WarnCtx(ctx, "Terminal sheet returned no rows, using fallback terminals")
		rows, source = fallbackRows(), terminals.SourceFallback
	}

	result := make([]models.Terminal, 0, len(rows))
	for _, row := range rows {
		result = append(result, mapRow(row))
	}
	return result, source
}

func mapRow(row map[string]interface{}) models.Terminal {
	lat, lng := parseCoordinates(stringOr(findValue(row, coordinateKeys), defaultCoordinates))

	id := stringOr(findValue(row, idKeys), "")
	if id == "" {
		id = "T-" + utils.ShortID(5)
	}

	return models.Terminal{
		ID:       id,
		Name:     stringOr(findValue(row, nameKeys), defaultTerminalName),
		Lat:      lat,
		Lng:      lng,
		Radius:   parseRadius(findValue(row, radiusKeys)),
		Capacity: sheetCapacity,
		City:     utils.Stringify(findValue(row, cityKeys)),
		Address:  utils.Stringify(findValue(row, addressKeys)),
		CNPJ:     utils.Stringify(findValue(row, cnpjKeys)),
	}
}

// findValue returns the value of the first alias present in row, comparing
// headers case-insensitively after trimming. Only the first present alias is
// considered, even if its cell is blank.
func findValue(row map[string]interface{}, aliases []string) interface{} {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, alias := range aliases {
		for _, k := range keys {
			if strings.EqualFold(strings.TrimSpace(k), alias) {
				return row[k]
			}
		}
	}
	return nil
}

// blank reports whether a cell counts as empty: missing, "", 0 or false
func blank(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case float64:
		return val == 0
	case bool:
		return !val
	}
	return false
}

func stringOr(v interface{}, def string) string {
	if blank(v) {
		return def
	}
	return utils.Stringify(v)
}

// parseCoordinates splits a "lat, lng" cell. Each unparsable part is 0.
func parseCoordinates(s string) (float64, float64) {
	parts := strings.Split(s, ",")
	lat := parseFloat(parts[0])
	var lng float64
	if len(parts) > 1 {
		lng = parseFloat(parts[1])
	}
	return lat, lng
}

// leadingNumber matches the decimal a cell starts with, so "-23.95 S" and
// "0.3 km" still yield their numbers
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// parseFloat reads the leading decimal of s, or 0 when there is none
func parseFloat(s string) float64 {
	f, _ := leadingFloat(s)
	return f
}

func leadingFloat(s string) (float64, bool) {
	m := leadingNumber.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// parseRadius accepts numbers or numeric strings; anything else, including a
// non-positive radius, becomes the default.
func parseRadius(v interface{}) float64 {
	if blank(v) {
		return defaultRadiusKm
	}
	var r float64
	switch val := v.(type) {
	case float64:
		r = val
	default:
		parsed, ok := leadingFloat(utils.Stringify(val))
		if !ok {
			return defaultRadiusKm
		}
		r = parsed
	}
	if r <= 0 {
		return defaultRadiusKm
	}
	return r
}
