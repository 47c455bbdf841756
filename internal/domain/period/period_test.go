package period_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridgepark/estate-crm/internal/domain/period"
)

// ──────────────────────────────────────────────────────────────────────────────
// MonthBounds: el mes contable se ancla al calendario fijo UTC+6, por lo que
// el mismo instante absoluto debe producir exactamente los mismos límites sin
// importar la zona con la que se exprese.
// ──────────────────────────────────────────────────────────────────────────────

func TestMonthBounds_MismoInstanteDistintasZonas(t *testing.T) {
	instant := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	nyc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	startUTC, endUTC := period.MonthBounds(instant)
	startNYC, endNYC := period.MonthBounds(instant.In(nyc))

	assert.True(t, startUTC.Equal(startNYC), "el inicio del mes no debe depender de la zona del llamador")
	assert.True(t, endUTC.Equal(endNYC), "el fin del mes no debe depender de la zona del llamador")
}

func TestMonthBounds_LimitesCivilesUTCMas6(t *testing.T) {
	// El 1 de agosto de 2026 a las 00:00 en UTC+6 es el 31 de julio 18:00 UTC.
	instant := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	start, end := period.MonthBounds(instant)

	assert.Equal(t, time.Date(2026, time.July, 31, 18, 0, 0, 0, time.UTC), start.UTC())
	// Último milisegundo del 31 de agosto en UTC+6.
	assert.Equal(t, time.Date(2026, time.August, 31, 17, 59, 59, 999_000_000, time.UTC), end.UTC())
}

func TestMonthBounds_InstanteCercaDeMedianocheCambiaDeMes(t *testing.T) {
	// 31 de agosto 19:00 UTC ya es 1 de septiembre 01:00 en UTC+6.
	instant := time.Date(2026, time.August, 31, 19, 0, 0, 0, time.UTC)
	start, _ := period.MonthBounds(instant)

	assert.Equal(t, time.September, start.In(period.ReportingZone).Month(),
		"un instante pasada la medianoche UTC+6 pertenece al mes siguiente")
}

// ──────────────────────────────────────────────────────────────────────────────
// Predicados temporales
// ──────────────────────────────────────────────────────────────────────────────

func TestExistedBy_SinCorteSiempreVisible(t *testing.T) {
	createdAt := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, period.ExistedBy(createdAt, time.Time{}))
}

func TestExistedBy_CorteExactoIncluye(t *testing.T) {
	ts := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, period.ExistedBy(ts, ts), "createdAt == end debe contar como visible")
	assert.False(t, period.ExistedBy(ts.Add(time.Millisecond), ts))
}

func TestInRange_IntervaloCerrado(t *testing.T) {
	start := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.August, 31, 23, 59, 59, 0, time.UTC)

	assert.True(t, period.InRange(start, start, end), "el límite inferior pertenece al intervalo")
	assert.True(t, period.InRange(end, start, end), "el límite superior pertenece al intervalo")
	assert.False(t, period.InRange(start.Add(-time.Millisecond), start, end))
	assert.False(t, period.InRange(end.Add(time.Millisecond), start, end))
}

func TestInRange_LimitesAusentesSonInfinitos(t *testing.T) {
	ts := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)
	assert.True(t, period.InRange(ts, time.Time{}, time.Time{}))
	assert.True(t, period.InRange(ts, time.Time{}, ts))
	assert.True(t, period.InRange(ts, ts, time.Time{}))
}

func TestSameMonth_ComparaEnCalendarioUTCMas6(t *testing.T) {
	// 31 de agosto 19:00 UTC es septiembre en UTC+6; 31 de agosto 10:00 UTC sigue
	// siendo agosto. Comparar timestamps absolutos daría la respuesta incorrecta.
	a := time.Date(2026, time.August, 31, 10, 0, 0, 0, time.UTC)
	b := time.Date(2026, time.August, 31, 19, 0, 0, 0, time.UTC)

	assert.False(t, period.SameMonth(a, b))
	assert.True(t, period.SameMonth(a, time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)))
}

func TestLabel_MesYAnioEnUTCMas6(t *testing.T) {
	instant := time.Date(2026, time.August, 31, 19, 0, 0, 0, time.UTC) // septiembre en UTC+6
	assert.Equal(t, "September 2026", period.Label(instant))
}
