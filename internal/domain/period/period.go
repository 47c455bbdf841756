// Package period implementa los predicados temporales del motor de reportes y
// el cálculo de límites de mes calendario anclado a UTC+6.
//
// Todo el negocio reporta sobre el mismo calendario civil (zona fija UTC+6,
// hora de Bangladesh) sin importar la zona local del cliente: dos usuarios en
// husos distintos siempre ven el mismo mes contable. La conversión usa un
// offset fijo explícito, nunca la base de datos de zonas de la plataforma.
package period

import (
	"fmt"
	"time"
)

// ReportingZone es el calendario civil del negocio (UTC+6 fijo).
var ReportingZone = time.FixedZone("UTC+6", 6*60*60)

// ExistedBy responde "¿la entidad ya existía en un corte que termina en asOfEnd?".
// asOfEnd cero significa sin límite (siempre visible).
func ExistedBy(createdAt, asOfEnd time.Time) bool {
	if asOfEnd.IsZero() {
		return true
	}
	return !createdAt.After(asOfEnd)
}

// InRange responde si ts cae en el intervalo cerrado [start, end].
// Límites cero se tratan como -∞ / +∞.
func InRange(ts, start, end time.Time) bool {
	if !start.IsZero() && ts.Before(start) {
		return false
	}
	if !end.IsZero() && ts.After(end) {
		return false
	}
	return true
}

// MonthBounds calcula el inicio y el fin del mes contable que contiene al
// instante dado: se proyecta el instante al calendario UTC+6, se toman la
// medianoche del día 1 y el último milisegundo del último día en ese
// calendario, y se devuelven como instantes absolutos.
func MonthBounds(instant time.Time) (start, end time.Time) {
	local := instant.In(ReportingZone)
	start = time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, ReportingZone)
	end = start.AddDate(0, 1, 0).Add(-time.Millisecond)
	return start.UTC(), end.UTC()
}

// SameMonth compara año y mes de dos instantes en el calendario UTC+6.
// Es la única forma válida de responder "¿es este el mes en curso?"; comparar
// timestamps absolutos da resultados distintos según el huso del llamador.
func SameMonth(a, b time.Time) bool {
	la, lb := a.In(ReportingZone), b.In(ReportingZone)
	return la.Year() == lb.Year() && la.Month() == lb.Month()
}

// Label devuelve la etiqueta legible del mes contable, ej: "August 2026".
func Label(instant time.Time) string {
	local := instant.In(ReportingZone)
	return fmt.Sprintf("%s %d", local.Month().String(), local.Year())
}
