package usecase

import (
	"math/rand"

	"github.com/supplysight/supplysight-api/internal/application/dto"
)

// Rangos admitidos por la serie KPI; cualquier otro token cae en 7 días.
const (
	KPIRange7d  = "7d"
	KPIRange14d = "14d"
	KPIRange30d = "30d"
)

// KPIUseCase genera la serie diaria stock vs demanda del tablero.
//
// La serie es sintética: un valor uniforme en [100, 300) por día, sin
// relación con el inventario real ni consistencia entre llamadas. Es el
// marcador de posición de una agregación histórica que aún no existe; los
// consumidores no deben asumir determinismo.
type KPIUseCase struct {
	intn func(n int) int
}

// NewKPIUseCase construye el caso de uso con la fuente de azar por defecto.
func NewKPIUseCase() *KPIUseCase {
	return &KPIUseCase{intn: rand.Intn}
}

// Days traduce el token de rango a número de días. 7 por defecto.
func Days(rangeToken string) int {
	switch rangeToken {
	case KPIRange14d:
		return 14
	case KPIRange30d:
		return 30
	default:
		return 7
	}
}

// Series devuelve un punto por día para el rango pedido.
func (uc *KPIUseCase) Series(rangeToken string) []dto.KPIPoint {
	days := Days(rangeToken)
	points := make([]dto.KPIPoint, days)
	for i := range points {
		points[i] = dto.KPIPoint{
			Stock:  uc.intn(200) + 100,
			Demand: uc.intn(200) + 100,
		}
	}
	return points
}
