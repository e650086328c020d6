package scoring

import (
	"math"
	"sort"
)

// Classe de saúde de um placement, derivada do Health Score
type HealthClass string

const (
	HealthVeryGood    HealthClass = "very_good"
	HealthGood        HealthClass = "good"
	HealthNeutral     HealthClass = "neutral"
	HealthSlightlyBad HealthClass = "slightly_bad"
	HealthBad         HealthClass = "bad"
)

// HealthComponents são os componentes do Health Score:
//
//	HS = round((CPLGap + Trends + Diagnostics + TodayAdj) × VolumeFactor)
//
// CPLGap ±45, Trends ±15, Diagnostics até -30, TodayAdj 0..+30,
// VolumeFactor 0.6..1.0.
type HealthComponents struct {
	CPLGap       float64 `json:"cpl_gap"`
	Trends       float64 `json:"trends"`
	Diagnostics  float64 `json:"diagnostics"`
	TodayAdj     float64 `json:"today_adj"`
	VolumeFactor float64 `json:"volume_factor"`
}

// HealthScore é o resultado do cálculo para um placement
type HealthScore struct {
	Score      int              `json:"hs"`
	Class      HealthClass      `json:"hs_class"`
	Components HealthComponents `json:"components"`
}

// cplGap mede o desvio do CPL em relação ao alvo (componente 1, ±45).
// Interpolação linear entre os pontos: ratio 0.5 → +45, 0.7 → +30,
// 1.0 → 0, 1.5 → -30, 2.0 → -45.
func cplGap(cpl *float64, targetCPL float64) float64 {
	if cpl == nil || *cpl == 0 || targetCPL == 0 {
		return 0
	}

	ratio := *cpl / targetCPL

	switch {
	case ratio <= 0.5:
		return 45
	case ratio >= 2.0:
		return -45
	case ratio <= 0.7:
		return 45 - (ratio-0.5)*(15/0.2)
	case ratio <= 1.0:
		return 30 - (ratio-0.7)*(30/0.3)
	case ratio <= 1.5:
		return 0 - (ratio-1.0)*(30/0.5)
	default:
		return -30 - (ratio-1.5)*(15/0.5)
	}
}

// trendScore compara o CPL de 3 dias com o de 7 (componente 2, ±15).
// CPL de 3 dias menor que o de 7 indica tendência de melhora.
func trendScore(cpl3d, cpl7d *float64) float64 {
	if cpl3d == nil || cpl7d == nil || *cpl7d == 0 {
		return 0
	}

	trendPct := (*cpl3d - *cpl7d) / *cpl7d * 100
	trendPct = math.Max(-20, math.Min(20, trendPct))

	// -20% → +15, +20% → -15
	return -trendPct * (15.0 / 20.0)
}

// diagnostics soma as penalidades de indicadores ruins (componente 3,
// até -30): CTR < 1% → -8, CPM > mediana×1.3 → -12, frequência > 2 → -10
func diagnostics(ctr, cpm, frequency, medianCPM *float64) float64 {
	penalty := 0.0

	if ctr != nil && *ctr < 1.0 {
		penalty -= 8
	}

	if cpm != nil && medianCPM != nil && *medianCPM > 0 && *cpm > *medianCPM*1.3 {
		penalty -= 12
	}

	if frequency != nil && *frequency > 2.0 {
		penalty -= 10
	}

	return penalty
}

// minTodayImpressions é o volume mínimo para a compensação do dia contar
const minTodayImpressions = 500

// todayAdjustment dá bônus quando o CPL de hoje está melhor que o de ontem
// (componente 4, 0..+30). Exige volume mínimo de impressões.
func todayAdjustment(cplToday, cplYesterday *float64, impressionsToday int64) float64 {
	if impressionsToday < minTodayImpressions {
		return 0
	}

	if cplToday == nil || cplYesterday == nil || *cplYesterday == 0 {
		return 0
	}

	if *cplToday <= 0 {
		return 0
	}

	improvement := (*cplYesterday - *cplToday) / *cplYesterday * 100
	if improvement <= 0 {
		return 0
	}

	return math.Min(30, improvement)
}

// volumeFactor reduz o peso de placements com pouco volume (componente 5)
func volumeFactor(impressions int64) float64 {
	switch {
	case impressions < 500:
		return 0.6
	case impressions < 1000:
		return 0.7
	case impressions < 2000:
		return 0.8
	case impressions < 5000:
		return 0.9
	default:
		return 1.0
	}
}

// classifyHealth mapeia o score na classe
func classifyHealth(score int) HealthClass {
	switch {
	case score >= 25:
		return HealthVeryGood
	case score >= 5:
		return HealthGood
	case score >= -5:
		return HealthNeutral
	case score >= -25:
		return HealthSlightlyBad
	default:
		return HealthBad
	}
}

// calculateHealthScore monta o score completo de um placement
func calculateHealthScore(
	targetCPL float64,
	cplYesterday, cplToday, cpl3d, cpl7d *float64,
	ctr, cpm, frequency, medianCPM *float64,
	impressionsToday int64,
) HealthScore {
	components := HealthComponents{
		CPLGap:       cplGap(cplYesterday, targetCPL),
		Trends:       trendScore(cpl3d, cpl7d),
		Diagnostics:  diagnostics(ctr, cpm, frequency, medianCPM),
		TodayAdj:     todayAdjustment(cplToday, cplYesterday, impressionsToday),
		VolumeFactor: volumeFactor(impressionsToday),
	}

	raw := (components.CPLGap + components.Trends + components.Diagnostics + components.TodayAdj) * components.VolumeFactor
	score := int(math.Round(raw))

	return HealthScore{
		Score:      score,
		Class:      classifyHealth(score),
		Components: components,
	}
}

// medianCPM calcula a mediana dos CPMs dos placements da conta, usada como
// referência pelo componente de diagnóstico
func medianCPM(cpms []float64) *float64 {
	values := make([]float64, 0, len(cpms))
	for _, v := range cpms {
		if v > 0 {
			values = append(values, v)
		}
	}

	if len(values) == 0 {
		return nil
	}

	sort.Float64s(values)

	mid := len(values) / 2
	var median float64
	if len(values)%2 == 0 {
		median = (values[mid-1] + values[mid]) / 2
	} else {
		median = values[mid]
	}

	return &median
}
