package production

import (
	"github.com/moldworks/moldtrack/pkg/domain/entities"
)

// AggregateByDate rolls up every shift record matching the given date.
// Performance here is total/metaTarget, deliberately a different formula
// from the per-shift (good * cycle)/operativeSeconds; the two coexist in
// the system of record and must not be unified without a product decision.
// Percentages are zeroed when total or metaTarget is not positive; the
// count columns are still reported.
func AggregateByDate(records []entities.ShiftRecord, date string) DailyAggregate {
	agg := DailyAggregate{Date: date}
	for _, rec := range records {
		if rec.Date != date {
			continue
		}
		agg.Count++
		agg.Total += coerceQty(rec.TotalProduced)
		agg.Scrap += coerceQty(rec.Scrap)
		agg.MetaTarget += coerceQty(rec.OperativeTarget)
	}
	agg.Good = agg.Total - agg.Scrap
	agg.Performance, agg.Quality, agg.OEE = rollupPercentages(agg.Total, agg.Good, agg.MetaTarget)
	return agg
}

// AggregateGlobal rolls up every shift record with no date filter and
// counts the distinct dates represented.
func AggregateGlobal(records []entities.ShiftRecord) GlobalAggregate {
	agg := GlobalAggregate{}
	dates := make(map[string]struct{})
	for _, rec := range records {
		agg.RecordCount++
		agg.Total += coerceQty(rec.TotalProduced)
		agg.Scrap += coerceQty(rec.Scrap)
		agg.MetaTarget += coerceQty(rec.OperativeTarget)
		dates[rec.Date] = struct{}{}
	}
	agg.DistinctDates = len(dates)
	agg.Good = agg.Total - agg.Scrap
	agg.Performance, agg.Quality, agg.OEE = rollupPercentages(agg.Total, agg.Good, agg.MetaTarget)
	return agg
}

// MachineHistory returns the arithmetic mean of each stored percentage
// column across all of a machine's shift records. This is a mean of the
// already-computed per-shift percentages, not a recomputation from raw
// sums.
func MachineHistory(records []entities.ShiftRecord, machineID entities.MachineID) MachineAverages {
	avg := MachineAverages{MachineID: machineID}
	var a, p, q, o float64
	for _, rec := range records {
		if rec.MachineID != machineID {
			continue
		}
		avg.RecordCount++
		a += rec.Availability
		p += rec.Performance
		q += rec.Quality
		o += rec.OEE
	}
	if avg.RecordCount == 0 {
		return avg
	}
	n := float64(avg.RecordCount)
	avg.Availability = round2(a / n)
	avg.Performance = round2(p / n)
	avg.Quality = round2(q / n)
	avg.OEE = round2(o / n)
	return avg
}

// DailyAverage returns the arithmetic mean of previously persisted daily
// OEE percentages. It averages the stored values as-is; nothing is
// re-derived from raw counts.
func DailyAverage(dailyOEE []float64) float64 {
	if len(dailyOEE) == 0 {
		return 0
	}
	var sum float64
	for _, v := range dailyOEE {
		sum += v
	}
	return round2(sum / float64(len(dailyOEE)))
}

// ProducedByMold sums good units across all machines' shift records for
// one mold. An empty cutoffDate means no cutoff; otherwise only records
// dated on or before the cutoff (inclusive) are counted.
func ProducedByMold(records []entities.ShiftRecord, moldID entities.MoldID, cutoffDate string) entities.Quantity {
	var produced entities.Quantity
	for _, rec := range records {
		if rec.MoldID != moldID {
			continue
		}
		if cutoffDate != "" && rec.Date > cutoffDate {
			continue
		}
		produced += coerceQty(rec.GoodUnits)
	}
	return produced
}

func rollupPercentages(total, good, metaTarget entities.Quantity) (performance, quality, oee float64) {
	if total <= 0 || metaTarget <= 0 {
		return 0, 0, 0
	}
	performance = float64(total) / float64(metaTarget)
	quality = float64(good) / float64(total)
	oee = performance * quality * 100
	return round2(performance), round2(quality), round2(oee)
}
