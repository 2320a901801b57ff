package payroll

import "github.com/shopspring/decimal"

// =============================================================================
// SUMMARY FOLD - Aggregate totals over derived days
// =============================================================================

// Summarize folds a sequence of derived days into one Summary. Tips are
// always totalled but only enter the grand total when includeTips is set;
// the UI exposes that as a toggle.
func Summarize(days []DerivedDay, includeTips bool) Summary {
	s := Summary{IncludeTips: includeTips}

	for _, d := range days {
		s.TotalHours += d.Hours
		if d.Hours > 0 {
			s.DaysWorked++
		}
		s.NormalUnits += d.NormalUnits
		s.WeekendUnits += d.WeekendUnits
		s.NightTotal = s.NightTotal.Add(d.NightAmount)

		s.DietaIntCount += d.Record.DietaInt
		s.ExtraCount += d.Record.Extra
		s.PernoctaCount += d.Record.Pernocta
		s.TipsTotal = s.TipsTotal.Add(d.Record.Propinas)
	}

	s.NormalDietAmount = RateDietNormal.Mul(decimal.NewFromInt(int64(s.NormalUnits)))
	s.WeekendDietAmount = RateDietWeekend.Mul(decimal.NewFromInt(int64(s.WeekendUnits)))
	s.DietTotal = s.NormalDietAmount.Add(s.WeekendDietAmount)

	s.DietaIntAmount = RateDietaInt.Mul(decimal.NewFromInt(int64(s.DietaIntCount)))
	s.ExtraAmount = RateExtra.Mul(decimal.NewFromInt(int64(s.ExtraCount)))
	s.PernoctaAmount = RatePernocta.Mul(decimal.NewFromInt(int64(s.PernoctaCount)))

	s.GrandTotal = s.DietTotal.
		Add(s.NightTotal).
		Add(s.DietaIntAmount).
		Add(s.ExtraAmount).
		Add(s.PernoctaAmount)
	if includeTips {
		s.GrandTotal = s.GrandTotal.Add(s.TipsTotal)
	}
	return s
}
