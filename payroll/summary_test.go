package payroll_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/alexvasa10/Mensualwork/payroll"
)

func money(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func TestSummarize_MixedWeek(t *testing.T) {
	// GIVEN: A weekday double-unit day, a weekend single-unit day with tips,
	// and an idle day carrying an overnight counter
	days := []payroll.DerivedDay{
		payroll.Derive("2024-03-15", payroll.DayRecord{ // Friday, 14h
			StartTime: "08:00", EndTime: "22:00", DietaInt: 1,
		}),
		payroll.Derive("2024-03-16", payroll.DayRecord{ // Saturday, 6h
			StartTime: "10:00", EndTime: "16:00",
			Propinas: decimal.NewFromFloat(12.5),
		}),
		payroll.Derive("2024-03-17", payroll.DayRecord{ // Sunday, idle
			Pernocta: 2,
		}),
	}

	// WHEN: Folding without tips
	s := payroll.Summarize(days, false)

	// THEN
	if s.TotalHours != 20 {
		t.Errorf("TotalHours = %v, want 20", s.TotalHours)
	}
	if s.DaysWorked != 2 {
		t.Errorf("DaysWorked = %d, want 2", s.DaysWorked)
	}
	if s.NormalUnits != 2 || s.WeekendUnits != 1 {
		t.Errorf("units = %d normal / %d weekend, want 2/1", s.NormalUnits, s.WeekendUnits)
	}
	if !s.DietTotal.Equal(money(2*15 + 1*20)) {
		t.Errorf("DietTotal = %s, want 50", s.DietTotal)
	}
	// Friday ends 22:00 (late band); Saturday ends 16:00 (day)
	if !s.NightTotal.Equal(payroll.RateNightLate) {
		t.Errorf("NightTotal = %s, want %s", s.NightTotal, payroll.RateNightLate)
	}
	if !s.DietaIntAmount.Equal(money(25)) || !s.PernoctaAmount.Equal(money(80)) {
		t.Errorf("extras = dietaInt %s / pernocta %s, want 25/80", s.DietaIntAmount, s.PernoctaAmount)
	}
	if !s.TipsTotal.Equal(decimal.NewFromFloat(12.5)) {
		t.Errorf("TipsTotal = %s, want 12.5", s.TipsTotal)
	}
	// 50 diets + 20 night + 25 dietaInt + 80 pernocta, tips excluded
	if !s.GrandTotal.Equal(money(175)) {
		t.Errorf("GrandTotal = %s, want 175", s.GrandTotal)
	}

	// WHEN: Folding the same days with tips
	withTips := payroll.Summarize(days, true)

	// THEN: Only the grand total moves
	want := money(175).Add(decimal.NewFromFloat(12.5))
	if !withTips.GrandTotal.Equal(want) {
		t.Errorf("GrandTotal with tips = %s, want %s", withTips.GrandTotal, want)
	}
	if !withTips.DietTotal.Equal(s.DietTotal) || !withTips.NightTotal.Equal(s.NightTotal) {
		t.Error("tips toggle must not change the other totals")
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := payroll.Summarize(nil, true)
	if s.TotalHours != 0 || s.DaysWorked != 0 {
		t.Errorf("empty fold produced work: %+v", s)
	}
	if !s.GrandTotal.Equal(decimal.Zero) {
		t.Errorf("GrandTotal = %s, want 0", s.GrandTotal)
	}
}
