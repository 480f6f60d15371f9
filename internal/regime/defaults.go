package regime

const defaultCommoditySeries = "other"

// Default returns the shipped tables. Regime values follow the Inland
// Revenue Act as amended; index series are fiscal-year averages.
func Default() *Table {
	return NewTable(defaultRegimes(), defaultFX(), defaultCommodity())
}

func defaultRegimes() map[string]Regime {
	// Pre-2020 six-slab schedule, Rs 600,000 slabs at 4% steps.
	legacy := Regime{
		PersonalRelief: 500_000,
		Brackets: []Bracket{
			{UpperLimit: 600_000, Rate: 0.04},
			{UpperLimit: 1_200_000, Rate: 0.08},
			{UpperLimit: 1_800_000, Rate: 0.12},
			{UpperLimit: 2_400_000, Rate: 0.16},
			{UpperLimit: 3_000_000, Rate: 0.20},
			{Rate: 0.24},
		},
	}
	// 2020/21–2021/22 concessionary schedule.
	concessionary := Regime{
		PersonalRelief: 3_000_000,
		Brackets: []Bracket{
			{UpperLimit: 3_000_000, Rate: 0.06},
			{UpperLimit: 6_000_000, Rate: 0.12},
			{Rate: 0.18},
		},
	}
	// 2022/23 onwards: Rs 500,000 slabs, 6% steps to 36%.
	current := Regime{
		PersonalRelief: 1_200_000,
		Brackets: []Bracket{
			{UpperLimit: 500_000, Rate: 0.06},
			{UpperLimit: 1_000_000, Rate: 0.12},
			{UpperLimit: 1_500_000, Rate: 0.18},
			{UpperLimit: 2_000_000, Rate: 0.24},
			{UpperLimit: 2_500_000, Rate: 0.30},
			{Rate: 0.36},
		},
	}
	// 2025/26 revision: relief raised, widened first slab, 12% slab removed.
	revised := Regime{
		PersonalRelief: 1_800_000,
		Brackets: []Bracket{
			{UpperLimit: 1_000_000, Rate: 0.06},
			{UpperLimit: 1_500_000, Rate: 0.18},
			{UpperLimit: 2_000_000, Rate: 0.24},
			{UpperLimit: 2_500_000, Rate: 0.30},
			{Rate: 0.36},
		},
	}
	return map[string]Regime{
		"2015": legacy,
		"2020": concessionary,
		"2022": current,
		"2023": current,
		"2024": current,
		"2025": revised,
	}
}

func defaultFX() map[string]map[string]float64 {
	return map[string]map[string]float64{
		"USD": {
			"2015": 135, "2016": 146, "2017": 153, "2018": 165,
			"2019": 180, "2020": 190, "2021": 200, "2022": 360,
			"2023": 325, "2024": 300, "2025": 298,
		},
		"GBP": {
			"2015": 205, "2017": 200, "2019": 228, "2021": 270,
			"2022": 430, "2023": 400, "2024": 382, "2025": 380,
		},
		"EUR": {
			"2015": 150, "2017": 175, "2019": 200, "2021": 232,
			"2022": 375, "2023": 350, "2024": 325, "2025": 330,
		},
		"AUD": {
			"2015": 100, "2017": 117, "2019": 123, "2021": 146,
			"2022": 240, "2023": 212, "2024": 198, "2025": 195,
		},
	}
}

func defaultCommodity() map[string]map[string]float64 {
	return map[string]map[string]float64{
		// USD per troy ounce, fiscal-year average.
		"gold": {
			"2015": 1150, "2016": 1255, "2017": 1285, "2018": 1270,
			"2019": 1480, "2020": 1855, "2021": 1800, "2022": 1755,
			"2023": 1945, "2024": 2390, "2025": 3120,
		},
		"silver": {
			"2015": 15.2, "2016": 17.5, "2017": 16.9, "2018": 15.3,
			"2019": 16.8, "2020": 24.5, "2021": 24.0, "2022": 21.0,
			"2023": 23.3, "2024": 29.8, "2025": 35.5,
		},
		// Composite coloured-stone index, 2015 = 100.
		"gems": {
			"2015": 100, "2017": 108, "2019": 117, "2021": 128,
			"2022": 136, "2023": 145, "2024": 158, "2025": 171,
		},
		// Fallback series for unclassified precious items.
		"other": {
			"2015": 100, "2017": 106, "2019": 113, "2021": 121,
			"2022": 128, "2023": 134, "2024": 142, "2025": 150,
		},
	}
}
