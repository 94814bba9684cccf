package maintenance

import "testing"

func TestScheduleFirstYearServices(t *testing.T) {
	e := NewEngine()
	schedule := e.Schedule(12000, 1, 0, "Ford", "Escape", "normal")
	if len(schedule) != 1 {
		t.Fatalf("got %d years, want 1", len(schedule))
	}

	yr := schedule[0]
	if yr.StartingMileage != 0 || yr.EndingMileage != 12000 {
		t.Fatalf("mileage window = %d-%d", yr.StartingMileage, yr.EndingMileage)
	}

	// 12,000 miles crosses 5,000 twice and 7,500 once; nothing at
	// 15,000 or beyond fires.
	want := map[string]int{"Oil Change": 2, "Tire Rotation": 1}
	got := make(map[string]int)
	for _, svc := range yr.Services {
		got[svc.Service] = svc.Frequency
	}
	for name, freq := range want {
		if got[name] != freq {
			t.Errorf("%s frequency = %d, want %d", name, got[name], freq)
		}
	}
	if len(got) != len(want) {
		t.Errorf("services = %v, want exactly %v", got, want)
	}
	if yr.TotalYearCost != 2*75+50 {
		t.Errorf("total = %v, want 200", yr.TotalYearCost)
	}
}

func TestScheduleCarriesStartingMileage(t *testing.T) {
	e := NewEngine()
	schedule := e.Schedule(6000, 1, 9000, "Ford", "Escape", "normal")
	yr := schedule[0]
	if yr.StartingMileage != 9000 || yr.EndingMileage != 15000 {
		t.Fatalf("mileage window = %d-%d, want 9000-15000", yr.StartingMileage, yr.EndingMileage)
	}

	got := make(map[string]int)
	for _, svc := range yr.Services {
		got[svc.Service] = svc.Frequency
	}
	// Crossing 15,000 triggers both air filters even though the year
	// only covers 6,000 miles.
	if got["Engine Air Filter"] != 1 || got["Cabin Air Filter"] != 1 {
		t.Errorf("15k services missing: %v", got)
	}
	if got["Oil Change"] != 2 {
		t.Errorf("Oil Change frequency = %d, want 2", got["Oil Change"])
	}
}

func TestScheduleElectricSkipsEngineServices(t *testing.T) {
	e := NewEngine()
	schedule := e.Schedule(15000, 5, 0, "Tesla", "Model 3", "normal")
	for _, yr := range schedule {
		for _, svc := range yr.Services {
			switch svc.Service {
			case "Oil Change", "Engine Air Filter", "Coolant Flush", "Transmission Service", "Spark Plugs":
				t.Errorf("year %d: electric vehicle scheduled %q", yr.Year, svc.Service)
			}
		}
	}
}

func TestScheduleDrivingStyleIntervals(t *testing.T) {
	e := NewEngine()
	total := func(style string) float64 {
		var sum float64
		for _, yr := range e.Schedule(15000, 5, 0, "Ford", "Escape", style) {
			sum += yr.TotalYearCost
		}
		return sum
	}

	normal := total("normal")
	if aggressive := total("aggressive"); aggressive < normal {
		t.Errorf("aggressive total %v should be at least normal %v", aggressive, normal)
	}
	if gentle := total("gentle"); gentle > normal {
		t.Errorf("gentle total %v should be at most normal %v", gentle, normal)
	}
}

func TestBrandMultiplier(t *testing.T) {
	if got := BrandMultiplier("Toyota"); got != 0.85 {
		t.Errorf("Toyota = %v, want 0.85", got)
	}
	if got := BrandMultiplier("Mercedes-Benz"); got != 1.40 {
		t.Errorf("Mercedes-Benz = %v, want 1.40", got)
	}
	if got := BrandMultiplier("Unknown"); got != 1.0 {
		t.Errorf("unknown make = %v, want 1.0", got)
	}
}

func TestCrossings(t *testing.T) {
	cases := []struct {
		start, end, interval, want int
	}{
		{0, 12000, 5000, 2},
		{9000, 15000, 5000, 2},
		{0, 4999, 5000, 0},
		{5000, 5000, 5000, 0},
		{0, 5000, 5000, 1},
	}
	for _, c := range cases {
		if got := crossings(c.start, c.end, c.interval); got != c.want {
			t.Errorf("crossings(%d, %d, %d) = %d, want %d", c.start, c.end, c.interval, got, c.want)
		}
	}
}
