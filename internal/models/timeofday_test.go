package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		{"07:30", TimeOfDay{Hour: 7, Minute: 30}, false},
		{"00:00", TimeOfDay{}, false},
		{"23:59", TimeOfDay{Hour: 23, Minute: 59}, false},
		{"24:00", TimeOfDay{}, true},
		{"7.30", TimeOfDay{}, true},
		{"", TimeOfDay{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTimeOfDay(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseTimeOfDay(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTimeOfDay_Validate(t *testing.T) {
	if err := (TimeOfDay{Hour: 12, Minute: 5}).Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
	for _, bad := range []TimeOfDay{{Hour: -1}, {Hour: 24}, {Minute: 60}, {Minute: -5}} {
		if err := bad.Validate(); err == nil {
			t.Errorf("Validate(%+v) should fail", bad)
		}
	}
}

func TestTimeOfDay_On(t *testing.T) {
	day := time.Date(2026, 10, 19, 22, 45, 10, 0, time.UTC)
	got := TimeOfDay{Hour: 6, Minute: 15}.On(day)
	want := time.Date(2026, 10, 19, 6, 15, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("On() = %v, want %v", got, want)
	}
	if m := (TimeOfDay{Hour: 6, Minute: 15}).Minutes(); m != 375 {
		t.Errorf("Minutes() = %d, want 375", m)
	}
}

func TestTimeOfDay_JSON(t *testing.T) {
	data, err := json.Marshal(TimeOfDay{Hour: 8, Minute: 5})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"08:05"` {
		t.Errorf("Marshal = %s, want \"08:05\"", data)
	}

	var tod TimeOfDay
	if err := json.Unmarshal([]byte(`"21:40"`), &tod); err != nil {
		t.Fatal(err)
	}
	if tod != (TimeOfDay{Hour: 21, Minute: 40}) {
		t.Errorf("Unmarshal = %v", tod)
	}
	if err := json.Unmarshal([]byte(`"late"`), &tod); err == nil {
		t.Error("Unmarshal should reject malformed times")
	}
}
