package models

import (
	"reflect"
	"testing"
)

func TestWeekdayIndex(t *testing.T) {
	tests := []struct {
		name   string
		day    string
		want   int
		wantOK bool
	}{
		{"sunday is first", "Sunday", 1, true},
		{"monday", "Monday", 2, true},
		{"saturday is last", "Saturday", 7, true},
		{"lowercase is not canonical", "monday", 0, false},
		{"abbreviation is not canonical", "Mon", 0, false},
		{"unknown", "Funday", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := WeekdayIndex(tt.day)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("WeekdayIndex(%q) = (%d, %v), want (%d, %v)", tt.day, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestWeekdayName(t *testing.T) {
	for i := 1; i <= 7; i++ {
		name, ok := WeekdayName(i)
		if !ok {
			t.Fatalf("WeekdayName(%d) not ok", i)
		}
		if idx, _ := WeekdayIndex(name); idx != i {
			t.Errorf("WeekdayIndex(WeekdayName(%d)) = %d", i, idx)
		}
	}
	for _, i := range []int{0, 8, -1} {
		if _, ok := WeekdayName(i); ok {
			t.Errorf("WeekdayName(%d) should not be ok", i)
		}
	}
}

func TestWeekdayNamesReturnsCopy(t *testing.T) {
	names := WeekdayNames()
	names[0] = "changed"
	if WeekdayNames()[0] != "Sunday" {
		t.Error("WeekdayNames() exposed its backing slice")
	}
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"Tuesday", "Tuesday", false},
		{"tuesday", "Tuesday", false},
		{" TUE ", "Tuesday", false},
		{"0", "Sunday", false},
		{"6", "Saturday", false},
		{"7", "", true},
		{"", "", true},
		{"Tues", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseWeekday(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseWeekday(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseWeekday(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseWeekdays(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{"daily", "daily", WeekdayNames(), false},
		{"daily mixed case", " Daily ", WeekdayNames(), false},
		{"ordered and deduplicated", "fri,mon,Monday", []string{"Monday", "Friday"}, false},
		{"sunday sorts first", "sat,sun", []string{"Sunday", "Saturday"}, false},
		{"invalid entry", "mon,someday", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWeekdays(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseWeekdays(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseWeekdays(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeWeekdays(t *testing.T) {
	got := NormalizeWeekdays([]string{"Wednesday", "Funday", "Sunday", "Wednesday"})
	want := []string{"Sunday", "Wednesday"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeWeekdays() = %v, want %v", got, want)
	}
	if got := NormalizeWeekdays(nil); len(got) != 0 {
		t.Errorf("NormalizeWeekdays(nil) = %v, want empty", got)
	}
}
