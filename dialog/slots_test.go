package dialog

import (
	"reflect"
	"testing"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		input  string
		want   int
		wantOK bool
	}{
		{"2", 2, true},
		{"two", 2, true},
		{"order 2 please", 2, true},
		{"I'll take three!", 3, true},
		{"5", 5, true},
		{"zero", 0, false},
		{"-1", 0, false},
		{"", 0, false},
		{"0", 0, false},
		{"a lot", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseQuantity(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseQuantity(%q) = (%d, %v), want (%d, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNormalizeSweetness(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"no sugar", "0%"},
		{"none", "0%"},
		{"zero", "0%"},
		{"0%", "0%"},
		{"quarter sweet", "25%"},
		{"25", "25%"},
		{"half", "50%"},
		{"50 percent sugar", "50%"},
		{"75", "75%"},
		{"less sweet", "75%"},
		{"extra sweet", "120%"},
		{"120", "120%"},
		{"whatever", "100%"},
		{"normal", "100%"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeSweetness(tt.input); got != tt.want {
				t.Errorf("NormalizeSweetness(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseIceLevel(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"no ice", "No ice", true},
		{"without ice", "No ice", true},
		{"less ice please", "Less ice", true},
		{"light on the ice", "Less ice", true},
		{"regular", "Regular ice", true},
		{"normal ice", "Regular ice", true},
		{"extra ice", "Extra ice", true},
		{"more ice", "Extra ice", true},
		{"lukewarm", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseIceLevel(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseIceLevel(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParseToppings(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"no", []string{}},
		{"none", []string{}},
		{"boba", []string{"boba"}},
		{"boba, pudding", []string{"boba", "pudding"}},
		{"boba and grass jelly", []string{"boba", "grass jelly"}},
		{"boba, pudding and aloe", []string{"boba", "pudding", "aloe"}},
		{"boba AND jelly", []string{"boba", "jelly"}},
		{"Boba And Pudding", []string{"Boba", "Pudding"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseToppings(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseToppings(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsCancel(t *testing.T) {
	for _, s := range []string{"cancel", "Cancel", "start over", "please cancel my order"} {
		if !IsCancel(s) {
			t.Errorf("IsCancel(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"yes", "boba", ""} {
		if IsCancel(s) {
			t.Errorf("IsCancel(%q) = true, want false", s)
		}
	}
}
