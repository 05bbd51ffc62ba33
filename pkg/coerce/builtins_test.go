package coerce

import (
	"encoding/json"
	"testing"
)

func TestToString(t *testing.T) {
	cases := []struct {
		name  string
		input any
		want  string
	}{
		{name: "string passthrough", input: "low", want: "low"},
		{name: "int", input: 3, want: "3"},
		{name: "whole float", input: 3.0, want: "3"},
		{name: "fractional float", input: 3.5, want: "3.5"},
		{name: "bool", input: true, want: "true"},
		{name: "bytes", input: []byte("raw"), want: "raw"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ToString(tc.input)
			if err != nil {
				t.Fatalf("coerce: %v", err)
			}
			if got != tc.want {
				t.Fatalf("want %q, got %v", tc.want, got)
			}
		})
	}
}

func TestToInteger(t *testing.T) {
	cases := []struct {
		name    string
		input   any
		want    int64
		wantErr bool
	}{
		{name: "int", input: 2, want: 2},
		{name: "int64", input: int64(-7), want: -7},
		{name: "numeric string", input: "2", want: 2},
		{name: "padded string", input: " 42 ", want: 42},
		{name: "whole float", input: 1977.0, want: 1977},
		{name: "json number", input: json.Number("12"), want: 12},
		{name: "fractional float", input: 2.5, wantErr: true},
		{name: "textual string", input: "two", wantErr: true},
		{name: "bool", input: true, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ToInteger(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("coerce: %v", err)
			}
			if got != tc.want {
				t.Fatalf("want %d, got %v", tc.want, got)
			}
		})
	}
}

func TestToNumber(t *testing.T) {
	cases := []struct {
		name    string
		input   any
		want    float64
		wantErr bool
	}{
		{name: "float passthrough", input: 3.5, want: 3.5},
		{name: "int", input: 3, want: 3},
		{name: "numeric string", input: "3.5", want: 3.5},
		{name: "json number", input: json.Number("0.25"), want: 0.25},
		{name: "textual string", input: "pi", wantErr: true},
		{name: "slice", input: []int{1}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ToNumber(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("coerce: %v", err)
			}
			if got != tc.want {
				t.Fatalf("want %v, got %v", tc.want, got)
			}
		})
	}
}

func TestToBoolean(t *testing.T) {
	cases := []struct {
		name    string
		input   any
		want    bool
		wantErr bool
	}{
		{name: "bool passthrough", input: true, want: true},
		{name: "true string", input: "true", want: true},
		{name: "zero", input: 0, want: false},
		{name: "one", input: 1, want: true},
		{name: "other int", input: 2, wantErr: true},
		{name: "textual string", input: "yep", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ToBoolean(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("coerce: %v", err)
			}
			if got != tc.want {
				t.Fatalf("want %v, got %v", tc.want, got)
			}
		})
	}
}
