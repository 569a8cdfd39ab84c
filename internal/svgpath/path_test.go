package svgpath

import (
	"errors"
	"math"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		d    string
		want Data
	}{
		{
			name: "relative move with implicit segments",
			d:    "m 0,0 10,0 0,10",
			want: Data{{Kind: Move, Position: Relative, Params: []float64{0, 0, 10, 0, 0, 10}}},
		},
		{
			name: "absolute move",
			d:    "M 0 0 100 0",
			want: Data{{Kind: Move, Position: Absolute, Params: []float64{0, 0, 100, 0}}},
		},
		{
			name: "compact numbers",
			d:    "M10-5.5.25",
			want: Data{{Kind: Move, Position: Absolute, Params: []float64{10, -5.5, 0.25}}},
		},
		{
			name: "exponent",
			d:    "M1e2,2E-1",
			want: Data{{Kind: Move, Position: Absolute, Params: []float64{100, 0.2}}},
		},
		{
			name: "multiple commands",
			d:    "M 1 2 l 3 4 z",
			want: Data{
				{Kind: Move, Position: Absolute, Params: []float64{1, 2}},
				{Kind: Line, Position: Relative, Params: []float64{3, 4}},
				{Kind: Close, Position: Relative},
			},
		},
		{
			name: "curve",
			d:    "M0 0C1 1 2 2 3 3",
			want: Data{
				{Kind: Move, Position: Absolute, Params: []float64{0, 0}},
				{Kind: CubicCurve, Position: Absolute, Params: []float64{1, 1, 2, 2, 3, 3}},
			},
		},
		{
			name: "empty",
			d:    "   ",
			want: Data{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.d)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.d, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("command count: got %d, want %d (%v)", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i].Kind != tt.want[i].Kind || got[i].Position != tt.want[i].Position {
					t.Errorf("command %d: got %s %s, want %s %s", i,
						got[i].Position, got[i].Kind, tt.want[i].Position, tt.want[i].Kind)
				}
				if len(got[i].Params) != len(tt.want[i].Params) {
					t.Fatalf("command %d params: got %v, want %v", i, got[i].Params, tt.want[i].Params)
				}
				for j := range got[i].Params {
					if math.Abs(got[i].Params[j]-tt.want[i].Params[j]) > 1e-9 {
						t.Errorf("command %d param %d: got %v, want %v", i, j, got[i].Params[j], tt.want[i].Params[j])
					}
				}
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		d    string
	}{
		{"starts with number", "10 20"},
		{"unknown letter", "M 0 0 X 1 1"},
		{"lone sign", "M 0 -"},
		{"trailing garbage", "M 0 0 #"},
		{"overflowing exponent", "M 1e400 0"},
		{"negative overflow", "M 0 0 -1e400 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.d)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.d)
			}
			if !errors.Is(err, ErrSyntax) {
				t.Errorf("error %v does not wrap ErrSyntax", err)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	if Move.String() != "move" {
		t.Errorf("Move.String(): got %q", Move.String())
	}
	if EllipticalArc.String() != "elliptical arc" {
		t.Errorf("EllipticalArc.String(): got %q", EllipticalArc.String())
	}
	if Relative.String() != "relative" || Absolute.String() != "absolute" {
		t.Errorf("Position strings: got %q/%q", Relative, Absolute)
	}
}
