package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []float64
	}{
		{
			name: "empty string",
			raw:  "",
			want: []float64{},
		},
		{
			name: "whitespace only",
			raw:  "   ",
			want: []float64{},
		},
		{
			name: "json array of numbers",
			raw:  "[100, 200.5, 300]",
			want: []float64{100, 200.5, 300},
		},
		{
			name: "json array with numeric strings",
			raw:  `["100", 200, "300.5"]`,
			want: []float64{100, 200, 300.5},
		},
		{
			name: "json array drops non-numeric elements",
			raw:  `[100, "abc", null, true, 50]`,
			want: []float64{100, 50},
		},
		{
			name: "empty json array",
			raw:  "[]",
			want: []float64{},
		},
		{
			name: "json null",
			raw:  "null",
			want: []float64{},
		},
		{
			name: "single json number",
			raw:  "750",
			want: []float64{750},
		},
		{
			name: "single quoted number",
			raw:  `"125.5"`,
			want: []float64{125.5},
		},
		{
			name: "non-numeric scalar falls back to zero",
			raw:  "true",
			want: []float64{0},
		},
		{
			name: "comma separated numbers",
			raw:  "100, 200, 300",
			want: []float64{100, 200, 300},
		},
		{
			name: "comma separated drops bad tokens",
			raw:  "100, abc, 50",
			want: []float64{100, 50},
		},
		{
			name: "comma separated with trailing comma",
			raw:  "100, 200,",
			want: []float64{100, 200},
		},
		{
			name: "all tokens invalid",
			raw:  "abc, def",
			want: []float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.raw))
		})
	}
}

func TestSum(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{name: "json array", raw: "[100, 200]", want: 300},
		{name: "comma separated", raw: "150, 250, 100", want: 500},
		{name: "empty", raw: "", want: 0},
		{name: "partial garbage", raw: "100, oops, 25.5", want: 125.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sum(tt.raw))
		})
	}
}
