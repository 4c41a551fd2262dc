package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIDList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []int64
	}{
		{name: "empty", in: "", want: nil},
		{name: "blank", in: "   ", want: nil},
		{name: "single", in: "7", want: []int64{7}},
		{name: "list", in: "1,2,3", want: []int64{1, 2, 3}},
		{name: "spaced", in: " 1 , 2 ", want: []int64{1, 2}},
		{name: "junk skipped", in: "1,x,3", want: []int64{1, 3}},
		{name: "non positive skipped", in: "0,-2,5", want: []int64{5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseIDList(tt.in))
		})
	}
}
