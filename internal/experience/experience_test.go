package experience

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "max of several", text: "i have 5 years and 10+ years of experience", want: 10},
		{name: "none", text: "no experience mentioned", want: 0},
		{name: "no space", text: "3years python", want: 3},
		{name: "plus sign", text: "7+ years backend", want: 7},
		{name: "uppercase is normalized", text: "Requires 4 YEARS of Go", want: 4},
		{name: "singular year ignored", text: "1 year of java", want: 0},
		{name: "explicit zero", text: "0 years required", want: 0},
		{name: "overflow ignored", text: "99999999999999999999999 years and 2 years", want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.text))
		})
	}
}
