package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "keeps flag with value",
			args:    []string{"-d", "test.db", "-x", "other"},
			allowed: []string{"-d"},
			want:    []string{"-d", "test.db"},
		},
		{
			name:    "keeps equals form",
			args:    []string{"-d=test.db", "-x=other"},
			allowed: []string{"-d"},
			want:    []string{"-d=test.db"},
		},
		{
			name:    "flag without value",
			args:    []string{"-d", "-l", "debug"},
			allowed: []string{"-d", "-l"},
			want:    []string{"-d", "-l", "debug"},
		},
		{
			name:    "empty input",
			args:    nil,
			allowed: []string{"-d"},
			want:    []string{},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-d", "test.db"},
			allowed: nil,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}
