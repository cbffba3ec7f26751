package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-c", "conf.json", "-a", "http://localhost:8000/api"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"-c", "conf.json"},
		},
		{
			name:         "long flag with equals",
			args:         []string{"--config=alt.json", "-a", "http://localhost"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"--config=alt.json"},
		},
		{
			name:         "both forms present, order preserved",
			args:         []string{"--config=first.json", "-c", "second.json", "-x", "1"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"--config=first.json", "-c", "second.json"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{},
		},
		{
			name:         "flag without value at end",
			args:         []string{"-s"},
			allowedFlags: []string{"-s"},
			want:         []string{"-s"},
		},
		{
			name:         "flag followed by another flag",
			args:         []string{"-l", "-a"},
			allowedFlags: []string{"-l"},
			want:         []string{"-l"},
		},
		{
			name:         "nil args",
			args:         nil,
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowedFlags)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigFile(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"short", []string{"-c", "a.json"}, "a.json"},
		{"long", []string{"-config", "b.json"}, "b.json"},
		{"equals", []string{"-config=c.json"}, "c.json"},
		{"mixed with other flags", []string{"-a", "http://x", "-c", "d.json", "-l", "debug"}, "d.json"},
		{"absent", []string{"-a", "http://x"}, ""},
		{"empty", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfigFile(tt.args))
		})
	}
}
