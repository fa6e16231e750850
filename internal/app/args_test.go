package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clipmon/internal/apperrors"
	"clipmon/internal/config"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want config.RunConfig
	}{
		{
			name: "default file mode",
			args: nil,
			want: config.RunConfig{Mode: config.ModeFile, CheckURLs: true},
		},
		{
			name: "nourl",
			args: []string{"-nourl"},
			want: config.RunConfig{Mode: config.ModeFile, CheckURLs: false},
		},
		{
			name: "db",
			args: []string{"-db", "clips.db"},
			want: config.RunConfig{Mode: config.ModeDB, DBPath: "clips.db", CheckURLs: true},
		},
		{
			name: "nourl before db",
			args: []string{"-nourl", "-db", "clips.db"},
			want: config.RunConfig{Mode: config.ModeDB, DBPath: "clips.db", CheckURLs: false},
		},
		{
			name: "export",
			args: []string{"-dboutput", "clips.db", "out.txt"},
			want: config.RunConfig{Mode: config.ModeExport, DBPath: "clips.db", OutputPath: "out.txt", CheckURLs: true},
		},
		{
			name: "db wins over export",
			args: []string{"-dboutput", "a.db", "out.txt", "-db", "b.db"},
			want: config.RunConfig{Mode: config.ModeDB, DBPath: "b.db", CheckURLs: true},
		},
		{
			name: "config",
			args: []string{"-config", "clipmon.yaml", "-db", "clips.db"},
			want: config.RunConfig{Mode: config.ModeDB, DBPath: "clips.db", CheckURLs: true, SettingsPath: "clipmon.yaml"},
		},
		{
			name: "unknown arguments ignored",
			args: []string{"stray", "--verbose"},
			want: config.RunConfig{Mode: config.ModeFile, CheckURLs: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseArgs(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseArgsMissingValues(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		message string
	}{
		{"db last", []string{"-db"}, "Missing database name after '-db' flag."},
		{"db followed by flag", []string{"-db", "-nourl"}, "Missing database name after '-db' flag."},
		{"export without paths", []string{"-dboutput"}, "Missing arguments for '-dboutput' flag."},
		{"export with one path", []string{"-dboutput", "clips.db"}, "Missing arguments for '-dboutput' flag."},
		{"export followed by flag", []string{"-dboutput", "clips.db", "-nourl"}, "Missing arguments for '-dboutput' flag."},
		{"config last", []string{"-config"}, "Missing path after '-config' flag."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseArgs(tt.args)
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.KindArgument))
			assert.Equal(t, tt.message, err.Error())
		})
	}
}
