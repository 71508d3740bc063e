package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults_Valid(t *testing.T) {
	assert.NoError(t, Defaults().Validate())
}

func TestValidate_OutputDir(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "site")

	tests := []struct {
		name    string
		output  string
		source  string
		wantErr bool
	}{
		{name: "sibling of source", output: filepath.Join(root, "public"), source: src},
		{name: "embedded source", output: filepath.Join(root, "public")},
		{name: "name shares a prefix", output: filepath.Join(root, "si"), source: src},
		{name: "equals source", output: src, source: src, wantErr: true},
		{name: "parent of source", output: root, source: src, wantErr: true},
		{name: "unclean path to source", output: filepath.Join(src, "content", ".."), source: src, wantErr: true},
		{name: "working directory", output: ".", wantErr: true},
		{name: "above working directory", output: "..", wantErr: true},
		{name: "inside source", output: filepath.Join(src, "public"), source: src},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			cfg.OutputDir = tt.output
			cfg.SourceDir = tt.source
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "outputDir")
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidate_Port(t *testing.T) {
	cfg := Defaults()
	cfg.Server.Port = 0
	assert.Error(t, cfg.Validate())
}
