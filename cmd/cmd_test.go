package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Dulitha99/Research-Website/internal/config"
	"github.com/Dulitha99/Research-Website/internal/contact"
	"github.com/Dulitha99/Research-Website/site"
)

func TestInitializeConfig_Defaults(t *testing.T) {
	require.NoError(t, initializeConfig(buildCmd))

	d := config.Defaults()
	assert.Equal(t, d.OutputDir, appConfig.OutputDir)
	assert.Equal(t, d.Server.Port, appConfig.Server.Port)
	assert.Equal(t, 2*time.Second, appConfig.Contact.SendDelay)
	assert.Equal(t, 5*time.Second, appConfig.Contact.ResetAfter)
	assert.Empty(t, appConfig.SourceDir)
}

func TestInitializeConfig_Environment(t *testing.T) {
	out := t.TempDir()
	t.Setenv("SITE_OUTPUTDIR", out)
	t.Setenv("SITE_CONTACT_RATEPERMINUTE", "9")
	t.Setenv("SITE_CONTACT_RESETAFTER", "3s")

	require.NoError(t, initializeConfig(buildCmd))
	assert.Equal(t, out, appConfig.OutputDir)
	assert.Equal(t, 9, appConfig.Contact.RatePerMin)
	assert.Equal(t, 3*time.Second, appConfig.Contact.ResetAfter)
}

func TestInitializeConfig_Invalid(t *testing.T) {
	t.Setenv("SITE_SERVER_PORT", "70000")
	err := initializeConfig(buildCmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.port")
}

func TestSiteSource(t *testing.T) {
	src, err := siteSource(config.Config{})
	require.NoError(t, err)
	assert.Equal(t, site.FS, src)

	_, err = siteSource(config.Config{SourceDir: filepath.Join(t.TempDir(), "missing")})
	assert.Error(t, err)
}

func TestRunBuildProcess_EmbeddedSite(t *testing.T) {
	cfg := config.Defaults()
	cfg.OutputDir = filepath.Join(t.TempDir(), "public")

	res, err := runBuildProcess(cfg, zap.NewNop())
	require.NoError(t, err)
	assert.Contains(t, res.Pages, "index.html")
	assert.Contains(t, res.Pages, "contact/index.html")
	assert.FileExists(t, filepath.Join(cfg.OutputDir, "404.html"))
}

func TestNewDeduper_MemoryWithoutRedis(t *testing.T) {
	d, closeFn := newDeduper(config.Defaults().Contact, zap.NewNop())
	defer closeFn()
	assert.IsType(t, &contact.MemoryDeduper{}, d)
}

func TestSourceDirs(t *testing.T) {
	dirs := sourceDirs("site")
	assert.Equal(t, []string{
		filepath.Join("site", "content"),
		filepath.Join("site", "layouts"),
		filepath.Join("site", "data"),
		filepath.Join("site", "static"),
	}, dirs)
}

func TestInitializeConfig_MissingConfigFile(t *testing.T) {
	prev := cfgFile
	cfgFile = filepath.Join(t.TempDir(), "absent.yaml")
	t.Cleanup(func() { cfgFile = prev })

	err := initializeConfig(buildCmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.Contains(t, err.Error(), "absent.yaml")
}

func TestInitializeConfig_OutputOverSource(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "site")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "content"), 0o755))
	t.Setenv("SITE_SOURCEDIR", src)

	for _, out := range []string{src, root} {
		t.Setenv("SITE_OUTPUTDIR", out)
		err := initializeConfig(buildCmd)
		require.Error(t, err, out)
		assert.Contains(t, err.Error(), "sourceDir")
	}
	assert.DirExists(t, filepath.Join(src, "content"), "rejected before anything is removed")
}
