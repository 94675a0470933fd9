package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/cloudposse/testprune/errors"
	"github.com/cloudposse/testprune/pkg/schema"
)

// isolate points HOME and the working directory at empty temp dirs so host config files do not leak in.
func isolate(t *testing.T) string {
	t.Helper()
	homedir.DisableCache = true
	t.Setenv("HOME", t.TempDir())
	t.Setenv(CliConfigPathEnvVar, "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("TESTPRUNE_XDG_CONFIG_HOME", "")

	wd := t.TempDir()
	t.Chdir(wd)
	return wd
}

func TestLoadConfig_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadConfig(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, DefaultPackagesDir, cfg.PackagesDir)
	assert.Equal(t, DefaultContainerPrefix, cfg.ContainerPrefix)
	assert.Equal(t, DefaultTestPlanExtension, cfg.TestPlanExtension)
	assert.Equal(t, DefaultDependencyCommand, cfg.Dependencies.Command)
	assert.Equal(t, DefaultDependencyFile, cfg.Dependencies.File)
	assert.Equal(t, DefaultLogsLevel, cfg.Logs.Level)
	assert.Empty(t, cfg.RootDirectory)
	assert.Empty(t, cfg.CliConfigPath)
}

func TestLoadConfig_WorkDirFile(t *testing.T) {
	wd := isolate(t)

	content := `root_directory: /proj
root_package: App
test_plan: UnitTests
packages_dir: Modules
exclude:
  - "**/*.md"
dependencies:
  skip_generate: true
logs:
  level: Debug
`
	require.NoError(t, os.WriteFile(filepath.Join(wd, "testprune.yaml"), []byte(content), 0o644))

	cfg, err := LoadConfig(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "/proj/", cfg.RootDirectory)
	assert.Equal(t, "App", cfg.RootPackage)
	assert.Equal(t, "UnitTests", cfg.TestPlan)
	assert.Equal(t, "Modules", cfg.PackagesDir)
	assert.Equal(t, []string{"**/*.md"}, cfg.Exclude)
	assert.True(t, cfg.Dependencies.SkipGenerate)
	assert.Equal(t, "Debug", cfg.Logs.Level)
	assert.NotEmpty(t, cfg.CliConfigPath)
}

func TestLoadConfig_XDGConfigDir(t *testing.T) {
	wd := isolate(t)

	xdgDir := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "testprune")
	require.NoError(t, os.MkdirAll(xdgDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(xdgDir, "testprune.yaml"), []byte("root_package: App\ntest_plan: FromXDG\n"), 0o644))

	cfg, err := LoadConfig(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "App", cfg.RootPackage)
	assert.Equal(t, "FromXDG", cfg.TestPlan)

	// The working directory file is merged over the XDG one.
	require.NoError(t, os.WriteFile(filepath.Join(wd, "testprune.yaml"), []byte("test_plan: FromWorkDir\n"), 0o644))

	cfg, err = LoadConfig(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "App", cfg.RootPackage)
	assert.Equal(t, "FromWorkDir", cfg.TestPlan)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	wd := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(wd, "testprune.yaml"), []byte("root_package: App\n"), 0o644))

	t.Setenv("TESTPRUNE_ROOT_PACKAGE", "Other")
	t.Setenv("TESTPRUNE_DEPENDENCIES_FILE", "graph.json")

	cfg, err := LoadConfig(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "Other", cfg.RootPackage)
	assert.Equal(t, "graph.json", cfg.Dependencies.File)
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("container_prefix: \"group:\"\n"), 0o644))

	cfg, err := LoadConfig(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "group:", cfg.ContainerPrefix)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	isolate(t)

	_, err := LoadConfig(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, errUtils.ErrLoadConfig)
}

func TestNormalizeRootDirectory(t *testing.T) {
	wd := isolate(t)
	require.NoError(t, os.Mkdir(filepath.Join(wd, "project"), 0o755))
	cwd, err := os.Getwd()
	require.NoError(t, err)

	tests := []struct {
		dir  string
		want string
	}{
		{"", ""},
		{"/proj", "/proj/"},
		{"/proj/", "/proj/"},
		{".", cwd + "/"},
		{"./", cwd + "/"},
		{"project", filepath.Join(cwd, "project") + "/"},
		{"project/../project/", filepath.Join(cwd, "project") + "/"},
	}
	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			got, err := NormalizeRootDirectory(tt.dir)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadConfig_RelativeRootDirectory(t *testing.T) {
	wd := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(wd, "testprune.yaml"), []byte("root_directory: .\n"), 0o644))
	cwd, err := os.Getwd()
	require.NoError(t, err)

	cfg, err := LoadConfig(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, cwd+"/", cfg.RootDirectory)
	assert.Equal(t, cwd+"/", RootPrefix(&cfg))
}

func TestPaths(t *testing.T) {
	cfg := &schema.Configuration{
		RootDirectory:     "/proj/",
		RootPackage:       "App",
		TestPlan:          "UnitTests",
		TestPlanExtension: DefaultTestPlanExtension,
		Dependencies:      schema.Dependencies{File: "dep.json"},
	}

	assert.Equal(t, "/proj/", RootPrefix(cfg))
	assert.Equal(t, "/proj/App", PackagePath(cfg))
	assert.Equal(t, "/proj/UnitTests.xctestplan", TestPlanPath(cfg))
	assert.Equal(t, "/proj/dep.json", DependencyFilePath(cfg))

	cfg.TestPlan = "Plans/UnitTests.xctestplan"
	assert.Equal(t, "/proj/Plans/UnitTests.xctestplan", TestPlanPath(cfg))

	cfg.Dependencies.File = "/tmp/graph.json"
	assert.Equal(t, "/tmp/graph.json", DependencyFilePath(cfg))
}

func TestValidateForPrune(t *testing.T) {
	tests := []struct {
		name            string
		cfg             schema.Configuration
		requireTestPlan bool
		wantErr         error
	}{
		{"missing root directory", schema.Configuration{}, false, errUtils.ErrMissingRootDirectory},
		{"relative root directory", schema.Configuration{RootDirectory: "./", RootPackage: "App"}, false, errUtils.ErrInvalidRootDirectory},
		{"missing root package", schema.Configuration{RootDirectory: "/p/"}, false, errUtils.ErrMissingRootPackage},
		{"skip generate needs no package", schema.Configuration{RootDirectory: "/p/", Dependencies: schema.Dependencies{SkipGenerate: true}}, false, nil},
		{"missing test plan", schema.Configuration{RootDirectory: "/p/", RootPackage: "App"}, true, errUtils.ErrMissingTestPlan},
		{"complete", schema.Configuration{RootDirectory: "/p/", RootPackage: "App", TestPlan: "Unit"}, true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateForPrune(&tt.cfg, tt.requireTestPlan)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
