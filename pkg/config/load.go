package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	errUtils "github.com/cloudposse/testprune/errors"
	log "github.com/cloudposse/testprune/pkg/logger"
	"github.com/cloudposse/testprune/pkg/schema"
	"github.com/cloudposse/testprune/pkg/xdg"
)

// LoadConfig reads the configuration into v and decodes it.
// Sources, from lower to higher priority:
// defaults, system dir, home dir (~/.testprune), XDG config dir (~/.config/testprune), current directory,
// $TESTPRUNE_CLI_CONFIG_PATH, configPath, TESTPRUNE_* env vars, flags bound to v.
func LoadConfig(v *viper.Viper, configPath string) (schema.Configuration, error) {
	var cfg schema.Configuration

	v.SetConfigType("yaml")
	v.SetTypeByDefaultValue(true)
	SetDefaultConfiguration(v)

	readers := []func(*viper.Viper) error{
		readSystemConfig,
		readHomeConfig,
		readXDGConfig,
		readWorkDirConfig,
		readEnvConfigPath,
	}
	for _, read := range readers {
		if err := read(v); err != nil {
			return cfg, errUtils.Wrap(errUtils.ErrLoadConfig, err, "reading config")
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			return cfg, errUtils.Build(errUtils.Wrap(errUtils.ErrLoadConfig, err, "file=%s", configPath)).
				WithHintf("check that %s exists and is valid YAML", configPath).
				Err()
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, errUtils.Wrap(errUtils.ErrLoadConfig, err, "decoding config")
	}

	cfg.CliConfigPath = v.ConfigFileUsed()
	if cfg.CliConfigPath == "" {
		log.Debug("testprune.yaml was not found, using defaults", "paths", "system dir, home dir, current dir, ENV vars")
	} else {
		log.Debug("Loaded config", "file", cfg.CliConfigPath)
	}

	rootDirectory, err := NormalizeRootDirectory(cfg.RootDirectory)
	if err != nil {
		return cfg, err
	}
	cfg.RootDirectory = rootDirectory
	return cfg, nil
}

// SetDefaultConfiguration registers every key so env vars reach Unmarshal.
func SetDefaultConfiguration(v *viper.Viper) {
	v.SetDefault(RootDirectoryKey, "")
	v.SetDefault(RootPackageKey, "")
	v.SetDefault(TestPlanKey, "")
	v.SetDefault(TestPlanExtensionKey, DefaultTestPlanExtension)
	v.SetDefault(PackagesDirKey, DefaultPackagesDir)
	v.SetDefault(ContainerPrefixKey, DefaultContainerPrefix)
	v.SetDefault(ExcludeKey, []string{})
	v.SetDefault(DependencyCommandKey, DefaultDependencyCommand)
	v.SetDefault(DependencyFileKey, DefaultDependencyFile)
	v.SetDefault(SkipGenerateKey, false)
	v.SetDefault(GitBaseRefKey, "")
	v.SetDefault(LogsFileKey, DefaultLogsFile)
	v.SetDefault(LogsLevelKey, DefaultLogsLevel)
}

func readSystemConfig(v *viper.Viper) error {
	dir := SystemDirConfigFilePath
	if runtime.GOOS == "windows" {
		dir = os.Getenv(WindowsAppDataEnvVar)
		if dir == "" {
			return nil
		}
		dir = filepath.Join(dir, CliConfigFileName)
	}
	return mergeOptionalConfig(v, dir)
}

func readHomeConfig(v *viper.Viper) error {
	home, err := homedir.Dir()
	if err != nil {
		return err
	}
	return mergeOptionalConfig(v, filepath.Join(home, HomeConfigDirName))
}

func readXDGConfig(v *viper.Viper) error {
	return mergeOptionalConfig(v, xdg.ConfigDir())
}

func readWorkDirConfig(v *viper.Viper) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	return mergeOptionalConfig(v, wd)
}

func readEnvConfigPath(v *viper.Viper) error {
	dir := os.Getenv(CliConfigPathEnvVar)
	if dir == "" {
		return nil
	}
	log.Debug("Found config ENV", CliConfigPathEnvVar, dir)
	return mergeOptionalConfig(v, dir)
}

// mergeOptionalConfig merges dir/testprune.yaml into v; a missing file is not an error.
func mergeOptionalConfig(v *viper.Viper, dir string) error {
	path := filepath.Join(dir, CliConfigFileName+".yaml")
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}
