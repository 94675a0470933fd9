package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	errUtils "github.com/cloudposse/testprune/errors"
	cfg "github.com/cloudposse/testprune/pkg/config"
	log "github.com/cloudposse/testprune/pkg/logger"
	"github.com/cloudposse/testprune/pkg/schema"
)

var (
	cliConfig schema.Configuration
	logger    *log.Logger
)

// persistentFlagKeys maps root flags to configuration keys.
var persistentFlagKeys = map[string]string{
	"logs-level":       cfg.LogsLevelKey,
	"logs-file":        cfg.LogsFileKey,
	"root-directory":   cfg.RootDirectoryKey,
	"root-package":     cfg.RootPackageKey,
	"packages-dir":     cfg.PackagesDirKey,
	"container-prefix": cfg.ContainerPrefixKey,
}

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "testprune",
	Short: "Prune Xcode test plans to the packages affected by a change",
	Long: `testprune computes which Swift packages are affected by a set of changed files, following the
package dependency graph upwards, and removes every other package's test targets from a test plan.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Errors are printed once by main.
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return initConfig(cmd, viper.New())
	},
}

// initConfig loads the configuration into cliConfig, with the flags of cmd taking precedence, and
// installs the configured logger as the default one.
func initConfig(cmd *cobra.Command, v *viper.Viper) error {
	for name, key := range persistentFlagKeys {
		if err := bindFlag(v, cmd, key, name); err != nil {
			return err
		}
	}
	for name, key := range cmdFlagKeys[cmd.Name()] {
		if err := bindFlag(v, cmd, key, name); err != nil {
			return err
		}
	}

	configPath, _ := cmd.Flags().GetString("config")
	loaded, err := cfg.LoadConfig(v, configPath)
	if err != nil {
		return err
	}
	cliConfig = loaded

	l, err := log.NewLoggerFromCliConfig(&cliConfig)
	if err != nil {
		return errUtils.Build(err).WithHint("use one of Trace, Debug, Info, Warning, Off").Err()
	}
	Cleanup()
	logger = l
	log.SetDefault(l)
	log.Debug("Configuration loaded", "root_directory", cliConfig.RootDirectory, "root_package", cliConfig.RootPackage)
	return nil
}

func bindFlag(v *viper.Viper, cmd *cobra.Command, key string, name string) error {
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		return nil
	}
	if err := v.BindPFlag(key, flag); err != nil {
		return errUtils.Wrap(errUtils.ErrLoadConfig, err, "binding --%s", name)
	}
	return nil
}

// Execute runs the command tree. It is called by main.main().
func Execute() error {
	return RootCmd.Execute()
}

// Cleanup releases the log file opened for the current run, if any.
func Cleanup() {
	if logger == nil {
		return
	}
	log.SetDefault(log.New())
	_ = logger.Close()
	logger = nil
}

func init() {
	RootCmd.PersistentFlags().String("config", "", "Path to a testprune.yaml file, merged over the ones found in the system, home and current directories")
	RootCmd.PersistentFlags().String("logs-level", cfg.DefaultLogsLevel, "Logs level. Supported log levels are Trace, Debug, Info, Warning, Off")
	RootCmd.PersistentFlags().String("logs-file", cfg.DefaultLogsFile, "The file to write logs to. Logs can be written to any file or any standard file descriptor, including '/dev/stdout', '/dev/stderr' and '/dev/null'")
	RootCmd.PersistentFlags().String("root-directory", "", "Project root directory. Stripped from the package paths reported in the dependency graph")
	RootCmd.PersistentFlags().String("root-package", "", "Root package directory, relative to the root directory")
	RootCmd.PersistentFlags().String("packages-dir", cfg.DefaultPackagesDir, "Directory name that holds the local packages in changed file paths")
	RootCmd.PersistentFlags().String("container-prefix", cfg.DefaultContainerPrefix, "Prefix of the test plan containerPath that precedes the package path")
}
