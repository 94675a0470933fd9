package config

const (
	TestpruneCommand  = "testprune"
	CliConfigFileName = "testprune"
	EnvPrefix         = "TESTPRUNE"

	SystemDirConfigFilePath = "/usr/local/etc/testprune"
	WindowsAppDataEnvVar    = "LOCALAPPDATA"
	HomeConfigDirName       = ".testprune"
	CliConfigPathEnvVar     = "TESTPRUNE_CLI_CONFIG_PATH"

	// Exported to the dependency command.
	PackagePathEnvVar   = "TESTPRUNE_PACKAGE_PATH"
	RootDirectoryEnvVar = "TESTPRUNE_ROOT_DIRECTORY"

	DefaultTestPlanExtension  = ".xctestplan"
	DefaultPackagesDir        = "Packages"
	DefaultContainerPrefix    = "container:"
	DefaultDependencyFile     = "dep.json"
	DefaultDependencyCommand  = `swift package show-dependencies --package-path "$TESTPRUNE_PACKAGE_PATH" --format json`
	DefaultLogsFile           = "/dev/stderr"
	DefaultLogsLevel          = "Info"
	DefaultOutputFormat       = "json"
	DefaultTestPlanFileMode   = 0o644
	DefaultDependencyFileMode = 0o644
)

// Configuration keys, shared by viper, flags and env vars.
const (
	RootDirectoryKey     = "root_directory"
	RootPackageKey       = "root_package"
	TestPlanKey          = "test_plan"
	TestPlanExtensionKey = "test_plan_extension"
	PackagesDirKey       = "packages_dir"
	ContainerPrefixKey   = "container_prefix"
	ExcludeKey           = "exclude"
	DependencyCommandKey = "dependencies.command"
	DependencyFileKey    = "dependencies.file"
	SkipGenerateKey      = "dependencies.skip_generate"
	GitBaseRefKey        = "git.base_ref"
	LogsLevelKey         = "logs.level"
	LogsFileKey          = "logs.file"
)
