package schema

// Configuration is the schema of `testprune.yaml`.
type Configuration struct {
	RootDirectory     string       `yaml:"root_directory" json:"root_directory" mapstructure:"root_directory"`
	RootPackage       string       `yaml:"root_package" json:"root_package" mapstructure:"root_package"`
	TestPlan          string       `yaml:"test_plan" json:"test_plan" mapstructure:"test_plan"`
	TestPlanExtension string       `yaml:"test_plan_extension" json:"test_plan_extension" mapstructure:"test_plan_extension"`
	PackagesDir       string       `yaml:"packages_dir" json:"packages_dir" mapstructure:"packages_dir"`
	ContainerPrefix   string       `yaml:"container_prefix" json:"container_prefix" mapstructure:"container_prefix"`
	Exclude           []string     `yaml:"exclude,omitempty" json:"exclude,omitempty" mapstructure:"exclude"`
	Dependencies      Dependencies `yaml:"dependencies" json:"dependencies" mapstructure:"dependencies"`
	Git               Git          `yaml:"git,omitempty" json:"git,omitempty" mapstructure:"git"`
	Logs              Logs         `yaml:"logs,omitempty" json:"logs,omitempty" mapstructure:"logs"`

	// CliConfigPath is the config file that was loaded, if any.
	CliConfigPath string `yaml:"cli_config_path,omitempty" json:"cli_config_path,omitempty" mapstructure:"cli_config_path"`
}

// Dependencies configures how the package dependency graph is produced.
type Dependencies struct {
	// Command prints the dependency graph as JSON on stdout. It runs in a POSIX shell
	// interpreter with TESTPRUNE_PACKAGE_PATH and TESTPRUNE_ROOT_DIRECTORY exported.
	Command string `yaml:"command" json:"command" mapstructure:"command"`
	// File is where the graph is stored, relative to the root directory unless absolute.
	File string `yaml:"file" json:"file" mapstructure:"file"`
	// SkipGenerate reads File as-is instead of running Command.
	SkipGenerate bool `yaml:"skip_generate" json:"skip_generate" mapstructure:"skip_generate"`
}

type Git struct {
	BaseRef string `yaml:"base_ref,omitempty" json:"base_ref,omitempty" mapstructure:"base_ref"`
}

type Logs struct {
	File  string `yaml:"file" json:"file" mapstructure:"file"`
	Level string `yaml:"level" json:"level" mapstructure:"level"`
}
