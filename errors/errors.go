package errors

import "github.com/cockroachdb/errors"

var (
	ErrLoadConfig           = errors.New("failed to load testprune configuration")
	ErrInvalidArguments     = errors.New("invalid arguments")
	ErrMissingRootDirectory = errors.New("root directory is not configured")
	ErrInvalidRootDirectory = errors.New("invalid root directory")
	ErrMissingRootPackage   = errors.New("root package is not configured")
	ErrMissingTestPlan      = errors.New("test plan is not configured")
	ErrInvalidFormat        = errors.New("invalid output format")
	ErrInvalidLogLevel      = errors.New("invalid log level")

	ErrDependencyCommand     = errors.New("dependency command failed")
	ErrReadDependencyGraph   = errors.New("failed to read dependency graph")
	ErrWriteDependencyGraph  = errors.New("failed to write dependency graph")
	ErrParseDependencyGraph  = errors.New("failed to parse dependency graph")
	ErrInvalidExcludePattern = errors.New("invalid exclude pattern")

	ErrReadTestPlan  = errors.New("failed to read test plan")
	ErrParseTestPlan = errors.New("failed to parse test plan")
	ErrWriteTestPlan = errors.New("failed to write test plan")
	ErrLockTestPlan  = errors.New("failed to lock test plan")

	ErrOpenGitRepo     = errors.New("failed to open git repository")
	ErrResolveRevision = errors.New("failed to resolve git revision")
	ErrGitDiff         = errors.New("failed to compute git diff")

	ErrWriteOutput = errors.New("failed to write output")
)
