package domain

import "go.trai.ch/zerr"

var (
	// ErrNoValidTargets is returned when a selection was given but none of its aliases is registered.
	ErrNoValidTargets = zerr.New("no valid targets")

	// ErrEmptyAlias is returned when a registry entry has an empty alias.
	ErrEmptyAlias = zerr.New("target alias must not be empty")

	// ErrEmptyTriple is returned when a registry entry has an empty triple.
	ErrEmptyTriple = zerr.New("target triple must not be empty")

	// ErrDuplicateAlias is returned when the same alias is registered twice.
	ErrDuplicateAlias = zerr.New("duplicate target alias")

	// ErrReservedAlias is returned when a registry entry uses the reserved alias "all".
	ErrReservedAlias = zerr.New("target alias 'all' is reserved")

	// ErrEmptyRegistry is returned when a registry would contain no targets.
	ErrEmptyRegistry = zerr.New("target registry is empty")

	// ErrEmptyCommand is returned when a toolchain command line has no executable.
	ErrEmptyCommand = zerr.New("command is empty")

	// ErrConfigReadFailed is returned when the project file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the project file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrToolchainInstallFailed is returned when the toolchain for a triple could not be installed.
	ErrToolchainInstallFailed = zerr.New("failed to install toolchain")

	// ErrCompileFailed is returned when the compiler exits unsuccessfully.
	ErrCompileFailed = zerr.New("compilation failed")

	// ErrBuildExecutionFailed is returned when a build run was aborted.
	// The reporter has already described the failure when this is returned.
	ErrBuildExecutionFailed = zerr.New("build execution failed")

	// ErrCleanFailed is returned when the clean command fails.
	ErrCleanFailed = zerr.New("failed to clean build artifacts")

	// ErrDocsFailed is returned when the documentation command fails.
	ErrDocsFailed = zerr.New("failed to generate documentation")

	// ErrCommandStartFailed is returned when an external command cannot be started.
	ErrCommandStartFailed = zerr.New("failed to start command")

	// ErrCommandFailed is returned when an external command exits unsuccessfully.
	ErrCommandFailed = zerr.New("command failed")
)
