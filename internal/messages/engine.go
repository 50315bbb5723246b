package messages

// Engine messages for validation, inspection, and reconciliation.
const (
	// EngineInvalidPackageFmt names a package identifier that failed validation.
	EngineInvalidPackageFmt = "Invalid package: %s."
	// EngineInvalidMasPathFmt names an executable path that failed validation.
	EngineInvalidMasPathFmt = "Invalid mas_path: %s."
	// EngineMasNotFound indicates the mas executable could not be resolved.
	EngineMasNotFound = "Unable to locate mas executable."

	EngineAlreadyInstalledFmt = "Package already installed: %s"
	EngineWouldInstallFmt     = "Package would be installed: %s"
	EngineInstalledFmt        = "Package installed: %s"
	EngineAlreadyUpgradedFmt  = "Package is already upgraded: %s"
	EngineWouldUpgradeFmt     = "Package would be upgraded: %s"
	EngineUpgradedFmt         = "Package upgraded: %s"

	// EngineSummaryFmt aggregates batch counts when more than one package was processed.
	EngineSummaryFmt = "Changed: %d, Unchanged: %d"

	// EngineUnknownStateFmt rejects desired states outside present/latest.
	EngineUnknownStateFmt = "unknown desired state %q"
	// EngineSystemRequired indicates the engine was constructed without a system.
	EngineSystemRequired = "system is required"
	// EngineRunnerRequired indicates the engine was constructed without a runner.
	EngineRunnerRequired = "runner is required"

	RunnerStartFailedFmt = "start %s: %w"
)
