package messages

// CLI command strings and host-runtime messages.
const (
	RootUse   = "masctl"
	RootShort = "Declarative Mac App Store application management"
	RootLong  = "masctl reconciles a desired set of Mac App Store applications against the\ninstalled state, driving the mas CLI. It reports whether anything changed\nand why, and supports dry-run previews."

	ApplyUse   = "apply [appID...]"
	ApplyShort = "Reconcile applications to the desired state"

	PlanUse   = "plan"
	PlanShort = "Preview pending installs and upgrades without mutating"

	InitUse   = "init"
	InitShort = "Write a starter manifest"

	VersionUse   = "version"
	VersionShort = "Print the masctl version"

	VersionTemplate  = "{{.Version}}\n"
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"

	ApplyConfirmTitleFmt = "Apply %s state to %d application(s)?"
	ApplyConfirmAborted  = "aborted: no changes applied"

	ApplyResultChangedLabel   = "changed"
	ApplyResultUnchangedLabel = "ok"
	ApplyResultFailedLabel    = "failed"
	ApplyResultLineFmt        = "%s  %s\n"

	ApplyNoAppsError = "no applications given: pass app ids or provide a manifest"

	PlanHeaderFmt     = "Plan for %d application(s), desired state %q:\n"
	PlanLineFmt       = "  %-10s %s%s\n"
	PlanNameSuffixFmt = " (%s)"
	PlanNoChanges     = "No changes. Desired state is satisfied."
	PlanSummaryFmt    = "Pending: %d change(s), %d already satisfied.\n"
	PlanDiffHeader    = "State diff:"

	InitManifestExistsFmt  = "manifest already exists at %s"
	InitManifestWrittenFmt = "Wrote starter manifest to %s\n"
)
