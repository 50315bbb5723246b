package messages

// Doctor check names, labels, and messages.
const (
	DoctorUse   = "doctor"
	DoctorShort = "Check that this host can reconcile Mac App Store applications"

	DoctorHealthCheckHeader = "Checking Mac App Store tooling...\n"

	DoctorCheckNameBinary   = "mas binary"
	DoctorCheckNameAccount  = "App Store account"
	DoctorCheckNameManifest = "manifest"

	DoctorStatusOKLabel   = "[ OK ]"
	DoctorStatusWarnLabel = "[WARN]"
	DoctorStatusFailLabel = "[FAIL]"

	DoctorResultLineFmt     = "%s %s: %s\n"
	DoctorRecommendationFmt = "       -> %s\n"

	DoctorBinaryFoundFmt          = "found at %s"
	DoctorBinaryNotFound          = "mas executable not found on PATH"
	DoctorBinaryNotFoundRecommend = "install mas (brew install mas) or pass --mas-path"
	DoctorBinaryBadPathFmt        = "resolved path contains unexpected characters: %s"
	DoctorBinaryBadPathRecommend  = "move the binary to a path with only alphanumerics, spaces, dots, and dashes"

	DoctorAccountSignedInFmt          = "signed in as %s"
	DoctorAccountNotSignedIn          = "not signed in to the App Store"
	DoctorAccountNotSignedInRecommend = "open the App Store app and sign in; installs of purchased apps will fail otherwise"
	DoctorAccountCheckFailedFmt       = "could not determine sign-in state: %s"

	DoctorManifestLoadedFmt        = "loaded %d application(s) from %s"
	DoctorManifestMissing          = "no manifest found"
	DoctorManifestMissingRecommend = "run `masctl init` to create one, or pass app ids directly to apply"
	DoctorManifestInvalidFmt       = "manifest %s is invalid: %s"
	DoctorManifestInvalidRecommend = "fix the manifest; ids must be numeric and state must be present or latest"

	DoctorFailuresFound = "doctor found problems"
)
