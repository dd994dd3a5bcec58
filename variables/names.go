package variables

// Well-known variable names.
//
// File path variables must not be added here; they need container path
// translation and are resolved elsewhere.
const (
	BuildNumber            = "build.number"
	StepDebug              = "ACTIONS_STEP_DEBUG"
	SystemAccessToken      = "system.accessToken"
	SystemGitHubToken      = "system.github.token"
	SystemPhaseDisplayName = "system.phaseDisplayName"
)
