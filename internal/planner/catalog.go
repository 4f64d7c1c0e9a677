package planner

// areaInfo holds the human-facing name and work description for an area.
type areaInfo struct {
	Display     string
	Description string
}

// areaInfos maps each area type to its display name and description.
var areaInfos = map[AreaType]areaInfo{
	AreaFrontend:       {"Frontend", "user interface and client-side experience"},
	AreaBackend:        {"Backend", "server-side services and APIs"},
	AreaAuth:           {"Authentication", "identity, access control, and session handling"},
	AreaTesting:        {"Testing", "automated test coverage and quality gates"},
	AreaDeployment:     {"Deployment", "build, release, and runtime infrastructure"},
	AreaData:           {"Data", "storage, modeling, and data movement"},
	AreaMobile:         {"Mobile", "native and cross-platform mobile clients"},
	AreaDocumentation:  {"Documentation", "written guides and reference material"},
	AreaImplementation: {"Implementation", "general project implementation"},
}

// phaseCatalog is the static table of canonical work phases per area, in the
// order the work is normally done. Entries hold at most 8 phases. This table
// is the single place new areas or phases are added.
var phaseCatalog = map[AreaType][]Phase{
	AreaFrontend: {
		{"Design", "component structure and layout"},
		{"Set up", "project scaffolding and tooling"},
		{"Implement", "core UI components"},
		{"Implement", "state management"},
		{"Add", "responsive styling"},
		{"Add", "accessibility support"},
		{"Optimize", "rendering performance"},
		{"Polish", "visual details and animations"},
	},
	AreaBackend: {
		{"Design", "API contracts"},
		{"Set up", "database schema"},
		{"Implement", "CRUD operations"},
		{"Add", "business logic"},
		{"Add", "error handling"},
		{"Document", "API endpoints"},
		{"Add", "caching layer"},
		{"Add", "rate limiting"},
	},
	AreaAuth: {
		{"Design", "authentication flow"},
		{"Implement", "user registration"},
		{"Implement", "login and sessions"},
		{"Add", "password reset"},
		{"Add", "role-based access control"},
		{"Add", "token refresh"},
		{"Harden", "security headers and storage"},
	},
	AreaTesting: {
		{"Set up", "test framework and fixtures"},
		{"Write", "unit tests"},
		{"Write", "integration tests"},
		{"Write", "end-to-end tests"},
		{"Add", "coverage reporting"},
		{"Automate", "test runs in CI"},
	},
	AreaDeployment: {
		{"Set up", "build pipeline"},
		{"Configure", "staging environment"},
		{"Configure", "production environment"},
		{"Add", "health checks and monitoring"},
		{"Automate", "release process"},
		{"Document", "rollback procedure"},
	},
	AreaData: {
		{"Design", "data model"},
		{"Set up", "storage layer"},
		{"Implement", "data access layer"},
		{"Add", "data validation"},
		{"Implement", "migration scripts"},
		{"Add", "backup and restore"},
	},
	AreaMobile: {
		{"Design", "mobile navigation and screens"},
		{"Set up", "mobile project and builds"},
		{"Implement", "core screens"},
		{"Add", "offline support"},
		{"Add", "push notifications"},
		{"Prepare", "store release"},
	},
	AreaDocumentation: {
		{"Outline", "documentation structure"},
		{"Write", "getting started guide"},
		{"Write", "API reference"},
		{"Write", "troubleshooting guide"},
		{"Review", "accuracy and completeness"},
	},
	AreaImplementation: {
		{"Research", "requirements and constraints"},
		{"Design", "solution approach"},
		{"Implement", "core functionality"},
		{"Add", "input validation"},
		{"Add", "error handling"},
		{"Test", "critical paths"},
		{"Document", "usage and setup"},
	},
}

// subtaskVerbs is the shared, ordered list of generic subtask actions
// applied to every story regardless of area.
var subtaskVerbs = []string{
	"Research and plan",
	"Design",
	"Implement",
	"Test",
	"Document",
	"Review",
	"Deploy",
}

// PhasesFor returns the canonical phase sequence for an area. Unknown types
// fall back to the implementation entry.
func PhasesFor(t AreaType) []Phase {
	if phases, ok := phaseCatalog[t]; ok {
		return phases
	}
	return phaseCatalog[AreaImplementation]
}

// InfoFor returns the display name and work description for an area, with
// the same implementation fallback as PhasesFor.
func InfoFor(t AreaType) (display, description string) {
	info, ok := areaInfos[t]
	if !ok {
		info = areaInfos[AreaImplementation]
	}
	return info.Display, info.Description
}

// SubtaskVerbs returns the shared generic subtask action list.
func SubtaskVerbs() []string {
	return subtaskVerbs
}
