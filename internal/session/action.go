package session

import "github.com/jimezsa/kazi/internal/models"

type ActionKind string

const (
	ActionSetLoading      ActionKind = "SET_LOADING"
	ActionSetError        ActionKind = "SET_ERROR"
	ActionSetUser         ActionKind = "SET_USER"
	ActionSetLanguage     ActionKind = "SET_LANGUAGE"
	ActionToggleDarkMode  ActionKind = "TOGGLE_DARK_MODE"
	ActionSetJobs         ActionKind = "SET_JOBS"
	ActionSetEmployees    ActionKind = "SET_EMPLOYEES"
	ActionSetUserJobs     ActionKind = "SET_USER_JOBS"
	ActionSetFavorites    ActionKind = "SET_FAVORITES"
	ActionSetJobPage      ActionKind = "SET_JOB_PAGE"
	ActionSetEmployeePage ActionKind = "SET_EMPLOYEE_PAGE"
	ActionLogout          ActionKind = "LOGOUT"
)

// Action is one state transition. Only the fields relevant to Kind are read.
type Action struct {
	Kind      ActionKind
	Loading   bool
	Error     string
	User      *models.Identity
	Token     string
	Language  string
	Jobs      []models.Job
	Employees []models.Employee
	Favorites []string
	Page      int
}

func SetLoading(loading bool) Action { return Action{Kind: ActionSetLoading, Loading: loading} }

func SetError(message string) Action { return Action{Kind: ActionSetError, Error: message} }

// SetUser signs user in with token. A nil user clears the identity but keeps everything else.
func SetUser(user *models.Identity, token string) Action {
	return Action{Kind: ActionSetUser, User: user, Token: token}
}

func SetLanguage(language string) Action { return Action{Kind: ActionSetLanguage, Language: language} }

func ToggleDarkMode() Action { return Action{Kind: ActionToggleDarkMode} }

func SetJobs(jobs []models.Job) Action { return Action{Kind: ActionSetJobs, Jobs: jobs} }

func SetEmployees(employees []models.Employee) Action {
	return Action{Kind: ActionSetEmployees, Employees: employees}
}

func SetUserJobs(jobs []models.Job) Action { return Action{Kind: ActionSetUserJobs, Jobs: jobs} }

func SetFavorites(jobIDs []string) Action { return Action{Kind: ActionSetFavorites, Favorites: jobIDs} }

func SetJobPage(page int) Action { return Action{Kind: ActionSetJobPage, Page: page} }

func SetEmployeePage(page int) Action { return Action{Kind: ActionSetEmployeePage, Page: page} }

func Logout() Action { return Action{Kind: ActionLogout} }
