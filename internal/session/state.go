package session

import (
	"github.com/jimezsa/kazi/internal/locale"
	"github.com/jimezsa/kazi/internal/models"
)

// State is everything the client remembers between commands.
type State struct {
	Loading         bool
	Error           string
	User            *models.Identity
	Token           string
	UserRole        models.Role
	CurrentLanguage string
	DarkMode        bool
	CurrentJobs     []models.Job
	Employees       []models.Employee
	UserJobs        []models.Job
	FavoriteJobs    []string
	JobPage         int
	EmployeePage    int
}

// Initial is the signed-out state with the given preferences.
func Initial(language string, darkMode bool) State {
	code, _ := locale.Normalize(language)
	return State{
		CurrentLanguage: code,
		DarkMode:        darkMode,
		CurrentJobs:     []models.Job{},
		Employees:       []models.Employee{},
		UserJobs:        []models.Job{},
		FavoriteJobs:    []string{},
		JobPage:         1,
		EmployeePage:    1,
	}
}

// Authenticated reports whether a user and token are both present.
func (s State) Authenticated() bool {
	return s.User != nil && s.Token != ""
}

// IsEmployer reports whether the signed-in user is an employer.
func (s State) IsEmployer() bool {
	return s.Authenticated() && s.UserRole == models.RoleEmployer
}
