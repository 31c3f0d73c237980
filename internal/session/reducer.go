package session

import (
	"github.com/jimezsa/kazi/internal/locale"
	"github.com/jimezsa/kazi/internal/models"
)

// Reduce returns the state after action. It never mutates state and never fails;
// unknown kinds leave the state as it was.
func Reduce(state State, action Action) State {
	next := state
	switch action.Kind {
	case ActionSetLoading:
		next.Loading = action.Loading
	case ActionSetError:
		next.Error = action.Error
		next.Loading = false
	case ActionSetUser:
		if action.User == nil || state.User == nil || state.User.ID != action.User.ID {
			// Favorites and posted jobs belong to the previous identity.
			next.FavoriteJobs = []string{}
			next.UserJobs = []models.Job{}
		}
		if action.User == nil {
			next.User = nil
			next.Token = ""
			next.UserRole = ""
			break
		}
		user := *action.User
		next.User = &user
		next.Token = action.Token
		next.UserRole = user.Role
	case ActionSetLanguage:
		next.CurrentLanguage, _ = locale.Normalize(action.Language)
	case ActionToggleDarkMode:
		next.DarkMode = !state.DarkMode
	case ActionSetJobs:
		next.CurrentJobs = cloneSlice(action.Jobs)
	case ActionSetEmployees:
		next.Employees = cloneSlice(action.Employees)
	case ActionSetUserJobs:
		next.UserJobs = cloneSlice(action.Jobs)
	case ActionSetFavorites:
		next.FavoriteJobs = uniqueIDs(action.Favorites)
	case ActionSetJobPage:
		next.JobPage = clampPage(action.Page)
	case ActionSetEmployeePage:
		next.EmployeePage = clampPage(action.Page)
	case ActionLogout:
		// Language and theme stay sticky across sessions.
		next = Initial(state.CurrentLanguage, state.DarkMode)
	}
	return next
}

func cloneSlice[T any](values []T) []T {
	out := make([]T, len(values))
	copy(out, values)
	return out
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, exists := seen[id]; exists {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func clampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
