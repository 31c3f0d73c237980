package reconcile

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/jimezsa/kazi/internal/models"
	"github.com/rs/zerolog"
)

var (
	ErrAlreadyApplied = errors.New("already applied for this job")
	ErrInFlight       = errors.New("a request for this job is already in progress")
	ErrNoUser         = errors.New("no signed-in user")
)

// Remote is the part of the job API the reconciler writes through.
type Remote interface {
	CreateApplication(ctx context.Context, jobID string, payload models.ApplicationPayload) (models.Application, error)
	UpdateApplicationStatus(ctx context.Context, appID string, status models.ApplicationStatus) (models.Application, error)
	CreateFavorite(ctx context.Context, jobID, userID string) (models.Favorite, error)
	DeleteFavorite(ctx context.Context, jobID, userID string) error
}

// Reconciler tracks one user's applications and favorites against the remote API.
// At most one mutating request per (job, user) is outstanding at any time; a second
// request for the same key is rejected without touching the network.
type Reconciler struct {
	remote Remote
	userID string
	logger zerolog.Logger
	now    func() time.Time

	mu           sync.Mutex
	applications []models.Application
	favorites    []string
	favoriteSet  map[string]struct{}
	inFlight     map[string]struct{}
}

func New(remote Remote, userID string, logger zerolog.Logger) *Reconciler {
	return &Reconciler{
		remote:      remote,
		userID:      userID,
		logger:      logger,
		now:         time.Now,
		favoriteSet: map[string]struct{}{},
		inFlight:    map[string]struct{}{},
	}
}

// Load replaces local state with records fetched from the API. Favorites belonging to
// other users and duplicate favorites are dropped.
func (r *Reconciler) Load(applications []models.Application, favorites []models.Favorite) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.applications = append([]models.Application(nil), applications...)
	r.favorites = nil
	r.favoriteSet = map[string]struct{}{}
	for _, fav := range favorites {
		if fav.UserID != r.userID {
			continue
		}
		r.addFavorite(fav.JobID)
	}
}

// LoadFavoriteIDs seeds favorites from a locally mirrored list of job ids.
func (r *Reconciler) LoadFavoriteIDs(jobIDs []string) {
	favorites := make([]models.Favorite, 0, len(jobIDs))
	for _, id := range jobIDs {
		favorites = append(favorites, models.Favorite{JobID: id, UserID: r.userID})
	}
	r.mu.Lock()
	apps := r.applications
	r.mu.Unlock()
	r.Load(apps, favorites)
}

func (r *Reconciler) StatusOf(jobID string) models.ApplicationStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.statusOf(jobID)
}

func (r *Reconciler) IsFavorite(jobID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.favoriteSet[jobID]
	return ok
}

// Apply submits an application for jobID. It fails with ErrAlreadyApplied when the user
// already holds an application for the job or one is being submitted; in the latter
// case the error also matches ErrInFlight. A failed request leaves local state untouched.
func (r *Reconciler) Apply(ctx context.Context, jobID string, coverNote string) (models.Application, error) {
	if r.userID == "" {
		return models.Application{}, ErrNoUser
	}
	payload := models.ApplicationPayload{ApplicantID: r.userID, CoverNote: coverNote}
	if err := models.Validate(payload); err != nil {
		return models.Application{}, err
	}

	key := r.key(jobID)
	r.mu.Lock()
	if r.statusOf(jobID) != models.StatusNotApplied {
		r.mu.Unlock()
		return models.Application{}, ErrAlreadyApplied
	}
	if !r.acquire(key) {
		r.mu.Unlock()
		return models.Application{}, fmt.Errorf("%w: %w", ErrAlreadyApplied, ErrInFlight)
	}
	r.mu.Unlock()

	app, err := r.remote.CreateApplication(ctx, jobID, payload)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.release(key)
	if err != nil {
		r.logger.Debug().Err(err).Str("job", jobID).Msg("apply failed")
		return models.Application{}, err
	}

	if app.JobID == "" {
		app.JobID = jobID
	}
	if app.ApplicantID == "" {
		app.ApplicantID = r.userID
	}
	if !app.Status.Stored() {
		app.Status = models.StatusPending
	}
	if app.AppliedDate.IsZero() {
		app.AppliedDate = r.now()
	}
	r.applications = append(r.applications, app)
	return app, nil
}

// ToggleFavorite flips the favorite flag for jobID and returns the new value. The flip is
// applied locally first and reverted if the remote request fails.
func (r *Reconciler) ToggleFavorite(ctx context.Context, jobID string) (bool, error) {
	if r.userID == "" {
		return false, ErrNoUser
	}

	key := r.key(jobID)
	r.mu.Lock()
	if !r.acquire(key) {
		_, current := r.favoriteSet[jobID]
		r.mu.Unlock()
		return current, ErrInFlight
	}
	_, was := r.favoriteSet[jobID]
	r.setFavorite(jobID, !was)
	r.mu.Unlock()

	var err error
	if was {
		err = r.remote.DeleteFavorite(ctx, jobID, r.userID)
	} else {
		_, err = r.remote.CreateFavorite(ctx, jobID, r.userID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.release(key)
	if err != nil {
		r.setFavorite(jobID, was)
		r.logger.Debug().Err(err).Str("job", jobID).Bool("favorite", was).Msg("favorite toggle reverted")
		return was, err
	}
	return !was, nil
}

// UpdateStatus changes an application's status on behalf of the job's employer.
func (r *Reconciler) UpdateStatus(ctx context.Context, appID string, status models.ApplicationStatus) (models.Application, error) {
	if !status.Stored() {
		return models.Application{}, fmt.Errorf("cannot set application status to %q", status)
	}

	key := "application::" + appID
	r.mu.Lock()
	if !r.acquire(key) {
		r.mu.Unlock()
		return models.Application{}, ErrInFlight
	}
	r.mu.Unlock()

	app, err := r.remote.UpdateApplicationStatus(ctx, appID, status)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.release(key)
	if err != nil {
		return models.Application{}, err
	}
	if app.ID == "" {
		app.ID = appID
	}
	if !app.Status.Stored() {
		app.Status = status
	}
	for idx := range r.applications {
		if r.applications[idx].ID == app.ID {
			merged := r.applications[idx]
			merged.Status = app.Status
			r.applications[idx] = merged
			return merged, nil
		}
	}
	r.applications = append(r.applications, app)
	return app, nil
}

// Applications returns a snapshot of every known application.
func (r *Reconciler) Applications() []models.Application {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Application(nil), r.applications...)
}

// ApplicationsFor returns the known applications for jobID, across applicants.
func (r *Reconciler) ApplicationsFor(jobID string) []models.Application {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Application, 0)
	for _, app := range r.applications {
		if app.JobID == jobID {
			out = append(out, app)
		}
	}
	return out
}

// FavoriteIDs returns the user's favorite job ids in the order they were added.
func (r *Reconciler) FavoriteIDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string{}, r.favorites...)
}

func (r *Reconciler) statusOf(jobID string) models.ApplicationStatus {
	status := models.StatusNotApplied
	for _, app := range r.applications {
		if app.JobID == jobID && app.ApplicantID == r.userID && app.Status.Stored() {
			status = app.Status
		}
	}
	return status
}

func (r *Reconciler) key(jobID string) string {
	return jobID + "::" + r.userID
}

func (r *Reconciler) acquire(key string) bool {
	if _, busy := r.inFlight[key]; busy {
		return false
	}
	r.inFlight[key] = struct{}{}
	return true
}

func (r *Reconciler) release(key string) {
	delete(r.inFlight, key)
}

func (r *Reconciler) setFavorite(jobID string, on bool) {
	if on {
		r.addFavorite(jobID)
		return
	}
	if _, ok := r.favoriteSet[jobID]; !ok {
		return
	}
	delete(r.favoriteSet, jobID)
	if idx := slices.Index(r.favorites, jobID); idx >= 0 {
		r.favorites = slices.Delete(r.favorites, idx, idx+1)
	}
}

func (r *Reconciler) addFavorite(jobID string) {
	if jobID == "" {
		return
	}
	if _, ok := r.favoriteSet[jobID]; ok {
		return
	}
	r.favoriteSet[jobID] = struct{}{}
	r.favorites = append(r.favorites, jobID)
}
