package reconcile

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/jimezsa/kazi/internal/models"
	"github.com/rs/zerolog"
)

var errRemote = errors.New("http 503")

type fakeRemote struct {
	mu          sync.Mutex
	applyCalls  int
	favCalls    int
	statusCalls int

	applyErr  error
	favErrs   []error
	statusErr error

	// When set, CreateApplication signals entered and waits for release.
	entered chan struct{}
	release chan struct{}
}

func (f *fakeRemote) CreateApplication(_ context.Context, jobID string, payload models.ApplicationPayload) (models.Application, error) {
	f.mu.Lock()
	f.applyCalls++
	f.mu.Unlock()
	if f.entered != nil {
		f.entered <- struct{}{}
		<-f.release
	}
	if f.applyErr != nil {
		return models.Application{}, f.applyErr
	}
	return models.Application{ID: "app-" + jobID, JobID: jobID, ApplicantID: payload.ApplicantID}, nil
}

func (f *fakeRemote) UpdateApplicationStatus(_ context.Context, appID string, status models.ApplicationStatus) (models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statusCalls++
	if f.statusErr != nil {
		return models.Application{}, f.statusErr
	}
	return models.Application{ID: appID, Status: status}, nil
}

func (f *fakeRemote) nextFavErr() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.favCalls++
	if len(f.favErrs) == 0 {
		return nil
	}
	err := f.favErrs[0]
	f.favErrs = f.favErrs[1:]
	return err
}

func (f *fakeRemote) CreateFavorite(_ context.Context, jobID, userID string) (models.Favorite, error) {
	if err := f.nextFavErr(); err != nil {
		return models.Favorite{}, err
	}
	return models.Favorite{JobID: jobID, UserID: userID}, nil
}

func (f *fakeRemote) DeleteFavorite(_ context.Context, _, _ string) error {
	return f.nextFavErr()
}

func TestStatusOfAndIsFavorite(t *testing.T) {
	r := New(&fakeRemote{}, "u1", zerolog.Nop())
	r.Load(
		[]models.Application{
			{ID: "a1", JobID: "1", ApplicantID: "u1", Status: models.StatusAccepted},
			{ID: "a2", JobID: "2", ApplicantID: "someone-else", Status: models.StatusPending},
			{ID: "a3", JobID: "3", ApplicantID: "u1", Status: models.StatusRejected},
		},
		[]models.Favorite{{JobID: "1", UserID: "u1"}, {JobID: "1", UserID: "u1"}, {JobID: "2", UserID: "u2"}},
	)

	cases := map[string]models.ApplicationStatus{
		"1": models.StatusAccepted,
		"2": models.StatusNotApplied,
		"3": models.StatusRejected,
		"4": models.StatusNotApplied,
	}
	for jobID, want := range cases {
		if got := r.StatusOf(jobID); got != want {
			t.Fatalf("StatusOf(%s) = %q, want %q", jobID, got, want)
		}
	}

	if !r.IsFavorite("1") || r.IsFavorite("2") {
		t.Fatalf("IsFavorite() mismatch: 1=%v 2=%v", r.IsFavorite("1"), r.IsFavorite("2"))
	}
	if got := r.FavoriteIDs(); !reflect.DeepEqual(got, []string{"1"}) {
		t.Fatalf("FavoriteIDs() = %v, want [1]", got)
	}
	if got := r.ApplicationsFor("2"); len(got) != 1 || got[0].ID != "a2" {
		t.Fatalf("ApplicationsFor(2) = %+v", got)
	}
}

func TestApplyMarksPending(t *testing.T) {
	remote := &fakeRemote{}
	r := New(remote, "u1", zerolog.Nop())

	app, err := r.Apply(context.Background(), "1", "I have 3 years of experience.")
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if app.Status != models.StatusPending || app.AppliedDate.IsZero() {
		t.Fatalf("Apply() = %+v, want pending with date", app)
	}
	if got := r.StatusOf("1"); got != models.StatusPending {
		t.Fatalf("StatusOf() = %q, want pending", got)
	}

	_, err = r.Apply(context.Background(), "1", "")
	if !errors.Is(err, ErrAlreadyApplied) || errors.Is(err, ErrInFlight) {
		t.Fatalf("second Apply() error = %v, want ErrAlreadyApplied only", err)
	}
	if remote.applyCalls != 1 {
		t.Fatalf("remote calls = %d, want 1", remote.applyCalls)
	}
}

func TestApplyRejectsWhileInFlight(t *testing.T) {
	remote := &fakeRemote{entered: make(chan struct{}), release: make(chan struct{})}
	r := New(remote, "u1", zerolog.Nop())

	done := make(chan error, 1)
	go func() {
		_, err := r.Apply(context.Background(), "1", "")
		done <- err
	}()
	<-remote.entered

	_, err := r.Apply(context.Background(), "1", "")
	if !errors.Is(err, ErrAlreadyApplied) || !errors.Is(err, ErrInFlight) {
		t.Fatalf("concurrent Apply() error = %v, want ErrAlreadyApplied and ErrInFlight", err)
	}

	// Other jobs are independent.
	remote.entered = nil
	if _, err := r.Apply(context.Background(), "2", ""); err != nil {
		t.Fatalf("Apply(other job) error = %v", err)
	}

	close(remote.release)
	if err := <-done; err != nil {
		t.Fatalf("first Apply() error = %v", err)
	}
	if remote.applyCalls != 2 {
		t.Fatalf("remote calls = %d, want 2", remote.applyCalls)
	}
	if r.StatusOf("1") != models.StatusPending {
		t.Fatalf("StatusOf(1) = %q, want pending", r.StatusOf("1"))
	}
}

func TestApplyFailureLeavesStateUnchanged(t *testing.T) {
	remote := &fakeRemote{applyErr: errRemote}
	r := New(remote, "u1", zerolog.Nop())

	if _, err := r.Apply(context.Background(), "1", ""); !errors.Is(err, errRemote) {
		t.Fatalf("Apply() error = %v, want remote error", err)
	}
	if r.StatusOf("1") != models.StatusNotApplied || len(r.Applications()) != 0 {
		t.Fatalf("failed Apply() changed state")
	}

	// The key is released, so the user can try again.
	remote.applyErr = nil
	if _, err := r.Apply(context.Background(), "1", ""); err != nil {
		t.Fatalf("retry Apply() error = %v", err)
	}
}

func TestApplyValidation(t *testing.T) {
	r := New(&fakeRemote{}, "", zerolog.Nop())
	if _, err := r.Apply(context.Background(), "1", ""); !errors.Is(err, ErrNoUser) {
		t.Fatalf("Apply() without user error = %v", err)
	}

	long := make([]byte, 501)
	for i := range long {
		long[i] = 'a'
	}
	r = New(&fakeRemote{}, "u1", zerolog.Nop())
	var verrs models.ValidationErrors
	if _, err := r.Apply(context.Background(), "1", string(long)); !errors.As(err, &verrs) {
		t.Fatalf("Apply() with long note error = %v, want ValidationErrors", err)
	}
}

func TestToggleFavoriteIsSelfInverse(t *testing.T) {
	remote := &fakeRemote{}
	r := New(remote, "u1", zerolog.Nop())

	on, err := r.ToggleFavorite(context.Background(), "5")
	if err != nil || !on || !r.IsFavorite("5") {
		t.Fatalf("first toggle = %v, %v", on, err)
	}
	off, err := r.ToggleFavorite(context.Background(), "5")
	if err != nil || off || r.IsFavorite("5") {
		t.Fatalf("second toggle = %v, %v", off, err)
	}
	if len(r.FavoriteIDs()) != 0 {
		t.Fatalf("FavoriteIDs() = %v, want empty", r.FavoriteIDs())
	}
}

func TestToggleFavoriteRollsBack(t *testing.T) {
	remote := &fakeRemote{favErrs: []error{nil, errRemote, errRemote}}
	r := New(remote, "u1", zerolog.Nop())

	if _, err := r.ToggleFavorite(context.Background(), "5"); err != nil {
		t.Fatalf("first toggle error = %v", err)
	}

	// Removal fails: the job stays a favorite.
	got, err := r.ToggleFavorite(context.Background(), "5")
	if !errors.Is(err, errRemote) || !got || !r.IsFavorite("5") {
		t.Fatalf("failed removal = %v, %v; IsFavorite = %v", got, err, r.IsFavorite("5"))
	}

	// Creation fails: the job stays out.
	got, err = r.ToggleFavorite(context.Background(), "6")
	if !errors.Is(err, errRemote) || got || r.IsFavorite("6") {
		t.Fatalf("failed creation = %v, %v; IsFavorite = %v", got, err, r.IsFavorite("6"))
	}
	if ids := r.FavoriteIDs(); !reflect.DeepEqual(ids, []string{"5"}) {
		t.Fatalf("FavoriteIDs() = %v, want [5]", ids)
	}
}

type blockingFavorites struct {
	fakeRemote
	entered chan struct{}
	release chan struct{}
}

func (b *blockingFavorites) CreateFavorite(ctx context.Context, jobID, userID string) (models.Favorite, error) {
	b.entered <- struct{}{}
	<-b.release
	return b.fakeRemote.CreateFavorite(ctx, jobID, userID)
}

func TestToggleFavoriteRejectsWhileInFlight(t *testing.T) {
	remote := &blockingFavorites{entered: make(chan struct{}), release: make(chan struct{})}
	r := New(remote, "u1", zerolog.Nop())

	done := make(chan error, 1)
	go func() {
		_, err := r.ToggleFavorite(context.Background(), "5")
		done <- err
	}()
	<-remote.entered

	// The tentative value is visible while the request is outstanding.
	if !r.IsFavorite("5") {
		t.Fatalf("IsFavorite() during request = false, want tentative true")
	}
	current, err := r.ToggleFavorite(context.Background(), "5")
	if !errors.Is(err, ErrInFlight) || !current {
		t.Fatalf("concurrent toggle = %v, %v, want true, ErrInFlight", current, err)
	}

	close(remote.release)
	if err := <-done; err != nil {
		t.Fatalf("first toggle error = %v", err)
	}
	if remote.favCalls != 1 {
		t.Fatalf("remote calls = %d, want 1", remote.favCalls)
	}
}

func TestUpdateStatus(t *testing.T) {
	remote := &fakeRemote{}
	r := New(remote, "employer-1", zerolog.Nop())
	r.Load([]models.Application{{ID: "a1", JobID: "1", ApplicantID: "u1", Status: models.StatusPending}}, nil)

	app, err := r.UpdateStatus(context.Background(), "a1", models.StatusAccepted)
	if err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if app.Status != models.StatusAccepted || app.JobID != "1" {
		t.Fatalf("UpdateStatus() = %+v", app)
	}
	if apps := r.Applications(); len(apps) != 1 || apps[0].Status != models.StatusAccepted {
		t.Fatalf("Applications() = %+v", apps)
	}

	if _, err := r.UpdateStatus(context.Background(), "a1", models.StatusNotApplied); err == nil {
		t.Fatalf("UpdateStatus(not_applied) error = nil")
	}

	remote.statusErr = errRemote
	if _, err := r.UpdateStatus(context.Background(), "a1", models.StatusRejected); !errors.Is(err, errRemote) {
		t.Fatalf("UpdateStatus() error = %v, want remote error", err)
	}
	if r.Applications()[0].Status != models.StatusAccepted {
		t.Fatalf("failed UpdateStatus() changed state")
	}
	if remote.statusCalls != 2 {
		t.Fatalf("remote calls = %d, want 2", remote.statusCalls)
	}
}

func TestLoadFavoriteIDs(t *testing.T) {
	r := New(&fakeRemote{}, "u1", zerolog.Nop())
	r.Load([]models.Application{{ID: "a1", JobID: "1", ApplicantID: "u1", Status: models.StatusPending}}, nil)
	r.LoadFavoriteIDs([]string{"3", "", "3", "4"})

	if got := r.FavoriteIDs(); !reflect.DeepEqual(got, []string{"3", "4"}) {
		t.Fatalf("FavoriteIDs() = %v, want [3 4]", got)
	}
	if r.StatusOf("1") != models.StatusPending {
		t.Fatalf("LoadFavoriteIDs() dropped applications")
	}
}
