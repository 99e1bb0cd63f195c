package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"alumnihub/internal/domain/entity"
	"alumnihub/internal/domain/repository"
	"alumnihub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// discardLogger keeps service logs out of test output.
func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// --- fakeAlumniRepo ---

// fakeAlumniRepo is an in-memory repository.AlumniRepository good enough for
// exercising the services without a database.
type fakeAlumniRepo struct {
	mu      sync.Mutex
	records map[uuid.UUID]*entity.Alumni
}

func newFakeAlumniRepo() *fakeAlumniRepo {
	return &fakeAlumniRepo{records: make(map[uuid.UUID]*entity.Alumni)}
}

// seed inserts a record bypassing Create's checks, returning the stored copy.
func (f *fakeAlumniRepo) seed(record *entity.Alumni) *entity.Alumni {
	f.mu.Lock()
	defer f.mu.Unlock()

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	record.Email = strings.ToLower(record.Email)
	stored := *record
	f.records[record.ID] = &stored

	return record
}

func (f *fakeAlumniRepo) Create(_ context.Context, alumni *entity.Alumni) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.records {
		if existing.Email == alumni.Email {
			return repository.ErrDuplicateEmail
		}
	}

	alumni.ID = uuid.New()
	alumni.CreatedAt = time.Now()
	alumni.UpdatedAt = alumni.CreatedAt
	stored := *alumni
	f.records[alumni.ID] = &stored

	return nil
}

func (f *fakeAlumniRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Alumni, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	record, ok := f.records[id]
	if !ok {
		return nil, repository.ErrAlumniNotFound
	}
	copied := *record

	return &copied, nil
}

func (f *fakeAlumniRepo) FindByEmail(_ context.Context, email string) (*entity.Alumni, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, record := range f.records {
		if record.Email == email {
			copied := *record

			return &copied, nil
		}
	}

	return nil, repository.ErrAlumniNotFound
}

func matchesSearch(record *entity.Alumni, search string) bool {
	needle := strings.ToLower(search)
	for _, hay := range []string{record.FirstName, record.LastName, record.Email, record.CurrentCompany} {
		if strings.Contains(strings.ToLower(hay), needle) {
			return true
		}
	}

	return false
}

func (f *fakeAlumniRepo) List(_ context.Context, filter repository.Filter) ([]*entity.Alumni, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*entity.Alumni
	for _, record := range f.records {
		if filter.Approved != nil && record.IsApproved != *filter.Approved {
			continue
		}
		if filter.Department != "" && record.Department != filter.Department {
			continue
		}
		if filter.GraduationYear != 0 && record.GraduationYear != filter.GraduationYear {
			continue
		}
		if filter.Country != "" && record.Country != filter.Country {
			continue
		}
		if filter.City != "" && record.City != filter.City {
			continue
		}
		if filter.Search != "" && !matchesSearch(record, filter.Search) {
			continue
		}
		copied := *record
		out = append(out, &copied)
	}

	switch filter.SortBy {
	case repository.SortName:
		sort.Slice(out, func(i, j int) bool { return out[i].FirstName < out[j].FirstName })
	case repository.SortEmail:
		sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	case repository.SortYear:
		sort.Slice(out, func(i, j int) bool { return out[i].GraduationYear > out[j].GraduationYear })
	default:
		sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}

	return out, nil
}

func (f *fakeAlumniRepo) ListForMap(ctx context.Context) ([]*entity.Alumni, error) {
	approved := true
	all, err := f.List(ctx, repository.Filter{Approved: &approved})
	if err != nil {
		return nil, err
	}

	var out []*entity.Alumni
	for _, record := range all {
		if record.Country != "" && record.City != "" {
			out = append(out, record)
		}
	}

	return out, nil
}

func (f *fakeAlumniRepo) ApplyPatch(ctx context.Context, id uuid.UUID, patch repository.ProfilePatch) (*entity.Alumni, error) {
	f.mu.Lock()

	record, ok := f.records[id]
	if !ok {
		f.mu.Unlock()

		return nil, repository.ErrAlumniNotFound
	}

	if patch.FirstName != nil {
		record.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		record.LastName = *patch.LastName
	}
	if patch.Phone != nil {
		record.Phone = *patch.Phone
	}
	if patch.LinkedIn != nil {
		record.LinkedIn = *patch.LinkedIn
	}
	if patch.Department != nil {
		record.Department = *patch.Department
	}
	if patch.GraduationYear != nil {
		record.GraduationYear = *patch.GraduationYear
	}
	if patch.RollNumber != nil {
		record.RollNumber = *patch.RollNumber
	}
	if patch.CurrentCompany != nil {
		record.CurrentCompany = *patch.CurrentCompany
	}
	if patch.JobTitle != nil {
		record.JobTitle = *patch.JobTitle
	}
	if patch.Country != nil {
		record.Country = *patch.Country
	}
	if patch.City != nil {
		record.City = *patch.City
	}
	if patch.FullAddress != nil {
		record.FullAddress = *patch.FullAddress
	}
	if patch.Coordinates != nil {
		record.Location = entity.NewGeoPoint(patch.Coordinates.Lon(), patch.Coordinates.Lat())
	}
	record.UpdatedAt = time.Now()
	f.mu.Unlock()

	return f.FindByID(ctx, id)
}

func (f *fakeAlumniRepo) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	record, ok := f.records[id]
	if !ok {
		return repository.ErrAlumniNotFound
	}
	record.PasswordHash = passwordHash

	return nil
}

func (f *fakeAlumniRepo) SetApproval(ctx context.Context, id uuid.UUID, approved bool) (*entity.Alumni, error) {
	f.mu.Lock()
	record, ok := f.records[id]
	if !ok {
		f.mu.Unlock()

		return nil, repository.ErrAlumniNotFound
	}
	record.IsApproved = approved
	f.mu.Unlock()

	return f.FindByID(ctx, id)
}

func (f *fakeAlumniRepo) SetAdmin(ctx context.Context, id uuid.UUID, isAdmin bool) (*entity.Alumni, error) {
	f.mu.Lock()
	record, ok := f.records[id]
	if !ok {
		f.mu.Unlock()

		return nil, repository.ErrAlumniNotFound
	}
	record.IsAdmin = isAdmin
	f.mu.Unlock()

	return f.FindByID(ctx, id)
}

func (f *fakeAlumniRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.records[id]; !ok {
		return repository.ErrAlumniNotFound
	}
	delete(f.records, id)

	return nil
}

func (f *fakeAlumniRepo) Count(_ context.Context, approved, isAdmin *bool) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var count int64
	for _, record := range f.records {
		if approved != nil && record.IsApproved != *approved {
			continue
		}
		if isAdmin != nil && record.IsAdmin != *isAdmin {
			continue
		}
		count++
	}

	return count, nil
}

func (f *fakeAlumniRepo) distinct(pick func(*entity.Alumni) string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	seen := make(map[string]struct{})
	for _, record := range f.records {
		if !record.IsApproved {
			continue
		}
		if value := pick(record); value != "" {
			seen[value] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for value := range seen {
		out = append(out, value)
	}

	return out
}

func (f *fakeAlumniRepo) DistinctCountries(_ context.Context) ([]string, error) {
	return f.distinct(func(a *entity.Alumni) string { return a.Country }), nil
}

func (f *fakeAlumniRepo) DistinctCities(_ context.Context) ([]string, error) {
	return f.distinct(func(a *entity.Alumni) string { return a.City }), nil
}

func patchWithCompany(company string) repository.ProfilePatch {
	return repository.ProfilePatch{CurrentCompany: &company}
}

func patchWithCoordinates(point orb.Point) repository.ProfilePatch {
	return repository.ProfilePatch{Coordinates: &point}
}

// --- fakeHasher ---

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// --- fakeTokenService ---

type fakeTokenService struct{}

func (fakeTokenService) Issue(alumniID uuid.UUID, _ string, _ bool) (string, error) {
	return "token-" + alumniID.String(), nil
}

func (fakeTokenService) Verify(string) (*service.SessionClaims, error) {
	panic("not used in these tests")
}

func (fakeTokenService) TokenDuration() time.Duration {
	return 7 * 24 * time.Hour
}

// --- fakeDonationRepo ---

type fakeDonationRepo struct {
	totals repository.DonationTotals
}

func (f *fakeDonationRepo) Totals(context.Context) (*repository.DonationTotals, error) {
	copied := f.totals

	return &copied, nil
}

func (f *fakeDonationRepo) ListByStatus(context.Context, entity.DonationStatus) ([]*entity.Donation, error) {
	return nil, nil
}

// --- fakeEventRepo ---

type fakeEventRepo struct {
	mu     sync.Mutex
	events map[uuid.UUID]*entity.Event
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[uuid.UUID]*entity.Event)}
}

func (f *fakeEventRepo) Create(_ context.Context, event *entity.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	event.ID = uuid.New()
	event.CreatedAt = time.Now()
	event.UpdatedAt = event.CreatedAt
	stored := *event
	f.events[event.ID] = &stored

	return nil
}

func (f *fakeEventRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	event, ok := f.events[id]
	if !ok {
		return nil, repository.ErrEventNotFound
	}
	copied := *event

	return &copied, nil
}

func (f *fakeEventRepo) List(_ context.Context) ([]*entity.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]*entity.Event, 0, len(f.events))
	for _, event := range f.events {
		copied := *event
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })

	return out, nil
}

func (f *fakeEventRepo) Update(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	f.mu.Lock()

	existing, ok := f.events[event.ID]
	if !ok {
		f.mu.Unlock()

		return nil, repository.ErrEventNotFound
	}
	updated := *event
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()
	f.events[event.ID] = &updated
	f.mu.Unlock()

	return f.FindByID(ctx, event.ID)
}

func (f *fakeEventRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.events[id]; !ok {
		return repository.ErrEventNotFound
	}
	delete(f.events, id)

	return nil
}

// --- fakeAlbumRepo ---

type fakeAlbumRepo struct {
	albums []*entity.Album
}

func (f *fakeAlbumRepo) List(context.Context) ([]*entity.Album, error) {
	return f.albums, nil
}
