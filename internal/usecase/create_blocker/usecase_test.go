package create_blocker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonique/booking-service/internal/domain"
	"github.com/salonique/booking-service/internal/integrations/catalogservice"
)

type blockerRepoStub struct {
	created []*domain.TimeBlocker
}

func (s *blockerRepoStub) CreateBatch(_ context.Context, blockers []*domain.TimeBlocker) ([]*domain.TimeBlocker, error) {
	for i, b := range blockers {
		b.ID = int64(i + 1)
	}
	s.created = blockers
	return blockers, nil
}

type catalogStub struct {
	err error
}

func (s *catalogStub) GetProfessional(_ context.Context, professionalID int64) (*catalogservice.Professional, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &catalogservice.Professional{ID: professionalID, VendorID: 1, IsActive: true}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute_MaterializesOneRowPerDay(t *testing.T) {
	repo := &blockerRepoStub{}
	uc := NewUseCase(repo, &catalogStub{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:         7,
		ProfessionalID: 7,
		StartDate:      time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.Len(t, repo.created, 3)
	assert.Equal(t, []int64{1, 2, 3}, resp.BlockerIDs)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), repo.created[0].Date)
	assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), repo.created[1].Date)
	assert.Equal(t, time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC), repo.created[2].Date)

	for _, b := range repo.created {
		assert.EqualValues(t, 7, b.ProfessionalID)
		assert.True(t, b.IsAllDay())
	}
}

func TestExecute_SingleDayRange(t *testing.T) {
	repo := &blockerRepoStub{}
	uc := NewUseCase(repo, &catalogStub{}, nopLogger{})

	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{
		UserID:         7,
		ProfessionalID: 7,
		StartDate:      date,
		EndDate:        date,
	})
	require.NoError(t, err)
	require.Len(t, resp.BlockerIDs, 1)
}

func TestExecute_OtherUserRejected(t *testing.T) {
	uc := NewUseCase(&blockerRepoStub{}, &catalogStub{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:         8,
		ProfessionalID: 7,
		StartDate:      time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_UnknownProfessional(t *testing.T) {
	uc := NewUseCase(&blockerRepoStub{}, &catalogStub{err: catalogservice.ErrProfessionalNotFound}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:         7,
		ProfessionalID: 7,
		StartDate:      time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}
