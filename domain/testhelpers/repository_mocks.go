package testhelpers

import (
	"context"
	"time"

	"birdiebook/domain/entities"
	"birdiebook/domain/interfaces"

	"github.com/stretchr/testify/mock"
)

// MockMatchRepository is a mock implementation of MatchRepository
type MockMatchRepository struct {
	mock.Mock
}

func (m *MockMatchRepository) Create(ctx context.Context, match *entities.Match) error {
	args := m.Called(ctx, match)
	return args.Error(0)
}

func (m *MockMatchRepository) GetByID(ctx context.Context, id int64) (*entities.Match, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Match), args.Error(1)
}

func (m *MockMatchRepository) UpdateState(ctx context.Context, id int64, state entities.MatchState) error {
	args := m.Called(ctx, id, state)
	return args.Error(0)
}

func (m *MockMatchRepository) UpsertHoleScore(ctx context.Context, score *entities.HoleScore) error {
	args := m.Called(ctx, score)
	return args.Error(0)
}

func (m *MockMatchRepository) GetHoleScores(ctx context.Context, matchID int64) ([]*entities.HoleScore, error) {
	args := m.Called(ctx, matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.HoleScore), args.Error(1)
}

func (m *MockMatchRepository) UpsertBBBResult(ctx context.Context, matchID int64, result *entities.BBBHoleResult) error {
	args := m.Called(ctx, matchID, result)
	return args.Error(0)
}

func (m *MockMatchRepository) GetBBBResults(ctx context.Context, matchID int64) ([]*entities.BBBHoleResult, error) {
	args := m.Called(ctx, matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.BBBHoleResult), args.Error(1)
}

func (m *MockMatchRepository) SetSideBetConfigs(ctx context.Context, matchID int64, configs map[entities.BetType]entities.SideBetConfig) error {
	args := m.Called(ctx, matchID, configs)
	return args.Error(0)
}

func (m *MockMatchRepository) GetSideBetConfigs(ctx context.Context, matchID int64) (map[entities.BetType]entities.SideBetConfig, error) {
	args := m.Called(ctx, matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[entities.BetType]entities.SideBetConfig), args.Error(1)
}

// MockLedgerRepository is a mock implementation of LedgerRepository
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) CreateBatch(ctx context.Context, entries []*entities.LedgerEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockLedgerRepository) GetByMatch(ctx context.Context, matchID int64) ([]*entities.LedgerEntry, error) {
	args := m.Called(ctx, matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) GetByUser(ctx context.Context, userID string, limit int) ([]*entities.LedgerEntry, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) GetUnsettledByUser(ctx context.Context, userID string) ([]*entities.LedgerEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) GetByDateRange(ctx context.Context, from, to time.Time) ([]*entities.LedgerEntry, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) DeleteUnsettledByMatch(ctx context.Context, matchID int64) error {
	args := m.Called(ctx, matchID)
	return args.Error(0)
}

func (m *MockLedgerRepository) MarkSettled(ctx context.Context, id int64, settledAt time.Time) error {
	args := m.Called(ctx, id, settledAt)
	return args.Error(0)
}

// MockSeasonRepository is a mock implementation of SeasonRepository
type MockSeasonRepository struct {
	mock.Mock
}

func (m *MockSeasonRepository) Create(ctx context.Context, season *entities.Season) error {
	args := m.Called(ctx, season)
	return args.Error(0)
}

func (m *MockSeasonRepository) GetByID(ctx context.Context, id int64) (*entities.Season, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Season), args.Error(1)
}

func (m *MockSeasonRepository) GetActive(ctx context.Context, now time.Time) ([]*entities.Season, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Season), args.Error(1)
}

func (m *MockSeasonRepository) GetStandings(ctx context.Context, seasonID int64) ([]*entities.SeasonStanding, error) {
	args := m.Called(ctx, seasonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.SeasonStanding), args.Error(1)
}

func (m *MockSeasonRepository) ReplaceStandings(ctx context.Context, seasonID int64, standings []*entities.SeasonStanding) error {
	args := m.Called(ctx, seasonID, standings)
	return args.Error(0)
}

// MockUnitOfWork is a mock implementation of UnitOfWork that hands out
// the repository mocks it was built with.
type MockUnitOfWork struct {
	mock.Mock
	MatchRepo  *MockMatchRepository
	LedgerRepo *MockLedgerRepository
	SeasonRepo *MockSeasonRepository
}

// NewMockUnitOfWork creates a unit of work with fresh repository mocks
// and permissive Begin/Commit/Rollback expectations.
func NewMockUnitOfWork() *MockUnitOfWork {
	uow := &MockUnitOfWork{
		MatchRepo:  new(MockMatchRepository),
		LedgerRepo: new(MockLedgerRepository),
		SeasonRepo: new(MockSeasonRepository),
	}
	uow.On("Begin", mock.Anything).Return(nil).Maybe()
	uow.On("Commit").Return(nil).Maybe()
	uow.On("Rollback").Return(nil).Maybe()
	return uow
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) MatchRepository() interfaces.MatchRepository {
	return m.MatchRepo
}

func (m *MockUnitOfWork) LedgerRepository() interfaces.LedgerRepository {
	return m.LedgerRepo
}

func (m *MockUnitOfWork) SeasonRepository() interfaces.SeasonRepository {
	return m.SeasonRepo
}

// MockUnitOfWorkFactory always returns the same mock unit of work
type MockUnitOfWorkFactory struct {
	UOW *MockUnitOfWork
}

func NewMockUnitOfWorkFactory() *MockUnitOfWorkFactory {
	return &MockUnitOfWorkFactory{UOW: NewMockUnitOfWork()}
}

func (f *MockUnitOfWorkFactory) Create() interfaces.UnitOfWork {
	return f.UOW
}
