package match

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DhavalSuthar-24/flagstats/internal/stats"
)

var (
	ErrTournamentNotFound    = errors.New("tournament not found")
	ErrMatchNotFound         = errors.New("match not found")
	ErrPlayNotFound          = errors.New("play not found")
	ErrMatchNotActive        = errors.New("match is not in progress")
	ErrInvalidTransition     = errors.New("invalid match status transition")
	ErrMatchAlreadyFinalized = errors.New("match already finalized")
	ErrSequenceOutOfOrder    = errors.New("play sequence must be strictly increasing")
	ErrTeamAlreadyRegistered = errors.New("team already registered in tournament")
)

// FinalScore is the result recorded when a match is finished.
type FinalScore struct {
	HomeScore int
	AwayScore int
}

// MatchRepository defines methods to interact with tournament and match data
type MatchRepository interface {
	// Tournament methods
	CreateTournament(ctx context.Context, tournament *Tournament) error
	GetTournamentByID(ctx context.Context, id uint) (*Tournament, error)
	RegisterTeam(ctx context.Context, entry *TournamentTeam) error
	GetTournamentTeam(ctx context.Context, tournamentID, teamID uint) (*TournamentTeam, error)
	GetTournamentTeams(ctx context.Context, tournamentID uint, categorySlug string) ([]TournamentTeam, error)

	// Match methods
	CreateMatch(ctx context.Context, match *Match) error
	GetMatchByID(ctx context.Context, id uint) (*Match, error)
	GetTournamentMatches(ctx context.Context, tournamentID uint, categorySlug string) ([]Match, error)
	GetTeamMatches(ctx context.Context, tournamentID, teamID uint) ([]Match, error)
	UpdateStatus(ctx context.Context, matchID uint, to stats.MatchState) (*Match, error)
	FinishMatch(ctx context.Context, matchID uint, score FinalScore) (*Match, error)

	// Play methods
	AppendPlay(ctx context.Context, play *Play) error
	CorrectPlay(ctx context.Context, matchID, playID uint, update Play) (*Play, error)

	// Transaction support
	WithTransaction(ctx context.Context, txFunc func(MatchRepository) error) error
}

// GormMatchRepository implements MatchRepository using GORM
type GormMatchRepository struct {
	db *gorm.DB
}

// NewGormMatchRepository creates a new GormMatchRepository
func NewGormMatchRepository(db *gorm.DB) *GormMatchRepository {
	return &GormMatchRepository{db: db}
}

// WithTransaction runs txFunc against a repository bound to one transaction.
func (r *GormMatchRepository) WithTransaction(ctx context.Context, txFunc func(MatchRepository) error) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	txRepo := &GormMatchRepository{db: tx}
	if err := txFunc(txRepo); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

// Tournament Repository Methods

func (r *GormMatchRepository) CreateTournament(ctx context.Context, tournament *Tournament) error {
	return r.db.WithContext(ctx).Create(tournament).Error
}

func (r *GormMatchRepository) GetTournamentByID(ctx context.Context, id uint) (*Tournament, error) {
	var tournament Tournament
	err := r.db.WithContext(ctx).
		Preload("Teams.Team").
		First(&tournament, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tournament, nil
}

// RegisterTeam enters a team in a tournament category.
func (r *GormMatchRepository) RegisterTeam(ctx context.Context, entry *TournamentTeam) error {
	existing, err := r.GetTournamentTeam(ctx, entry.TournamentID, entry.TeamID)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrTeamAlreadyRegistered
	}
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *GormMatchRepository) GetTournamentTeam(ctx context.Context, tournamentID, teamID uint) (*TournamentTeam, error) {
	var entry TournamentTeam
	err := r.db.WithContext(ctx).
		Preload("Team").
		Where("tournament_id = ? AND team_id = ?", tournamentID, teamID).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// GetTournamentTeams lists registered teams, narrowed to one category when
// categorySlug is set.
func (r *GormMatchRepository) GetTournamentTeams(ctx context.Context, tournamentID uint, categorySlug string) ([]TournamentTeam, error) {
	query := r.db.WithContext(ctx).
		Preload("Team").
		Where("tournament_id = ?", tournamentID)
	if categorySlug != "" {
		query = query.Where("category_slug = ?", categorySlug)
	}

	var entries []TournamentTeam
	if err := query.Order("team_id asc").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Match Repository Methods

// CreateMatch creates a match together with its two sides.
func (r *GormMatchRepository) CreateMatch(ctx context.Context, match *Match) error {
	return r.db.WithContext(ctx).Create(match).Error
}

func (r *GormMatchRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("MatchTeams.Team").
		Preload("Plays", func(db *gorm.DB) *gorm.DB {
			return db.Order("sequence asc")
		})
}

func (r *GormMatchRepository) GetMatchByID(ctx context.Context, id uint) (*Match, error) {
	var match Match
	if err := r.preloaded(ctx).First(&match, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &match, nil
}

func (r *GormMatchRepository) GetTournamentMatches(ctx context.Context, tournamentID uint, categorySlug string) ([]Match, error) {
	query := r.preloaded(ctx).Where("tournament_id = ?", tournamentID)
	if categorySlug != "" {
		query = query.Where("category_slug = ?", categorySlug)
	}

	var matches []Match
	if err := query.Order("scheduled_at asc, id asc").Find(&matches).Error; err != nil {
		return nil, err
	}
	return matches, nil
}

// GetTeamMatches returns the matches a team plays in a tournament.
func (r *GormMatchRepository) GetTeamMatches(ctx context.Context, tournamentID, teamID uint) ([]Match, error) {
	var matches []Match
	err := r.preloaded(ctx).
		Where("tournament_id = ?", tournamentID).
		Where("id IN (?)", r.db.Model(&MatchTeam{}).Select("match_id").Where("team_id = ?", teamID)).
		Order("scheduled_at asc, id asc").
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// lockMatch reads the match row with FOR UPDATE so concurrent writers to the
// same match serialize.
func (r *GormMatchRepository) lockMatch(tx *gorm.DB, matchID uint) (*Match, error) {
	var match Match
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&match, matchID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

// UpdateStatus moves a match along its lifecycle.
func (r *GormMatchRepository) UpdateStatus(ctx context.Context, matchID uint, to stats.MatchState) (*Match, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		match, err := r.lockMatch(tx, matchID)
		if err != nil {
			return err
		}
		if match.Status == stats.StateFinished || match.Status == stats.StateCancelled {
			return ErrMatchAlreadyFinalized
		}
		if !CanTransition(match.Status, to) {
			return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, match.Status, to)
		}

		updates := map[string]interface{}{"status": to}
		if to == stats.StateInProgress && match.StartedAt == nil {
			updates["started_at"] = time.Now()
		}
		return tx.Model(match).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetMatchByID(ctx, matchID)
}

// FinishMatch records the final score and outcome exactly once.
func (r *GormMatchRepository) FinishMatch(ctx context.Context, matchID uint, score FinalScore) (*Match, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		match, err := r.lockMatch(tx, matchID)
		if err != nil {
			return err
		}
		if match.Status == stats.StateFinished || match.Status == stats.StateCancelled {
			return ErrMatchAlreadyFinalized
		}
		if !CanFinish(match.Status) {
			return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, match.Status, stats.StateFinished)
		}

		var sides []MatchTeam
		if err := tx.Where("match_id = ?", matchID).Find(&sides).Error; err != nil {
			return err
		}
		match.MatchTeams = sides
		home, away := match.HomeTeam(), match.AwayTeam()
		if home == nil || away == nil {
			return fmt.Errorf("%w: match %d", ErrIncompleteMatch, matchID)
		}

		homeResult, awayResult := ResultTie, ResultTie
		var winner *uint
		switch {
		case score.HomeScore > score.AwayScore:
			homeResult, awayResult = ResultWin, ResultLoss
			winner = &home.TeamID
		case score.AwayScore > score.HomeScore:
			homeResult, awayResult = ResultLoss, ResultWin
			winner = &away.TeamID
		}
		diff := score.HomeScore - score.AwayScore
		if diff < 0 {
			diff = -diff
		}

		if err := tx.Model(home).Updates(map[string]interface{}{"score": score.HomeScore, "result_status": homeResult}).Error; err != nil {
			return err
		}
		if err := tx.Model(away).Updates(map[string]interface{}{"score": score.AwayScore, "result_status": awayResult}).Error; err != nil {
			return err
		}
		return tx.Model(match).Updates(map[string]interface{}{
			"status":             stats.StateFinished,
			"completed_at":       time.Now(),
			"winning_team_id":    winner,
			"point_differential": diff,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetMatchByID(ctx, matchID)
}

// Play Repository Methods

// AppendPlay adds a play to an active match. A zero Sequence is assigned the
// next number; an explicit one must exceed every recorded sequence.
func (r *GormMatchRepository) AppendPlay(ctx context.Context, play *Play) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		match, err := r.lockMatch(tx, play.MatchID)
		if err != nil {
			return err
		}
		if !match.Status.Active() {
			return fmt.Errorf("%w: status is %s", ErrMatchNotActive, match.Status)
		}

		var last int
		if err := tx.Model(&Play{}).
			Where("match_id = ?", play.MatchID).
			Select("COALESCE(MAX(sequence), 0)").
			Scan(&last).Error; err != nil {
			return err
		}
		switch {
		case play.Sequence == 0:
			play.Sequence = last + 1
		case play.Sequence <= last:
			return fmt.Errorf("%w: got %d after %d", ErrSequenceOutOfOrder, play.Sequence, last)
		}
		return tx.Create(play).Error
	})
}

// CorrectPlay rewrites the recorded details of an existing play. Sequence and
// match are kept. Corrections are allowed after the match has finished.
func (r *GormMatchRepository) CorrectPlay(ctx context.Context, matchID, playID uint, update Play) (*Play, error) {
	var play Play
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := r.lockMatch(tx, matchID); err != nil {
			return err
		}
		if err := tx.Where("match_id = ?", matchID).First(&play, playID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPlayNotFound
			}
			return err
		}

		now := time.Now()
		if err := tx.Model(&play).Select(
			"Period", "Minute", "Second", "PossessionTeamID", "Type", "Description",
			"PrimaryPlayerID", "SecondaryPlayerID", "ScoringPlayerID",
			"IsTouchdown", "IsInterception", "IsSack", "Points", "RecordedBy", "CorrectedAt",
		).Updates(Play{
			Period:            update.Period,
			Minute:            update.Minute,
			Second:            update.Second,
			PossessionTeamID:  update.PossessionTeamID,
			Type:              update.Type,
			Description:       update.Description,
			PrimaryPlayerID:   update.PrimaryPlayerID,
			SecondaryPlayerID: update.SecondaryPlayerID,
			ScoringPlayerID:   update.ScoringPlayerID,
			IsTouchdown:       update.IsTouchdown,
			IsInterception:    update.IsInterception,
			IsSack:            update.IsSack,
			Points:            update.Points,
			RecordedBy:        update.RecordedBy,
			CorrectedAt:       &now,
		}).Error; err != nil {
			return err
		}
		return tx.First(&play, playID).Error
	})
	if err != nil {
		return nil, err
	}
	return &play, nil
}
