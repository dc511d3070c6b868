// Package career runs a manager career: budget, board objectives, transfers
// and season-to-season progression.
package career

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Career limits.
const (
	MaxSeasons       = 25
	MatchesPerSeason = 38
	ContractSeasons  = 2
	MinReputation    = 1
	MaxReputation    = 10
)

var (
	ErrInsufficientFunds = errors.New("career: insufficient funds")
	ErrCareerOver        = errors.New("career: final season already played")
	ErrUnknownObjective  = errors.New("career: unknown objective")
	ErrBadFee            = errors.New("career: fee must be positive")
)

// StartingBudget is the transfer budget of a new career.
var StartingBudget = decimal.NewFromInt(5_000_000)

// Season-end bonuses.
var (
	topFourBonus   = decimal.NewFromInt(2_000_000)
	topSixBonus    = decimal.NewFromInt(1_000_000)
	winRatioBonus  = decimal.NewFromInt(1_000_000)
	perTrophyBonus = decimal.NewFromInt(500_000)
)

// SeasonRecord is the summary of one season, kept in the career history.
type SeasonRecord struct {
	Season       int
	TeamID       int
	Position     int
	Won          int
	Drawn        int
	Lost         int
	GoalsFor     int
	GoalsAgainst int
	Points       int
	Trophies     []string
	Bonus        decimal.Decimal
	Objectives   int // completed
}

// Played is the number of matches in the record.
func (r SeasonRecord) Played() int { return r.Won + r.Drawn + r.Lost }

// TransferKind tells whether the club bought or sold.
type TransferKind int

const (
	Buy TransferKind = iota
	Sell
)

func (k TransferKind) String() string {
	if k == Sell {
		return "sell"
	}
	return "buy"
}

// Transfer is one completed deal.
type Transfer struct {
	ID     uuid.UUID
	Season int
	Kind   TransferKind
	Player string
	Fee    decimal.Decimal
	At     time.Time
}

// EventKind labels a career event.
type EventKind string

const (
	EventObjectiveCompleted EventKind = "objective_completed"
	EventTransfer           EventKind = "transfer"
	EventTrophy             EventKind = "trophy"
	EventSeasonAdvanced     EventKind = "season_advanced"
	EventTeamChanged        EventKind = "team_changed"
	EventContractRenewed    EventKind = "contract_renewed"
)

// Event is delivered to listeners registered with OnEvent.
type Event struct {
	Kind   EventKind
	Season int
	Detail string
	Amount decimal.Decimal
}

// Career is one manager's save.
type Career struct {
	ID             uuid.UUID
	Manager        string
	TeamID         int
	Prestige       int
	Season         int // 1-based
	Budget         decimal.Decimal
	Reputation     int
	ContractYears  int
	Objectives     []Objective
	Transfers      []Transfer
	Trophies       []string
	History        []SeasonRecord
	Current        SeasonRecord
	seasonOpenCash decimal.Decimal
	listeners      []func(Event)
}

// New starts a career at teamID.
func New(manager string, teamID, prestige int) *Career {
	c := &Career{
		ID:            uuid.New(),
		Manager:       manager,
		TeamID:        teamID,
		Prestige:      prestige,
		Season:        1,
		Budget:        StartingBudget,
		Reputation:    MinReputation,
		ContractYears: ContractSeasons,
	}
	c.openSeason()
	return c
}

func (c *Career) openSeason() {
	c.Objectives = objectivesFor(c.Prestige)
	c.Current = SeasonRecord{Season: c.Season, TeamID: c.TeamID}
	c.seasonOpenCash = c.Budget
}

// OnEvent registers a listener.
func (c *Career) OnEvent(fn func(Event)) {
	c.listeners = append(c.listeners, fn)
}

func (c *Career) emit(kind EventKind, detail string, amount decimal.Decimal) {
	ev := Event{Kind: kind, Season: c.Season, Detail: detail, Amount: amount}
	for _, fn := range c.listeners {
		fn(ev)
	}
}

func (c *Career) objective(kind ObjectiveKind) (*Objective, error) {
	for i := range c.Objectives {
		if c.Objectives[i].Kind == kind {
			return &c.Objectives[i], nil
		}
	}
	return nil, fmt.Errorf("%s: %w", kind, ErrUnknownObjective)
}

// CompleteObjective marks an objective done and pays its reward. Completing
// an objective twice pays once.
func (c *Career) CompleteObjective(kind ObjectiveKind) error {
	o, err := c.objective(kind)
	if err != nil {
		return err
	}
	if o.Completed {
		return nil
	}
	o.Completed = true
	c.Budget = c.Budget.Add(o.Reward)
	c.emit(EventObjectiveCompleted, o.Description, o.Reward)
	return nil
}

// UpdateObjective records progress and completes the objective once met.
func (c *Career) UpdateObjective(kind ObjectiveKind, progress int) error {
	o, err := c.objective(kind)
	if err != nil {
		return err
	}
	o.Progress = progress
	if o.met() {
		return c.CompleteObjective(kind)
	}
	return nil
}

// CompletedObjectives counts objectives met this season.
func (c *Career) CompletedObjectives() int {
	n := 0
	for _, o := range c.Objectives {
		if o.Completed {
			n++
		}
	}
	return n
}

// UpdateSeasonStats overwrites the running season numbers.
func (c *Career) UpdateSeasonStats(won, drawn, lost, goalsFor, goalsAgainst int) {
	c.Current.Won = won
	c.Current.Drawn = drawn
	c.Current.Lost = lost
	c.Current.GoalsFor = goalsFor
	c.Current.GoalsAgainst = goalsAgainst
	c.Current.Points = won*3 + drawn
}

// RecordMatch adds one result to the running season.
func (c *Career) RecordMatch(scored, conceded int) {
	r := &c.Current
	switch {
	case scored > conceded:
		r.Won++
	case scored == conceded:
		r.Drawn++
	default:
		r.Lost++
	}
	r.GoalsFor += scored
	r.GoalsAgainst += conceded
	r.Points = r.Won*3 + r.Drawn
}

// SetLeaguePosition records the table position and updates the objective.
func (c *Career) SetLeaguePosition(pos int) {
	c.Current.Position = pos
	_ = c.UpdateObjective(ObjLeaguePosition, pos)
}

// AddTrophy records silverware won this season.
func (c *Career) AddTrophy(name string) {
	c.Current.Trophies = append(c.Current.Trophies, name)
	c.Trophies = append(c.Trophies, name)
	c.emit(EventTrophy, name, decimal.Zero)
}

// CanAfford reports whether the budget covers fee.
func (c *Career) CanAfford(fee decimal.Decimal) bool {
	return c.Budget.GreaterThanOrEqual(fee)
}

// AddTransfer records a deal. Buying debits the budget, selling credits it.
func (c *Career) AddTransfer(kind TransferKind, playerName string, fee decimal.Decimal) (Transfer, error) {
	if !fee.IsPositive() {
		return Transfer{}, ErrBadFee
	}
	if kind == Buy {
		if !c.CanAfford(fee) {
			return Transfer{}, fmt.Errorf("%s for %s: %w", playerName, fee.StringFixed(0), ErrInsufficientFunds)
		}
		c.Budget = c.Budget.Sub(fee)
	} else {
		c.Budget = c.Budget.Add(fee)
	}
	t := Transfer{
		ID:     uuid.New(),
		Season: c.Season,
		Kind:   kind,
		Player: playerName,
		Fee:    fee,
		At:     time.Now(),
	}
	c.Transfers = append(c.Transfers, t)
	c.emit(EventTransfer, kind.String()+" "+playerName, fee)
	return t, nil
}

// SeasonBonus computes the end-of-season payment for the running season.
func (c *Career) SeasonBonus() decimal.Decimal {
	bonus := decimal.Zero
	switch pos := c.Current.Position; {
	case pos >= 1 && pos <= 4:
		bonus = bonus.Add(topFourBonus)
	case pos >= 5 && pos <= 6:
		bonus = bonus.Add(topSixBonus)
	}
	if played := c.Current.Played(); played > 0 {
		ratio := decimal.NewFromInt(int64(c.Current.Won)).Div(decimal.NewFromInt(int64(played)))
		bonus = bonus.Add(winRatioBonus.Mul(ratio).Round(0))
	}
	bonus = bonus.Add(perTrophyBonus.Mul(decimal.NewFromInt(int64(len(c.Current.Trophies)))))
	return bonus
}

// AdvanceSeason closes the running season: settles the financial objective,
// pays the bonus, adjusts reputation and the contract, archives the record
// and opens the next season.
func (c *Career) AdvanceSeason() (SeasonRecord, error) {
	if c.Over() {
		return SeasonRecord{}, ErrCareerOver
	}
	if c.Budget.GreaterThanOrEqual(c.seasonOpenCash) {
		_ = c.CompleteObjective(ObjFinancial)
	}

	done := c.CompletedObjectives()
	bonus := c.SeasonBonus()
	c.Budget = c.Budget.Add(bonus)
	c.Reputation = min(MaxReputation, max(MinReputation, c.Reputation+done))

	rec := c.Current
	rec.Bonus = bonus
	rec.Objectives = done
	c.History = append(c.History, rec)

	c.ContractYears--
	if c.ContractYears <= 0 {
		c.ContractYears = ContractSeasons
		c.emit(EventContractRenewed, fmt.Sprintf("%d seasons", ContractSeasons), decimal.Zero)
	}

	c.emit(EventSeasonAdvanced, fmt.Sprintf("season %d closed in position %d", rec.Season, rec.Position), bonus)
	c.Season++
	c.openSeason()
	return rec, nil
}

// ChangeTeam moves the manager to another club on a fresh contract. The
// running season's objectives are replaced by the new board's.
func (c *Career) ChangeTeam(teamID, prestige int) {
	c.TeamID = teamID
	c.Prestige = prestige
	c.ContractYears = ContractSeasons
	c.Objectives = objectivesFor(prestige)
	c.Current.TeamID = teamID
	c.emit(EventTeamChanged, fmt.Sprintf("team %d", teamID), decimal.Zero)
}

// Over reports whether every season of the career has been played.
func (c *Career) Over() bool { return c.Season > MaxSeasons }

// Progress is the share of the career played, in percent.
func (c *Career) Progress() float64 {
	played := min(c.Season-1, MaxSeasons)
	return float64(played) / MaxSeasons * 100
}

// Summary is a short text description for reports.
func (c *Career) Summary() string {
	return fmt.Sprintf("%s | season %d/%d | team %d | budget %s | reputation %d | trophies %d",
		c.Manager, min(c.Season, MaxSeasons), MaxSeasons, c.TeamID,
		c.Budget.StringFixed(0), c.Reputation, len(c.Trophies))
}
