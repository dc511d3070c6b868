// Package achievement tracks player statistics and unlocks achievements,
// experience, coins and levels as they grow.
package achievement

import "github.com/Garsondee/Pitch-Sense/internal/gesture"

// Category groups achievements on the trophy screen.
type Category string

const (
	CatScoring     Category = "Scoring"
	CatDefending   Category = "Defending"
	CatStreak      Category = "Streak"
	CatSeason      Category = "Season"
	CatCareer      Category = "Career"
	CatTrophies    Category = "Trophies"
	CatSkills      Category = "Skills"
	CatExploration Category = "Exploration"
	CatProgress    Category = "Progress"
)

// Rarity is how hard an achievement is to get.
type Rarity int

const (
	Common Rarity = iota
	Rare
	Epic
	Legendary
)

func (r Rarity) String() string {
	switch r {
	case Common:
		return "common"
	case Rare:
		return "rare"
	case Epic:
		return "epic"
	case Legendary:
		return "legendary"
	default:
		return "unknown"
	}
}

// Tracked statistic keys.
const (
	StatGoals              = "goals_scored"
	StatCareerGoals        = "career_goals"
	StatGoalsThisMatch     = "goals_current_match"
	StatAssists            = "assists"
	StatAssistsThisMatch   = "assists_current_match"
	StatCardsThisMatch     = "cards_current_match"
	StatMatchesPlayed      = "matches_played"
	StatWins               = "wins"
	StatDraws              = "draws"
	StatLosses             = "losses"
	StatCleanSheets        = "clean_sheets"
	StatCurrentStreak      = "current_streak"
	StatWinStreak          = "win_streak"
	StatSeasonMatches      = "current_season_matches"
	StatSeasonLosses       = "current_season_losses"
	StatSkillMoves         = "skill_moves_successful"
	StatSkillMovesFailed   = "skill_moves_failed"
	StatUniqueTricks       = "unique_tricks_mastered"
	StatStadiums           = "stadiums_played"
	StatTrophies           = "trophies_won"
	StatTrophiesThisSeason = "trophies_current_season"
	StatReputation         = "reputation"
	StatLevel              = "level"
	StatExperience         = "experience"
	StatCoins              = "coins"
	StatTransfers          = "transfers_completed"
	StatSeasonsPlayed      = "seasons_played"
	StatCareerStarted      = "career_started"
)

// unbeatenSeasonMatches is the minimum season length for the unbeaten award.
const unbeatenSeasonMatches = 30

// Achievement describes one unlockable. Most achievements unlock when Stat
// reaches Target; Check overrides that for compound conditions.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Category    Category
	Rarity      Rarity
	Stat        string
	Target      int
	XP          int
	Coins       int
	Check       func(stats map[string]int) bool
}

// Defaults returns the built-in achievement list.
func Defaults() []Achievement {
	return []Achievement{
		{ID: "first_goal", Name: "First Goal", Description: "Score your first goal",
			Category: CatScoring, Rarity: Common, Stat: StatGoals, Target: 1, XP: 100, Coins: 500},
		{ID: "hat_trick_hero", Name: "Hat-Trick Hero", Description: "Score three goals in one match",
			Category: CatScoring, Rarity: Rare, Stat: StatGoalsThisMatch, Target: 3, XP: 500, Coins: 2000},
		{ID: "goal_machine", Name: "Goal Machine", Description: "Score 100 career goals",
			Category: CatScoring, Rarity: Epic, Stat: StatCareerGoals, Target: 100, XP: 2000, Coins: 10000},
		{ID: "clean_sheet", Name: "Clean Sheet", Description: "Keep your first clean sheet",
			Category: CatDefending, Rarity: Common, Stat: StatCleanSheets, Target: 1, XP: 200, Coins: 1000},
		{ID: "defensive_wall", Name: "Defensive Wall", Description: "Keep 10 clean sheets",
			Category: CatDefending, Rarity: Rare, Stat: StatCleanSheets, Target: 10, XP: 1000, Coins: 5000},
		{ID: "winning_streak", Name: "On Fire", Description: "Win 5 matches in a row",
			Category: CatStreak, Rarity: Rare, Stat: StatWinStreak, Target: 5, XP: 750, Coins: 3000},
		{ID: "unbeaten_season", Name: "Invincibles", Description: "Finish a season of 30+ matches unbeaten",
			Category: CatSeason, Rarity: Legendary, Stat: StatSeasonMatches, Target: unbeatenSeasonMatches, XP: 5000, Coins: 25000,
			Check: func(s map[string]int) bool {
				return s[StatSeasonMatches] >= unbeatenSeasonMatches && s[StatSeasonLosses] == 0
			}},
		{ID: "new_manager", Name: "New Manager", Description: "Start your first career",
			Category: CatCareer, Rarity: Common, Stat: StatCareerStarted, Target: 1, XP: 200, Coins: 1000},
		{ID: "legendary_manager", Name: "Legendary Manager", Description: "Reach reputation 10",
			Category: CatCareer, Rarity: Legendary, Stat: StatReputation, Target: 10, XP: 10000, Coins: 50000},
		{ID: "first_trophy", Name: "Silverware", Description: "Win your first trophy",
			Category: CatTrophies, Rarity: Rare, Stat: StatTrophies, Target: 1, XP: 800, Coins: 3000},
		{ID: "treble_winner", Name: "Treble Winner", Description: "Win three trophies in one season",
			Category: CatTrophies, Rarity: Epic, Stat: StatTrophiesThisSeason, Target: 3, XP: 3000, Coins: 15000},
		{ID: "skill_master", Name: "Skill Master", Description: "Pull off 100 skill moves",
			Category: CatSkills, Rarity: Rare, Stat: StatSkillMoves, Target: 100, XP: 1000, Coins: 4000},
		{ID: "trick_master", Name: "Trick Master", Description: "Perform every trick at least once",
			Category: CatSkills, Rarity: Epic, Stat: StatUniqueTricks, Target: len(gesture.AllTricks()), XP: 2500, Coins: 12000},
		{ID: "world_traveler", Name: "World Traveler", Description: "Play in 20 different stadiums",
			Category: CatExploration, Rarity: Epic, Stat: StatStadiums, Target: 20, XP: 2000, Coins: 10000},
		{ID: "level_up", Name: "Rising Star", Description: "Reach level 10",
			Category: CatProgress, Rarity: Common, Stat: StatLevel, Target: 10, XP: 1000, Coins: 5000},
	}
}

// Completed reports whether stats satisfy the achievement.
func (a Achievement) Completed(stats map[string]int) bool {
	if a.Check != nil {
		return a.Check(stats)
	}
	return stats[a.Stat] >= a.Target
}
