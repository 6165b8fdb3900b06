package model

import "time"

type ChampionPickInfo struct {
	RoleID     Role `json:"roleId"`
	PicksCount int  `json:"picksCount"`
}

type ChampionStats struct {
	ChampionID int     `json:"championId"`
	Percent    float64 `json:"percent"`
}

type MostPickedRolesByOrder struct {
	RoleOrder []Role  `json:"roleOrder"`
	Percent   float64 `json:"percent"`
}

type ObjectiveSuccessInfo struct {
	SuccessPercent float64 `json:"successPercent"`
	AverageTime    float64 `json:"averageTime"`
}

type FirstObjectivesInfo struct {
	FirstDragon ObjectiveSuccessInfo `json:"firstDragon"`
	FirstHerald ObjectiveSuccessInfo `json:"firstHerald"`
	FirstBaron  ObjectiveSuccessInfo `json:"firstBaron"`
}

type ElementalDragonInfo struct {
	TotalDragonCount       int     `json:"totalDragonCount"`
	TotalKilledDragonCount int     `json:"totalKilledDragonCount"`
	SecurePercent          float64 `json:"securePercent"`
	WinPercent             float64 `json:"winPercent"`
}

type ElementalDragonsInfo struct {
	CloudDragonInfo    ElementalDragonInfo `json:"cloudDragonInfo"`
	InfernalDragonInfo ElementalDragonInfo `json:"infernalDragonInfo"`
	MountainDragonInfo ElementalDragonInfo `json:"mountainDragonInfo"`
	OceanDragonInfo    ElementalDragonInfo `json:"oceanDragonInfo"`
}

type TurretPlateTakenByRole struct {
	RoleID  Role    `json:"roleId"`
	Percent float64 `json:"percent"`
}

type TurretPlatesTakenInfo struct {
	TopTurretDamageInfo    []TurretPlateTakenByRole `json:"topTurretDamageInfo"`
	TopTurretPlates        float64                  `json:"topTurretPlates"`
	MiddleTurretDamageInfo []TurretPlateTakenByRole `json:"middleTurretDamageInfo"`
	MiddleTurretPlates     float64                  `json:"middleTurretPlates"`
	BottomTurretDamageInfo []TurretPlateTakenByRole `json:"bottomTurretDamageInfo"`
	BottomTurretPlates     float64                  `json:"bottomTurretPlates"`
}

// RoleValues is one metric broken down by role.
type RoleValues struct {
	TopInfo     float64 `json:"topInfo"`
	JngInfo     float64 `json:"jngInfo"`
	MidInfo     float64 `json:"midInfo"`
	BottomInfo  float64 `json:"bottomInfo"`
	SupportInfo float64 `json:"supportInfo"`
}

// Ref returns the slot holding r's value, or nil for unknown roles.
func (v *RoleValues) Ref(r Role) *float64 {
	switch r {
	case RoleTop:
		return &v.TopInfo
	case RoleJungler:
		return &v.JngInfo
	case RoleMiddle:
		return &v.MidInfo
	case RoleBottom:
		return &v.BottomInfo
	case RoleSupport:
		return &v.SupportInfo
	default:
		return nil
	}
}

type LaningInfo struct {
	AverageIsolatedDeaths  RoleValues `json:"averageIsolatedDeaths"`
	AverageControlWardAt10 RoleValues `json:"averageControlWardAt10"`
	AverageControlWardAt15 RoleValues `json:"averageControlWardAt15"`
	AverageControlWardAt20 RoleValues `json:"averageControlWardAt20"`
	AverageControlWardAt30 RoleValues `json:"averageControlWardAt30"`
	CSDifferenceAt10       RoleValues `json:"CSDifferenceAt10"`
	CSDifferenceAt20       RoleValues `json:"CSDifferenceAt20"`
}

type TeamOverallStats struct {
	GameCount                      int                      `json:"gameCount"`
	BlindPicks                     []ChampionPickInfo       `json:"blindPicks"`
	CounterPicks                   []ChampionPickInfo       `json:"counterPicks"`
	MostPickedChampionStats        []ChampionStats          `json:"mostPickedChampionStats"`
	MostBannedByChampionStats      []ChampionStats          `json:"mostBannedByChampionStats"`
	MostBannedAgainstChampionStats []ChampionStats          `json:"mostBannedAgainstChampionStats"`
	LoseToChampionStats            []ChampionStats          `json:"loseToChampionStats"`
	MostPickedRolesByOrder         []MostPickedRolesByOrder `json:"mostPickedRolesByOrder"`
	FirstDragonData                FirstObjectivesInfo      `json:"firstDragonData"`
	ElementalDragonsInfo           ElementalDragonsInfo     `json:"elementalDragonsInfo"`
	LaneInteractionInfo            LaneInteractionStats     `json:"laneInteractionInfo"`
	AveragePlates                  float64                  `json:"averagePlates"`
	TurretPlatesTakenInfo          TurretPlatesTakenInfo    `json:"turretPlatesTakenInfo"`
	LaningInfo                     LaningInfo               `json:"laningInfo"`
}

type TeamOverallStatsWithRelations struct {
	PrimaryOverallStats   TeamOverallStats  `json:"primaryOverallStats"`
	SecondaryOverallStats *TeamOverallStats `json:"secondaryOverallStats,omitempty"`
}

type MatchupStats struct {
	ChampionID int     `json:"championId"`
	WinRate    float64 `json:"winRate"`
}

type TeamChampionStats struct {
	RoleID            Role           `json:"roleId"`
	ChampionID        int            `json:"championId"`
	WinRate           float64        `json:"winRate"`
	BannedByRate      float64        `json:"bannedByRate"`
	BannedAgainstRate float64        `json:"bannedAgainstRate"`
	PickRate          float64        `json:"pickRate"`
	Matchups          []MatchupStats `json:"matchups"`
	MatchesCount      int            `json:"matchesCount"`
}

type TeamMatchHistoryStats struct {
	GameID               int       `json:"gameId"`
	GameUID              string    `json:"gameUid"`
	GameTeamSide         Side      `json:"gameTeamSide"`
	EnemyTeamID          int       `json:"enemyTeamId"`
	EnemyTeamName        string    `json:"enemyTeamName"`
	SoloKillsCount       float64   `json:"soloKillsCount"`
	IsoDeathsCount       float64   `json:"isoDeathsCount"`
	GoldDiffPre15        float64   `json:"goldDiffPre15"`
	GoldDiffPost15       float64   `json:"goldDiffPost15"`
	CSDiffPre15          float64   `json:"csDiffPre15"`
	CSDiffPost15         float64   `json:"csDiffPost15"`
	DragonSecuredPercent float64   `json:"dragonSecuredPercent"`
	BaronSecuredPercent  float64   `json:"baronSecuredPercent"`
	GameDurationSeconds  float64   `json:"gameDurationSeconds"`
	GameType             MatchType `json:"gameType"`
	GameStartTime        time.Time `json:"gameStartTime"`
	GamePatch            int       `json:"gamePatch"`
}

type PlayerChampionStats struct {
	ChampionID                   int        `json:"championId"`
	Role                         Role       `json:"role"`
	GameCount                    int        `json:"gameCount"`
	WinGameCount                 int        `json:"winGameCount"`
	AvgKillCount                 float64    `json:"avgKillCount"`
	AvgDeathCount                float64    `json:"avgDeathCount"`
	AvgAssistCount               float64    `json:"avgAssistCount"`
	AvgForwardPercent            PeriodStat `json:"avgForwardPercent"`
	AvgDmgPercent                float64    `json:"avgDmgPercent"`
	AvgGPM                       float64    `json:"avgGPM"`
	AvgCreepScoreDifferenceCount PeriodStat `json:"avgCreepScoreDifferenceCount"`
	AvgGoldDifferenceCount       PeriodStat `json:"avgGoldDifferenceCount"`
}

type WardAggregation struct {
	Percent   float64   `json:"percent"`
	WardEvent WardEvent `json:"wardEvent"`
}

type WardResponse struct {
	MaxGameLength   float64           `json:"maxGameLength"`
	MostCommonWards []WardAggregation `json:"mostCommonWards"`
	FirstWards      []WardAggregation `json:"firstWards"`
}

// QueryResult is one page of a paginated report.
type QueryResult[T any] struct {
	Items    []T `json:"items"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}
