package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/samber/lo"

	"exusiai.dev/matchstats/internal/model"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

func printHeading(w io.Writer, title string) {
	fmt.Fprintf(w, "\n== %s ==\n\n", title)
}

func pct(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

func signed(v float64) string {
	return fmt.Sprintf("%+.0f", v)
}

func championList(stats []model.ChampionStats, n int) string {
	if len(stats) > n {
		stats = stats[:n]
	}
	parts := lo.Map(stats, func(c model.ChampionStats, _ int) string {
		return fmt.Sprintf("%d (%s)", c.ChampionID, pct(c.Percent))
	})
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}

func printTeamOverall(w io.Writer, s *model.TeamOverallStats) error {
	table := newTable(w)
	table.Header("METRIC", "VALUE")

	objectives := s.FirstDragonData
	rows := [][]string{
		{"games", strconv.Itoa(s.GameCount)},
		{"most picked", championList(s.MostPickedChampionStats, 5)},
		{"most banned by", championList(s.MostBannedByChampionStats, 5)},
		{"most banned against", championList(s.MostBannedAgainstChampionStats, 5)},
		{"lose to", championList(s.LoseToChampionStats, 5)},
		{"first dragon", pct(objectives.FirstDragon.SuccessPercent)},
		{"first herald", pct(objectives.FirstHerald.SuccessPercent)},
		{"first baron", pct(objectives.FirstBaron.SuccessPercent)},
		{"average plates", fmt.Sprintf("%.2f", s.AveragePlates)},
	}
	for _, r := range rows {
		if err := table.Append(r); err != nil {
			return err
		}
	}
	return table.Render()
}

func printTeamChampions(w io.Writer, stats []model.TeamChampionStats) error {
	table := newTable(w)
	table.Header("ROLE", "CHAMPION", "GAMES", "WIN", "PICK", "BANNED_BY", "BANNED_AGAINST", "MATCHUPS")

	for _, s := range stats {
		if err := table.Append(
			s.RoleID.String(),
			strconv.Itoa(s.ChampionID),
			strconv.Itoa(s.MatchesCount),
			pct(s.WinRate),
			pct(s.PickRate),
			pct(s.BannedByRate),
			pct(s.BannedAgainstRate),
			strconv.Itoa(len(s.Matchups)),
		); err != nil {
			return err
		}
	}
	return table.Render()
}

func printTeamHistory(w io.Writer, page *model.QueryResult[model.TeamMatchHistoryStats]) error {
	table := newTable(w)
	table.Header("GAME", "START", "SIDE", "ENEMY", "SOLO_K", "ISO_D", "GOLD<15", "GOLD>15", "CS<15", "CS>15", "DRAGONS", "BARONS")

	for _, m := range page.Items {
		enemy := m.EnemyTeamName
		if enemy == "" {
			enemy = strconv.Itoa(m.EnemyTeamID)
		}
		if err := table.Append(
			m.GameUID,
			m.GameStartTime.Format("2006-01-02 15:04"),
			m.GameTeamSide.String(),
			enemy,
			fmt.Sprintf("%.0f", m.SoloKillsCount),
			fmt.Sprintf("%.0f", m.IsoDeathsCount),
			signed(m.GoldDiffPre15),
			signed(m.GoldDiffPost15),
			signed(m.CSDiffPre15),
			signed(m.CSDiffPost15),
			pct(m.DragonSecuredPercent),
			pct(m.BaronSecuredPercent),
		); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}
	fmt.Fprintf(w, "%d of %d matches\n", len(page.Items), page.Total)
	return nil
}

// printPlayerStats dumps the averaged stat tree. Its shape depends on the role, so it
// is printed as JSON rather than a table.
func printPlayerStats(w io.Writer, stats *model.PlayerComparableStats) error {
	b, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n\n", b)
	return err
}

func printPlayerChampions(w io.Writer, stats []model.PlayerChampionStats) error {
	table := newTable(w)
	table.Header("CHAMPION", "ROLE", "GAMES", "WINS", "K", "D", "A", "DMG%", "GPM", "CSD@15", "GD@15")

	for _, s := range stats {
		if err := table.Append(
			strconv.Itoa(s.ChampionID),
			s.Role.String(),
			strconv.Itoa(s.GameCount),
			strconv.Itoa(s.WinGameCount),
			fmt.Sprintf("%.1f", s.AvgKillCount),
			fmt.Sprintf("%.1f", s.AvgDeathCount),
			fmt.Sprintf("%.1f", s.AvgAssistCount),
			pct(s.AvgDmgPercent),
			fmt.Sprintf("%.0f", s.AvgGPM),
			signed(s.AvgCreepScoreDifferenceCount.Min15),
			signed(s.AvgGoldDifferenceCount.Min15),
		); err != nil {
			return err
		}
	}
	return table.Render()
}
