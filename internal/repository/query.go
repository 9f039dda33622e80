package repository

import (
	"fmt"
	"strings"

	"blackeagles/internal/model"
)

// WindowClause renders w as a WHERE clause. placeholder "$" numbers the
// arguments ($1, $2) and binds times; "?" binds the ISO strings as-is.
func WindowClause(w model.ScheduleWindow, placeholder string) (string, []interface{}) {
	conds := []string{}
	args := []interface{}{}

	add := func(op, date string) {
		ph := placeholder
		if placeholder == "$" {
			t, _ := model.ParseEventDate(date)
			args = append(args, t)
			ph = fmt.Sprintf("$%d", len(args))
		} else {
			args = append(args, date)
		}
		conds = append(conds, fmt.Sprintf("event_date %s %s", op, ph))
	}

	if w.From != "" {
		add(">=", w.From)
	}
	if w.To != "" {
		add("<=", w.To)
	}
	if w.Before != "" {
		add("<", w.Before)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func OrderClause(w model.ScheduleWindow) string {
	if w.Ascending {
		return " ORDER BY event_date ASC, id ASC"
	}
	return " ORDER BY event_date DESC, id DESC"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// LikePattern wraps keyword for a substring LIKE match with backslash escapes.
func LikePattern(keyword string) string {
	return "%" + likeEscaper.Replace(keyword) + "%"
}
