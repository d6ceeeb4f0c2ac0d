package postgres

import "time"

type weekTableModel struct {
	ID          int64     `db:"id"`
	DivisionID  int64     `db:"division_id"`
	SeasonID    int64     `db:"season_id"`
	Date        time.Time `db:"date"`
	IsCancelled bool      `db:"is_cancelled"`
}

type weekInsertModel struct {
	DivisionID  int64  `db:"division_id"`
	SeasonID    int64  `db:"season_id"`
	Date        string `db:"date"`
	IsCancelled bool   `db:"is_cancelled"`
}
