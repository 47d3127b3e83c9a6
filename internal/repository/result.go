package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/connectfour-backend/internal/connectfour"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

const resultsSchema = `
CREATE TABLE IF NOT EXISTS game_results (
	game_id          TEXT PRIMARY KEY,
	outcome          TEXT        NOT NULL,
	winner           TEXT        NOT NULL DEFAULT '',
	red_player_id    TEXT        NOT NULL DEFAULT '',
	yellow_player_id TEXT        NOT NULL DEFAULT '',
	move_count       INTEGER     NOT NULL,
	board            JSONB       NOT NULL,
	finished_at      TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS game_results_finished_at_idx ON game_results (finished_at DESC);
`

type ResultRepository interface {
	Migrate(ctx context.Context) error
	Save(ctx context.Context, result *entity.Result) error
	ListRecent(ctx context.Context, limit int) ([]*entity.Result, error)
}

type dbResult struct {
	conn *sql.DB
}

func NewResultRepository(conn *sql.DB) ResultRepository {
	return &dbResult{
		conn: conn,
	}
}

func (that *dbResult) Migrate(ctx context.Context) error {
	if _, err := that.conn.ExecContext(ctx, resultsSchema); err != nil {
		return fmt.Errorf("can't create results table: %w", err)
	}

	return nil
}

// Save - upserts by game id, a game replayed after reset overwrites its previous result.
func (that *dbResult) Save(ctx context.Context, result *entity.Result) error {
	boardJSON, err := json.Marshal(result.Board)
	if err != nil {
		return fmt.Errorf("failed to marshal board: %w", err)
	}

	query := `
	INSERT INTO game_results (game_id, outcome, winner, red_player_id, yellow_player_id, move_count, board, finished_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (game_id) DO UPDATE SET
		outcome = EXCLUDED.outcome,
		winner = EXCLUDED.winner,
		red_player_id = EXCLUDED.red_player_id,
		yellow_player_id = EXCLUDED.yellow_player_id,
		move_count = EXCLUDED.move_count,
		board = EXCLUDED.board,
		finished_at = EXCLUDED.finished_at`

	_, err = that.conn.ExecContext(ctx, query,
		result.GameID,
		result.Outcome,
		string(result.Winner),
		result.RedPlayerID,
		result.YellowPlayerID,
		result.MoveCount,
		boardJSON,
		result.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("can't save result: %w", err)
	}

	return nil
}

func (that *dbResult) ListRecent(ctx context.Context, limit int) ([]*entity.Result, error) {
	query := `
	SELECT game_id, outcome, winner, red_player_id, yellow_player_id, move_count, board, finished_at
	FROM game_results
	ORDER BY finished_at DESC
	LIMIT $1`

	rows, err := that.conn.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("can't list results: %w", err)
	}
	defer rows.Close()

	var results []*entity.Result
	for rows.Next() {
		var (
			result    entity.Result
			winner    string
			boardJSON []byte
		)

		err = rows.Scan(
			&result.GameID,
			&result.Outcome,
			&winner,
			&result.RedPlayerID,
			&result.YellowPlayerID,
			&result.MoveCount,
			&boardJSON,
			&result.FinishedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("can't scan result: %w", err)
		}

		if err = json.Unmarshal(boardJSON, &result.Board); err != nil {
			return nil, fmt.Errorf("failed to unmarshal board: %w", err)
		}
		result.Winner = connectfour.Marker(winner)

		results = append(results, &result)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't iterate results: %w", err)
	}

	return results, nil
}
