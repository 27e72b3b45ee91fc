// internal/lexicon/sqlite.go
package lexicon

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite" // Registers the sqlite driver
)

const fieldSeparator = "\x1f"

// SQLiteDictionary は JMdict を索引化した SQLite ファイルを引く辞書
type SQLiteDictionary struct {
	conn *sql.DB
}

// OpenSQLite は辞書ファイルを開き、スキーマを適用する
func OpenSQLite(dsn string) (*SQLiteDictionary, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open lexicon database: %w", err)
	}
	// :memory: の場合に接続ごとに別DBにならないよう1本に絞る
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to lexicon database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply lexicon schema: %w", err)
	}

	return &SQLiteDictionary{conn: db}, nil
}

// Close は辞書DBの接続を閉じる
func (d *SQLiteDictionary) Close() error {
	return d.conn.Close()
}

// Lookup は語形に一致するエントリを最大1件返す。
// 頻度マーカー付きの表記を優先し、同順位なら ent_seq の小さいものを返す。
func (d *SQLiteDictionary) Lookup(ctx context.Context, form string) Result {
	if strings.TrimSpace(form) == "" {
		return Miss()
	}

	var id int64
	err := d.conn.QueryRowContext(ctx, `
		SELECT entry_id FROM forms
		WHERE text = ?
		ORDER BY (priority != '') DESC, entry_id ASC
		LIMIT 1
	`, form).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Miss()
		}
		return Failed(fmt.Errorf("failed to look up form %q: %w", form, err))
	}

	entry, err := d.loadEntry(ctx, id)
	if err != nil {
		return Failed(err)
	}
	return Hit(entry)
}

func (d *SQLiteDictionary) loadEntry(ctx context.Context, id int64) (*Entry, error) {
	entry := &Entry{ID: id}

	rows, err := d.conn.QueryContext(ctx, `
		SELECT kind, text, priority FROM forms
		WHERE entry_id = ?
		ORDER BY kind, position
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load forms for entry %d: %w", id, err)
	}
	for rows.Next() {
		var kind, text, priority string
		if err := rows.Scan(&kind, &text, &priority); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan form row for entry %d: %w", id, err)
		}
		f := Form{Text: text, Priority: strings.Fields(priority)}
		if kind == "k" {
			entry.Kanji = append(entry.Kanji, f)
		} else {
			entry.Readings = append(entry.Readings, f)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate forms for entry %d: %w", id, err)
	}

	rows, err = d.conn.QueryContext(ctx, `
		SELECT glosses, pos FROM senses
		WHERE entry_id = ?
		ORDER BY position
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load senses for entry %d: %w", id, err)
	}
	for rows.Next() {
		var glosses, pos string
		if err := rows.Scan(&glosses, &pos); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan sense row for entry %d: %w", id, err)
		}
		entry.Senses = append(entry.Senses, Sense{Glosses: splitField(glosses), POS: splitField(pos)})
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate senses for entry %d: %w", id, err)
	}

	rows, err = d.conn.QueryContext(ctx, `SELECT tag FROM entry_tags WHERE entry_id = ? ORDER BY tag`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load tags for entry %d: %w", id, err)
	}
	defer rows.Close()
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("failed to scan tag row for entry %d: %w", id, err)
		}
		entry.Tags = append(entry.Tags, tag)
	}
	return entry, rows.Err()
}

// InsertEntries はエントリをまとめて登録する。同じIDのエントリは置き換える
func (d *SQLiteDictionary) InsertEntries(ctx context.Context, entries []*Entry) error {
	tx, err := d.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin lexicon transaction: %w", err)
	}
	defer tx.Rollback()

	for _, e := range entries {
		for _, q := range []string{
			`DELETE FROM forms WHERE entry_id = ?`,
			`DELETE FROM senses WHERE entry_id = ?`,
		} {
			if _, err := tx.ExecContext(ctx, q, e.ID); err != nil {
				return fmt.Errorf("failed to clear entry %d: %w", e.ID, err)
			}
		}
		if _, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO entries (id) VALUES (?)`, e.ID); err != nil {
			return fmt.Errorf("failed to insert entry %d: %w", e.ID, err)
		}
		if err := insertForms(ctx, tx, e.ID, "k", e.Kanji); err != nil {
			return err
		}
		if err := insertForms(ctx, tx, e.ID, "r", e.Readings); err != nil {
			return err
		}
		for i, s := range e.Senses {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO senses (entry_id, position, glosses, pos)
				VALUES (?, ?, ?, ?)
			`, e.ID, i, strings.Join(s.Glosses, fieldSeparator), strings.Join(s.POS, fieldSeparator))
			if err != nil {
				return fmt.Errorf("failed to insert sense %d for entry %d: %w", i, e.ID, err)
			}
		}
		for _, tag := range e.Tags {
			if err := addTag(ctx, tx, e.ID, tag); err != nil {
				return err
			}
		}
	}
	return tx.Commit()
}

// TagForm は語形に一致する全エントリにタグを付ける。付与したエントリ数を返す
func (d *SQLiteDictionary) TagForm(ctx context.Context, form, tag string) (int, error) {
	rows, err := d.conn.QueryContext(ctx, `SELECT DISTINCT entry_id FROM forms WHERE text = ?`, form)
	if err != nil {
		return 0, fmt.Errorf("failed to find entries for form %q: %w", form, err)
	}
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return 0, fmt.Errorf("failed to scan entry id for form %q: %w", form, err)
		}
		ids = append(ids, id)
	}
	rows.Close()

	for _, id := range ids {
		if err := addTag(ctx, d.conn, id, tag); err != nil {
			return 0, err
		}
	}
	return len(ids), nil
}

// Count は登録済みのエントリ数を返す
func (d *SQLiteDictionary) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := d.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return n, nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertForms(ctx context.Context, tx execer, id int64, kind string, forms []Form) error {
	for i, f := range forms {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO forms (entry_id, kind, position, text, priority)
			VALUES (?, ?, ?, ?, ?)
		`, id, kind, i, f.Text, strings.Join(f.Priority, " "))
		if err != nil {
			return fmt.Errorf("failed to insert form %q for entry %d: %w", f.Text, id, err)
		}
	}
	return nil
}

func addTag(ctx context.Context, db execer, id int64, tag string) error {
	if _, err := db.ExecContext(ctx, `INSERT OR IGNORE INTO entry_tags (entry_id, tag) VALUES (?, ?)`, id, tag); err != nil {
		return fmt.Errorf("failed to tag entry %d with %q: %w", id, tag, err)
	}
	return nil
}

func splitField(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, fieldSeparator)
}
