package lexicon

const schema = `
-- 'entries' は JMdict のエントリ (id = ent_seq)
CREATE TABLE IF NOT EXISTS entries (
    id INTEGER PRIMARY KEY
);

-- 'forms' は表記 (kind = 'k') と読み (kind = 'r')。priority はスペース区切り
CREATE TABLE IF NOT EXISTS forms (
    entry_id INTEGER NOT NULL,
    kind TEXT NOT NULL,
    position INTEGER NOT NULL,
    text TEXT NOT NULL,
    priority TEXT NOT NULL DEFAULT '',

    FOREIGN KEY(entry_id) REFERENCES entries(id)
);
CREATE INDEX IF NOT EXISTS idx_forms_text ON forms(text);
CREATE INDEX IF NOT EXISTS idx_forms_entry ON forms(entry_id);

-- 'senses' は語義グループ。glosses と pos は unit separator (0x1f) 区切り
CREATE TABLE IF NOT EXISTS senses (
    entry_id INTEGER NOT NULL,
    position INTEGER NOT NULL,
    glosses TEXT NOT NULL,
    pos TEXT NOT NULL DEFAULT '',

    FOREIGN KEY(entry_id) REFERENCES entries(id)
);
CREATE INDEX IF NOT EXISTS idx_senses_entry ON senses(entry_id);

-- 'entry_tags' は jlpt-n3 などの追加メタデータ
CREATE TABLE IF NOT EXISTS entry_tags (
    entry_id INTEGER NOT NULL,
    tag TEXT NOT NULL,

    PRIMARY KEY(entry_id, tag)
);
`
