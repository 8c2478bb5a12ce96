package runstore

const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id               TEXT PRIMARY KEY,
    created_at       TEXT NOT NULL,
    ref_path         TEXT NOT NULL,
    hyp_path         TEXT NOT NULL,
    options_json     TEXT NOT NULL,
    sentence_count   INTEGER NOT NULL,
    ref_token_count  INTEGER NOT NULL,
    match_count      INTEGER NOT NULL,
    error_count      INTEGER NOT NULL,
    sent_error_count INTEGER NOT NULL,
    wer              REAL NOT NULL,
    wrr              REAL NOT NULL,
    ser              REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs (created_at DESC);
`
