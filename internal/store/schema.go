package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS presets (
    name                 TEXT PRIMARY KEY,
    starting_balance     REAL NOT NULL,
    monthly_contribution REAL NOT NULL,
    annual_rate          REAL NOT NULL,
    years                INTEGER NOT NULL,
    note                 TEXT,
    created_at           TEXT NOT NULL,
    updated_at           TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_presets_updated ON presets(updated_at);
`
