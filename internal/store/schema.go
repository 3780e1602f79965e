package store

// Schema creates the journal tables. Amounts are stored as exact decimal
// strings, never floats.
const Schema = `
CREATE TABLE IF NOT EXISTS journal_entries (
	id TEXT PRIMARY KEY,
	number TEXT NOT NULL UNIQUE,
	date TEXT NOT NULL,
	description TEXT NOT NULL,
	document_ref TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS journal_entry_lines (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	entry_id TEXT NOT NULL REFERENCES journal_entries(id),
	account_code TEXT NOT NULL,
	debit TEXT NOT NULL,
	credit TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_lines_entry ON journal_entry_lines(entry_id);
CREATE INDEX IF NOT EXISTS idx_lines_account ON journal_entry_lines(account_code);
CREATE INDEX IF NOT EXISTS idx_entries_date ON journal_entries(date);
`
