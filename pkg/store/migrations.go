package store

// Schema for the downstream lookup database. Statements are split on ";" by
// Init, so none of them may embed a literal semicolon.
const migrationsSQL = `
CREATE TABLE IF NOT EXISTS radicals (
	ordinal INTEGER PRIMARY KEY,
	glyph TEXT NOT NULL,
	pinyin TEXT NOT NULL,
	meaning TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS radical_members (
	ordinal INTEGER NOT NULL,
	position INTEGER NOT NULL,
	glyph TEXT NOT NULL,
	PRIMARY KEY (ordinal, position)
);

CREATE TABLE IF NOT EXISTS characters (
	glyph TEXT PRIMARY KEY,
	radical INTEGER NOT NULL,
	strokes INTEGER NOT NULL,
	pinyin TEXT NOT NULL DEFAULT '',
	definition TEXT NOT NULL DEFAULT '',
	grade_level INTEGER NOT NULL DEFAULT 0,
	char_frequency INTEGER NOT NULL DEFAULT 0,
	ids TEXT NOT NULL DEFAULT '',
	traditional TEXT,
	simplified TEXT
);

CREATE TABLE IF NOT EXISTS character_components (
	glyph TEXT NOT NULL,
	position INTEGER NOT NULL,
	component TEXT NOT NULL,
	PRIMARY KEY (glyph, position)
);

CREATE TABLE IF NOT EXISTS character_words (
	glyph TEXT NOT NULL,
	position INTEGER NOT NULL,
	word TEXT NOT NULL,
	PRIMARY KEY (glyph, position)
);

CREATE TABLE IF NOT EXISTS words (
	word TEXT PRIMARY KEY,
	traditional TEXT NOT NULL,
	pinyin TEXT NOT NULL,
	definition TEXT NOT NULL,
	frequency INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_characters_radical ON characters(radical);

CREATE INDEX IF NOT EXISTS idx_components_component ON character_components(component)
`
