package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitStatements_Basic(t *testing.T) {
	t.Parallel()

	stmts := splitStatements("CREATE TABLE a (id TEXT); CREATE TABLE b (id TEXT);")
	require.Len(t, stmts, 2)
	assert.Equal(t, "CREATE TABLE a (id TEXT)", stmts[0])
	assert.Equal(t, "CREATE TABLE b (id TEXT)", stmts[1])
}

func TestSplitStatements_SemicolonInStringLiteral(t *testing.T) {
	t.Parallel()

	stmts := splitStatements("INSERT INTO t (v) VALUES ('a;b'); SELECT 1;")
	require.Len(t, stmts, 2)
	assert.Equal(t, "INSERT INTO t (v) VALUES ('a;b')", stmts[0])
}

func TestSplitStatements_EscapedQuote(t *testing.T) {
	t.Parallel()

	// '' escape'i string'i kapatmaz — içindeki ; ayırıcı sayılmaz
	stmts := splitStatements("INSERT INTO t (v) VALUES ('it''s; fine'); SELECT 1;")
	require.Len(t, stmts, 2)
	assert.Equal(t, "INSERT INTO t (v) VALUES ('it''s; fine')", stmts[0])
}

func TestSplitStatements_CommentsWithApostropheAndSemicolon(t *testing.T) {
	t.Parallel()

	// Yorum satırındaki kesme işareti string durumunu AÇMAMALI,
	// yorumdaki noktalı virgül statement'ı BÖLMEMELİ.
	sqlText := `-- token'ın son kullanma tarihi; sonrası anlamsız
CREATE TABLE revoked (
    hash TEXT PRIMARY KEY, -- token'ların özeti
    expires_at DATETIME
);
CREATE INDEX idx_revoked ON revoked(expires_at);
`
	stmts := splitStatements(sqlText)
	require.Len(t, stmts, 2)
	assert.Contains(t, stmts[0], "CREATE TABLE revoked")
	assert.Contains(t, stmts[0], "expires_at DATETIME")
	assert.Contains(t, stmts[1], "CREATE INDEX idx_revoked")
}

func TestSplitStatements_BlockComment(t *testing.T) {
	t.Parallel()

	stmts := splitStatements("/* açıklama; 'tırnaklı' */ CREATE TABLE a (id TEXT);")
	require.Len(t, stmts, 1)
	assert.Contains(t, stmts[0], "CREATE TABLE a")
}

func TestSplitStatements_TrailingCommentOnly(t *testing.T) {
	t.Parallel()

	// Son noktalı virgülden sonra kalan salt-yorum kuyruk
	// boş bir "statement" olarak çalıştırılmamalı.
	stmts := splitStatements("CREATE TABLE a (id TEXT);\n-- dosya sonu notu\n")
	require.Len(t, stmts, 1)
}

// Migration dosyasının kendisi uygulanabilmeli — içindeki serbest metin
// yorumları splitter'ı bozarsa New burada patlar.
func TestNew_AppliesEmbeddedMigrations(t *testing.T) {
	t.Parallel()

	migrationsFS, err := EmbeddedMigrations()
	require.NoError(t, err)

	db, err := New(filepath.Join(t.TempDir(), "test.db"), migrationsFS)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	// Şemadaki ana tablolar gerçekten oluşmuş olmalı
	for _, table := range []string{"users", "revoked_tokens", "categories", "products", "orders"} {
		var name string
		err := db.Conn.QueryRow(
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table,
		).Scan(&name)
		require.NoError(t, err, "table %s missing", table)
	}
}
