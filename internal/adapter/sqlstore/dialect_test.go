package sqlstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialectFor(t *testing.T) {
	t.Parallel()

	d, err := DialectFor(" MySQL ")
	require.NoError(t, err)
	assert.Equal(t, MySQL, d)

	d, err = DialectFor("postgres")
	require.NoError(t, err)
	assert.Equal(t, Postgres, d)

	_, err = DialectFor("sqlite")
	assert.Error(t, err)
}

func TestDialect_Placeholders(t *testing.T) {
	t.Parallel()

	q, args, err := MySQL.Builder().Select("id").From("novels").Where("id = ?", 1).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM novels WHERE id = ?", q)
	assert.Equal(t, []any{1}, args)

	q, _, err = Postgres.Builder().Select("id").From("novels").Where("id = ?", 1).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM novels WHERE id = $1", q)
}

func TestDialect_Contains(t *testing.T) {
	t.Parallel()

	q, args, err := MySQL.Contains("武侠", "n.title", "n.description").ToSql()
	require.NoError(t, err)
	assert.Equal(t, "(n.title LIKE ? OR n.description LIKE ?)", q)
	assert.Equal(t, []any{"%武侠%", "%武侠%"}, args)

	q, args, err = Postgres.Contains("sword", "n.title").ToSql()
	require.NoError(t, err)
	assert.Equal(t, "(n.title ILIKE ?)", q)
	assert.Equal(t, []any{"%sword%"}, args)
}

func TestDialect_FullText(t *testing.T) {
	t.Parallel()

	q, args, err := MySQL.FullTextMatch("dragon").ToSql()
	require.NoError(t, err)
	assert.Equal(t, "MATCH(n.title, n.description) AGAINST (? IN NATURAL LANGUAGE MODE)", q)
	assert.Equal(t, []any{"dragon"}, args)

	q, _, err = MySQL.Relevance("dragon").ToSql()
	require.NoError(t, err)
	assert.Equal(t, "(MATCH(n.title, n.description) AGAINST (? IN NATURAL LANGUAGE MODE)) AS relevance", q)

	q, _, err = Postgres.FullTextMatch("dragon").ToSql()
	require.NoError(t, err)
	assert.Contains(t, q, "plainto_tsquery('simple', ?)")
	assert.Contains(t, q, pgDocument)

	q, _, err = Postgres.Relevance("dragon").ToSql()
	require.NoError(t, err)
	assert.Contains(t, q, "ts_rank(")
	assert.Contains(t, q, "AS relevance")
}

func TestEscapeLike(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `100\%`, EscapeLike("100%"))
	assert.Equal(t, `a\_b`, EscapeLike("a_b"))
	assert.Equal(t, `c:\\dir`, EscapeLike(`c:\dir`))
	assert.Equal(t, "plain", EscapeLike("plain"))
}

func TestDialect_ShortText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "LEFT(n.description, 200) AS short_description",
		MySQL.ShortText("n.description", 200, "short_description"))
}
