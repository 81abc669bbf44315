package database

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingTx struct {
	db        *recordingDB
	committed bool
}

func (t *recordingTx) Exec(_ context.Context, sqlizer sqlizer) (pgconn.CommandTag, error) {
	_, args, err := sqlizer.ToSql()
	if err != nil {
		return nil, err
	}
	t.db.recorded = append(t.db.recorded, args[0].(string))
	return pgconn.CommandTag("INSERT 0 1"), nil
}

func (t *recordingTx) Get(context.Context, interface{}, sqlizer) error {
	return errors.New("not used")
}

func (t *recordingTx) Select(context.Context, interface{}, sqlizer) error {
	return errors.New("not used")
}

func (t *recordingTx) ExecRaw(_ context.Context, sql string, _ ...interface{}) (pgconn.CommandTag, error) {
	if sql == t.db.failOn {
		return nil, errors.New("syntax error")
	}
	t.db.executed = append(t.db.executed, sql)
	return nil, nil
}

func (t *recordingTx) Commit(context.Context) error {
	t.committed = true
	return nil
}

func (t *recordingTx) Rollback(context.Context) error {
	return nil
}

type recordingDB struct {
	applied  []string
	raw      []string
	executed []string
	recorded []string
	txs      []*recordingTx
	failOn   string
}

func (db *recordingDB) Exec(context.Context, sqlizer) (pgconn.CommandTag, error) {
	return nil, errors.New("not used")
}

func (db *recordingDB) Get(context.Context, interface{}, sqlizer) error {
	return errors.New("not used")
}

func (db *recordingDB) Select(_ context.Context, dst interface{}, sqlizer sqlizer) error {
	query, _, err := sqlizer.ToSql()
	if err != nil {
		return err
	}
	if query != "SELECT name FROM "+MigrationsTable {
		return errors.New("unexpected query " + query)
	}
	*dst.(*[]string) = append([]string(nil), db.applied...)
	return nil
}

func (db *recordingDB) ExecRaw(_ context.Context, sql string, _ ...interface{}) (pgconn.CommandTag, error) {
	db.raw = append(db.raw, sql)
	return nil, nil
}

func (db *recordingDB) BeginTx(context.Context, *pgx.TxOptions) (Tx, error) {
	tx := &recordingTx{db: db}
	db.txs = append(db.txs, tx)
	return tx, nil
}

func (db *recordingDB) Ping(context.Context) error {
	return nil
}

func TestMigrate(t *testing.T) {
	fsys := fstest.MapFS{
		"002_seed.sql": {Data: []byte("INSERT INTO categories (name) VALUES ('Music');")},
		"001_init.sql": {Data: []byte("CREATE TABLE categories (id BIGSERIAL);")},
		"README.md":    {Data: []byte("not a migration")},
	}
	db := &recordingDB{}

	require.NoError(t, Migrate(context.Background(), db, fsys, zap.NewNop().Sugar()))

	require.Len(t, db.raw, 1)
	assert.Contains(t, db.raw[0], "CREATE TABLE IF NOT EXISTS "+MigrationsTable)
	assert.Equal(t, []string{
		"CREATE TABLE categories (id BIGSERIAL);",
		"INSERT INTO categories (name) VALUES ('Music');",
	}, db.executed)
	assert.Equal(t, []string{"001_init.sql", "002_seed.sql"}, db.recorded)
	require.Len(t, db.txs, 2)
	assert.True(t, db.txs[0].committed)
	assert.True(t, db.txs[1].committed)
}

func TestMigrateSkipsApplied(t *testing.T) {
	fsys := fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE categories (id BIGSERIAL);")},
		"002_seed.sql": {Data: []byte("INSERT INTO categories (name) VALUES ('Music');")},
	}
	db := &recordingDB{applied: []string{"001_init.sql"}}

	require.NoError(t, Migrate(context.Background(), db, fsys, zap.NewNop().Sugar()))

	assert.Equal(t, []string{"INSERT INTO categories (name) VALUES ('Music');"}, db.executed)
	assert.Equal(t, []string{"002_seed.sql"}, db.recorded)
}

func TestMigrateStopsOnFailure(t *testing.T) {
	fsys := fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE oops")},
		"002_seed.sql": {Data: []byte("INSERT INTO categories (name) VALUES ('Music');")},
	}
	db := &recordingDB{failOn: "CREATE TABLE oops"}

	err := Migrate(context.Background(), db, fsys, zap.NewNop().Sugar())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "001_init.sql")

	assert.Empty(t, db.executed)
	assert.Empty(t, db.recorded)
	require.Len(t, db.txs, 1)
	assert.False(t, db.txs[0].committed)
}
