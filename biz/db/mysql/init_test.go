package mysql

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"contact_book/be/biz/config"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	s := dsn(config.MySQLConf{
		DBName:      "contacts",
		IP:          "10.0.0.1",
		Port:        3307,
		Username:    "app",
		Password:    "pw",
		DialTimeout: 2,
	})
	assert.True(t, strings.HasPrefix(s, "app:pw@tcp(10.0.0.1:3307)/contacts?"), s)
	assert.Contains(t, s, "parseTime=true")
	assert.Contains(t, s, "timeout=2s")
	assert.Contains(t, s, "readTimeout=10s")
	assert.Contains(t, s, "charset=utf8mb4")
	assert.Contains(t, s, "collation=utf8mb4_bin")
}

func TestTableOptions(t *testing.T) {
	assert.Contains(t, tableOptions("mysql"), "COLLATE=utf8mb4_bin")
	assert.Empty(t, tableOptions("sqlite"))
}

func TestInitWithDialector(t *testing.T) {
	p := filepath.Join(t.TempDir(), "deploy.yml")
	assert.NoError(t, os.WriteFile(p, []byte("mysql:\n  max_open_conns: 1\n  query_timeout: 2\n"), 0600))
	config.Init(p)

	InitWithDialector(sqlite.Open(":memory:"))
	db := GetDbConn()
	if assert.NotNil(t, db) {
		assert.True(t, db.Migrator().HasTable("users"))
		assert.True(t, db.Migrator().HasTable("contacts"))
	}
	assert.Equal(t, 2*time.Second, QueryTimeout())
}
