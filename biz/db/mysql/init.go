package mysql

import (
	"fmt"
	"time"

	"contact_book/be/biz/config"
	"contact_book/be/biz/model/storage"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	mysqldriver "github.com/go-sql-driver/mysql"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	defaultQueryTimeout = 5 * time.Second

	// usernames compare byte for byte, so "alice" and "Alice" are two accounts
	binaryCollation = "utf8mb4_bin"
)

var dbConn *gorm.DB

func Init() {
	InitWithDialector(gormmysql.Open(dsn(config.GetMySQLConf())))
}

// InitWithDialector opens the store on any gorm dialector, migrates the
// schema and installs it as the process-wide connection.
func InitWithDialector(dialector gorm.Dialector) {
	conf := config.GetMySQLConf()

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger: logger.New(hlogWriter{}, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		panic(err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}
	if conf.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(conf.MaxOpenConns)
	}
	if conf.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(conf.MaxIdleConns)
	}

	if err := migrate(db); err != nil {
		panic(err)
	}

	dbConn = db
}

func migrate(db *gorm.DB) error {
	if opts := tableOptions(db.Dialector.Name()); opts != "" {
		db = db.Set("gorm:table_options", opts)
	}
	return db.AutoMigrate(&storage.UserRecord{}, &storage.ContactRecord{})
}

// tableOptions pins the table collation on mysql, whose server default is
// case and accent insensitive.
func tableOptions(dialect string) string {
	if dialect != "mysql" {
		return ""
	}
	return "ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=" + binaryCollation
}

func GetDbConn() *gorm.DB {
	return dbConn
}

// QueryTimeout bounds every repository call.
func QueryTimeout() time.Duration {
	if t := config.GetMySQLConf().QueryTimeout; t > 0 {
		return time.Duration(t) * time.Second
	}
	return defaultQueryTimeout
}

func dsn(conf config.MySQLConf) string {
	c := mysqldriver.NewConfig()
	c.User = conf.Username
	c.Passwd = conf.Password
	c.Net = "tcp"
	c.Addr = fmt.Sprintf("%s:%d", conf.IP, conf.Port)
	c.DBName = conf.DBName
	c.ParseTime = true
	c.Loc = time.Local
	c.Params = map[string]string{"charset": "utf8mb4"}
	c.Collation = binaryCollation
	c.Timeout = seconds(conf.DialTimeout, 5)
	c.ReadTimeout = seconds(conf.ReadTimeout, 10)
	c.WriteTimeout = seconds(conf.WriteTimeout, 10)
	return c.FormatDSN()
}

func seconds(v, def int) time.Duration {
	if v <= 0 {
		v = def
	}
	return time.Duration(v) * time.Second
}

type hlogWriter struct{}

func (hlogWriter) Printf(format string, v ...interface{}) {
	hlog.Warnf(format, v...)
}
