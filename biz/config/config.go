package config

import (
	"errors"
	"os"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

func Init(filepath string) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		panic(err)
	}

	var conf ServiceConf
	if err := yaml.Unmarshal(content, &conf); err != nil {
		panic(err)
	}
	globalConfig = conf

	hlog.Debugf("config loaded from %s", filepath)
}

// Validate reports settings the service cannot start without.
func Validate() error {
	if globalConfig.JWT.Secret == "" {
		return errors.New("jwt.secret is required")
	}
	cost := globalConfig.Password.BcryptCost
	if cost != 0 && (cost < bcrypt.MinCost || cost > bcrypt.MaxCost) {
		return errors.New("password.bcrypt_cost out of range")
	}
	return nil
}

func GetServerConf() ServerConf {
	return globalConfig.Server
}

func GetMySQLConf() MySQLConf {
	return globalConfig.MySQL
}

func GetRedisConf() RedisConf {
	return globalConfig.Redis
}

func GetJWTConfig() JWTConf {
	return globalConfig.JWT
}

func GetPasswordConf() PasswordConf {
	return globalConfig.Password
}

func GetCORSConf() CORSConf {
	return globalConfig.CORS
}

func GetLoggerConf() LoggerConf {
	return globalConfig.Logger
}

var globalConfig ServiceConf

type ServiceConf struct {
	Server   ServerConf   `yaml:"server"`
	MySQL    MySQLConf    `yaml:"mysql"`
	Redis    RedisConf    `yaml:"redis"`
	JWT      JWTConf      `yaml:"jwt"`
	Password PasswordConf `yaml:"password"`
	CORS     CORSConf     `yaml:"cors"`
	Logger   LoggerConf   `yaml:"logger"`
}

type ServerConf struct {
	Addr          string `yaml:"addr"`
	EnableSwagger bool   `yaml:"enable_swagger"`
}

type MySQLConf struct {
	DBName   string `yaml:"db_name"`
	IP       string `yaml:"ip"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`

	// seconds
	DialTimeout  int `yaml:"dial_timeout"`
	ReadTimeout  int `yaml:"read_timeout"`
	WriteTimeout int `yaml:"write_timeout"`
	QueryTimeout int `yaml:"query_timeout"`

	MaxOpenConns int `yaml:"max_open_conns"`
	MaxIdleConns int `yaml:"max_idle_conns"`
}

type RedisConf struct {
	IP       string `yaml:"ip"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`

	// seconds
	DialTimeout  int `yaml:"dial_timeout"`
	ReadTimeout  int `yaml:"read_timeout"`
	WriteTimeout int `yaml:"write_timeout"`
}

type JWTConf struct {
	Issuer string `yaml:"issuer"`
	Secret string `yaml:"secret"`

	// seconds
	AccessExpiration int `yaml:"access_expiration"`
}

type PasswordConf struct {
	BcryptCost int `yaml:"bcrypt_cost"`
}

type CORSConf struct {
	AllowOrigins     []string `yaml:"allow_origins"`
	AllowMethods     []string `yaml:"allow_methods"`
	AllowHeaders     []string `yaml:"allow_headers"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	MaxAge           int      `yaml:"max_age"`
}

type LoggerConf struct {
	Level      string `yaml:"level"`
	Dir        string `yaml:"dir"`
	FileName   string `yaml:"file_name"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
	Stdout     bool   `yaml:"stdout"`
}
