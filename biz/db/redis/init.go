package redis

import (
	"fmt"
	"time"

	"contact_book/be/biz/config"

	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

func Init() {
	conf := config.GetRedisConf()
	redisClient = redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", conf.IP, conf.Port),
		Password:     conf.Password,
		DB:           conf.DB,
		DialTimeout:  seconds(conf.DialTimeout, 5),
		ReadTimeout:  seconds(conf.ReadTimeout, 3),
		WriteTimeout: seconds(conf.WriteTimeout, 3),
	})
}

func GetRedisClient() *redis.Client {
	return redisClient
}

func seconds(v, def int) time.Duration {
	if v <= 0 {
		v = def
	}
	return time.Duration(v) * time.Second
}
