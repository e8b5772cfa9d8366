package db

import (
	"contact_book/be/biz/db/mysql"
	"contact_book/be/biz/db/redis"
)

func Init() {
	mysql.Init()
	redis.Init()
}
