package cache

import (
	"context"
	"encoding/json"
	"time"

	"escort-cms/config"

	"github.com/redis/go-redis/v9"
)

// Client 为空时所有缓存操作都退化为 no-op，直接回源数据库
var Client *redis.Client

// FieldsKey 字段定义列表的缓存键，任何字段写操作都会使其失效
const FieldsKey = "escort-cms:girl-fields"

const defaultTTL = 10 * time.Minute

func Init() {
	cfg := config.Get().Redis
	if cfg.Host == "" {
		return
	}
	Client = redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// GetJSON 读取缓存并反序列化到 dest，未命中或出错返回 false
func GetJSON(ctx context.Context, key string, dest any) bool {
	if Client == nil {
		return false
	}
	raw, err := Client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false
	}
	return true
}

// SetJSON 序列化并写入缓存，失败只返回错误不影响主流程
func SetJSON(ctx context.Context, key string, value any) error {
	if Client == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return Client.Set(ctx, key, raw, defaultTTL).Err()
}

// Del 删除缓存键
func Del(ctx context.Context, keys ...string) error {
	if Client == nil {
		return nil
	}
	return Client.Del(ctx, keys...).Err()
}
