package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/vybenetwork/vybebot/config"
	"github.com/vybenetwork/vybebot/entity"
)

var redisClient *redis.Client

// InitRedis connects the main client. The push channel gets its own
// client later through NewRedisClient.
func InitRedis() {
	redisClient = NewRedisClient(
		config.YmlConfig.Redis.Ip,
		config.YmlConfig.Redis.Port,
		config.YmlConfig.Redis.Username,
		config.YmlConfig.Redis.Passwd,
		config.YmlConfig.Redis.Db,
	)
}

func NewRedisClient(ip string, port int, userName string, passwd string, db int) *redis.Client {
	opts := &redis.Options{
		Addr:     fmt.Sprintf("%s:%d", ip, port),
		Username: userName,
		Password: passwd,
		DB:       db,

		PoolSize:     10,
		MinIdleConns: 5,
		MaxIdleConns: 10,

		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolTimeout:  4 * time.Second,

		MaxRetries:      3,
		MinRetryBackoff: 8 * time.Millisecond,
		MaxRetryBackoff: 512 * time.Millisecond,
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatal().Err(err).Msgf("redis [%s:%d] unreachable", ip, port)
	}
	log.Debug().Msgf("connected redis [%s:%d]", ip, port)
	return rdb
}

func checkRedis() {
	if redisClient == nil {
		log.Fatal().Msg("redisClient is not set")
	}
}

const usersSetKey = "bot:users"

// TrackUser remembers everyone who started the bot, for broadcast delivery.
func TrackUser(userID int64) {
	checkRedis()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.SAdd(ctx, usersSetKey, userID).Err(); err != nil {
		log.Error().Err(err).Int64("userID", userID).Msg("track user failed")
	}
}

func AllUsers() ([]int64, error) {
	checkRedis()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ids, err := redisClient.SMembers(ctx, usersSetKey).Result()
	if err != nil {
		return nil, err
	}

	users := make([]int64, 0, len(ids))
	for _, id := range ids {
		var userID int64
		if _, err := fmt.Sscanf(id, "%d", &userID); err == nil {
			users = append(users, userID)
		}
	}
	return users, nil
}

// Recent lookups let prompts offer the last few addresses a user queried
// as quick-pick buttons.

const (
	KindMint       = "mint"
	KindProgram    = "program"
	KindWallet     = "wallet"
	KindCollection = "collection"
)

func recentKey(userID int64, kind string) string {
	return fmt.Sprintf("recent:%s:%d", kind, userID)
}

func PushRecentLookup(userID int64, kind, address string) {
	checkRedis()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	key := recentKey(userID, kind)
	pipe := redisClient.Pipeline()
	pipe.LRem(ctx, key, 0, address)
	pipe.LPush(ctx, key, address)
	pipe.LTrim(ctx, key, 0, 4)
	pipe.Expire(ctx, key, 30*24*time.Hour)
	if _, err := pipe.Exec(ctx); err != nil {
		log.Error().Err(err).Str("kind", kind).Msg("push recent lookup failed")
	}
}

func RecentLookups(userID int64, kind string) []string {
	checkRedis()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	items, err := redisClient.LRange(ctx, recentKey(userID, kind), 0, 4).Result()
	if err != nil {
		if err != redis.Nil {
			log.Error().Err(err).Str("kind", kind).Msg("recent lookups failed")
		}
		return nil
	}
	return items
}

// SubChannel subscribes on a dedicated push client and relays messages
// until the subscription dies, then closes the returned channel.
func SubChannel(channelName string) (<-chan *redis.Message, error) {
	checkRedis()
	log.Debug().Str("sub channel", channelName).Send()

	pushClient := NewRedisClient(
		config.YmlConfig.RedisPush.Ip,
		config.YmlConfig.RedisPush.Port,
		config.YmlConfig.RedisPush.Username,
		config.YmlConfig.RedisPush.Passwd,
		config.YmlConfig.RedisPush.Db,
	)

	ch := make(chan *redis.Message, 1000)
	go func() {
		defer pushClient.Close()
		defer close(ch)

		pubsub := pushClient.Subscribe(context.Background(), channelName)
		defer pubsub.Close()

		if _, err := pubsub.Receive(context.Background()); err != nil {
			log.Error().Err(err).Msg("push channel subscribe failed")
			return
		}

		for msg := range pubsub.Channel() {
			ch <- msg
		}
	}()

	return ch, nil
}

const messageCountKey = "bot:message:counter"

// messageKey namespaces the rolling send counter per bot identity, so
// a shared redis can host more than one deployment.
func messageKey() string {
	return fmt.Sprintf("%s:%d:%s", messageCountKey, entity.MainBotConfig.Id, entity.MainBotConfig.BotName)
}

func BotMessageAdd() (int64, error) {
	checkRedis()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	key := messageKey()
	pipe := redisClient.Pipeline()
	incrCmd := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, 3*time.Second)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incrCmd.Val(), nil
}

func BotMessageCount() (int64, error) {
	checkRedis()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	val, err := redisClient.Get(ctx, messageKey()).Int64()
	if err == redis.Nil {
		return 0, nil
	} else if err != nil {
		return 0, err
	}

	return val, nil
}
