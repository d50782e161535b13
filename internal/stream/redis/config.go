package redis

import "time"

const (
	DefaultStream       = "log-events"
	DefaultResultStream = "log-classifications"
	DefaultGroup        = "log-classifier-group"
	defaultBlock        = 2 * time.Second
)

type RedisStreamConfig struct {
	RedisAddr     string
	RedisPassword string
	Stream        string
	ResultStream  string
	Group         string
	ConsumerName  string
}

func NewRedisStreamConfig(redisAddr string, redisPassword string, stream string, resultStream string, group string, consumerName string) *RedisStreamConfig {
	if stream == "" {
		stream = DefaultStream
	}
	if resultStream == "" {
		resultStream = DefaultResultStream
	}
	if group == "" {
		group = DefaultGroup
	}
	if consumerName == "" {
		consumerName = "log-classifier"
	}

	return &RedisStreamConfig{
		RedisAddr:     redisAddr,
		RedisPassword: redisPassword,
		Stream:        stream,
		ResultStream:  resultStream,
		Group:         group,
		ConsumerName:  consumerName,
	}
}
