package database

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jy02739244/Domain-AutoCheck/internal/conf"
)

const (
	connectTimeout  = 10 * time.Second
	connectMaxTries = 5
)

// Connect 初始化 MongoDB 連線，啟動時資料庫可能還沒就緒，以指數退避重試
func Connect(ctx context.Context, cfg conf.MongoConfig) (*mongo.Client, error) {
	clientOptions := options.Client().ApplyURI(cfg.URI)

	operation := func() (*mongo.Client, error) {
		attemptCtx, cancel := context.WithTimeout(ctx, connectTimeout)
		defer cancel()

		client, err := mongo.Connect(attemptCtx, clientOptions)
		if err != nil {
			return nil, backoff.Permanent(err) // URI 錯誤重試也沒用
		}
		// 測試連線 (Ping)
		if err := client.Ping(attemptCtx, nil); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		return client, nil
	}

	client, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(connectMaxTries),
		backoff.WithNotify(func(err error, next time.Duration) {
			logrus.Warnf("⏳ [Mongo] 連線失敗，%s 後重試: %v", next, err)
		}),
	)
	if err != nil {
		return nil, err
	}

	logrus.Info("成功連線至 MongoDB")
	return client, nil
}
