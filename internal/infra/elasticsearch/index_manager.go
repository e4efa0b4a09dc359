package elasticsearch

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"filmorate-go/pkg/logger"

	"go.uber.org/zap"
)

// FilmsIndex 电影索引的逻辑名
const FilmsIndex = "films"

// GetFilmsIndexMapping 返回 films 索引的 mapping
// 片名与导演姓名使用 standard 分词，另存 keyword 子字段
func GetFilmsIndexMapping() string {
	return `{
		"settings": {
			"number_of_shards": 1,
			"number_of_replicas": 0
		},
		"mappings": {
			"properties": {
				"id": {"type": "long"},
				"name": {
					"type": "text",
					"analyzer": "standard",
					"fields": {"keyword": {"type": "keyword", "ignore_above": 255}}
				},
				"description": {"type": "text", "analyzer": "standard"},
				"directors": {
					"type": "text",
					"analyzer": "standard",
					"fields": {"keyword": {"type": "keyword", "ignore_above": 255}}
				},
				"genre_ids": {"type": "long"},
				"mpa_id": {"type": "long"},
				"release_date": {"type": "date", "format": "yyyy-MM-dd"},
				"duration": {"type": "integer"},
				"like_count": {"type": "long"}
			}
		}
	}`
}

// EnsureFilmsIndex 确保 films 索引存在，不存在则创建
func EnsureFilmsIndex(ctx context.Context, indexName string) error {
	exists, err := IndicesExists(ctx, indexName)
	if err != nil {
		return fmt.Errorf("check index exists: %w", err)
	}
	if exists {
		logger.Info("Elasticsearch films index already exists", zap.String("index", indexName))
		return nil
	}

	body := bytes.NewReader([]byte(GetFilmsIndexMapping()))
	resp, err := IndicesCreate(ctx, indexName, body)
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("create index failed: %s", resp.String())
	}

	logger.Info("Elasticsearch films index created", zap.String("index", indexName))
	return nil
}

// InitIndexes 初始化所有索引（启动时调用）
func InitIndexes(indexName string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return EnsureFilmsIndex(ctx, indexName)
}
