package elasticsearch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"filmorate-go/internal/config"
	"filmorate-go/pkg/logger"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"go.uber.org/zap"
)

var client *elasticsearch.Client

var errNotInitialized = errors.New("elasticsearch client not initialized")

// Init 初始化 Elasticsearch 客户端，连接失败时 client 保持为空
func Init(cfg *config.ElasticsearchConfig) error {
	hosts := normalizeHosts(cfg.Hosts)
	if len(hosts) == 0 {
		return errors.New("elasticsearch hosts is empty")
	}

	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses:     hosts,
		RetryOnStatus: []int{http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout},
		MaxRetries:    3,
		RetryBackoff:  func(i int) time.Duration { return time.Duration(i) * 200 * time.Millisecond },
	})
	if err != nil {
		return fmt.Errorf("create elasticsearch client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, err := esapi.PingRequest{}.Do(ctx, es)
	if err != nil {
		return fmt.Errorf("failed to ping elasticsearch: %w", err)
	}
	resp.Body.Close()
	if resp.IsError() {
		return fmt.Errorf("elasticsearch ping failed: %s", resp.Status())
	}

	client = es
	logger.Info("Elasticsearch connected", zap.Strings("hosts", hosts))
	return nil
}

// normalizeHosts 去掉空地址，缺少协议时补 http://
func normalizeHosts(raw []string) []string {
	hosts := make([]string, 0, len(raw))
	for _, h := range raw {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		if !strings.HasPrefix(h, "http://") && !strings.HasPrefix(h, "https://") {
			h = "http://" + h
		}
		hosts = append(hosts, h)
	}
	return hosts
}

func do(ctx context.Context, req esapi.Request) (*esapi.Response, error) {
	if client == nil {
		return nil, errNotInitialized
	}
	return req.Do(ctx, client)
}

// Search 在 index 上执行 DSL 查询
func Search(ctx context.Context, index string, body io.Reader) (*esapi.Response, error) {
	return do(ctx, esapi.SearchRequest{
		Index: []string{index},
		Body:  body,
	})
}

// Index 写入或覆盖文档
func Index(ctx context.Context, index, id string, body io.Reader) (*esapi.Response, error) {
	return do(ctx, esapi.IndexRequest{
		Index:      index,
		DocumentID: id,
		Body:       body,
	})
}

// Delete 删除文档
func Delete(ctx context.Context, index, id string) (*esapi.Response, error) {
	return do(ctx, esapi.DeleteRequest{
		Index:      index,
		DocumentID: id,
	})
}

// IndicesCreate 按 mapping 创建索引
func IndicesCreate(ctx context.Context, index string, body io.Reader) (*esapi.Response, error) {
	return do(ctx, esapi.IndicesCreateRequest{
		Index: index,
		Body:  body,
	})
}

// IndicesExists 检查索引是否存在
func IndicesExists(ctx context.Context, index string) (bool, error) {
	resp, err := do(ctx, esapi.IndicesExistsRequest{Index: []string{index}})
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("check index %s: %s", index, resp.Status())
	}
}

// Close 释放客户端
func Close() error {
	client = nil
	logger.Info("Elasticsearch client closed")
	return nil
}
