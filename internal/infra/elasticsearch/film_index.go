package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"filmorate-go/internal/model"
	"filmorate-go/pkg/logger"

	"go.uber.org/zap"
)

// ESFilmDoc ES 电影文档结构
type ESFilmDoc struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Directors   []string `json:"directors"`
	GenreIDs    []int64  `json:"genre_ids"`
	MpaID       int64    `json:"mpa_id"`
	ReleaseDate string   `json:"release_date"`
	Duration    int      `json:"duration"`
	LikeCount   int64    `json:"like_count"`
}

func filmToESDoc(f *model.Film, likeCount int64) *ESFilmDoc {
	return &ESFilmDoc{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		Directors:   f.DirectorNames(),
		GenreIDs:    f.GenreIDs(),
		MpaID:       f.MpaID,
		ReleaseDate: f.ReleaseDate.UTC().Format("2006-01-02"),
		Duration:    f.Duration,
		LikeCount:   likeCount,
	}
}

// 搜索字段到文档字段的映射
var searchFields = map[string]string{
	"title":    "name",
	"director": "directors",
}

// buildFilmQuery 在给定字段上做不区分大小写的子串匹配
func buildFilmQuery(query string, fields []string, limit int) map[string]interface{} {
	pattern := "*" + query + "*"
	should := make([]interface{}, 0, len(fields))
	for _, f := range fields {
		docField, ok := searchFields[f]
		if !ok {
			continue
		}
		should = append(should, map[string]interface{}{
			"wildcard": map[string]interface{}{
				docField + ".keyword": map[string]interface{}{
					"value":            pattern,
					"case_insensitive": true,
				},
			},
		})
	}

	return map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"should":               should,
				"minimum_should_match": 1,
			},
		},
		"_source": []string{"id"},
		"size":    limit,
		"sort": []interface{}{
			map[string]interface{}{"like_count": map[string]string{"order": "desc"}},
			map[string]interface{}{"id": map[string]string{"order": "asc"}},
		},
	}
}

func decodeHitIDs(body io.Reader) ([]int64, error) {
	var esResp struct {
		Hits struct {
			Hits []struct {
				Source struct {
					ID int64 `json:"id"`
				} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(body).Decode(&esResp); err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(esResp.Hits.Hits))
	for _, h := range esResp.Hits.Hits {
		ids = append(ids, h.Source.ID)
	}
	return ids, nil
}

// FilmIndex 电影索引的读写
type FilmIndex struct {
	index string
}

func NewFilmIndex(indexName string) *FilmIndex {
	return &FilmIndex{index: indexName}
}

// Search 返回命中的电影 ID
func (x *FilmIndex) Search(ctx context.Context, query string, fields []string, limit int) ([]int64, error) {
	body, err := json.Marshal(buildFilmQuery(query, fields, limit))
	if err != nil {
		return nil, err
	}

	resp, err := Search(ctx, x.index, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return nil, fmt.Errorf("ES search error: %s", resp.String())
	}
	return decodeHitIDs(resp.Body)
}

// Upsert 同步单部电影到 ES
func (x *FilmIndex) Upsert(ctx context.Context, f *model.Film, likeCount int64) error {
	body, err := json.Marshal(filmToESDoc(f, likeCount))
	if err != nil {
		return err
	}

	resp, err := Index(ctx, x.index, strconv.FormatInt(f.ID, 10), bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("index document failed: %s", resp.String())
	}

	logger.Debug("Film synced to ES", zap.Int64("film_id", f.ID))
	return nil
}

// Delete 从 ES 删除电影，文档不存在时视为成功
func (x *FilmIndex) Delete(ctx context.Context, filmID int64) error {
	resp, err := Delete(ctx, x.index, strconv.FormatInt(filmID, 10))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() && resp.StatusCode != 404 {
		return fmt.Errorf("delete document failed: %s", resp.String())
	}
	return nil
}
