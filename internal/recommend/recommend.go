// Package recommend 基于共同喜欢的用户协同过滤，不依赖存储
package recommend

import "sort"

// Neighbor 相似用户及其与目标用户共同喜欢的电影数
type Neighbor struct {
	UserID  int64
	Overlap int64
}

// Candidate 候选电影及支持它的相似用户数
type Candidate struct {
	FilmID int64
	Score  int64
}

// Like 一条喜欢记录
type Like struct {
	UserID int64
	FilmID int64
}

// SelectNeighbors 过滤掉目标用户和无重合的用户，按重合数降序、用户 ID 升序取前 k 个
func SelectNeighbors(overlaps []Neighbor, self int64, k int) []Neighbor {
	if k <= 0 {
		return []Neighbor{}
	}

	neighbors := make([]Neighbor, 0, len(overlaps))
	for _, n := range overlaps {
		if n.UserID == self || n.Overlap <= 0 {
			continue
		}
		neighbors = append(neighbors, n)
	}

	sort.Slice(neighbors, func(i, j int) bool {
		if neighbors[i].Overlap != neighbors[j].Overlap {
			return neighbors[i].Overlap > neighbors[j].Overlap
		}
		return neighbors[i].UserID < neighbors[j].UserID
	})

	if len(neighbors) > k {
		neighbors = neighbors[:k]
	}
	return neighbors
}

// ScoreCandidates 统计相似用户喜欢、目标用户未喜欢的电影
// 得分为喜欢该电影的相似用户数，按得分降序、电影 ID 升序取前 limit 个
func ScoreCandidates(likes []Like, neighbors []Neighbor, liked []int64, limit int) []Candidate {
	if limit <= 0 || len(neighbors) == 0 {
		return []Candidate{}
	}

	selected := make(map[int64]struct{}, len(neighbors))
	for _, n := range neighbors {
		selected[n.UserID] = struct{}{}
	}
	seen := make(map[int64]struct{}, len(liked))
	for _, id := range liked {
		seen[id] = struct{}{}
	}

	// 同一用户对同一电影最多计一次
	counted := make(map[Like]struct{}, len(likes))
	scores := make(map[int64]int64)
	for _, l := range likes {
		if _, ok := selected[l.UserID]; !ok {
			continue
		}
		if _, ok := seen[l.FilmID]; ok {
			continue
		}
		if _, ok := counted[l]; ok {
			continue
		}
		counted[l] = struct{}{}
		scores[l.FilmID]++
	}

	candidates := make([]Candidate, 0, len(scores))
	for filmID, score := range scores {
		candidates = append(candidates, Candidate{FilmID: filmID, Score: score})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].FilmID < candidates[j].FilmID
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

// CandidateIDs 取出候选电影 ID，保持顺序
func CandidateIDs(candidates []Candidate) []int64 {
	ids := make([]int64, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.FilmID)
	}
	return ids
}

// SortByPopularity 按喜欢数降序、电影 ID 升序排列，counts 中缺失的电影计为 0
func SortByPopularity(filmIDs []int64, counts map[int64]int64) []int64 {
	sorted := make([]int64, len(filmIDs))
	copy(sorted, filmIDs)
	sort.Slice(sorted, func(i, j int) bool {
		ci, cj := counts[sorted[i]], counts[sorted[j]]
		if ci != cj {
			return ci > cj
		}
		return sorted[i] < sorted[j]
	})
	return sorted
}
