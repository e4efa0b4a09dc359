package handler

import (
	"filmorate-go/internal/api/dto"
	"filmorate-go/internal/model"
)

func toUserInfo(u *model.User) dto.UserInfo {
	info := dto.UserInfo{
		ID:    u.ID,
		Email: u.Email,
		Login: u.Login,
		Name:  u.Name,
	}
	if u.Birthday != nil {
		d := dto.NewDate(*u.Birthday)
		info.Birthday = &d
	}
	return info
}

func toUserInfos(users []model.User) []dto.UserInfo {
	infos := make([]dto.UserInfo, 0, len(users))
	for i := range users {
		infos = append(infos, toUserInfo(&users[i]))
	}
	return infos
}

func toFilmInfo(f *model.Film) dto.FilmInfo {
	info := dto.FilmInfo{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		ReleaseDate: dto.NewDate(f.ReleaseDate),
		Duration:    f.Duration,
		Mpa:         dto.NamedInfo{ID: f.Mpa.ID, Name: f.Mpa.Name},
		Genres:      make([]dto.NamedInfo, 0, len(f.Genres)),
		Directors:   make([]dto.NamedInfo, 0, len(f.Directors)),
		PosterURL:   f.PosterURL,
	}
	for _, g := range f.Genres {
		info.Genres = append(info.Genres, dto.NamedInfo{ID: g.ID, Name: g.Name})
	}
	for _, d := range f.Directors {
		info.Directors = append(info.Directors, dto.NamedInfo{ID: d.ID, Name: d.Name})
	}
	return info
}

func toFilmInfos(films []model.Film) []dto.FilmInfo {
	infos := make([]dto.FilmInfo, 0, len(films))
	for i := range films {
		infos = append(infos, toFilmInfo(&films[i]))
	}
	return infos
}

func toReviewInfo(r *model.Review) dto.ReviewInfo {
	return dto.ReviewInfo{
		ReviewID:   r.ID,
		Content:    r.Content,
		IsPositive: r.IsPositive,
		UserID:     r.UserID,
		FilmID:     r.FilmID,
		Useful:     r.Useful,
	}
}

func toReviewInfos(reviews []model.Review) []dto.ReviewInfo {
	infos := make([]dto.ReviewInfo, 0, len(reviews))
	for i := range reviews {
		infos = append(infos, toReviewInfo(&reviews[i]))
	}
	return infos
}

func toEventInfos(events []model.Event) []dto.EventInfo {
	infos := make([]dto.EventInfo, 0, len(events))
	for _, e := range events {
		infos = append(infos, dto.EventInfo{
			EventID:   e.ID,
			Timestamp: e.Timestamp,
			UserID:    e.UserID,
			EventType: string(e.EventType),
			Operation: string(e.Operation),
			EntityID:  e.EntityID,
		})
	}
	return infos
}

func toGenreInfos(genres []model.Genre) []dto.NamedInfo {
	infos := make([]dto.NamedInfo, 0, len(genres))
	for _, g := range genres {
		infos = append(infos, dto.NamedInfo{ID: g.ID, Name: g.Name})
	}
	return infos
}

func toMpaInfos(ratings []model.Mpa) []dto.NamedInfo {
	infos := make([]dto.NamedInfo, 0, len(ratings))
	for _, m := range ratings {
		infos = append(infos, dto.NamedInfo{ID: m.ID, Name: m.Name})
	}
	return infos
}

func toDirectorInfos(directors []model.Director) []dto.NamedInfo {
	infos := make([]dto.NamedInfo, 0, len(directors))
	for _, d := range directors {
		infos = append(infos, dto.NamedInfo{ID: d.ID, Name: d.Name})
	}
	return infos
}
