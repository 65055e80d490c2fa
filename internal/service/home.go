package service

import (
	"context"
	"time"

	"homesite/internal/model"
)

// HomeService produces the content of the landing page.
type HomeService interface {
	// Index returns the data for the index page.
	Index(ctx context.Context) (*model.IndexPage, error)
}

// HomeInfo identifies the running application on the landing page.
type HomeInfo struct {
	AppName     string
	Version     string
	Environment string
}

type homeService struct {
	info HomeInfo
	loc  *time.Location
	now  func() time.Time
}

// NewHomeService constructs a HomeService. Render times are reported in loc.
func NewHomeService(info HomeInfo, loc *time.Location) HomeService {
	if loc == nil {
		loc = time.UTC
	}
	return &homeService{info: info, loc: loc, now: time.Now}
}

func (s *homeService) Index(ctx context.Context) (*model.IndexPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &model.IndexPage{
		Title:       s.info.AppName,
		AppName:     s.info.AppName,
		Version:     s.info.Version,
		Environment: s.info.Environment,
		RenderedAt:  s.now().In(s.loc),
	}, nil
}
