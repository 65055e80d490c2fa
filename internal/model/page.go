package model

import "time"

// IndexPage is the data rendered on the site's landing page.
type IndexPage struct {
	Title       string    `json:"title"`
	AppName     string    `json:"app_name"`
	Version     string    `json:"version"`
	Environment string    `json:"environment"`
	RenderedAt  time.Time `json:"rendered_at"`
}
