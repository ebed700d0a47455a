package letterboxd

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/hszk-dev/reelwatch/internal/domain/model"
)

// WatchlistPage is the parsed form of one watchlist page.
type WatchlistPage struct {
	Movies []model.MovieItem
	// PageCount is the number of pagination markers on the page. Only page 1
	// carries meaningful markers; it is not re-evaluated on later pages.
	PageCount int
}

// ParseWatchlistPage extracts movie grid entries and the pagination marker
// count from watchlist page HTML. Grid entries missing the film id
// attribute are skipped.
func ParseWatchlistPage(html []byte) (*WatchlistPage, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse watchlist html: %w", err)
	}

	page := &WatchlistPage{}
	doc.Find("li.griditem").Each(func(_ int, s *goquery.Selection) {
		div := s.Find("div").First()
		id, ok := div.Attr("data-film-id")
		if !ok || id == "" {
			return
		}
		name, _ := div.Attr("data-item-full-display-name")
		slug, _ := div.Attr("data-item-slug")

		page.Movies = append(page.Movies, model.MovieItem{
			ID:               id,
			Name:             name,
			Slug:             slug,
			StreamingOptions: []model.StreamingOption{},
		})
	})

	page.PageCount = doc.Find("li.paginate-page").Length()
	return page, nil
}
