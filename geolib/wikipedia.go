package geolib

import "context"

// WikipediaArticle is a georeferenced Wikipedia article.
type WikipediaArticle struct {
	Title        string  `json:"title"`
	Summary      string  `json:"summary"`
	Feature      string  `json:"feature"`
	CountryCode  string  `json:"countryCode"`
	Lang         string  `json:"lang"`
	WikipediaURL string  `json:"wikipediaUrl"`
	ThumbnailImg string  `json:"thumbnailImg"`
	GeoNameID    int     `json:"geoNameId"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	Elevation    float64 `json:"elevation"`
	Rank         int     `json:"rank"`
}

// WikipediaSearchRequest describes a full text search over georeferenced
// Wikipedia articles.
type WikipediaSearchRequest struct {
	Query   string
	Title   string
	Lang    string
	MaxRows int
}

func (r WikipediaSearchRequest) params() *Params {
	params := NewParams()

	if r.Query != "" {
		params.Set("q", r.Query)
	}

	if r.Title != "" {
		params.Set("title", r.Title)
	}

	if r.Lang != "" {
		params.Set("lang", r.Lang)
	}

	if r.MaxRows > 0 {
		params.Set("maxRows", r.MaxRows)
	}

	return params
}

// WikipediaSearch runs a full text search over georeferenced Wikipedia
// articles.
func (c *Client) WikipediaSearch(ctx context.Context, req WikipediaSearchRequest) ([]WikipediaArticle, error) {
	return c.articleList(ctx, "wikipediaSearch", req.params())
}

// WikipediaBoundingBox returns the articles georeferenced inside a bounding
// box.
func (c *Client) WikipediaBoundingBox(ctx context.Context, req BoundsRequest) ([]WikipediaArticle, error) {
	return c.articleList(ctx, "wikipediaBoundingBox", req.params())
}

// FindNearbyWikipedia returns the articles georeferenced closest to a point.
func (c *Client) FindNearbyWikipedia(ctx context.Context, req FindNearbyRequest) ([]WikipediaArticle, error) {
	return c.articleList(ctx, "findNearbyWikipedia", req.params())
}

func (c *Client) articleList(ctx context.Context, endpoint string, params *Params) ([]WikipediaArticle, error) {
	raw, err := c.Invoke(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}

	var articles []WikipediaArticle

	if err := decodeResult(raw, &articles); err != nil {
		return nil, err
	}

	return articles, nil
}
