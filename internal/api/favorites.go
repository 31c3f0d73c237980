package api

import (
	"context"
	"net/url"

	fhttp "github.com/bogdanfinn/fhttp"
	"github.com/jimezsa/kazi/internal/models"
)

func (c *Client) ListFavorites(ctx context.Context, userID string) ([]models.Favorite, error) {
	path := "/favorites?" + url.Values{"userId": {userID}}.Encode()
	var wire []wireFavorite
	if err := c.do(ctx, "list favorites", fhttp.MethodGet, path, nil, &wire); err != nil {
		return nil, err
	}
	favorites := make([]models.Favorite, 0, len(wire))
	for _, w := range wire {
		if w.JobID == "" {
			continue
		}
		favorites = append(favorites, models.Favorite{JobID: string(w.JobID), UserID: string(w.UserID)})
	}
	return favorites, nil
}

func (c *Client) CreateFavorite(ctx context.Context, jobID, userID string) (models.Favorite, error) {
	body := models.Favorite{JobID: jobID, UserID: userID}
	if err := c.do(ctx, "add favorite", fhttp.MethodPost, "/favorites", body, nil); err != nil {
		return models.Favorite{}, err
	}
	return body, nil
}

func (c *Client) DeleteFavorite(ctx context.Context, jobID, userID string) error {
	path := "/favorites/" + url.PathEscape(jobID) + "?" + url.Values{"userId": {userID}}.Encode()
	return c.do(ctx, "remove favorite", fhttp.MethodDelete, path, nil, nil)
}
