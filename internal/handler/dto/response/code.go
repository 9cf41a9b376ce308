package response

import (
	"time"

	"code-lookup/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

// CheckResponse keeps message null when the code is unknown.
type CheckResponse struct {
	Success bool    `json:"success"`
	Message *string `json:"message"`
}

type RateLimitedResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	RetryAfter int    `json:"retry_after"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type CodeResponse struct {
	ID        int64     `json:"id"`
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func FromCodeViews(views []queries.CodeView) ([]CodeResponse, error) {
	res := make([]CodeResponse, 0, len(views))
	if len(views) == 0 {
		return res, nil
	}
	if err := copier.Copy(&res, &views); err != nil {
		return nil, err
	}
	return res, nil
}
