package analytics

import (
	"context"
	"encoding/json"
	"net/http"

	"fintwin/internal/domain/entity"
	domainerrors "fintwin/internal/domain/errors"
	"fintwin/internal/domain/service"

	"github.com/pkg/errors"
)

const pathClassifyUser = "/classify_user"

type classifyResponse struct {
	UserClass *entity.UserClass `json:"user_class"`
}

type classifier struct {
	client *Client
}

// NewClassifier creates the classifier client.
func NewClassifier(client *Client) service.Classifier {
	return &classifier{client: client}
}

// Classify posts the summary and reads user_class; a missing or unknown label is malformed.
func (c *classifier) Classify(ctx context.Context, summary service.ClassificationSummary) service.Outcome[entity.UserClass] {
	body, upstreamErr := c.client.call(ctx, service.UpstreamClassifier, http.MethodPost, pathClassifyUser, summary)
	if upstreamErr != nil {
		return service.Failed[entity.UserClass](upstreamErr)
	}

	var resp classifyResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return service.Failed[entity.UserClass](malformed(service.UpstreamClassifier, errors.Wrap(err, "failed to decode classification")))
	}
	if resp.UserClass == nil {
		return service.Failed[entity.UserClass](malformed(service.UpstreamClassifier, errors.New("user_class is missing")))
	}

	return service.Succeeded(*resp.UserClass)
}

func malformed(upstream string, err error) *domainerrors.UpstreamError {
	return domainerrors.NewUpstreamError(upstream, domainerrors.FailureMalformed, err)
}
