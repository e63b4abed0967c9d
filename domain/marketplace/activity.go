package marketplace

import (
	"time"

	"github.com/nfty-labs/marketapi/base/ctx"
	"github.com/nfty-labs/marketapi/domain"
)

type ActivityType string

const (
	ActivityTypeList   ActivityType = "list"
	ActivityTypeCancel ActivityType = "cancel"
	ActivityTypeBuy    ActivityType = "buy"
)

// Activity is the advisory record emitted for external observers after
// each successful mutating operation. The core never reads it back for
// its own decisions.
type Activity struct {
	ActivityId   string         `json:"activityId" bson:"activityId"`
	AssetId      domain.AssetId `json:"assetId" bson:"assetId"`
	Type         ActivityType   `json:"type" bson:"type"`
	Account      domain.Address `json:"account" bson:"account"`
	To           domain.Address `json:"to" bson:"to"`
	Price        string         `json:"price" bson:"price"`
	DisplayPrice string         `json:"displayPrice" bson:"displayPrice"`
	Time         time.Time      `json:"time" bson:"time"`
}

type findActivityOptions struct {
	Offset  *int
	Limit   *int
	AssetId *domain.AssetId
	Account *domain.Address
	Types   []ActivityType
}

type FindActivityOptions func(*findActivityOptions) error

func GetFindActivityOptions(opts ...FindActivityOptions) (*findActivityOptions, error) {
	res := &findActivityOptions{}
	for _, opt := range opts {
		if err := opt(res); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func ActivityWithPagination(offset, limit int) FindActivityOptions {
	return func(opts *findActivityOptions) error {
		opts.Offset = &offset
		opts.Limit = &limit
		return nil
	}
}

func ActivityWithAssetId(assetId domain.AssetId) FindActivityOptions {
	return func(opts *findActivityOptions) error {
		id := assetId.ToLower()
		opts.AssetId = &id
		return nil
	}
}

func ActivityWithAccount(account domain.Address) FindActivityOptions {
	return func(opts *findActivityOptions) error {
		addr := account.ToLower()
		opts.Account = &addr
		return nil
	}
}

func ActivityWithTypes(types ...ActivityType) FindActivityOptions {
	return func(opts *findActivityOptions) error {
		opts.Types = types
		return nil
	}
}

type ActivityRepo interface {
	Insert(c ctx.Ctx, a *Activity) error
	FindAll(c ctx.Ctx, opts ...FindActivityOptions) ([]Activity, error)
	Count(c ctx.Ctx, opts ...FindActivityOptions) (int, error)
}
