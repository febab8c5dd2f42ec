package repository

import (
	"time"

	"github.com/demarket/goapi/base/ctx"
	"github.com/demarket/goapi/domain"
	hcdomain "github.com/demarket/goapi/domain/healthcheck"
)

type impl struct {
	node domain.NodeClient
}

// New creates new healthCheckRepo object representation of HealthCheckRepo interface
func New(node domain.NodeClient) hcdomain.HealthCheckRepo {
	return &impl{
		node: node,
	}
}

func (im *impl) PingNode(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, 2*time.Second)
	defer cancel()
	if _, err := im.node.BlockNumber(ctx); err != nil {
		context.WithField("err", err).Error("ping node error")
		return err
	}
	return nil
}
