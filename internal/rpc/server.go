package rpc

import (
	"log/slog"

	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/blogfolio/blogfolio/internal/fetch"
)

func New(logger *slog.Logger, fetcher *fetch.Fetcher) *zenrpc.Server {
	rpcService := NewBlogService(fetcher)
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register("blog", rpcService)
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "blogfolio", nil))

	return rpcServer
}
