package api

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/kasagi/gomical/pkg/kit"
	"github.com/kasagi/gomical/pkg/locale"
	"github.com/kasagi/gomical/pkg/schedule"
)

// RegisterMCPTools registers the waste-guide MCP tools on the server.
func RegisterMCPTools(srv *server.MCPServer, svc *Service) {
	registerSearchItem(srv, svc)
	registerListAreas(srv, svc)
	registerCollectionOn(srv, svc)
	registerNextCollection(srv, svc)
}

func registerListAreas(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool("list_areas",
		mcp.WithDescription("List the collection areas with their ids and wards. Area ids are the handle for the collection tools."),
	)

	kit.RegisterMCPTool(srv, tool, listAreasEndpoint(svc), func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		return &kit.MCPDecodeResult{Request: nil}, nil
	})
}

func registerSearchItem(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool("search_item",
		mcp.WithDescription("Look up how to dispose of an item. Fuzzy, multilingual (ja/en/zh/ko): returns ranked disposal instructions, with did-you-mean suggestions when nothing matches."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Item to search for (any supported language)")),
		mcp.WithString("locale", mcp.Description("Locale code: ja, en, zh, or ko (default ja)")),
	)

	kit.RegisterMCPTool(srv, tool, searchEndpoint(svc), func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		args := req.GetArguments()
		query, _ := args["query"].(string)
		loc, _ := args["locale"].(string)
		return &kit.MCPDecodeResult{Request: &searchReq{
			Query:  query,
			Locale: locale.Parse(loc),
		}}, nil
	})
}

func registerCollectionOn(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool("collection_on",
		mcp.WithDescription("What is collected in an area on a given date. Exception days (holidays, year-end) return no collection."),
		mcp.WithString("area", mcp.Required(), mcp.Description("Area id (see the areas list)")),
		mcp.WithString("date", mcp.Required(), mcp.Description("Calendar date, YYYY-MM-DD")),
		mcp.WithString("locale", mcp.Description("Locale code: ja, en, zh, or ko (default ja)")),
	)

	kit.RegisterMCPTool(srv, tool, collectionOnEndpoint(svc), func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		args := req.GetArguments()
		area, _ := args["area"].(string)
		dateStr, _ := args["date"].(string)
		d, err := schedule.ParseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("date: %w", err)
		}
		loc, _ := args["locale"].(string)
		return &kit.MCPDecodeResult{Request: &collectionReq{
			AreaID: area,
			Date:   d,
			Locale: locale.Parse(loc),
		}}, nil
	})
}

func registerNextCollection(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool("next_collection",
		mcp.WithDescription("The next collection date for an area within the lookahead horizon, with the categories collected."),
		mcp.WithString("area", mcp.Required(), mcp.Description("Area id (see the areas list)")),
		mcp.WithString("locale", mcp.Description("Locale code: ja, en, zh, or ko (default ja)")),
	)

	kit.RegisterMCPTool(srv, tool, collectionNextEndpoint(svc), func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		args := req.GetArguments()
		area, _ := args["area"].(string)
		loc, _ := args["locale"].(string)
		return &kit.MCPDecodeResult{
			Request: &collectionReq{AreaID: area, Locale: locale.Parse(loc)},
			EnrichCtx: func(ctx context.Context) context.Context {
				return kit.WithLocale(ctx, loc)
			},
		}, nil
	})
}
