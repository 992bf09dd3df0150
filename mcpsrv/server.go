package mcpsrv

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/qyinm/shoptui/controller"
	"github.com/qyinm/shoptui/mcpsrv/dto"
	"github.com/qyinm/shoptui/types"
)

type productSelectArgs struct {
	Index *int   `json:"index,omitempty" jsonschema:"Catalog index of the product (0-based)"`
	Name  string `json:"name,omitempty" jsonschema:"Product name (case-insensitive), used when index is absent"`
}

type layoutSetArgs struct {
	Mode string `json:"mode" jsonschema:"Layout mode: wide or narrow"`
}

type catalogSearchArgs struct {
	Query string `json:"query" jsonschema:"Search query"`
	Limit int    `json:"limit,omitempty" jsonschema:"Optional maximum number of matches"`
}

type catalogListOutput struct {
	Total int           `json:"total"`
	Items []dto.Product `json:"items"`
}

type stateOutput struct {
	State dto.State `json:"state"`
}

type catalogSearchOutput struct {
	Query string          `json:"query"`
	Total int             `json:"total"`
	Items []dto.SearchHit `json:"items"`
}

type ServerOptions struct {
	EnableSearch bool
	EnableAdmin  bool
	// APIKey gates admin tools on HTTP, where WrapHandler checks it.
	APIKey string
	// Stdio marks a transport without request authentication. Admin tools
	// then need StdioAdmin; an API key alone is not enough.
	Stdio      bool
	StdioAdmin bool
}

func (o *ServerOptions) adminEnabled() bool {
	if !o.EnableAdmin {
		return false
	}
	if o.Stdio {
		return o.StdioAdmin
	}
	return strings.TrimSpace(o.APIKey) != ""
}

func NewServer(session *Session, version string, opts *ServerOptions) *mcp.Server {
	if strings.TrimSpace(version) == "" {
		version = "dev"
	}
	if opts == nil {
		opts = &ServerOptions{}
	}

	server := mcp.NewServer(&mcp.Implementation{Name: "shoptui", Version: version}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "catalog_list",
		Description: "List the products in the shopping catalog.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, catalogListOutput, error) {
		return catalogListHandler(ctx, req, session)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "product_select",
		Description: "Select a product by index or name. In the narrow layout this opens the detail screen.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args productSelectArgs) (*mcp.CallToolResult, stateOutput, error) {
		return productSelectHandler(ctx, req, args, session)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "navigate_back",
		Description: "Return from the detail screen to the list. The selection is kept.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, stateOutput, error) {
		return navigateBackHandler(ctx, req, session)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "layout_set",
		Description: "Switch the session between the wide (two-pane) and narrow (navigated) layouts.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args layoutSetArgs) (*mcp.CallToolResult, stateOutput, error) {
		return layoutSetHandler(ctx, req, args, session)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "state_get",
		Description: "Get the current selection, screen and layout.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, stateOutput, error) {
		return stateGetHandler(ctx, req, session)
	})

	if opts.EnableSearch {
		mcp.AddTool(server, &mcp.Tool{
			Name:        "catalog_search",
			Description: "Search catalog products by name or description, tolerating typos.",
		}, func(ctx context.Context, req *mcp.CallToolRequest, args catalogSearchArgs) (*mcp.CallToolResult, catalogSearchOutput, error) {
			return catalogSearchHandler(ctx, req, args, session)
		})
	}

	if opts.adminEnabled() {
		mcp.AddTool(server, &mcp.Tool{
			Name:        "session_reset",
			Description: "Start a fresh session, clearing the selection (admin).",
		}, func(ctx context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, stateOutput, error) {
			return sessionResetHandler(ctx, req, session)
		})
	}

	return server
}

func catalogListHandler(_ context.Context, _ *mcp.CallToolRequest, session *Session) (*mcp.CallToolResult, catalogListOutput, error) {
	items := dto.FromCatalog(session.Catalog())
	return nil, catalogListOutput{Total: len(items), Items: items}, nil
}

func productSelectHandler(_ context.Context, _ *mcp.CallToolRequest, args productSelectArgs, session *Session) (*mcp.CallToolResult, stateOutput, error) {
	cat := session.Catalog()

	var product types.Product
	switch {
	case args.Index != nil:
		i := *args.Index
		if i < 0 || i >= cat.Len() {
			return errorToolResult(fmt.Sprintf("index %d out of range [0,%d)", i, cat.Len())), stateOutput{}, nil
		}
		product = cat.At(i)
	case strings.TrimSpace(args.Name) != "":
		p, ok := cat.FindByName(args.Name)
		if !ok {
			msg := fmt.Sprintf("no product named %q", args.Name)
			if suggestion, ok := cat.Closest(args.Name); ok {
				msg += fmt.Sprintf("; did you mean %q?", suggestion.Name())
			}
			return errorToolResult(msg), stateOutput{}, nil
		}
		product = p
	default:
		return errorToolResult("index or name is required"), stateOutput{}, nil
	}

	state, id, _ := session.Do(func(c *controller.Controller) error {
		c.SelectProduct(product)
		return nil
	})
	return nil, stateOutput{State: dto.FromState(id, state)}, nil
}

func navigateBackHandler(_ context.Context, _ *mcp.CallToolRequest, session *Session) (*mcp.CallToolResult, stateOutput, error) {
	state, id, err := session.Do(func(c *controller.Controller) error {
		if !c.CanGoBack() {
			return fmt.Errorf("cannot go back from the %s screen", c.Screen())
		}
		c.GoBack()
		return nil
	})
	if err != nil {
		return errorToolResult(err.Error()), stateOutput{}, nil
	}
	return nil, stateOutput{State: dto.FromState(id, state)}, nil
}

func layoutSetHandler(_ context.Context, _ *mcp.CallToolRequest, args layoutSetArgs, session *Session) (*mcp.CallToolResult, stateOutput, error) {
	mode, err := types.ParseLayoutMode(args.Mode)
	if err != nil {
		return errorToolResult(err.Error()), stateOutput{}, nil
	}
	state, id := session.SetLayout(mode)
	return nil, stateOutput{State: dto.FromState(id, state)}, nil
}

func stateGetHandler(_ context.Context, _ *mcp.CallToolRequest, session *Session) (*mcp.CallToolResult, stateOutput, error) {
	state, id, _ := session.Do(nil)
	return nil, stateOutput{State: dto.FromState(id, state)}, nil
}

func catalogSearchHandler(_ context.Context, _ *mcp.CallToolRequest, args catalogSearchArgs, session *Session) (*mcp.CallToolResult, catalogSearchOutput, error) {
	query := strings.TrimSpace(args.Query)
	if query == "" {
		return errorToolResult("query is required"), catalogSearchOutput{}, nil
	}
	limit := args.Limit
	if limit < 0 {
		limit = 0
	}

	hits := dto.FromMatches(session.Catalog().Search(query, limit))
	return nil, catalogSearchOutput{Query: query, Total: len(hits), Items: hits}, nil
}

func sessionResetHandler(_ context.Context, _ *mcp.CallToolRequest, session *Session) (*mcp.CallToolResult, stateOutput, error) {
	state, id := session.Reset()
	return nil, stateOutput{State: dto.FromState(id, state)}, nil
}

func errorToolResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
	}
}
