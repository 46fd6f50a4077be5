package commands

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"StockKeeper/internal/cli/api"
	"StockKeeper/internal/config"
)

// queryFromArgs собирает query-параметры из аргументов вида key=value.
func queryFromArgs(args []string) (url.Values, error) {
	q := url.Values{}
	for _, a := range args {
		key, value, ok := strings.Cut(a, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("bad filter %q, want key=value", a)
		}
		q.Set(key, value)
	}
	return q, nil
}

type itemsCmd struct{}

func (itemsCmd) Name() string        { return "items" }
func (itemsCmd) Description() string { return "List items with optional filters" }
func (itemsCmd) Usage() string {
	return "items [tags=OL] [name=part] [min_cost=10] [page=2] [page_size=50] ..."
}

func (itemsCmd) Run(cfg *config.Config, args []string) error {
	q, err := queryFromArgs(args)
	if err != nil {
		return err
	}
	u := endpoint(cfg, "/item/")
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}
	resp, body, err := api.GetJSON(u, loadToken())
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("list failed (%d): %s", resp.StatusCode, body)
	}

	var page struct {
		Count   int64             `json:"count"`
		Results []json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(body, &page); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Total: %d\n", page.Count)
	for _, raw := range page.Results {
		fmt.Fprintln(Out, string(raw))
	}
	return nil
}

type itemAddCmd struct{}

func (itemAddCmd) Name() string        { return "item-add" }
func (itemAddCmd) Description() string { return "Create an item from a JSON payload" }
func (itemAddCmd) Usage() string       { return `item-add '{"SKU":"SKU1","name":"Item 1",...}'` }

func (itemAddCmd) Run(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(args[0]), &payload); err != nil {
		return fmt.Errorf("bad JSON payload: %w", err)
	}
	resp, body, err := api.PostJSON(endpoint(cfg, "/item/"), payload, loadToken())
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("create failed (%d): %s", resp.StatusCode, body)
	}
	fmt.Fprintln(Out, string(body))
	return nil
}

type itemEditCmd struct{}

func (itemEditCmd) Name() string        { return "item-edit" }
func (itemEditCmd) Description() string { return "Partially update an item by id" }
func (itemEditCmd) Usage() string       { return `item-edit <id> '{"name":"Renamed"}'` }

func (itemEditCmd) Run(cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return ErrUsage
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(args[1]), &payload); err != nil {
		return fmt.Errorf("bad JSON payload: %w", err)
	}
	payload["id"] = id

	resp, body, err := api.DoJSON(http.MethodPut, endpoint(cfg, "/item/"), payload, loadToken())
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("update failed (%d): %s", resp.StatusCode, body)
	}
	fmt.Fprintln(Out, string(body))
	return nil
}

type itemDelCmd struct{}

func (itemDelCmd) Name() string        { return "item-del" }
func (itemDelCmd) Description() string { return "Delete an item by id" }
func (itemDelCmd) Usage() string       { return "item-del <id>" }

func (itemDelCmd) Run(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return ErrUsage
	}
	resp, body, err := api.DoJSON(http.MethodDelete, endpoint(cfg, "/item/"), map[string]any{"id": id}, loadToken())
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("delete failed (%d): %s", resp.StatusCode, body)
	}
	fmt.Fprintf(Out, "Deleted item %d\n", id)
	return nil
}

func init() {
	Register(itemsCmd{})
	Register(itemAddCmd{})
	Register(itemEditCmd{})
	Register(itemDelCmd{})
}
