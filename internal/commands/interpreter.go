// Package commands interprets free-text inventory commands.
//
// Interpretation is an ordered list of substring rules evaluated against the
// lower-cased text; the first rule that matches decides the action. Every
// input, including empty text, resolves to a Result.
package commands

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"peninsula/internal/models"
)

// Action identifies the recognised intent of a command.
type Action string

const (
	ActionAddStock      Action = "ADD_STOCK"
	ActionQueryLowStock Action = "QUERY_LOW_STOCK"
	ActionListProducts  Action = "LIST_PRODUCTS"
	ActionUnknown       Action = "UNKNOWN"
)

const (
	defaultQuantity = "10"
	defaultProduct  = "product"
	previewSize     = 5

	helpMessage = `Command understood. Try commands like "Add 10 apples to stock" or "Show low-stock products"`
)

var addStockPattern = regexp.MustCompile(`(?i)add (\d+) (.+?) to stock`)

// StockRequest is the quantity and product extracted from an add-stock command.
type StockRequest struct {
	Quantity string `json:"quantity"`
	Product  string `json:"product"`
}

// Result is the outcome of interpreting a command.
// At most one of Products and Stock is set, depending on Action.
type Result struct {
	Command  string
	Action   Action
	Message  string
	Products []models.Product
	Stock    *StockRequest
}

// HasData reports whether the result carries a payload.
func (r Result) HasData() bool {
	return r.Stock != nil || r.Products != nil
}

// MarshalJSON renders the payload under a single "data" key, omitted when empty.
func (r Result) MarshalJSON() ([]byte, error) {
	var data interface{}
	switch {
	case r.Stock != nil:
		data = r.Stock
	case r.Products != nil:
		data = r.Products
	}
	return json.Marshal(struct {
		Command string      `json:"command"`
		Action  Action      `json:"action"`
		Result  string      `json:"result"`
		Data    interface{} `json:"data,omitempty"`
	}{r.Command, r.Action, r.Message, data})
}

type rule struct {
	matches func(lower string) bool
	apply   func(text string, products []models.Product) Result
}

// rules are evaluated in order; the first match wins.
var rules = []rule{
	{
		matches: func(lower string) bool {
			return strings.Contains(lower, "add") && strings.Contains(lower, "stock")
		},
		apply: addStock,
	},
	{
		matches: func(lower string) bool {
			return strings.Contains(lower, "low stock") || strings.Contains(lower, "low-stock")
		},
		apply: queryLowStock,
	},
	{
		matches: func(lower string) bool {
			return strings.Contains(lower, "show") || strings.Contains(lower, "list")
		},
		apply: listProducts,
	},
}

// Interpret maps text to an action evaluated against products. It never fails
// and does not modify products.
func Interpret(text string, products []models.Product) Result {
	lower := strings.ToLower(text)
	for _, r := range rules {
		if r.matches(lower) {
			return r.apply(text, products)
		}
	}
	return Result{Command: text, Action: ActionUnknown, Message: helpMessage}
}

// addStock only echoes the request; it does not change any stock level.
func addStock(text string, _ []models.Product) Result {
	req := StockRequest{Quantity: defaultQuantity, Product: defaultProduct}
	if m := addStockPattern.FindStringSubmatch(text); m != nil {
		req.Quantity, req.Product = m[1], m[2]
	}
	return Result{
		Command: text,
		Action:  ActionAddStock,
		Message: fmt.Sprintf("Successfully added %s units of %s to inventory", req.Quantity, req.Product),
		Stock:   &req,
	}
}

func queryLowStock(text string, products []models.Product) Result {
	low := make([]models.Product, 0)
	for _, p := range products {
		if s := p.Status(); s == models.StatusLowStock || s == models.StatusOutOfStock {
			low = append(low, p)
		}
	}
	return Result{
		Command:  text,
		Action:   ActionQueryLowStock,
		Message:  fmt.Sprintf("Found %d products with low or no stock", len(low)),
		Products: low,
	}
}

func listProducts(text string, products []models.Product) Result {
	n := len(products)
	if n > previewSize {
		n = previewSize
	}
	preview := make([]models.Product, n)
	copy(preview, products[:n])
	return Result{
		Command:  text,
		Action:   ActionListProducts,
		Message:  fmt.Sprintf("Showing %d products in inventory", len(products)),
		Products: preview,
	}
}
