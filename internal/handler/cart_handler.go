package handler

import (
	"net/http"
	"strconv"
	"time"

	"cartlab/internal/domain/model"
	"cartlab/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// /cartのHTTP（プロセス内のカート1つ）
type CartHandler struct {
	cart *usecase.CartAggregator
}

// DI
func NewCartHandler(cart *usecase.CartAggregator) *CartHandler {
	return &CartHandler{cart: cart}
}

type AddLineItemRequest struct {
	Name     string          `json:"name"`
	Quantity int64           `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// 価格は小数2桁の文字列で返す
type LineItemResponse struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
	Price    string `json:"price"`
}

type CartResponse struct {
	Items []LineItemResponse `json:"items"`
	Total string             `json:"total"`
}

type BandGroupResponse struct {
	Band  string             `json:"band"`
	Label string             `json:"label"`
	Items []LineItemResponse `json:"items"`
}

type FetchResponse struct {
	Items []LineItemResponse `json:"items"`
	Total string             `json:"total"`
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/cart")

	g.GET("", h.getCart)
	g.POST("/items", h.addItem)
	g.GET("/filter", h.filter)
	g.GET("/most-expensive", h.mostExpensive)
	g.GET("/groups", h.groups)
	g.POST("/fetch", h.fetch)
}

func (h *CartHandler) getCart(c echo.Context) error {
	return c.JSON(http.StatusOK, CartResponse{
		Items: toLineItemResponses(h.cart.Items()),
		Total: h.cart.TotalValue().StringFixed(2),
	})
}

func (h *CartHandler) addItem(c echo.Context) error {
	var req AddLineItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	item := model.LineItem{Name: req.Name, Quantity: req.Quantity, Price: req.Price}
	if err := h.cart.AppendValidated(item); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid item"})
	}

	return c.JSON(http.StatusOK, CartResponse{
		Items: toLineItemResponses(h.cart.Items()),
		Total: h.cart.TotalValue().StringFixed(2),
	})
}

func (h *CartHandler) filter(c echo.Context) error {
	minPrice := decimal.Zero
	if v := c.QueryParam("min_price"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid min_price"})
		}
		minPrice = d
	}

	return c.JSON(http.StatusOK, toLineItemResponses(h.cart.FilterByMinPrice(minPrice)))
}

func (h *CartHandler) mostExpensive(c echo.Context) error {
	item, ok := h.cart.MostExpensive()
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "cart is empty"})
	}
	return c.JSON(http.StatusOK, toLineItemResponse(item))
}

func (h *CartHandler) groups(c echo.Context) error {
	groups := h.cart.GroupByQuantityBand()

	out := make([]BandGroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, BandGroupResponse{
			Band:  g.Band.String(),
			Label: g.Band.Label(),
			Items: toLineItemResponses(g.Items),
		})
	}
	return c.JSON(http.StatusOK, out)
}

// 待ち時間は delay_ms（省略時1500ms）
func (h *CartHandler) fetch(c echo.Context) error {
	delay := usecase.DefaultFetchDelay
	if v := c.QueryParam("delay_ms"); v != "" {
		ms, err := strconv.ParseInt(v, 10, 64)
		if err != nil || ms < 0 {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid delay_ms"})
		}
		delay = time.Duration(ms) * time.Millisecond
	}

	// リクエストが先に切れても追加自体は行われる
	fetched, err := h.cart.FetchAdditionalItems(delay).Wait(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "fetch still pending"})
	}

	return c.JSON(http.StatusOK, FetchResponse{
		Items: toLineItemResponses(fetched),
		Total: h.cart.TotalValue().StringFixed(2),
	})
}

func toLineItemResponse(it model.LineItem) LineItemResponse {
	return LineItemResponse{Name: it.Name, Quantity: it.Quantity, Price: it.Price.StringFixed(2)}
}

func toLineItemResponses(items []model.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toLineItemResponse(it))
	}
	return out
}
