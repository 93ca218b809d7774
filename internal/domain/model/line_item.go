package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// 数量または価格がマイナス
var ErrInvalidItem = errors.New("invalid item")

// カートの明細（同名の明細が複数あってもよい）
type LineItem struct {
	Name     string          `json:"name"`
	Quantity int64           `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

func NewLineItem(name string, quantity int64, price string) LineItem {
	return LineItem{Name: name, Quantity: quantity, Price: decimal.RequireFromString(price)}
}

// 小計 = 数量 × 単価
func (i LineItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(i.Quantity))
}

// decimalは == で比較できないので明細の比較はこちら
func (i LineItem) Equal(o LineItem) bool {
	return i.Name == o.Name && i.Quantity == o.Quantity && i.Price.Equal(o.Price)
}

// 厳密に追加したいときだけ使う
func (i LineItem) Validate() error {
	if i.Quantity < 0 {
		return fmt.Errorf("%w: quantity %d", ErrInvalidItem, i.Quantity)
	}
	if i.Price.IsNegative() {
		return fmt.Errorf("%w: price %s", ErrInvalidItem, i.Price.String())
	}
	return nil
}
