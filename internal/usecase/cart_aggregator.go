package usecase

import (
	"sync"
	"time"

	"cartlab/internal/domain/model"
	"cartlab/internal/platform/async"
	"cartlab/internal/platform/logger"

	"github.com/shopspring/decimal"
)

// 追加取得の待ち時間（指定なしの場合）
const DefaultFetchDelay = 1500 * time.Millisecond

// 区分ごとの明細
type BandGroup struct {
	Band  model.QuantityBand
	Items []model.LineItem
}

// 区分の表示順に並ぶ。明細0件の区分は含まない。
type BandGroups []BandGroup

func (g BandGroups) Get(band model.QuantityBand) ([]model.LineItem, bool) {
	for _, bg := range g {
		if bg.Band == band {
			return bg.Items, true
		}
	}
	return nil, false
}

// CartAggregatorはメモリ上のカートに対する集計。
// HTTPから共有されるので明細はmuで守る。
type CartAggregator struct {
	mu    sync.RWMutex
	items []model.LineItem
	log   *logger.Logger
}

func NewCartAggregator(log *logger.Logger, initial ...model.LineItem) *CartAggregator {
	if log == nil {
		log = logger.NewNop()
	}
	items := make([]model.LineItem, len(initial))
	copy(items, initial)

	a := &CartAggregator{items: items, log: log}
	a.log.Debug("cart initialized", "items", len(items))
	return a
}

// 末尾に追加（検証しない）
func (a *CartAggregator) Append(item model.LineItem) {
	a.mu.Lock()
	a.items = append(a.items, item)
	a.mu.Unlock()
}

// 数量・価格がマイナスなら追加しない
func (a *CartAggregator) AppendValidated(item model.LineItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	a.Append(item)
	return nil
}

func (a *CartAggregator) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.items)
}

// コピーを返す
func (a *CartAggregator) Items() []model.LineItem {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]model.LineItem, len(a.items))
	copy(out, a.items)
	return out
}

// Σ 数量×単価。丸めは表示側で行う。
func (a *CartAggregator) TotalValue() decimal.Decimal {
	a.mu.RLock()
	defer a.mu.RUnlock()

	total := decimal.Zero
	for _, it := range a.items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// 単価 > minPrice の明細（元の順序のまま）
func (a *CartAggregator) FilterByMinPrice(minPrice decimal.Decimal) []model.LineItem {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]model.LineItem, 0, len(a.items))
	for _, it := range a.items {
		if it.Price.GreaterThan(minPrice) {
			out = append(out, it)
		}
	}
	return out
}

// 単価が最大の明細。同額なら先に入っていた方。空ならfalse。
func (a *CartAggregator) MostExpensive() (model.LineItem, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if len(a.items) == 0 {
		return model.LineItem{}, false
	}
	best := a.items[0]
	for _, it := range a.items[1:] {
		if it.Price.GreaterThan(best.Price) {
			best = it
		}
	}
	return best, true
}

func (a *CartAggregator) GroupByQuantityBand() BandGroups {
	a.mu.RLock()
	defer a.mu.RUnlock()

	byBand := make(map[model.QuantityBand][]model.LineItem, len(model.QuantityBands))
	for _, it := range a.items {
		b := model.BandForQuantity(it.Quantity)
		byBand[b] = append(byBand[b], it)
	}

	groups := make(BandGroups, 0, len(byBand))
	for _, b := range model.QuantityBands {
		if items, ok := byBand[b]; ok {
			groups = append(groups, BandGroup{Band: b, Items: items})
		}
	}
	return groups
}

// 外部APIからの追加取得を模したもの。
// delay待ってから固定の2件を追加し、その2件でFutureを確定させる。失敗はない。
// 待っている間はロックを持たない。
func (a *CartAggregator) FetchAdditionalItems(delay time.Duration) *async.Future[[]model.LineItem] {
	if delay < 0 {
		delay = 0
	}
	a.log.Info("fetching additional items", "delay_ms", delay.Milliseconds())

	return async.Go(func() []model.LineItem {
		if delay > 0 {
			t := time.NewTimer(delay)
			<-t.C
		}

		fetched := additionalItems()
		a.mu.Lock()
		a.items = append(a.items, fetched...)
		a.mu.Unlock()

		a.log.Info("additional items added", "count", len(fetched))
		return fetched
	})
}

func (a *CartAggregator) FetchAdditionalItemsDefault() *async.Future[[]model.LineItem] {
	return a.FetchAdditionalItems(DefaultFetchDelay)
}

func additionalItems() []model.LineItem {
	return []model.LineItem{
		model.NewLineItem("Power Bank", 2, "35.00"),
		model.NewLineItem("Earbuds", 1, "79.99"),
	}
}
