package listing

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"num_market/internal/domain/entity"
	"num_market/internal/domain/service/numRating"
	"num_market/internal/domain/value"
	"num_market/pkg/logx"
	"num_market/pkg/lox"
)

//go:generate moq -rm -out fetcher_mock.gen.go . Fetcher:FetcherMock
type Fetcher interface {
	Fetch(ctx context.Context, query entity.Query) ([]entity.RawListing, error)
}

// Payloader источник запроса, обычно *query.State.
type Payloader interface {
	Payload(page int, loadMore bool) entity.Query
}

// Request запрос, выданный контроллером и ещё не применённый.
type Request struct {
	Query entity.Query
}

// Append true для продолжения текущего запроса.
func (r Request) Append() bool {
	return r.Query.LoadMore
}

// Result итог одной загрузки: либо строки, либо причина ошибки.
type Result struct {
	Request Request
	Rows    []entity.ListingRow
	Err     error
}

func (r Result) OK() bool {
	return r.Err == nil
}

// Controller ведёт постраничную загрузку списка номеров.
//
// Контроллер не потокобезопасен: все вызовы делает один цикл событий
// отображения. Ответы применяются в порядке прихода, поэтому медленный
// ответ на старый запрос перезапишет более свежий список.
type Controller struct {
	fetcher Fetcher
	source  Payloader
	page    int
	rows    []entity.ListingRow
	loading bool
}

func NewController(fetcher Fetcher, source Payloader) *Controller {
	return &Controller{
		fetcher: fetcher,
		source:  source,
		page:    1,
	}
}

// Search начинает новый запрос с первой страницы. Выполняется всегда, даже
// если предыдущая загрузка ещё не завершилась.
func (c *Controller) Search() Request {
	c.page = 1
	c.loading = true

	return Request{Query: c.source.Payload(c.page, false)}
}

// More запрашивает следующую страницу текущего запроса. Пока идёт загрузка,
// ничего не делает и возвращает false.
func (c *Controller) More() (Request, bool) {
	if c.loading {
		return Request{}, false
	}

	c.page++
	c.loading = true

	return Request{Query: c.source.Payload(c.page, true)}, true
}

// Fetch выполняет сетевой запрос и нормализует строки. Состояние контроллера
// не меняет, поэтому может выполняться вне цикла событий.
func (c *Controller) Fetch(ctx context.Context, req Request) Result {
	start := time.Now()

	raw, err := c.fetcher.Fetch(ctx, req.Query)
	if err != nil {
		return Result{Request: req, Err: fmt.Errorf("fetcher.Fetch: %w", err)}
	}

	logger(ctx).Debug(
		"page fetched",
		slog.Int(logx.FieldPage, req.Query.Page),
		slog.Bool(logx.FieldLoadMore, req.Query.LoadMore),
		slog.Int(logx.FieldRows, len(raw)),
		slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()),
	)

	return Result{Request: req, Rows: NormalizeAll(raw)}
}

// Apply применяет результат загрузки. При ошибке список не меняется, ошибка
// только пишется в лог. Флаг загрузки сбрасывается в любом случае.
func (c *Controller) Apply(ctx context.Context, res Result) {
	defer func() {
		c.loading = false
	}()

	if !res.OK() {
		logger(ctx).Error(
			"failed to fetch numbers",
			slog.Int(logx.FieldPage, res.Request.Query.Page),
			slog.String(logx.FieldParameter, res.Request.Query.Parameter),
			slog.Any(logx.FieldCategories, res.Request.Query.TypeList),
			logx.Error(res.Err),
		)

		return
	}

	if res.Request.Append() {
		c.rows = append(c.rows, res.Rows...)
		return
	}

	c.rows = res.Rows
}

// Refresh синхронный вариант Search + Fetch + Apply.
func (c *Controller) Refresh(ctx context.Context) Result {
	res := c.Fetch(ctx, c.Search())
	c.Apply(ctx, res)

	return res
}

// LoadMore синхронный вариант More + Fetch + Apply.
func (c *Controller) LoadMore(ctx context.Context) (Result, bool) {
	req, ok := c.More()
	if !ok {
		return Result{}, false
	}

	res := c.Fetch(ctx, req)
	c.Apply(ctx, res)

	return res, true
}

func (c *Controller) Page() int {
	return c.page
}

func (c *Controller) Loading() bool {
	return c.loading
}

// Rows возвращает копию текущего списка.
func (c *Controller) Rows() []entity.ListingRow {
	rows := make([]entity.ListingRow, len(c.rows))
	copy(rows, c.rows)

	return rows
}

func (c *Controller) Len() int {
	return len(c.rows)
}

// NormalizeAll нормализует страницу строк.
func NormalizeAll(raw []entity.RawListing) []entity.ListingRow {
	return lox.Map(raw, Normalize)
}

// Normalize приводит строку сервиса к виду для отображения.
func Normalize(raw entity.RawListing) entity.ListingRow {
	number := raw.BillID.String()

	return entity.ListingRow{
		Number:         number,
		Deposit:        Floor(raw.Deposit, entity.DepositFloor),
		MonthlyFee:     Floor(raw.MonthlyFee, entity.MonthlyFeeFloor),
		ContractPeriod: Floor(raw.ContractPeriod, entity.ContractPeriodFloor),
		IsPremium:      raw.Premium.String() == "1",
		Rating:         numRating.CalculateValue(number),
	}
}

// Floor возвращает floor, если значение поля не больше floor (в том числе
// когда поле отсутствует или не разбирается), иначе исходный текст поля.
func Floor(field value.RawField, floor int64) string {
	if field.Int() <= floor {
		return strconv.FormatInt(floor, 10)
	}

	return field.String()
}
