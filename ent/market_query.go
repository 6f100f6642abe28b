// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/veraz-project/veraz/ent/claim"
	"github.com/veraz-project/veraz/ent/market"
	"github.com/veraz-project/veraz/ent/predicate"
	"github.com/veraz-project/veraz/ent/predictionfactor"
	"github.com/veraz-project/veraz/ent/trade"
)

// MarketQuery is the builder for querying Market entities.
type MarketQuery struct {
	config
	ctx                   *QueryContext
	order                 []market.OrderOption
	inters                []Interceptor
	predicates            []predicate.Market
	withClaim             *ClaimQuery
	withTrades            *TradeQuery
	withPredictionFactors *PredictionFactorQuery
	modifiers             []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the MarketQuery builder.
func (_q *MarketQuery) Where(ps ...predicate.Market) *MarketQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *MarketQuery) Limit(limit int) *MarketQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *MarketQuery) Offset(offset int) *MarketQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *MarketQuery) Unique(unique bool) *MarketQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *MarketQuery) Order(o ...market.OrderOption) *MarketQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryClaim chains the current query on the "claim" edge.
func (_q *MarketQuery) QueryClaim() *ClaimQuery {
	query := (&ClaimClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(market.Table, market.FieldID, selector),
			sqlgraph.To(claim.Table, claim.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, market.ClaimTable, market.ClaimColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTrades chains the current query on the "trades" edge.
func (_q *MarketQuery) QueryTrades() *TradeQuery {
	query := (&TradeClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(market.Table, market.FieldID, selector),
			sqlgraph.To(trade.Table, trade.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, market.TradesTable, market.TradesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryPredictionFactors chains the current query on the "prediction_factors" edge.
func (_q *MarketQuery) QueryPredictionFactors() *PredictionFactorQuery {
	query := (&PredictionFactorClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(market.Table, market.FieldID, selector),
			sqlgraph.To(predictionfactor.Table, predictionfactor.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, market.PredictionFactorsTable, market.PredictionFactorsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Market entity from the query.
// Returns a *NotFoundError when no Market was found.
func (_q *MarketQuery) First(ctx context.Context) (*Market, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{market.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *MarketQuery) FirstX(ctx context.Context) *Market {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Market ID from the query.
// Returns a *NotFoundError when no Market ID was found.
func (_q *MarketQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{market.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *MarketQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Market entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Market entity is found.
// Returns a *NotFoundError when no Market entities are found.
func (_q *MarketQuery) Only(ctx context.Context) (*Market, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{market.Label}
	default:
		return nil, &NotSingularError{market.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *MarketQuery) OnlyX(ctx context.Context) *Market {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Market ID in the query.
// Returns a *NotSingularError when more than one Market ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *MarketQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{market.Label}
	default:
		err = &NotSingularError{market.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *MarketQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Markets.
func (_q *MarketQuery) All(ctx context.Context) ([]*Market, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Market, *MarketQuery]()
	return withInterceptors[[]*Market](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *MarketQuery) AllX(ctx context.Context) []*Market {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Market IDs.
func (_q *MarketQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(market.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *MarketQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *MarketQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*MarketQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *MarketQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *MarketQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *MarketQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the MarketQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *MarketQuery) Clone() *MarketQuery {
	if _q == nil {
		return nil
	}
	return &MarketQuery{
		config:                _q.config,
		ctx:                   _q.ctx.Clone(),
		order:                 append([]market.OrderOption{}, _q.order...),
		inters:                append([]Interceptor{}, _q.inters...),
		predicates:            append([]predicate.Market{}, _q.predicates...),
		withClaim:             _q.withClaim.Clone(),
		withTrades:            _q.withTrades.Clone(),
		withPredictionFactors: _q.withPredictionFactors.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithClaim tells the query-builder to eager-load the nodes that are connected to
// the "claim" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *MarketQuery) WithClaim(opts ...func(*ClaimQuery)) *MarketQuery {
	query := (&ClaimClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withClaim = query
	return _q
}

// WithTrades tells the query-builder to eager-load the nodes that are connected to
// the "trades" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *MarketQuery) WithTrades(opts ...func(*TradeQuery)) *MarketQuery {
	query := (&TradeClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTrades = query
	return _q
}

// WithPredictionFactors tells the query-builder to eager-load the nodes that are connected to
// the "prediction_factors" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *MarketQuery) WithPredictionFactors(opts ...func(*PredictionFactorQuery)) *MarketQuery {
	query := (&PredictionFactorClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPredictionFactors = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Slug string `json:"slug,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Market.Query().
//		GroupBy(market.FieldSlug).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *MarketQuery) GroupBy(field string, fields ...string) *MarketGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &MarketGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = market.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Slug string `json:"slug,omitempty"`
//	}
//
//	client.Market.Query().
//		Select(market.FieldSlug).
//		Scan(ctx, &v)
func (_q *MarketQuery) Select(fields ...string) *MarketSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &MarketSelect{MarketQuery: _q}
	sbuild.label = market.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a MarketSelect configured with the given aggregations.
func (_q *MarketQuery) Aggregate(fns ...AggregateFunc) *MarketSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *MarketQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !market.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *MarketQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Market, error) {
	var (
		nodes       = []*Market{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withClaim != nil,
			_q.withTrades != nil,
			_q.withPredictionFactors != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Market).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Market{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withClaim; query != nil {
		if err := _q.loadClaim(ctx, query, nodes, nil,
			func(n *Market, e *Claim) { n.Edges.Claim = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withTrades; query != nil {
		if err := _q.loadTrades(ctx, query, nodes,
			func(n *Market) { n.Edges.Trades = []*Trade{} },
			func(n *Market, e *Trade) { n.Edges.Trades = append(n.Edges.Trades, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withPredictionFactors; query != nil {
		if err := _q.loadPredictionFactors(ctx, query, nodes,
			func(n *Market) { n.Edges.PredictionFactors = []*PredictionFactor{} },
			func(n *Market, e *PredictionFactor) { n.Edges.PredictionFactors = append(n.Edges.PredictionFactors, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *MarketQuery) loadClaim(ctx context.Context, query *ClaimQuery, nodes []*Market, init func(*Market), assign func(*Market, *Claim)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*Market)
	for i := range nodes {
		if nodes[i].ClaimID == nil {
			continue
		}
		fk := *nodes[i].ClaimID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(claim.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "claim_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *MarketQuery) loadTrades(ctx context.Context, query *TradeQuery, nodes []*Market, init func(*Market), assign func(*Market, *Trade)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Market)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(trade.FieldMarketID)
	}
	query.Where(predicate.Trade(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(market.TradesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.MarketID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "market_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *MarketQuery) loadPredictionFactors(ctx context.Context, query *PredictionFactorQuery, nodes []*Market, init func(*Market), assign func(*Market, *PredictionFactor)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Market)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(predictionfactor.FieldMarketID)
	}
	query.Where(predicate.PredictionFactor(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(market.PredictionFactorsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.MarketID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "market_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *MarketQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *MarketQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(market.Table, market.Columns, sqlgraph.NewFieldSpec(market.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, market.FieldID)
		for i := range fields {
			if fields[i] != market.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withClaim != nil {
			_spec.Node.AddColumnOnce(market.FieldClaimID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *MarketQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(market.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = market.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *MarketQuery) ForUpdate(opts ...sql.LockOption) *MarketQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *MarketQuery) ForShare(opts ...sql.LockOption) *MarketQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// MarketGroupBy is the group-by builder for Market entities.
type MarketGroupBy struct {
	selector
	build *MarketQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *MarketGroupBy) Aggregate(fns ...AggregateFunc) *MarketGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *MarketGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MarketQuery, *MarketGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *MarketGroupBy) sqlScan(ctx context.Context, root *MarketQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// MarketSelect is the builder for selecting fields of Market entities.
type MarketSelect struct {
	*MarketQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *MarketSelect) Aggregate(fns ...AggregateFunc) *MarketSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *MarketSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MarketQuery, *MarketSelect](ctx, _s.MarketQuery, _s, _s.inters, v)
}

func (_s *MarketSelect) sqlScan(ctx context.Context, root *MarketQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
