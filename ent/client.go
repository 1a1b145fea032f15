// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/recruitflow/recruitflow/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/recruitflow/recruitflow/ent/application"
	"github.com/recruitflow/recruitflow/ent/call"
	"github.com/recruitflow/recruitflow/ent/candidate"
	"github.com/recruitflow/recruitflow/ent/candidatereply"
	"github.com/recruitflow/recruitflow/ent/cvupload"
	"github.com/recruitflow/recruitflow/ent/evaluation"
	"github.com/recruitflow/recruitflow/ent/message"
	"github.com/recruitflow/recruitflow/ent/messagetemplate"
	"github.com/recruitflow/recruitflow/ent/position"
	"github.com/recruitflow/recruitflow/ent/setting"
	"github.com/recruitflow/recruitflow/ent/statuschange"
	"github.com/recruitflow/recruitflow/ent/unmatchedinbound"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Application is the client for interacting with the Application builders.
	Application *ApplicationClient
	// CVUpload is the client for interacting with the CVUpload builders.
	CVUpload *CVUploadClient
	// Call is the client for interacting with the Call builders.
	Call *CallClient
	// Candidate is the client for interacting with the Candidate builders.
	Candidate *CandidateClient
	// CandidateReply is the client for interacting with the CandidateReply builders.
	CandidateReply *CandidateReplyClient
	// Evaluation is the client for interacting with the Evaluation builders.
	Evaluation *EvaluationClient
	// Message is the client for interacting with the Message builders.
	Message *MessageClient
	// MessageTemplate is the client for interacting with the MessageTemplate builders.
	MessageTemplate *MessageTemplateClient
	// Position is the client for interacting with the Position builders.
	Position *PositionClient
	// Setting is the client for interacting with the Setting builders.
	Setting *SettingClient
	// StatusChange is the client for interacting with the StatusChange builders.
	StatusChange *StatusChangeClient
	// UnmatchedInbound is the client for interacting with the UnmatchedInbound builders.
	UnmatchedInbound *UnmatchedInboundClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Application = NewApplicationClient(c.config)
	c.CVUpload = NewCVUploadClient(c.config)
	c.Call = NewCallClient(c.config)
	c.Candidate = NewCandidateClient(c.config)
	c.CandidateReply = NewCandidateReplyClient(c.config)
	c.Evaluation = NewEvaluationClient(c.config)
	c.Message = NewMessageClient(c.config)
	c.MessageTemplate = NewMessageTemplateClient(c.config)
	c.Position = NewPositionClient(c.config)
	c.Setting = NewSettingClient(c.config)
	c.StatusChange = NewStatusChangeClient(c.config)
	c.UnmatchedInbound = NewUnmatchedInboundClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		Application:      NewApplicationClient(cfg),
		CVUpload:         NewCVUploadClient(cfg),
		Call:             NewCallClient(cfg),
		Candidate:        NewCandidateClient(cfg),
		CandidateReply:   NewCandidateReplyClient(cfg),
		Evaluation:       NewEvaluationClient(cfg),
		Message:          NewMessageClient(cfg),
		MessageTemplate:  NewMessageTemplateClient(cfg),
		Position:         NewPositionClient(cfg),
		Setting:          NewSettingClient(cfg),
		StatusChange:     NewStatusChangeClient(cfg),
		UnmatchedInbound: NewUnmatchedInboundClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		Application:      NewApplicationClient(cfg),
		CVUpload:         NewCVUploadClient(cfg),
		Call:             NewCallClient(cfg),
		Candidate:        NewCandidateClient(cfg),
		CandidateReply:   NewCandidateReplyClient(cfg),
		Evaluation:       NewEvaluationClient(cfg),
		Message:          NewMessageClient(cfg),
		MessageTemplate:  NewMessageTemplateClient(cfg),
		Position:         NewPositionClient(cfg),
		Setting:          NewSettingClient(cfg),
		StatusChange:     NewStatusChangeClient(cfg),
		UnmatchedInbound: NewUnmatchedInboundClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Application.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Application, c.CVUpload, c.Call, c.Candidate, c.CandidateReply, c.Evaluation,
		c.Message, c.MessageTemplate, c.Position, c.Setting, c.StatusChange,
		c.UnmatchedInbound,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Application, c.CVUpload, c.Call, c.Candidate, c.CandidateReply, c.Evaluation,
		c.Message, c.MessageTemplate, c.Position, c.Setting, c.StatusChange,
		c.UnmatchedInbound,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ApplicationMutation:
		return c.Application.mutate(ctx, m)
	case *CVUploadMutation:
		return c.CVUpload.mutate(ctx, m)
	case *CallMutation:
		return c.Call.mutate(ctx, m)
	case *CandidateMutation:
		return c.Candidate.mutate(ctx, m)
	case *CandidateReplyMutation:
		return c.CandidateReply.mutate(ctx, m)
	case *EvaluationMutation:
		return c.Evaluation.mutate(ctx, m)
	case *MessageMutation:
		return c.Message.mutate(ctx, m)
	case *MessageTemplateMutation:
		return c.MessageTemplate.mutate(ctx, m)
	case *PositionMutation:
		return c.Position.mutate(ctx, m)
	case *SettingMutation:
		return c.Setting.mutate(ctx, m)
	case *StatusChangeMutation:
		return c.StatusChange.mutate(ctx, m)
	case *UnmatchedInboundMutation:
		return c.UnmatchedInbound.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ApplicationClient is a client for the Application schema.
type ApplicationClient struct {
	config
}

// NewApplicationClient returns a client for the Application from the given config.
func NewApplicationClient(c config) *ApplicationClient {
	return &ApplicationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `application.Hooks(f(g(h())))`.
func (c *ApplicationClient) Use(hooks ...Hook) {
	c.hooks.Application = append(c.hooks.Application, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `application.Intercept(f(g(h())))`.
func (c *ApplicationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Application = append(c.inters.Application, interceptors...)
}

// Create returns a builder for creating a Application entity.
func (c *ApplicationClient) Create() *ApplicationCreate {
	mutation := newApplicationMutation(c.config, OpCreate)
	return &ApplicationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Application entities.
func (c *ApplicationClient) CreateBulk(builders ...*ApplicationCreate) *ApplicationCreateBulk {
	return &ApplicationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ApplicationClient) MapCreateBulk(slice any, setFunc func(*ApplicationCreate, int)) *ApplicationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ApplicationCreateBulk{err: fmt.Errorf("calling to ApplicationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ApplicationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ApplicationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Application.
func (c *ApplicationClient) Update() *ApplicationUpdate {
	mutation := newApplicationMutation(c.config, OpUpdate)
	return &ApplicationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ApplicationClient) UpdateOne(_m *Application) *ApplicationUpdateOne {
	mutation := newApplicationMutation(c.config, OpUpdateOne, withApplication(_m))
	return &ApplicationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ApplicationClient) UpdateOneID(id int) *ApplicationUpdateOne {
	mutation := newApplicationMutation(c.config, OpUpdateOne, withApplicationID(id))
	return &ApplicationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Application.
func (c *ApplicationClient) Delete() *ApplicationDelete {
	mutation := newApplicationMutation(c.config, OpDelete)
	return &ApplicationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ApplicationClient) DeleteOne(_m *Application) *ApplicationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ApplicationClient) DeleteOneID(id int) *ApplicationDeleteOne {
	builder := c.Delete().Where(application.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ApplicationDeleteOne{builder}
}

// Query returns a query builder for Application.
func (c *ApplicationClient) Query() *ApplicationQuery {
	return &ApplicationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeApplication},
		inters: c.Interceptors(),
	}
}

// Get returns a Application entity by its id.
func (c *ApplicationClient) Get(ctx context.Context, id int) (*Application, error) {
	return c.Query().Where(application.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ApplicationClient) GetX(ctx context.Context, id int) *Application {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCandidate queries the candidate edge of a Application.
func (c *ApplicationClient) QueryCandidate(_m *Application) *CandidateQuery {
	query := (&CandidateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(application.Table, application.FieldID, id),
			sqlgraph.To(candidate.Table, candidate.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, application.CandidateTable, application.CandidateColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPosition queries the position edge of a Application.
func (c *ApplicationClient) QueryPosition(_m *Application) *PositionQuery {
	query := (&PositionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(application.Table, application.FieldID, id),
			sqlgraph.To(position.Table, position.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, application.PositionTable, application.PositionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStatusChanges queries the status_changes edge of a Application.
func (c *ApplicationClient) QueryStatusChanges(_m *Application) *StatusChangeQuery {
	query := (&StatusChangeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(application.Table, application.FieldID, id),
			sqlgraph.To(statuschange.Table, statuschange.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, application.StatusChangesTable, application.StatusChangesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCalls queries the calls edge of a Application.
func (c *ApplicationClient) QueryCalls(_m *Application) *CallQuery {
	query := (&CallClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(application.Table, application.FieldID, id),
			sqlgraph.To(call.Table, call.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, application.CallsTable, application.CallsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvaluations queries the evaluations edge of a Application.
func (c *ApplicationClient) QueryEvaluations(_m *Application) *EvaluationQuery {
	query := (&EvaluationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(application.Table, application.FieldID, id),
			sqlgraph.To(evaluation.Table, evaluation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, application.EvaluationsTable, application.EvaluationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCvUploads queries the cv_uploads edge of a Application.
func (c *ApplicationClient) QueryCvUploads(_m *Application) *CVUploadQuery {
	query := (&CVUploadClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(application.Table, application.FieldID, id),
			sqlgraph.To(cvupload.Table, cvupload.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, application.CvUploadsTable, application.CvUploadsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMessages queries the messages edge of a Application.
func (c *ApplicationClient) QueryMessages(_m *Application) *MessageQuery {
	query := (&MessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(application.Table, application.FieldID, id),
			sqlgraph.To(message.Table, message.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, application.MessagesTable, application.MessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryReplies queries the replies edge of a Application.
func (c *ApplicationClient) QueryReplies(_m *Application) *CandidateReplyQuery {
	query := (&CandidateReplyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(application.Table, application.FieldID, id),
			sqlgraph.To(candidatereply.Table, candidatereply.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, application.RepliesTable, application.RepliesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ApplicationClient) Hooks() []Hook {
	return c.hooks.Application
}

// Interceptors returns the client interceptors.
func (c *ApplicationClient) Interceptors() []Interceptor {
	return c.inters.Application
}

func (c *ApplicationClient) mutate(ctx context.Context, m *ApplicationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ApplicationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ApplicationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ApplicationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ApplicationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Application mutation op: %q", m.Op())
	}
}

// CVUploadClient is a client for the CVUpload schema.
type CVUploadClient struct {
	config
}

// NewCVUploadClient returns a client for the CVUpload from the given config.
func NewCVUploadClient(c config) *CVUploadClient {
	return &CVUploadClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `cvupload.Hooks(f(g(h())))`.
func (c *CVUploadClient) Use(hooks ...Hook) {
	c.hooks.CVUpload = append(c.hooks.CVUpload, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `cvupload.Intercept(f(g(h())))`.
func (c *CVUploadClient) Intercept(interceptors ...Interceptor) {
	c.inters.CVUpload = append(c.inters.CVUpload, interceptors...)
}

// Create returns a builder for creating a CVUpload entity.
func (c *CVUploadClient) Create() *CVUploadCreate {
	mutation := newCVUploadMutation(c.config, OpCreate)
	return &CVUploadCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CVUpload entities.
func (c *CVUploadClient) CreateBulk(builders ...*CVUploadCreate) *CVUploadCreateBulk {
	return &CVUploadCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CVUploadClient) MapCreateBulk(slice any, setFunc func(*CVUploadCreate, int)) *CVUploadCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CVUploadCreateBulk{err: fmt.Errorf("calling to CVUploadClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CVUploadCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CVUploadCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CVUpload.
func (c *CVUploadClient) Update() *CVUploadUpdate {
	mutation := newCVUploadMutation(c.config, OpUpdate)
	return &CVUploadUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CVUploadClient) UpdateOne(_m *CVUpload) *CVUploadUpdateOne {
	mutation := newCVUploadMutation(c.config, OpUpdateOne, withCVUpload(_m))
	return &CVUploadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CVUploadClient) UpdateOneID(id int) *CVUploadUpdateOne {
	mutation := newCVUploadMutation(c.config, OpUpdateOne, withCVUploadID(id))
	return &CVUploadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CVUpload.
func (c *CVUploadClient) Delete() *CVUploadDelete {
	mutation := newCVUploadMutation(c.config, OpDelete)
	return &CVUploadDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CVUploadClient) DeleteOne(_m *CVUpload) *CVUploadDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CVUploadClient) DeleteOneID(id int) *CVUploadDeleteOne {
	builder := c.Delete().Where(cvupload.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CVUploadDeleteOne{builder}
}

// Query returns a query builder for CVUpload.
func (c *CVUploadClient) Query() *CVUploadQuery {
	return &CVUploadQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCVUpload},
		inters: c.Interceptors(),
	}
}

// Get returns a CVUpload entity by its id.
func (c *CVUploadClient) Get(ctx context.Context, id int) (*CVUpload, error) {
	return c.Query().Where(cvupload.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CVUploadClient) GetX(ctx context.Context, id int) *CVUpload {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCandidate queries the candidate edge of a CVUpload.
func (c *CVUploadClient) QueryCandidate(_m *CVUpload) *CandidateQuery {
	query := (&CandidateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(cvupload.Table, cvupload.FieldID, id),
			sqlgraph.To(candidate.Table, candidate.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, cvupload.CandidateTable, cvupload.CandidateColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryApplication queries the application edge of a CVUpload.
func (c *CVUploadClient) QueryApplication(_m *CVUpload) *ApplicationQuery {
	query := (&ApplicationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(cvupload.Table, cvupload.FieldID, id),
			sqlgraph.To(application.Table, application.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, cvupload.ApplicationTable, cvupload.ApplicationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CVUploadClient) Hooks() []Hook {
	return c.hooks.CVUpload
}

// Interceptors returns the client interceptors.
func (c *CVUploadClient) Interceptors() []Interceptor {
	return c.inters.CVUpload
}

func (c *CVUploadClient) mutate(ctx context.Context, m *CVUploadMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CVUploadCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CVUploadUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CVUploadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CVUploadDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CVUpload mutation op: %q", m.Op())
	}
}

// CallClient is a client for the Call schema.
type CallClient struct {
	config
}

// NewCallClient returns a client for the Call from the given config.
func NewCallClient(c config) *CallClient {
	return &CallClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `call.Hooks(f(g(h())))`.
func (c *CallClient) Use(hooks ...Hook) {
	c.hooks.Call = append(c.hooks.Call, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `call.Intercept(f(g(h())))`.
func (c *CallClient) Intercept(interceptors ...Interceptor) {
	c.inters.Call = append(c.inters.Call, interceptors...)
}

// Create returns a builder for creating a Call entity.
func (c *CallClient) Create() *CallCreate {
	mutation := newCallMutation(c.config, OpCreate)
	return &CallCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Call entities.
func (c *CallClient) CreateBulk(builders ...*CallCreate) *CallCreateBulk {
	return &CallCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CallClient) MapCreateBulk(slice any, setFunc func(*CallCreate, int)) *CallCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CallCreateBulk{err: fmt.Errorf("calling to CallClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CallCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CallCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Call.
func (c *CallClient) Update() *CallUpdate {
	mutation := newCallMutation(c.config, OpUpdate)
	return &CallUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CallClient) UpdateOne(_m *Call) *CallUpdateOne {
	mutation := newCallMutation(c.config, OpUpdateOne, withCall(_m))
	return &CallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CallClient) UpdateOneID(id int) *CallUpdateOne {
	mutation := newCallMutation(c.config, OpUpdateOne, withCallID(id))
	return &CallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Call.
func (c *CallClient) Delete() *CallDelete {
	mutation := newCallMutation(c.config, OpDelete)
	return &CallDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CallClient) DeleteOne(_m *Call) *CallDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CallClient) DeleteOneID(id int) *CallDeleteOne {
	builder := c.Delete().Where(call.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CallDeleteOne{builder}
}

// Query returns a query builder for Call.
func (c *CallClient) Query() *CallQuery {
	return &CallQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCall},
		inters: c.Interceptors(),
	}
}

// Get returns a Call entity by its id.
func (c *CallClient) Get(ctx context.Context, id int) (*Call, error) {
	return c.Query().Where(call.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CallClient) GetX(ctx context.Context, id int) *Call {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryApplication queries the application edge of a Call.
func (c *CallClient) QueryApplication(_m *Call) *ApplicationQuery {
	query := (&ApplicationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(call.Table, call.FieldID, id),
			sqlgraph.To(application.Table, application.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, call.ApplicationTable, call.ApplicationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvaluation queries the evaluation edge of a Call.
func (c *CallClient) QueryEvaluation(_m *Call) *EvaluationQuery {
	query := (&EvaluationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(call.Table, call.FieldID, id),
			sqlgraph.To(evaluation.Table, evaluation.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, call.EvaluationTable, call.EvaluationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CallClient) Hooks() []Hook {
	return c.hooks.Call
}

// Interceptors returns the client interceptors.
func (c *CallClient) Interceptors() []Interceptor {
	return c.inters.Call
}

func (c *CallClient) mutate(ctx context.Context, m *CallMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CallCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CallUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CallDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Call mutation op: %q", m.Op())
	}
}

// CandidateClient is a client for the Candidate schema.
type CandidateClient struct {
	config
}

// NewCandidateClient returns a client for the Candidate from the given config.
func NewCandidateClient(c config) *CandidateClient {
	return &CandidateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `candidate.Hooks(f(g(h())))`.
func (c *CandidateClient) Use(hooks ...Hook) {
	c.hooks.Candidate = append(c.hooks.Candidate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `candidate.Intercept(f(g(h())))`.
func (c *CandidateClient) Intercept(interceptors ...Interceptor) {
	c.inters.Candidate = append(c.inters.Candidate, interceptors...)
}

// Create returns a builder for creating a Candidate entity.
func (c *CandidateClient) Create() *CandidateCreate {
	mutation := newCandidateMutation(c.config, OpCreate)
	return &CandidateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Candidate entities.
func (c *CandidateClient) CreateBulk(builders ...*CandidateCreate) *CandidateCreateBulk {
	return &CandidateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CandidateClient) MapCreateBulk(slice any, setFunc func(*CandidateCreate, int)) *CandidateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CandidateCreateBulk{err: fmt.Errorf("calling to CandidateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CandidateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CandidateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Candidate.
func (c *CandidateClient) Update() *CandidateUpdate {
	mutation := newCandidateMutation(c.config, OpUpdate)
	return &CandidateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CandidateClient) UpdateOne(_m *Candidate) *CandidateUpdateOne {
	mutation := newCandidateMutation(c.config, OpUpdateOne, withCandidate(_m))
	return &CandidateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CandidateClient) UpdateOneID(id int) *CandidateUpdateOne {
	mutation := newCandidateMutation(c.config, OpUpdateOne, withCandidateID(id))
	return &CandidateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Candidate.
func (c *CandidateClient) Delete() *CandidateDelete {
	mutation := newCandidateMutation(c.config, OpDelete)
	return &CandidateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CandidateClient) DeleteOne(_m *Candidate) *CandidateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CandidateClient) DeleteOneID(id int) *CandidateDeleteOne {
	builder := c.Delete().Where(candidate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CandidateDeleteOne{builder}
}

// Query returns a query builder for Candidate.
func (c *CandidateClient) Query() *CandidateQuery {
	return &CandidateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCandidate},
		inters: c.Interceptors(),
	}
}

// Get returns a Candidate entity by its id.
func (c *CandidateClient) Get(ctx context.Context, id int) (*Candidate, error) {
	return c.Query().Where(candidate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CandidateClient) GetX(ctx context.Context, id int) *Candidate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryApplications queries the applications edge of a Candidate.
func (c *CandidateClient) QueryApplications(_m *Candidate) *ApplicationQuery {
	query := (&ApplicationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(candidate.Table, candidate.FieldID, id),
			sqlgraph.To(application.Table, application.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, candidate.ApplicationsTable, candidate.ApplicationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryReplies queries the replies edge of a Candidate.
func (c *CandidateClient) QueryReplies(_m *Candidate) *CandidateReplyQuery {
	query := (&CandidateReplyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(candidate.Table, candidate.FieldID, id),
			sqlgraph.To(candidatereply.Table, candidatereply.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, candidate.RepliesTable, candidate.RepliesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCvUploads queries the cv_uploads edge of a Candidate.
func (c *CandidateClient) QueryCvUploads(_m *Candidate) *CVUploadQuery {
	query := (&CVUploadClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(candidate.Table, candidate.FieldID, id),
			sqlgraph.To(cvupload.Table, cvupload.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, candidate.CvUploadsTable, candidate.CvUploadsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CandidateClient) Hooks() []Hook {
	return c.hooks.Candidate
}

// Interceptors returns the client interceptors.
func (c *CandidateClient) Interceptors() []Interceptor {
	return c.inters.Candidate
}

func (c *CandidateClient) mutate(ctx context.Context, m *CandidateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CandidateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CandidateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CandidateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CandidateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Candidate mutation op: %q", m.Op())
	}
}

// CandidateReplyClient is a client for the CandidateReply schema.
type CandidateReplyClient struct {
	config
}

// NewCandidateReplyClient returns a client for the CandidateReply from the given config.
func NewCandidateReplyClient(c config) *CandidateReplyClient {
	return &CandidateReplyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `candidatereply.Hooks(f(g(h())))`.
func (c *CandidateReplyClient) Use(hooks ...Hook) {
	c.hooks.CandidateReply = append(c.hooks.CandidateReply, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `candidatereply.Intercept(f(g(h())))`.
func (c *CandidateReplyClient) Intercept(interceptors ...Interceptor) {
	c.inters.CandidateReply = append(c.inters.CandidateReply, interceptors...)
}

// Create returns a builder for creating a CandidateReply entity.
func (c *CandidateReplyClient) Create() *CandidateReplyCreate {
	mutation := newCandidateReplyMutation(c.config, OpCreate)
	return &CandidateReplyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CandidateReply entities.
func (c *CandidateReplyClient) CreateBulk(builders ...*CandidateReplyCreate) *CandidateReplyCreateBulk {
	return &CandidateReplyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CandidateReplyClient) MapCreateBulk(slice any, setFunc func(*CandidateReplyCreate, int)) *CandidateReplyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CandidateReplyCreateBulk{err: fmt.Errorf("calling to CandidateReplyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CandidateReplyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CandidateReplyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CandidateReply.
func (c *CandidateReplyClient) Update() *CandidateReplyUpdate {
	mutation := newCandidateReplyMutation(c.config, OpUpdate)
	return &CandidateReplyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CandidateReplyClient) UpdateOne(_m *CandidateReply) *CandidateReplyUpdateOne {
	mutation := newCandidateReplyMutation(c.config, OpUpdateOne, withCandidateReply(_m))
	return &CandidateReplyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CandidateReplyClient) UpdateOneID(id int) *CandidateReplyUpdateOne {
	mutation := newCandidateReplyMutation(c.config, OpUpdateOne, withCandidateReplyID(id))
	return &CandidateReplyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CandidateReply.
func (c *CandidateReplyClient) Delete() *CandidateReplyDelete {
	mutation := newCandidateReplyMutation(c.config, OpDelete)
	return &CandidateReplyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CandidateReplyClient) DeleteOne(_m *CandidateReply) *CandidateReplyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CandidateReplyClient) DeleteOneID(id int) *CandidateReplyDeleteOne {
	builder := c.Delete().Where(candidatereply.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CandidateReplyDeleteOne{builder}
}

// Query returns a query builder for CandidateReply.
func (c *CandidateReplyClient) Query() *CandidateReplyQuery {
	return &CandidateReplyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCandidateReply},
		inters: c.Interceptors(),
	}
}

// Get returns a CandidateReply entity by its id.
func (c *CandidateReplyClient) Get(ctx context.Context, id int) (*CandidateReply, error) {
	return c.Query().Where(candidatereply.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CandidateReplyClient) GetX(ctx context.Context, id int) *CandidateReply {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCandidate queries the candidate edge of a CandidateReply.
func (c *CandidateReplyClient) QueryCandidate(_m *CandidateReply) *CandidateQuery {
	query := (&CandidateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(candidatereply.Table, candidatereply.FieldID, id),
			sqlgraph.To(candidate.Table, candidate.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, candidatereply.CandidateTable, candidatereply.CandidateColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryApplication queries the application edge of a CandidateReply.
func (c *CandidateReplyClient) QueryApplication(_m *CandidateReply) *ApplicationQuery {
	query := (&ApplicationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(candidatereply.Table, candidatereply.FieldID, id),
			sqlgraph.To(application.Table, application.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, candidatereply.ApplicationTable, candidatereply.ApplicationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CandidateReplyClient) Hooks() []Hook {
	return c.hooks.CandidateReply
}

// Interceptors returns the client interceptors.
func (c *CandidateReplyClient) Interceptors() []Interceptor {
	return c.inters.CandidateReply
}

func (c *CandidateReplyClient) mutate(ctx context.Context, m *CandidateReplyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CandidateReplyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CandidateReplyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CandidateReplyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CandidateReplyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CandidateReply mutation op: %q", m.Op())
	}
}

// EvaluationClient is a client for the Evaluation schema.
type EvaluationClient struct {
	config
}

// NewEvaluationClient returns a client for the Evaluation from the given config.
func NewEvaluationClient(c config) *EvaluationClient {
	return &EvaluationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `evaluation.Hooks(f(g(h())))`.
func (c *EvaluationClient) Use(hooks ...Hook) {
	c.hooks.Evaluation = append(c.hooks.Evaluation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `evaluation.Intercept(f(g(h())))`.
func (c *EvaluationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Evaluation = append(c.inters.Evaluation, interceptors...)
}

// Create returns a builder for creating a Evaluation entity.
func (c *EvaluationClient) Create() *EvaluationCreate {
	mutation := newEvaluationMutation(c.config, OpCreate)
	return &EvaluationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Evaluation entities.
func (c *EvaluationClient) CreateBulk(builders ...*EvaluationCreate) *EvaluationCreateBulk {
	return &EvaluationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EvaluationClient) MapCreateBulk(slice any, setFunc func(*EvaluationCreate, int)) *EvaluationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EvaluationCreateBulk{err: fmt.Errorf("calling to EvaluationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EvaluationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EvaluationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Evaluation.
func (c *EvaluationClient) Update() *EvaluationUpdate {
	mutation := newEvaluationMutation(c.config, OpUpdate)
	return &EvaluationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EvaluationClient) UpdateOne(_m *Evaluation) *EvaluationUpdateOne {
	mutation := newEvaluationMutation(c.config, OpUpdateOne, withEvaluation(_m))
	return &EvaluationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EvaluationClient) UpdateOneID(id int) *EvaluationUpdateOne {
	mutation := newEvaluationMutation(c.config, OpUpdateOne, withEvaluationID(id))
	return &EvaluationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Evaluation.
func (c *EvaluationClient) Delete() *EvaluationDelete {
	mutation := newEvaluationMutation(c.config, OpDelete)
	return &EvaluationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EvaluationClient) DeleteOne(_m *Evaluation) *EvaluationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EvaluationClient) DeleteOneID(id int) *EvaluationDeleteOne {
	builder := c.Delete().Where(evaluation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EvaluationDeleteOne{builder}
}

// Query returns a query builder for Evaluation.
func (c *EvaluationClient) Query() *EvaluationQuery {
	return &EvaluationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvaluation},
		inters: c.Interceptors(),
	}
}

// Get returns a Evaluation entity by its id.
func (c *EvaluationClient) Get(ctx context.Context, id int) (*Evaluation, error) {
	return c.Query().Where(evaluation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EvaluationClient) GetX(ctx context.Context, id int) *Evaluation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryApplication queries the application edge of a Evaluation.
func (c *EvaluationClient) QueryApplication(_m *Evaluation) *ApplicationQuery {
	query := (&ApplicationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(evaluation.Table, evaluation.FieldID, id),
			sqlgraph.To(application.Table, application.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, evaluation.ApplicationTable, evaluation.ApplicationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCall queries the call edge of a Evaluation.
func (c *EvaluationClient) QueryCall(_m *Evaluation) *CallQuery {
	query := (&CallClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(evaluation.Table, evaluation.FieldID, id),
			sqlgraph.To(call.Table, call.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, evaluation.CallTable, evaluation.CallColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EvaluationClient) Hooks() []Hook {
	return c.hooks.Evaluation
}

// Interceptors returns the client interceptors.
func (c *EvaluationClient) Interceptors() []Interceptor {
	return c.inters.Evaluation
}

func (c *EvaluationClient) mutate(ctx context.Context, m *EvaluationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EvaluationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EvaluationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EvaluationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EvaluationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Evaluation mutation op: %q", m.Op())
	}
}

// MessageClient is a client for the Message schema.
type MessageClient struct {
	config
}

// NewMessageClient returns a client for the Message from the given config.
func NewMessageClient(c config) *MessageClient {
	return &MessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `message.Hooks(f(g(h())))`.
func (c *MessageClient) Use(hooks ...Hook) {
	c.hooks.Message = append(c.hooks.Message, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `message.Intercept(f(g(h())))`.
func (c *MessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.Message = append(c.inters.Message, interceptors...)
}

// Create returns a builder for creating a Message entity.
func (c *MessageClient) Create() *MessageCreate {
	mutation := newMessageMutation(c.config, OpCreate)
	return &MessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Message entities.
func (c *MessageClient) CreateBulk(builders ...*MessageCreate) *MessageCreateBulk {
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MessageClient) MapCreateBulk(slice any, setFunc func(*MessageCreate, int)) *MessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MessageCreateBulk{err: fmt.Errorf("calling to MessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Message.
func (c *MessageClient) Update() *MessageUpdate {
	mutation := newMessageMutation(c.config, OpUpdate)
	return &MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MessageClient) UpdateOne(_m *Message) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessage(_m))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MessageClient) UpdateOneID(id int) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessageID(id))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Message.
func (c *MessageClient) Delete() *MessageDelete {
	mutation := newMessageMutation(c.config, OpDelete)
	return &MessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MessageClient) DeleteOne(_m *Message) *MessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MessageClient) DeleteOneID(id int) *MessageDeleteOne {
	builder := c.Delete().Where(message.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MessageDeleteOne{builder}
}

// Query returns a query builder for Message.
func (c *MessageClient) Query() *MessageQuery {
	return &MessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a Message entity by its id.
func (c *MessageClient) Get(ctx context.Context, id int) (*Message, error) {
	return c.Query().Where(message.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MessageClient) GetX(ctx context.Context, id int) *Message {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryApplication queries the application edge of a Message.
func (c *MessageClient) QueryApplication(_m *Message) *ApplicationQuery {
	query := (&ApplicationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(message.Table, message.FieldID, id),
			sqlgraph.To(application.Table, application.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, message.ApplicationTable, message.ApplicationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MessageClient) Hooks() []Hook {
	return c.hooks.Message
}

// Interceptors returns the client interceptors.
func (c *MessageClient) Interceptors() []Interceptor {
	return c.inters.Message
}

func (c *MessageClient) mutate(ctx context.Context, m *MessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Message mutation op: %q", m.Op())
	}
}

// MessageTemplateClient is a client for the MessageTemplate schema.
type MessageTemplateClient struct {
	config
}

// NewMessageTemplateClient returns a client for the MessageTemplate from the given config.
func NewMessageTemplateClient(c config) *MessageTemplateClient {
	return &MessageTemplateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `messagetemplate.Hooks(f(g(h())))`.
func (c *MessageTemplateClient) Use(hooks ...Hook) {
	c.hooks.MessageTemplate = append(c.hooks.MessageTemplate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `messagetemplate.Intercept(f(g(h())))`.
func (c *MessageTemplateClient) Intercept(interceptors ...Interceptor) {
	c.inters.MessageTemplate = append(c.inters.MessageTemplate, interceptors...)
}

// Create returns a builder for creating a MessageTemplate entity.
func (c *MessageTemplateClient) Create() *MessageTemplateCreate {
	mutation := newMessageTemplateMutation(c.config, OpCreate)
	return &MessageTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MessageTemplate entities.
func (c *MessageTemplateClient) CreateBulk(builders ...*MessageTemplateCreate) *MessageTemplateCreateBulk {
	return &MessageTemplateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MessageTemplateClient) MapCreateBulk(slice any, setFunc func(*MessageTemplateCreate, int)) *MessageTemplateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MessageTemplateCreateBulk{err: fmt.Errorf("calling to MessageTemplateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MessageTemplateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MessageTemplateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MessageTemplate.
func (c *MessageTemplateClient) Update() *MessageTemplateUpdate {
	mutation := newMessageTemplateMutation(c.config, OpUpdate)
	return &MessageTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MessageTemplateClient) UpdateOne(_m *MessageTemplate) *MessageTemplateUpdateOne {
	mutation := newMessageTemplateMutation(c.config, OpUpdateOne, withMessageTemplate(_m))
	return &MessageTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MessageTemplateClient) UpdateOneID(id int) *MessageTemplateUpdateOne {
	mutation := newMessageTemplateMutation(c.config, OpUpdateOne, withMessageTemplateID(id))
	return &MessageTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MessageTemplate.
func (c *MessageTemplateClient) Delete() *MessageTemplateDelete {
	mutation := newMessageTemplateMutation(c.config, OpDelete)
	return &MessageTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MessageTemplateClient) DeleteOne(_m *MessageTemplate) *MessageTemplateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MessageTemplateClient) DeleteOneID(id int) *MessageTemplateDeleteOne {
	builder := c.Delete().Where(messagetemplate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MessageTemplateDeleteOne{builder}
}

// Query returns a query builder for MessageTemplate.
func (c *MessageTemplateClient) Query() *MessageTemplateQuery {
	return &MessageTemplateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMessageTemplate},
		inters: c.Interceptors(),
	}
}

// Get returns a MessageTemplate entity by its id.
func (c *MessageTemplateClient) Get(ctx context.Context, id int) (*MessageTemplate, error) {
	return c.Query().Where(messagetemplate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MessageTemplateClient) GetX(ctx context.Context, id int) *MessageTemplate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MessageTemplateClient) Hooks() []Hook {
	return c.hooks.MessageTemplate
}

// Interceptors returns the client interceptors.
func (c *MessageTemplateClient) Interceptors() []Interceptor {
	return c.inters.MessageTemplate
}

func (c *MessageTemplateClient) mutate(ctx context.Context, m *MessageTemplateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MessageTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MessageTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MessageTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MessageTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MessageTemplate mutation op: %q", m.Op())
	}
}

// PositionClient is a client for the Position schema.
type PositionClient struct {
	config
}

// NewPositionClient returns a client for the Position from the given config.
func NewPositionClient(c config) *PositionClient {
	return &PositionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `position.Hooks(f(g(h())))`.
func (c *PositionClient) Use(hooks ...Hook) {
	c.hooks.Position = append(c.hooks.Position, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `position.Intercept(f(g(h())))`.
func (c *PositionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Position = append(c.inters.Position, interceptors...)
}

// Create returns a builder for creating a Position entity.
func (c *PositionClient) Create() *PositionCreate {
	mutation := newPositionMutation(c.config, OpCreate)
	return &PositionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Position entities.
func (c *PositionClient) CreateBulk(builders ...*PositionCreate) *PositionCreateBulk {
	return &PositionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PositionClient) MapCreateBulk(slice any, setFunc func(*PositionCreate, int)) *PositionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PositionCreateBulk{err: fmt.Errorf("calling to PositionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PositionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PositionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Position.
func (c *PositionClient) Update() *PositionUpdate {
	mutation := newPositionMutation(c.config, OpUpdate)
	return &PositionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PositionClient) UpdateOne(_m *Position) *PositionUpdateOne {
	mutation := newPositionMutation(c.config, OpUpdateOne, withPosition(_m))
	return &PositionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PositionClient) UpdateOneID(id int) *PositionUpdateOne {
	mutation := newPositionMutation(c.config, OpUpdateOne, withPositionID(id))
	return &PositionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Position.
func (c *PositionClient) Delete() *PositionDelete {
	mutation := newPositionMutation(c.config, OpDelete)
	return &PositionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PositionClient) DeleteOne(_m *Position) *PositionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PositionClient) DeleteOneID(id int) *PositionDeleteOne {
	builder := c.Delete().Where(position.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PositionDeleteOne{builder}
}

// Query returns a query builder for Position.
func (c *PositionClient) Query() *PositionQuery {
	return &PositionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePosition},
		inters: c.Interceptors(),
	}
}

// Get returns a Position entity by its id.
func (c *PositionClient) Get(ctx context.Context, id int) (*Position, error) {
	return c.Query().Where(position.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PositionClient) GetX(ctx context.Context, id int) *Position {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryApplications queries the applications edge of a Position.
func (c *PositionClient) QueryApplications(_m *Position) *ApplicationQuery {
	query := (&ApplicationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(position.Table, position.FieldID, id),
			sqlgraph.To(application.Table, application.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, position.ApplicationsTable, position.ApplicationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PositionClient) Hooks() []Hook {
	return c.hooks.Position
}

// Interceptors returns the client interceptors.
func (c *PositionClient) Interceptors() []Interceptor {
	return c.inters.Position
}

func (c *PositionClient) mutate(ctx context.Context, m *PositionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PositionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PositionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PositionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PositionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Position mutation op: %q", m.Op())
	}
}

// SettingClient is a client for the Setting schema.
type SettingClient struct {
	config
}

// NewSettingClient returns a client for the Setting from the given config.
func NewSettingClient(c config) *SettingClient {
	return &SettingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `setting.Hooks(f(g(h())))`.
func (c *SettingClient) Use(hooks ...Hook) {
	c.hooks.Setting = append(c.hooks.Setting, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `setting.Intercept(f(g(h())))`.
func (c *SettingClient) Intercept(interceptors ...Interceptor) {
	c.inters.Setting = append(c.inters.Setting, interceptors...)
}

// Create returns a builder for creating a Setting entity.
func (c *SettingClient) Create() *SettingCreate {
	mutation := newSettingMutation(c.config, OpCreate)
	return &SettingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Setting entities.
func (c *SettingClient) CreateBulk(builders ...*SettingCreate) *SettingCreateBulk {
	return &SettingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SettingClient) MapCreateBulk(slice any, setFunc func(*SettingCreate, int)) *SettingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SettingCreateBulk{err: fmt.Errorf("calling to SettingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SettingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SettingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Setting.
func (c *SettingClient) Update() *SettingUpdate {
	mutation := newSettingMutation(c.config, OpUpdate)
	return &SettingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SettingClient) UpdateOne(_m *Setting) *SettingUpdateOne {
	mutation := newSettingMutation(c.config, OpUpdateOne, withSetting(_m))
	return &SettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SettingClient) UpdateOneID(id int) *SettingUpdateOne {
	mutation := newSettingMutation(c.config, OpUpdateOne, withSettingID(id))
	return &SettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Setting.
func (c *SettingClient) Delete() *SettingDelete {
	mutation := newSettingMutation(c.config, OpDelete)
	return &SettingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SettingClient) DeleteOne(_m *Setting) *SettingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SettingClient) DeleteOneID(id int) *SettingDeleteOne {
	builder := c.Delete().Where(setting.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SettingDeleteOne{builder}
}

// Query returns a query builder for Setting.
func (c *SettingClient) Query() *SettingQuery {
	return &SettingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSetting},
		inters: c.Interceptors(),
	}
}

// Get returns a Setting entity by its id.
func (c *SettingClient) Get(ctx context.Context, id int) (*Setting, error) {
	return c.Query().Where(setting.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SettingClient) GetX(ctx context.Context, id int) *Setting {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SettingClient) Hooks() []Hook {
	return c.hooks.Setting
}

// Interceptors returns the client interceptors.
func (c *SettingClient) Interceptors() []Interceptor {
	return c.inters.Setting
}

func (c *SettingClient) mutate(ctx context.Context, m *SettingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SettingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SettingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SettingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Setting mutation op: %q", m.Op())
	}
}

// StatusChangeClient is a client for the StatusChange schema.
type StatusChangeClient struct {
	config
}

// NewStatusChangeClient returns a client for the StatusChange from the given config.
func NewStatusChangeClient(c config) *StatusChangeClient {
	return &StatusChangeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `statuschange.Hooks(f(g(h())))`.
func (c *StatusChangeClient) Use(hooks ...Hook) {
	c.hooks.StatusChange = append(c.hooks.StatusChange, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `statuschange.Intercept(f(g(h())))`.
func (c *StatusChangeClient) Intercept(interceptors ...Interceptor) {
	c.inters.StatusChange = append(c.inters.StatusChange, interceptors...)
}

// Create returns a builder for creating a StatusChange entity.
func (c *StatusChangeClient) Create() *StatusChangeCreate {
	mutation := newStatusChangeMutation(c.config, OpCreate)
	return &StatusChangeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StatusChange entities.
func (c *StatusChangeClient) CreateBulk(builders ...*StatusChangeCreate) *StatusChangeCreateBulk {
	return &StatusChangeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StatusChangeClient) MapCreateBulk(slice any, setFunc func(*StatusChangeCreate, int)) *StatusChangeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StatusChangeCreateBulk{err: fmt.Errorf("calling to StatusChangeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StatusChangeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StatusChangeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StatusChange.
func (c *StatusChangeClient) Update() *StatusChangeUpdate {
	mutation := newStatusChangeMutation(c.config, OpUpdate)
	return &StatusChangeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StatusChangeClient) UpdateOne(_m *StatusChange) *StatusChangeUpdateOne {
	mutation := newStatusChangeMutation(c.config, OpUpdateOne, withStatusChange(_m))
	return &StatusChangeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StatusChangeClient) UpdateOneID(id int) *StatusChangeUpdateOne {
	mutation := newStatusChangeMutation(c.config, OpUpdateOne, withStatusChangeID(id))
	return &StatusChangeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StatusChange.
func (c *StatusChangeClient) Delete() *StatusChangeDelete {
	mutation := newStatusChangeMutation(c.config, OpDelete)
	return &StatusChangeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StatusChangeClient) DeleteOne(_m *StatusChange) *StatusChangeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StatusChangeClient) DeleteOneID(id int) *StatusChangeDeleteOne {
	builder := c.Delete().Where(statuschange.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StatusChangeDeleteOne{builder}
}

// Query returns a query builder for StatusChange.
func (c *StatusChangeClient) Query() *StatusChangeQuery {
	return &StatusChangeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStatusChange},
		inters: c.Interceptors(),
	}
}

// Get returns a StatusChange entity by its id.
func (c *StatusChangeClient) Get(ctx context.Context, id int) (*StatusChange, error) {
	return c.Query().Where(statuschange.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StatusChangeClient) GetX(ctx context.Context, id int) *StatusChange {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryApplication queries the application edge of a StatusChange.
func (c *StatusChangeClient) QueryApplication(_m *StatusChange) *ApplicationQuery {
	query := (&ApplicationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(statuschange.Table, statuschange.FieldID, id),
			sqlgraph.To(application.Table, application.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, statuschange.ApplicationTable, statuschange.ApplicationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StatusChangeClient) Hooks() []Hook {
	return c.hooks.StatusChange
}

// Interceptors returns the client interceptors.
func (c *StatusChangeClient) Interceptors() []Interceptor {
	return c.inters.StatusChange
}

func (c *StatusChangeClient) mutate(ctx context.Context, m *StatusChangeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StatusChangeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StatusChangeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StatusChangeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StatusChangeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StatusChange mutation op: %q", m.Op())
	}
}

// UnmatchedInboundClient is a client for the UnmatchedInbound schema.
type UnmatchedInboundClient struct {
	config
}

// NewUnmatchedInboundClient returns a client for the UnmatchedInbound from the given config.
func NewUnmatchedInboundClient(c config) *UnmatchedInboundClient {
	return &UnmatchedInboundClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `unmatchedinbound.Hooks(f(g(h())))`.
func (c *UnmatchedInboundClient) Use(hooks ...Hook) {
	c.hooks.UnmatchedInbound = append(c.hooks.UnmatchedInbound, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `unmatchedinbound.Intercept(f(g(h())))`.
func (c *UnmatchedInboundClient) Intercept(interceptors ...Interceptor) {
	c.inters.UnmatchedInbound = append(c.inters.UnmatchedInbound, interceptors...)
}

// Create returns a builder for creating a UnmatchedInbound entity.
func (c *UnmatchedInboundClient) Create() *UnmatchedInboundCreate {
	mutation := newUnmatchedInboundMutation(c.config, OpCreate)
	return &UnmatchedInboundCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UnmatchedInbound entities.
func (c *UnmatchedInboundClient) CreateBulk(builders ...*UnmatchedInboundCreate) *UnmatchedInboundCreateBulk {
	return &UnmatchedInboundCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UnmatchedInboundClient) MapCreateBulk(slice any, setFunc func(*UnmatchedInboundCreate, int)) *UnmatchedInboundCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UnmatchedInboundCreateBulk{err: fmt.Errorf("calling to UnmatchedInboundClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UnmatchedInboundCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UnmatchedInboundCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UnmatchedInbound.
func (c *UnmatchedInboundClient) Update() *UnmatchedInboundUpdate {
	mutation := newUnmatchedInboundMutation(c.config, OpUpdate)
	return &UnmatchedInboundUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UnmatchedInboundClient) UpdateOne(_m *UnmatchedInbound) *UnmatchedInboundUpdateOne {
	mutation := newUnmatchedInboundMutation(c.config, OpUpdateOne, withUnmatchedInbound(_m))
	return &UnmatchedInboundUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UnmatchedInboundClient) UpdateOneID(id int) *UnmatchedInboundUpdateOne {
	mutation := newUnmatchedInboundMutation(c.config, OpUpdateOne, withUnmatchedInboundID(id))
	return &UnmatchedInboundUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UnmatchedInbound.
func (c *UnmatchedInboundClient) Delete() *UnmatchedInboundDelete {
	mutation := newUnmatchedInboundMutation(c.config, OpDelete)
	return &UnmatchedInboundDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UnmatchedInboundClient) DeleteOne(_m *UnmatchedInbound) *UnmatchedInboundDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UnmatchedInboundClient) DeleteOneID(id int) *UnmatchedInboundDeleteOne {
	builder := c.Delete().Where(unmatchedinbound.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UnmatchedInboundDeleteOne{builder}
}

// Query returns a query builder for UnmatchedInbound.
func (c *UnmatchedInboundClient) Query() *UnmatchedInboundQuery {
	return &UnmatchedInboundQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUnmatchedInbound},
		inters: c.Interceptors(),
	}
}

// Get returns a UnmatchedInbound entity by its id.
func (c *UnmatchedInboundClient) Get(ctx context.Context, id int) (*UnmatchedInbound, error) {
	return c.Query().Where(unmatchedinbound.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UnmatchedInboundClient) GetX(ctx context.Context, id int) *UnmatchedInbound {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UnmatchedInboundClient) Hooks() []Hook {
	return c.hooks.UnmatchedInbound
}

// Interceptors returns the client interceptors.
func (c *UnmatchedInboundClient) Interceptors() []Interceptor {
	return c.inters.UnmatchedInbound
}

func (c *UnmatchedInboundClient) mutate(ctx context.Context, m *UnmatchedInboundMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UnmatchedInboundCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UnmatchedInboundUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UnmatchedInboundUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UnmatchedInboundDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UnmatchedInbound mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Application, CVUpload, Call, Candidate, CandidateReply, Evaluation, Message,
		MessageTemplate, Position, Setting, StatusChange, UnmatchedInbound []ent.Hook
	}
	inters struct {
		Application, CVUpload, Call, Candidate, CandidateReply, Evaluation, Message,
		MessageTemplate, Position, Setting, StatusChange,
		UnmatchedInbound []ent.Interceptor
	}
)
