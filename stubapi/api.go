// Package stubapi serves an in-memory copy of the reqres.in demo API, so the
// contract scenarios can run without the network.
package stubapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/andyle182810/apicheck/middleware"
	"github.com/andyle182810/apicheck/pagination"
	"github.com/andyle182810/apicheck/reqres"
	"github.com/labstack/echo/v5"
)

const (
	DefaultMaxDelay = 3 * time.Second

	MessageMissingPassword = "Missing password"
	MessageMissingEmail    = "Missing email or username"
	MessageUserNotFound    = "user not found"
	MessageRegisterOnly    = "Note: Only defined users succeed registration"

	firstCreatedID = 100
)

// API holds the fixture. Nothing it serves is mutated, so created and
// updated users are echoed back but never stored, as on the live service.
type API struct {
	users     []reqres.User
	resources []reqres.Resource
	apiKey    string
	maxDelay  time.Duration
	now       func() time.Time
	nextID    atomic.Int64
}

type Option func(*API)

// WithAPIKey guards the resource endpoints with an x-api-key check.
func WithAPIKey(key string) Option {
	return func(a *API) {
		a.apiKey = key
	}
}

func WithUsers(users []reqres.User) Option {
	return func(a *API) {
		a.users = users
	}
}

func WithResources(resources []reqres.Resource) Option {
	return func(a *API) {
		a.resources = resources
	}
}

func WithMaxDelay(d time.Duration) Option {
	return func(a *API) {
		a.maxDelay = d
	}
}

func WithClock(now func() time.Time) Option {
	return func(a *API) {
		a.now = now
	}
}

func NewAPI(opts ...Option) *API {
	api := &API{
		users:     DefaultUsers(),
		resources: DefaultResources(),
		apiKey:    "",
		maxDelay:  DefaultMaxDelay,
		now:       time.Now,
		nextID:    atomic.Int64{},
	}

	for _, opt := range opts {
		opt(api)
	}

	api.nextID.Store(firstCreatedID)

	return api
}

// Register mounts the routes on g.
func (a *API) Register(g *echo.Group) {
	g.GET("/users", a.listUsers)
	g.POST("/users", a.createUser)
	g.GET("/users/:id", a.getUser)
	g.PUT("/users/:id", a.updateUser)
	g.PATCH("/users/:id", a.updateUser)
	g.DELETE("/users/:id", a.deleteUser)
	g.POST("/login", a.login)
	g.POST("/register", a.register)

	guarded := g.Group("/unknown", middleware.RequireAPIKey(a.apiKey))
	guarded.GET("", a.listResources)
	guarded.GET("/:id", a.getResource)
}

func (a *API) listUsers(c *echo.Context) error {
	if err := a.delay(c); err != nil {
		return err
	}

	p := pageFromQuery(c, len(a.users))

	return c.JSON(http.StatusOK, reqres.UserPage{
		Page:       p.Number,
		PerPage:    p.PerPage,
		Total:      p.Total,
		TotalPages: p.TotalPages,
		Data:       pagination.Slice(a.users, p),
		Support:    defaultSupport(),
	})
}

func (a *API) getUser(c *echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, struct{}{})
	}

	for _, user := range a.users {
		if user.ID == id {
			return c.JSON(http.StatusOK, reqres.SingleUser{Data: user, Support: defaultSupport()})
		}
	}

	return c.JSON(http.StatusNotFound, struct{}{})
}

func (a *API) createUser(c *echo.Context) error {
	var req reqres.CreateUserRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, reqres.CreatedUser{
		Name:      req.Name,
		Job:       req.Job,
		ID:        strconv.FormatInt(a.nextID.Add(1), 10),
		CreatedAt: a.timestamp(),
	})
}

func (a *API) updateUser(c *echo.Context) error {
	var req reqres.UpdateUserRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, reqres.UpdatedUser{
		Name:      req.Name,
		Job:       req.Job,
		UpdatedAt: a.timestamp(),
	})
}

func (a *API) deleteUser(c *echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func (a *API) login(c *echo.Context) error {
	_, message, err := a.authenticate(c)
	if err != nil {
		return err
	}

	if message != "" {
		return c.JSON(http.StatusBadRequest, reqres.ErrorBody{Error: message})
	}

	return c.JSON(http.StatusOK, reqres.LoginResponse{Token: DefaultToken})
}

func (a *API) register(c *echo.Context) error {
	user, message, err := a.authenticate(c)
	if err != nil {
		return err
	}

	if message == MessageUserNotFound {
		message = MessageRegisterOnly
	}

	if message != "" {
		return c.JSON(http.StatusBadRequest, reqres.ErrorBody{Error: message})
	}

	return c.JSON(http.StatusOK, reqres.RegisterResponse{ID: user.ID, Token: DefaultToken})
}

// authenticate checks a login body. A non-empty message is the 400 reason.
func (a *API) authenticate(c *echo.Context) (reqres.User, string, error) {
	var req reqres.LoginRequest
	if err := decodeBody(c, &req); err != nil {
		return reqres.User{}, "", err
	}

	switch {
	case req.Email == "":
		return reqres.User{}, MessageMissingEmail, nil
	case req.Password == "":
		return reqres.User{}, MessageMissingPassword, nil
	}

	for _, user := range a.users {
		if user.Email == req.Email {
			return user, "", nil
		}
	}

	return reqres.User{}, MessageUserNotFound, nil
}

func (a *API) listResources(c *echo.Context) error {
	p := pageFromQuery(c, len(a.resources))

	return c.JSON(http.StatusOK, reqres.ResourcePage{
		Page:       p.Number,
		PerPage:    p.PerPage,
		Total:      p.Total,
		TotalPages: p.TotalPages,
		Data:       pagination.Slice(a.resources, p),
		Support:    defaultSupport(),
	})
}

func (a *API) getResource(c *echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, struct{}{})
	}

	for _, resource := range a.resources {
		if resource.ID == id {
			return c.JSON(http.StatusOK, reqres.SingleResource{Data: resource, Support: defaultSupport()})
		}
	}

	return c.JSON(http.StatusNotFound, struct{}{})
}

// delay honours ?delay=N (seconds), capped at maxDelay and cut short when
// the caller goes away.
func (a *API) delay(c *echo.Context) error {
	seconds, err := strconv.Atoi(c.QueryParam("delay"))
	if err != nil || seconds <= 0 {
		return nil
	}

	wait := min(time.Duration(seconds)*time.Second, a.maxDelay)

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-c.Request().Context().Done():
		return c.Request().Context().Err()
	}
}

func (a *API) timestamp() string {
	return a.now().UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

func pageFromQuery(c *echo.Context, total int) pagination.Page {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	perPage, _ := strconv.Atoi(c.QueryParam("per_page"))

	return pagination.New(page, perPage, total)
}

func pathID(c *echo.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, false
	}

	return id, true
}

// decodeBody reads a JSON body regardless of the declared content type. An
// empty body leaves v untouched.
func decodeBody(c *echo.Context, v any) error {
	err := json.NewDecoder(c.Request().Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON body")
}
