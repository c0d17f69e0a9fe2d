package systm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/2beens/systm-mcp/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

const (
	DefaultAPIURL     = "https://api.thesufferfest.com/graphql"
	DefaultAppVersion = "7.101.1-web.3480"
	DefaultLocale     = "en"
)

// Client talks to the SYSTM GraphQL API. One operation is one HTTP POST; no
// retries, no response caching, no background work. The session (token plus
// basic rider profile) is written exactly once, by a successful Authenticate,
// and is read-only afterwards for the life of the process.
type Client struct {
	apiURL     string
	appVersion string
	installID  string
	locale     string
	httpClient *http.Client

	mu      sync.RWMutex
	token   string
	profile *RiderProfile
}

type NewClientParams struct {
	APIURL     string
	AppVersion string
	InstallID  string
	Locale     string
	HTTPClient *http.Client
}

func NewClient(params NewClientParams) *Client {
	if params.APIURL == "" {
		params.APIURL = DefaultAPIURL
	}
	if params.AppVersion == "" {
		params.AppVersion = DefaultAppVersion
	}
	if params.Locale == "" {
		params.Locale = DefaultLocale
	}
	if params.HTTPClient == nil {
		params.HTTPClient = http.DefaultClient
	}
	return &Client{
		apiURL:     params.APIURL,
		appVersion: params.AppVersion,
		installID:  params.InstallID,
		locale:     params.Locale,
		httpClient: params.HTTPClient,
	}
}

// requireAuth returns the session token, or ErrNotAuthenticated when
// Authenticate has not succeeded yet. Calls racing with authentication all
// land on the error path; nobody observes a half-written session.
func (c *Client) requireAuth() (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.token == "" {
		return "", ErrNotAuthenticated
	}
	return c.token, nil
}

func (c *Client) appInformation() map[string]any {
	appInfo := map[string]any{
		"platform": "web",
		"version":  c.appVersion,
	}
	if c.installID != "" {
		appInfo["installId"] = c.installID
	}
	return appInfo
}

// call posts one GraphQL operation and returns the decoded data field.
// A non-2xx status fails with TransportError without parsing the body; a 2xx
// response carrying a GraphQL errors array fails with APIError holding the
// first message. Neither is ever retried here.
func (c *Client) call(
	ctx context.Context,
	query string,
	variables map[string]any,
	operationName string,
	requireAuth bool,
) (data json.RawMessage, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "systm."+operationName)
	defer span.End()
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, operationName)
		}
	}()

	var token string
	if requireAuth {
		if token, err = c.requireAuth(); err != nil {
			return nil, err
		}
	}

	body, err := json.Marshal(graphQLRequest{
		Query:         query,
		Variables:     variables,
		OperationName: operationName,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-App-Version", c.appVersion)
	if c.installID != "" {
		req.Header.Set("X-Install-Id", c.installID)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	log.Tracef("systm api: %s", operationName)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var result struct {
		Data   json.RawMessage `json:"data"`
		Errors []graphQLError  `json:"errors"`
	}
	if err := json.Unmarshal(respBytes, &result); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	if len(result.Errors) > 0 {
		return nil, &APIError{Message: result.Errors[0].Message}
	}

	return result.Data, nil
}

// statusSuccess reports whether an upstream mutation/query status is the
// success sentinel. The API is not consistent about casing.
func statusSuccess(status string) bool {
	return strings.EqualFold(status, "success")
}

func statusMessage(message *string) string {
	if message == nil || *message == "" {
		return "unknown error"
	}
	return *message
}

// Authenticate logs in with the given credentials and stores the bearer token
// together with the basic 4DP rider profile. The two are assigned atomically:
// a login response with a missing or partial fitness profile fails closed and
// leaves the session untouched.
func (c *Client) Authenticate(ctx context.Context, username, password string) error {
	variables := map[string]any{
		"input": map[string]any{
			"email":    username,
			"password": password,
		},
	}

	data, err := c.call(ctx, loginMutation, variables, "LoginUser", false)
	if err != nil {
		return &AuthenticationError{Message: err.Error()}
	}

	var resp loginResponseRaw
	if err := json.Unmarshal(data, &resp); err != nil {
		return &AuthenticationError{Message: fmt.Sprintf("unusable login response: %s", err)}
	}

	login := resp.LoginUser
	if !statusSuccess(login.Status) {
		return &AuthenticationError{Message: statusMessage(login.Message)}
	}
	if login.Token == nil || *login.Token == "" {
		return &AuthenticationError{Message: "login response missing token"}
	}

	fitness := login.User.Profiles.Fitness
	if fitness == nil ||
		fitness.NM == nil || fitness.AC == nil || fitness.MAP == nil || fitness.FTP == nil {
		return &AuthenticationError{Message: "login response missing rider fitness profile"}
	}

	c.mu.Lock()
	c.token = *login.Token
	c.profile = &RiderProfile{
		NM:  *fitness.NM,
		AC:  *fitness.AC,
		MAP: *fitness.MAP,
		FTP: *fitness.FTP,
	}
	c.mu.Unlock()

	log.Debugf("systm api: authenticated as %s", username)

	return nil
}

// RiderProfile returns the basic 4DP profile captured at login, or nil when
// not authenticated.
func (c *Client) RiderProfile() *RiderProfile {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.profile == nil {
		return nil
	}
	profile := *c.profile
	return &profile
}

// WorkoutLibrary fetches the full catalog and runs the filter/sort/limit
// pipeline over it client side. The remote API does no usable server side
// filtering, so each call fetches the complete library.
func (c *Client) WorkoutLibrary(ctx context.Context, filter *LibraryFilter) ([]LibraryItem, error) {
	content, err := c.fetchLibrary(ctx)
	if err != nil {
		return nil, err
	}
	return queryLibrary(content, filter, modeLibrary), nil
}

// CyclingWorkouts is the cycling specialized search: it forces the sport to
// Cycling and additionally honors the category, intensity and 4DP focus
// filters. The channel filter matches by substring on this path.
func (c *Client) CyclingWorkouts(ctx context.Context, filter *LibraryFilter) ([]LibraryItem, error) {
	content, err := c.fetchLibrary(ctx)
	if err != nil {
		return nil, err
	}

	cyclingFilter := LibraryFilter{Sport: "Cycling"}
	if filter != nil {
		cyclingFilter = *filter
		cyclingFilter.Sport = "Cycling"
	}
	return queryLibrary(content, &cyclingFilter, modeCycling), nil
}

func (c *Client) fetchLibrary(ctx context.Context) ([]LibraryItem, error) {
	variables := map[string]any{
		"locale":         c.locale,
		"appInformation": c.appInformation(),
	}

	data, err := c.call(ctx, libraryQuery, variables, "Library", true)
	if err != nil {
		return nil, err
	}

	var resp libraryResponseRaw
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("unmarshal library response: %w", err)
	}

	log.Debugf("systm api: library fetched, %d items", len(resp.Library.Content))

	return normalizeLibrary(resp.Library.Content), nil
}

// WorkoutDetails fetches one workout by its workout id. A library content id
// works too: when the direct fetch comes back empty, the library is queried
// to map the content id to its workout id before giving up with ErrNotFound.
func (c *Client) WorkoutDetails(ctx context.Context, workoutID string) (*Workout, error) {
	workout, err := c.workoutByID(ctx, workoutID)
	if err != nil {
		return nil, err
	}
	if workout != nil {
		return workout, nil
	}

	content, err := c.fetchLibrary(ctx)
	if err != nil {
		return nil, err
	}
	for i := range content {
		if content[i].ContentID == workoutID && content[i].WorkoutID != "" {
			mapped, err := c.workoutByID(ctx, content[i].WorkoutID)
			if err != nil {
				return nil, err
			}
			if mapped != nil {
				return mapped, nil
			}
			break
		}
	}

	return nil, fmt.Errorf("workout %s: %w", workoutID, ErrNotFound)
}

func (c *Client) workoutByID(ctx context.Context, workoutID string) (*Workout, error) {
	variables := map[string]any{
		"input": map[string]any{
			"workoutIds": []string{workoutID},
		},
	}

	data, err := c.call(ctx, getWorkoutsQuery, variables, "GetWorkouts", true)
	if err != nil {
		return nil, err
	}

	var resp getWorkoutsResponseRaw
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("unmarshal workouts response: %w", err)
	}

	if len(resp.GetWorkouts.Workouts) == 0 {
		return nil, nil
	}
	workout := normalizeWorkout(&resp.GetWorkouts.Workouts[0])
	return &workout, nil
}
